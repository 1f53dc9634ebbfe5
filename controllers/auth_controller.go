package controllers

import (
	"net/http"

	"github.com/stzheng716/sharebnb-backend/services"
	"github.com/stzheng716/sharebnb-backend/utils"

	"github.com/gin-gonic/gin"
)

type signupPayload struct {
	Username  string `json:"username" binding:"required,max=30"`
	FirstName string `json:"firstName" binding:"required,max=25"`
	LastName  string `json:"lastName" binding:"required,max=25"`
	Email     string `json:"email" binding:"required,email,max=50"`
	Password  string `json:"password" binding:"required,min=6"`
	IsHost    bool   `json:"isHost"`
}

type loginPayload struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	Users *services.UserService
}

func NewAuthController(users *services.UserService) *AuthController {
	return &AuthController{Users: users}
}

func (ctrl *AuthController) Signup(c *gin.Context) {
	var payload signupPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := ctrl.Users.Signup(services.SignupInput{
		Username:  payload.Username,
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Email:     payload.Email,
		Password:  payload.Password,
		IsHost:    payload.IsHost,
	})
	if err != nil {
		respondServiceError(c, err, "signup failed")
		return
	}

	token, err := utils.GenerateToken(user.Username, user.IsHost)
	if err != nil {
		respondServiceError(c, err, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token})
}

func (ctrl *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := ctrl.Users.Authenticate(payload.Username, payload.Password)
	if err != nil {
		respondServiceError(c, err, "")
		return
	}

	token, err := utils.GenerateToken(user.Username, user.IsHost)
	if err != nil {
		respondServiceError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
