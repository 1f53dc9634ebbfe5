package controllers

import (
	"fmt"
	"net/http"

	"github.com/stzheng716/sharebnb-backend/middleware"
	"github.com/stzheng716/sharebnb-backend/services"
	"github.com/stzheng716/sharebnb-backend/utils"

	"github.com/gin-gonic/gin"
)

type updateUserPayload struct {
	FirstName *string `json:"firstName" binding:"omitempty,max=25"`
	LastName  *string `json:"lastName" binding:"omitempty,max=25"`
	Email     *string `json:"email" binding:"omitempty,email,max=50"`
	Password  *string `json:"password" binding:"omitempty,min=6"`
	IsHost    *bool   `json:"isHost"`
}

type UserController struct {
	Users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{Users: users}
}

func (ctrl *UserController) GetUsers(c *gin.Context) {
	users, err := ctrl.Users.GetAll()
	if err != nil {
		respondServiceError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// GetUser returns the profile expanded with the user's listings, bookings and
// sent messages.
func (ctrl *UserController) GetUser(c *gin.Context) {
	username := c.Param("username")

	user, listings, bookings, messages, err := ctrl.Users.Detail(username)
	if err != nil {
		respondServiceError(c, err, "No user: "+username)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": gin.H{
		"username":      user.Username,
		"first_name":    user.FirstName,
		"last_name":     user.LastName,
		"email":         user.Email,
		"is_host":       user.IsHost,
		"listings":      listings,
		"bookings":      bookings,
		"sent_messages": messages,
	}})
}

func (ctrl *UserController) UpdateUser(c *gin.Context) {
	username := c.Param("username")
	if c.GetString(middleware.CtxUsername) != username {
		utils.JSONError(c, http.StatusForbidden, "you do not have permission to do that")
		return
	}

	var payload updateUserPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := ctrl.Users.Update(username, services.UserPatch{
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Email:     payload.Email,
		Password:  payload.Password,
		IsHost:    payload.IsHost,
	})
	if err != nil {
		respondServiceError(c, err, "No user: "+username)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (ctrl *UserController) DeleteUser(c *gin.Context) {
	username := c.Param("username")

	if err := ctrl.Users.Delete(username, c.GetString(middleware.CtxUsername)); err != nil {
		respondServiceError(c, err, "No user: "+username)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("User %s deleted", username)})
}
