package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/stzheng716/sharebnb-backend/services"
	"github.com/stzheng716/sharebnb-backend/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps a domain error kind to its fixed status code.
// notFoundMessage customizes the 404 body ("No user: bob" style); the other
// kinds carry their own message.
func respondServiceError(c *gin.Context, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, notFoundMessage)
	case errors.Is(err, services.ErrForbidden):
		utils.JSONError(c, http.StatusForbidden, "you do not have permission to do that")
	case errors.Is(err, services.ErrDuplicateUsername):
		utils.JSONError(c, http.StatusConflict, services.ErrDuplicateUsername.Error())
	case errors.Is(err, services.ErrDuplicateEmail):
		utils.JSONError(c, http.StatusConflict, services.ErrDuplicateEmail.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, services.ErrInvalidCredentials.Error())
	case errors.Is(err, services.ErrUnsupportedImage):
		utils.JSONError(c, http.StatusBadRequest, services.ErrUnsupportedImage.Error())
	case errors.Is(err, services.ErrUpstream):
		utils.JSONError(c, http.StatusBadGateway, "upstream service failed, try again")
	default:
		log.Printf("internal error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
	}
}
