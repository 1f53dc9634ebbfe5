package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/stzheng716/sharebnb-backend/middleware"
	"github.com/stzheng716/sharebnb-backend/services"
	"github.com/stzheng716/sharebnb-backend/utils"

	"github.com/gin-gonic/gin"
)

type createBookingPayload struct {
	Username             string `json:"username" binding:"required"`
	PropertyID           uint   `json:"property_id" binding:"required"`
	CheckInDate          string `json:"check_in_date" binding:"required"`
	CheckOutDate         string `json:"check_out_date" binding:"required"`
	BookingPricePerNight int    `json:"booking_price_per_night" binding:"required"`
}

type BookingController struct {
	Bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{Bookings: bookings}
}

// parseTimestamp accepts the date-time formats clients actually send.
func parseTimestamp(value string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02 15:04:05", "2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp: %q", value)
}

func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var payload createBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	checkIn, err := parseTimestamp(payload.CheckInDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "check_in_date: "+err.Error())
		return
	}
	checkOut, err := parseTimestamp(payload.CheckOutDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "check_out_date: "+err.Error())
		return
	}

	booking, err := ctrl.Bookings.Create(services.BookingInput{
		Username:             payload.Username,
		PropertyID:           payload.PropertyID,
		CheckInDate:          checkIn,
		CheckOutDate:         checkOut,
		BookingPricePerNight: payload.BookingPricePerNight,
	})
	if err != nil {
		respondServiceError(c, err, "unknown user or listing")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"booking": booking})
}

func (ctrl *BookingController) GetBookings(c *gin.Context) {
	bookings, err := ctrl.Bookings.GetAll()
	if err != nil {
		respondServiceError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func (ctrl *BookingController) GetBooking(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "booking id must be numeric")
		return
	}

	booking, err := ctrl.Bookings.Get(uint(id))
	if err != nil {
		respondServiceError(c, err, fmt.Sprintf("No booking: %d", id))
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

func (ctrl *BookingController) DeleteBooking(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "booking id must be numeric")
		return
	}

	if err := ctrl.Bookings.Delete(uint(id), c.GetString(middleware.CtxUsername)); err != nil {
		respondServiceError(c, err, fmt.Sprintf("No booking: %d", id))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Booking %d deleted", id)})
}
