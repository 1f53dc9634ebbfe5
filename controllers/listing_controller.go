package controllers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/stzheng716/sharebnb-backend/middleware"
	"github.com/stzheng716/sharebnb-backend/services"
	"github.com/stzheng716/sharebnb-backend/utils"

	"github.com/gin-gonic/gin"
)

type ListingController struct {
	Listings *services.ListingService
}

func NewListingController(listings *services.ListingService) *ListingController {
	return &ListingController{Listings: listings}
}

// Mirrors the column sizes so over-long form input fails with a 400 instead of
// surfacing as a database error.
var listingFieldMax = map[string]int{
	"title":    40,
	"street":   50,
	"city":     30,
	"state":    2,
	"country":  3,
	"username": 30,
}

func checkListingFieldLengths(c *gin.Context, fields map[string]string) bool {
	for name, value := range fields {
		if max, ok := listingFieldMax[name]; ok && len(value) > max {
			utils.JSONError(c, http.StatusBadRequest,
				fmt.Sprintf("%s must be at most %d characters", name, max))
			return false
		}
	}
	return true
}

func parseListingID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "listing id must be numeric")
		return 0, false
	}
	return uint(id), true
}

// formImage pulls the optional "image" part out of a multipart request.
// The caller must close the returned file when it is non-nil.
func formImage(c *gin.Context) (*services.ImageUpload, multipart.File, error) {
	header, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	f, err := header.Open()
	if err != nil {
		return nil, nil, err
	}
	return &services.ImageUpload{Filename: header.Filename, Reader: f}, f, nil
}

// CreateListing reads the multipart form, validates required fields and
// delegates to the listing service.
func (ctrl *ListingController) CreateListing(c *gin.Context) {
	in := services.ListingInput{
		Title:    c.PostForm("title"),
		Details:  c.PostForm("details"),
		Street:   c.PostForm("street"),
		City:     c.PostForm("city"),
		State:    c.PostForm("state"),
		Country:  c.PostForm("country"),
		Username: c.PostForm("username"),
	}

	required := map[string]string{
		"title":    in.Title,
		"details":  in.Details,
		"street":   in.Street,
		"city":     in.City,
		"state":    in.State,
		"country":  in.Country,
		"username": in.Username,
	}
	for field, value := range required {
		if value == "" {
			utils.JSONError(c, http.StatusBadRequest, fmt.Sprintf("missing required field: %s", field))
			return
		}
	}
	if !checkListingFieldLengths(c, required) {
		return
	}

	zip, err := strconv.Atoi(c.PostForm("zip"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "zip must be numeric")
		return
	}
	in.Zip = zip

	price, err := strconv.Atoi(c.PostForm("price_per_night"))
	if err != nil || price <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "price_per_night must be a positive integer")
		return
	}
	in.PricePerNight = price

	image, file, err := formImage(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid image upload")
		return
	}
	if file != nil {
		defer file.Close()
	}

	listing, err := ctrl.Listings.Create(in, image)
	if err != nil {
		respondServiceError(c, err, "No user: "+in.Username)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"listing": listing})
}

// UpdateListing patches only the form fields that were actually supplied.
func (ctrl *ListingController) UpdateListing(c *gin.Context) {
	id, ok := parseListingID(c)
	if !ok {
		return
	}

	var patch services.ListingPatch
	supplied := map[string]string{}
	if v, ok := c.GetPostForm("title"); ok {
		patch.Title = &v
		supplied["title"] = v
	}
	if v, ok := c.GetPostForm("details"); ok {
		patch.Details = &v
	}
	if v, ok := c.GetPostForm("street"); ok {
		patch.Street = &v
		supplied["street"] = v
	}
	if v, ok := c.GetPostForm("city"); ok {
		patch.City = &v
		supplied["city"] = v
	}
	if v, ok := c.GetPostForm("state"); ok {
		patch.State = &v
		supplied["state"] = v
	}
	if v, ok := c.GetPostForm("country"); ok {
		patch.Country = &v
		supplied["country"] = v
	}
	if !checkListingFieldLengths(c, supplied) {
		return
	}
	if v, ok := c.GetPostForm("zip"); ok {
		zip, err := strconv.Atoi(v)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "zip must be numeric")
			return
		}
		patch.Zip = &zip
	}
	if v, ok := c.GetPostForm("price_per_night"); ok {
		price, err := strconv.Atoi(v)
		if err != nil || price <= 0 {
			utils.JSONError(c, http.StatusBadRequest, "price_per_night must be a positive integer")
			return
		}
		patch.PricePerNight = &price
	}

	image, file, err := formImage(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid image upload")
		return
	}
	if file != nil {
		defer file.Close()
	}

	listing, err := ctrl.Listings.Update(id, patch, image)
	if err != nil {
		respondServiceError(c, err, fmt.Sprintf("No listing: %d", id))
		return
	}

	c.JSON(http.StatusOK, gin.H{"listing": listing})
}

func (ctrl *ListingController) GetListings(c *gin.Context) {
	listings, err := ctrl.Listings.Search(c.Query("q"))
	if err != nil {
		respondServiceError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"listings": listings})
}

// GetListing returns the listing expanded with the bookings and messages that
// reference it.
func (ctrl *ListingController) GetListing(c *gin.Context) {
	id, ok := parseListingID(c)
	if !ok {
		return
	}

	listing, bookings, messages, err := ctrl.Listings.Detail(id)
	if err != nil {
		respondServiceError(c, err, fmt.Sprintf("No listing: %d", id))
		return
	}

	c.JSON(http.StatusOK, gin.H{"listing": gin.H{
		"id":              listing.ID,
		"title":           listing.Title,
		"details":         listing.Details,
		"street":          listing.Street,
		"city":            listing.City,
		"state":           listing.State,
		"zip":             listing.Zip,
		"country":         listing.Country,
		"price_per_night": listing.PricePerNight,
		"image_url":       listing.ImageURL,
		"latitude":        listing.Latitude,
		"longitude":       listing.Longitude,
		"username":        listing.Username,
		"bookings":        bookings,
		"messages":        messages,
	}})
}

func (ctrl *ListingController) DeleteListing(c *gin.Context) {
	id, ok := parseListingID(c)
	if !ok {
		return
	}

	if err := ctrl.Listings.Delete(id, c.GetString(middleware.CtxUsername)); err != nil {
		respondServiceError(c, err, fmt.Sprintf("No listing: %d", id))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Listing %d deleted", id)})
}
