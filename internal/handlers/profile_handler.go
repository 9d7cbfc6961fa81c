package handlers

import (
	"net/http"

	"github.com/JoWinner/car-rental/internal/middleware"
	"github.com/JoWinner/car-rental/internal/services"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	userService    services.UserService
	bookingService services.BookingService
}

func NewProfileHandler(userService services.UserService, bookingService services.BookingService) *ProfileHandler {
	return &ProfileHandler{userService: userService, bookingService: bookingService}
}

// GetProfile handles GET /profile, returning the profile with its booking
// history.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	user := middleware.CurrentUser(c)

	bookings, err := h.bookingService.GetUserBookings(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": user, "bookings": bookings})
}

// UpdateProfile handles PATCH /profile.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req struct {
		Name        string `json:"name"`
		PhoneNumber string `json:"phone_number"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	updated, err := h.userService.UpdateProfile(user.ID, req.Name, req.PhoneNumber)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
