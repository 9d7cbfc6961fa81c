package handlers

import (
	"net/http"
	"time"

	"github.com/JoWinner/car-rental/internal/middleware"
	"github.com/JoWinner/car-rental/internal/services"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingService services.BookingService
}

func NewBookingHandler(bookingService services.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// CreateBooking handles POST /bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req struct {
		CarID     string    `json:"car_id"`
		StartDate time.Time `json:"start_date"`
		EndDate   time.Time `json:"end_date"`
		Location  string    `json:"location"`
		Notes     string    `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	booking, err := h.bookingService.CreateBooking(user, services.CreateBookingRequest{
		CarID:     req.CarID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Location:  req.Location,
		Notes:     req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// GetBookings handles GET /bookings, returning the caller's bookings.
func (h *BookingHandler) GetBookings(c *gin.Context) {
	user := middleware.CurrentUser(c)

	bookings, err := h.bookingService.GetUserBookings(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBooking handles GET /bookings/:bookingId for the owner or an admin.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	user := middleware.CurrentUser(c)

	booking, err := h.bookingService.GetBookingByID(user, c.Param("bookingId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// UpdateStatus handles PATCH /bookings/:bookingId.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	booking, err := h.bookingService.TransitionStatus(user, c.Param("bookingId"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// UpdatePayment handles PATCH /bookings/:bookingId/payment. Admin only,
// enforced by route middleware.
func (h *BookingHandler) UpdatePayment(c *gin.Context) {
	var req struct {
		PaymentStatus string `json:"payment_status"`
		PaymentID     string `json:"payment_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	booking, err := h.bookingService.TransitionPayment(c.Param("bookingId"), req.PaymentStatus, req.PaymentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}
