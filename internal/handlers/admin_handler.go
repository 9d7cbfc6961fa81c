package handlers

import (
	"net/http"
	"strconv"

	"github.com/JoWinner/car-rental/internal/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	userService      services.UserService
	bookingService   services.BookingService
	orderService     services.SaleOrderService
	analyticsService services.AnalyticsService
}

func NewAdminHandler(
	userService services.UserService,
	bookingService services.BookingService,
	orderService services.SaleOrderService,
	analyticsService services.AnalyticsService,
) *AdminHandler {
	return &AdminHandler{
		userService:      userService,
		bookingService:   bookingService,
		orderService:     orderService,
		analyticsService: analyticsService,
	}
}

// Dashboard handles GET /admin/dashboard.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	snapshot, err := h.analyticsService.Dashboard()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// GetAllBookings handles GET /admin/bookings.
func (h *AdminHandler) GetAllBookings(c *gin.Context) {
	bookings, err := h.bookingService.GetAllBookings()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetAllUsers handles GET /admin/users.
func (h *AdminHandler) GetAllUsers(c *gin.Context) {
	users, err := h.userService.GetAllUsers()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// UpdateUser handles PATCH /admin/users/:userId for activation and admin
// promotion.
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	var req struct {
		IsActive *bool `json:"is_active"`
		IsAdmin  *bool `json:"is_admin"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if req.IsActive == nil && req.IsAdmin == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}

	id := uint(userID)
	if req.IsActive != nil {
		if _, err := h.userService.SetActive(id, *req.IsActive); err != nil {
			respondError(c, err)
			return
		}
	}
	if req.IsAdmin != nil {
		if _, err := h.userService.SetAdmin(id, *req.IsAdmin); err != nil {
			respondError(c, err)
			return
		}
	}

	user, err := h.userService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetAllOrders handles GET /admin/sale-orders.
func (h *AdminHandler) GetAllOrders(c *gin.Context) {
	orders, err := h.orderService.GetAllOrders()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// UpdateOrderStatus handles PATCH /admin/sale-orders/:orderId.
func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	order, err := h.orderService.TransitionStatus(c.Param("orderId"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
