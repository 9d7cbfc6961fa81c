package handlers

import (
	"net/http"
	"strconv"

	"github.com/JoWinner/car-rental/internal/middleware"
	"github.com/JoWinner/car-rental/internal/repository"
	"github.com/JoWinner/car-rental/internal/services"

	"github.com/gin-gonic/gin"
)

type ShopHandler struct {
	carService   services.CarService
	orderService services.SaleOrderService
}

func NewShopHandler(carService services.CarService, orderService services.SaleOrderService) *ShopHandler {
	return &ShopHandler{carService: carService, orderService: orderService}
}

// ListCarsForSale handles GET /shop.
func (h *ShopHandler) ListCarsForSale(c *gin.Context) {
	filter := repository.ShopFilter{
		Query:        c.Query("query"),
		Category:     c.Query("category"),
		Brand:        c.Query("brand"),
		Transmission: c.Query("transmission"),
		SortBy:       c.DefaultQuery("sortBy", "createdAt"),
		SortOrder:    c.DefaultQuery("sortOrder", "desc"),
	}

	if v := c.Query("minPrice"); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinPrice = &price
		}
	}
	if v := c.Query("maxPrice"); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxPrice = &price
		}
	}
	if v := c.Query("minYear"); v != "" {
		if year, err := strconv.Atoi(v); err == nil {
			filter.MinYear = &year
		}
	}
	if v := c.Query("maxYear"); v != "" {
		if year, err := strconv.Atoi(v); err == nil {
			filter.MaxYear = &year
		}
	}

	cars, err := h.carService.ListForSale(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cars)
}

// GetCarForSale handles GET /shop/:carId.
func (h *ShopHandler) GetCarForSale(c *gin.Context) {
	car, err := h.carService.GetCarForSale(c.Param("carId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, car)
}

// CreateOrder handles POST /shop/orders. Works for anonymous visitors;
// authenticated submitters get the order linked to their profile.
func (h *ShopHandler) CreateOrder(c *gin.Context) {
	var input services.SaleOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	order, err := h.orderService.CreateOrder(middleware.CurrentUser(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// GetOrders handles GET /shop/orders, returning the caller's inquiries.
func (h *ShopHandler) GetOrders(c *gin.Context) {
	user := middleware.CurrentUser(c)

	orders, err := h.orderService.GetUserOrders(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}
