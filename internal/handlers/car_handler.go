package handlers

import (
	"net/http"
	"strconv"

	"github.com/JoWinner/car-rental/internal/models"
	"github.com/JoWinner/car-rental/internal/repository"
	"github.com/JoWinner/car-rental/internal/services"

	"github.com/gin-gonic/gin"
)

type CarHandler struct {
	carService services.CarService
}

func NewCarHandler(carService services.CarService) *CarHandler {
	return &CarHandler{carService: carService}
}

// ListCars handles GET /cars with pagination and filters.
func (h *CarHandler) ListCars(c *gin.Context) {
	filter := repository.CarFilter{
		Brand:    c.Query("brand"),
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Status:   c.DefaultQuery("status", string(models.CarAvailable)),
	}

	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "9"))

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
	if v := c.Query("minSeats"); v != "" {
		if seats, err := strconv.Atoi(v); err == nil {
			filter.MinSeats = &seats
		}
	}

	cars, meta, err := h.carService.ListCars(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cars": cars, "metadata": meta})
}

func (h *CarHandler) GetCar(c *gin.Context) {
	car, err := h.carService.GetCarByID(c.Param("carId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, car)
}

func (h *CarHandler) CreateCar(c *gin.Context) {
	var input services.CarInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	car, err := h.carService.CreateCar(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, car)
}

func (h *CarHandler) UpdateCar(c *gin.Context) {
	var input services.CarInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	car, err := h.carService.UpdateCar(c.Param("carId"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, car)
}

func (h *CarHandler) DeleteCar(c *gin.Context) {
	if err := h.carService.DeleteCar(c.Param("carId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
