package review

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotelier/internal/domain"
	"hotelier/internal/pkg/response"
	"hotelier/internal/pkg/validator"
	"hotelier/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterCustomerRoutes mounts the endpoints customers use to write and
// manage their reviews.
func (h *Handler) RegisterCustomerRoutes(rg *gin.RouterGroup) {
	rg.POST("/reviews", h.Create)
	rg.PUT("/reviews/:id", h.Update)
}

// RegisterProtectedRoutes mounts endpoints shared by customers and admins.
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.DELETE("/reviews/:id", h.Delete)
}

// RegisterAdminRoutes mounts the review moderation index.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/reviews", h.List)
	rg.GET("/reviews/:id", h.Show)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid ID")
		return 0, false
	}
	return id, true
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationError(c, errs)
		return
	}

	r, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			response.Error(c, http.StatusNotFound, "Booking not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "Unauthorized.")
		case errors.Is(err, ErrNotCheckedOut):
			response.Error(c, http.StatusBadRequest, "Can only review bookings that have been checked out")
		case errors.Is(err, ErrAlreadyReviewed):
			response.Error(c, http.StatusBadRequest, "Review already exists for this booking")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to create review")
		}
		return
	}
	response.Created(c, "Review created successfully", "review", r)
}

func (h *Handler) List(c *gin.Context) {
	var f repository.ReviewFilter
	if raw := c.Query("booking_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid booking_id")
			return
		}
		f.BookingID = id
	}
	if raw := c.Query("customer_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid customer_id")
			return
		}
		f.CustomerID = id
	}
	if raw := c.Query("rating"); raw != "" {
		rating, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid rating")
			return
		}
		f.Rating = rating
	}

	reviews, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list reviews")
		return
	}
	response.JSON(c, http.StatusOK, reviews)
}

func (h *Handler) Show(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	r, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Review not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to load review")
		return
	}
	response.JSON(c, http.StatusOK, r)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationError(c, errs)
		return
	}

	r, err := h.service.Update(c.Request.Context(), id, c.GetInt64("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Review not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "Unauthorized.")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to update review")
		}
		return
	}
	response.OK(c, "Review updated successfully", "review", r)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	role := domain.UserRole(c.GetString("role"))
	if err := h.service.Delete(c.Request.Context(), id, c.GetInt64("user_id"), role); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Review not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "Unauthorized.")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to delete review")
		}
		return
	}
	response.Message(c, http.StatusOK, "Review deleted successfully")
}
