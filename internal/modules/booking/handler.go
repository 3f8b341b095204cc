package booking

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

// RegisterCustomerRoutes mounts the endpoints customers use to create and
// browse their own bookings.
func (h *Handler) RegisterCustomerRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.Create)
	rg.GET("/my-bookings", h.ListMine)
}

// RegisterProtectedRoutes mounts endpoints shared by customers and admins.
// Ownership is enforced in the service layer.
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings/:id", h.Show)
	rg.PUT("/bookings/:id", h.Update)
	rg.DELETE("/bookings/:id", h.Delete)

	rg.POST("/booking-services", h.AddService)
	rg.PUT("/booking-services/:id", h.UpdateServiceItem)
	rg.DELETE("/booking-services/:id", h.DeleteServiceItem)
}

// RegisterAdminRoutes mounts the admin-only booking indexes.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings", h.ListAll)
	rg.GET("/booking-services", h.ListServiceItems)
	rg.GET("/booking-services/:id", h.ShowServiceItem)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid ID")
		return 0, false
	}
	return id, true
}

func principal(c *gin.Context) (int64, domain.UserRole) {
	return c.GetInt64("user_id"), domain.UserRole(c.GetString("role"))
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationError(c, errs)
		return
	}

	userID, _ := principal(c)
	b, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.ValidationError(c, map[string]string{"check_in_date": "invalid date range"})
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Room not found")
		case errors.Is(err, ErrRoomUnavailable):
			response.Error(c, http.StatusBadRequest, "Room is not available for booking")
		case errors.Is(err, ErrDateConflict):
			response.Error(c, http.StatusBadRequest, "Room is already booked for the requested dates")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to create booking")
		}
		return
	}
	response.Created(c, "Booking created successfully", "booking", b)
}

func (h *Handler) ListAll(c *gin.Context) {
	var f repository.BookingFilter
	f.Status = c.Query("status")
	if raw := c.Query("customer_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid customer_id")
			return
		}
		f.CustomerID = id
	}
	if raw := c.Query("start_date"); raw != "" {
		d, err := parseDate(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid start_date")
			return
		}
		f.StartDate = d
	}
	if raw := c.Query("end_date"); raw != "" {
		d, err := parseDate(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid end_date")
			return
		}
		f.EndDate = d
	}

	bookings, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list bookings")
		return
	}
	response.JSON(c, http.StatusOK, bookings)
}

func (h *Handler) ListMine(c *gin.Context) {
	userID, _ := principal(c)
	bookings, err := h.service.ListForCustomer(c.Request.Context(), userID, c.Query("status"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list bookings")
		return
	}
	response.JSON(c, http.StatusOK, bookings)
}

func (h *Handler) Show(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	userID, role := principal(c)
	b, err := h.service.Get(c.Request.Context(), id, userID, role)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Booking not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "Unauthorized.")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to load booking")
		}
		return
	}
	response.JSON(c, http.StatusOK, b)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationError(c, errs)
		return
	}

	userID, role := principal(c)
	b, err := h.service.Update(c.Request.Context(), id, userID, role, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Booking not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "Unauthorized.")
		case errors.Is(err, ErrValidation):
			response.ValidationError(c, map[string]string{"check_out_date": "invalid date range"})
		case errors.Is(err, ErrStatusNotAllowed):
			response.ValidationError(c, map[string]string{"status": "in"})
		case errors.Is(err, ErrCannotCancel):
			response.Error(c, http.StatusBadRequest, "Cannot cancel a booking that has already been checked in or out")
		case errors.Is(err, ErrDateConflict):
			response.Error(c, http.StatusBadRequest, "Room is already booked for the requested dates")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to update booking")
		}
		return
	}
	response.OK(c, "Booking updated successfully", "booking", b)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	userID, role := principal(c)
	if err := h.service.Delete(c.Request.Context(), id, userID, role); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Booking not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "Unauthorized.")
		case errors.Is(err, ErrNotDeletable):
			response.Error(c, http.StatusBadRequest, "Only pending or cancelled bookings can be deleted")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to delete booking")
		}
		return
	}
	response.Message(c, http.StatusOK, "Booking deleted successfully")
}

// ---- booking services ----

func (h *Handler) AddService(c *gin.Context) {
	var req AddServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationError(c, errs)
		return
	}

	userID, role := principal(c)
	item, err := h.service.AddService(c.Request.Context(), userID, role, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Booking not found")
		case errors.Is(err, ErrServiceNotFound):
			response.Error(c, http.StatusNotFound, "Service not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "Unauthorized.")
		case errors.Is(err, ErrServiceInactive):
			response.Error(c, http.StatusBadRequest, "Service is not available")
		case errors.Is(err, ErrValidation):
			response.ValidationError(c, map[string]string{"service_date": "invalid date"})
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to add service")
		}
		return
	}
	response.Created(c, "Service added to booking successfully", "booking_service", item)
}

func (h *Handler) ListServiceItems(c *gin.Context) {
	var f repository.BookingServiceFilter
	f.Status = c.Query("status")
	if raw := c.Query("booking_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid booking_id")
			return
		}
		f.BookingID = id
	}
	if raw := c.Query("service_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid service_id")
			return
		}
		f.ServiceID = id
	}

	items, err := h.service.ListServiceItems(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list booking services")
		return
	}
	response.JSON(c, http.StatusOK, items)
}

func (h *Handler) ShowServiceItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	userID, role := principal(c)
	item, err := h.service.GetServiceItem(c.Request.Context(), id, userID, role)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Booking service not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "Unauthorized.")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to load booking service")
		}
		return
	}
	response.JSON(c, http.StatusOK, item)
}

func (h *Handler) UpdateServiceItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req UpdateServiceItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationError(c, errs)
		return
	}

	userID, role := principal(c)
	item, err := h.service.UpdateServiceItem(c.Request.Context(), id, userID, role, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Booking service not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "Unauthorized.")
		case errors.Is(err, ErrItemLocked):
			response.Error(c, http.StatusBadRequest, "Cannot update service that has been completed or cancelled")
		case errors.Is(err, ErrStatusNotAllowed):
			response.ValidationError(c, map[string]string{"status": "in"})
		case errors.Is(err, ErrValidation):
			response.ValidationError(c, map[string]string{"service_date": "invalid date"})
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to update booking service")
		}
		return
	}
	response.OK(c, "Booking service updated successfully", "booking_service", item)
}

func (h *Handler) DeleteServiceItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	userID, role := principal(c)
	if err := h.service.DeleteServiceItem(c.Request.Context(), id, userID, role); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Booking service not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "Unauthorized.")
		case errors.Is(err, ErrItemCompleted):
			response.Error(c, http.StatusBadRequest, "Cannot delete a service that has been completed")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to delete booking service")
		}
		return
	}
	response.Message(c, http.StatusOK, "Booking service removed successfully")
}
