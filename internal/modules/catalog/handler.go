package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotelier/internal/domain"
	"hotelier/internal/repository"
	"hotelier/internal/pkg/response"
	"hotelier/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts the read-only catalog endpoints available
// without authentication.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/room-types", h.ListRoomTypes)
	rg.GET("/room-types/:id", h.ShowRoomType)
	rg.GET("/services", h.ListServices)
	rg.GET("/services/:id", h.ShowService)
}

// RegisterAdminRoutes mounts catalog mutation endpoints.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/room-types", h.CreateRoomType)
	rg.PUT("/room-types/:id", h.UpdateRoomType)
	rg.DELETE("/room-types/:id", h.DeleteRoomType)

	rg.GET("/rooms", h.ListRooms)
	rg.POST("/rooms", h.CreateRoom)
	rg.GET("/rooms/:id", h.ShowRoom)
	rg.PUT("/rooms/:id", h.UpdateRoom)
	rg.DELETE("/rooms/:id", h.DeleteRoom)

	rg.POST("/services", h.CreateService)
	rg.PUT("/services/:id", h.UpdateService)
	rg.DELETE("/services/:id", h.DeleteService)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid ID")
		return 0, false
	}
	return id, true
}

func isAdmin(c *gin.Context) bool {
	return c.GetString("role") == string(domain.RoleAdmin)
}

// ---- room types ----

func (h *Handler) ListRoomTypes(c *gin.Context) {
	types, err := h.service.ListRoomTypes(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list room types")
		return
	}
	response.JSON(c, http.StatusOK, types)
}

func (h *Handler) ShowRoomType(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	rt, err := h.service.GetRoomType(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Room type not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to load room type")
		return
	}
	response.JSON(c, http.StatusOK, rt)
}

func (h *Handler) CreateRoomType(c *gin.Context) {
	var req CreateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationError(c, errs)
		return
	}

	rt, err := h.service.CreateRoomType(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrRoomTypeNameTaken) {
			response.ValidationError(c, map[string]string{"type_name": "taken"})
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to create room type")
		return
	}
	response.Created(c, "Room type created successfully", "room_type", rt)
}

func (h *Handler) UpdateRoomType(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req UpdateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationError(c, errs)
		return
	}

	rt, err := h.service.UpdateRoomType(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Room type not found")
		case errors.Is(err, ErrRoomTypeNameTaken):
			response.ValidationError(c, map[string]string{"type_name": "taken"})
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to update room type")
		}
		return
	}
	response.OK(c, "Room type updated successfully", "room_type", rt)
}

func (h *Handler) DeleteRoomType(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteRoomType(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Room type not found")
		case errors.Is(err, ErrRoomTypeInUse):
			response.Error(c, http.StatusBadRequest, "Cannot delete room type because it has rooms associated with it")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to delete room type")
		}
		return
	}
	response.Message(c, http.StatusOK, "Room type deleted successfully")
}

// ---- rooms ----

func (h *Handler) ListRooms(c *gin.Context) {
	var f repository.RoomFilter
	f.Status = c.Query("status")
	if raw := c.Query("room_type_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid room_type_id")
			return
		}
		f.RoomTypeID = id
	}

	rooms, err := h.service.ListRooms(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list rooms")
		return
	}
	response.JSON(c, http.StatusOK, rooms)
}

func (h *Handler) ShowRoom(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	room, err := h.service.GetRoom(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Room not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to load room")
		return
	}
	response.JSON(c, http.StatusOK, room)
}

func (h *Handler) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationError(c, errs)
		return
	}

	room, err := h.service.CreateRoom(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrRoomNumberTaken):
			response.ValidationError(c, map[string]string{"room_number": "taken"})
		case errors.Is(err, ErrRoomTypeMissing):
			response.ValidationError(c, map[string]string{"room_type_id": "exists"})
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to create room")
		}
		return
	}
	response.Created(c, "Room created successfully", "room", room)
}

func (h *Handler) UpdateRoom(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationError(c, errs)
		return
	}

	room, err := h.service.UpdateRoom(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Room not found")
		case errors.Is(err, ErrRoomNumberTaken):
			response.ValidationError(c, map[string]string{"room_number": "taken"})
		case errors.Is(err, ErrRoomTypeMissing):
			response.ValidationError(c, map[string]string{"room_type_id": "exists"})
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to update room")
		}
		return
	}
	response.OK(c, "Room updated successfully", "room", room)
}

func (h *Handler) DeleteRoom(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteRoom(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Room not found")
		case errors.Is(err, ErrRoomInUse):
			response.Error(c, http.StatusBadRequest, "Cannot delete room because it has bookings associated with it")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to delete room")
		}
		return
	}
	response.Message(c, http.StatusOK, "Room deleted successfully")
}

// ---- services ----

func (h *Handler) ListServices(c *gin.Context) {
	var f repository.ServiceFilter
	f.Category = c.Query("category")
	if raw := c.Query("is_active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid is_active")
			return
		}
		f.IsActive = &active
	}

	services, err := h.service.ListServices(c.Request.Context(), f, isAdmin(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list services")
		return
	}
	response.JSON(c, http.StatusOK, services)
}

func (h *Handler) ShowService(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	svc, err := h.service.GetService(c.Request.Context(), id, isAdmin(c))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Service not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to load service")
		return
	}
	response.JSON(c, http.StatusOK, svc)
}

func (h *Handler) CreateService(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationError(c, errs)
		return
	}

	svc, err := h.service.CreateService(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to create service")
		return
	}
	response.Created(c, "Service created successfully", "service", svc)
}

func (h *Handler) UpdateService(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationError(c, errs)
		return
	}

	svc, err := h.service.UpdateService(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Service not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to update service")
		return
	}
	response.OK(c, "Service updated successfully", "service", svc)
}

func (h *Handler) DeleteService(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteService(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Service not found")
		case errors.Is(err, ErrServiceInUse):
			response.Error(c, http.StatusBadRequest, "Cannot delete service because it is used in bookings")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to delete service")
		}
		return
	}
	response.Message(c, http.StatusOK, "Service deleted successfully")
}
