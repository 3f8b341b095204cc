package report

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"hotelier/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterAdminRoutes mounts the reporting endpoints.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	reports.GET("/dashboard", h.Dashboard)
	reports.GET("/bookings", h.Bookings)
	reports.GET("/occupancy", h.Occupancy)
	reports.GET("/revenue", h.Revenue)
	reports.GET("/services", h.Services)
	reports.GET("/customers", h.Customers)
	reports.GET("/financial", h.Financial)
	reports.GET("/export", h.Export)
}

// parseRange reads the optional start_date/end_date query params, falling
// back to the last month.
func parseRange(c *gin.Context) (DateRange, bool) {
	rng := defaultRange()
	if raw := c.Query("start_date"); raw != "" {
		d, err := time.Parse(dateLayout, raw)
		if err != nil {
			response.ValidationError(c, map[string]string{"start_date": "date"})
			return rng, false
		}
		rng.Start = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	}
	if raw := c.Query("end_date"); raw != "" {
		d, err := time.Parse(dateLayout, raw)
		if err != nil {
			response.ValidationError(c, map[string]string{"end_date": "date"})
			return rng, false
		}
		rng.End = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	}
	if rng.End.Before(rng.Start) {
		response.ValidationError(c, map[string]string{"end_date": "after_or_equal"})
		return rng, false
	}
	return rng, true
}

func (h *Handler) Dashboard(c *gin.Context) {
	rep, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to build dashboard")
		return
	}
	response.JSON(c, http.StatusOK, rep)
}

func (h *Handler) Bookings(c *gin.Context) {
	rng, ok := parseRange(c)
	if !ok {
		return
	}
	rep, err := h.service.BookingsSummary(c.Request.Context(), rng)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to build bookings report")
		return
	}
	response.JSON(c, http.StatusOK, rep)
}

func (h *Handler) Occupancy(c *gin.Context) {
	rng, ok := parseRange(c)
	if !ok {
		return
	}
	rep, err := h.service.Occupancy(c.Request.Context(), rng)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to build occupancy report")
		return
	}
	response.JSON(c, http.StatusOK, rep)
}

func (h *Handler) Revenue(c *gin.Context) {
	rng, ok := parseRange(c)
	if !ok {
		return
	}
	rep, err := h.service.RevenueByRoomType(c.Request.Context(), rng)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to build revenue report")
		return
	}
	response.JSON(c, http.StatusOK, rep)
}

func (h *Handler) Services(c *gin.Context) {
	rng, ok := parseRange(c)
	if !ok {
		return
	}
	rep, err := h.service.ServiceUsage(c.Request.Context(), rng)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to build service usage report")
		return
	}
	response.JSON(c, http.StatusOK, rep)
}

func (h *Handler) Customers(c *gin.Context) {
	rng, ok := parseRange(c)
	if !ok {
		return
	}
	rep, err := h.service.CustomerStatistics(c.Request.Context(), rng)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to build customer report")
		return
	}
	response.JSON(c, http.StatusOK, rep)
}

func (h *Handler) Financial(c *gin.Context) {
	year := time.Now().UTC().Year()
	if raw := c.Query("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil || y < 2000 || y > 2100 {
			response.ValidationError(c, map[string]string{"year": "integer"})
			return
		}
		year = y
	}
	rep, err := h.service.YearlyFinancial(c.Request.Context(), year)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to build financial report")
		return
	}
	response.JSON(c, http.StatusOK, rep)
}

// Export streams bookings or service line items as JSON or CSV.
func (h *Handler) Export(c *gin.Context) {
	reportType := c.DefaultQuery("report_type", "bookings")
	format := c.DefaultQuery("format", "json")
	if reportType != "bookings" && reportType != "services" {
		response.ValidationError(c, map[string]string{"report_type": "in"})
		return
	}
	if format != "json" && format != "csv" {
		response.ValidationError(c, map[string]string{"format": "in"})
		return
	}

	rng, ok := parseRange(c)
	if !ok {
		return
	}

	var records [][]string
	var payload any
	switch reportType {
	case "bookings":
		rows, err := h.service.ExportBookings(c.Request.Context(), rng)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to export bookings")
			return
		}
		payload = rows
		records = append(records, []string{
			"booking_id", "customer_name", "customer_email", "room_number",
			"room_type", "check_in_date", "check_out_date", "total_nights",
			"total_amount", "status", "booking_date",
		})
		for _, r := range rows {
			records = append(records, []string{
				strconv.FormatInt(r.BookingID, 10),
				r.CustomerName,
				r.CustomerEmail,
				r.RoomNumber,
				r.RoomType,
				r.CheckInDate.Format(dateLayout),
				r.CheckOutDate.Format(dateLayout),
				strconv.Itoa(r.TotalNights),
				strconv.FormatFloat(r.TotalAmount, 'f', 2, 64),
				r.Status,
				r.BookingDate.Format(dateLayout),
			})
		}
	case "services":
		rows, err := h.service.ExportServices(c.Request.Context(), rng)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to export services")
			return
		}
		payload = rows
		records = append(records, []string{
			"item_id", "booking_id", "service_name", "category", "quantity",
			"unit_price", "total_price", "service_date", "status",
		})
		for _, r := range rows {
			records = append(records, []string{
				strconv.FormatInt(r.ItemID, 10),
				strconv.FormatInt(r.BookingID, 10),
				r.ServiceName,
				r.Category,
				strconv.Itoa(r.Quantity),
				strconv.FormatFloat(r.UnitPrice, 'f', 2, 64),
				strconv.FormatFloat(r.TotalPrice, 'f', 2, 64),
				r.ServiceDate.Format(dateLayout),
				r.Status,
			})
		}
	}

	if format == "json" {
		response.JSON(c, http.StatusOK, gin.H{
			"report_type": reportType,
			"start_date":  rng.Start.Format(dateLayout),
			"end_date":    rng.End.Format(dateLayout),
			"data":        payload,
		})
		return
	}

	filename := fmt.Sprintf("%s_export_%s.csv", reportType, time.Now().UTC().Format(dateLayout))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	if err := w.WriteAll(records); err != nil {
		_ = c.Error(err)
	}
}
