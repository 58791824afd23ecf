package handlers

import (
	"net/http"
	"time"

	"bookly/middleware"
	"bookly/models"
	"bookly/services/booking"
	"bookly/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the client-facing booking engine endpoints.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// ListAvailableSlots returns the free slots for a service on a date.
// Query params: businessId, serviceId, date (YYYY-MM-DD).
func (h *BookingHandler) ListAvailableSlots(c *gin.Context) {
	businessID := c.Query("businessId")
	serviceID := c.Query("serviceId")
	dateStr := c.Query("date")
	if businessID == "" || serviceID == "" || dateStr == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "businessId, serviceId and date are required")
		return
	}
	date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "date must be YYYY-MM-DD")
		return
	}

	slots, err := h.Service.ListAvailableSlots(businessID, serviceID, date)
	if err != nil {
		bookingError(c, err, "failed to compute available slots")
		return
	}

	out := make([]models.AvailableSlot, 0, len(slots))
	for _, s := range slots {
		out = append(out, models.AvailableSlot{
			Slot:  s,
			Label: utils.FormatClockRange(minutesOfDay(s.Start), minutesOfDay(s.End)),
		})
	}
	c.JSON(http.StatusOK, out)
}

// Reserve books a slot for the caller.
func (h *BookingHandler) Reserve(c *gin.Context) {
	var input struct {
		BusinessID string          `json:"businessId" binding:"required"`
		ServiceID  string          `json:"serviceId" binding:"required"`
		Slot       models.TimeSlot `json:"slot" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	committed, err := h.Service.Reserve(middleware.CallerID(c), input.BusinessID, input.ServiceID, input.Slot)
	if err != nil {
		bookingError(c, err, "failed to reserve slot")
		return
	}
	c.JSON(http.StatusCreated, committed)
}

// Cancel soft-cancels a booking on behalf of the caller.
func (h *BookingHandler) Cancel(c *gin.Context) {
	cancelled, err := h.Service.Cancel(c.Param("id"), middleware.CallerID(c))
	if err != nil {
		bookingError(c, err, "failed to cancel booking")
		return
	}
	c.JSON(http.StatusOK, cancelled)
}

// ListMine returns the caller's bookings.
func (h *BookingHandler) ListMine(c *gin.Context) {
	bookings, err := h.Service.ListBookingsForUser(middleware.CallerID(c))
	if err != nil {
		bookingError(c, err, "failed to list bookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ListForBusiness returns a business's bookings to its owner.
func (h *BookingHandler) ListForBusiness(c *gin.Context) {
	bookings, err := h.Service.ListBookingsForBusiness(c.Param("id"), middleware.CallerID(c))
	if err != nil {
		bookingError(c, err, "failed to list bookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// bookingError maps engine failure codes to HTTP statuses.
func bookingError(c *gin.Context, err error, fallback string) {
	switch booking.CodeOf(err) {
	case booking.CodeNotFound:
		utils.JSONError(c, http.StatusNotFound, "not found", err.Error())
	case booking.CodeQuotaExceeded:
		utils.JSONError(c, http.StatusForbidden, "monthly booking limit reached", err.Error())
	case booking.CodeSlotConflict:
		utils.JSONError(c, http.StatusConflict, "slot no longer available", err.Error())
	case booking.CodeInvalidInput:
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
	case booking.CodeForbidden:
		utils.JSONError(c, http.StatusForbidden, "not allowed", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, fallback, err.Error())
	}
}

func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
