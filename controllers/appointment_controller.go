package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"hospital-chatbot-backend/models"
	"hospital-chatbot-backend/repositories"
	"hospital-chatbot-backend/schedule"
	"hospital-chatbot-backend/services"
)

type AppointmentController struct {
	bookingService *services.BookingService
	now            func() time.Time
}

func NewAppointmentController(bookingService *services.BookingService, clock func() time.Time) *AppointmentController {
	return &AppointmentController{
		bookingService: bookingService,
		now:            clock,
	}
}

// CreateAppointment is the direct REST booking path; it runs the same
// availability precondition as the chat flow.
func (ac *AppointmentController) CreateAppointment(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	doctorID, err := primitive.ObjectIDFromHex(req.DoctorID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid doctor_id",
		})
		return
	}

	appointment, err := ac.bookingService.BookDirect(c.Request.Context(), doctorID, req.PatientID, req.Date, req.Time, ac.now())
	switch {
	case errors.Is(err, schedule.ErrMissingDate),
		errors.Is(err, schedule.ErrInvalidDateFormat),
		errors.Is(err, schedule.ErrMissingTime),
		errors.Is(err, schedule.ErrInvalidTimeFormat):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
	case errors.Is(err, services.ErrDoctorNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Doctor not found or has no availability on record",
		})
	case errors.Is(err, services.ErrNotAvailable):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Doctor is not available at the requested date and time",
		})
	case errors.Is(err, repositories.ErrSlotTaken):
		c.JSON(http.StatusConflict, gin.H{
			"error": "That slot has already been booked",
		})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to book appointment",
		})
	default:
		c.JSON(http.StatusCreated, gin.H{
			"appointment": appointment,
		})
	}
}
