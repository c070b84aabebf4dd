package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hospital-chatbot-backend/models"
	"hospital-chatbot-backend/services"
)

type DoctorController struct {
	doctors services.DoctorFinder
}

func NewDoctorController(doctors services.DoctorFinder) *DoctorController {
	return &DoctorController{
		doctors: doctors,
	}
}

// ListDoctors returns the directory, optionally narrowed by specialization
// or name substring.
func (dc *DoctorController) ListDoctors(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		doctors []models.Doctor
		err     error
	)
	switch {
	case c.Query("specialization") != "":
		doctors, err = dc.doctors.FindBySpecialization(ctx, c.Query("specialization"))
	case c.Query("name") != "":
		doctors, err = dc.doctors.FindByName(ctx, c.Query("name"))
	default:
		doctors, err = dc.doctors.FindAll(ctx)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve doctors",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"doctors": doctors,
		"count":   len(doctors),
	})
}
