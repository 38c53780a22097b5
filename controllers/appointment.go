package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"CareDesk360/models"
	"CareDesk360/services"
	"CareDesk360/utils"
)

func Appointment(c *gin.Engine) {
	appointment := c.Group("apis/appointment")
	{
		appointment.POST("/create", CreateAppointment)
		appointment.GET("/get", FetchAllAppointments)
		appointment.GET("/get/:id", FetchAppointmentByCode)
		appointment.GET("/slots", FetchAvailableSlots)
		appointment.PUT("/update/:id", UpdateAppointmentByCode)
		appointment.DELETE("/delete/:id", DeleteAppointmentByCode)
	}
}

/*
* Bind the typed request
* A recurring request answers with the series result instead of a document
 */
func CreateAppointment(c *gin.Context) {
	var req models.CreateAppointmentRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err.Error()))
		return
	}
	response, err := services.CreateAppointment(c, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(response))
}

func FetchAllAppointments(c *gin.Context) {
	currentPage, limit, ok := pageQuery(c)
	if !ok {
		return
	}
	filter := services.AppointmentFilter{
		DoctorID:  c.Query("doctorId"),
		PatientID: c.Query("patientId"),
		Status:    c.Query("status"),
		From:      c.Query("from"),
		To:        c.Query("to"),
		Page:      currentPage,
		Limit:     limit,
	}
	appointments, count, err := services.FetchAllAppointments(c, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.PaginatedResponse(appointments, "", len(appointments), count, currentPage, limit))
}

func FetchAppointmentByCode(c *gin.Context) {
	appointment, err := services.FetchAppointmentByCode(c, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(appointment))
}

/*
* Open slots for a doctor on a date,taken from the weekly schedule minus
* booked appointments
 */
func FetchAvailableSlots(c *gin.Context) {
	doctorID := c.Query("doctorId")
	date := c.Query("date")
	if doctorID == "" || date == "" {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(utils.MISSING_REQUIRED_FIELDS))
		return
	}
	slots, err := services.AvailableSlots(c, doctorID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(slots))
}

func UpdateAppointmentByCode(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err.Error()))
		return
	}
	updated, err := services.UpdateAppointmentByCode(c, c.Param("id"), data)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(updated))
}

func DeleteAppointmentByCode(c *gin.Context) {
	deleted, err := services.DeleteAppointmentByCode(c, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(deleted))
}
