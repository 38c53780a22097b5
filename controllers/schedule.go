package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"CareDesk360/models"
	"CareDesk360/services"
	"CareDesk360/utils"
)

func DoctorSchedule(c *gin.Engine) {
	schedule := c.Group("apis/doctorSchedule")
	{
		schedule.POST("/create", UpsertDoctorSchedule)
		schedule.GET("/get/:doctorId", FetchDoctorSchedule)
		schedule.PUT("/update/:doctorId", UpdateDoctorSchedule)
		schedule.DELETE("/delete/:doctorId", DeleteDoctorSchedule)
	}
}

/*
* One weekly grid per doctor,creating again replaces it
 */
func UpsertDoctorSchedule(c *gin.Context) {
	var req models.UpsertScheduleRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err.Error()))
		return
	}
	schedule, err := services.UpsertDoctorSchedule(c, req.DoctorID, req.Days)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(schedule))
}

func FetchDoctorSchedule(c *gin.Context) {
	schedule, err := services.FetchDoctorScheduleByDoctor(c, c.Param("doctorId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(schedule))
}

// Update is the same replace-the-grid operation keyed by the path param.
func UpdateDoctorSchedule(c *gin.Context) {
	var req struct {
		Days map[string]models.DaySchedule `json:"days" binding:"required"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err.Error()))
		return
	}
	schedule, err := services.UpsertDoctorSchedule(c, c.Param("doctorId"), req.Days)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(schedule))
}

func DeleteDoctorSchedule(c *gin.Context) {
	deleted, err := services.DeleteDoctorSchedule(c, c.Param("doctorId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(deleted))
}
