package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"CareDesk360/models"
	"CareDesk360/services"
	"CareDesk360/utils"
)

func Patient(c *gin.Engine) {
	patient := c.Group("apis/patient")
	{
		patient.POST("/create", CreatePatient)
		patient.GET("/get", FetchAllPatients)
		patient.GET("/get/:id", FetchPatientByCode)
		patient.PUT("/update/:id", UpdatePatientByCode)
		patient.DELETE("/delete/:id", DeletePatientByCode)
	}
}

/*
* Register a patient,the MR number is derived from the generated code
 */
func CreatePatient(c *gin.Context) {
	var req models.CreatePatientRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err.Error()))
		return
	}
	patient, err := services.CreatePatient(c, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(patient))
}

func FetchAllPatients(c *gin.Context) {
	currentPage, limit, ok := pageQuery(c)
	if !ok {
		return
	}
	search := c.Query("search")
	patients, count, err := services.FetchAllPatients(c, search, currentPage, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.PaginatedResponse(patients, search, len(patients), count, currentPage, limit))
}

func FetchPatientByCode(c *gin.Context) {
	patient, err := services.FetchPatientByCode(c, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(patient))
}

func UpdatePatientByCode(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err.Error()))
		return
	}
	updated, err := services.UpdatePatientByCode(c, c.Param("id"), data)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(updated))
}

func DeletePatientByCode(c *gin.Context) {
	deleted, err := services.DeletePatientByCode(c, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(deleted))
}
