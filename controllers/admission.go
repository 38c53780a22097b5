package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"CareDesk360/models"
	"CareDesk360/services"
	"CareDesk360/utils"
)

func AdmitPatient(c *gin.Engine) {
	admit := c.Group("apis/admitPatient")
	{
		admit.POST("/create", CreateAdmission)
		admit.GET("/get", fetchAllResourcesHandler(services.AdmissionResource))
		admit.GET("/get/:id", fetchResourceHandler(services.AdmissionResource))
		admit.PUT("/update/:id", updateResourceHandler(services.AdmissionResource))
		admit.DELETE("/delete/:id", deleteResourceHandler(services.AdmissionResource))
	}
}

func DischargePatient(c *gin.Engine) {
	discharge := c.Group("apis/dischargePatient")
	{
		discharge.POST("/create", CreateDischarge)
		discharge.GET("/get", fetchAllResourcesHandler(services.DischargeResource))
		discharge.GET("/get/:id", fetchResourceHandler(services.DischargeResource))
		discharge.PUT("/update/:id", updateResourceHandler(services.DischargeResource))
		discharge.DELETE("/delete/:id", deleteResourceHandler(services.DischargeResource))
	}
}

/*
* Admit against a bed or room,the conditional status flip on the facility
* document is what prevents a double allocation
 */
func CreateAdmission(c *gin.Context) {
	var req models.AdmitPatientRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err.Error()))
		return
	}
	admission, err := services.AdmitPatient(c, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(admission))
}

func CreateDischarge(c *gin.Context) {
	var req models.DischargePatientRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err.Error()))
		return
	}
	discharge, err := services.DischargePatient(c, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(discharge))
}
