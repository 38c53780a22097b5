package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"CareDesk360/models"
	"CareDesk360/services"
	"CareDesk360/utils"
)

func Leave(c *gin.Engine) {
	leave := c.Group("apis/leave")
	{
		leave.POST("/create", CreateLeave)
		leave.GET("/get", FetchAllLeaves)
		leave.GET("/get/:id", FetchLeaveByCode)
		leave.PUT("/update/:id", UpdateLeaveByCode)
		leave.DELETE("/delete/:id", DeleteLeaveByCode)
	}
}

func CreateLeave(c *gin.Context) {
	var req models.CreateLeaveRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err.Error()))
		return
	}
	leave, err := services.CreateLeave(c, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(leave))
}

func FetchAllLeaves(c *gin.Context) {
	currentPage, limit, ok := pageQuery(c)
	if !ok {
		return
	}
	leaves, count, err := services.FetchAllLeaves(c, c.Query("doctorId"), currentPage, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.PaginatedResponse(leaves, "", len(leaves), count, currentPage, limit))
}

func FetchLeaveByCode(c *gin.Context) {
	leave, err := services.FetchLeaveByCode(c, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(leave))
}

func UpdateLeaveByCode(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err.Error()))
		return
	}
	updated, err := services.UpdateLeaveByCode(c, c.Param("id"), data)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(updated))
}

func DeleteLeaveByCode(c *gin.Context) {
	deleted, err := services.DeleteLeaveByCode(c, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(deleted))
}
