package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"CareDesk360/models"
	"CareDesk360/services"
	"CareDesk360/utils"
)

func User(c *gin.Engine) {
	user := c.Group("apis/user")
	{
		user.POST("/create", CreateUser)
		user.GET("/get", FetchAllUsers)
		user.GET("/get/:id", FetchUserByCode)
		user.PUT("/update/:id", UpdateUserByCode)
		user.DELETE("/delete/:id", DeleteUserByCode)
	}
}

func CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err.Error()))
		return
	}
	user, err := services.CreateUser(c, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(user))
}

func FetchAllUsers(c *gin.Context) {
	currentPage, limit, ok := pageQuery(c)
	if !ok {
		return
	}
	search := c.Query("search")
	users, count, err := services.FetchAllUsers(c, search, c.Query("role"), currentPage, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.PaginatedResponse(users, search, len(users), count, currentPage, limit))
}

func FetchUserByCode(c *gin.Context) {
	user, err := services.FetchUserByCode(c, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(user))
}

func UpdateUserByCode(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err.Error()))
		return
	}
	updated, err := services.UpdateUserByCode(c, c.Param("id"), data)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(updated))
}

func DeleteUserByCode(c *gin.Context) {
	deleted, err := services.DeleteUserByCode(c, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(deleted))
}
