package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"CareDesk360/models"
	"CareDesk360/services"
	"CareDesk360/utils"
)

func Token(c *gin.Engine) {
	token := c.Group("apis/token")
	{
		token.POST("/create", CreateToken)
		token.GET("/get", FetchAllTokens)
		token.GET("/get/:id", FetchTokenByCode)
		token.PUT("/update/:id", UpdateTokenByCode)
		token.DELETE("/delete/:id", DeleteTokenByCode)
	}
}

/*
* Issue a queue token,auto assigning the number when none is given
 */
func CreateToken(c *gin.Context) {
	var req models.CreateTokenRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err.Error()))
		return
	}
	token, err := services.CreateToken(c, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(token))
}

func FetchAllTokens(c *gin.Context) {
	currentPage, limit, ok := pageQuery(c)
	if !ok {
		return
	}
	tokens, count, err := services.FetchAllTokens(c, c.Query("doctorId"), c.Query("tokenDate"), c.Query("status"), currentPage, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.PaginatedResponse(tokens, "", len(tokens), count, currentPage, limit))
}

func FetchTokenByCode(c *gin.Context) {
	token, err := services.FetchTokenByCode(c, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(token))
}

func UpdateTokenByCode(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err.Error()))
		return
	}
	updated, err := services.UpdateTokenByCode(c, c.Param("id"), data)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(updated))
}

func DeleteTokenByCode(c *gin.Context) {
	deleted, err := services.DeleteTokenByCode(c, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(deleted))
}
