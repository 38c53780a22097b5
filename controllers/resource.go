package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"CareDesk360/services"
	"CareDesk360/utils"
)

/*
* Mount the five standard CRUD routes for a simple resource
* The richer entities have hand written controllers below this package
 */
func RegisterResource(c *gin.Engine, name string, res services.Resource) {
	group := c.Group("apis/" + name)
	{
		group.POST("/create", createResourceHandler(res))
		group.GET("/get", fetchAllResourcesHandler(res))
		group.GET("/get/:id", fetchResourceHandler(res))
		group.PUT("/update/:id", updateResourceHandler(res))
		group.DELETE("/delete/:id", deleteResourceHandler(res))
	}
}

func createResourceHandler(res services.Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		var data map[string]interface{}
		if err := c.BindJSON(&data); err != nil {
			c.JSON(http.StatusBadRequest, utils.FailedResponse(err.Error()))
			return
		}
		created, err := services.CreateResource(c, res, data)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, utils.SuccessResponse(created))
	}
}

func fetchAllResourcesHandler(res services.Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		currentPage, limit, ok := pageQuery(c)
		if !ok {
			return
		}
		search := c.Query("search")
		docs, count, err := services.FetchAllResources(c, res, nil, search, currentPage, limit)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, utils.PaginatedResponse(docs, search, len(docs), count, currentPage, limit))
	}
}

func fetchResourceHandler(res services.Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := services.FetchResourceByCode(c, res, c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, utils.SuccessResponse(doc))
	}
}

func updateResourceHandler(res services.Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		var data map[string]interface{}
		if err := c.BindJSON(&data); err != nil {
			c.JSON(http.StatusBadRequest, utils.FailedResponse(err.Error()))
			return
		}
		updated, err := services.UpdateResourceByCode(c, res, c.Param("id"), data)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, utils.SuccessResponse(updated))
	}
}

func deleteResourceHandler(res services.Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		deleted, err := services.DeleteResourceByCode(c, res, c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, utils.SuccessResponse(deleted))
	}
}
