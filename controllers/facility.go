package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"CareDesk360/models"
	"CareDesk360/services"
	"CareDesk360/utils"
)

func BedDetail(c *gin.Engine) {
	bed := c.Group("apis/bedDetail")
	{
		bed.POST("/create", CreateBedDetail)
		bed.GET("/get", FetchAllBedDetails)
		bed.GET("/get/:id", fetchResourceHandler(services.BedDetailResource))
		bed.PUT("/update/:id", UpdateBedDetail)
		bed.DELETE("/delete/:id", deleteResourceHandler(services.BedDetailResource))
	}
}

func RoomDetail(c *gin.Engine) {
	room := c.Group("apis/roomDetail")
	{
		room.POST("/create", CreateRoomDetail)
		room.GET("/get", FetchAllRoomDetails)
		room.GET("/get/:id", fetchResourceHandler(services.RoomDetailResource))
		room.PUT("/update/:id", UpdateRoomDetail)
		room.DELETE("/delete/:id", deleteResourceHandler(services.RoomDetailResource))
	}
}

func CreateBedDetail(c *gin.Context) {
	var req models.CreateBedDetailRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err.Error()))
		return
	}
	bed, err := services.CreateBedDetail(c, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(bed))
}

func CreateRoomDetail(c *gin.Context) {
	var req models.CreateRoomDetailRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err.Error()))
		return
	}
	room, err := services.CreateRoomDetail(c, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(room))
}

/*
* Beds narrow by ward and occupancy status
 */
func FetchAllBedDetails(c *gin.Context) {
	currentPage, limit, ok := pageQuery(c)
	if !ok {
		return
	}
	search := c.Query("search")
	filter := services.FacilityStatusFilter("wardId", c.Query("wardId"), c.Query("status"))
	beds, count, err := services.FetchAllResources(c, services.BedDetailResource, filter, search, currentPage, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.PaginatedResponse(beds, search, len(beds), count, currentPage, limit))
}

func FetchAllRoomDetails(c *gin.Context) {
	currentPage, limit, ok := pageQuery(c)
	if !ok {
		return
	}
	search := c.Query("search")
	filter := services.FacilityStatusFilter("roomId", c.Query("roomId"), c.Query("status"))
	rooms, count, err := services.FetchAllResources(c, services.RoomDetailResource, filter, search, currentPage, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.PaginatedResponse(rooms, search, len(rooms), count, currentPage, limit))
}

// Manual edits must not flip occupancy, the service strips the status field.
func UpdateBedDetail(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err.Error()))
		return
	}
	updated, err := services.UpdateFacilityByCode(c, services.BedDetailResource, c.Param("id"), data)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(updated))
}

func UpdateRoomDetail(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err.Error()))
		return
	}
	updated, err := services.UpdateFacilityByCode(c, services.RoomDetailResource, c.Param("id"), data)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(updated))
}
