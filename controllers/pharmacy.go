package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"CareDesk360/models"
	"CareDesk360/services"
	"CareDesk360/utils"
)

func PharmacyItem(c *gin.Engine) {
	item := c.Group("apis/pharmacyItem")
	{
		item.POST("/create", CreatePharmacyItem)
		item.GET("/get", FetchAllPharmacyItems)
		item.GET("/get/:id", FetchPharmacyItemByCode)
		item.PUT("/update/:id", UpdatePharmacyItemByCode)
		item.DELETE("/delete/:id", DeletePharmacyItemByCode)
	}
}

func PosSale(c *gin.Engine) {
	pos := c.Group("apis/posSale")
	{
		pos.POST("/create", CreatePosSale)
		pos.GET("/get", fetchAllResourcesHandler(services.PosSaleResource))
		pos.GET("/get/:id", fetchResourceHandler(services.PosSaleResource))
		pos.DELETE("/delete/:id", deleteResourceHandler(services.PosSaleResource))
	}
}

func PurchaseOrder(c *gin.Engine) {
	order := c.Group("apis/purchaseOrder")
	{
		order.POST("/create", CreatePurchaseOrder)
		order.GET("/get", fetchAllResourcesHandler(services.PurchaseOrderResource))
		order.GET("/get/:id", fetchResourceHandler(services.PurchaseOrderResource))
		order.PUT("/receive/:id", ReceivePurchaseOrder)
		order.DELETE("/delete/:id", deleteResourceHandler(services.PurchaseOrderResource))
	}
}

func StockAdjustment(c *gin.Engine) {
	adjustment := c.Group("apis/stockAdjustment")
	{
		adjustment.POST("/create", CreateStockAdjustment)
		adjustment.GET("/get", fetchAllResourcesHandler(services.StockAdjustmentResource))
		adjustment.GET("/get/:id", fetchResourceHandler(services.StockAdjustmentResource))
		adjustment.DELETE("/delete/:id", deleteResourceHandler(services.StockAdjustmentResource))
	}
}

func MissedSale(c *gin.Engine) {
	missed := c.Group("apis/missedSale")
	{
		missed.GET("/get", fetchAllResourcesHandler(services.MissedSaleResource))
		missed.GET("/get/:id", fetchResourceHandler(services.MissedSaleResource))
		missed.DELETE("/delete/:id", deleteResourceHandler(services.MissedSaleResource))
	}
}

func StoreClosing(c *gin.Engine) {
	closing := c.Group("apis/storeClosing")
	{
		closing.POST("/create", CreateStoreClosing)
		closing.GET("/get", fetchAllResourcesHandler(services.StoreClosingResource))
		closing.GET("/get/:id", fetchResourceHandler(services.StoreClosingResource))
		closing.DELETE("/delete/:id", deleteResourceHandler(services.StoreClosingResource))
	}
}

func CreatePharmacyItem(c *gin.Context) {
	var req models.CreatePharmacyItemRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err.Error()))
		return
	}
	item, err := services.CreatePharmacyItem(c, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(item))
}

/*
* lowStock=true keeps only the items at or below their reorder level
 */
func FetchAllPharmacyItems(c *gin.Context) {
	currentPage, limit, ok := pageQuery(c)
	if !ok {
		return
	}
	search := c.Query("search")
	lowStock := c.Query("lowStock") == "true"
	items, count, err := services.FetchAllPharmacyItems(c, search, c.Query("categoryId"), lowStock, currentPage, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.PaginatedResponse(items, search, len(items), count, currentPage, limit))
}

func FetchPharmacyItemByCode(c *gin.Context) {
	item, err := services.FetchPharmacyItemByCode(c, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(item))
}

func UpdatePharmacyItemByCode(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err.Error()))
		return
	}
	updated, err := services.UpdatePharmacyItemByCode(c, c.Param("id"), data)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(updated))
}

func DeletePharmacyItemByCode(c *gin.Context) {
	deleted, err := services.DeletePharmacyItemByCode(c, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(deleted))
}

/*
* Counter sale,stock is decremented per line with a guarded $inc
 */
func CreatePosSale(c *gin.Context) {
	var req models.CreatePosSaleRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err.Error()))
		return
	}
	sale, err := services.CreatePosSale(c, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(sale))
}

func CreateStockAdjustment(c *gin.Context) {
	var req models.CreateStockAdjustmentRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err.Error()))
		return
	}
	adjustment, err := services.CreateStockAdjustment(c, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(adjustment))
}

func CreatePurchaseOrder(c *gin.Context) {
	var req models.CreatePurchaseOrderRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err.Error()))
		return
	}
	order, err := services.CreatePurchaseOrder(c, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(order))
}

// Receiving restocks every line and marks the order Received.
func ReceivePurchaseOrder(c *gin.Context) {
	received, err := services.ReceivePurchaseOrder(c, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(received))
}

func CreateStoreClosing(c *gin.Context) {
	var req models.StoreClosingRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err.Error()))
		return
	}
	closing, err := services.CreateStoreClosing(c, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(closing))
}
