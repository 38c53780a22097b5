package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"CareDesk360/models"
	"CareDesk360/services"
	"CareDesk360/utils"
)

func Invoice(c *gin.Engine) {
	invoice := c.Group("apis/invoice")
	{
		invoice.POST("/create", CreateInvoice)
		invoice.GET("/get", FetchAllInvoices)
		invoice.GET("/get/:id", FetchInvoiceByCode)
		invoice.GET("/summary", FetchInvoiceSummary)
		invoice.POST("/pay/:id", PayInvoice)
		invoice.DELETE("/delete/:id", DeleteInvoiceByCode)
	}
}

func CreateInvoice(c *gin.Context) {
	var req models.CreateInvoiceRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err.Error()))
		return
	}
	invoice, err := services.CreateInvoice(c, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(invoice))
}

/*
* Collect every query predicate into the filter
* minTotal/maxTotal carry a presence flag so zero stays a valid bound
 */
func invoiceFilterFromQuery(c *gin.Context) (models.InvoiceFilter, bool) {
	filter := models.InvoiceFilter{
		DoctorID:      c.Query("doctorId"),
		PatientID:     c.Query("patientId"),
		InvoiceNumber: c.Query("invoiceNumber"),
		PaymentMode:   c.Query("paymentMode"),
		Status:        c.Query("status"),
		PatientName:   c.Query("patientName"),
		MRNumber:      c.Query("mrNumber"),
		Phone:         c.Query("phone"),
		DoctorName:    c.Query("doctorName"),
		DepartmentID:  c.Query("departmentId"),
		Search:        c.Query("search"),
		From:          c.Query("from"),
		To:            c.Query("to"),
	}
	if raw := c.Query("minTotal"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, utils.FailedResponse("minTotal must be a number"))
			return filter, false
		}
		filter.MinTotal = value
		filter.HasMinTotal = true
	}
	if raw := c.Query("maxTotal"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, utils.FailedResponse("maxTotal must be a number"))
			return filter, false
		}
		filter.MaxTotal = value
		filter.HasMaxTotal = true
	}
	return filter, true
}

func FetchAllInvoices(c *gin.Context) {
	currentPage, limit, ok := pageQuery(c)
	if !ok {
		return
	}
	filter, ok := invoiceFilterFromQuery(c)
	if !ok {
		return
	}
	filter.Page = currentPage
	filter.Limit = limit
	invoices, count, summary, err := services.FetchInvoices(c, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	response := utils.PaginatedResponse(invoices, filter.Search, len(invoices), count, currentPage, limit)
	response["summary"] = summary
	c.JSON(http.StatusOK, response)
}

func FetchInvoiceByCode(c *gin.Context) {
	invoice, err := services.FetchInvoiceByCode(c, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(invoice))
}

/*
* Totals across the whole filtered set,not one page
 */
func FetchInvoiceSummary(c *gin.Context) {
	filter, ok := invoiceFilterFromQuery(c)
	if !ok {
		return
	}
	summary, count, err := services.FetchInvoiceSummary(c, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(gin.H{"summary": summary, "count": count}))
}

func PayInvoice(c *gin.Context) {
	var req models.PayInvoiceRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err.Error()))
		return
	}
	invoice, err := services.PayInvoice(c, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(invoice))
}

func DeleteInvoiceByCode(c *gin.Context) {
	deleted, err := services.DeleteInvoiceByCode(c, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(deleted))
}
