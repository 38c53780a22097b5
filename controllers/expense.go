package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"CareDesk360/services"
	"CareDesk360/utils"
)

func Expense(c *gin.Engine) {
	expense := c.Group("apis/expense")
	{
		expense.POST("/create", CreateExpense)
		expense.GET("/get", FetchAllExpenses)
		expense.GET("/get/:id", fetchResourceHandler(services.ExpenseResource))
		expense.PUT("/update/:id", updateResourceHandler(services.ExpenseResource))
		expense.DELETE("/delete/:id", deleteResourceHandler(services.ExpenseResource))
	}
}

func ExpenseCategory(c *gin.Engine) {
	category := c.Group("apis/expenseCategory")
	{
		category.POST("/create", createResourceHandler(services.ExpenseCategoryResource))
		category.GET("/get", fetchAllResourcesHandler(services.ExpenseCategoryResource))
		category.GET("/get/:id", fetchResourceHandler(services.ExpenseCategoryResource))
		category.PUT("/update/:id", updateResourceHandler(services.ExpenseCategoryResource))
		category.DELETE("/delete/:id", DeleteExpenseCategory)
	}
}

func CreateExpense(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err.Error()))
		return
	}
	expense, err := services.CreateExpense(c, data)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(expense))
}

func FetchAllExpenses(c *gin.Context) {
	currentPage, limit, ok := pageQuery(c)
	if !ok {
		return
	}
	search := c.Query("search")
	filter := services.ExpenseFilter(c.Query("categoryId"), c.Query("from"), c.Query("to"))
	expenses, count, err := services.FetchAllResources(c, services.ExpenseResource, filter, search, currentPage, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.PaginatedResponse(expenses, search, len(expenses), count, currentPage, limit))
}

// A category with expenses attached is kept.
func DeleteExpenseCategory(c *gin.Context) {
	deleted, err := services.DeleteExpenseCategory(c, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(deleted))
}
