package services

import (
	"errors"
	"log"

	db "github.com/KanapuramVaishnavi/Core/config/db"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"CareDesk360/utils"
)

var ExpenseResource = Resource{
	Collection:   utils.ExpenseCollection,
	Required:     []string{"title", "amount", "date", "categoryId"},
	SearchFields: []string{"title"},
}

/*
* Expenses keep the receipt filename written by the upload middleware,the
* controller only passes it through
 */
func CreateExpense(c *gin.Context, data map[string]interface{}) (map[string]interface{}, error) {
	if dateVal, ok := data["date"].(string); ok {
		if _, err := ParseDate(dateVal); err != nil {
			log.Println("Error parsing expense date: ", err)
			return nil, err
		}
	}
	return CreateResource(c, ExpenseResource, data)
}

// ExpenseFilter narrows the expense list by category and date range.
func ExpenseFilter(categoryID, from, to string) bson.M {
	filter := bson.M{}
	if categoryID != "" {
		filter["categoryId"] = categoryID
	}
	if from != "" || to != "" {
		dateRange := bson.M{}
		if from != "" {
			dateRange["$gte"] = from
		}
		if to != "" {
			dateRange["$lte"] = to
		}
		filter["date"] = dateRange
	}
	return filter
}

/*
* A category with expenses still attached cannot be removed
 */
func DeleteExpenseCategory(c *gin.Context, categoryID string) (string, error) {
	expColl := db.OpenCollections(utils.ExpenseCollection)
	attached, err := expColl.CountDocuments(c, bson.M{"categoryId": categoryID})
	if err != nil {
		log.Println("Error counting expenses: ", err)
		return "", err
	}
	if attached > 0 {
		return "", errors.New(utils.CATEGORY_HAS_EXPENSES)
	}
	return DeleteResourceByCode(c, ExpenseCategoryResource, categoryID)
}
