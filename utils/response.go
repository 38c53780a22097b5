package utils

import (
	"math"

	"github.com/gin-gonic/gin"
)

/*
* Response envelope used by every controller
* status is ok | fail | error
 */
func SuccessResponse(data interface{}) gin.H {
	return gin.H{
		"status": "ok",
		"data":   data,
	}
}

func FailedResponse(message string) gin.H {
	return gin.H{
		"status":  "fail",
		"message": message,
	}
}

func ErrorResponse(err error) gin.H {
	return gin.H{
		"status": "error",
		"error":  err.Error(),
	}
}

/*
* Paginated list envelope
* page is the number of rows in the current page,count is the total matching rows
 */
func PaginatedResponse(data interface{}, search string, page, count int, currentPage, limit int64) gin.H {
	return gin.H{
		"status":      "ok",
		"data":        data,
		"search":      search,
		"page":        page,
		"count":       count,
		"totalPages":  TotalPages(count, limit),
		"currentPage": currentPage,
		"limit":       limit,
	}
}

func TotalPages(count int, limit int64) int {
	if limit <= 0 {
		return 0
	}
	return int(math.Ceil(float64(count) / float64(limit)))
}
