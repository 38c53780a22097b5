package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"CareDesk360/utils"
)

/*
* Validation failures answer 400 with status fail
* Date parse failures bubble up from the services, keep them user facing
* Everything else is a driver error and answers 500 with status error
 */
func respondError(c *gin.Context, err error) {
	msg := err.Error()
	if utils.IsUserFacing(msg) {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(msg))
		return
	}
	var parseErr *time.ParseError
	if errors.As(err, &parseErr) {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(msg))
		return
	}
	c.JSON(http.StatusInternalServerError, utils.ErrorResponse(err))
}

// pageQuery reads the 1-indexed page number; page size is fixed per endpoint.
func pageQuery(c *gin.Context) (int64, int64, bool) {
	page := int64(1)
	if raw := c.Query("page"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, utils.FailedResponse(utils.INVALID_PAGE_NUMBER))
			return 0, 0, false
		}
		page = parsed
	}
	return page, utils.DefaultPageLimit, true
}
