package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 20))
	assert.Equal(t, 1, TotalPages(1, 20))
	assert.Equal(t, 1, TotalPages(20, 20))
	assert.Equal(t, 2, TotalPages(21, 20))
	assert.Equal(t, 5, TotalPages(100, 20))
	assert.Equal(t, 0, TotalPages(10, 0))
}

func TestEnvelopes(t *testing.T) {
	ok := SuccessResponse("x")
	assert.Equal(t, "ok", ok["status"])
	assert.Equal(t, "x", ok["data"])

	fail := FailedResponse("nope")
	assert.Equal(t, "fail", fail["status"])
	assert.Equal(t, "nope", fail["message"])

	errResp := ErrorResponse(errors.New("boom"))
	assert.Equal(t, "error", errResp["status"])
	assert.Equal(t, "boom", errResp["error"])
}

func TestPaginatedResponse(t *testing.T) {
	resp := PaginatedResponse([]string{"a", "b"}, "ali", 2, 41, 1, 20)
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, 2, resp["page"])
	assert.Equal(t, 41, resp["count"])
	assert.Equal(t, 3, resp["totalPages"])
	assert.Equal(t, int64(1), resp["currentPage"])
}
