package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequiredFieldMissing(t *testing.T) {
	data := map[string]interface{}{
		"name":   "X-Ray",
		"rate":   500.0,
		"count":  0.0,
		"active": false,
		"blank":  "",
	}
	assert.False(t, requiredFieldMissing(data, "name"))
	assert.False(t, requiredFieldMissing(data, "rate"))
	assert.False(t, requiredFieldMissing(data, "count"))
	assert.False(t, requiredFieldMissing(data, "active"))
	assert.True(t, requiredFieldMissing(data, "blank"))
	assert.True(t, requiredFieldMissing(data, "absent"))
}
