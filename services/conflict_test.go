package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"CareDesk360/models"
)

func TestLeaveBlocks(t *testing.T) {
	leave := models.Leave{DoctorID: "D0001", StartDate: "2026-03-10", EndDate: "2026-03-12"}

	assert.False(t, LeaveBlocks(leave, "2026-03-09"))
	assert.True(t, LeaveBlocks(leave, "2026-03-10"))
	assert.True(t, LeaveBlocks(leave, "2026-03-11"))
	assert.True(t, LeaveBlocks(leave, "2026-03-12"))
	assert.False(t, LeaveBlocks(leave, "2026-03-13"))
}

func TestLeaveBlocksSingleDay(t *testing.T) {
	leave := models.Leave{StartDate: "2026-03-10", EndDate: "2026-03-10"}
	assert.True(t, LeaveBlocks(leave, "2026-03-10"))
	assert.False(t, LeaveBlocks(leave, "2026-03-11"))
}
