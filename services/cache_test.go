package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CareDesk360/models"
)

func TestDecodeCachedIntoModel(t *testing.T) {
	cached := map[string]interface{}{
		"code":      "APT-1",
		"patientId": "PAT-1",
		"doctorId":  "DOC-1",
		"date":      "2026-01-05",
		"startTime": "09:00",
		"endTime":   "09:30",
		"status":    models.StatusScheduled,
		"createdAt": "2026-01-04T10:00:00Z",
	}
	var appointment models.Appointment
	require.NoError(t, decodeCached(cached, &appointment))
	assert.Equal(t, "APT-1", appointment.Code)
	assert.Equal(t, "DOC-1", appointment.DoctorID)
	assert.Equal(t, models.StatusScheduled, appointment.Status)
	assert.Equal(t, time.Date(2026, 1, 4, 10, 0, 0, 0, time.UTC), appointment.CreatedAt)
}

func TestDecodeCachedNestedFields(t *testing.T) {
	cached := map[string]interface{}{
		"code":        "TKN-1",
		"patientId":   "PAT-1",
		"doctorId":    "DOC-1",
		"tokenDate":   "2026-01-05",
		"tokenNumber": float64(7),
		"vitals": map[string]interface{}{
			"bloodPressure": "120/80",
			"pulse":         "72",
		},
	}
	var token models.Token
	require.NoError(t, decodeCached(cached, &token))
	assert.Equal(t, 7, token.TokenNumber)
	assert.Equal(t, "120/80", token.Vitals.BloodPressure)
	assert.Equal(t, "72", token.Vitals.Pulse)
}

func TestDecodeCachedTypeMismatch(t *testing.T) {
	cached := map[string]interface{}{
		"code":        "TKN-2",
		"tokenNumber": "seven",
	}
	var token models.Token
	assert.Error(t, decodeCached(cached, &token))
}
