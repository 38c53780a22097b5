package models

import "time"

// Appointment lifecycle statuses.
const (
	StatusScheduled = "Scheduled"
	StatusConfirmed = "Confirmed"
	StatusCheckedIn = "Checked-in"
	StatusCompleted = "Completed"
	StatusNoShow    = "No-Show"
	StatusCancelled = "Cancelled"
)

type Appointment struct {
	Code             string    `json:"code" bson:"code"`
	PatientID        string    `json:"patientId" bson:"patientId"`
	DoctorID         string    `json:"doctorId" bson:"doctorId"`
	Date             string    `json:"date" bson:"date"`
	StartTime        string    `json:"startTime" bson:"startTime"`
	EndTime          string    `json:"endTime" bson:"endTime"`
	ConsultationType string    `json:"consultationType,omitempty" bson:"consultationType,omitempty"`
	Status           string    `json:"status" bson:"status"`
	IsRecurring      bool      `json:"isRecurring" bson:"isRecurring"`
	RepeatEvery      int       `json:"repeatEvery,omitempty" bson:"repeatEvery,omitempty"`
	RepeatUnit       string    `json:"repeatUnit,omitempty" bson:"repeatUnit,omitempty"`
	RepeatDays       []string  `json:"repeatDays,omitempty" bson:"repeatDays,omitempty"`
	RepeatEndDate    string    `json:"repeatEndDate,omitempty" bson:"repeatEndDate,omitempty"`
	SeriesID         string    `json:"seriesId,omitempty" bson:"seriesId,omitempty"`
	Notes            string    `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt        time.Time `json:"createdAt" bson:"createdAt"`
	CreatedBy        string    `json:"createdBy" bson:"createdBy"`
	UpdatedAt        time.Time `json:"updatedAt" bson:"updatedAt"`
	UpdatedBy        string    `json:"updatedBy" bson:"updatedBy"`
}

type CreateAppointmentRequest struct {
	PatientID        string `json:"patientId" binding:"required"`
	DoctorID         string `json:"doctorId" binding:"required"`
	Date             string `json:"date" binding:"required"`
	StartTime        string `json:"startTime" binding:"required"`
	EndTime          string `json:"endTime" binding:"required"`
	ConsultationType string `json:"consultationType"`
	IsRecurring      bool   `json:"isRecurring"`
	// RepeatEvery and RepeatUnit are stored with the series but the
	// expansion currently walks day by day; see ExpandRecurrence.
	RepeatEvery   int      `json:"repeatEvery"`
	RepeatUnit    string   `json:"repeatUnit"`
	RepeatDays    []string `json:"repeatDays"`
	RepeatEndDate string   `json:"repeatEndDate"`
	Notes         string   `json:"notes"`
}

// SkippedDate is one expanded date dropped from a recurring series,
// with the conflict that excluded it.
type SkippedDate struct {
	Date   string `json:"date" bson:"date"`
	Reason string `json:"reason" bson:"reason"`
}

// RecurringResult reports what a recurring creation actually booked.
type RecurringResult struct {
	SeriesID string        `json:"seriesId"`
	Created  []string      `json:"created"`
	Skipped  []SkippedDate `json:"skipped"`
}

func ValidAppointmentStatus(status string) bool {
	switch status {
	case StatusScheduled, StatusConfirmed, StatusCheckedIn, StatusCompleted, StatusNoShow, StatusCancelled:
		return true
	}
	return false
}
