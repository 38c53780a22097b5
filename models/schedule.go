package models

import "time"

// DaySchedule is one weekday's working window for a doctor.
type DaySchedule struct {
	Available    bool   `json:"available" bson:"available"`
	StartTime    string `json:"startTime" bson:"startTime"`
	EndTime      string `json:"endTime" bson:"endTime"`
	SlotDuration int    `json:"slotDuration" bson:"slotDuration"`
}

// DoctorSchedule is the weekly grid, one document per doctor. Days is
// keyed by the lowercase weekday name.
type DoctorSchedule struct {
	Code      string                 `json:"code" bson:"code"`
	DoctorID  string                 `json:"doctorId" bson:"doctorId"`
	Days      map[string]DaySchedule `json:"days" bson:"days"`
	CreatedAt time.Time              `json:"createdAt" bson:"createdAt"`
	CreatedBy string                 `json:"createdBy" bson:"createdBy"`
	UpdatedAt time.Time              `json:"updatedAt" bson:"updatedAt"`
	UpdatedBy string                 `json:"updatedBy" bson:"updatedBy"`
}

type UpsertScheduleRequest struct {
	DoctorID string                 `json:"doctorId" binding:"required"`
	Days     map[string]DaySchedule `json:"days" binding:"required"`
}

// Slot is one bookable interval generated from a DaySchedule.
type Slot struct {
	Start        string `json:"start" bson:"start"`
	End          string `json:"end" bson:"end"`
	StartMinutes int    `json:"startMinutes" bson:"startMinutes"`
	EndMinutes   int    `json:"endMinutes" bson:"endMinutes"`
	IsBooked     bool   `json:"isBooked" bson:"isBooked"`
	PatientID    string `json:"patientId,omitempty" bson:"patientId,omitempty"`
}
