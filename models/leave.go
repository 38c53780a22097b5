package models

import "time"

// Leave blocks appointment booking for the doctor across the range,
// both ends inclusive.
type Leave struct {
	Code      string    `json:"code" bson:"code"`
	DoctorID  string    `json:"doctorId" bson:"doctorId"`
	StartDate string    `json:"startDate" bson:"startDate"`
	EndDate   string    `json:"endDate" bson:"endDate"`
	Reason    string    `json:"reason,omitempty" bson:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	CreatedBy string    `json:"createdBy" bson:"createdBy"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
	UpdatedBy string    `json:"updatedBy" bson:"updatedBy"`
}

type CreateLeaveRequest struct {
	DoctorID  string `json:"doctorId" binding:"required"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
	Reason    string `json:"reason"`
}
