package models

import "time"

// Bed/room occupancy states.
const (
	FacilityAvailable   = "available"
	FacilityUnavailable = "unavailable"
)

// Admission allocation types.
const (
	AllocationWard = "Ward"
	AllocationRoom = "Room"
)

// BedDetail is one physical ward bed. Status is flipped by a single
// conditional update when a patient is admitted or discharged.
type BedDetail struct {
	Code      string    `json:"code" bson:"code"`
	BedNumber string    `json:"bedNumber" bson:"bedNumber"`
	WardID    string    `json:"wardId" bson:"wardId"`
	Status    string    `json:"status" bson:"status"`
	Charges   float64   `json:"charges" bson:"charges"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	CreatedBy string    `json:"createdBy" bson:"createdBy"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
	UpdatedBy string    `json:"updatedBy" bson:"updatedBy"`
}

type CreateBedDetailRequest struct {
	BedNumber string  `json:"bedNumber" binding:"required"`
	WardID    string  `json:"wardId" binding:"required"`
	Charges   float64 `json:"charges"`
}

type CreateRoomDetailRequest struct {
	RoomNumber string  `json:"roomNumber" binding:"required"`
	RoomID     string  `json:"roomId" binding:"required"`
	Charges    float64 `json:"charges"`
}

// RoomDetail is one private room, same occupancy contract as BedDetail.
type RoomDetail struct {
	Code       string    `json:"code" bson:"code"`
	RoomNumber string    `json:"roomNumber" bson:"roomNumber"`
	RoomID     string    `json:"roomId" bson:"roomId"`
	Status     string    `json:"status" bson:"status"`
	Charges    float64   `json:"charges" bson:"charges"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
	CreatedBy  string    `json:"createdBy" bson:"createdBy"`
	UpdatedAt  time.Time `json:"updatedAt" bson:"updatedAt"`
	UpdatedBy  string    `json:"updatedBy" bson:"updatedBy"`
}
