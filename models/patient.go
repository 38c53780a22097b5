package models

import "time"

type Patient struct {
	Code      string    `json:"code" bson:"code"`
	MRNumber  string    `json:"mrNumber" bson:"mrNumber"`
	Name      string    `json:"name" bson:"name"`
	Gender    string    `json:"gender" bson:"gender"`
	DOB       string    `json:"dob" bson:"dob"`
	PhoneNo   string    `json:"phoneNo" bson:"phoneNo"`
	CNIC      string    `json:"cnic" bson:"cnic"`
	Email     string    `json:"email,omitempty" bson:"email,omitempty"`
	Address   string    `json:"address,omitempty" bson:"address,omitempty"`
	BloodType string    `json:"bloodType,omitempty" bson:"bloodType,omitempty"`
	Photo     string    `json:"photo,omitempty" bson:"photo,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	CreatedBy string    `json:"createdBy" bson:"createdBy"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
	UpdatedBy string    `json:"updatedBy" bson:"updatedBy"`
}

type CreatePatientRequest struct {
	Name      string `json:"name" binding:"required"`
	Gender    string `json:"gender" binding:"required"`
	DOB       string `json:"dob"`
	PhoneNo   string `json:"phoneNo" binding:"required"`
	CNIC      string `json:"cnic"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	BloodType string `json:"bloodType"`
	// Photo is the stored filename populated by the upload middleware.
	Photo string `json:"photo"`
}
