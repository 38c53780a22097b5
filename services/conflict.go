package services

import (
	"context"
	"errors"
	"log"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	"go.mongodb.org/mongo-driver/bson"

	"CareDesk360/models"
	"CareDesk360/utils"
)

// LeaveBlocks reports whether a leave covers the given date, both ends
// inclusive. Dates are ISO strings so plain comparison is enough.
func LeaveBlocks(leave models.Leave, date string) bool {
	return leave.StartDate <= date && date <= leave.EndDate
}

/*
* Count leave records whose range contains the candidate date
* Any match means the doctor is on leave
 */
func IsDoctorOnLeave(ctx context.Context, doctorID, date string) (bool, error) {
	coll := db.OpenCollections(utils.LeaveCollection)
	filter := bson.M{
		"doctorId":  doctorID,
		"startDate": bson.M{"$lte": date},
		"endDate":   bson.M{"$gte": date},
	}
	count, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		log.Println("Error counting leaves: ", err)
		return false, err
	}
	return count > 0, nil
}

/*
* Count non-cancelled appointments with an exact match on
* (doctorId,date,startTime,endTime)
* Any match means the slot is taken
 */
func IsSlotTaken(ctx context.Context, doctorID, date, startTime, endTime string) (bool, error) {
	coll := db.OpenCollections(utils.AppointmentCollection)
	filter := bson.M{
		"doctorId":  doctorID,
		"date":      date,
		"startTime": startTime,
		"endTime":   endTime,
		"status":    bson.M{"$ne": models.StatusCancelled},
	}
	count, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		log.Println("Error counting appointments: ", err)
		return false, err
	}
	return count > 0, nil
}

/*
* Run the leave check then the slot check for one candidate tuple
* Returns the user facing failure for the first check that trips
 */
func CheckAppointmentConflict(ctx context.Context, doctorID, date, startTime, endTime string) error {
	onLeave, err := IsDoctorOnLeave(ctx, doctorID, date)
	if err != nil {
		return err
	}
	if onLeave {
		return errors.New(utils.DOCTOR_IS_ON_LEAVE)
	}
	taken, err := IsSlotTaken(ctx, doctorID, date, startTime, endTime)
	if err != nil {
		return err
	}
	if taken {
		return errors.New(utils.SLOT_ALREADY_BOOKED)
	}
	return nil
}
