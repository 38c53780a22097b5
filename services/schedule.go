package services

import (
	"errors"
	"log"
	"time"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	redis "github.com/KanapuramVaishnavi/Core/config/redis"
	common "github.com/KanapuramVaishnavi/Core/coreServices"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"CareDesk360/models"
	"CareDesk360/utils"
)

var scheduleDayNames = []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

/*
* One schedule document per doctor
* Creating again for the same doctor replaces the weekly grid
 */
func UpsertDoctorSchedule(c *gin.Context, doctorID string, days map[string]models.DaySchedule) (models.DoctorSchedule, error) {
	createdBy := c.GetString("code")
	for name := range days {
		if !validScheduleDay(name) {
			return models.DoctorSchedule{}, errors.New("Unknown weekday " + name)
		}
	}
	coll := db.OpenCollections(utils.DoctorScheduleCollection)
	now := time.Now()
	var existing models.DoctorSchedule
	err := coll.FindOne(c, bson.M{"doctorId": doctorID}).Decode(&existing)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		log.Println("Error fetching doctor schedule: ", err)
		return models.DoctorSchedule{}, err
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		code, err := common.GenerateEmpCode(utils.DoctorScheduleCollection)
		if err != nil {
			log.Println("Error from GenerateEmpCode: ", err)
			return models.DoctorSchedule{}, err
		}
		schedule := models.DoctorSchedule{
			Code:      code,
			DoctorID:  doctorID,
			Days:      days,
			CreatedAt: now,
			CreatedBy: createdBy,
			UpdatedAt: now,
			UpdatedBy: createdBy,
		}
		if _, err := coll.InsertOne(c, schedule); err != nil {
			log.Println("Error inserting doctor schedule: ", err)
			return models.DoctorSchedule{}, err
		}
		refreshScheduleCache(c, schedule)
		return schedule, nil
	}
	existing.Days = days
	existing.UpdatedAt = now
	existing.UpdatedBy = createdBy
	update := bson.M{"$set": bson.M{"days": days, "updatedAt": now, "updatedBy": createdBy}}
	if _, err := db.UpdateOne(c, coll, bson.M{"doctorId": doctorID}, update); err != nil {
		log.Println("Error updating doctor schedule: ", err)
		return models.DoctorSchedule{}, err
	}
	refreshScheduleCache(c, existing)
	return existing, nil
}

func validScheduleDay(name string) bool {
	for _, d := range scheduleDayNames {
		if d == name {
			return true
		}
	}
	return false
}

func refreshScheduleCache(c *gin.Context, schedule models.DoctorSchedule) {
	key := utils.DoctorScheduleKey + schedule.DoctorID
	if err := redis.DeleteCache(c, key); err != nil {
		log.Println("Error deleting schedule cache: ", err)
	}
	if err := redis.SetCache(c, key, schedule); err != nil {
		log.Println("Error caching schedule: ", err)
	}
}

func FetchDoctorScheduleByDoctor(c *gin.Context, doctorID string) (models.DoctorSchedule, error) {
	var schedule models.DoctorSchedule
	key := utils.DoctorScheduleKey + doctorID
	if fetchCached(c, key, &schedule) {
		return schedule, nil
	}
	coll := db.OpenCollections(utils.DoctorScheduleCollection)
	err := coll.FindOne(c, bson.M{"doctorId": doctorID}).Decode(&schedule)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return schedule, errors.New(utils.DOCTOR_SCHEDULE_NOT_FOUND)
		}
		log.Println("Error fetching doctor schedule: ", err)
		return schedule, err
	}
	if err := redis.SetCache(c, key, schedule); err != nil {
		log.Println("Error caching schedule: ", err)
	}
	return schedule, nil
}

func DeleteDoctorSchedule(c *gin.Context, doctorID string) (string, error) {
	coll := db.OpenCollections(utils.DoctorScheduleCollection)
	deleted, err := db.DeleteOne(c, coll, bson.M{"doctorId": doctorID})
	if err != nil {
		log.Println("Error from DeleteOne: ", err)
		return "", err
	}
	if deleted.DeletedCount == 0 {
		return "", errors.New(utils.DOCTOR_SCHEDULE_NOT_FOUND)
	}
	if err := redis.DeleteCache(c, utils.DoctorScheduleKey+doctorID); err != nil {
		log.Println("Error deleting schedule cache: ", err)
	}
	return "Deleted successfully", nil
}
