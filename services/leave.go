package services

import (
	"errors"
	"log"
	"time"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	common "github.com/KanapuramVaishnavi/Core/coreServices"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"CareDesk360/models"
	"CareDesk360/utils"
)

/*
* Record a leave range for a doctor,both ends inclusive
* An overlapping leave for the same doctor is rejected
 */
func CreateLeave(c *gin.Context, req models.CreateLeaveRequest) (models.Leave, error) {
	createdBy := c.GetString("code")
	if _, err := ParseDate(req.StartDate); err != nil {
		log.Println("Error parsing leave start date: ", err)
		return models.Leave{}, err
	}
	if _, err := ParseDate(req.EndDate); err != nil {
		log.Println("Error parsing leave end date: ", err)
		return models.Leave{}, err
	}
	if req.StartDate > req.EndDate {
		return models.Leave{}, errors.New(utils.INVALID_DATE_RANGE)
	}
	coll := db.OpenCollections(utils.LeaveCollection)
	overlap, err := coll.CountDocuments(c, bson.M{
		"doctorId":  req.DoctorID,
		"startDate": bson.M{"$lte": req.EndDate},
		"endDate":   bson.M{"$gte": req.StartDate},
	})
	if err != nil {
		log.Println("Error counting leaves: ", err)
		return models.Leave{}, err
	}
	if overlap > 0 {
		return models.Leave{}, errors.New(utils.LEAVE_OVERLAPS_EXISTING)
	}
	code, err := common.GenerateEmpCode(utils.LeaveCollection)
	if err != nil {
		log.Println("Error from GenerateEmpCode: ", err)
		return models.Leave{}, err
	}
	now := time.Now()
	leave := models.Leave{
		Code:      code,
		DoctorID:  req.DoctorID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
		CreatedAt: now,
		CreatedBy: createdBy,
		UpdatedAt: now,
		UpdatedBy: createdBy,
	}
	if _, err := coll.InsertOne(c, leave); err != nil {
		log.Println("Error inserting leave: ", err)
		return models.Leave{}, err
	}
	return leave, nil
}

func FetchLeaveByCode(c *gin.Context, leaveID string) (models.Leave, error) {
	var leave models.Leave
	coll := db.OpenCollections(utils.LeaveCollection)
	err := coll.FindOne(c, bson.M{"code": leaveID}).Decode(&leave)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return leave, errors.New(utils.RECORD_NOT_FOUND)
		}
		log.Println("Error fetching leave: ", err)
		return leave, err
	}
	return leave, nil
}

func FetchAllLeaves(c *gin.Context, doctorID string, page, limit int64) ([]models.Leave, int, error) {
	filter := bson.M{}
	if doctorID != "" {
		filter["doctorId"] = doctorID
	}
	coll := db.OpenCollections(utils.LeaveCollection)
	total, err := coll.CountDocuments(c, filter)
	if err != nil {
		log.Println("Error counting leaves: ", err)
		return nil, 0, err
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "startDate", Value: -1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)
	cursor, err := coll.Find(c, filter, opts)
	if err != nil {
		log.Println("Error from Find: ", err)
		return nil, 0, err
	}
	var leaves []models.Leave
	if err := cursor.All(c, &leaves); err != nil {
		log.Println("Error decoding leaves: ", err)
		return nil, 0, err
	}
	return leaves, int(total), nil
}

func UpdateLeaveByCode(c *gin.Context, leaveID string, data map[string]interface{}) (string, error) {
	updatedBy := c.GetString("code")
	start, hasStart := data["startDate"].(string)
	end, hasEnd := data["endDate"].(string)
	if hasStart {
		if _, err := ParseDate(start); err != nil {
			return "", err
		}
	}
	if hasEnd {
		if _, err := ParseDate(end); err != nil {
			return "", err
		}
	}
	if hasStart && hasEnd && start > end {
		return "", errors.New(utils.INVALID_DATE_RANGE)
	}
	data["updatedBy"] = updatedBy
	data["updatedAt"] = time.Now()
	coll := db.OpenCollections(utils.LeaveCollection)
	updated, err := db.UpdateOne(c, coll, bson.M{"code": leaveID}, bson.M{"$set": data})
	if err != nil {
		log.Println("Error from UpdateOne: ", err)
		return "", err
	}
	if updated.MatchedCount == 0 {
		return "", errors.New(utils.RECORD_NOT_FOUND)
	}
	return "Updated Successfully", nil
}

func DeleteLeaveByCode(c *gin.Context, leaveID string) (string, error) {
	coll := db.OpenCollections(utils.LeaveCollection)
	deleted, err := db.DeleteOne(c, coll, bson.M{"code": leaveID})
	if err != nil {
		log.Println("Error from DeleteOne: ", err)
		return "", err
	}
	if deleted.DeletedCount == 0 {
		return "", errors.New(utils.RECORD_NOT_FOUND)
	}
	return "Deleted successfully", nil
}
