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

	"CareDesk360/models"
	"CareDesk360/utils"
)

/*
* Beds start out available
* The bed number is unique inside its ward,enforced by the collection index
 */
func CreateBedDetail(c *gin.Context, req models.CreateBedDetailRequest) (models.BedDetail, error) {
	createdBy := c.GetString("code")
	code, err := common.GenerateEmpCode(utils.BedDetailCollection)
	if err != nil {
		log.Println("Error from GenerateEmpCode: ", err)
		return models.BedDetail{}, err
	}
	now := time.Now()
	bed := models.BedDetail{
		Code:      code,
		BedNumber: req.BedNumber,
		WardID:    req.WardID,
		Status:    models.FacilityAvailable,
		Charges:   req.Charges,
		CreatedAt: now,
		CreatedBy: createdBy,
		UpdatedAt: now,
		UpdatedBy: createdBy,
	}
	coll := db.OpenCollections(utils.BedDetailCollection)
	if _, err := coll.InsertOne(c, bed); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.BedDetail{}, errors.New(utils.DUPLICATE_BED_NUMBER)
		}
		log.Println("Error inserting bed: ", err)
		return models.BedDetail{}, err
	}
	return bed, nil
}

func CreateRoomDetail(c *gin.Context, req models.CreateRoomDetailRequest) (models.RoomDetail, error) {
	createdBy := c.GetString("code")
	code, err := common.GenerateEmpCode(utils.RoomDetailCollection)
	if err != nil {
		log.Println("Error from GenerateEmpCode: ", err)
		return models.RoomDetail{}, err
	}
	now := time.Now()
	room := models.RoomDetail{
		Code:       code,
		RoomNumber: req.RoomNumber,
		RoomID:     req.RoomID,
		Status:     models.FacilityAvailable,
		Charges:    req.Charges,
		CreatedAt:  now,
		CreatedBy:  createdBy,
		UpdatedAt:  now,
		UpdatedBy:  createdBy,
	}
	coll := db.OpenCollections(utils.RoomDetailCollection)
	if _, err := coll.InsertOne(c, room); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.RoomDetail{}, errors.New(utils.DUPLICATE_ROOM_NUMBER)
		}
		log.Println("Error inserting room: ", err)
		return models.RoomDetail{}, err
	}
	return room, nil
}

// Map-based access for the rest of the bed/room CRUD surface.
var (
	BedDetailResource = Resource{
		Collection:   utils.BedDetailCollection,
		SearchFields: []string{"bedNumber"},
		DuplicateMsg: utils.DUPLICATE_BED_NUMBER,
	}
	RoomDetailResource = Resource{
		Collection:   utils.RoomDetailCollection,
		SearchFields: []string{"roomNumber"},
		DuplicateMsg: utils.DUPLICATE_ROOM_NUMBER,
	}
)

/*
* Occupancy is owned by admit/discharge,manual edits must not flip it
 */
func UpdateFacilityByCode(c *gin.Context, res Resource, id string, data map[string]interface{}) (string, error) {
	delete(data, "status")
	return UpdateResourceByCode(c, res, id, data)
}

// FacilityStatusFilter builds the list filter for an optional status query.
func FacilityStatusFilter(wardOrRoomField, parentID, status string) bson.M {
	filter := bson.M{}
	if parentID != "" {
		filter[wardOrRoomField] = parentID
	}
	if status != "" {
		filter["status"] = status
	}
	return filter
}
