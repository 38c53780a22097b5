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
* Take the bed or room with one conditional update: available -> unavailable
* ModifiedCount zero means someone else holds it,no separate read
 */
func occupyFacility(c *gin.Context, collection *mongo.Collection, code string, occupiedMsg string) error {
	filter := bson.M{"code": code, "status": models.FacilityAvailable}
	update := bson.M{"$set": bson.M{"status": models.FacilityUnavailable, "updatedAt": time.Now()}}
	updated, err := db.UpdateOne(c, collection, filter, update)
	if err != nil {
		log.Println("Error from UpdateOne: ", err)
		return err
	}
	if updated.ModifiedCount == 0 {
		return errors.New(occupiedMsg)
	}
	return nil
}

func releaseFacility(c *gin.Context, collection *mongo.Collection, code string) error {
	filter := bson.M{"code": code, "status": models.FacilityUnavailable}
	update := bson.M{"$set": bson.M{"status": models.FacilityAvailable, "updatedAt": time.Now()}}
	updated, err := db.UpdateOne(c, collection, filter, update)
	if err != nil {
		log.Println("Error from UpdateOne: ", err)
		return err
	}
	if updated.ModifiedCount == 0 {
		return errors.New(utils.BED_NOT_OCCUPIED)
	}
	return nil
}

/*
* Reject a second open admission for the patient
* Occupy the allocated bed or room,then write the admission record
* The occupy step is the atomicity guard,it runs before the insert
 */
func AdmitPatient(c *gin.Context, req models.AdmitPatientRequest) (models.Admission, error) {
	createdBy := c.GetString("code")
	if _, err := ParseDate(req.AdmissionDate); err != nil {
		log.Println("Error parsing admission date: ", err)
		return models.Admission{}, err
	}
	admColl := db.OpenCollections(utils.AdmissionCollection)
	open, err := admColl.CountDocuments(c, bson.M{"patientId": req.PatientID, "discharged": false})
	if err != nil {
		log.Println("Error counting open admissions: ", err)
		return models.Admission{}, err
	}
	if open > 0 {
		return models.Admission{}, errors.New(utils.PATIENT_ALREADY_ADMITTED)
	}

	switch req.AllocationType {
	case models.AllocationWard:
		if req.BedDetailID == "" {
			return models.Admission{}, errors.New(utils.MISSING_REQUIRED_FIELDS)
		}
		bedColl := db.OpenCollections(utils.BedDetailCollection)
		if err := occupyFacility(c, bedColl, req.BedDetailID, utils.BED_ALREADY_OCCUPIED); err != nil {
			return models.Admission{}, err
		}
	case models.AllocationRoom:
		if req.RoomDetailID == "" {
			return models.Admission{}, errors.New(utils.MISSING_REQUIRED_FIELDS)
		}
		roomColl := db.OpenCollections(utils.RoomDetailCollection)
		if err := occupyFacility(c, roomColl, req.RoomDetailID, utils.ROOM_ALREADY_OCCUPIED); err != nil {
			return models.Admission{}, err
		}
	default:
		return models.Admission{}, errors.New(utils.INVALID_ALLOCATION_TYPE)
	}

	code, err := common.GenerateEmpCode(utils.AdmissionCollection)
	if err != nil {
		log.Println("Error from GenerateEmpCode: ", err)
		return models.Admission{}, err
	}
	now := time.Now()
	admission := models.Admission{
		Code:           code,
		PatientID:      req.PatientID,
		DoctorID:       req.DoctorID,
		AllocationType: req.AllocationType,
		BedDetailID:    req.BedDetailID,
		RoomDetailID:   req.RoomDetailID,
		AdmissionDate:  req.AdmissionDate,
		Reason:         req.Reason,
		Discharged:     false,
		CreatedAt:      now,
		CreatedBy:      createdBy,
		UpdatedAt:      now,
		UpdatedBy:      createdBy,
	}
	if _, err := admColl.InsertOne(c, admission); err != nil {
		log.Println("Error inserting admission: ", err)
		// hand the bed back so the failed insert does not strand it
		rollbackOccupy(c, admission)
		return models.Admission{}, err
	}
	return admission, nil
}

func rollbackOccupy(c *gin.Context, admission models.Admission) {
	var collection *mongo.Collection
	code := admission.BedDetailID
	if admission.AllocationType == models.AllocationRoom {
		collection = db.OpenCollections(utils.RoomDetailCollection)
		code = admission.RoomDetailID
	} else {
		collection = db.OpenCollections(utils.BedDetailCollection)
	}
	if err := releaseFacility(c, collection, code); err != nil {
		log.Println("Error releasing facility after failed admit: ", err)
	}
}

/*
* Close the admission with a conditional update on discharged:false
* Release the bed or room,write the discharge record
 */
func DischargePatient(c *gin.Context, req models.DischargePatientRequest) (models.Discharge, error) {
	createdBy := c.GetString("code")
	if _, err := ParseDate(req.DischargeDate); err != nil {
		log.Println("Error parsing discharge date: ", err)
		return models.Discharge{}, err
	}
	admColl := db.OpenCollections(utils.AdmissionCollection)
	var admission models.Admission
	err := admColl.FindOne(c, bson.M{"code": req.AdmissionID}).Decode(&admission)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Discharge{}, errors.New(utils.ADMISSION_NOT_FOUND)
		}
		log.Println("Error fetching admission: ", err)
		return models.Discharge{}, err
	}
	filter := bson.M{"code": req.AdmissionID, "discharged": false}
	update := bson.M{"$set": bson.M{"discharged": true, "updatedAt": time.Now(), "updatedBy": createdBy}}
	updated, err := db.UpdateOne(c, admColl, filter, update)
	if err != nil {
		log.Println("Error from UpdateOne: ", err)
		return models.Discharge{}, err
	}
	if updated.ModifiedCount == 0 {
		return models.Discharge{}, errors.New(utils.ADMISSION_NOT_FOUND)
	}

	if admission.AllocationType == models.AllocationRoom {
		roomColl := db.OpenCollections(utils.RoomDetailCollection)
		if err := releaseFacility(c, roomColl, admission.RoomDetailID); err != nil {
			log.Println("Error releasing room: ", err)
		}
	} else {
		bedColl := db.OpenCollections(utils.BedDetailCollection)
		if err := releaseFacility(c, bedColl, admission.BedDetailID); err != nil {
			log.Println("Error releasing bed: ", err)
		}
	}

	code, err := common.GenerateEmpCode(utils.DischargeCollection)
	if err != nil {
		log.Println("Error from GenerateEmpCode: ", err)
		return models.Discharge{}, err
	}
	discharge := models.Discharge{
		Code:          code,
		AdmissionID:   admission.Code,
		PatientID:     admission.PatientID,
		DischargeDate: req.DischargeDate,
		Summary:       req.Summary,
		Documents:     req.Documents,
		CreatedAt:     time.Now(),
		CreatedBy:     createdBy,
	}
	disColl := db.OpenCollections(utils.DischargeCollection)
	if _, err := disColl.InsertOne(c, discharge); err != nil {
		log.Println("Error inserting discharge: ", err)
		return models.Discharge{}, err
	}
	return discharge, nil
}
