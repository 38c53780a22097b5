package services

import (
	"errors"
	"log"
	"strings"
	"time"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	redis "github.com/KanapuramVaishnavi/Core/config/redis"
	common "github.com/KanapuramVaishnavi/Core/coreServices"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"CareDesk360/models"
	"CareDesk360/utils"
)

/*
* Register a patient and assign the MR number
* Phone and CNIC uniqueness is the partial index on the collection,a
* duplicate key error maps to the user facing message
 */
func CreatePatient(c *gin.Context, req models.CreatePatientRequest) (models.Patient, error) {
	createdBy := c.GetString("code")
	code, err := common.GenerateEmpCode(utils.PatientCollection)
	if err != nil {
		log.Println("Error from GenerateEmpCode: ", err)
		return models.Patient{}, err
	}
	now := time.Now()
	patient := models.Patient{
		Code:      code,
		MRNumber:  "MR-" + code,
		Name:      strings.TrimSpace(req.Name),
		Gender:    strings.TrimSpace(req.Gender),
		DOB:       req.DOB,
		PhoneNo:   strings.TrimSpace(req.PhoneNo),
		CNIC:      strings.TrimSpace(req.CNIC),
		Email:     strings.TrimSpace(req.Email),
		Address:   req.Address,
		BloodType: req.BloodType,
		Photo:     req.Photo,
		CreatedAt: now,
		CreatedBy: createdBy,
		UpdatedAt: now,
		UpdatedBy: createdBy,
	}
	coll := db.OpenCollections(utils.PatientCollection)
	if _, err := coll.InsertOne(c, patient); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.Patient{}, duplicatePatientError(err)
		}
		log.Println("Error inserting patient: ", err)
		return models.Patient{}, err
	}
	if err := redis.SetCache(c, utils.PatientKey+code, patient); err != nil {
		log.Println("Error caching patient: ", err)
	}
	return patient, nil
}

func duplicatePatientError(err error) error {
	msg := err.Error()
	if strings.Contains(msg, "cnic") {
		return errors.New(utils.DUPLICATE_CNIC)
	}
	return errors.New(utils.DUPLICATE_PHONE_NUMBER)
}

func FetchPatientByCode(c *gin.Context, patientID string) (models.Patient, error) {
	var patient models.Patient
	key := utils.PatientKey + patientID
	if fetchCached(c, key, &patient) {
		return patient, nil
	}
	coll := db.OpenCollections(utils.PatientCollection)
	err := coll.FindOne(c, bson.M{"code": patientID}).Decode(&patient)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return patient, errors.New(utils.PATIENT_NOT_FOUND)
		}
		log.Println("Error fetching patient: ", err)
		return patient, err
	}
	if err := redis.SetCache(c, key, patient); err != nil {
		log.Println("Error caching patient: ", err)
	}
	return patient, nil
}

/*
* List with an optional search across name,MR number and phone
 */
func FetchAllPatients(c *gin.Context, search string, page, limit int64) ([]models.Patient, int, error) {
	filter := bson.M{}
	if search != "" {
		regex := bson.M{"$regex": search, "$options": "i"}
		filter["$or"] = []bson.M{
			{"name": regex},
			{"mrNumber": regex},
			{"phoneNo": regex},
		}
	}
	coll := db.OpenCollections(utils.PatientCollection)
	total, err := coll.CountDocuments(c, filter)
	if err != nil {
		log.Println("Error counting patients: ", err)
		return nil, 0, err
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)
	cursor, err := coll.Find(c, filter, opts)
	if err != nil {
		log.Println("Error from Find: ", err)
		return nil, 0, err
	}
	var patients []models.Patient
	if err := cursor.All(c, &patients); err != nil {
		log.Println("Error decoding patients: ", err)
		return nil, 0, err
	}
	return patients, int(total), nil
}

func UpdatePatientByCode(c *gin.Context, patientID string, data map[string]interface{}) (string, error) {
	updatedBy := c.GetString("code")
	fields := []string{"name", "email", "phoneNo", "cnic", "gender", "address", "bloodType"}
	for _, field := range fields {
		if err := common.TrimIfExists(data, field); err != nil {
			log.Println("Error from TrimIfExists: ", err)
			return "", err
		}
	}
	delete(data, "code")
	delete(data, "mrNumber")
	data["updatedBy"] = updatedBy
	data["updatedAt"] = time.Now()
	coll := db.OpenCollections(utils.PatientCollection)
	updated, err := db.UpdateOne(c, coll, bson.M{"code": patientID}, bson.M{"$set": data})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", duplicatePatientError(err)
		}
		log.Println("Error from UpdateOne: ", err)
		return "", err
	}
	if updated.MatchedCount == 0 {
		return "", errors.New(utils.PATIENT_NOT_FOUND)
	}
	key := utils.PatientKey + patientID
	if err := redis.DeleteCache(c, key); err != nil {
		log.Println("Error deleting patient cache: ", err)
	}
	return "Updated Successfully", nil
}

func DeletePatientByCode(c *gin.Context, patientID string) (string, error) {
	coll := db.OpenCollections(utils.PatientCollection)
	deleted, err := db.DeleteOne(c, coll, bson.M{"code": patientID})
	if err != nil {
		log.Println("Error from DeleteOne: ", err)
		return "", err
	}
	if deleted.DeletedCount == 0 {
		return "", errors.New(utils.PATIENT_NOT_FOUND)
	}
	if err := redis.DeleteCache(c, utils.PatientKey+patientID); err != nil {
		log.Println("Error deleting patient cache: ", err)
	}
	return "Deleted successfully", nil
}
