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
	"go.mongodb.org/mongo-driver/mongo/options"

	"CareDesk360/models"
	"CareDesk360/utils"
)

// Retries for auto-assigned numbers racing concurrent creations. The unique
// index on (doctorId, tokenDate, tokenNumber) is the actual guard.
const tokenAssignRetries = 3

// NextTokenNumber returns one past the highest issued number for the doctor
// and date, starting from 1.
func NextTokenNumber(c *gin.Context, doctorID, tokenDate string) (int, error) {
	coll := db.OpenCollections(utils.TokenCollection)
	opts := options.FindOne().SetSort(bson.D{{Key: "tokenNumber", Value: -1}})
	var last models.Token
	err := coll.FindOne(c, bson.M{"doctorId": doctorID, "tokenDate": tokenDate}, opts).Decode(&last)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 1, nil
		}
		log.Println("Error fetching last token: ", err)
		return 0, err
	}
	return last.TokenNumber + 1, nil
}

/*
* Issue a token for a doctor and date
* An explicit number that collides fails immediately,an auto assigned
* number re-reads and retries on a duplicate key error
* Uniqueness comes from the storage layer index,not a pre-check
 */
func CreateToken(c *gin.Context, req models.CreateTokenRequest) (models.Token, error) {
	createdBy := c.GetString("code")
	if _, err := ParseDate(req.TokenDate); err != nil {
		log.Println("Error parsing token date: ", err)
		return models.Token{}, err
	}
	coll := db.OpenCollections(utils.TokenCollection)
	autoAssign := req.TokenNumber <= 0
	number := req.TokenNumber
	for attempt := 0; ; attempt++ {
		if autoAssign {
			next, err := NextTokenNumber(c, req.DoctorID, req.TokenDate)
			if err != nil {
				return models.Token{}, err
			}
			number = next
		}
		code, err := common.GenerateEmpCode(utils.TokenCollection)
		if err != nil {
			log.Println("Error from GenerateEmpCode: ", err)
			return models.Token{}, err
		}
		now := time.Now()
		token := models.Token{
			Code:        code,
			PatientID:   req.PatientID,
			DoctorID:    req.DoctorID,
			TokenDate:   req.TokenDate,
			TokenNumber: number,
			Vitals:      req.Vitals,
			Status:      models.StatusScheduled,
			CreatedAt:   now,
			CreatedBy:   createdBy,
			UpdatedAt:   now,
			UpdatedBy:   createdBy,
		}
		_, err = coll.InsertOne(c, token)
		if err == nil {
			if err := redis.SetCache(c, utils.TokenKey+code, token); err != nil {
				log.Println("Error caching token: ", err)
			}
			return token, nil
		}
		if !mongo.IsDuplicateKeyError(err) {
			log.Println("Error inserting token: ", err)
			return models.Token{}, err
		}
		if !autoAssign || attempt >= tokenAssignRetries {
			return models.Token{}, errors.New(utils.TOKEN_NUMBER_ALREADY_TAKEN)
		}
	}
}

func FetchTokenByCode(c *gin.Context, tokenID string) (models.Token, error) {
	var token models.Token
	key := utils.TokenKey + tokenID
	if fetchCached(c, key, &token) {
		return token, nil
	}
	coll := db.OpenCollections(utils.TokenCollection)
	err := coll.FindOne(c, bson.M{"code": tokenID}).Decode(&token)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return token, errors.New(utils.RECORD_NOT_FOUND)
		}
		log.Println("Error fetching token: ", err)
		return token, err
	}
	if err := redis.SetCache(c, key, token); err != nil {
		log.Println("Error caching token: ", err)
	}
	return token, nil
}

/*
* Queue for a doctor and date,ordered by token number
 */
func FetchAllTokens(c *gin.Context, doctorID, tokenDate, status string, page, limit int64) ([]models.Token, int, error) {
	filter := bson.M{}
	if doctorID != "" {
		filter["doctorId"] = doctorID
	}
	if tokenDate != "" {
		filter["tokenDate"] = tokenDate
	}
	if status != "" {
		filter["status"] = status
	}
	coll := db.OpenCollections(utils.TokenCollection)
	total, err := coll.CountDocuments(c, filter)
	if err != nil {
		log.Println("Error counting tokens: ", err)
		return nil, 0, err
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "tokenDate", Value: -1}, {Key: "tokenNumber", Value: 1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)
	cursor, err := coll.Find(c, filter, opts)
	if err != nil {
		log.Println("Error from Find: ", err)
		return nil, 0, err
	}
	var tokens []models.Token
	if err := cursor.All(c, &tokens); err != nil {
		log.Println("Error decoding tokens: ", err)
		return nil, 0, err
	}
	return tokens, int(total), nil
}

/*
* Update vitals and status
* The (doctorId,tokenDate,tokenNumber) triple is immutable after issue
 */
func UpdateTokenByCode(c *gin.Context, tokenID string, data map[string]interface{}) (string, error) {
	updatedBy := c.GetString("code")
	if statusVal, ok := data["status"]; ok {
		status, ok := statusVal.(string)
		if !ok || !models.ValidTokenStatus(status) {
			return "", errors.New(utils.INVALID_TOKEN_STATUS)
		}
	}
	delete(data, "doctorId")
	delete(data, "tokenDate")
	delete(data, "tokenNumber")
	data["updatedBy"] = updatedBy
	data["updatedAt"] = time.Now()
	coll := db.OpenCollections(utils.TokenCollection)
	updated, err := db.UpdateOne(c, coll, bson.M{"code": tokenID}, bson.M{"$set": data})
	if err != nil {
		log.Println("Error from UpdateOne: ", err)
		return "", err
	}
	if updated.MatchedCount == 0 {
		return "", errors.New(utils.RECORD_NOT_FOUND)
	}
	if err := redis.DeleteCache(c, utils.TokenKey+tokenID); err != nil {
		log.Println("Error deleting token cache: ", err)
	}
	return "Updated Successfully", nil
}

func DeleteTokenByCode(c *gin.Context, tokenID string) (string, error) {
	coll := db.OpenCollections(utils.TokenCollection)
	deleted, err := db.DeleteOne(c, coll, bson.M{"code": tokenID})
	if err != nil {
		log.Println("Error from DeleteOne: ", err)
		return "", err
	}
	if deleted.DeletedCount == 0 {
		return "", errors.New(utils.RECORD_NOT_FOUND)
	}
	if err := redis.DeleteCache(c, utils.TokenKey+tokenID); err != nil {
		log.Println("Error deleting token cache: ", err)
	}
	return "Deleted successfully", nil
}
