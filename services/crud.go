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

	"CareDesk360/utils"
)

// Resource describes one simple CRUD collection. The richer entities
// (patient, appointment, token, invoice, admission) have dedicated services.
type Resource struct {
	Collection   string
	CacheKey     string
	Required     []string
	SearchFields []string
	// DuplicateMsg is returned when the collection's unique index trips.
	DuplicateMsg string
}

/*
* Strings go through the trim check,JSON numbers and booleans only need
* to be present
 */
func requiredFieldMissing(data map[string]interface{}, field string) bool {
	switch data[field].(type) {
	case float64, int, int64, bool:
		return false
	}
	if err := common.GetTrimmedString(data, field); err != nil {
		log.Println("Error from GetTrimmedString: ", err)
		return true
	}
	return false
}

/*
* Validate the required fields,stamp audit fields,generate the code
* Duplicate key errors from the collection's unique index map to the
* resource's message
 */
func CreateResource(c *gin.Context, res Resource, data map[string]interface{}) (map[string]interface{}, error) {
	createdBy := c.GetString("code")
	for _, field := range res.Required {
		if requiredFieldMissing(data, field) {
			return nil, errors.New(utils.MISSING_REQUIRED_FIELDS)
		}
	}
	code, err := common.GenerateEmpCode(res.Collection)
	if err != nil {
		log.Println("Error from GenerateEmpCode: ", err)
		return nil, err
	}
	data["code"] = code
	data["createdBy"] = createdBy
	data["updatedBy"] = createdBy
	data["createdAt"] = time.Now()
	data["updatedAt"] = time.Now()
	collection := db.OpenCollections(res.Collection)
	inserted, err := db.CreateOne(c, collection, data)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) && res.DuplicateMsg != "" {
			return nil, errors.New(res.DuplicateMsg)
		}
		log.Println("Error from CreateOne: ", err)
		return nil, err
	}
	log.Println("Inserted: ", inserted.InsertedID)
	if res.CacheKey != "" {
		if err := redis.SetCache(c, res.CacheKey+code, data); err != nil {
			log.Println("Error from SetCache: ", err)
		}
	}
	return data, nil
}

func FetchResourceByCode(c *gin.Context, res Resource, id string) (map[string]interface{}, error) {
	if res.CacheKey != "" {
		cached := make(map[string]interface{})
		exists, err := redis.GetCache(c, res.CacheKey+id, &cached)
		if err != nil {
			log.Println("Error from GetCache: ", err)
		}
		if exists {
			return cached, nil
		}
	}
	collection := db.OpenCollections(res.Collection)
	doc := make(map[string]interface{})
	err := db.FindOne(c, collection, bson.M{"code": id}, doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.New(utils.RECORD_NOT_FOUND)
		}
		log.Println("Error from FindOne: ", err)
		return nil, err
	}
	if res.CacheKey != "" {
		if err := redis.SetCache(c, res.CacheKey+id, doc); err != nil {
			log.Println("Error from SetCache: ", err)
		}
	}
	return doc, nil
}

/*
* Page through the collection,newest first
* search matches the resource's search fields case insensitively
 */
func FetchAllResources(c *gin.Context, res Resource, filter bson.M, search string, page, limit int64) ([]bson.M, int, error) {
	if filter == nil {
		filter = bson.M{}
	}
	if search != "" && len(res.SearchFields) > 0 {
		regex := bson.M{"$regex": search, "$options": "i"}
		or := make([]bson.M, 0, len(res.SearchFields))
		for _, field := range res.SearchFields {
			or = append(or, bson.M{field: regex})
		}
		filter["$or"] = or
	}
	collection := db.OpenCollections(res.Collection)
	total, err := collection.CountDocuments(c, filter)
	if err != nil {
		log.Println("Error from CountDocuments: ", err)
		return nil, 0, err
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)
	cursor, err := collection.Find(c, filter, opts)
	if err != nil {
		log.Println("Error from Find: ", err)
		return nil, 0, err
	}
	var docs []bson.M
	if err := cursor.All(c, &docs); err != nil {
		log.Println("Error decoding documents: ", err)
		return nil, 0, err
	}
	return docs, int(total), nil
}

func UpdateResourceByCode(c *gin.Context, res Resource, id string, data map[string]interface{}) (string, error) {
	updatedBy := c.GetString("code")
	delete(data, "code")
	data["updatedBy"] = updatedBy
	data["updatedAt"] = time.Now()
	collection := db.OpenCollections(res.Collection)
	updated, err := db.UpdateOne(c, collection, bson.M{"code": id}, bson.M{"$set": data})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) && res.DuplicateMsg != "" {
			return "", errors.New(res.DuplicateMsg)
		}
		log.Println("Error from UpdateOne: ", err)
		return "", err
	}
	if updated.MatchedCount == 0 {
		return "", errors.New(utils.RECORD_NOT_FOUND)
	}
	if res.CacheKey != "" {
		if err := redis.DeleteCache(c, res.CacheKey+id); err != nil {
			log.Println("Error from DeleteCache: ", err)
		}
	}
	return "Updated Successfully", nil
}

func DeleteResourceByCode(c *gin.Context, res Resource, id string) (string, error) {
	collection := db.OpenCollections(res.Collection)
	deleted, err := db.DeleteOne(c, collection, bson.M{"code": id})
	if err != nil {
		log.Println("Error from DeleteOne: ", err)
		return "", err
	}
	if deleted.DeletedCount == 0 {
		return "", errors.New(utils.RECORD_NOT_FOUND)
	}
	if res.CacheKey != "" {
		if err := redis.DeleteCache(c, res.CacheKey+id); err != nil {
			log.Println("Error from DeleteCache: ", err)
		}
	}
	return "Deleted successfully", nil
}
