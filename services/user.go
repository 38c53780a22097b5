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
	"golang.org/x/crypto/bcrypt"

	"CareDesk360/models"
	"CareDesk360/utils"
)

/*
* Store the bcrypt hash,never the raw password
* Email uniqueness comes from the collection index
 */
func CreateUser(c *gin.Context, req models.CreateUserRequest) (models.User, error) {
	createdBy := c.GetString("code")
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Println("Error hashing password: ", err)
		return models.User{}, err
	}
	code, err := common.GenerateEmpCode(utils.UserCollection)
	if err != nil {
		log.Println("Error from GenerateEmpCode: ", err)
		return models.User{}, err
	}
	now := time.Now()
	user := models.User{
		Code:      code,
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Password:  string(hash),
		Role:      req.Role,
		PhoneNo:   req.PhoneNo,
		Active:    true,
		CreatedAt: now,
		CreatedBy: createdBy,
		UpdatedAt: now,
		UpdatedBy: createdBy,
	}
	coll := db.OpenCollections(utils.UserCollection)
	if _, err := coll.InsertOne(c, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, errors.New(utils.DUPLICATE_EMAIL)
		}
		log.Println("Error inserting user: ", err)
		return models.User{}, err
	}
	if err := redis.SetCache(c, utils.UserKey+code, user); err != nil {
		log.Println("Error caching user: ", err)
	}
	return user, nil
}

func FetchUserByCode(c *gin.Context, userID string) (models.User, error) {
	var user models.User
	key := utils.UserKey + userID
	if fetchCached(c, key, &user) {
		return user, nil
	}
	coll := db.OpenCollections(utils.UserCollection)
	err := coll.FindOne(c, bson.M{"code": userID}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return user, errors.New(utils.RECORD_NOT_FOUND)
		}
		log.Println("Error fetching user: ", err)
		return user, err
	}
	if err := redis.SetCache(c, key, user); err != nil {
		log.Println("Error caching user: ", err)
	}
	return user, nil
}

func FetchAllUsers(c *gin.Context, search, role string, page, limit int64) ([]models.User, int, error) {
	filter := bson.M{}
	if search != "" {
		regex := bson.M{"$regex": search, "$options": "i"}
		filter["$or"] = []bson.M{{"name": regex}, {"email": regex}}
	}
	if role != "" {
		filter["role"] = role
	}
	coll := db.OpenCollections(utils.UserCollection)
	total, err := coll.CountDocuments(c, filter)
	if err != nil {
		log.Println("Error counting users: ", err)
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
	var users []models.User
	if err := cursor.All(c, &users); err != nil {
		log.Println("Error decoding users: ", err)
		return nil, 0, err
	}
	return users, int(total), nil
}

/*
* A password change re-hashes,everything else is a plain $set
 */
func UpdateUserByCode(c *gin.Context, userID string, data map[string]interface{}) (string, error) {
	updatedBy := c.GetString("code")
	if passwordVal, ok := data["password"]; ok {
		password, ok := passwordVal.(string)
		if !ok || len(password) < 8 {
			return "", errors.New(utils.MISSING_REQUIRED_FIELDS)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Println("Error hashing password: ", err)
			return "", err
		}
		data["password"] = string(hash)
	}
	delete(data, "code")
	data["updatedBy"] = updatedBy
	data["updatedAt"] = time.Now()
	coll := db.OpenCollections(utils.UserCollection)
	updated, err := db.UpdateOne(c, coll, bson.M{"code": userID}, bson.M{"$set": data})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", errors.New(utils.DUPLICATE_EMAIL)
		}
		log.Println("Error from UpdateOne: ", err)
		return "", err
	}
	if updated.MatchedCount == 0 {
		return "", errors.New(utils.RECORD_NOT_FOUND)
	}
	if err := redis.DeleteCache(c, utils.UserKey+userID); err != nil {
		log.Println("Error deleting user cache: ", err)
	}
	return "Updated Successfully", nil
}

func DeleteUserByCode(c *gin.Context, userID string) (string, error) {
	coll := db.OpenCollections(utils.UserCollection)
	deleted, err := db.DeleteOne(c, coll, bson.M{"code": userID})
	if err != nil {
		log.Println("Error from DeleteOne: ", err)
		return "", err
	}
	if deleted.DeletedCount == 0 {
		return "", errors.New(utils.RECORD_NOT_FOUND)
	}
	if err := redis.DeleteCache(c, utils.UserKey+userID); err != nil {
		log.Println("Error deleting user cache: ", err)
	}
	return "Deleted successfully", nil
}
