package migrations

import (
	"context"
	"log"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"CareDesk360/utils"
)

/*
* Partial unique indexes on patient phoneNo and cnic
* Partial so historic documents without the field do not collide
 */
func EnsurePatientIdentityIndexes() {
	ctx := context.Background()
	coll := db.DB.Collection(utils.PatientCollection)

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "phoneNo", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("patient_phone_unique").
				SetPartialFilterExpression(bson.M{"phoneNo": bson.M{"$exists": true, "$gt": ""}}),
		},
		{
			Keys: bson.D{{Key: "cnic", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("patient_cnic_unique").
				SetPartialFilterExpression(bson.M{"cnic": bson.M{"$exists": true, "$gt": ""}}),
		},
	}
	names, err := coll.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		log.Fatal("Migration failed:", err)
	}
	log.Println("Migration applied: created indexes ", names)
}

func EnsureUserEmailIndex() {
	ctx := context.Background()
	index := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("user_email_unique"),
	}
	name, err := db.DB.Collection(utils.UserCollection).Indexes().CreateOne(ctx, index)
	if err != nil {
		log.Fatal("Migration failed:", err)
	}
	log.Println("Migration applied: created index ", name)
}

// Bed numbers are unique within their ward, room numbers within their room type.
func EnsureFacilityNumberIndexes() {
	ctx := context.Background()

	bedIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "wardId", Value: 1}, {Key: "bedNumber", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("bed_number_unique"),
	}
	name, err := db.DB.Collection(utils.BedDetailCollection).Indexes().CreateOne(ctx, bedIndex)
	if err != nil {
		log.Fatal("Migration failed:", err)
	}
	log.Println("Migration applied: created index ", name)

	roomIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "roomId", Value: 1}, {Key: "roomNumber", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("room_number_unique"),
	}
	name, err = db.DB.Collection(utils.RoomDetailCollection).Indexes().CreateOne(ctx, roomIndex)
	if err != nil {
		log.Fatal("Migration failed:", err)
	}
	log.Println("Migration applied: created index ", name)
}
