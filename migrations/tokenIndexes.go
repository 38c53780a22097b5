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
* Unique index on (doctorId,tokenDate,tokenNumber)
* Token issue relies on this index instead of a read-then-write check
 */
func EnsureTokenQueueIndex() {
	ctx := context.Background()
	index := mongo.IndexModel{
		Keys: bson.D{
			{Key: "doctorId", Value: 1},
			{Key: "tokenDate", Value: 1},
			{Key: "tokenNumber", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName("token_queue_unique"),
	}
	name, err := db.DB.Collection(utils.TokenCollection).Indexes().CreateOne(ctx, index)
	if err != nil {
		log.Fatal("Migration failed:", err)
	}
	log.Println("Migration applied: created index ", name)
}
