package migrations

import (
	"context"
	"log"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"CareDesk360/models"
	"CareDesk360/utils"
)

/*
* Older invoice items carried no shareType,which the split treats as the
* even split,write the explicit value so reports can group on it
 */
func BackfillInvoiceShareType() {
	ctx := context.Background()
	coll := db.DB.Collection(utils.InvoiceCollection)

	result, err := coll.UpdateMany(
		ctx,
		bson.M{"items": bson.M{"$elemMatch": bson.M{"shareType": bson.M{"$in": bson.A{nil, ""}}}}},
		bson.M{"$set": bson.M{"items.$[item].shareType": models.ShareBoth}},
		options.Update().SetArrayFilters(options.ArrayFilters{
			Filters: []interface{}{bson.M{"item.shareType": bson.M{"$in": bson.A{nil, ""}}}},
		}),
	)
	if err != nil {
		log.Fatal("Migration failed:", err)
	}
	log.Printf("Migration applied: %d documents updated\n", result.ModifiedCount)
}
