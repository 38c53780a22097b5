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

func CreatePharmacyItem(c *gin.Context, req models.CreatePharmacyItemRequest) (models.PharmacyItem, error) {
	createdBy := c.GetString("code")
	code, err := common.GenerateEmpCode(utils.PharmacyItemCollection)
	if err != nil {
		log.Println("Error from GenerateEmpCode: ", err)
		return models.PharmacyItem{}, err
	}
	now := time.Now()
	item := models.PharmacyItem{
		Code:           code,
		Name:           req.Name,
		CategoryID:     req.CategoryID,
		ManufacturerID: req.ManufacturerID,
		RackID:         req.RackID,
		SupplierID:     req.SupplierID,
		Unit:           req.Unit,
		PurchasePrice:  req.PurchasePrice,
		SalePrice:      req.SalePrice,
		Quantity:       req.Quantity,
		ReorderLevel:   req.ReorderLevel,
		ExpiryDate:     req.ExpiryDate,
		CreatedAt:      now,
		CreatedBy:      createdBy,
		UpdatedAt:      now,
		UpdatedBy:      createdBy,
	}
	coll := db.OpenCollections(utils.PharmacyItemCollection)
	if _, err := coll.InsertOne(c, item); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.PharmacyItem{}, errors.New(utils.DUPLICATE_NAME)
		}
		log.Println("Error inserting pharmacy item: ", err)
		return models.PharmacyItem{}, err
	}
	if err := redis.SetCache(c, utils.PharmacyItemKey+code, item); err != nil {
		log.Println("Error caching pharmacy item: ", err)
	}
	return item, nil
}

func FetchPharmacyItemByCode(c *gin.Context, itemID string) (models.PharmacyItem, error) {
	var item models.PharmacyItem
	key := utils.PharmacyItemKey + itemID
	if fetchCached(c, key, &item) {
		return item, nil
	}
	coll := db.OpenCollections(utils.PharmacyItemCollection)
	err := coll.FindOne(c, bson.M{"code": itemID}).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return item, errors.New(utils.RECORD_NOT_FOUND)
		}
		log.Println("Error fetching pharmacy item: ", err)
		return item, err
	}
	if err := redis.SetCache(c, key, item); err != nil {
		log.Println("Error caching pharmacy item: ", err)
	}
	return item, nil
}

/*
* Stock list with an optional lowStock switch that keeps only items at or
* below their reorder level
 */
func FetchAllPharmacyItems(c *gin.Context, search, categoryID string, lowStock bool, page, limit int64) ([]models.PharmacyItem, int, error) {
	filter := bson.M{}
	if search != "" {
		filter["name"] = bson.M{"$regex": search, "$options": "i"}
	}
	if categoryID != "" {
		filter["categoryId"] = categoryID
	}
	if lowStock {
		filter["$expr"] = bson.M{"$lte": []string{"$quantity", "$reorderLevel"}}
	}
	coll := db.OpenCollections(utils.PharmacyItemCollection)
	total, err := coll.CountDocuments(c, filter)
	if err != nil {
		log.Println("Error counting pharmacy items: ", err)
		return nil, 0, err
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)
	cursor, err := coll.Find(c, filter, opts)
	if err != nil {
		log.Println("Error from Find: ", err)
		return nil, 0, err
	}
	var items []models.PharmacyItem
	if err := cursor.All(c, &items); err != nil {
		log.Println("Error decoding pharmacy items: ", err)
		return nil, 0, err
	}
	return items, int(total), nil
}

func UpdatePharmacyItemByCode(c *gin.Context, itemID string, data map[string]interface{}) (string, error) {
	updatedBy := c.GetString("code")
	delete(data, "code")
	data["updatedBy"] = updatedBy
	data["updatedAt"] = time.Now()
	coll := db.OpenCollections(utils.PharmacyItemCollection)
	updated, err := db.UpdateOne(c, coll, bson.M{"code": itemID}, bson.M{"$set": data})
	if err != nil {
		log.Println("Error from UpdateOne: ", err)
		return "", err
	}
	if updated.MatchedCount == 0 {
		return "", errors.New(utils.RECORD_NOT_FOUND)
	}
	if err := redis.DeleteCache(c, utils.PharmacyItemKey+itemID); err != nil {
		log.Println("Error deleting pharmacy item cache: ", err)
	}
	return "Updated Successfully", nil
}

func DeletePharmacyItemByCode(c *gin.Context, itemID string) (string, error) {
	coll := db.OpenCollections(utils.PharmacyItemCollection)
	deleted, err := db.DeleteOne(c, coll, bson.M{"code": itemID})
	if err != nil {
		log.Println("Error from DeleteOne: ", err)
		return "", err
	}
	if deleted.DeletedCount == 0 {
		return "", errors.New(utils.RECORD_NOT_FOUND)
	}
	if err := redis.DeleteCache(c, utils.PharmacyItemKey+itemID); err != nil {
		log.Println("Error deleting pharmacy item cache: ", err)
	}
	return "Deleted successfully", nil
}

/*
* Decrement stock with one conditional update per line:
* quantity >= requested guards the $inc so stock can never go negative
* A line that cannot be served is recorded as a missed sale and fails the
* whole sale,already decremented lines are handed back
 */
func CreatePosSale(c *gin.Context, req models.CreatePosSaleRequest) (models.PosSale, error) {
	createdBy := c.GetString("code")
	if _, err := ParseDate(req.SaleDate); err != nil {
		log.Println("Error parsing sale date: ", err)
		return models.PosSale{}, err
	}
	itemColl := db.OpenCollections(utils.PharmacyItemCollection)
	var total float64
	var decremented []models.SaleLine
	for i, line := range req.Lines {
		item, err := FetchPharmacyItemByCode(c, line.ItemID)
		if err != nil {
			restock(c, decremented)
			return models.PosSale{}, err
		}
		if line.Rate == 0 {
			req.Lines[i].Rate = item.SalePrice
			line.Rate = item.SalePrice
		}
		filter := bson.M{"code": line.ItemID, "quantity": bson.M{"$gte": line.Quantity}}
		update := bson.M{"$inc": bson.M{"quantity": -line.Quantity}}
		updated, err := db.UpdateOne(c, itemColl, filter, update)
		if err != nil {
			log.Println("Error from UpdateOne: ", err)
			restock(c, decremented)
			return models.PosSale{}, err
		}
		if updated.ModifiedCount == 0 {
			recordMissedSale(c, item, line.Quantity, createdBy, req.SaleDate)
			restock(c, decremented)
			return models.PosSale{}, errors.New(utils.INSUFFICIENT_STOCK)
		}
		if err := redis.DeleteCache(c, utils.PharmacyItemKey+line.ItemID); err != nil {
			log.Println("Error deleting pharmacy item cache: ", err)
		}
		decremented = append(decremented, line)
		total += line.Rate*float64(line.Quantity) - line.Discount
	}

	code, err := common.GenerateEmpCode(utils.PosSaleCollection)
	if err != nil {
		log.Println("Error from GenerateEmpCode: ", err)
		restock(c, decremented)
		return models.PosSale{}, err
	}
	sale := models.PosSale{
		Code:        code,
		PatientID:   req.PatientID,
		Lines:       req.Lines,
		Total:       total,
		PaymentMode: req.PaymentMode,
		SaleDate:    req.SaleDate,
		CreatedAt:   time.Now(),
		CreatedBy:   createdBy,
	}
	saleColl := db.OpenCollections(utils.PosSaleCollection)
	if _, err := saleColl.InsertOne(c, sale); err != nil {
		log.Println("Error inserting sale: ", err)
		restock(c, decremented)
		return models.PosSale{}, err
	}
	return sale, nil
}

func restock(c *gin.Context, lines []models.SaleLine) {
	itemColl := db.OpenCollections(utils.PharmacyItemCollection)
	for _, line := range lines {
		update := bson.M{"$inc": bson.M{"quantity": line.Quantity}}
		if _, err := db.UpdateOne(c, itemColl, bson.M{"code": line.ItemID}, update); err != nil {
			log.Println("Error restocking item: ", err)
		}
		if err := redis.DeleteCache(c, utils.PharmacyItemKey+line.ItemID); err != nil {
			log.Println("Error deleting pharmacy item cache: ", err)
		}
	}
}

func recordMissedSale(c *gin.Context, item models.PharmacyItem, quantity int, createdBy, date string) {
	code, err := common.GenerateEmpCode(utils.MissedSaleCollection)
	if err != nil {
		log.Println("Error from GenerateEmpCode: ", err)
		return
	}
	missed := models.MissedSale{
		Code:      code,
		ItemID:    item.Code,
		ItemName:  item.Name,
		Quantity:  quantity,
		Reason:    utils.INSUFFICIENT_STOCK,
		Date:      date,
		CreatedAt: time.Now(),
		CreatedBy: createdBy,
	}
	coll := db.OpenCollections(utils.MissedSaleCollection)
	if _, err := coll.InsertOne(c, missed); err != nil {
		log.Println("Error inserting missed sale: ", err)
	}
}

func CreatePurchaseOrder(c *gin.Context, req models.CreatePurchaseOrderRequest) (models.PurchaseOrder, error) {
	createdBy := c.GetString("code")
	if _, err := ParseDate(req.OrderDate); err != nil {
		log.Println("Error parsing order date: ", err)
		return models.PurchaseOrder{}, err
	}
	code, err := common.GenerateEmpCode(utils.PurchaseOrderCollection)
	if err != nil {
		log.Println("Error from GenerateEmpCode: ", err)
		return models.PurchaseOrder{}, err
	}
	var total float64
	for _, line := range req.Lines {
		total += line.Rate * float64(line.Quantity)
	}
	now := time.Now()
	order := models.PurchaseOrder{
		Code:       code,
		SupplierID: req.SupplierID,
		Lines:      req.Lines,
		Total:      total,
		Status:     "Ordered",
		OrderDate:  req.OrderDate,
		CreatedAt:  now,
		CreatedBy:  createdBy,
		UpdatedAt:  now,
		UpdatedBy:  createdBy,
	}
	coll := db.OpenCollections(utils.PurchaseOrderCollection)
	if _, err := coll.InsertOne(c, order); err != nil {
		log.Println("Error inserting purchase order: ", err)
		return models.PurchaseOrder{}, err
	}
	return order, nil
}

/*
* Receiving an order restocks every line and closes the order
 */
func ReceivePurchaseOrder(c *gin.Context, orderID string) (string, error) {
	updatedBy := c.GetString("code")
	coll := db.OpenCollections(utils.PurchaseOrderCollection)
	var order models.PurchaseOrder
	err := coll.FindOne(c, bson.M{"code": orderID, "status": "Ordered"}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", errors.New(utils.RECORD_NOT_FOUND)
		}
		log.Println("Error fetching purchase order: ", err)
		return "", err
	}
	itemColl := db.OpenCollections(utils.PharmacyItemCollection)
	for _, line := range order.Lines {
		update := bson.M{"$inc": bson.M{"quantity": line.Quantity}}
		if _, err := db.UpdateOne(c, itemColl, bson.M{"code": line.ItemID}, update); err != nil {
			log.Println("Error restocking ordered item: ", err)
			return "", err
		}
		if err := redis.DeleteCache(c, utils.PharmacyItemKey+line.ItemID); err != nil {
			log.Println("Error deleting pharmacy item cache: ", err)
		}
	}
	update := bson.M{"$set": bson.M{"status": "Received", "updatedAt": time.Now(), "updatedBy": updatedBy}}
	if _, err := db.UpdateOne(c, coll, bson.M{"code": orderID}, update); err != nil {
		log.Println("Error from UpdateOne: ", err)
		return "", err
	}
	return "Updated Successfully", nil
}

/*
* One closing per calendar date
* Sums the day's POS sales and records the counted cash difference
 */
func CreateStoreClosing(c *gin.Context, req models.StoreClosingRequest) (models.StoreClosing, error) {
	createdBy := c.GetString("code")
	if _, err := ParseDate(req.ClosingDate); err != nil {
		log.Println("Error parsing closing date: ", err)
		return models.StoreClosing{}, err
	}
	closeColl := db.OpenCollections(utils.StoreClosingCollection)
	existing, err := closeColl.CountDocuments(c, bson.M{"closingDate": req.ClosingDate})
	if err != nil {
		log.Println("Error counting store closings: ", err)
		return models.StoreClosing{}, err
	}
	if existing > 0 {
		return models.StoreClosing{}, errors.New(utils.STORE_ALREADY_CLOSED_FOR_DATE)
	}
	saleColl := db.OpenCollections(utils.PosSaleCollection)
	cursor, err := saleColl.Find(c, bson.M{"saleDate": req.ClosingDate})
	if err != nil {
		log.Println("Error from Find: ", err)
		return models.StoreClosing{}, err
	}
	var sales []models.PosSale
	if err := cursor.All(c, &sales); err != nil {
		log.Println("Error decoding sales: ", err)
		return models.StoreClosing{}, err
	}
	var totalSales float64
	for _, sale := range sales {
		totalSales += sale.Total
	}
	code, err := common.GenerateEmpCode(utils.StoreClosingCollection)
	if err != nil {
		log.Println("Error from GenerateEmpCode: ", err)
		return models.StoreClosing{}, err
	}
	closing := models.StoreClosing{
		Code:        code,
		ClosingDate: req.ClosingDate,
		TotalSales:  totalSales,
		SaleCount:   len(sales),
		CashCounted: req.CashCounted,
		Difference:  req.CashCounted - totalSales,
		Notes:       req.Notes,
		CreatedAt:   time.Now(),
		CreatedBy:   createdBy,
	}
	if _, err := closeColl.InsertOne(c, closing); err != nil {
		log.Println("Error inserting store closing: ", err)
		return models.StoreClosing{}, err
	}
	return closing, nil
}

/*
* Manual stock correction,positive or negative delta
* A negative delta carries the same quantity guard as a sale
 */
func CreateStockAdjustment(c *gin.Context, req models.CreateStockAdjustmentRequest) (models.StockAdjustment, error) {
	createdBy := c.GetString("code")
	if _, err := ParseDate(req.Date); err != nil {
		log.Println("Error parsing adjustment date: ", err)
		return models.StockAdjustment{}, err
	}
	itemColl := db.OpenCollections(utils.PharmacyItemCollection)
	filter := bson.M{"code": req.ItemID}
	if req.Delta < 0 {
		filter["quantity"] = bson.M{"$gte": -req.Delta}
	}
	updated, err := db.UpdateOne(c, itemColl, filter, bson.M{"$inc": bson.M{"quantity": req.Delta}})
	if err != nil {
		log.Println("Error from UpdateOne: ", err)
		return models.StockAdjustment{}, err
	}
	if updated.ModifiedCount == 0 {
		if _, err := FetchPharmacyItemByCode(c, req.ItemID); err != nil {
			return models.StockAdjustment{}, err
		}
		return models.StockAdjustment{}, errors.New(utils.INSUFFICIENT_STOCK)
	}
	if err := redis.DeleteCache(c, utils.PharmacyItemKey+req.ItemID); err != nil {
		log.Println("Error deleting pharmacy item cache: ", err)
	}
	code, err := common.GenerateEmpCode(utils.StockAdjustmentCollection)
	if err != nil {
		log.Println("Error from GenerateEmpCode: ", err)
		return models.StockAdjustment{}, err
	}
	adjustment := models.StockAdjustment{
		Code:      code,
		ItemID:    req.ItemID,
		Delta:     req.Delta,
		Reason:    req.Reason,
		Date:      req.Date,
		CreatedAt: time.Now(),
		CreatedBy: createdBy,
	}
	coll := db.OpenCollections(utils.StockAdjustmentCollection)
	if _, err := coll.InsertOne(c, adjustment); err != nil {
		log.Println("Error inserting stock adjustment: ", err)
		return models.StockAdjustment{}, err
	}
	return adjustment, nil
}

// Map-based resources for the thin pharmacy listings.
var (
	PosSaleResource = Resource{
		Collection:   utils.PosSaleCollection,
		SearchFields: []string{"patientId"},
	}
	PurchaseOrderResource = Resource{
		Collection:   utils.PurchaseOrderCollection,
		SearchFields: []string{"supplierId"},
	}
	MissedSaleResource = Resource{
		Collection:   utils.MissedSaleCollection,
		SearchFields: []string{"itemName"},
	}
	StockAdjustmentResource = Resource{
		Collection:   utils.StockAdjustmentCollection,
		SearchFields: []string{"itemId"},
	}
	StoreClosingResource = Resource{
		Collection:   utils.StoreClosingCollection,
		SearchFields: []string{"closingDate"},
	}
)
