package services

import (
	"errors"
	"log"
	"time"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	redis "github.com/KanapuramVaishnavi/Core/config/redis"
	common "github.com/KanapuramVaishnavi/Core/coreServices"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"CareDesk360/models"
	"CareDesk360/utils"
)

// LineNet is the line's amount after discount, before tax.
func LineNet(item models.InvoiceItem) float64 {
	return item.Rate*float64(item.Quantity) - item.Discount
}

/*
* Split a line's net amount between doctor and hospital
* Doctor -> all doctor,Hospital -> all hospital,default is an even split
 */
func ShareSplit(item models.InvoiceItem) (doctor, hospital float64) {
	net := LineNet(item)
	switch item.ShareType {
	case models.ShareDoctor:
		return net, 0
	case models.ShareHospital:
		return 0, net
	default:
		return net / 2, net / 2
	}
}

/*
* Fill the computed money fields of an invoice from its items
* due = grandTotal - paid when paid < total,advance = paid - total when
* paid > total,never both
 */
func ComputeInvoiceTotals(inv *models.Invoice) {
	inv.SubTotal, inv.Discount, inv.Tax = 0, 0, 0
	inv.DoctorShare, inv.HospitalShare = 0, 0
	for _, item := range inv.Items {
		inv.SubTotal += item.Rate * float64(item.Quantity)
		inv.Discount += item.Discount
		inv.Tax += item.Tax
		d, h := ShareSplit(item)
		inv.DoctorShare += d
		inv.HospitalShare += h
	}
	inv.GrandTotal = inv.SubTotal - inv.Discount + inv.Tax
	inv.Due, inv.Advance = 0, 0
	if inv.Paid < inv.GrandTotal {
		inv.Due = inv.GrandTotal - inv.Paid
	} else if inv.Paid > inv.GrandTotal {
		inv.Advance = inv.Paid - inv.GrandTotal
	}
}

// InvoiceStatus classifies an invoice from its stored due/advance fields.
func InvoiceStatus(inv models.Invoice) string {
	switch {
	case inv.Advance > 0:
		return models.InvoiceCredit
	case inv.Due > 0:
		return models.InvoicePending
	default:
		return models.InvoicePaid
	}
}

// SummarizeInvoices sums the stored money fields as-is, so the summary can
// never drift from what each invoice individually reports.
func SummarizeInvoices(invoices []models.Invoice) models.InvoiceSummary {
	var s models.InvoiceSummary
	for _, inv := range invoices {
		s.SubTotal += inv.SubTotal
		s.Discount += inv.Discount
		s.Tax += inv.Tax
		s.GrandTotal += inv.GrandTotal
		s.Paid += inv.Paid
		s.Due += inv.Due
		s.Advance += inv.Advance
		s.DoctorShare += inv.DoctorShare
		s.HospitalShare += inv.HospitalShare
	}
	return s
}

/*
* Validate the share types,compute totals server side
* An initial paid amount becomes the first payment installment
 */
func CreateInvoice(c *gin.Context, req models.CreateInvoiceRequest) (models.Invoice, error) {
	createdBy := c.GetString("code")
	for _, item := range req.Items {
		if !models.ValidShareType(item.ShareType) {
			return models.Invoice{}, errors.New(utils.INVALID_SHARE_TYPE)
		}
	}
	code, err := common.GenerateEmpCode(utils.InvoiceCollection)
	if err != nil {
		log.Println("Error from GenerateEmpCode: ", err)
		return models.Invoice{}, err
	}
	now := time.Now()
	invoice := models.Invoice{
		Code:          code,
		InvoiceNumber: code,
		PatientID:     req.PatientID,
		DoctorID:      req.DoctorID,
		Items:         req.Items,
		Payments:      []models.Payment{},
		PaymentMode:   req.PaymentMode,
		Paid:          req.Paid,
		CreatedAt:     now,
		CreatedBy:     createdBy,
		UpdatedAt:     now,
		UpdatedBy:     createdBy,
	}
	if req.Paid > 0 {
		invoice.Payments = append(invoice.Payments, models.Payment{
			ReceiptID: uuid.NewString(),
			Amount:    req.Paid,
			Mode:      req.PaymentMode,
			PaidAt:    now,
			TakenBy:   createdBy,
		})
	}
	ComputeInvoiceTotals(&invoice)
	coll := db.OpenCollections(utils.InvoiceCollection)
	if _, err := coll.InsertOne(c, invoice); err != nil {
		log.Println("Error inserting invoice: ", err)
		return models.Invoice{}, err
	}
	if err := redis.SetCache(c, utils.InvoiceKey+code, invoice); err != nil {
		log.Println("Error caching invoice: ", err)
	}
	return invoice, nil
}

/*
* Append an installment and recompute paid/due/advance
 */
func PayInvoice(c *gin.Context, invoiceID string, req models.PayInvoiceRequest) (models.Invoice, error) {
	takenBy := c.GetString("code")
	invoice, err := FetchInvoiceByCode(c, invoiceID)
	if err != nil {
		return models.Invoice{}, err
	}
	invoice.Payments = append(invoice.Payments, models.Payment{
		ReceiptID: uuid.NewString(),
		Amount:    req.Amount,
		Mode:      req.Mode,
		PaidAt:    time.Now(),
		TakenBy:   takenBy,
	})
	invoice.Paid += req.Amount
	invoice.UpdatedAt = time.Now()
	invoice.UpdatedBy = takenBy
	ComputeInvoiceTotals(&invoice)
	coll := db.OpenCollections(utils.InvoiceCollection)
	update := bson.M{"$set": bson.M{
		"payments":  invoice.Payments,
		"paid":      invoice.Paid,
		"due":       invoice.Due,
		"advance":   invoice.Advance,
		"updatedAt": invoice.UpdatedAt,
		"updatedBy": invoice.UpdatedBy,
	}}
	if _, err := db.UpdateOne(c, coll, bson.M{"code": invoiceID}, update); err != nil {
		log.Println("Error from UpdateOne: ", err)
		return models.Invoice{}, err
	}
	key := utils.InvoiceKey + invoiceID
	if err := redis.DeleteCache(c, key); err != nil {
		log.Println("Error deleting invoice cache: ", err)
	}
	if err := redis.SetCache(c, key, invoice); err != nil {
		log.Println("Error caching invoice: ", err)
	}
	return invoice, nil
}

func FetchInvoiceByCode(c *gin.Context, invoiceID string) (models.Invoice, error) {
	var invoice models.Invoice
	key := utils.InvoiceKey + invoiceID
	if fetchCached(c, key, &invoice) {
		return invoice, nil
	}
	coll := db.OpenCollections(utils.InvoiceCollection)
	err := coll.FindOne(c, bson.M{"code": invoiceID}).Decode(&invoice)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return invoice, errors.New(utils.RECORD_NOT_FOUND)
		}
		log.Println("Error fetching invoice: ", err)
		return invoice, err
	}
	if err := redis.SetCache(c, key, invoice); err != nil {
		log.Println("Error caching invoice: ", err)
	}
	return invoice, nil
}

func DeleteInvoiceByCode(c *gin.Context, invoiceID string) (string, error) {
	coll := db.OpenCollections(utils.InvoiceCollection)
	deleted, err := db.DeleteOne(c, coll, bson.M{"code": invoiceID})
	if err != nil {
		log.Println("Error from DeleteOne: ", err)
		return "", err
	}
	if deleted.DeletedCount == 0 {
		return "", errors.New(utils.RECORD_NOT_FOUND)
	}
	if err := redis.DeleteCache(c, utils.InvoiceKey+invoiceID); err != nil {
		log.Println("Error deleting invoice cache: ", err)
	}
	return "Deleted successfully", nil
}

/*
* List invoices for the filter
* Directly indexed predicates use a plain filtered query,any cross entity
* text predicate switches to the lookup pipeline
* Returns the page,the total matching count and the page level summary
 */
func FetchInvoices(c *gin.Context, f models.InvoiceFilter) ([]models.Invoice, int, models.InvoiceSummary, error) {
	var (
		invoices []models.Invoice
		total    int
		err      error
	)
	if f.NeedsJoin() {
		invoices, total, err = fetchInvoicesJoined(c, f, true)
	} else {
		invoices, total, err = fetchInvoicesDirect(c, f, true)
	}
	if err != nil {
		return nil, 0, models.InvoiceSummary{}, err
	}
	return invoices, total, SummarizeInvoices(invoices), nil
}

/*
* Summary across the full filtered set,not just one page
 */
func FetchInvoiceSummary(c *gin.Context, f models.InvoiceFilter) (models.InvoiceSummary, int, error) {
	var (
		invoices []models.Invoice
		total    int
		err      error
	)
	if f.NeedsJoin() {
		invoices, total, err = fetchInvoicesJoined(c, f, false)
	} else {
		invoices, total, err = fetchInvoicesDirect(c, f, false)
	}
	if err != nil {
		return models.InvoiceSummary{}, 0, err
	}
	return SummarizeInvoices(invoices), total, nil
}

func directInvoiceFilter(f models.InvoiceFilter) bson.M {
	filter := bson.M{}
	if f.DoctorID != "" {
		filter["doctorId"] = f.DoctorID
	}
	if f.PatientID != "" {
		filter["patientId"] = f.PatientID
	}
	if f.InvoiceNumber != "" {
		filter["invoiceNumber"] = bson.M{"$regex": f.InvoiceNumber, "$options": "i"}
	}
	if f.PaymentMode != "" {
		filter["paymentMode"] = f.PaymentMode
	}
	switch f.Status {
	case models.InvoicePaid:
		filter["due"] = float64(0)
		filter["advance"] = float64(0)
	case models.InvoicePending:
		filter["due"] = bson.M{"$gt": float64(0)}
	case models.InvoiceCredit:
		filter["advance"] = bson.M{"$gt": float64(0)}
	}
	if f.HasMinTotal || f.HasMaxTotal {
		totalRange := bson.M{}
		if f.HasMinTotal {
			totalRange["$gte"] = f.MinTotal
		}
		if f.HasMaxTotal {
			totalRange["$lte"] = f.MaxTotal
		}
		filter["grandTotal"] = totalRange
	}
	if f.From != "" || f.To != "" {
		created := bson.M{}
		if f.From != "" {
			if from, err := ParseDate(f.From); err == nil {
				created["$gte"] = from
			}
		}
		if f.To != "" {
			if to, err := ParseDate(f.To); err == nil {
				created["$lt"] = to.AddDate(0, 0, 1)
			}
		}
		filter["createdAt"] = created
	}
	return filter
}

func fetchInvoicesDirect(c *gin.Context, f models.InvoiceFilter, paginate bool) ([]models.Invoice, int, error) {
	coll := db.OpenCollections(utils.InvoiceCollection)
	filter := directInvoiceFilter(f)
	total, err := coll.CountDocuments(c, filter)
	if err != nil {
		log.Println("Error counting invoices: ", err)
		return nil, 0, err
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if paginate {
		opts = opts.SetSkip((f.Page - 1) * f.Limit).SetLimit(f.Limit)
	}
	cursor, err := coll.Find(c, filter, opts)
	if err != nil {
		log.Println("Error from Find: ", err)
		return nil, 0, err
	}
	var invoices []models.Invoice
	if err := cursor.All(c, &invoices); err != nil {
		log.Println("Error decoding invoices: ", err)
		return nil, 0, err
	}
	return invoices, int(total), nil
}

/*
* Join invoice -> patient,invoice -> doctor -> department and apply each
* text predicate after the joins,then sort and paginate inside a $facet
 */
func fetchInvoicesJoined(c *gin.Context, f models.InvoiceFilter, paginate bool) ([]models.Invoice, int, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: directInvoiceFilter(f)}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         utils.PatientCollection,
			"localField":   "patientId",
			"foreignField": "code",
			"as":           "patient",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{"path": "$patient", "preserveNullAndEmptyArrays": true}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         utils.DoctorCollection,
			"localField":   "doctorId",
			"foreignField": "code",
			"as":           "doctor",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{"path": "$doctor", "preserveNullAndEmptyArrays": true}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         utils.ProcedureCollection,
			"localField":   "items.procedureId",
			"foreignField": "code",
			"as":           "procedures",
		}}},
	}
	post := bson.M{}
	if f.PatientName != "" {
		post["patient.name"] = bson.M{"$regex": f.PatientName, "$options": "i"}
	}
	if f.MRNumber != "" {
		post["patient.mrNumber"] = bson.M{"$regex": f.MRNumber, "$options": "i"}
	}
	if f.Phone != "" {
		post["patient.phoneNo"] = bson.M{"$regex": f.Phone, "$options": "i"}
	}
	if f.DoctorName != "" {
		post["doctor.name"] = bson.M{"$regex": f.DoctorName, "$options": "i"}
	}
	if f.DepartmentID != "" {
		post["doctor.departmentId"] = f.DepartmentID
	}
	if f.Search != "" {
		regex := bson.M{"$regex": f.Search, "$options": "i"}
		post["$or"] = []bson.M{
			{"patient.name": regex},
			{"patient.mrNumber": regex},
			{"doctor.name": regex},
			{"invoiceNumber": regex},
			{"items.name": regex},
		}
	}
	if len(post) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: post}})
	}
	pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}})
	coll := db.OpenCollections(utils.InvoiceCollection)

	if !paginate {
		cursor, err := coll.Aggregate(c, pipeline)
		if err != nil {
			log.Println("Error from Aggregate: ", err)
			return nil, 0, err
		}
		var invoices []models.Invoice
		if err := cursor.All(c, &invoices); err != nil {
			log.Println("Error decoding aggregation: ", err)
			return nil, 0, err
		}
		return invoices, len(invoices), nil
	}

	pipeline = append(pipeline, bson.D{{Key: "$facet", Value: bson.M{
		"rows": []bson.M{
			{"$skip": (f.Page - 1) * f.Limit},
			{"$limit": f.Limit},
		},
		"total": []bson.M{{"$count": "count"}},
	}}})
	cursor, err := coll.Aggregate(c, pipeline)
	if err != nil {
		log.Println("Error from Aggregate: ", err)
		return nil, 0, err
	}
	var out []struct {
		Rows  []models.Invoice `bson:"rows"`
		Total []struct {
			Count int `bson:"count"`
		} `bson:"total"`
	}
	if err := cursor.All(c, &out); err != nil {
		log.Println("Error decoding aggregation: ", err)
		return nil, 0, err
	}
	if len(out) == 0 {
		return []models.Invoice{}, 0, nil
	}
	total := 0
	if len(out[0].Total) > 0 {
		total = out[0].Total[0].Count
	}
	return out[0].Rows, total, nil
}
