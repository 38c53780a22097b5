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

type AppointmentFilter struct {
	DoctorID  string
	PatientID string
	Status    string
	From      string
	To        string
	Page      int64
	Limit     int64
}

/*
* Create a single appointment or a recurring series
* A single creation fails fast on the first conflict
* A recurring creation drops conflicting dates,reports them,and fails only
* when every expanded date conflicts
 */
func CreateAppointment(c *gin.Context, req models.CreateAppointmentRequest) (interface{}, error) {
	createdBy := c.GetString("code")
	if _, err := ParseDate(req.Date); err != nil {
		log.Println("Error parsing appointment date: ", err)
		return nil, err
	}
	if req.IsRecurring {
		return createRecurringSeries(c, req, createdBy)
	}
	if err := CheckAppointmentConflict(c, req.DoctorID, req.Date, req.StartTime, req.EndTime); err != nil {
		log.Println("Error from CheckAppointmentConflict: ", err)
		return nil, err
	}
	appointment, err := buildAppointment(req, req.Date, "", createdBy)
	if err != nil {
		return nil, err
	}
	coll := db.OpenCollections(utils.AppointmentCollection)
	inserted, err := coll.InsertOne(c, appointment)
	if err != nil {
		log.Println("Error inserting appointment: ", err)
		return nil, err
	}
	log.Println("Inserted appointment: ", inserted.InsertedID)
	key := utils.AppointmentKey + appointment.Code
	if err := redis.SetCache(c, key, appointment); err != nil {
		log.Println("Error caching appointment: ", err)
	}
	return appointment, nil
}

func buildAppointment(req models.CreateAppointmentRequest, date, seriesID, createdBy string) (models.Appointment, error) {
	code, err := common.GenerateEmpCode(utils.AppointmentCollection)
	if err != nil {
		log.Println("Error from GenerateEmpCode: ", err)
		return models.Appointment{}, err
	}
	now := time.Now()
	return models.Appointment{
		Code:             code,
		PatientID:        req.PatientID,
		DoctorID:         req.DoctorID,
		Date:             date,
		StartTime:        req.StartTime,
		EndTime:          req.EndTime,
		ConsultationType: req.ConsultationType,
		Status:           models.StatusScheduled,
		IsRecurring:      req.IsRecurring,
		RepeatEvery:      req.RepeatEvery,
		RepeatUnit:       req.RepeatUnit,
		RepeatDays:       req.RepeatDays,
		RepeatEndDate:    req.RepeatEndDate,
		SeriesID:         seriesID,
		Notes:            req.Notes,
		CreatedAt:        now,
		CreatedBy:        createdBy,
		UpdatedAt:        now,
		UpdatedBy:        createdBy,
	}, nil
}

/*
* Expand the recurrence into candidate dates
* Check each date independently,collect the ones that clear both checks
* Insert the clearing subset in one batch
 */
func createRecurringSeries(c *gin.Context, req models.CreateAppointmentRequest, createdBy string) (*models.RecurringResult, error) {
	dates, err := ExpandRecurrence(req.Date, req.RepeatEndDate, req.RepeatDays, req.RepeatEvery, req.RepeatUnit)
	if err != nil {
		return nil, err
	}
	if len(dates) == 0 {
		return nil, errors.New(utils.NO_DATES_MATCH_RECURRENCE)
	}
	seriesID, err := common.GenerateEmpCode(utils.AppointmentCollection)
	if err != nil {
		log.Println("Error from GenerateEmpCode: ", err)
		return nil, err
	}
	result := &models.RecurringResult{SeriesID: seriesID, Created: []string{}, Skipped: []models.SkippedDate{}}
	var docs []interface{}
	for _, date := range dates {
		if err := CheckAppointmentConflict(c, req.DoctorID, date, req.StartTime, req.EndTime); err != nil {
			result.Skipped = append(result.Skipped, models.SkippedDate{Date: date, Reason: err.Error()})
			continue
		}
		appointment, err := buildAppointment(req, date, seriesID, createdBy)
		if err != nil {
			return nil, err
		}
		docs = append(docs, appointment)
		result.Created = append(result.Created, date)
	}
	if len(docs) == 0 {
		return nil, errors.New(utils.ALL_RECURRING_DATES_CONFLICT)
	}
	coll := db.OpenCollections(utils.AppointmentCollection)
	if _, err := coll.InsertMany(c, docs); err != nil {
		log.Println("Error inserting recurring series: ", err)
		return nil, err
	}
	return result, nil
}

/*
* Fetch from cache first,fall back to the database and refill the cache
 */
func FetchAppointmentByCode(c *gin.Context, appointmentID string) (models.Appointment, error) {
	var appointment models.Appointment
	key := utils.AppointmentKey + appointmentID
	if fetchCached(c, key, &appointment) {
		return appointment, nil
	}
	coll := db.OpenCollections(utils.AppointmentCollection)
	err := coll.FindOne(c, bson.M{"code": appointmentID}).Decode(&appointment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return appointment, errors.New(utils.RECORD_NOT_FOUND)
		}
		log.Println("Error fetching appointment: ", err)
		return appointment, err
	}
	if err := redis.SetCache(c, key, appointment); err != nil {
		log.Println("Error caching appointment: ", err)
	}
	return appointment, nil
}

/*
* Build the filter from the optional query predicates
* Page through sorted by creation date descending
 */
func FetchAllAppointments(c *gin.Context, f AppointmentFilter) ([]models.Appointment, int, error) {
	filter := bson.M{}
	if f.DoctorID != "" {
		filter["doctorId"] = f.DoctorID
	}
	if f.PatientID != "" {
		filter["patientId"] = f.PatientID
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.From != "" || f.To != "" {
		dateRange := bson.M{}
		if f.From != "" {
			dateRange["$gte"] = f.From
		}
		if f.To != "" {
			dateRange["$lte"] = f.To
		}
		filter["date"] = dateRange
	}
	coll := db.OpenCollections(utils.AppointmentCollection)
	total, err := coll.CountDocuments(c, filter)
	if err != nil {
		log.Println("Error counting appointments: ", err)
		return nil, 0, err
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip((f.Page - 1) * f.Limit).
		SetLimit(f.Limit)
	cursor, err := coll.Find(c, filter, opts)
	if err != nil {
		log.Println("Error from Find: ", err)
		return nil, 0, err
	}
	var appointments []models.Appointment
	if err := cursor.All(c, &appointments); err != nil {
		log.Println("Error decoding appointments: ", err)
		return nil, 0, err
	}
	return appointments, int(total), nil
}

/*
* Validate a status transition if one is requested
* A reschedule re-runs the conflict checks for the new tuple
 */
func UpdateAppointmentByCode(c *gin.Context, appointmentID string, data map[string]interface{}) (string, error) {
	updatedBy := c.GetString("code")
	current, err := FetchAppointmentByCode(c, appointmentID)
	if err != nil {
		return "", err
	}
	if statusVal, ok := data["status"]; ok {
		status, ok := statusVal.(string)
		if !ok || !models.ValidAppointmentStatus(status) {
			return "", errors.New(utils.INVALID_APPOINTMENT_STATUS)
		}
	}
	date, _ := data["date"].(string)
	startTime, _ := data["startTime"].(string)
	endTime, _ := data["endTime"].(string)
	if date != "" || startTime != "" || endTime != "" {
		if date == "" {
			date = current.Date
		}
		if startTime == "" {
			startTime = current.StartTime
		}
		if endTime == "" {
			endTime = current.EndTime
		}
		if _, err := ParseDate(date); err != nil {
			return "", err
		}
		if err := CheckAppointmentConflict(c, current.DoctorID, date, startTime, endTime); err != nil {
			return "", err
		}
	}
	data["updatedBy"] = updatedBy
	data["updatedAt"] = time.Now()
	coll := db.OpenCollections(utils.AppointmentCollection)
	filter := bson.M{"code": appointmentID}
	updated, err := db.UpdateOne(c, coll, filter, bson.M{"$set": data})
	if err != nil {
		log.Println("Error from UpdateOne: ", err)
		return "", err
	}
	log.Println("Updated appointment: ", updated.ModifiedCount)
	key := utils.AppointmentKey + appointmentID
	if err := redis.DeleteCache(c, key); err != nil {
		log.Println("Error deleting appointment cache: ", err)
	}
	return "Updated Successfully", nil
}

func DeleteAppointmentByCode(c *gin.Context, appointmentID string) (string, error) {
	coll := db.OpenCollections(utils.AppointmentCollection)
	deleted, err := db.DeleteOne(c, coll, bson.M{"code": appointmentID})
	if err != nil {
		log.Println("Error from DeleteOne: ", err)
		return "", err
	}
	if deleted.DeletedCount == 0 {
		return "", errors.New(utils.RECORD_NOT_FOUND)
	}
	if err := redis.DeleteCache(c, utils.AppointmentKey+appointmentID); err != nil {
		log.Println("Error deleting appointment cache: ", err)
	}
	return "Deleted successfully", nil
}

/*
* Bookable slots for a doctor on a date
* Generate from the weekly schedule,drop slots already taken by a
* non-cancelled appointment,reject the whole day when a leave covers it
 */
func AvailableSlots(c *gin.Context, doctorID, date string) ([]models.Slot, error) {
	parsed, err := ParseDate(date)
	if err != nil {
		log.Println("Error parsing slot date: ", err)
		return nil, err
	}
	onLeave, err := IsDoctorOnLeave(c, doctorID, date)
	if err != nil {
		return nil, err
	}
	if onLeave {
		return nil, errors.New(utils.DOCTOR_IS_ON_LEAVE)
	}
	schedule, err := FetchDoctorScheduleByDoctor(c, doctorID)
	if err != nil {
		return nil, err
	}
	slots := SlotsForDate(schedule, parsed)
	if len(slots) == 0 {
		return []models.Slot{}, nil
	}
	coll := db.OpenCollections(utils.AppointmentCollection)
	cursor, err := coll.Find(c, bson.M{
		"doctorId": doctorID,
		"date":     date,
		"status":   bson.M{"$ne": models.StatusCancelled},
	})
	if err != nil {
		log.Println("Error fetching booked appointments: ", err)
		return nil, err
	}
	var booked []models.Appointment
	if err := cursor.All(c, &booked); err != nil {
		log.Println("Error decoding booked appointments: ", err)
		return nil, err
	}
	taken := make(map[string]bool, len(booked))
	for _, a := range booked {
		taken[a.StartTime] = true
	}
	open := []models.Slot{}
	for _, slot := range slots {
		if !taken[slot.Start] {
			open = append(open, slot)
		}
	}
	return open, nil
}
