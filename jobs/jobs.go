package jobs

import (
	"context"
	"log"
	"time"

	db "github.com/KanapuramVaishnavi/Core/config/db"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"CareDesk360/models"
	"CareDesk360/services"
	"CareDesk360/utils"
)

func StartDailyScheduler() {
	c := cron.New()

	// Runs every day at 00:05 AM
	c.AddFunc("5 0 * * *", func() {
		log.Println("Running daily timeslot materializer...")
		RunTodayScheduler()
	})

	c.Start()
}

/*
* Materialize today's bookable slots for every doctor that has a weekly
* schedule,so the front desk reads a plain document instead of computing
 */
func RunTodayScheduler() {
	ctx := context.Background()
	today := time.Now()

	coll := db.OpenCollections(utils.DoctorScheduleCollection)
	cursor, err := coll.Find(ctx, bson.M{})
	if err != nil {
		log.Println("Error fetching doctor schedules: ", err)
		return
	}
	var schedules []models.DoctorSchedule
	if err := cursor.All(ctx, &schedules); err != nil {
		log.Println("Error decoding doctor schedules: ", err)
		return
	}
	for _, schedule := range schedules {
		if err := MaterializeDailySlots(ctx, schedule, today); err != nil {
			log.Println("Error generating slots for doctor: ", schedule.DoctorID, err)
		}
	}
}

func MaterializeDailySlots(ctx context.Context, schedule models.DoctorSchedule, date time.Time) error {
	dateStr := date.Format(services.DateLayout)

	onLeave, err := services.IsDoctorOnLeave(ctx, schedule.DoctorID, dateStr)
	if err != nil {
		return err
	}
	slots := []models.Slot{}
	if !onLeave {
		slots = services.SlotsForDate(schedule, date)
		if slots == nil {
			slots = []models.Slot{}
		}
	}

	record := bson.M{
		"doctorId":  schedule.DoctorID,
		"date":      dateStr,
		"day":       date.Weekday().String(),
		"isLeave":   onLeave,
		"slots":     slots,
		"createdAt": time.Now(),
	}
	coll := db.OpenCollections(utils.DoctorTimeSlotCollection)
	// one materialized document per doctor per date, rerunning replaces it
	_, err = coll.UpdateOne(ctx,
		bson.M{"doctorId": schedule.DoctorID, "date": dateStr},
		bson.M{"$set": record},
		options.Update().SetUpsert(true))
	return err
}
