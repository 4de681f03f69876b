package jobs

import (
	"context"
	"log"
	"time"

	"PawShelter360/config/db"
	"PawShelter360/models"
	"PawShelter360/services"
	"PawShelter360/util"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"
)

func StartDailyScheduler() {
	c := cron.New()

	// Runs every day at 00:05 AM
	c.AddFunc("5 0 * * *", func() {
		log.Println("Running daily vet slot scheduler...")
		RunTodayScheduler()
	})

	c.Start()
}

/*
* Seed the hourly grid for every active vet for today
* Skips a vet when the day entry already exists, keeping at most one entry
* per (date, time) on each calendar
 */
func RunTodayScheduler() {
	date := time.Now().Format("2006-01-02")
	vets, err := db.FindAll(context.Background(), util.VetCollection, bson.M{"isActive": true}, nil)
	if err != nil {
		log.Println("Error from FindAll while seeding slots: ", err)
		return
	}
	for _, vet := range vets {
		vetId, ok := vet["code"].(string)
		if !ok {
			log.Println("Invalid vet record, missing code: ", vet)
			continue
		}
		if err := SeedDailySlots(context.Background(), vetId, date); err != nil {
			log.Println("Error while seeding slots for vet ", vetId, ": ", err)
		}
	}
}

func SeedDailySlots(ctx context.Context, vetId string, date string) error {
	count, err := db.CountDocuments(ctx, util.VetCollection, bson.M{
		"code":              vetId,
		"availability.date": date,
	})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	day := models.DayAvailability{
		Date:  date,
		Slots: GenerateHourlySlots(),
	}
	_, err = db.UpdateOne(ctx, util.VetCollection,
		bson.M{"code": vetId},
		bson.M{"$push": bson.M{"availability": day}},
	)
	return err
}

// GenerateHourlySlots builds the fixed daily grid, all slots open.
func GenerateHourlySlots() []models.Slot {
	labels := services.HourLabels()
	slots := make([]models.Slot, 0, len(labels))
	for _, label := range labels {
		slots = append(slots, models.Slot{Time: label, IsAvailable: true})
	}
	return slots
}
