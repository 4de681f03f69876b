package services

import (
	"context"
	"log"
	"time"

	"PawShelter360/config/db"
	"PawShelter360/config/redis"
	"PawShelter360/models"
	"PawShelter360/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Fixed daily grid of bookable hour labels shown to clients.
var hourLabels = []string{"10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00", "18:00"}

func HourLabels() []string {
	return hourLabels
}

/*
* Validate the vet fields that came from request
* Allocate the vet business code from the V sequence
* Insert the new vet with an empty calendar and cache it
 */
func CreateVet(c *gin.Context, data map[string]interface{}) (map[string]interface{}, error) {
	for _, f := range []string{"name", "email"} {
		if _, err := util.GetTrimmedString(data, f); err != nil {
			log.Println("Error from GetTrimmedString: ", err)
			return nil, err
		}
	}
	count, err := db.CountDocuments(c, util.VetCollection, bson.M{"email": data["email"]})
	if err != nil {
		log.Println("Error while checking vet email: ", err)
		return nil, util.E(util.InternalError, "unable to check vet email")
	}
	if count > 0 {
		return nil, util.E(util.Conflict, util.EMAIL_ALREADY_REGISTERED)
	}

	seq, err := NextSequence(c, "V")
	if err != nil {
		return nil, err
	}
	code := FormatCode("V", seq)

	createdBy := c.GetString("code")
	phoneNo, _ := data["phoneNo"].(string)
	specialization, _ := data["specialization"].(string)
	vet := bson.M{
		"code":           code,
		"name":           data["name"],
		"email":          data["email"],
		"phoneNo":        phoneNo,
		"specialization": specialization,
		"availability":   []models.DayAvailability{},
		"isActive":       true,
		"createdAt":      time.Now(),
		"createdBy":      createdBy,
		"updatedAt":      time.Now(),
		"updatedBy":      createdBy,
	}
	if _, err := db.CreateOne(c, util.VetCollection, vet); err != nil {
		log.Println("Error while creating vet: ", err)
		return nil, util.E(util.InternalError, "unable to create vet")
	}
	if err := redis.SetCache(c, util.VetKey+code, vet); err != nil {
		log.Println("Error while caching new vet: ", err)
	}
	return vet, nil
}

func FetchAllVets(c *gin.Context) ([]map[string]interface{}, error) {
	vets, err := db.FindAll(c, util.VetCollection, bson.M{}, nil)
	if err != nil {
		log.Println("Error from FindAll while fetching vets: ", err)
		return nil, util.E(util.InternalError, "unable to fetch vets")
	}
	return vets, nil
}

func FetchVetByCode(ctx context.Context, vetId string) (map[string]interface{}, error) {
	key := util.VetKey + vetId
	cached := make(map[string]interface{})
	if found, err := redis.GetCache(ctx, key, &cached); err == nil && found {
		return cached, nil
	}
	vet := make(map[string]interface{})
	if err := db.FindOne(ctx, util.VetCollection, bson.M{"code": vetId}, &vet); err != nil {
		log.Println("Error from FindOne while fetching vet: ", err)
		return nil, util.E(util.NotFound, util.VET_NOT_FOUND)
	}
	if err := redis.SetCache(ctx, key, vet); err != nil {
		log.Println("Error while caching vet: ", err)
	}
	return vet, nil
}

/*
* Availability grid for one date
* A slot counts only when its day entry matches the date exactly and the
* isAvailable flag is true; read-only, no side effects
 */
func FetchAvailability(c *gin.Context, rawDate string, timeFilter string) (map[string][]string, error) {
	date, err := util.NormalizeDate(rawDate)
	if err != nil {
		return nil, err
	}
	if timeFilter != "" {
		if err := util.ValidateTime(timeFilter); err != nil {
			return nil, err
		}
	}

	var vets []models.Vet
	raw, err := db.FindAll(c, util.VetCollection, bson.M{"isActive": true}, nil)
	if err != nil {
		log.Println("Error from FindAll while building availability grid: ", err)
		return nil, util.E(util.InternalError, "unable to fetch vets")
	}
	for _, doc := range raw {
		var vet models.Vet
		if err := decodeDocument(doc, &vet); err != nil {
			log.Println("Skipping malformed vet record: ", err)
			continue
		}
		vets = append(vets, vet)
	}

	grid := make(map[string][]string)
	for _, label := range hourLabels {
		if timeFilter != "" && label != timeFilter {
			continue
		}
		grid[label] = []string{}
	}
	for _, vet := range vets {
		for _, day := range vet.Availability {
			if day.Date != date {
				continue
			}
			for _, slot := range day.Slots {
				if !slot.IsAvailable {
					continue
				}
				if _, tracked := grid[slot.Time]; !tracked {
					continue
				}
				grid[slot.Time] = append(grid[slot.Time], vet.Code)
			}
		}
	}
	return grid, nil
}

/*
* Claim a slot with one conditional update: the filter only matches while the
* slot is still available, so two concurrent bookings can never both flip it.
* ModifiedCount zero means someone else got there first.
 */
func ClaimSlot(ctx context.Context, vetId string, date string, timeGiven string) error {
	filter := bson.M{
		"code": vetId,
		"availability": bson.M{
			"$elemMatch": bson.M{
				"date": date,
				"slots": bson.M{
					"$elemMatch": bson.M{"time": timeGiven, "isAvailable": true},
				},
			},
		},
	}
	update := bson.M{
		"$set": bson.M{"availability.$[d].slots.$[s].isAvailable": false},
	}
	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{
			bson.M{"d.date": date},
			bson.M{"s.time": timeGiven, "s.isAvailable": true},
		},
	})
	res, err := db.UpdateOne(ctx, util.VetCollection, filter, update, opts)
	if err != nil {
		log.Println("Error while claiming slot: ", err)
		return util.E(util.InternalError, "unable to claim slot")
	}
	if res.ModifiedCount == 0 {
		return util.E(util.SlotUnavailable, util.SLOT_UNAVAILABLE)
	}
	return nil
}

// ReleaseSlot restores a claimed slot. Used to roll back a failed booking and
// by appointment deletion when the caller opts in.
func ReleaseSlot(ctx context.Context, vetId string, date string, timeGiven string) error {
	filter := bson.M{
		"code": vetId,
		"availability": bson.M{
			"$elemMatch": bson.M{
				"date":       date,
				"slots.time": timeGiven,
			},
		},
	}
	update := bson.M{
		"$set": bson.M{"availability.$[d].slots.$[s].isAvailable": true},
	}
	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{
			bson.M{"d.date": date},
			bson.M{"s.time": timeGiven},
		},
	})
	res, err := db.UpdateOne(ctx, util.VetCollection, filter, update, opts)
	if err != nil {
		log.Println("Error while releasing slot: ", err)
		return util.E(util.InternalError, "unable to release slot")
	}
	if res.MatchedCount == 0 {
		return util.E(util.NotFound, util.SLOT_DOES_NOT_EXIST)
	}
	return nil
}

/*
* Administrative override of one (vetId, date, time) flag, bypassing booking
* Updates the slot in place when it exists, otherwise grows the calendar,
* keeping at most one slot entry per (date, time)
 */
func SetSlotAvailability(c *gin.Context, vetId string, data map[string]interface{}) error {
	rawDate, err := util.GetTrimmedString(data, "date")
	if err != nil {
		return err
	}
	date, err := util.NormalizeDate(rawDate)
	if err != nil {
		return err
	}
	timeGiven, err := util.GetTrimmedString(data, "time")
	if err != nil {
		return err
	}
	if err := util.ValidateTime(timeGiven); err != nil {
		return err
	}
	isAvailable, ok := data["isAvailable"].(bool)
	if !ok {
		return util.E(util.ValidationError, "isAvailable must be a boolean")
	}

	// Existing slot: flip it in place.
	filter := bson.M{
		"code": vetId,
		"availability": bson.M{
			"$elemMatch": bson.M{"date": date, "slots.time": timeGiven},
		},
	}
	update := bson.M{"$set": bson.M{"availability.$[d].slots.$[s].isAvailable": isAvailable}}
	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{
			bson.M{"d.date": date},
			bson.M{"s.time": timeGiven},
		},
	})
	res, err := db.UpdateOne(c, util.VetCollection, filter, update, opts)
	if err != nil {
		log.Println("Error while overriding slot: ", err)
		return util.E(util.InternalError, "unable to update slot")
	}
	if res.MatchedCount > 0 {
		if cacheErr := redis.DeleteCache(c, util.VetKey+vetId); cacheErr != nil {
			log.Println("Error while invalidating vet cache: ", cacheErr)
		}
		return nil
	}

	// Day exists but slot does not: append the slot to that day.
	slot := models.Slot{Time: timeGiven, IsAvailable: isAvailable}
	dayFilter := bson.M{"code": vetId, "availability.date": date}
	push := bson.M{"$push": bson.M{"availability.$.slots": slot}}
	res, err = db.UpdateOne(c, util.VetCollection, dayFilter, push)
	if err != nil {
		log.Println("Error while appending slot: ", err)
		return util.E(util.InternalError, "unable to update slot")
	}
	if res.MatchedCount > 0 {
		if cacheErr := redis.DeleteCache(c, util.VetKey+vetId); cacheErr != nil {
			log.Println("Error while invalidating vet cache: ", cacheErr)
		}
		return nil
	}

	// No day entry yet: append a fresh day with the single slot.
	newDay := models.DayAvailability{Date: date, Slots: []models.Slot{slot}}
	res, err = db.UpdateOne(c, util.VetCollection, bson.M{"code": vetId}, bson.M{"$push": bson.M{"availability": newDay}})
	if err != nil {
		log.Println("Error while appending day entry: ", err)
		return util.E(util.InternalError, "unable to update slot")
	}
	if res.MatchedCount == 0 {
		return util.E(util.NotFound, util.VET_NOT_FOUND)
	}
	if cacheErr := redis.DeleteCache(c, util.VetKey+vetId); cacheErr != nil {
		log.Println("Error while invalidating vet cache: ", cacheErr)
	}
	return nil
}
