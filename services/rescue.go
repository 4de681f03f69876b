package services

import (
	"context"
	"log"
	"math/rand"
	"time"

	"PawShelter360/config/db"
	"PawShelter360/config/redis"
	"PawShelter360/models"
	"PawShelter360/role"
	"PawShelter360/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	rescueCodeCharset  = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	rescueCodeLength   = 4
	rescueCodeAttempts = 10
)

// Public-safe projection returned to adopter-role callers. Internal notes,
// costs, archive bookkeeping and the confirming vet stay hidden.
var publicRescueProjection = bson.M{
	"code":              1,
	"name":              1,
	"species":           1,
	"breed":             1,
	"description":       1,
	"age":               1,
	"sex":               1,
	"image":             1,
	"adoptionStatus":    1,
	"adoptionReadiness": 1,
}

/*
* Generate a short random alphanumeric code and check it is free
* Bounded retry: after ten collisions give up with InternalError
 */
func GenerateRescueCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < rescueCodeAttempts; attempt++ {
		buf := make([]byte, rescueCodeLength)
		for i := range buf {
			buf[i] = rescueCodeCharset[rand.Intn(len(rescueCodeCharset))]
		}
		code := string(buf)
		count, err := db.CountDocuments(ctx, util.RescueCollection, bson.M{"code": code})
		if err != nil {
			log.Println("Error while checking rescue code uniqueness: ", err)
			return "", util.E(util.InternalError, "unable to check rescue code")
		}
		if count == 0 {
			return code, nil
		}
		log.Println("Rescue code collision, retrying: ", code)
	}
	return "", util.E(util.InternalError, util.CODE_GENERATION_EXHAUSTED)
}

/*
* Validate the rescue fields that came from request
* Generate the unique business code and insert with lifecycle defaults
 */
func CreateRescue(c *gin.Context, data map[string]interface{}) (map[string]interface{}, error) {
	createdBy, err := requesterCode(c)
	if err != nil {
		return nil, err
	}
	for _, f := range []string{"name", "species", "rescueDate"} {
		if _, err := util.GetTrimmedString(data, f); err != nil {
			log.Println("Error from GetTrimmedString: ", err)
			return nil, err
		}
	}
	code, err := GenerateRescueCode(c)
	if err != nil {
		return nil, err
	}

	age := 0
	if v, ok := data["age"].(float64); ok {
		age = int(v)
	}
	healthStatus, _ := data["healthStatus"].(string)
	if healthStatus == "" {
		healthStatus = models.HealthHealthy
	}
	breed, _ := data["breed"].(string)
	description, _ := data["description"].(string)
	sex, _ := data["sex"].(string)
	image, _ := data["image"].(string)

	rescue := bson.M{
		"code":              code,
		"name":              data["name"],
		"species":           data["species"],
		"breed":             breed,
		"description":       description,
		"rescueDate":        data["rescueDate"],
		"age":               age,
		"sex":               sex,
		"image":             image,
		"healthStatus":      healthStatus,
		"adoptionStatus":    models.StatusAvailable,
		"adoptionReadiness": models.ReadinessNotReady,
		"isConfirmed":       false,
		"confirmedBy":       "",
		"isArchived":        false,
		"archiveReason":     "",
		"medicalRecords":    []models.MedicalEntry{},
		"vaccinations":      []models.VaccinationEntry{},
		"createdAt":         time.Now(),
		"createdBy":         createdBy,
		"updatedAt":         time.Now(),
		"updatedBy":         createdBy,
	}
	if _, err := db.CreateOne(c, util.RescueCollection, rescue); err != nil {
		log.Println("Error while creating rescue record: ", err)
		return nil, util.E(util.InternalError, "unable to create rescue record")
	}
	if err := redis.SetCache(c, util.RescueKey+code, rescue); err != nil {
		log.Println("Error while caching new rescue record: ", err)
	}
	return rescue, nil
}

/*
* Staff see every record with all fields
* Adopter-role callers only see ready records still open for adoption, in the
* public-safe projection
 */
func FetchAllRescues(c *gin.Context) ([]map[string]interface{}, error) {
	callerRole := c.GetString("role")

	filter := bson.M{}
	var opts *options.FindOptions
	if !role.IsStaff(callerRole) {
		filter = bson.M{
			"adoptionStatus":    bson.M{"$in": []string{models.StatusAvailable, models.StatusPending}},
			"adoptionReadiness": models.ReadinessReady,
			"isArchived":        false,
		}
		opts = options.Find().SetProjection(publicRescueProjection)
	}
	rescues, err := db.FindAll(c, util.RescueCollection, filter, opts)
	if err != nil {
		log.Println("Error from FindAll while fetching rescues: ", err)
		return nil, util.E(util.InternalError, "unable to fetch rescue records")
	}
	return rescues, nil
}

func FetchRescueByCode(c *gin.Context, code string) (map[string]interface{}, error) {
	key := util.RescueKey + code
	callerRole := c.GetString("role")

	rescue := make(map[string]interface{})
	if role.IsStaff(callerRole) {
		if found, err := redis.GetCache(c, key, &rescue); err == nil && found {
			return rescue, nil
		}
	}
	if err := db.FindOne(c, util.RescueCollection, bson.M{"code": code}, &rescue); err != nil {
		log.Println("Error from FindOne while fetching rescue: ", err)
		return nil, util.E(util.NotFound, util.RESCUE_NOT_FOUND)
	}
	if role.IsStaff(callerRole) {
		if err := redis.SetCache(c, key, rescue); err != nil {
			log.Println("Error while caching rescue record: ", err)
		}
		return rescue, nil
	}

	status, _ := rescue["adoptionStatus"].(string)
	readiness, _ := rescue["adoptionReadiness"].(string)
	if (status != models.StatusAvailable && status != models.StatusPending) || readiness != models.ReadinessReady {
		return nil, util.E(util.NotFound, util.RESCUE_NOT_FOUND)
	}
	public := make(map[string]interface{})
	for field := range publicRescueProjection {
		if v, ok := rescue[field]; ok {
			public[field] = v
		}
	}
	return public, nil
}

/*
* Generic partial update, the single entry point that can set
* adoptionStatus = Adopted and thereby trigger promotion
* Promotion failures are logged and swallowed, the rescue update always
* commits independently
 */
func UpdateRescueByCode(c *gin.Context, code string, data map[string]interface{}) (map[string]interface{}, error) {
	updatedBy, err := requesterCode(c)
	if err != nil {
		return nil, err
	}
	for _, immutable := range []string{"_id", "code", "createdAt", "createdBy", "medicalRecords", "vaccinations"} {
		delete(data, immutable)
	}
	data["updatedAt"] = time.Now()
	data["updatedBy"] = updatedBy

	filter := bson.M{"code": code}
	res, err := db.UpdateOne(c, util.RescueCollection, filter, bson.M{"$set": data})
	if err != nil {
		log.Println("Error while updating rescue record: ", err)
		return nil, util.E(util.InternalError, "unable to update rescue record")
	}
	if res.MatchedCount == 0 {
		return nil, util.E(util.NotFound, util.RESCUE_NOT_FOUND)
	}
	updated := make(map[string]interface{})
	if err := db.FindOne(c, util.RescueCollection, filter, &updated); err != nil {
		log.Println("Error from FindOne after updating rescue: ", err)
		return nil, util.E(util.InternalError, "unable to fetch updated rescue record")
	}

	if status, _ := data["adoptionStatus"].(string); status == models.StatusAdopted {
		if err := PromoteRescue(c, updated); err != nil {
			log.Println("Promotion failed for rescue ", code, ", rescue update kept: ", err)
		}
	}

	key := util.RescueKey + code
	if err := redis.DeleteCache(c, key); err != nil {
		log.Println("Error while deleting rescue cache: ", err)
	}
	if err := redis.SetCache(c, key, updated); err != nil {
		log.Println("Error while caching updated rescue: ", err)
	}
	return updated, nil
}

/*
* Append-only medical entry, timestamped at append time
 */
func AddMedicalRecord(c *gin.Context, code string, data map[string]interface{}) error {
	recordedBy, err := requesterCode(c)
	if err != nil {
		return err
	}
	note, err := util.GetTrimmedString(data, "note")
	if err != nil {
		return err
	}
	cost, _ := data["cost"].(float64)
	entry := models.MedicalEntry{
		Note:       note,
		Cost:       cost,
		RecordedBy: recordedBy,
		RecordedAt: time.Now(),
	}
	return pushRescueEntry(c, code, "medicalRecords", entry)
}

func AddVaccination(c *gin.Context, code string, data map[string]interface{}) error {
	recordedBy, err := requesterCode(c)
	if err != nil {
		return err
	}
	vaccine, err := util.GetTrimmedString(data, "vaccine")
	if err != nil {
		return err
	}
	entry := models.VaccinationEntry{
		Vaccine:    vaccine,
		RecordedBy: recordedBy,
		RecordedAt: time.Now(),
	}
	return pushRescueEntry(c, code, "vaccinations", entry)
}

func pushRescueEntry(c *gin.Context, code string, field string, entry interface{}) error {
	filter := bson.M{"code": code}
	res, err := db.UpdateOne(c, util.RescueCollection, filter, bson.M{"$push": bson.M{field: entry}})
	if err != nil {
		log.Println("Error while appending ", field, " entry: ", err)
		return util.E(util.InternalError, "unable to append "+field+" entry")
	}
	if res.MatchedCount == 0 {
		return util.E(util.NotFound, util.RESCUE_NOT_FOUND)
	}
	if err := redis.DeleteCache(c, util.RescueKey+code); err != nil {
		log.Println("Error while invalidating rescue cache: ", err)
	}
	return nil
}

// ConfirmRescue is raised once by a vet and never automatically cleared.
func ConfirmRescue(c *gin.Context, code string) error {
	vetCode, err := requesterCode(c)
	if err != nil {
		return err
	}
	filter := bson.M{"code": code}
	update := bson.M{"$set": bson.M{
		"isConfirmed": true,
		"confirmedBy": vetCode,
		"updatedAt":   time.Now(),
		"updatedBy":   vetCode,
	}}
	res, err := db.UpdateOne(c, util.RescueCollection, filter, update)
	if err != nil {
		log.Println("Error while confirming rescue: ", err)
		return util.E(util.InternalError, "unable to confirm rescue record")
	}
	if res.MatchedCount == 0 {
		return util.E(util.NotFound, util.RESCUE_NOT_FOUND)
	}
	if err := redis.DeleteCache(c, util.RescueKey+code); err != nil {
		log.Println("Error while invalidating rescue cache: ", err)
	}
	return nil
}

/*
* Archive records the reason and forces the record out of adoption
 */
func ArchiveRescue(c *gin.Context, code string, data map[string]interface{}) error {
	updatedBy, err := requesterCode(c)
	if err != nil {
		return err
	}
	reason, err := util.GetTrimmedString(data, "reason")
	if err != nil {
		return err
	}
	filter := bson.M{"code": code}
	update := bson.M{"$set": bson.M{
		"isArchived":     true,
		"archiveReason":  reason,
		"adoptionStatus": models.StatusUnavailable,
		"updatedAt":      time.Now(),
		"updatedBy":      updatedBy,
	}}
	res, err := db.UpdateOne(c, util.RescueCollection, filter, update)
	if err != nil {
		log.Println("Error while archiving rescue: ", err)
		return util.E(util.InternalError, "unable to archive rescue record")
	}
	if res.MatchedCount == 0 {
		return util.E(util.NotFound, util.RESCUE_NOT_FOUND)
	}
	if err := redis.DeleteCache(c, util.RescueKey+code); err != nil {
		log.Println("Error while invalidating rescue cache: ", err)
	}
	return nil
}

// DeleteRescueByCode is the explicit administrative removal; nothing deletes
// rescue records automatically.
func DeleteRescueByCode(c *gin.Context, code string) (string, error) {
	filter := bson.M{"code": code}
	res, err := db.DeleteOne(c, util.RescueCollection, filter)
	if err != nil {
		log.Println("Error while deleting rescue record: ", err)
		return "", util.E(util.InternalError, "unable to delete rescue record")
	}
	if res.DeletedCount == 0 {
		return "", util.E(util.NotFound, util.RESCUE_NOT_FOUND)
	}
	if err := redis.DeleteCache(c, util.RescueKey+code); err != nil {
		log.Println("Error while deleting rescue cache: ", err)
	}
	return "rescue record " + code + " deleted successfully", nil
}
