package services

import (
	"log"
	"time"

	"PawShelter360/config/db"
	"PawShelter360/config/redis"
	"PawShelter360/role"
	"PawShelter360/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

/*
* Validate the booking fields that came from request
* Normalize the date and check the HH:MM time
 */
func validateBookingInput(data map[string]interface{}) (string, string, string, error) {
	rawDate, err := util.GetTrimmedString(data, "date")
	if err != nil {
		return "", "", "", err
	}
	date, err := util.NormalizeDate(rawDate)
	if err != nil {
		return "", "", "", err
	}
	timeGiven, err := util.GetTrimmedString(data, "time")
	if err != nil {
		return "", "", "", err
	}
	if err := util.ValidateTime(timeGiven); err != nil {
		return "", "", "", err
	}
	vetId, err := util.GetTrimmedString(data, "vetId")
	if err != nil {
		return "", "", "", err
	}
	return date, timeGiven, vetId, nil
}

func subRecord(data map[string]interface{}, field string) map[string]interface{} {
	if sub, ok := data[field].(map[string]interface{}); ok {
		return sub
	}
	return map[string]interface{}{}
}

/*
* Get the requester from the context, it becomes the owner-of-record
* Validate the payload and check the vet exists
* Claim the slot first with the conditional update, then insert the
* appointment; if the insert fails the claim is rolled back so no orphaned
* appointment is ever left behind
 */
func CreateAppointment(c *gin.Context, data map[string]interface{}) (map[string]interface{}, error) {
	createdBy, err := requesterCode(c)
	if err != nil {
		log.Println("Error from requesterCode: ", err)
		return nil, err
	}

	date, timeGiven, vetId, err := validateBookingInput(data)
	if err != nil {
		log.Println("Error from validateBookingInput: ", err)
		return nil, err
	}

	if _, err := FetchVetByCode(c, vetId); err != nil {
		log.Println("Error from FetchVetByCode: ", err)
		return nil, err
	}

	if err := ClaimSlot(c, vetId, date, timeGiven); err != nil {
		log.Println("Error from ClaimSlot: ", err)
		return nil, err
	}

	appointmentId := uuid.NewString()
	petId, _ := data["petId"].(string)
	medicalHistory, _ := data["medicalHistory"].(string)
	appointment := bson.M{
		"code":           appointmentId,
		"date":           date,
		"time":           timeGiven,
		"vetId":          vetId,
		"petId":          petId,
		"pet":            subRecord(data, "pet"),
		"owner":          subRecord(data, "owner"),
		"medicalHistory": medicalHistory,
		"createdAt":      time.Now(),
		"createdBy":      createdBy,
		"updatedAt":      time.Now(),
		"updatedBy":      createdBy,
	}
	if _, err := db.CreateOne(c, util.AppointmentCollection, appointment); err != nil {
		log.Println("Error while inserting appointment, rolling back slot claim: ", err)
		if releaseErr := ReleaseSlot(c, vetId, date, timeGiven); releaseErr != nil {
			log.Println("Error while rolling back slot claim: ", releaseErr)
		}
		return nil, util.E(util.InternalError, "unable to create appointment")
	}

	if err := redis.DeleteCache(c, util.VetKey+vetId); err != nil {
		log.Println("Error while invalidating vet cache: ", err)
	}
	if err := redis.SetCache(c, util.AppointmentKey+appointmentId, appointment); err != nil {
		log.Println("Error while caching new appointment: ", err)
	}
	return appointment, nil
}

/*
* Admin and vet see everything relevant to them, users only their own bookings
 */
func FetchAllAppointments(c *gin.Context) ([]map[string]interface{}, error) {
	code, err := requesterCode(c)
	if err != nil {
		return nil, err
	}
	callerRole := c.GetString("role")

	var filter bson.M
	switch callerRole {
	case role.Admin:
		filter = bson.M{}
	case role.Vet:
		filter = bson.M{"vetId": code}
	default:
		filter = bson.M{"createdBy": code}
	}
	appointments, err := db.FindAll(c, util.AppointmentCollection, filter, nil)
	if err != nil {
		log.Println("Error from FindAll while fetching appointments: ", err)
		return nil, util.E(util.InternalError, "unable to fetch appointments")
	}
	return appointments, nil
}

func FetchMyAppointments(c *gin.Context) ([]map[string]interface{}, error) {
	code, err := requesterCode(c)
	if err != nil {
		return nil, err
	}
	appointments, err := db.FindAll(c, util.AppointmentCollection, bson.M{"createdBy": code}, nil)
	if err != nil {
		log.Println("Error from FindAll while fetching own appointments: ", err)
		return nil, util.E(util.InternalError, "unable to fetch appointments")
	}
	return appointments, nil
}

// FetchAppointmentByID is the storage-key point read.
func FetchAppointmentByID(c *gin.Context, idHex string) (map[string]interface{}, error) {
	objectId, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, util.E(util.ValidationError, "invalid appointment id")
	}
	appointment := make(map[string]interface{})
	if err := db.FindOne(c, util.AppointmentCollection, bson.M{"_id": objectId}, &appointment); err != nil {
		log.Println("Error from FindOne while fetching appointment: ", err)
		return nil, util.E(util.NotFound, util.APPOINTMENT_NOT_FOUND)
	}
	return appointment, nil
}

/*
* Partial merge of the given fields, no re-validation of slot consistency
* Identity and claim fields never change through this path
 */
func UpdateAppointmentByCode(c *gin.Context, appointmentId string, data map[string]interface{}) (map[string]interface{}, error) {
	code, err := requesterCode(c)
	if err != nil {
		return nil, err
	}
	appointment := make(map[string]interface{})
	if err := db.FindOne(c, util.AppointmentCollection, bson.M{"code": appointmentId}, &appointment); err != nil {
		log.Println("Error from FindOne while fetching appointment: ", err)
		return nil, util.E(util.NotFound, util.APPOINTMENT_NOT_FOUND)
	}
	if createdBy, _ := appointment["createdBy"].(string); createdBy != code && !role.IsStaff(c.GetString("role")) {
		return nil, util.E(util.Forbidden, util.INVALID_USER_TO_ACCESS)
	}

	for _, immutable := range []string{"_id", "code", "createdAt", "createdBy"} {
		delete(data, immutable)
	}
	data["updatedAt"] = time.Now()
	data["updatedBy"] = code

	filter := bson.M{"code": appointmentId}
	if _, err := db.UpdateOne(c, util.AppointmentCollection, filter, bson.M{"$set": data}); err != nil {
		log.Println("Error while updating appointment: ", err)
		return nil, util.E(util.InternalError, "unable to update appointment")
	}
	updated := make(map[string]interface{})
	if err := db.FindOne(c, util.AppointmentCollection, filter, &updated); err != nil {
		log.Println("Error from FindOne after updating appointment: ", err)
		return nil, util.E(util.InternalError, "unable to fetch updated appointment")
	}

	key := util.AppointmentKey + appointmentId
	if err := redis.DeleteCache(c, key); err != nil {
		log.Println("Error while deleting appointment cache: ", err)
	}
	if err := redis.SetCache(c, key, updated); err != nil {
		log.Println("Error while caching updated appointment: ", err)
	}
	return updated, nil
}

/*
* Delete by business identifier, owner or staff only
* When releaseSlot is set the claimed (vetId, date, time) goes back to the
* calendar; the integrator decides whether to pass it
 */
func DeleteAppointmentByCode(c *gin.Context, appointmentId string, releaseSlot bool) (string, error) {
	code, err := requesterCode(c)
	if err != nil {
		return "", err
	}
	filter := bson.M{"code": appointmentId}
	appointment := make(map[string]interface{})
	if err := db.FindOne(c, util.AppointmentCollection, filter, &appointment); err != nil {
		log.Println("Error from FindOne while fetching appointment: ", err)
		return "", util.E(util.NotFound, util.APPOINTMENT_NOT_FOUND)
	}
	if createdBy, _ := appointment["createdBy"].(string); createdBy != code && !role.IsStaff(c.GetString("role")) {
		return "", util.E(util.Forbidden, util.INVALID_USER_TO_ACCESS)
	}

	if _, err := db.DeleteOne(c, util.AppointmentCollection, filter); err != nil {
		log.Println("Error while deleting appointment: ", err)
		return "", util.E(util.InternalError, "unable to delete appointment")
	}

	if releaseSlot {
		vetId, _ := appointment["vetId"].(string)
		date, _ := appointment["date"].(string)
		timeGiven, _ := appointment["time"].(string)
		if err := ReleaseSlot(c, vetId, date, timeGiven); err != nil {
			log.Println("Error while releasing slot on delete: ", err)
		} else if err := redis.DeleteCache(c, util.VetKey+vetId); err != nil {
			log.Println("Error while invalidating vet cache: ", err)
		}
	}

	if err := redis.DeleteCache(c, util.AppointmentKey+appointmentId); err != nil {
		log.Println("Error while deleting appointment cache: ", err)
	}
	return "appointment " + appointmentId + " deleted successfully", nil
}
