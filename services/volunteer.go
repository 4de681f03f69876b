package services

import (
	"log"
	"time"

	"PawShelter360/config/db"
	"PawShelter360/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

func ApplyVolunteer(c *gin.Context, data map[string]interface{}) (map[string]interface{}, error) {
	userCode, err := requesterCode(c)
	if err != nil {
		return nil, err
	}
	for _, f := range []string{"name", "email", "availability"} {
		if _, err := util.GetTrimmedString(data, f); err != nil {
			return nil, err
		}
	}
	count, err := db.CountDocuments(c, util.VolunteerCollection, bson.M{"userCode": userCode})
	if err != nil {
		log.Println("Error while checking volunteer application: ", err)
		return nil, util.E(util.InternalError, "unable to check volunteer application")
	}
	if count > 0 {
		return nil, util.E(util.Conflict, "a volunteer application already exists for this user")
	}

	phoneNo, _ := data["phoneNo"].(string)
	motivation, _ := data["motivation"].(string)
	volunteer := bson.M{
		"code":         uuid.NewString(),
		"userCode":     userCode,
		"name":         data["name"],
		"email":        data["email"],
		"phoneNo":      phoneNo,
		"availability": data["availability"],
		"motivation":   motivation,
		"status":       "Pending",
		"createdAt":    time.Now(),
		"updatedAt":    time.Now(),
		"updatedBy":    userCode,
	}
	if _, err := db.CreateOne(c, util.VolunteerCollection, volunteer); err != nil {
		log.Println("Error while creating volunteer application: ", err)
		return nil, util.E(util.InternalError, "unable to create volunteer application")
	}
	return volunteer, nil
}

func FetchAllVolunteers(c *gin.Context) ([]map[string]interface{}, error) {
	volunteers, err := db.FindAll(c, util.VolunteerCollection, bson.M{}, nil)
	if err != nil {
		log.Println("Error from FindAll while fetching volunteers: ", err)
		return nil, util.E(util.InternalError, "unable to fetch volunteers")
	}
	return volunteers, nil
}

func UpdateVolunteerStatus(c *gin.Context, volunteerId string, data map[string]interface{}) error {
	updatedBy, err := requesterCode(c)
	if err != nil {
		return err
	}
	status, err := util.GetTrimmedString(data, "status")
	if err != nil {
		return err
	}
	filter := bson.M{"code": volunteerId}
	update := bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": time.Now(),
		"updatedBy": updatedBy,
	}}
	res, err := db.UpdateOne(c, util.VolunteerCollection, filter, update)
	if err != nil {
		log.Println("Error while updating volunteer: ", err)
		return util.E(util.InternalError, "unable to update volunteer")
	}
	if res.MatchedCount == 0 {
		return util.E(util.NotFound, "volunteer application not found")
	}
	return nil
}
