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

/*
* Compute the follow-up date once at submission; there is no scheduler
 */
func nextDonationDate(frequency string, from time.Time) (string, error) {
	switch frequency {
	case "weekly":
		return from.AddDate(0, 0, 7).Format("2006-01-02"), nil
	case "monthly":
		return from.AddDate(0, 1, 0).Format("2006-01-02"), nil
	case "yearly":
		return from.AddDate(1, 0, 0).Format("2006-01-02"), nil
	default:
		return "", util.E(util.ValidationError, "frequency must be weekly, monthly or yearly")
	}
}

/*
* Record the donation; payment is stored state only, never verified against a
* processor
 */
func CreateDonation(c *gin.Context, data map[string]interface{}) (map[string]interface{}, error) {
	donorCode, err := requesterCode(c)
	if err != nil {
		return nil, err
	}
	amount, ok := data["amount"].(float64)
	if !ok || amount <= 0 {
		return nil, util.E(util.ValidationError, "amount must be a positive number")
	}
	donorName, _ := data["donorName"].(string)
	message, _ := data["message"].(string)
	isRecurring, _ := data["isRecurring"].(bool)
	frequency, _ := data["frequency"].(string)

	donation := bson.M{
		"code":        uuid.NewString(),
		"donorCode":   donorCode,
		"donorName":   donorName,
		"amount":      amount,
		"message":     message,
		"isRecurring": isRecurring,
		"createdAt":   time.Now(),
	}
	if isRecurring {
		next, err := nextDonationDate(frequency, time.Now())
		if err != nil {
			return nil, err
		}
		donation["frequency"] = frequency
		donation["nextDonationDate"] = next
	}

	if _, err := db.CreateOne(c, util.DonationCollection, donation); err != nil {
		log.Println("Error while recording donation: ", err)
		return nil, util.E(util.InternalError, "unable to record donation")
	}
	return donation, nil
}

func FetchMyDonations(c *gin.Context) ([]map[string]interface{}, error) {
	donorCode, err := requesterCode(c)
	if err != nil {
		return nil, err
	}
	donations, err := db.FindAll(c, util.DonationCollection, bson.M{"donorCode": donorCode}, nil)
	if err != nil {
		log.Println("Error from FindAll while fetching donations: ", err)
		return nil, util.E(util.InternalError, "unable to fetch donations")
	}
	return donations, nil
}

func FetchAllDonations(c *gin.Context) ([]map[string]interface{}, error) {
	donations, err := db.FindAll(c, util.DonationCollection, bson.M{}, nil)
	if err != nil {
		log.Println("Error from FindAll while fetching donations: ", err)
		return nil, util.E(util.InternalError, "unable to fetch donations")
	}
	return donations, nil
}
