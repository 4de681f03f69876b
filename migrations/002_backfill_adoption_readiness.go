package migrations

import (
	"context"
	"log"

	"PawShelter360/config/db"
	"PawShelter360/models"
	"PawShelter360/util"

	"go.mongodb.org/mongo-driver/bson"
)

/*
* Older rescue records were created before the readiness flag existed
* Default them to Not Ready so the adopter-facing filter stays conservative
 */
func BackfillAdoptionReadiness() {
	res, err := db.UpdateMany(context.Background(), util.RescueCollection,
		bson.M{"adoptionReadiness": bson.M{"$exists": false}},
		bson.M{"$set": bson.M{"adoptionReadiness": models.ReadinessNotReady}},
	)
	if err != nil {
		log.Println("Error while backfilling adoption readiness: ", err)
		return
	}
	log.Println("Adoption readiness backfilled: ", res.ModifiedCount)
}
