package migrations

import (
	"context"
	"log"
	"regexp"
	"strconv"

	"PawShelter360/config/db"
	"PawShelter360/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var petIdPattern = regexp.MustCompile(`^([DC])-(\d+)$`)

/*
* One-time backfill for deployments that predate the counter collection:
* scan existing profiles once at startup and raise each prefix counter to the
* observed maximum, so the atomic $inc path continues the sequence without
* duplicates
 */
func SeedIdentifierCounters() {
	ctx := context.Background()
	pets, err := db.FindAll(ctx, util.PetCollection, bson.M{}, nil)
	if err != nil {
		log.Println("Error while scanning pets for counter seed: ", err)
		return
	}

	max := map[string]int64{}
	for _, pet := range pets {
		petId, ok := pet["petId"].(string)
		if !ok {
			continue
		}
		m := petIdPattern.FindStringSubmatch(petId)
		if m == nil {
			continue
		}
		n, err := strconv.ParseInt(m[2], 10, 64)
		if err != nil {
			continue
		}
		if n > max[m[1]] {
			max[m[1]] = n
		}
	}

	for prefix, seq := range max {
		_, err := db.UpdateOne(ctx, util.CounterCollection,
			bson.M{"_id": prefix},
			bson.M{"$max": bson.M{"seq": seq}},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			log.Println("Error while seeding counter for prefix ", prefix, ": ", err)
			continue
		}
		log.Println("Counter seeded: ", prefix, " -> ", seq)
	}
}
