package services

import (
	"context"
	"fmt"
	"log"

	"PawShelter360/config/db"
	"PawShelter360/models"
	"PawShelter360/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
* Atomic fetch-and-increment of the per-prefix sequence
* Upserts the counter document on first use so the sequence starts at 1
 */
func NextSequence(ctx context.Context, prefix string) (int64, error) {
	filter := bson.M{"_id": prefix}
	update := bson.M{"$inc": bson.M{"seq": 1}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var counter models.Counter
	err := db.FindOneAndUpdate(ctx, util.CounterCollection, filter, update, opts, &counter)
	if err != nil {
		log.Println("Error while incrementing counter for prefix ", prefix, ": ", err)
		return 0, util.E(util.InternalError, "unable to allocate identifier")
	}
	return counter.Seq, nil
}

// FormatCode mints the public identifier from a counter value, e.g. D-001.
func FormatCode(prefix string, seq int64) string {
	return fmt.Sprintf("%s-%03d", prefix, seq)
}
