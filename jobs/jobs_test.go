package jobs

import (
	"context"
	"testing"

	"PawShelter360/config/db"
	"PawShelter360/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func TestGenerateHourlySlots(t *testing.T) {
	slots := GenerateHourlySlots()

	require.Len(t, slots, len(services.HourLabels()))
	assert.Equal(t, "10:00", slots[0].Time)
	assert.Equal(t, "18:00", slots[len(slots)-1].Time)
	for _, slot := range slots {
		assert.True(t, slot.IsAvailable, "seeded slots start open")
	}
}

func TestSeedDailySlots_SkipsExistingDay(t *testing.T) {
	origCount := db.CountDocuments
	origUpdate := db.UpdateOne
	t.Cleanup(func() {
		db.CountDocuments = origCount
		db.UpdateOne = origUpdate
	})

	db.CountDocuments = func(ctx context.Context, collection string, filter interface{}) (int64, error) {
		return 1, nil
	}
	db.UpdateOne = func(ctx context.Context, collection string, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
		t.Fatal("existing day entries must not be duplicated")
		return nil, nil
	}

	require.NoError(t, SeedDailySlots(context.Background(), "V-001", "2024-06-01"))
}

func TestSeedDailySlots_AppendsNewDay(t *testing.T) {
	origCount := db.CountDocuments
	origUpdate := db.UpdateOne
	t.Cleanup(func() {
		db.CountDocuments = origCount
		db.UpdateOne = origUpdate
	})

	db.CountDocuments = func(ctx context.Context, collection string, filter interface{}) (int64, error) {
		return 0, nil
	}
	pushed := false
	db.UpdateOne = func(ctx context.Context, collection string, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
		pushed = true
		return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}

	require.NoError(t, SeedDailySlots(context.Background(), "V-001", "2024-06-01"))
	assert.True(t, pushed)
}
