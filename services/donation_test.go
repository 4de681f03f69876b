package services

import (
	"context"
	"testing"
	"time"

	"PawShelter360/config/db"
	"PawShelter360/role"
	"PawShelter360/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestNextDonationDate(t *testing.T) {
	from := time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC)

	next, err := nextDonationDate("weekly", from)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-07", next)

	next, err = nextDonationDate("monthly", from)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-02", next) // AddDate normalizes Feb 31

	next, err = nextDonationDate("yearly", from)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-31", next)

	_, err = nextDonationDate("daily", from)
	require.Error(t, err)
	assert.Equal(t, util.ValidationError, util.KindOf(err))
}

func TestCreateDonation_Recurring(t *testing.T) {
	resetDBStubs(t)

	var stored bson.M
	db.CreateOne = func(ctx context.Context, collection string, document interface{}) (*mongo.InsertOneResult, error) {
		stored = document.(bson.M)
		return &mongo.InsertOneResult{}, nil
	}

	donation, err := CreateDonation(testCtx(t, "U-007", role.User), map[string]interface{}{
		"amount":      50.0,
		"isRecurring": true,
		"frequency":   "monthly",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, donation["code"])
	assert.Equal(t, "U-007", stored["donorCode"])
	assert.NotEmpty(t, stored["nextDonationDate"], "recurring donations compute the next date at submission")
}

func TestCreateDonation_OneOff(t *testing.T) {
	resetDBStubs(t)

	var stored bson.M
	db.CreateOne = func(ctx context.Context, collection string, document interface{}) (*mongo.InsertOneResult, error) {
		stored = document.(bson.M)
		return &mongo.InsertOneResult{}, nil
	}

	_, err := CreateDonation(testCtx(t, "U-007", role.User), map[string]interface{}{
		"amount": 25.0,
	})
	require.NoError(t, err)
	assert.NotContains(t, stored, "nextDonationDate")
}

func TestCreateDonation_Validation(t *testing.T) {
	resetDBStubs(t)

	_, err := CreateDonation(testCtx(t, "U-007", role.User), map[string]interface{}{"amount": -5.0})
	require.Error(t, err)
	assert.Equal(t, util.ValidationError, util.KindOf(err))

	_, err = CreateDonation(testCtx(t, "U-007", role.User), map[string]interface{}{
		"amount":      10.0,
		"isRecurring": true,
		"frequency":   "hourly",
	})
	require.Error(t, err)
	assert.Equal(t, util.ValidationError, util.KindOf(err))
}
