package services

import (
	"context"
	"testing"

	"PawShelter360/config/db"
	"PawShelter360/role"
	"PawShelter360/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func slotFlagFromUpdate(update interface{}) (bool, bool) {
	set, ok := update.(bson.M)["$set"].(bson.M)
	if !ok {
		return false, false
	}
	flag, ok := set["availability.$[d].slots.$[s].isAvailable"].(bool)
	return flag, ok
}

func stubVetLookup(t *testing.T, vetId string) {
	t.Helper()
	db.FindOne = func(ctx context.Context, collection string, filter interface{}, result interface{}) error {
		if collection == util.VetCollection {
			*(result.(*map[string]interface{})) = map[string]interface{}{"code": vetId}
			return nil
		}
		return mongo.ErrNoDocuments
	}
}

func bookingPayload() map[string]interface{} {
	return map[string]interface{}{
		"date":  "2024-06-01",
		"time":  "10:00",
		"vetId": "V-001",
		"petId": "RX42",
		"pet": map[string]interface{}{
			"name":    "Rex",
			"species": "Dog",
		},
		"owner": map[string]interface{}{
			"name":  "Jordan",
			"email": "jordan@example.com",
		},
		"medicalHistory": "none",
	}
}

func TestCreateAppointment_ClaimsSlotThenPersists(t *testing.T) {
	resetDBStubs(t)
	stubVetLookup(t, "V-001")

	var claimed bool
	db.UpdateOne = func(ctx context.Context, collection string, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
		flag, ok := slotFlagFromUpdate(update)
		require.True(t, ok)
		require.False(t, flag, "booking must flip the slot to unavailable")
		require.False(t, claimed, "slot must be claimed exactly once")
		claimed = true
		return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}
	var inserted map[string]interface{}
	db.CreateOne = func(ctx context.Context, collection string, document interface{}) (*mongo.InsertOneResult, error) {
		require.True(t, claimed, "appointment must not be written before the slot claim")
		require.Equal(t, util.AppointmentCollection, collection)
		inserted = map[string]interface{}(document.(bson.M))
		return &mongo.InsertOneResult{}, nil
	}

	c := testCtx(t, "U-007", role.User)
	appointment, err := CreateAppointment(c, bookingPayload())
	require.NoError(t, err)

	assert.NotEmpty(t, appointment["code"])
	assert.Equal(t, "2024-06-01", inserted["date"])
	assert.Equal(t, "10:00", inserted["time"])
	assert.Equal(t, "V-001", inserted["vetId"])
	assert.Equal(t, "U-007", inserted["createdBy"])
}

func TestCreateAppointment_SlotUnavailable(t *testing.T) {
	resetDBStubs(t)
	stubVetLookup(t, "V-001")

	db.UpdateOne = func(ctx context.Context, collection string, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
		return &mongo.UpdateResult{MatchedCount: 0, ModifiedCount: 0}, nil
	}
	db.CreateOne = func(ctx context.Context, collection string, document interface{}) (*mongo.InsertOneResult, error) {
		t.Fatal("no appointment may be written when the claim fails")
		return nil, nil
	}

	c := testCtx(t, "U-007", role.User)
	_, err := CreateAppointment(c, bookingPayload())
	require.Error(t, err)
	assert.Equal(t, util.SlotUnavailable, util.KindOf(err))
}

func TestCreateAppointment_RollsBackClaimOnInsertFailure(t *testing.T) {
	resetDBStubs(t)
	stubVetLookup(t, "V-001")

	var released bool
	db.UpdateOne = func(ctx context.Context, collection string, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
		flag, ok := slotFlagFromUpdate(update)
		require.True(t, ok)
		if flag {
			released = true
		}
		return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}
	db.CreateOne = func(ctx context.Context, collection string, document interface{}) (*mongo.InsertOneResult, error) {
		return nil, assert.AnError
	}

	c := testCtx(t, "U-007", role.User)
	_, err := CreateAppointment(c, bookingPayload())
	require.Error(t, err)
	assert.Equal(t, util.InternalError, util.KindOf(err))
	assert.True(t, released, "failed booking must release the claimed slot")
}

// The V1 / 2024-06-01 / 10:00 double-booking scenario: request A claims the
// slot, request B arrives after A committed and must fail.
func TestCreateAppointment_SecondBookingFails(t *testing.T) {
	resetDBStubs(t)
	stubVetLookup(t, "V-001")

	slotAvailable := true
	db.UpdateOne = func(ctx context.Context, collection string, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
		if slotAvailable {
			slotAvailable = false
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
		return &mongo.UpdateResult{}, nil
	}
	db.CreateOne = func(ctx context.Context, collection string, document interface{}) (*mongo.InsertOneResult, error) {
		return &mongo.InsertOneResult{}, nil
	}

	first, err := CreateAppointment(testCtx(t, "U-001", role.User), bookingPayload())
	require.NoError(t, err)
	require.NotEmpty(t, first["code"])

	_, err = CreateAppointment(testCtx(t, "U-002", role.User), bookingPayload())
	require.Error(t, err)
	assert.Equal(t, util.SlotUnavailable, util.KindOf(err))
}

func TestCreateAppointment_Validation(t *testing.T) {
	resetDBStubs(t)

	cases := []struct {
		name    string
		mutate  func(map[string]interface{})
		message string
	}{
		{"bad time", func(d map[string]interface{}) { d["time"] = "25:99" }, util.INVALID_TIME_FORMAT},
		{"bad date", func(d map[string]interface{}) { d["date"] = "June 1st" }, util.INVALID_DATE_FORMAT},
		{"missing vet", func(d map[string]interface{}) { delete(d, "vetId") }, "vetId is required"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data := bookingPayload()
			tc.mutate(data)
			_, err := CreateAppointment(testCtx(t, "U-007", role.User), data)
			require.Error(t, err)
			assert.Equal(t, util.ValidationError, util.KindOf(err))
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}

func TestCreateAppointment_RequiresIdentity(t *testing.T) {
	resetDBStubs(t)
	_, err := CreateAppointment(testCtx(t, "", ""), bookingPayload())
	require.Error(t, err)
	assert.Equal(t, util.Unauthorized, util.KindOf(err))
}

func TestUpdateAppointment_StripsImmutableFields(t *testing.T) {
	resetDBStubs(t)

	stored := map[string]interface{}{"code": "abc", "createdBy": "U-007", "vetId": "V-001"}
	var applied bson.M
	db.FindOne = func(ctx context.Context, collection string, filter interface{}, result interface{}) error {
		*(result.(*map[string]interface{})) = stored
		return nil
	}
	db.UpdateOne = func(ctx context.Context, collection string, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
		applied = bson.M(update.(bson.M)["$set"].(map[string]interface{}))
		return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}

	c := testCtx(t, "U-007", role.User)
	_, err := UpdateAppointmentByCode(c, "abc", map[string]interface{}{
		"code":           "hacked",
		"createdBy":      "someone-else",
		"medicalHistory": "updated notes",
	})
	require.NoError(t, err)
	assert.NotContains(t, applied, "code")
	assert.NotContains(t, applied, "createdBy")
	assert.Equal(t, "updated notes", applied["medicalHistory"])
}

func TestDeleteAppointment_OwnerOnly(t *testing.T) {
	resetDBStubs(t)

	db.FindOne = func(ctx context.Context, collection string, filter interface{}, result interface{}) error {
		*(result.(*map[string]interface{})) = map[string]interface{}{"code": "abc", "createdBy": "U-007"}
		return nil
	}

	_, err := DeleteAppointmentByCode(testCtx(t, "U-999", role.User), "abc", false)
	require.Error(t, err)
	assert.Equal(t, util.Forbidden, util.KindOf(err))
}

func TestDeleteAppointment_ReleasesSlotWhenRequested(t *testing.T) {
	resetDBStubs(t)

	db.FindOne = func(ctx context.Context, collection string, filter interface{}, result interface{}) error {
		*(result.(*map[string]interface{})) = map[string]interface{}{
			"code": "abc", "createdBy": "U-007",
			"vetId": "V-001", "date": "2024-06-01", "time": "10:00",
		}
		return nil
	}
	db.DeleteOne = func(ctx context.Context, collection string, filter interface{}) (*mongo.DeleteResult, error) {
		return &mongo.DeleteResult{DeletedCount: 1}, nil
	}
	var released bool
	db.UpdateOne = func(ctx context.Context, collection string, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
		flag, ok := slotFlagFromUpdate(update)
		require.True(t, ok)
		require.True(t, flag)
		released = true
		return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}

	_, err := DeleteAppointmentByCode(testCtx(t, "U-007", role.User), "abc", true)
	require.NoError(t, err)
	assert.True(t, released)
}

func TestDeleteAppointment_KeepsSlotByDefault(t *testing.T) {
	resetDBStubs(t)

	db.FindOne = func(ctx context.Context, collection string, filter interface{}, result interface{}) error {
		*(result.(*map[string]interface{})) = map[string]interface{}{"code": "abc", "createdBy": "U-007"}
		return nil
	}
	db.DeleteOne = func(ctx context.Context, collection string, filter interface{}) (*mongo.DeleteResult, error) {
		return &mongo.DeleteResult{DeletedCount: 1}, nil
	}
	db.UpdateOne = func(ctx context.Context, collection string, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
		t.Fatal("delete without releaseSlot must not touch the calendar")
		return nil, nil
	}

	_, err := DeleteAppointmentByCode(testCtx(t, "U-007", role.User), "abc", false)
	require.NoError(t, err)
}
