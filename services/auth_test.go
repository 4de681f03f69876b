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
)

func TestRegisterAndLogin(t *testing.T) {
	resetDBStubs(t)
	stubCounter(t)

	users := map[string]map[string]interface{}{}
	db.CountDocuments = func(ctx context.Context, collection string, filter interface{}) (int64, error) {
		email := filter.(bson.M)["email"].(string)
		if _, ok := users[email]; ok {
			return 1, nil
		}
		return 0, nil
	}
	db.CreateOne = func(ctx context.Context, collection string, document interface{}) (*mongo.InsertOneResult, error) {
		doc := map[string]interface{}(document.(bson.M))
		users[doc["email"].(string)] = doc
		return &mongo.InsertOneResult{}, nil
	}
	db.FindOne = func(ctx context.Context, collection string, filter interface{}, result interface{}) error {
		doc, ok := users[filter.(bson.M)["email"].(string)]
		if !ok {
			return mongo.ErrNoDocuments
		}
		*(result.(*map[string]interface{})) = doc
		return nil
	}

	created, err := Register(testCtx(t, "", ""), map[string]interface{}{
		"name":     "Jordan",
		"email":    "jordan@example.com",
		"password": "hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, "U-001", created["code"])
	assert.Equal(t, role.User, created["role"], "role defaults to adopter")
	assert.NotEqual(t, "hunter22", users["jordan@example.com"]["password"], "password must be hashed")

	session, err := Login(testCtx(t, "", ""), map[string]interface{}{
		"email":    "jordan@example.com",
		"password": "hunter22",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, session["token"])
	assert.Equal(t, "U-001", session["code"])

	_, err = Login(testCtx(t, "", ""), map[string]interface{}{
		"email":    "jordan@example.com",
		"password": "wrong",
	})
	require.Error(t, err)
	assert.Equal(t, util.Unauthorized, util.KindOf(err))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	resetDBStubs(t)

	db.CountDocuments = func(ctx context.Context, collection string, filter interface{}) (int64, error) {
		return 1, nil
	}

	_, err := Register(testCtx(t, "", ""), map[string]interface{}{
		"name":     "Jordan",
		"email":    "jordan@example.com",
		"password": "hunter22",
	})
	require.Error(t, err)
	assert.Equal(t, util.Conflict, util.KindOf(err))
}

func TestRegister_RejectsUnknownRole(t *testing.T) {
	resetDBStubs(t)
	stubCounter(t)

	db.CountDocuments = func(ctx context.Context, collection string, filter interface{}) (int64, error) {
		return 0, nil
	}
	var stored bson.M
	db.CreateOne = func(ctx context.Context, collection string, document interface{}) (*mongo.InsertOneResult, error) {
		stored = document.(bson.M)
		return &mongo.InsertOneResult{}, nil
	}

	_, err := Register(testCtx(t, "", ""), map[string]interface{}{
		"name":     "Mallory",
		"email":    "mallory@example.com",
		"password": "hunter22",
		"role":     "superuser",
	})
	require.NoError(t, err)
	assert.Equal(t, role.User, stored["role"], "unknown roles fall back to the adopter role")
}

func TestLogin_MissingFields(t *testing.T) {
	resetDBStubs(t)

	_, err := Login(testCtx(t, "", ""), map[string]interface{}{"email": "jordan@example.com"})
	require.Error(t, err)
	assert.Equal(t, util.ValidationError, util.KindOf(err))
}
