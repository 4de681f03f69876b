package services

import (
	"errors"

	"PawShelter360/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// requesterCode reads the authenticated identity set by the JWT middleware.
func requesterCode(c *gin.Context) (string, error) {
	code, ok := c.Get("code")
	if !ok {
		return "", util.E(util.Unauthorized, util.UNABLE_TO_FETCH_CODE_FROM_CONTEXT)
	}
	str, ok := code.(string)
	if !ok || str == "" {
		return "", util.E(util.Unauthorized, util.UNABLE_TO_FETCH_CODE_FROM_CONTEXT)
	}
	return str, nil
}

// decodeDocument converts a raw document map into a typed model through a
// bson round trip.
func decodeDocument(doc map[string]interface{}, dest interface{}) error {
	if doc == nil {
		return errors.New("nil document")
	}
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, dest)
}
