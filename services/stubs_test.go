package services

import (
	"net/http/httptest"
	"testing"

	"PawShelter360/config/db"

	"github.com/gin-gonic/gin"
)

// resetDBStubs snapshots the db helper vars and restores them when the test
// finishes, so stubs never leak between tests.
func resetDBStubs(t *testing.T) {
	t.Helper()
	origFindOne := db.FindOne
	origFindAll := db.FindAll
	origCreateOne := db.CreateOne
	origUpdateOne := db.UpdateOne
	origUpdateMany := db.UpdateMany
	origDeleteOne := db.DeleteOne
	origFindOneAndUpdate := db.FindOneAndUpdate
	origCountDocuments := db.CountDocuments
	t.Cleanup(func() {
		db.FindOne = origFindOne
		db.FindAll = origFindAll
		db.CreateOne = origCreateOne
		db.UpdateOne = origUpdateOne
		db.UpdateMany = origUpdateMany
		db.DeleteOne = origDeleteOne
		db.FindOneAndUpdate = origFindOneAndUpdate
		db.CountDocuments = origCountDocuments
	})
}

func testCtx(t *testing.T, code string, callerRole string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/", nil)
	if code != "" {
		c.Set("code", code)
	}
	if callerRole != "" {
		c.Set("role", callerRole)
	}
	return c
}
