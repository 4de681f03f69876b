package util

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDate(t *testing.T) {
	date, err := NormalizeDate("2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", date)

	date, err = NormalizeDate("01-06-2024")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", date)

	_, err = NormalizeDate("June 1st 2024")
	require.Error(t, err)
	assert.Equal(t, ValidationError, KindOf(err))
}

func TestValidateTime(t *testing.T) {
	assert.NoError(t, ValidateTime("10:00"))
	assert.NoError(t, ValidateTime("23:59"))
	assert.Error(t, ValidateTime("25:00"))
	assert.Error(t, ValidateTime("10:61"))
	assert.Error(t, ValidateTime("10am"))
}

func TestStatusOf(t *testing.T) {
	cases := map[string]int{
		ValidationError: http.StatusBadRequest,
		NotFound:        http.StatusNotFound,
		SlotUnavailable: http.StatusConflict,
		Conflict:        http.StatusConflict,
		Unauthorized:    http.StatusUnauthorized,
		Forbidden:       http.StatusForbidden,
		InternalError:   http.StatusInternalServerError,
	}
	for kind, status := range cases {
		assert.Equal(t, status, StatusOf(E(kind, "boom")), kind)
	}
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("opaque")))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, NotFound, KindOf(E(NotFound, "missing")))
	assert.Equal(t, InternalError, KindOf(errors.New("anything else")))
}

func TestGetTrimmedString(t *testing.T) {
	data := map[string]interface{}{"name": "  Rex  "}
	val, err := GetTrimmedString(data, "name")
	require.NoError(t, err)
	assert.Equal(t, "Rex", val)
	assert.Equal(t, "Rex", data["name"], "trimmed value is written back")

	_, err = GetTrimmedString(data, "missing")
	require.Error(t, err)

	data["blank"] = "   "
	_, err = GetTrimmedString(data, "blank")
	require.Error(t, err)

	data["number"] = 42
	_, err = GetTrimmedString(data, "number")
	require.Error(t, err)
}

func TestResponses(t *testing.T) {
	ok := SuccessResponse("done")
	assert.Equal(t, true, ok["success"])
	assert.Equal(t, "done", ok["data"])

	failed := FailedResponse(E(SlotUnavailable, SLOT_UNAVAILABLE))
	assert.Equal(t, false, failed["success"])
	assert.Equal(t, SlotUnavailable, failed["kind"])
	assert.Equal(t, SLOT_UNAVAILABLE, failed["message"])
}
