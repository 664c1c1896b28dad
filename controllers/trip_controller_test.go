package controllers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/purelyKai/Mosaic/utils"
	"github.com/stretchr/testify/assert"
)

func newTripTestContext(t *testing.T, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/trips", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(string(utils.UserContextKey), &utils.UserClaims{UserID: uuid.New()})

	return c, w
}

func TestCreateTripRejectsUnknownCategory(t *testing.T) {
	c, w := newTripTestContext(t,
		`{"name": "Lisbon weekend", "city": "Lisbon", "latitude": 38.72, "longitude": -9.14, "categories": ["food", "shopping"]}`)

	tc := NewTripController(nil)
	tc.CreateTrip(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "shopping")
}

func TestCreateTripRejectsMiscasedCategory(t *testing.T) {
	c, w := newTripTestContext(t,
		`{"name": "Lisbon weekend", "city": "Lisbon", "latitude": 38.72, "longitude": -9.14, "categories": ["Food"]}`)

	tc := NewTripController(nil)
	tc.CreateTrip(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Food")
}
