package api

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/wanderhub/wanderhub-api/api/mocks"
	"github.com/wanderhub/wanderhub-api/schema"
)

var testOrigin = schema.Location{Latitude: 28.6139, Longitude: 77.2090}

// destinationAtKm puts a destination due north of testOrigin so the
// haversine distance is exactly km.
func destinationAtKm(name string, km float64) schema.Destination {
	offset := km / 6371 * 180 / math.Pi
	return schema.Destination{
		ID:        "id-" + name,
		Name:      name,
		Category:  schema.CategoryParks,
		Latitude:  testOrigin.Latitude + offset,
		Longitude: testOrigin.Longitude,
	}
}

func testAccount() *schema.Account {
	return &schema.Account{
		ID:           uuid.New(),
		Email:        "traveler@example.com",
		LastLocation: &testOrigin,
	}
}

func TestNearbyNotifications(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	w := mocks.NewMockWanderCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		store:      w,
		mongoStore: m,
	}

	account := testAccount()
	w.EXPECT().GetAccountByEmail(gomock.Any()).Return(account, nil).Times(1)
	w.EXPECT().GetSurvey(account.ID).Return(nil, nil).Times(1)

	// 60 km passes the coarse box but not the exact radius
	m.EXPECT().ListDestinationsNear(testOrigin, 0.5).Return([]schema.Destination{
		destinationAtKm("near", 5),
		destinationAtKm("mid", 20),
		destinationAtKm("far", 60),
	}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeAccountMiddleware())
	router.GET("/", s.nearbyNotifications)

	req := httptest.NewRequest("GET", "/", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code, "wrong status code")

	var jResp struct {
		Notifications []nearbyNotification `json:"notifications"`
	}
	err := json.Unmarshal(resp.Body.Bytes(), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")

	if assert.Len(t, jResp.Notifications, 2) {
		assert.Equal(t, "near", jResp.Notifications[0].Name)
		assert.InDelta(t, 95, jResp.Notifications[0].Score, 1e-6)
		assert.Equal(t, "mid", jResp.Notifications[1].Name)
		assert.InDelta(t, 80, jResp.Notifications[1].Score, 1e-6)
	}
}

func TestNearbyNotificationsNoStoredLocation(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	w := mocks.NewMockWanderCore(ctl)

	s := Server{store: w}

	account := testAccount()
	account.LastLocation = nil
	w.EXPECT().GetAccountByEmail(gomock.Any()).Return(account, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeAccountMiddleware())
	router.GET("/", s.nearbyNotifications)

	req := httptest.NewRequest("GET", "/", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code, "wrong status code")

	var jResp struct {
		Notifications []nearbyNotification `json:"notifications"`
	}
	err := json.Unmarshal(resp.Body.Bytes(), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Empty(t, jResp.Notifications)
}
