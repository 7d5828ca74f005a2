package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/wanderhub/wanderhub-api/api/mocks"
	"github.com/wanderhub/wanderhub-api/schema"
	"github.com/wanderhub/wanderhub-api/store"
)

func TestAddFavoriteConflict(t *testing.T) {
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

	m.EXPECT().GetDestination("d-1").Return(&schema.Destination{ID: "d-1"}, nil).Times(1)
	w.EXPECT().AddFavorite(account.ID, "d-1").Return(nil, store.ErrAlreadyFavorited).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeAccountMiddleware())
	router.POST("/", s.addFavorite)

	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"destination_id":"d-1"}`))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusConflict, resp.Code, "wrong status code")
}

func TestAddFavoriteUnknownDestination(t *testing.T) {
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

	m.EXPECT().GetDestination("nope").Return(nil, store.ErrDestinationNotFound).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeAccountMiddleware())
	router.POST("/", s.addFavorite)

	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"destination_id":"nope"}`))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code, "wrong status code")
}
