package api

import (
	"context"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/wanderhub/wanderhub-api/external/assistant"
	"github.com/wanderhub/wanderhub-api/external/places"
	"github.com/wanderhub/wanderhub-api/logmodule"
	"github.com/wanderhub/wanderhub-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store      store.WanderCore
	mongoStore store.MongoStore

	// JWT signing secret for session tokens
	jwtSecret []byte

	// External services
	placesClient    places.Places
	assistantClient assistant.Assistant

	// job pool enqueuer
	background *machinery.Server
}

// NewServer new instance of server
func NewServer(
	wanderStore store.WanderCore,
	mongoStore store.MongoStore,
	jwtSecret []byte,
	placesClient places.Places,
	assistantClient assistant.Assistant,
	background *machinery.Server) *Server {
	return &Server{
		store:           wanderStore,
		mongoStore:      mongoStore,
		jwtSecret:       jwtSecret,
		placesClient:    placesClient,
		assistantClient: assistantClient,
		background:      background,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))

	apiRoute.GET("/search", s.searchDestinations)
	apiRoute.GET("/destinations/:destinationID", s.getDestination)
	apiRoute.POST("/chat", s.destinationChat)
	apiRoute.POST("/travel-guide", s.travelGuideChat)

	// routes below require a recognized account
	apiRoute.Use(s.authMiddleware())
	apiRoute.Use(s.recognizeAccountMiddleware())

	apiRoute.GET("/notifications", s.nearbyNotifications)
	apiRoute.GET("/recommendations", s.personalRecommendations)

	accountRoute := apiRoute.Group("/account")
	{
		accountRoute.PUT("/location", s.updateLocation)
		accountRoute.POST("/survey", s.submitSurvey)

		accountRoute.GET("/favorites", s.listFavorites)
		accountRoute.POST("/favorites", s.addFavorite)
		accountRoute.DELETE("/favorites/:destinationID", s.removeFavorite)

		accountRoute.GET("/visits", s.listVisits)
		accountRoute.POST("/visits", s.addVisit)

		accountRoute.GET("/stats", s.accountStats)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
