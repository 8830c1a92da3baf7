package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/civictrack/civictrack-api/external/cloudinary"
	"github.com/civictrack/civictrack-api/external/geoinfo"
	"github.com/civictrack/civictrack-api/external/openai"
	"github.com/civictrack/civictrack-api/external/vision"
	"github.com/civictrack/civictrack-api/intake"
	"github.com/civictrack/civictrack-api/logmodule"
	"github.com/civictrack/civictrack-api/realtime"
	"github.com/civictrack/civictrack-api/store"
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
	store      store.CivicCore
	mongoStore store.MongoStore

	// Report intake
	intake *intake.Pipeline

	// Realtime presence and distress fanout
	registry    *realtime.Registry
	broadcaster *realtime.Broadcaster

	// AI oracle for search parsing
	oracle openai.OpenAI

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey

	// Credential verification, owned by the account system
	verifier CredentialVerifier

	// job pool enqueuer
	backgroundEnqueuer *machinery.Server

	// http client for calling external services
	httpClient *http.Client
}

// NewServer new instance of server
func NewServer(
	ormDB *gorm.DB,
	mongoClient *mongo.Client,
	taskServer *machinery.Server,
	jwtKey *rsa.PrivateKey,
	verifier CredentialVerifier) *Server {
	httpClient := &http.Client{
		Timeout: 30 * time.Second,
	}

	mongoStore := store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))

	oracle := openai.New(viper.GetString("openai.key"), viper.GetString("openai.url"), httpClient)
	labeler := vision.New(viper.GetString("vision.key"), viper.GetString("vision.url"), httpClient)
	uploader := cloudinary.New(
		viper.GetString("cloudinary.cloud"),
		viper.GetString("cloudinary.preset"),
		viper.GetString("cloudinary.url"),
		httpClient)

	var geo intake.AreaResolver
	if apiKey := viper.GetString("map.key"); apiKey != "" {
		g, err := geoinfo.New(apiKey)
		if err != nil {
			log.Error(err)
		} else {
			geo = g
		}
	}

	registry := realtime.NewRegistry()

	return &Server{
		store:              store.NewCivicStore(ormDB),
		mongoStore:         mongoStore,
		intake:             intake.NewPipeline(oracle, oracle, oracle, labeler, uploader, mongoStore, geo),
		registry:           registry,
		broadcaster:        realtime.NewBroadcaster(registry, mongoStore, oracle, oracle),
		oracle:             oracle,
		jwtPrivateKey:      jwtKey,
		verifier:           verifier,
		backgroundEnqueuer: taskServer,
		httpClient:         httpClient,
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
		AllowMethods:     []string{"GET", "POST", "PATCH"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))

	apiRoute.POST("/auth", s.requestJWT)

	// api route other than `/auth` will apply the following middleware
	apiRoute.Use(s.authMiddleware())

	reportRoute := apiRoute.Group("/reports")
	{
		reportRoute.POST("", s.createReport)
		reportRoute.GET("", s.listReports)
		reportRoute.GET("/search", s.searchReports)
		reportRoute.GET("/analytics", s.reportAnalytics)
		reportRoute.GET("/me", s.myReports)
		reportRoute.GET("/:reportID", s.getReport)
		reportRoute.POST("/:reportID/upvote", s.upvoteReport)
	}

	notificationRoute := apiRoute.Group("/notifications")
	{
		notificationRoute.GET("", s.listNotifications)
		notificationRoute.POST("/read", s.markNotificationsRead)
	}

	apiRoute.GET("/ws", s.serveSocket)

	secretRoute := r.Group("/secret")
	secretRoute.Use(logmodule.Ginrus("Secret"))
	secretRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.admin")))
	{
		secretRoute.PATCH("/reports/:reportID/status", s.updateReportStatus)
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
	if err := s.store.Ping(); shouldInterupt(err, c) {
		return
	}
	if err := s.mongoStore.Ping(); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	c.JSON(code, obj)
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
