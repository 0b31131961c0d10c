package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/httprate"
	log "github.com/sirupsen/logrus"

	config "github.com/fairwaylabs/golf-services/configs"
	mongodb "github.com/fairwaylabs/golf-services/internal/db"
	nats "github.com/fairwaylabs/golf-services/internal/nats"
	"github.com/fairwaylabs/golf-services/internal/scoresvc/broker"
	"github.com/fairwaylabs/golf-services/internal/scoresvc/db"
	"github.com/fairwaylabs/golf-services/internal/scoresvc/eventlog"
	handlers "github.com/fairwaylabs/golf-services/internal/scoresvc/handlers"
	"github.com/fairwaylabs/golf-services/internal/scoresvc/service"
	"github.com/fairwaylabs/golf-services/internal/scoresvc/store"
)

const SERVICE_NAME = "score"

var instanceId string

func init() {
	instanceId = "001"
	config.Logging(SERVICE_NAME + "_service_" + instanceId)
	config.LoadEnv(SERVICE_NAME)
}

func main() {

	// pg connection
	dbpool, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer db.ClosePool()
	log.Printf("pg connection established successfully")

	if err := db.RunMigrations(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// mongo holds the replayable score event archive
	mongo, cancelMongo, err := mongodb.ConnectToDB()
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer cancelMongo()
	eventLog := eventlog.NewStore(mongo)
	mongodb.CreateTTLIndexForCollection(mongo, eventLog.CollectionName())

	clubStore := store.NewClubStore(dbpool)
	clubService := service.NewClubService(clubStore)

	courseStore := store.NewCourseStore(dbpool)
	teeStore := store.NewTeeStore(dbpool)
	courseService := service.NewCourseService(courseStore, teeStore)

	roundStore := store.NewRoundStore(dbpool)
	scoreStore := store.NewScoreStore(dbpool)
	roundService := service.NewRoundService(roundStore, scoreStore, courseService)

	profileStore := store.NewProfileStore(dbpool)
	profileService := service.NewProfileService(profileStore)

	guestStore := store.NewGuestStore(dbpool)
	guestService := service.NewGuestService(guestStore)

	friendshipStore := store.NewFriendshipStore(dbpool)
	friendService := service.NewFriendService(friendshipStore, profileStore)

	dashboardService := service.NewDashboardService(roundStore, scoreStore,
		courseStore, clubStore, profileStore, guestStore, friendshipStore)

	// Connect to NATS
	n, err := nats.Connect()
	if err != nil {
		log.Errorf("Error: unable to connect to NATS server %v", err)
		os.Exit(0)
	}

	defer n.Conn.Close()
	log.Printf("NATS connection established successfully %s", n.Url)

	// init peer message broker
	b := broker.NewBroker(n.Conn, profileService, friendService,
		roundService, courseService, dashboardService, eventLog)

	// subscribe to socket service
	sub, err := b.SubscribSocketService("socket.service")
	if err != nil {
		log.Errorf("Error: unable to subscribe to queue %v", err)
		os.Exit(0)
	}

	// Setup router
	r := chi.NewRouter()
	c := config.CORS()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(config.CustomLoggerMiddleware())
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(c.Handler)

	// to protect the service api from any over requests
	rateLimitStr := os.Getenv("RATE_LIMIT")
	rateLimit, err := strconv.Atoi(rateLimitStr)
	if err != nil {
		log.Fatalf("Invalid RATE_LIMIT value: %v", err)
	}
	r.Use(httprate.LimitByIP(rateLimit, 1*time.Minute))

	// Init handlers and routes
	h := handlers.NewHandler(clubService, courseService, roundService,
		dashboardService, friendService, guestService, profileService, b)
	h.InitAuth()
	h.SetRoutes(r)

	// Create server with timeout settings
	server := &http.Server{
		Addr:         ":" + os.Getenv("SCORE_SERVICE_PORT"),
		Handler:      r,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()
	log.Infof("%s service running at port %s", SERVICE_NAME, server.Addr)

	// Wait for interrupt signal to gracefully shutdown the server
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	sub.Unsubscribe()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("%s service shutdown Failed:%+v", SERVICE_NAME, err)
	}
	log.Infof("%s service gracefully stopped", SERVICE_NAME)
}
