package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"gopkg.in/natefinch/lumberjack.v2"

	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"

	"rentease-backend/cache"
	"rentease-backend/config"
	"rentease-backend/domain"
	"rentease-backend/handlers"
	"rentease-backend/routes"
	"rentease-backend/seed"
	"rentease-backend/services"
)

var (
	server      *gin.Engine
	ctx         context.Context
	cfg         *config.Config
	logger      *logrus.Logger
	mongoclient *mongo.Client

	userService     services.UserService
	propertyService services.PropertyService
	cartService     services.CartService
	bookingService  services.BookingService

	AuthRouteHandler     routes.AuthRouteHandler
	PropertyRouteHandler routes.PropertyRouteHandler
	CartRouteHandler     routes.CartRouteHandler
	BookingRouteHandler  routes.BookingRouteHandler

	requestIDMiddleware gin.HandlerFunc
)

func init() {
	ctx = context.TODO()
	cfg = config.LoadConfig()

	//logging
	logger = logrus.New()
	logger.SetLevel(logrus.DebugLevel)
	logger.SetOutput(&lumberjack.Logger{
		Filename:  cfg.LogFile,
		MaxSize:   1,
		LocalTime: true,
	})

	mongoconn := options.Client().ApplyURI(cfg.MongoURI)
	client, err := mongo.Connect(ctx, mongoconn)
	if err != nil {
		panic(err)
	}
	mongoclient = client

	if err := mongoclient.Ping(ctx, readpref.Primary()); err != nil {
		panic(err)
	}

	logger.Info("MongoDB successfully connected...")

	tracerProvider, err := NewTracerProvider(cfg.ServiceName, cfg.JaegerAddress)
	if err != nil {
		logger.Fatalf("JaegerTraceProvider failed to Initialize. Error :%s", err)
	}
	tracer := tracerProvider.Tracer(cfg.ServiceName)

	// Collections
	db := mongoclient.Database(cfg.MongoDatabase)
	userCollection := db.Collection("users")
	propertyCollection := db.Collection("properties")
	cartCollection := db.Collection("carts")
	bookingCollection := db.Collection("bookings")

	ensureIndexes(userCollection, cartCollection)

	propertyCache := cache.New(cfg.RedisHost, cfg.RedisPort, logger, tracer)
	propertyCache.Ping()

	policy := domain.NewTransitionPolicy(cfg.StrictStatusFlow)

	userService = services.NewUserServiceImpl(userCollection, tracer)
	propertyService = services.NewPropertyServiceImpl(propertyCollection, propertyCache, tracer)
	cartService = services.NewCartServiceImpl(cartCollection, propertyService, tracer)
	bookingService = services.NewBookingServiceImpl(bookingCollection, propertyService, policy, tracer)

	authMiddleware := handlers.AuthMiddleware(userService, cfg.SecretKey)
	requestIDMiddleware = handlers.RequestIDMiddleware(logger)

	authHandler := handlers.NewAuthHandler(userService, cfg.SecretKey, tracer, logger)
	propertyHandler := handlers.NewPropertyHandler(propertyService, tracer, logger)
	cartHandler := handlers.NewCartHandler(cartService, tracer, logger)
	bookingHandler := handlers.NewBookingHandler(bookingService, tracer, logger)

	AuthRouteHandler = routes.NewAuthRouteHandler(authHandler, authMiddleware)
	PropertyRouteHandler = routes.NewPropertyRouteHandler(propertyHandler)
	CartRouteHandler = routes.NewCartRouteHandler(cartHandler, authMiddleware)
	BookingRouteHandler = routes.NewBookingRouteHandler(bookingHandler, authMiddleware)

	if cfg.SeedFile != "" {
		if err := seed.ImportProperties(ctx, propertyCollection, cfg.SeedFile, logger); err != nil {
			logger.WithFields(logrus.Fields{"path": cfg.SeedFile}).Error("Error seeding properties: ", err)
		}
	}

	server = gin.Default()
}

func main() {
	defer mongoclient.Disconnect(ctx)

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(cfg.AllowedOrigins, ",")
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")

	server.Use(cors.New(corsConfig))
	server.Use(requestIDMiddleware)

	router := server.Group("/api")
	router.GET("/healthchecker", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "success", "message": cfg.ServiceName + " is up"})
	})

	AuthRouteHandler.AuthRoute(router)
	PropertyRouteHandler.PropertyRoute(router)
	CartRouteHandler.CartRoute(router)
	BookingRouteHandler.BookingRoute(router)

	err := server.Run(":" + cfg.Port)
	if err != nil {
		fmt.Println(err)
		return
	}
}

func ensureIndexes(userCollection, cartCollection *mongo.Collection) {
	_, err := userCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		logger.Error("Error creating users email index: ", err)
	}

	// one cart entry per (user, property) pair
	_, err = cartCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "items.propertyId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		logger.Error("Error creating cart index: ", err)
	}
}

func NewTracerProvider(serviceName, collectorEndpoint string) (*sdktrace.TracerProvider, error) {
	exporter, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(collectorEndpoint)))
	if err != nil {
		return nil, fmt.Errorf("unable to initialize exporter due: %w", err)
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(serviceName),
			semconv.DeploymentEnvironmentKey.String("development"),
		)),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return tp, nil
}
