package cache

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"rentease-backend/domain"
)

const (
	cacheProperty = "property:%s"
	cacheAll      = "properties"

	propertyTTL = 300 * time.Second
	listTTL     = 30 * time.Second
)

type PropertyCache struct {
	cli     *redis.Client
	logger  *logrus.Logger
	Tracer  trace.Tracer
	breaker *gobreaker.CircuitBreaker
}

// Construct Redis client
func New(redisHost, redisPort string, logger *logrus.Logger, tracer trace.Tracer) *PropertyCache {
	redisAddress := fmt.Sprintf("%s:%s", redisHost, redisPort)

	client := redis.NewClient(&redis.Options{
		Addr: redisAddress,
	})

	circuitBreaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name: "PropertyCache",
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Printf("Circuit Breaker state changed from %s to %s\n", from, to)
		},
	})

	return &PropertyCache{
		cli:     client,
		logger:  logger,
		Tracer:  tracer,
		breaker: circuitBreaker,
	}
}

func (pc *PropertyCache) Ping() {
	val, _ := pc.cli.Ping().Result()
	pc.logger.Println(val)
}

func (pc *PropertyCache) PostProperty(property *domain.Property, ctx context.Context) error {
	_, span := pc.Tracer.Start(ctx, "PropertyCache.PostProperty")
	defer span.End()

	key := fmt.Sprintf(cacheProperty, property.ID.Hex())

	var buf bytes.Buffer
	if err := property.ToJSON(&buf); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	_, err := pc.breaker.Execute(func() (interface{}, error) {
		return nil, pc.cli.Set(key, buf.Bytes(), propertyTTL).Err()
	})
	if err != nil {
		span.SetStatus(codes.Error, "Error setting property in Redis "+err.Error())
		return err
	}
	return nil
}

func (pc *PropertyCache) GetProperty(id string, ctx context.Context) (*domain.Property, error) {
	_, span := pc.Tracer.Start(ctx, "PropertyCache.GetProperty")
	defer span.End()

	key := fmt.Sprintf(cacheProperty, id)
	data, err := pc.breaker.Execute(func() (interface{}, error) {
		return pc.cli.Get(key).Bytes()
	})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	var property domain.Property
	if err := property.FromJSON(bytes.NewReader(data.([]byte))); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	pc.logger.Println("Property cache hit")
	return &property, nil
}

func (pc *PropertyCache) PostAll(properties domain.Properties, ctx context.Context) error {
	_, span := pc.Tracer.Start(ctx, "PropertyCache.PostAll")
	defer span.End()

	var buf bytes.Buffer
	if err := properties.ToJSON(&buf); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	_, err := pc.breaker.Execute(func() (interface{}, error) {
		return nil, pc.cli.Set(cacheAll, buf.Bytes(), listTTL).Err()
	})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func (pc *PropertyCache) GetAll(ctx context.Context) (domain.Properties, error) {
	_, span := pc.Tracer.Start(ctx, "PropertyCache.GetAll")
	defer span.End()

	data, err := pc.breaker.Execute(func() (interface{}, error) {
		return pc.cli.Get(cacheAll).Bytes()
	})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	var properties domain.Properties
	if err := properties.FromJSON(bytes.NewReader(data.([]byte))); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	pc.logger.Println("Property list cache hit")
	return properties, nil
}
