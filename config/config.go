package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	MongoURI         string
	MongoDatabase    string
	RedisHost        string
	RedisPort        string
	SecretKey        string
	AllowedOrigins   string
	SeedFile         string
	StrictStatusFlow bool
	ServiceName      string
	JaegerAddress    string
	LogFile          string
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		fmt.Println("no .env file found, relying on environment")
	}

	strictStatusFlow, _ := strconv.ParseBool(os.Getenv("STRICT_STATUS_FLOW"))

	return &Config{
		Port:             getEnv("PORT", "8080"),
		MongoURI:         getEnv("MONGO_DB_URI", "mongodb://localhost:27017"),
		MongoDatabase:    getEnv("MONGO_DB_NAME", "RentEase"),
		RedisHost:        getEnv("REDIS_HOST", "localhost"),
		RedisPort:        getEnv("REDIS_PORT", "6379"),
		SecretKey:        os.Getenv("SECRET_KEY"),
		AllowedOrigins:   getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),
		SeedFile:         os.Getenv("SEED_FILE"),
		StrictStatusFlow: strictStatusFlow,
		ServiceName:      "rentease-backend",
		JaegerAddress:    os.Getenv("JAEGER_ADDRESS"),
		LogFile:          getEnv("LOG_FILE", "logs/logfile.log"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
