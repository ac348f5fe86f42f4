package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string
	// MongoDB Configuration (document store holding the catalog)
	MongoURI      string
	MongoDatabase string
	// Redis Configuration (optional - for list response cache)
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	CacheTTL      int  // Cache TTL in seconds
	UseCache      bool // Whether to use cache (Redis) or not
	// Kafka Configuration (optional - for product created events)
	KafkaBrokers       []string
	KafkaTopicProducts string
	KafkaAcks          string
	KafkaRetries       int
	UseKafka           bool
}

// Load reads configuration from the environment, consulting an optional .env
// file first. PORT and MONGODB_URI have no defaults: the service refuses to
// start without them.
func Load() (*Config, error) {
	// .env file is optional, continue with environment variables
	godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		return nil, fmt.Errorf("missing required env variable: PORT")
	}

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		return nil, fmt.Errorf("missing required env variable: MONGODB_URI")
	}

	// Parse Kafka brokers (comma-separated)
	kafkaBrokers := strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ",")
	for i, broker := range kafkaBrokers {
		kafkaBrokers[i] = strings.TrimSpace(broker)
	}

	return &Config{
		Port:          port,
		Environment:   getEnv("ENVIRONMENT", "development"),
		MongoURI:      mongoURI,
		MongoDatabase: getEnv("MONGODB_DATABASE", "catalog"),
		// Redis Configuration (optional)
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),
		CacheTTL:      getEnvAsInt("CACHE_TTL", 300), // 5 minutes default
		UseCache:      getEnvAsBool("USE_CACHE", false),
		// Kafka Configuration (optional)
		KafkaBrokers:       kafkaBrokers,
		KafkaTopicProducts: getEnv("KAFKA_TOPIC_PRODUCTS", "catalog.products"),
		KafkaAcks:          getEnv("KAFKA_ACKS", "all"),
		KafkaRetries:       getEnvAsInt("KAFKA_RETRIES", 3),
		UseKafka:           getEnvAsBool("USE_KAFKA", false),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return result
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return strings.ToLower(value) == "true" || value == "1"
}
