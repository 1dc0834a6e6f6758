package config

import (
	"os"

	"github.com/joho/godotenv"
)

// RelayConfig holds the minimal configuration the outbox relay needs.
type RelayConfig struct {
	DatabaseURL   string
	RabbitMQURL   string
	PassQueueName string
}

func LoadRelayConfig() *RelayConfig {
	_ = godotenv.Load()

	dbURL := os.Getenv("DB_CONNECTION_STRING")
	if dbURL == "" {
		panic("DB_CONNECTION_STRING environment variable is required")
	}

	rabbitURL := os.Getenv("RABBITMQ_URL")
	if rabbitURL == "" {
		panic("RABBITMQ_URL environment variable is required")
	}

	queueName := os.Getenv("PASS_QUEUE_NAME")
	if queueName == "" {
		queueName = "pass-events"
	}

	return &RelayConfig{
		DatabaseURL:   dbURL,
		RabbitMQURL:   rabbitURL,
		PassQueueName: queueName,
	}
}
