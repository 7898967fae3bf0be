package app

import (
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"hrms-portal/internal/messaging/kafka/producer"
	"hrms-portal/internal/shared/connection"
	"hrms-portal/internal/shared/document"
)

func BuildApp(router *gin.Engine) error {
	// 1. Setup Infrastructure
	// Koneksi store wajib ada; gagal setelah retry berarti fatal.
	db, err := connection.ConnectMongoWithRetry(
		os.Getenv("DATABASE_URL"),
		os.Getenv("DATABASE_NAME"),
		5,
	)
	if err != nil {
		return err
	}
	store := document.NewMongoStore(db)

	// Redis dan Kafka bersifat opsional: tanpa keduanya service tetap
	// jalan, hanya cache dan event yang mati.
	var redisClient *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		redisClient, err = connection.ConnectRedisWithRetry(addr, 5)
		if err != nil {
			zap.L().Warn("redis unavailable, department cache disabled", zap.Error(err))
			redisClient = nil
		}
	}

	var kafkaWriter *kafkago.Writer
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		kafkaWriter = producer.NewWriter(strings.Split(brokers, ","))
	}

	// 2. Register Modules & Routes
	registerModules(router, store, redisClient, kafkaWriter)

	return nil
}
