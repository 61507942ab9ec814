package config

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"recipe-app/internal/utils"
	"recipe-app/internal/utils/kvstore"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const connectTimeout = 10 * time.Second

func ConnectDB() (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Asia/Jakarta",
		utils.GetConfig("DB_HOST"),
		utils.GetConfig("DB_USER"),
		utils.GetConfig("DB_PASSWORD"),
		utils.GetConfig("DB_NAME"),
		utils.GetConfig("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Printf("Database connection failed: %v", err)
		return nil, err
	}
	return db, nil
}

// ConnectMongo opens the recipe document store and pings it.
func ConnectMongo(ctx context.Context) (*mongo.Client, *mongo.Database, error) {
	uri := utils.GetConfig("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	name := utils.GetConfig("MONGO_DATABASE")
	if name == "" {
		name = "recipe_app"
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI))
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, client.Database(name), nil
}

// ConnectKVStore returns a Redis-backed store, or an in-memory one when
// REDIS_ADDR is unset. The returned close func is never nil.
func ConnectKVStore(ctx context.Context, logger *slog.Logger) (kvstore.Store, func() error, error) {
	addr := utils.GetConfig("REDIS_ADDR")
	if addr == "" {
		logger.Warn("REDIS_ADDR not set, using in-memory key-value store")
		return kvstore.NewMemoryStore(), func() error { return nil }, nil
	}

	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: utils.GetConfig("REDIS_PASSWORD"),
		DB:       utils.GetConfigInt("REDIS_DB", 0),
	})

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("ping redis: %w", err)
	}
	return kvstore.NewRedisStore(conn), conn.Close, nil
}
