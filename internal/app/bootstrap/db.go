// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/coursehub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB establishes the MongoDB connection and verifies it with a ping.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetMaxPoolSize(appCfg.MongoMaxPoolSize).
		SetMinPoolSize(appCfg.MongoMinPoolSize)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		logger.Error("mongo connect failed", zap.Error(err))
		return DBDeps{}, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeouts.Ping())
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		logger.Error("mongo ping failed", zap.Error(err))
		return DBDeps{}, err
	}

	logger.Info("connected to MongoDB", zap.String("database", appCfg.MongoDatabase))
	return DBDeps{
		CourseHubMongoClient:   client,
		CourseHubMongoDatabase: client.Database(appCfg.MongoDatabase),
	}, nil
}

// EnsureSchema creates the indexes the stores rely on. All creations are
// idempotent so this is safe to run on every startup.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	db := deps.CourseHubMongoDatabase

	indexes := map[string][]mongo.IndexModel{
		"courses": {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "title_ci", Value: 1}}},
		},
		"units": {
			{Keys: bson.D{{Key: "course_id", Value: 1}, {Key: "ordinal", Value: 1}}},
			{Keys: bson.D{{Key: "course_id", Value: 1}, {Key: "unit_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		"lessons": {
			{Keys: bson.D{{Key: "course_id", Value: 1}, {Key: "unit_id", Value: 1}, {Key: "ordinal", Value: 1}}},
			{Keys: bson.D{{Key: "course_id", Value: 1}, {Key: "lesson_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		"course_settings": {
			{Keys: bson.D{{Key: "course_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		"audit_events": {
			{Keys: bson.D{{Key: "course_id", Value: 1}, {Key: "timestamp", Value: -1}}},
		},
	}

	for coll, models := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			logger.Error("index creation failed", zap.String("collection", coll), zap.Error(err))
			return err
		}
	}
	return nil
}
