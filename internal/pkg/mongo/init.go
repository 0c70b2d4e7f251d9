package mongo

import (
	"context"
	log "log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/LucaDevAr/futcuervo-backend/internal/api/config"
	"github.com/LucaDevAr/futcuervo-backend/internal/model"
	"github.com/LucaDevAr/futcuervo-backend/internal/pkg/logger"
)

// InitMongo connects, checks reachability and ensures indexes.
func InitMongo(cfg config.MongoConfig) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.URL).
		SetMonitor(logger.NewMongoMonitor()),
	)
	if err != nil {
		return nil, err
	}

	if err = client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(cfg.Database)

	if err = ensureIndexes(ctx, db); err != nil {
		return nil, err
	}

	log.Info("MongoDB initialized successfully", "db", cfg.Database)
	return db, nil
}

// ensureIndexes creates the indexes the upsert protocol depends on.
// The unique (user_id, game_type, club_id) index is what makes
// concurrent duplicate submissions converge to one attempt row.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	attemptIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "game_type", Value: 1},
				{Key: "club_id", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
		},
	}
	if _, err := db.Collection(model.CollectionAttempts).Indexes().CreateMany(ctx, attemptIndexes); err != nil {
		return err
	}

	memberIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "club_id", Value: 1},
				{Key: "role", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := db.Collection(model.CollectionClubMembers).Indexes().CreateMany(ctx, memberIndexes); err != nil {
		return err
	}

	for _, gameType := range model.DailyGameTypes {
		_, err := db.Collection(model.DailyGameCollection(gameType)).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: "date", Value: 1}},
		})
		if err != nil {
			return err
		}
	}

	return nil
}
