package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/LucaDevAr/futcuervo-backend/internal/model"
)

type DailyGameRepo interface {
	// FindByDateRange returns the games of one variant whose date falls
	// within [start, end], with the named relations expanded.
	FindByDateRange(ctx context.Context, gameType model.GameType, start, end time.Time, expand []ExpandSpec) ([]*model.DailyGame, error)
}

type dailyGameRepoImpl struct {
	db *mongo.Database
}

func NewDailyGameRepo(db *mongo.Database) DailyGameRepo {
	return &dailyGameRepoImpl{db: db}
}

// SubjectExpand returns the relation resolving a daily game's subject
// document (player, shirt, song, video). History games have none.
func SubjectExpand(gameType model.GameType) []ExpandSpec {
	switch gameType {
	case model.GameCareer, model.GamePlayer:
		return []ExpandSpec{{From: model.CollectionPlayers, LocalField: "player_id", As: "player"}}
	case model.GameShirt:
		return []ExpandSpec{{From: model.CollectionShirts, LocalField: "shirt_id", As: "shirt"}}
	case model.GameSong:
		return []ExpandSpec{{From: model.CollectionSongs, LocalField: "song_id", As: "song"}}
	case model.GameVideo:
		return []ExpandSpec{{From: model.CollectionVideos, LocalField: "video_id", As: "video"}}
	default:
		return nil
	}
}

// ClubExpand resolves the optional club reference.
func ClubExpand() ExpandSpec {
	return ExpandSpec{From: model.CollectionClubs, LocalField: "club_id", As: "club"}
}

func (s *dailyGameRepoImpl) FindByDateRange(ctx context.Context, gameType model.GameType, start, end time.Time, expand []ExpandSpec) ([]*model.DailyGame, error) {
	name := model.DailyGameCollection(gameType)
	if name == "" {
		return nil, errors.Errorf("no daily collection for game type %q", gameType)
	}

	pipeline := []bson.D{
		{{Key: "$match", Value: bson.M{
			"date": bson.M{"$gte": start, "$lte": end},
		}}},
	}
	pipeline = expandAll(pipeline, expand)

	cursor, err := s.db.Collection(name).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.Wrapf(err, "find daily %s games", gameType)
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var games []*model.DailyGame
	if err := cursor.All(ctx, &games); err != nil {
		return nil, errors.Wrapf(err, "decode daily %s games", gameType)
	}

	for _, game := range games {
		game.GameType = gameType
	}
	return games, nil
}
