package service

import (
	"context"

	"github.com/cypherlabdev/consensus-odds-service/internal/models"
)

// FeedProvider is an interface that abstracts the odds feed fetch
// This allows for easier testing and mocking
type FeedProvider interface {
	FetchOdds(ctx context.Context, sportKey string) ([]models.FeedEvent, error)
}

// SnapshotCache is an interface that abstracts the feed snapshot cache
// This allows for easier testing and mocking
type SnapshotCache interface {
	Get(ctx context.Context, sportKey string) (*models.FeedSnapshot, error)
	Set(ctx context.Context, snapshot *models.FeedSnapshot) error
	Ping(ctx context.Context) error
	Close() error
}

// RecordPublisher is an interface that abstracts downstream record delivery
// This allows for easier testing and mocking
type RecordPublisher interface {
	Publish(ctx context.Context, record *models.ConsensusOddsRecord) error
}
