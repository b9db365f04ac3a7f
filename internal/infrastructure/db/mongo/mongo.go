package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/unicampus/campus-portal/internal/core/ports"
)

const (
	appName        = "campus-portal"
	connectTimeout = 10 * time.Second
)

// Backend is an open mongo connection with the campus repositories bound to it.
type Backend struct {
	client *mongo.Client

	DB      *mongo.Database
	Records ports.Repositories
	Users   *UserRepository
}

// Open connects to uri, pings the primary and makes sure every collection
// has its indexes before returning.
func Open(ctx context.Context, uri, database string) (*Backend, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(uri).
		SetAppName(appName).
		SetServerSelectionTimeout(connectTimeout)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(database)
	b := &Backend{
		client:  client,
		DB:      db,
		Records: NewRepositories(db),
		Users:   NewUserRepository(db),
	}
	if err := EnsureIndexes(ctx, b.Records, b.Users); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return b, nil
}

func (b *Backend) Close(ctx context.Context) error {
	return b.client.Disconnect(ctx)
}
