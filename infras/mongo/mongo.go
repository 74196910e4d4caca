package mongo

import (
	"context"
	"encore/config"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	CollectionBookings = "bookings"
	CollectionShows    = "shows"
	CollectionMessages = "messages"
)

type Connection struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// New connects to mongo and pings the primary, retrying like the postgres connector.
func New(config *config.Config) *Connection {
	cfg := config.DB.Mongo
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout).
		SetAppName(config.App.Name)

	var err error

	for retry := range max(cfg.MaxRetry, 1) {
		var client *mongo.Client

		client, err = connect(opts, timeout)
		if err == nil {
			log.Info().Str("database", cfg.Database).Msg("Connected to mongo")

			return &Connection{
				Client:   client,
				Database: client.Database(cfg.Database),
			}
		}

		log.Error().Err(err).Int("attempt", retry+1).Msg("Failed connecting to mongo, retrying")

		time.Sleep(time.Duration(cfg.RetryWaitTime) * time.Second)
	}

	log.Fatal().Err(err).Msg("Giving up connecting to mongo")

	return nil
}

func connect(opts *options.ClientOptions, timeout time.Duration) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())

		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return client, nil
}

func (c *Connection) Collection(name string) *mongo.Collection {
	return c.Database.Collection(name)
}

func (c *Connection) Ping(ctx context.Context) error {
	if err := c.Client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("failed to ping mongo: %w", err)
	}

	return nil
}

func (c *Connection) Close(ctx context.Context) error {
	if err := c.Client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect mongo: %w", err)
	}

	return nil
}
