package postgres

//nolint:revive
import (
	"context"
	"encore/config"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

// Connection splits admin account traffic between a read replica and the primary.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

type endpoint struct {
	name     string
	username string
	password string
	host     string
	port     string
	database string
	sslMode  string
}

func New(config *config.Config) *Connection {
	pg := config.DB.Postgres

	read := endpoint{"read", pg.Read.Username, pg.Read.Password, pg.Read.Host, pg.Read.Port, pg.Prefix + pg.Read.Name, pg.Read.SSLMode}
	write := endpoint{"write", pg.Write.Username, pg.Write.Password, pg.Write.Host, pg.Write.Port, pg.Prefix + pg.Write.Name, pg.Write.SSLMode}

	return &Connection{
		Read:  connect(read, pg.MaxRetry, pg.RetryWaitTime),
		Write: connect(write, pg.MaxRetry, pg.RetryWaitTime),
	}
}

func (c *Connection) Ping(ctx context.Context) error {
	if err := c.Write.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping postgres: %w", err)
	}

	return nil
}

func (c *Connection) Close() error {
	return errors.Join(c.Read.Close(), c.Write.Close())
}

// DSN builds the lib/pq connection URL for the write endpoint, used by migrations.
func DSN(config *config.Config) string {
	pg := config.DB.Postgres

	return dsn(endpoint{"write", pg.Write.Username, pg.Write.Password, pg.Write.Host, pg.Write.Port, pg.Prefix + pg.Write.Name, pg.Write.SSLMode})
}

func dsn(ep endpoint) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		ep.username,
		ep.password,
		net.JoinHostPort(ep.host, ep.port),
		ep.database,
		ep.sslMode,
	)
}

func connect(ep endpoint, maxRetry, waitTime int) *sqlx.DB {
	logger := log.With().
		Str("name", ep.name).
		Str("host", ep.host).
		Str("port", ep.port).
		Str("dbName", ep.database).
		Logger()

	var err error

	for retry := range max(maxRetry, 1) {
		var sqlDB *sqlx.DB

		sqlDB, err = sqlx.Connect("postgres", dsn(ep))
		if err == nil {
			logger.Info().Msg("Connected to database")

			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB
		}

		logger.Error().Err(err).Int("attempt", retry+1).Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	logger.Fatal().Err(err).Msg("Giving up connecting to database")

	return nil
}
