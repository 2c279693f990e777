package database

import (
	"context"
	"io/fs"
	"net"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
)

type Config struct {
	InMemory bool   `envconfig:"DB_IN_MEMORY" default:"false"`
	Dialect  string `envconfig:"DB_DIALECT" default:"postgres"`
	Driver   string `envconfig:"DB_DRIVER" default:"pgx"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD"`
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	Name     string `envconfig:"DB_NAME" default:"reservation"`
	SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
}

const inMemoryDSN = "file::memory:?cache=shared&_foreign_keys=1"

// New opens the configured backend: postgres with goose migrations applied,
// or a shared in-memory sqlite with the bootstrap schema executed.
func New(ctx context.Context, cfg *Config, migrations fs.FS, sqliteSchema string) (*sqlx.DB, error) {
	if cfg.InMemory {
		return newSQLite(sqliteSchema)
	}
	return newPostgres(ctx, cfg, migrations)
}

func newSQLite(schema string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite3", inMemoryDSN)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite")
	}
	// a second connection to :memory: would see an empty database
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		return nil, errors.Wrap(err, "bootstrap sqlite schema")
	}
	return db, nil
}

func newPostgres(ctx context.Context, cfg *Config, migrations fs.FS) (*sqlx.DB, error) {
	dsn := "postgres://" + cfg.User + ":" + cfg.Password +
		"@" + net.JoinHostPort(cfg.Host, cfg.Port) +
		"/" + cfg.Name + "?sslmode=" + cfg.SSLMode

	db, err := sqlx.Open(cfg.Driver, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(time.Hour)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		return nil, errors.Wrap(err, "ping postgres")
	}

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect(cfg.Dialect); err != nil {
		return nil, errors.Wrap(err, "goose dialect")
	}
	if err := goose.Up(db.DB, "."); err != nil {
		return nil, errors.Wrap(err, "goose up")
	}
	return db, nil
}
