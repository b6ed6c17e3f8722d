package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

type Options struct {
	Driver          string
	DataSource      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	RetryAttempts   int
	RetryDelay      time.Duration
	Migrations      []string
}

type Option func(*Options)

func WithDriver(driver string) Option {
	return func(o *Options) { o.Driver = driver }
}

func WithDataSource(dsn string) Option {
	return func(o *Options) { o.DataSource = dsn }
}

func WithMaxOpenConns(count int) Option {
	return func(o *Options) { o.MaxOpenConns = count }
}

func WithMaxIdleConns(count int) Option {
	return func(o *Options) { o.MaxIdleConns = count }
}

func WithConnMaxLifetime(duration time.Duration) Option {
	return func(o *Options) { o.ConnMaxLifetime = duration }
}

func WithConnMaxIdleTime(duration time.Duration) Option {
	return func(o *Options) { o.ConnMaxIdleTime = duration }
}

func WithRetry(attempts int, delay time.Duration) Option {
	return func(o *Options) {
		o.RetryAttempts = attempts
		o.RetryDelay = delay
	}
}

// WithMigrations registers statements executed in order once the pool is reachable.
func WithMigrations(statements ...string) Option {
	return func(o *Options) { o.Migrations = append(o.Migrations, statements...) }
}

// IsInMemory reports whether dsn names a private in-memory SQLite database.
func IsInMemory(driver, dsn string) bool {
	if !strings.HasPrefix(driver, "sqlite") {
		return false
	}
	return dsn == ":memory:" || strings.Contains(dsn, "mode=memory")
}

// New creates a new database connection pool using the provided options.
//
// An in-memory SQLite database lives only as long as its connection, so for
// those data sources the pool is pinned to a single connection that never expires.
func New(opts ...Option) (*sql.DB, error) {
	options := &Options{
		Driver:          "sqlite3",
		DataSource:      ":memory:",
		MaxOpenConns:    25,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 2 * time.Minute,
		RetryAttempts:   3,
		RetryDelay:      time.Second,
	}

	for _, opt := range opts {
		opt(options)
	}

	if options.Driver == "" {
		return nil, fmt.Errorf("database driver cannot be empty")
	}
	if options.DataSource == "" {
		return nil, fmt.Errorf("database data source cannot be empty")
	}
	if options.RetryAttempts < 1 {
		options.RetryAttempts = 1
	}
	if IsInMemory(options.Driver, options.DataSource) {
		options.MaxOpenConns = 1
		options.MaxIdleConns = 1
		options.ConnMaxLifetime = 0
		options.ConnMaxIdleTime = 0
	}

	var db *sql.DB
	var err error

	for i := 0; i < options.RetryAttempts; i++ {
		db, err = sql.Open(options.Driver, options.DataSource)
		if err == nil {
			db.SetMaxOpenConns(options.MaxOpenConns)
			db.SetMaxIdleConns(options.MaxIdleConns)
			db.SetConnMaxLifetime(options.ConnMaxLifetime)
			db.SetConnMaxIdleTime(options.ConnMaxIdleTime)

			if err = db.Ping(); err == nil {
				if err = migrate(db, options.Migrations); err != nil {
					db.Close()
					return nil, err
				}
				return db, nil
			}

			db.Close()
		}

		// linear backoff
		if i < options.RetryAttempts-1 {
			time.Sleep(time.Duration(i+1) * options.RetryDelay)
		}
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", options.RetryAttempts, err)
}

func migrate(db *sql.DB, statements []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for i, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
