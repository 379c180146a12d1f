package database

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Service wraps the pgx connection pool shared by all repositories
type Service struct {
	pool *pgxpool.Pool
}

// New establishes a connection pool against the provided DSN and verifies
// connectivity with a ping.
func New(ctx context.Context, dsn string) (*Service, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	cfg.MaxConnLifetime = time.Hour
	cfg.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return &Service{pool: pool}, nil
}

// Pool exposes the underlying connection pool
func (s *Service) Pool() *pgxpool.Pool {
	return s.pool
}

// Health reports basic pool statistics for the health endpoint
func (s *Service) Health(ctx context.Context) map[string]interface{} {
	status := "up"
	if err := s.pool.Ping(ctx); err != nil {
		status = "down"
	}

	stat := s.pool.Stat()
	return map[string]interface{}{
		"status":         status,
		"total_conns":    stat.TotalConns(),
		"idle_conns":     stat.IdleConns(),
		"acquired_conns": stat.AcquiredConns(),
		"max_conns":      stat.MaxConns(),
	}
}

// Close drains the connection pool
func (s *Service) Close() {
	if s != nil && s.pool != nil {
		s.pool.Close()
	}
}
