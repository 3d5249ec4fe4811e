package database

import (
	"context"
	"fmt"

	"cotas/src/config"
	aws_handler "cotas/src/utils/aws"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ResolveDSN returns the connection string for the cotas database. A Secrets
// Manager reference takes precedence, then the explicit connection string,
// then the discrete host settings.
func ResolveDSN(cfg *config.Config) (string, error) {
	sql := cfg.Databases.SQL
	if sql.AWSSecretID != "" {
		sm, err := aws_handler.NewSecretManager(sql.AWSRegion)
		if err != nil {
			return "", err
		}
		return sm.GetSecretValue(sql.AWSSecretID)
	}
	if sql.ConnectionString != "" {
		return sql.ConnectionString, nil
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		sql.Host,
		sql.Username,
		sql.Password,
		sql.Database,
		sql.Port), nil
}

// SetupDB creates the connection pool and verifies connectivity once at
// startup.
func SetupDB(cfg *config.Config) (*pgxpool.Pool, error) {
	dsn, err := ResolveDSN(cfg)
	if err != nil {
		return nil, err
	}

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	poolCfg.MaxConns = 5
	poolCfg.MinConns = 1

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return pool, nil
}
