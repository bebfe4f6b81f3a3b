package database

import (
	"context"
	"fmt"
	"time"

	"portfolio/internal/config"
	"portfolio/internal/metrics"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

// ConnectDatabase opens the pool, checks it with a ping and stores it in DB.
func ConnectDatabase(cfg config.DatabaseConfig, log gormlogger.Interface) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:                 log,
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpen)
	sqlDB.SetMaxIdleConns(cfg.MaxIdle)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(15 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	zap.L().Info("connected to database",
		zap.Int("max_open_conns", cfg.MaxOpen),
		zap.Int("max_idle_conns", cfg.MaxIdle),
	)

	DB = db
	return db, nil
}

// Ping reports whether the pool can still reach the server.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// MonitorDBConnections publishes pool stats every interval until ctx ends,
// warning when more than 80% of the pool is in use.
func MonitorDBConnections(ctx context.Context, db *gorm.DB, interval time.Duration) {
	sqlDB, err := db.DB()
	if err != nil {
		zap.L().Warn("connection monitor disabled", zap.Error(err))
		return
	}

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				stats := sqlDB.Stats()
				metrics.DBConnections.WithLabelValues("in_use").Set(float64(stats.InUse))
				metrics.DBConnections.WithLabelValues("idle").Set(float64(stats.Idle))
				metrics.DBConnections.WithLabelValues("open").Set(float64(stats.OpenConnections))
				if stats.MaxOpenConnections > 0 && stats.InUse*5 > stats.MaxOpenConnections*4 {
					zap.L().Warn("database pool nearly exhausted",
						zap.Int("in_use", stats.InUse),
						zap.Int("idle", stats.Idle),
						zap.Int("open", stats.OpenConnections),
					)
				}
			}
		}
	}()
}
