package app

import (
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/config"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BuildApp connects the infrastructure and mounts every module on router.
// The returned cleanup closes the connections.
func BuildApp(router *gin.Engine, cfg *config.Config) (func(), error) {
	log := zap.L().Named("app")

	gormDB, err := connectDatabase(cfg.Database)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	log.Info("database connection established")

	redisClient, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Redis.MaxRetries)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	log.Info("redis connection established")

	if err := registerModules(router, cfg, sqlDB, gormDB, redisClient); err != nil {
		_ = redisClient.Close()
		_ = sqlDB.Close()
		return nil, err
	}

	return func() {
		_ = redisClient.Close()
		_ = sqlDB.Close()
	}, nil
}

func connectDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormDB, err := connection.ConnectGORMWithRetry(
		cfg.Host,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.Port,
		cfg.SSLMode,
		cfg.MaxRetries,
	)
	if err != nil {
		return nil, err
	}
	if cfg.AutoMigrate {
		if err := Migrate(gormDB); err != nil {
			return nil, err
		}
	}
	return gormDB, nil
}
