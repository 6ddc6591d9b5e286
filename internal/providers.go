package internal

import (
	"github.com/tilemart/tilemart/internal/config"
	"github.com/tilemart/tilemart/internal/service"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func provideAuthService(logger *zap.Logger, db *gorm.DB, conf *config.Config) *service.AuthService {
	return service.NewAuthService(logger, db, conf.Security.JwtSecret)
}

func provideStorage(logger *zap.Logger, conf *config.Config) service.Storage {
	return service.NewDiskStorage(logger, conf.Upload)
}
