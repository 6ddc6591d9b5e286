//go:build wireinject
// +build wireinject

package internal

import (
	"github.com/google/wire"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tilemart/tilemart/internal/config"
	"github.com/tilemart/tilemart/internal/handler"
	"github.com/tilemart/tilemart/internal/service"
)

var (
	serviceSet = wire.NewSet(
		provideAuthService,
		provideStorage,
		service.NewConsultationService,
		service.NewPortfolioService,
		service.NewCatalogService,
		service.NewCustomerService,
		service.NewDashboardService,
	)

	handlerSet = wire.NewSet(
		handler.NewAuthHandler,
		handler.NewPublicHandler,
		handler.NewConsultationHandler,
		handler.NewPortfolioHandler,
		handler.NewCatalogHandler,
		handler.NewCustomerHandler,
		handler.NewAdminUserHandler,
		handler.NewDashboardHandler,
		handler.NewUploadHandler,
	)
)

// InitializeApp 애플리케이션 초기화
func InitializeApp(logger *zap.Logger, db *gorm.DB, conf *config.Config) (*AppComponents, error) {
	wire.Build(
		serviceSet,
		handlerSet,
		wire.Struct(new(AppComponents), "*"),
	)
	return nil, nil
}
