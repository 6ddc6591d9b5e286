package internal

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-orz/orz"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/tilemart/tilemart/internal/config"
	"github.com/tilemart/tilemart/internal/handler"
	"github.com/tilemart/tilemart/internal/middleware"
	"github.com/tilemart/tilemart/internal/models"
	"github.com/tilemart/tilemart/internal/service"
	"github.com/tilemart/tilemart/pkg/nostd"
	"go.uber.org/zap"
)

func Run(configPath string) error {
	app := NewTilemartApp()

	framework, err := orz.NewFramework(
		orz.WithConfig(configPath),
		orz.WithLoggerFromConfig(),
		orz.WithDatabase(),
		orz.WithHTTP(),
		orz.WithApplication(app),
	)
	if err != nil {
		return err
	}

	return framework.Run()
}

func NewTilemartApp() orz.Application {
	return &TilemartApp{}
}

var _ orz.Application = (*TilemartApp)(nil)

type AppComponents struct {
	AuthHandler         *handler.AuthHandler
	PublicHandler       *handler.PublicHandler
	ConsultationHandler *handler.ConsultationHandler
	PortfolioHandler    *handler.PortfolioHandler
	CatalogHandler      *handler.CatalogHandler
	CustomerHandler     *handler.CustomerHandler
	AdminUserHandler    *handler.AdminUserHandler
	DashboardHandler    *handler.DashboardHandler
	UploadHandler       *handler.UploadHandler

	AuthService         *service.AuthService
	ConsultationService *service.ConsultationService
	PortfolioService    *service.PortfolioService
	CatalogService      *service.CatalogService
	CustomerService     *service.CustomerService
	DashboardService    *service.DashboardService
}

type TilemartApp struct {
	components *AppComponents
	conf       *config.Config
}

// GetComponents 애플리케이션 컴포넌트 조회
func (r *TilemartApp) GetComponents() *AppComponents {
	return r.components
}

func (r *TilemartApp) Configure(app *orz.App) error {
	logger := app.Logger()
	e := app.GetEcho()
	db := app.GetDatabase()

	var conf config.Config
	err := app.GetConfig().App.Unmarshal(&conf)
	if err != nil {
		return fmt.Errorf("failed to unmarshal config: %v", err)
	}

	components, err := InitializeApp(logger, db, &conf)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %v", err)
	}
	r.components = components
	r.conf = &conf

	if err := db.AutoMigrate(
		models.Admin{},
		models.Consultation{}, models.ConsultationLog{},
		models.Customer{},
		models.Service{}, models.ServiceFeature{},
		models.Portfolio{}, models.PortfolioImage{}, models.PortfolioTag{},
		models.Tag{}, models.SiteSetting{},
	); err != nil {
		logger.Fatal("database auto migrate failed", zap.Error(err))
	}

	if err := r.Init(logger); err != nil {
		logger.Fatal("app init failed", zap.Error(err))
	}

	e.HidePort = true
	e.HideBanner = true

	e.Use(echomiddleware.Gzip())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		Skipper:          echomiddleware.DefaultSkipper,
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))
	e.Use(echomiddleware.RecoverWithConfig(echomiddleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			sugar := logger.Sugar()
			sugar.Error(fmt.Sprintf("[PANIC RECOVER] %v %s\n", err, stack))
			return err
		},
	}))
	e.Use(WithErrorHandler(logger))
	customValidator := nostd.CustomValidator{Validator: validator.New()}
	if err := customValidator.TransInit(); err != nil {
		logger.Sugar().Fatal("failed to init custom validator", zap.Error(err))
	}
	e.Validator = &customValidator

	guard := middleware.GuardConfig{
		AuthService: components.AuthService,
		Logger:      logger,
	}
	e.Use(middleware.SessionGuard(guard))

	if conf.Upload.Dir != "" {
		e.Static("/uploads", conf.Upload.Dir)
	}
	if conf.Web.Dir != "" {
		e.Use(echomiddleware.StaticWithConfig(echomiddleware.StaticConfig{
			Skipper: func(c echo.Context) bool {
				path := c.Request().RequestURI
				if strings.HasPrefix(path, "/api") || strings.HasPrefix(path, "/uploads") {
					return true
				}
				return false
			},
			Root:   conf.Web.Dir,
			Index:  "index.html",
			HTML5:  true,
			Browse: false,
		}))
	}

	e.GET("/health", components.PublicHandler.Health)

	api := e.Group("/api")
	{
		components.PublicHandler.RegisterRoutes(api)
		components.AuthHandler.RegisterRoutes(api)

		admin := api.Group("/admin", middleware.RequireSession(guard))
		components.AuthHandler.RegisterProtectedRoutes(admin)
		components.ConsultationHandler.RegisterRoutes(admin)
		components.PortfolioHandler.RegisterRoutes(admin)
		components.CatalogHandler.RegisterRoutes(admin)
		components.CustomerHandler.RegisterRoutes(admin)
		components.AdminUserHandler.RegisterRoutes(admin)
		components.DashboardHandler.RegisterRoutes(admin)
		components.UploadHandler.RegisterRoutes(admin)
	}

	return nil
}

// Init 기동 준비. 관리자 계정이 하나도 없으면 초기 계정을 만든다.
func (r *TilemartApp) Init(logger *zap.Logger) error {
	components := r.GetComponents()
	if components == nil {
		return fmt.Errorf("components not initialized")
	}

	ctx := context.Background()
	needs, err := components.AuthService.NeedsBootstrap(ctx)
	if err != nil {
		return err
	}
	if !needs {
		return nil
	}

	bootstrap := r.conf.Bootstrap
	if bootstrap.AdminEmail == "" || bootstrap.AdminPassword == "" {
		logger.Warn("no admin account exists and bootstrap credentials are not configured")
		return nil
	}

	name := bootstrap.AdminName
	if name == "" {
		name = "관리자"
	}
	return components.AuthService.BootstrapAdmin(ctx, bootstrap.AdminEmail, bootstrap.AdminPassword, name)
}
