package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/govindweb777/erp-sales-backend/internal/application/auth"
	appledger "github.com/govindweb777/erp-sales-backend/internal/application/ledger"
	"github.com/govindweb777/erp-sales-backend/internal/application/usecase"
	"github.com/govindweb777/erp-sales-backend/internal/infrastructure/notify"
	"github.com/govindweb777/erp-sales-backend/internal/infrastructure/postgres"
	httpRouter "github.com/govindweb777/erp-sales-backend/internal/interfaces/http"
	"github.com/govindweb777/erp-sales-backend/pkg/config"
	"github.com/govindweb777/erp-sales-backend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	branchRepo := postgres.NewBranchRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	docRepo := postgres.NewDocumentRepository(pool)
	seqRepo := postgres.NewSequenceRepository(pool)
	coaRepo := postgres.NewChartOfAccountRepository(pool)
	groupRepo := postgres.NewAccountGroupRepository(pool)
	bankRepo := postgres.NewBankAccountRepository(pool)
	itemGroupRepo := postgres.NewItemGroupRepository(pool)
	itemCategoryRepo := postgres.NewItemCategoryRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Sink de notificaciones: Redis pub/sub si hay REDIS_ADDR, no-op si no.
	var sink appledger.NotificationSink = notify.NoopSink{}
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		redisSink := notify.NewRedisSink(redisClient)
		defer redisSink.Close()
		sink = redisSink
		log.Info().Str("addr", cfg.Redis.Addr).Msg("notificaciones habilitadas vía Redis")
	}

	ledgerSvc := appledger.NewService(txRunner, docRepo, seqRepo, sink, log)

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, notify.NewLogMailer(log), auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo, branchRepo)
	branchUC := usecase.NewBranchUseCase(branchRepo, seqRepo, txRunner)
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	dashboardUC := usecase.NewDashboardUseCase(userRepo, branchRepo, docRepo, itemRepo)
	itemUC := usecase.NewItemUseCase(itemRepo)
	coaUC := usecase.NewChartOfAccountUseCase(coaRepo)
	groupUC := usecase.NewAccountGroupUseCase(groupRepo)
	bankUC := usecase.NewBankAccountUseCase(bankRepo)
	itemGroupUC := usecase.NewItemGroupUseCase(itemGroupRepo)
	itemCategoryUC := usecase.NewItemCategoryUseCase(itemCategoryRepo)
	reportUC := usecase.NewReportUseCase(docRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "ERP Sales API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		LedgerSvc:        ledgerSvc,
		UserUC:           userUC,
		BranchUC:         branchUC,
		CompanyUC:        companyUC,
		DashboardUC:      dashboardUC,
		ItemUC:           itemUC,
		ChartOfAccountUC: coaUC,
		AccountGroupUC:   groupUC,
		BankAccountUC:    bankUC,
		ItemGroupUC:      itemGroupUC,
		ItemCategoryUC:   itemCategoryUC,
		ReportUC:         reportUC,
		UserRepo:         userRepo,
		JWTSecret:        cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
