package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/SantiagoSpook/examen-AdminBD/internal/pkg/database"
	"github.com/SantiagoSpook/examen-AdminBD/internal/pkg/logging"
	"github.com/SantiagoSpook/examen-AdminBD/internal/shop/application"
	httpwrap "github.com/SantiagoSpook/examen-AdminBD/internal/shop/infrastructure/http"
	"github.com/SantiagoSpook/examen-AdminBD/internal/shop/infrastructure/postgres"
	"github.com/SantiagoSpook/examen-AdminBD/migrations"
	"github.com/gin-gonic/gin"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	shutdownTimeout = 5 * time.Second

	migrationsDriver  = "pgx"
	migrationsDialect = "postgres"
)

type ShopApp struct {
	cfg    ShopConfig
	logger logging.Logger

	server *http.Server
	dbpool *pgxpool.Pool
}

func NewShopApp(cfg ShopConfig, logger logging.Logger) *ShopApp {
	return &ShopApp{
		cfg:    cfg,
		logger: logger,
	}
}

func (a *ShopApp) Run(ctx context.Context) error {
	logger := a.logger
	dbURL := a.cfg.DbSettings.GetUrl()

	err := database.MigrateDatabase(dbURL, migrations.FS, ".", migrationsDriver, migrationsDialect)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	poolCfg, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return fmt.Errorf("failed to parse database url: %w", err)
	}

	poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	dbpool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	a.dbpool = dbpool
	defer dbpool.Close()

	a.server = &http.Server{
		Addr:    a.cfg.HttpPort,
		Handler: a.createRouter(dbpool),
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		logger.Info("starting HTTP server", "addr", a.server.Addr)

		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to serve HTTP: %w", err)
		}

		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		logger.Info("shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return a.server.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		return err
	}

	logger.Info("HTTP server stopped")
	return nil
}

func (a *ShopApp) createRouter(dbpool *pgxpool.Pool) *gin.Engine {
	txManager := database.NewDelegateTxManager(dbpool, a.logger)

	usersRepository := postgres.NewUsersRepository(dbpool)
	productsRepository := postgres.NewProductsRepository(dbpool)

	usersCase := application.NewUsersCase(usersRepository)
	productsCase := application.NewProductsCase(productsRepository)
	purchaseCase := application.NewPurchaseCase(
		postgres.NewUserFinder(),
		postgres.NewProductLocker(),
		postgres.NewPurchaseRecorder(),
		postgres.NewStockDecrementer(),
		txManager,
	)

	userHandler := httpwrap.NewUserHandler(usersCase)
	productHandler := httpwrap.NewProductHandler(productsCase)
	purchaseHandler := httpwrap.NewPurchaseHandler(purchaseCase)

	router := gin.Default()

	api := router.Group("/api", httpwrap.NewRequestIdMiddleware())
	{
		api.GET("/users", userHandler.GetUsers)
		api.POST("/users", userHandler.CreateUser)

		api.GET("/products", productHandler.GetProducts)
		api.GET("/products/:"+httpwrap.ProductIdKey, productHandler.GetProduct)
		api.POST("/products", productHandler.CreateProduct)

		api.POST("/purchases", purchaseHandler.PlacePurchase)
	}

	return router
}
