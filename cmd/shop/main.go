package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/SantiagoSpook/examen-AdminBD/internal/pkg/database"
	"github.com/SantiagoSpook/examen-AdminBD/internal/pkg/env"
	"github.com/SantiagoSpook/examen-AdminBD/internal/pkg/logging"
	"github.com/SantiagoSpook/examen-AdminBD/internal/shop/bootstrap"
)

func main() {
	mainCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	defaultLogger := logging.StdoutLogger

	httpPort := ":8080"
	dbHost := "localhost"
	dbPort := "5432"
	dbUser := "admin"
	dbPassword := "password"
	dbName := "shop_db"

	env.TrySetFromEnv(env.EnvHttpPort, &httpPort)
	env.TrySetFromEnv(env.EnvDatabaseHost, &dbHost)
	env.TrySetFromEnv(env.EnvDatabasePort, &dbPort)
	env.TrySetFromEnv(env.EnvDatabaseUser, &dbUser)
	env.TrySetFromEnv(env.EnvDatabasePassword, &dbPassword)
	env.TrySetFromEnv(env.EnvDatabaseName, &dbName)

	cfg := bootstrap.ShopConfig{
		DbSettings: database.PostgresSettings{
			User:       dbUser,
			Password:   dbPassword,
			Host:       dbHost,
			Port:       dbPort,
			DBName:     dbName,
			SSlEnabled: false,
		},
		HttpPort: httpPort,
	}

	app := bootstrap.NewShopApp(cfg, defaultLogger)

	if err := app.Run(mainCtx); err != nil {
		defaultLogger.Error("shop app stopped with error", "error", err.Error())
	}
}
