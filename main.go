package main

import (
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/walletty/wallet-server/api"
	"github.com/walletty/wallet-server/internal/config"
	"github.com/walletty/wallet-server/internal/logging"
	"github.com/walletty/wallet-server/internal/operator"
	"github.com/walletty/wallet-server/internal/service"
	"github.com/walletty/wallet-server/internal/storage"
)

func main() {
	// A missing .env file is fine; env vars and defaults cover it.
	_ = godotenv.Load()

	logger := logging.SetupLogging()
	logrus.Info("wallet-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage")
		return
	}

	if err := storage.RunMigrations(dbStorage.DB); err != nil {
		logrus.WithError(err).Fatal("storage.RunMigrations")
		return
	}

	svc := service.NewService(dbStorage)

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.WriteWorkers)
	delegator.Start()

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:   logger,
			Port:     envConfig.ServerPort,
			Service:  svc,
			Operator: delegator,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
