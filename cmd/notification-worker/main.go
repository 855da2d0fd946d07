package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/nusabank/transaction-core/internal/pkg/config"
	"github.com/nusabank/transaction-core/internal/pkg/logger"
	nsqpkg "github.com/nusabank/transaction-core/internal/pkg/nsq"
	"github.com/nusabank/transaction-core/services/transaction/gateway"
)

// The worker drains the notification topics the transaction core publishes
// to. Delivery to customers (email, push) would hang off it; for now it
// records every event it sees.
func main() {
	appName := "notification-worker"
	configs := config.InitConfig(os.Getenv("CONFIG_PATH"))

	appLogger, err := logger.NewAppLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Close()

	appLogger.WithField("app", appName).Info("starting notification worker")

	confirmations, err := nsqpkg.NewConsumer(
		configs.NSQ.ConfirmationTopic, appName, configs.NSQ.Address,
		eventHandler(appLogger, "transaction confirmation"),
	)
	if err != nil {
		appLogger.WithError(err).Fatal("failed to start confirmation consumer")
	}
	defer confirmations.Stop()

	alerts, err := nsqpkg.NewConsumer(
		configs.NSQ.LargeAlertTopic, appName, configs.NSQ.Address,
		eventHandler(appLogger, "large transaction alert"),
	)
	if err != nil {
		appLogger.WithError(err).Fatal("failed to start alert consumer")
	}
	defer alerts.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	sig := <-quit

	appLogger.WithField("signal", sig.String()).Info("shutting down notification worker")
}

func eventHandler(appLogger *logger.AppLogger, kind string) nsqpkg.MessageHandler {
	return func(message []byte) error {
		var event gateway.TransactionEvent
		if err := nsqpkg.UnmarshalMessage(message, &event); err != nil {
			// Malformed events are dropped, requeueing cannot fix them.
			appLogger.WithError(err).Warn("dropping malformed notification event")
			return nil
		}

		appLogger.WithFields(logrus.Fields{
			"transaction_id": event.TransactionID,
			"type":           event.Type,
			"amount":         event.Amount.String(),
			"currency":       event.Currency,
		}).Info(kind + " received")
		return nil
	}
}
