package gateway

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/nusabank/transaction-core/internal/pkg/logger"
	"github.com/nusabank/transaction-core/internal/pkg/models"
)

// publisher is the slice of the NSQ producer the gateway needs
type publisher interface {
	Publish(topic string, message interface{}) error
}

// TransactionEvent is the payload published for completed transactions and
// large-transaction alerts
type TransactionEvent struct {
	TransactionID string          `json:"transaction_id"`
	Type          string          `json:"type"`
	FromAccount   string          `json:"from_account"`
	ToAccount     string          `json:"to_account,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Status        string          `json:"status"`
	CompletedAt   time.Time       `json:"completed_at"`
	PublishedAt   time.Time       `json:"published_at"`
}

// NotificationGW publishes post-commit notification events to NSQ. Delivery
// is best-effort: the orchestrator treats every error as advisory.
type NotificationGW struct {
	producer publisher
	cfg      models.NSQConfig
	log      *logger.AppLogger
}

// NewNotificationGW creates a new notification gateway
func NewNotificationGW(producer publisher, cfg models.NSQConfig, log *logger.AppLogger) *NotificationGW {
	return &NotificationGW{producer: producer, cfg: cfg, log: log}
}

// SendTransactionConfirmation publishes the confirmation event for a
// committed transaction
func (g *NotificationGW) SendTransactionConfirmation(ctx context.Context, txn *models.Transaction) error {
	return g.publish(ctx, g.cfg.ConfirmationTopic, txn)
}

// SendLargeTransactionAlert publishes the large-transaction alert event
func (g *NotificationGW) SendLargeTransactionAlert(ctx context.Context, txn *models.Transaction) error {
	return g.publish(ctx, g.cfg.LargeAlertTopic, txn)
}

func (g *NotificationGW) publish(ctx context.Context, topic string, txn *models.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	event := TransactionEvent{
		TransactionID: txn.ID,
		Type:          string(txn.Type),
		FromAccount:   txn.FromAccount,
		ToAccount:     txn.ToAccount,
		Amount:        txn.Amount,
		Currency:      txn.Currency,
		Status:        string(txn.Status),
		CompletedAt:   txn.CreatedAt,
		PublishedAt:   time.Now().UTC(),
	}

	if err := g.producer.Publish(topic, event); err != nil {
		return err
	}

	g.log.WithFields(logrus.Fields{
		"topic":          topic,
		"transaction_id": txn.ID,
	}).Debug("published transaction event")
	return nil
}
