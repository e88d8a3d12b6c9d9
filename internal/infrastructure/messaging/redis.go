package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/AbdelrahmanAbbas1/woocommerce-zoho-integration/internal/config"
	"github.com/AbdelrahmanAbbas1/woocommerce-zoho-integration/internal/domain/model"
)

const defaultChannel = "order-sync.runs"

// RunCompletedEvent is the JSON payload published after each run.
type RunCompletedEvent struct {
	RunID           string    `json:"run_id"`
	Status          string    `json:"status"`
	OrdersAttempted int       `json:"orders_attempted"`
	OrdersFailed    int       `json:"orders_failed"`
	ContactsCreated int       `json:"contacts_created"`
	ContactsReused  int       `json:"contacts_reused"`
	DealsCreated    int       `json:"deals_created"`
	DealsSkipped    int       `json:"deals_skipped"`
	FinishedAt      time.Time `json:"finished_at"`
}

// RedisPublisher publishes run-completed events to a redis channel. It
// implements usecase.RunEventPublisher.
type RedisPublisher struct {
	client  *redis.Client
	channel string
	logger  *zap.Logger
}

// NewRedisPublisher creates a redis publisher and verifies connectivity.
func NewRedisPublisher(cfg config.RedisConfig, logger *zap.Logger) (*RedisPublisher, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	channel := cfg.Channel
	if channel == "" {
		channel = defaultChannel
	}

	return &RedisPublisher{
		client:  client,
		channel: channel,
		logger:  logger,
	}, nil
}

// PublishRunCompleted publishes a run summary event.
func (p *RedisPublisher) PublishRunCompleted(ctx context.Context, run *model.SyncRun) error {
	event := RunCompletedEvent{
		RunID:           run.ID.String(),
		Status:          run.Status,
		OrdersAttempted: run.OrdersAttempted,
		OrdersFailed:    run.OrdersFailed,
		ContactsCreated: run.ContactsCreated,
		ContactsReused:  run.ContactsReused,
		DealsCreated:    run.DealsCreated,
		DealsSkipped:    run.DealsSkipped,
	}
	if run.FinishedAt != nil {
		event.FinishedAt = *run.FinishedAt
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal run event: %w", err)
	}

	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish run event: %w", err)
	}

	p.logger.Debug("Published run event",
		zap.String("run_id", event.RunID),
		zap.String("channel", p.channel))

	return nil
}

// Close closes the redis connection.
func (p *RedisPublisher) Close() error {
	return p.client.Close()
}
