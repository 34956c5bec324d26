// The consumer drains the notification topic and performs the final
// delivery step. Delivery here is console output; swapping in a real mail
// transport only touches this binary.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	segmentio "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/claimithub/claimit/internal/config"
	"github.com/claimithub/claimit/internal/logger"
	"github.com/claimithub/claimit/internal/notify"
)

const groupID = "claimit-notification-consumer"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := logger.New()
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config", zap.Error(err))
	}
	if len(cfg.KafkaBrokers) == 0 {
		log.Fatal("KAFKA_BROKERS must be set for the consumer")
	}

	reader := segmentio.NewReader(segmentio.ReaderConfig{
		Brokers:        cfg.KafkaBrokers,
		GroupID:        groupID,
		Topic:          cfg.KafkaTopic,
		MinBytes:       10e3,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		MaxWait:        3 * time.Second,
	})
	defer func() {
		if err := reader.Close(); err != nil {
			log.Error("failed to close kafka reader", zap.Error(err))
		}
	}()

	log.Info("notification consumer started",
		zap.Strings("brokers", cfg.KafkaBrokers),
		zap.String("topic", cfg.KafkaTopic))

	for {
		select {
		case <-ctx.Done():
			log.Info("shutdown signal received, stopping consumer")
			return
		default:
			m, err := reader.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				log.Error("failed to read message", zap.Error(err))
				time.Sleep(5 * time.Second)
				continue
			}

			var msg notify.Message
			if err := json.Unmarshal(m.Value, &msg); err != nil {
				log.Error("failed to decode notification",
					zap.Int64("offset", m.Offset), zap.Error(err))
				continue
			}

			deliver(msg)
			log.Info("notification delivered",
				zap.String("kind", msg.Kind),
				zap.String("to", msg.To),
				zap.Int64("item_id", msg.ItemID))
		}
	}
}

func deliver(msg notify.Message) {
	fmt.Printf("\n--- NOTIFICATION ---\n")
	fmt.Printf("To:      %s\n", msg.To)
	fmt.Printf("Subject: %s\n", msg.Subject)
	fmt.Printf("Queued:  %s\n", msg.QueuedAt.Format(time.RFC3339))
	fmt.Printf("\n%s\n", msg.Body)
	fmt.Println("--- END NOTIFICATION ---")
}
