// Package queue also contains the background consumer that listens to the
// catalog.events queue and appends one line per event to a rotating log file.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewEventLog returns a size-rotated writer for the catalog event log.
func NewEventLog(path string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	}
}

// StartCatalogConsumer connects to the broker at url, declares the
// catalog.events queue (durable) and writes every delivery to out.  It runs a
// reconnect loop with exponential backoff and returns only when ctx is
// cancelled.  A message that cannot be handled is rejected without requeue so
// a poison message cannot spin the loop.
func StartCatalogConsumer(ctx context.Context, url string, out io.Writer) error {
	backoff := time.Second
	for {
		conn, err := amqp.Dial(url)
		if err != nil {
			slog.Warn("catalog-consumer: dial failed", "error", err, "retry_in", backoff)
			if !sleep(ctx, backoff) {
				return ctx.Err()
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second // reset after successful connect

		err = consumeLoop(ctx, conn, out)
		_ = conn.Close()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		slog.Warn("catalog-consumer: consume loop ended; reconnecting", "error", err)
		if !sleep(ctx, 2*time.Second) {
			return ctx.Err()
		}
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func consumeLoop(ctx context.Context, conn *amqp.Connection, out io.Writer) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		slog.Warn("catalog-consumer: set QoS failed", "error", err)
	}
	if _, err := ch.QueueDeclare(CatalogQueue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	msgs, err := ch.ConsumeWithContext(ctx, CatalogQueue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for d := range msgs {
		if err := HandleMessage(d.Body, out); err != nil {
			slog.Error("catalog-consumer: handle message failed", "error", err)
			_ = d.Nack(false, false)
			continue
		}
		_ = d.Ack(false)
	}
	return errors.New("deliveries channel closed")
}

// HandleMessage decodes one CatalogEvent and writes it to out as a single
// human-readable line.
func HandleMessage(body []byte, out io.Writer) error {
	var ev CatalogEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if ev.Type == "" || ev.ID == "" {
		return errors.New("event without type or id")
	}
	line := fmt.Sprintf("[%s] %s | id=%s", ev.OccurredAt.UTC().Format(time.RFC3339), ev.Type, ev.ID)
	if ev.Title != "" {
		line += fmt.Sprintf(" | title=%q", ev.Title)
	}
	if ev.Type == TvShowCreated {
		line += fmt.Sprintf(" | seasons=%d", ev.Seasons)
	}
	if ev.RequestID != "" {
		line += " | request_id=" + ev.RequestID
	}
	if _, err := io.WriteString(out, line+"\n"); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	return nil
}
