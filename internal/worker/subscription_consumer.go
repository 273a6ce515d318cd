package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/resicare/resicare-api/internal/rabbitmq"
	"github.com/resicare/resicare-api/internal/services"
	amqp "github.com/rabbitmq/amqp091-go"
)

// SubscriptionWorker consumes subscription-completed events and turns them
// into per-session notifications plus a confirmation email.
type SubscriptionWorker struct {
	notificationService *services.NotificationService
}

func NewSubscriptionWorker(ns *services.NotificationService) *SubscriptionWorker {
	return &SubscriptionWorker{
		notificationService: ns,
	}
}

// StartWorker starts the consumer process
// ctx is used for graceful shutdown signal
func (w *SubscriptionWorker) StartWorker(ctx context.Context) error {
	if rabbitmq.Client == nil {
		return fmt.Errorf("RabbitMQ client not initialized")
	}

	ch := rabbitmq.Client.Channel
	qName := rabbitmq.SubscriptionsQueue

	msgs, err := ch.Consume(
		qName,                   // queue
		"subscription-worker-1", // consumer tag
		false,                   // auto-ack (manual ack after successful process)
		false,                   // exclusive
		false,                   // no-local
		false,                   // no-wait
		nil,                     // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	log.Printf("Worker started. Waiting for messages in %s", qName)

	done := make(chan bool)

	go func() {
		for d := range msgs {
			w.processMessage(ctx, d)
		}
		done <- true
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received. Canceling consumer...")

	if err := ch.Cancel("subscription-worker-1", false); err != nil {
		log.Printf("Error canceling consumer: %v", err)
	}

	log.Println("Worker exiting")
	return nil
}

func (w *SubscriptionWorker) processMessage(ctx context.Context, d amqp.Delivery) {
	var event rabbitmq.SubscriptionEvent
	if err := json.Unmarshal(d.Body, &event); err != nil {
		log.Printf("Invalid event payload, rejecting: %v", err)
		d.Reject(false)
		return
	}

	if event.SessionID == "" || event.Reference == "" {
		log.Printf("Incomplete event %s, acknowledging to drop", string(d.Body))
		d.Ack(false)
		return
	}

	w.notificationService.NotifySubscriptionCompleted(
		ctx, event.SessionID, event.Reference, event.PlanID, event.Email, event.Language)

	d.Ack(false)
}
