package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// NotificationSender is whatever delivers the admin notification for a
// lead event (SMTP in production).
type NotificationSender interface {
	SendLeadCaptured(name, email string) error
	SendOutreachSent(name, email string) error
}

type Worker struct {
	Channel  *amqp.Channel
	Notifier NotificationSender
}

func NewWorker(ch *amqp.Channel, notifier NotificationSender) *Worker {
	return &Worker{
		Channel:  ch,
		Notifier: notifier,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("❌ [WORKER] failed to register RabbitMQ consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var event LeadEvent
			if err := json.Unmarshal(d.Body, &event); err != nil {
				log.Printf("❌ [WORKER] invalid JSON: %s", err)
				// Malformed message, reject without requeue so the
				// queue does not jam.
				d.Nack(false, false)
				continue
			}

			log.Printf("📥 [WORKER] %s for lead %s", event.Event, event.LeadID)

			if err := w.process(event); err != nil {
				log.Printf("❌ [WORKER] notification failed for %s: %v", event.LeadID, err)
				d.Nack(false, false)
				continue
			}

			d.Ack(false)
		}
	}()

	log.Printf("👷 [WORKER] consuming %s", queueName)
	<-forever
}

func (w *Worker) process(event LeadEvent) error {
	switch event.Event {
	case EventLeadCaptured:
		return w.Notifier.SendLeadCaptured(event.Name, event.Email)
	case EventLeadOutreachSent:
		return w.Notifier.SendOutreachSent(event.Name, event.Email)
	default:
		// lead.scored needs no mail today
		return nil
	}
}
