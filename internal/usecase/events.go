package usecase

import (
	"context"

	"github.com/ideas26/leadflow-api/internal/infra/queue"
)

// LeadEventFanout delivers a lead event to every registered sink: the
// RabbitMQ producer for out-of-process consumers and the stats cache for
// in-process invalidation. Delivery stops at the first failing sink so the
// caller can log it; sinks must tolerate redelivery.
type LeadEventFanout struct {
	Sinks []queue.LeadEventPublisherInterface
}

func NewLeadEventFanout(sinks ...queue.LeadEventPublisherInterface) *LeadEventFanout {
	return &LeadEventFanout{Sinks: sinks}
}

func (f *LeadEventFanout) PublishLeadEvent(ctx context.Context, event queue.LeadEvent) error {
	for _, sink := range f.Sinks {
		if err := sink.PublishLeadEvent(ctx, event); err != nil {
			return err
		}
	}
	return nil
}
