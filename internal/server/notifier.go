package server

import (
	"context"
	"log"

	"github.com/jvai/lily/internal/store"
)

// Notifier is told when a translation result needs human review. Delivery
// transports (push, email) live outside this service.
type Notifier interface {
	ReviewRequested(ctx context.Context, record store.HistoryRecord) error
}

// LogNotifier writes review requests to the process log.
type LogNotifier struct{}

func (n *LogNotifier) ReviewRequested(ctx context.Context, record store.HistoryRecord) error {
	log.Printf("Admin review requested: history=%s source=%s confidence=%s text=%q",
		record.ID, record.Source, record.Confidence, record.SourceText)
	return nil
}
