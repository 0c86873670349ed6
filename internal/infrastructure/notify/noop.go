package notify

import (
	"context"

	appledger "github.com/govindweb777/erp-sales-backend/internal/application/ledger"
)

var _ appledger.NotificationSink = NoopSink{}

// NoopSink descarta los eventos. Se usa cuando REDIS_ADDR no está configurado.
type NoopSink struct{}

// Publish no hace nada.
func (NoopSink) Publish(context.Context, appledger.Event) error {
	return nil
}
