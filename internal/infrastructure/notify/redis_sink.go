package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	appledger "github.com/govindweb777/erp-sales-backend/internal/application/ledger"
)

var _ appledger.NotificationSink = (*RedisSink)(nil)

// RedisSink publica eventos de documentos por Redis pub/sub. Cada evento sale
// por dos canales: el de la empresa (todos los paneles) y el de la sucursal
// (solo los usuarios de esa sucursal suscriben el suyo).
type RedisSink struct {
	client *redis.Client
}

// NewRedisSink construye el sink sobre un cliente ya conectado.
func NewRedisSink(client *redis.Client) *RedisSink {
	return &RedisSink{client: client}
}

// CompanyChannel nombre del canal pub/sub de una empresa.
func CompanyChannel(companyID string) string {
	return "erp:company:" + companyID
}

// BranchChannel nombre del canal pub/sub de una sucursal.
func BranchChannel(branchID string) string {
	return "erp:branch:" + branchID
}

// Publish serializa el evento y lo publica en ambos canales.
func (s *RedisSink) Publish(ctx context.Context, event appledger.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if err := s.client.Publish(ctx, CompanyChannel(event.CompanyID), payload).Err(); err != nil {
		return fmt.Errorf("publish company event: %w", err)
	}
	if event.BranchID != "" {
		if err := s.client.Publish(ctx, BranchChannel(event.BranchID), payload).Err(); err != nil {
			return fmt.Errorf("publish branch event: %w", err)
		}
	}
	return nil
}

// Close cierra el cliente Redis subyacente.
func (s *RedisSink) Close() error {
	return s.client.Close()
}
