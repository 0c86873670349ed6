package notify

import (
	"github.com/govindweb777/erp-sales-backend/internal/application/auth"
	"github.com/govindweb777/erp-sales-backend/pkg/logger"
)

var _ auth.Mailer = (*LogMailer)(nil)

// LogMailer implementación de desarrollo del Mailer: escribe el token de
// reseteo en el log en lugar de enviar correo. En producción se reemplaza por
// un proveedor SMTP real sin tocar el caso de uso.
type LogMailer struct {
	log *logger.Logger
}

// NewLogMailer construye el mailer de log.
func NewLogMailer(log *logger.Logger) *LogMailer {
	return &LogMailer{log: log}
}

// SendPasswordReset loguea el token de reseteo para el email dado.
func (m *LogMailer) SendPasswordReset(email, token string) error {
	m.log.Info().
		Str("email", email).
		Str("reset_token", token).
		Msg("password reset solicitado")
	return nil
}
