package app

import "heptabet_backend/internal/logger"

// LogEmailProvider stands in for SMTP in local development. The code ends up
// in the server log, which is enough to walk the recovery flow by hand.
type LogEmailProvider struct{}

func (p *LogEmailProvider) SendResetCode(to, name, code string) error {
	logger.Warn("[DEV EMAIL] password reset code", "to", to, "code", code)
	return nil
}
