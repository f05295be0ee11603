package app

import (
	"hostreel_backend/internal/email"
	"hostreel_backend/internal/logger"
)

// MockEmailProvider logs instead of sending. Used when SMTP is not
// configured.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(e *email.Email) error {
	logger.Info("MOCK email", "to", e.To, "subject", e.Subject)
	return nil
}

func (m *MockEmailProvider) Validate() error { return nil }

func (m *MockEmailProvider) Close() error { return nil }
