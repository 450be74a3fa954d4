package core

import (
	"github.com/voyagehub/payment-ledger/internal/domain/port/core"
)

// MockLogger is a no-op Logger for tests
type MockLogger struct {
	level core.LogLevel
}

// NewMockLogger creates a new mock logger
func NewMockLogger() *MockLogger {
	return &MockLogger{level: core.LogLevelDebug}
}

func (l *MockLogger) SetLevel(level core.LogLevel) {
	l.level = level
}

func (l *MockLogger) GetLevel() core.LogLevel {
	return l.level
}

func (l *MockLogger) Debug(message string, fields map[string]any) {}

func (l *MockLogger) Info(message string, fields map[string]any) {}

func (l *MockLogger) Warn(message string, fields map[string]any) {}

func (l *MockLogger) Error(message string, fields map[string]any) {}

func (l *MockLogger) Flush() error {
	return nil
}
