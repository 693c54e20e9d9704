package interfaces

import "order-assistant/internal/auditlog"

// AuditLogger receives one entry per processed command.
type AuditLogger interface {
	Write(level auditlog.Level, msg string) error
	Command(user, command, result string) error
}
