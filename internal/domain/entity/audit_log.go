package entity

import "time"

// AuditLog es una entrada del registro de auditoría: quién hizo qué y cuándo.
// Append-only; se consulta en orden cronológico inverso.
type AuditLog struct {
	ID        string
	Username  string
	Action    string
	CreatedAt time.Time
}
