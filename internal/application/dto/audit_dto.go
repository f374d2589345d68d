package dto

import "time"

// CreateAuditLogRequest entrada para registrar una acción en el log.
type CreateAuditLogRequest struct {
	Username string `json:"username" validate:"required"`
	Action   string `json:"action" validate:"required"`
}

// AuditLogResponse salida de una entrada del log.
type AuditLogResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Action    string    `json:"action"`
	CreatedAt time.Time `json:"created_at"`
}
