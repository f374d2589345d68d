package repository

import "github.com/jhoicas/bodega-api/internal/domain/entity"

// AuditLogRepository define el puerto de persistencia para el log de auditoría.
type AuditLogRepository interface {
	Create(log *entity.AuditLog) error
	// List devuelve las entradas en orden cronológico inverso; cada llamada
	// relee el estado actual.
	List() ([]*entity.AuditLog, error)
}
