package domain

import (
	"errors"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrDuplicate        = errors.New("recurso duplicado")
	ErrInvalidReference = errors.New("referencia inválida")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrForbidden        = errors.New("acceso denegado")
	ErrConflict         = errors.New("conflicto con el estado actual")
)

// DuplicateFieldsError indica qué campos de un proveedor colisionan con filas
// existentes (suppliername, phone, email, de forma independiente). El mensaje
// enumera los campos para que el cliente sepa exactamente qué corregir.
type DuplicateFieldsError struct {
	Fields []string
}

func (e *DuplicateFieldsError) Error() string {
	return strings.Join(e.Fields, ", ") + " ya registrado(s) en otro proveedor"
}

// Unwrap permite que errors.Is(err, ErrDuplicate) siga funcionando en los handlers.
func (e *DuplicateFieldsError) Unwrap() error { return ErrDuplicate }
