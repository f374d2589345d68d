package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// AuditUseCase registro de auditoría: quién hizo qué y cuándo. Append-only.
type AuditUseCase struct {
	repo repository.AuditLogRepository
}

// NewAuditUseCase construye el caso de uso.
func NewAuditUseCase(repo repository.AuditLogRepository) *AuditUseCase {
	return &AuditUseCase{repo: repo}
}

// Record agrega una entrada con timestamp actual. Username y action son obligatorios.
func (uc *AuditUseCase) Record(in dto.CreateAuditLogRequest) (*dto.AuditLogResponse, error) {
	if in.Username == "" || in.Action == "" {
		return nil, domain.ErrInvalidInput
	}
	entry := &entity.AuditLog{
		ID:        uuid.New().String(),
		Username:  in.Username,
		Action:    in.Action,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(entry); err != nil {
		return nil, err
	}
	return toAuditLogResponse(entry), nil
}

// List devuelve las entradas en orden cronológico inverso, releyendo el estado actual.
func (uc *AuditUseCase) List() ([]dto.AuditLogResponse, error) {
	entries, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.AuditLogResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, *toAuditLogResponse(e))
	}
	return items, nil
}

func toAuditLogResponse(e *entity.AuditLog) *dto.AuditLogResponse {
	if e == nil {
		return nil
	}
	return &dto.AuditLogResponse{
		ID:        e.ID,
		Username:  e.Username,
		Action:    e.Action,
		CreatedAt: e.CreatedAt,
	}
}

// recordAudit registra una acción atribuida a un usuario tras una mutación
// exitosa. Es best-effort: un fallo del log no revierte la mutación, solo se
// deja constancia en el logger.
func recordAudit(repo repository.AuditLogRepository, username, action string) {
	if repo == nil || username == "" {
		return
	}
	err := repo.Create(&entity.AuditLog{
		ID:        uuid.New().String(),
		Username:  username,
		Action:    action,
		CreatedAt: time.Now(),
	})
	if err != nil {
		log.Warn().Err(err).Str("username", username).Str("action", action).Msg("no se pudo registrar la auditoría")
	}
}
