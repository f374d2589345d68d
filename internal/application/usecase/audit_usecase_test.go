package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/domain"
)

func TestAuditRecord_CamposVacios_InvalidInput(t *testing.T) {
	uc := NewAuditUseCase(newMemAuditRepo())

	_, err := uc.Record(dto.CreateAuditLogRequest{Username: "", Action: "login"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Record(dto.CreateAuditLogRequest{Username: "maria", Action: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAuditRecord_AgregaEntradaConTimestamp(t *testing.T) {
	uc := NewAuditUseCase(newMemAuditRepo())

	before := time.Now()
	out, err := uc.Record(dto.CreateAuditLogRequest{Username: "maria", Action: "login"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.False(t, out.CreatedAt.Before(before))
}

func TestAuditList_OrdenInversoYReleeEstado(t *testing.T) {
	repo := newMemAuditRepo()
	uc := NewAuditUseCase(repo)

	_, err := uc.Record(dto.CreateAuditLogRequest{Username: "maria", Action: "primera"})
	require.NoError(t, err)
	// Forzar timestamps distintos: la segunda entrada debe quedar primera.
	repo.entries[0].CreatedAt = repo.entries[0].CreatedAt.Add(-time.Minute)
	_, err = uc.Record(dto.CreateAuditLogRequest{Username: "maria", Action: "segunda"})
	require.NoError(t, err)

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "segunda", list[0].Action)

	// Cada llamada relee el estado actual.
	_, err = uc.Record(dto.CreateAuditLogRequest{Username: "maria", Action: "tercera"})
	require.NoError(t, err)
	list, err = uc.List()
	require.NoError(t, err)
	assert.Len(t, list, 3)
}
