package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

func intPtr(n int) *int { return &n }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func seedSupplier(e *env, id, name string) {
	e.suppliers.byID[id] = &entity.Supplier{SupplierID: id, Name: name}
}

func createProductReq(productID, supplierID string) dto.CreateProductRequest {
	return dto.CreateProductRequest{
		ProductID:   productID,
		ProductName: "Widget",
		Unit:        "pcs",
		Price:       decPtr("10"),
		Quantity:    intPtr(5),
		SupplierID:  supplierID,
	}
}

func TestProductCreate_ProveedorExistente_CreaYEsRecuperable(t *testing.T) {
	e := newEnv()
	seedSupplier(e, "S1", "Acme")

	out, err := e.productUC.Create(context.Background(), "maria", createProductReq("P1", "S1"))
	require.NoError(t, err)
	assert.Equal(t, "P1", out.ProductID)
	assert.Equal(t, 5, out.Quantity)

	got, err := e.productUC.GetByID("P1")
	require.NoError(t, err)
	assert.Equal(t, "S1", got.SupplierID)
}

func TestProductCreate_ProveedorInexistente_InvalidReferenceSinFila(t *testing.T) {
	e := newEnv()

	_, err := e.productUC.Create(context.Background(), "maria", createProductReq("P1", "no-existe"))
	assert.ErrorIs(t, err, domain.ErrInvalidReference)

	_, err = e.productUC.GetByID("P1")
	assert.ErrorIs(t, err, domain.ErrNotFound, "no debe quedar ninguna fila creada")
}

func TestProductCreate_ProductIDDuplicado_ConflictYFilaOriginalIntacta(t *testing.T) {
	e := newEnv()
	seedSupplier(e, "S1", "Acme")

	_, err := e.productUC.Create(context.Background(), "maria", createProductReq("P1", "S1"))
	require.NoError(t, err)

	dup := createProductReq("P1", "S1")
	dup.ProductName = "Otro"
	_, err = e.productUC.Create(context.Background(), "maria", dup)
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	got, err := e.productUC.GetByID("P1")
	require.NoError(t, err)
	assert.Equal(t, "Widget", got.ProductName, "la fila original no debe modificarse")
}

func TestProductCreate_PrecioNegativo_InvalidInput(t *testing.T) {
	e := newEnv()
	seedSupplier(e, "S1", "Acme")

	in := createProductReq("P1", "S1")
	in.Price = decPtr("-1")
	_, err := e.productUC.Create(context.Background(), "maria", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_PrecioYCantidadCero_EsValido(t *testing.T) {
	e := newEnv()
	seedSupplier(e, "S1", "Acme")

	in := createProductReq("P1", "S1")
	in.Price = decPtr("0")
	in.Quantity = intPtr(0)
	out, err := e.productUC.Create(context.Background(), "maria", in)
	require.NoError(t, err)
	assert.True(t, out.Price.IsZero())
}

func TestProductUpdate_ObjetivoInexistente_NotFound(t *testing.T) {
	e := newEnv()
	seedSupplier(e, "S1", "Acme")

	_, err := e.productUC.Update(context.Background(), "maria", "no-existe", dto.UpdateProductRequest{
		ProductName: "Widget",
		Unit:        "pcs",
		Price:       decPtr("10"),
		Quantity:    intPtr(1),
		SupplierID:  "S1",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUpdate_ProveedorInexistente_InvalidReference(t *testing.T) {
	e := newEnv()
	seedSupplier(e, "S1", "Acme")
	_, err := e.productUC.Create(context.Background(), "maria", createProductReq("P1", "S1"))
	require.NoError(t, err)

	_, err = e.productUC.Update(context.Background(), "maria", "P1", dto.UpdateProductRequest{
		ProductName: "Widget",
		Unit:        "pcs",
		Price:       decPtr("10"),
		Quantity:    intPtr(1),
		SupplierID:  "fantasma",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidReference)
}

func TestProductDelete_DevuelveLaFilaBorrada(t *testing.T) {
	e := newEnv()
	seedSupplier(e, "S1", "Acme")
	_, err := e.productUC.Create(context.Background(), "maria", createProductReq("P1", "S1"))
	require.NoError(t, err)

	deleted, err := e.productUC.Delete(context.Background(), "maria", "P1")
	require.NoError(t, err)
	assert.Equal(t, "Widget", deleted.ProductName)

	_, err = e.productUC.GetByID("P1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductDelete_Inexistente_NotFound(t *testing.T) {
	e := newEnv()
	_, err := e.productUC.Delete(context.Background(), "maria", "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductCreate_RegistraAuditoria(t *testing.T) {
	e := newEnv()
	seedSupplier(e, "S1", "Acme")

	_, err := e.productUC.Create(context.Background(), "maria", createProductReq("P1", "S1"))
	require.NoError(t, err)

	require.Len(t, e.audit.entries, 1)
	assert.Equal(t, "maria", e.audit.entries[0].Username)
	assert.Equal(t, "create_product P1", e.audit.entries[0].Action)
}

func TestProductCreate_AuditoriaCaida_NoAfectaLaMutacion(t *testing.T) {
	e := newEnv()
	seedSupplier(e, "S1", "Acme")
	e.audit.failing = true

	_, err := e.productUC.Create(context.Background(), "maria", createProductReq("P1", "S1"))
	require.NoError(t, err, "el fallo del log de auditoría es best-effort")

	got, err := e.productUC.GetByID("P1")
	require.NoError(t, err)
	assert.Equal(t, "P1", got.ProductID)
}
