package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

func TestCategoryCreate_NombreUnico(t *testing.T) {
	repo := newFakeCategoryRepo(nil)
	uc := usecase.NewCategoryUseCase(repo)

	out, err := uc.Create(dto.CreateCategoryRequest{Name: "Herramientas"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Herramientas", out.Name)

	_, err = uc.Create(dto.CreateCategoryRequest{Name: "Herramientas"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCategoryCreate_NombreVacio_Rechazado(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo(nil))
	_, err := uc.Create(dto.CreateCategoryRequest{Name: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCategoryUpdate_RenombreADuplicado_Rechazado(t *testing.T) {
	repo := newFakeCategoryRepo(nil)
	uc := usecase.NewCategoryUseCase(repo)

	a, err := uc.Create(dto.CreateCategoryRequest{Name: "Materiales"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateCategoryRequest{Name: "Seguridad"})
	require.NoError(t, err)

	nuevo := "Seguridad"
	_, err = uc.Update(a.ID, dto.UpdateCategoryRequest{Name: &nuevo})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCategoryUpdate_Inexistente_NotFound(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo(nil))
	nombre := "X"
	_, err := uc.Update("no-existe", dto.UpdateCategoryRequest{Name: &nombre})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Eliminar una categoría no elimina sus productos: quedan sin categoría
// y conservan saldo e historial.
func TestCategoryDelete_ProductosQuedanSinCategoria(t *testing.T) {
	productRepo := newFakeProductRepo()
	categoryRepo := newFakeCategoryRepo(productRepo)
	uc := usecase.NewCategoryUseCase(categoryRepo)

	cat, err := uc.Create(dto.CreateCategoryRequest{Name: "Herramientas"})
	require.NoError(t, err)

	now := time.Now()
	require.NoError(t, productRepo.Create(&entity.Product{
		ID:              "p1",
		Name:            "Martillo",
		CategoryID:      cat.ID,
		Unit:            "unidad",
		CurrentQuantity: decimal.NewFromInt(12),
		CreatedAt:       now,
		UpdatedAt:       now,
	}))

	require.NoError(t, uc.Delete(cat.ID))

	p, err := productRepo.GetByID("p1")
	require.NoError(t, err)
	require.NotNil(t, p, "el producto debe persistir tras eliminar su categoría")
	assert.Empty(t, p.CategoryID, "la referencia a la categoría debe quedar vacía")
	assert.True(t, p.CurrentQuantity.Equal(decimal.NewFromInt(12)), "el saldo no debe cambiar")
}

func TestCategoryDelete_Inexistente_NotFound(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo(nil))
	assert.ErrorIs(t, uc.Delete("no-existe"), domain.ErrNotFound)
}
