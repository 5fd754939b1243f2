package stock_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/stock"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// Apply — entrada, salida y clamp en cero
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_EntradaSumaAlSaldo(t *testing.T) {
	got, err := stock.Apply(dec("10"), entity.MovementTypeEntry, dec("5.5"))
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("15.5")), "entrada debe sumar: got %s", got)
}

func TestApply_SalidaRestaDelSaldo(t *testing.T) {
	got, err := stock.Apply(dec("10"), entity.MovementTypeExit, dec("4"))
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("6")))
}

// Una salida mayor al saldo se acepta y el saldo queda exactamente en cero,
// nunca negativo.
func TestApply_SalidaExcedida_ClampEnCero(t *testing.T) {
	got, err := stock.Apply(dec("5"), entity.MovementTypeExit, dec("8"))
	require.NoError(t, err)
	assert.True(t, got.IsZero(), "el saldo debe quedar exactamente en 0, got %s", got)
}

func TestApply_SalidaIgualAlSaldo_QuedaEnCero(t *testing.T) {
	got, err := stock.Apply(dec("7"), entity.MovementTypeExit, dec("7"))
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestApply_CantidadCeroONegativa_Rechazada(t *testing.T) {
	_, err := stock.Apply(dec("10"), entity.MovementTypeEntry, decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = stock.Apply(dec("10"), entity.MovementTypeExit, dec("-3"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApply_TipoInvalido_Rechazado(t *testing.T) {
	_, err := stock.Apply(dec("10"), "transfer", dec("1"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Replay — pliegue con clamp, no suma con signo
// ──────────────────────────────────────────────────────────────────────────────

func mov(movType, qty string) *entity.StockMovement {
	return &entity.StockMovement{Type: movType, Quantity: dec(qty)}
}

func TestReplay_HistorialSimple(t *testing.T) {
	got := stock.Replay([]*entity.StockMovement{
		mov(entity.MovementTypeEntry, "10"),
		mov(entity.MovementTypeExit, "3"),
		mov(entity.MovementTypeEntry, "2"),
	})
	assert.True(t, got.Equal(dec("9")))
}

// Con una salida excedida en el historial, el resultado del pliegue con clamp
// difiere de la suma con signo: el clamp descarta el excedente en ese paso.
func TestReplay_ClampPasoAPaso_DifiereDeSumaConSigno(t *testing.T) {
	movs := []*entity.StockMovement{
		mov(entity.MovementTypeEntry, "5"),
		mov(entity.MovementTypeExit, "8"), // clamp: saldo 0, no -3
		mov(entity.MovementTypeEntry, "4"),
	}
	got := stock.Replay(movs)

	// Suma con signo: 5 - 8 + 4 = 1. Pliegue con clamp: 0 + 4 = 4.
	assert.True(t, got.Equal(dec("4")), "el pliegue debe replicar el clamp: got %s", got)
}

func TestReplay_HistorialVacio_SaldoCero(t *testing.T) {
	assert.True(t, stock.Replay(nil).IsZero())
}

func TestReplay_NuncaNegativo(t *testing.T) {
	got := stock.Replay([]*entity.StockMovement{
		mov(entity.MovementTypeExit, "100"),
		mov(entity.MovementTypeExit, "50"),
	})
	assert.True(t, got.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// IsLowStock — umbral no estricto
// ──────────────────────────────────────────────────────────────────────────────

func TestIsLowStock_UmbralNoEstricto(t *testing.T) {
	cases := []struct {
		name    string
		current string
		minimum string
		want    bool
	}{
		{"por debajo del mínimo", "3", "10", true},
		{"exactamente en el mínimo", "10", "10", true},
		{"por encima del mínimo", "10.01", "10", false},
		{"saldo cero con mínimo cero", "0", "0", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := &entity.Product{CurrentQuantity: dec(tc.current), MinimumQuantity: dec(tc.minimum)}
			assert.Equal(t, tc.want, stock.IsLowStock(p))
		})
	}
}

func TestIsValidMovementType(t *testing.T) {
	assert.True(t, stock.IsValidMovementType("entry"))
	assert.True(t, stock.IsValidMovementType("exit"))
	assert.False(t, stock.IsValidMovementType(""))
	assert.False(t, stock.IsValidMovementType("ENTRY"))
	assert.False(t, stock.IsValidMovementType("adjustment"))
}
