// seed aplica el esquema (scripts/schema.sql) y carga datos de demostración:
// un usuario admin, categorías y productos con su saldo inicial registrado
// como movimientos de entrada a través del ledger.
//
// Uso: go run ./cmd/seed [ruta/schema.sql]
// Credenciales demo: admin@almacen.local / admin12345
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/infrastructure/postgres"
	"github.com/jhoicas/almacen-api/pkg/config"
)

func main() {
	schemaPath := "scripts/schema.sql"
	if len(os.Args) > 1 {
		schemaPath = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	schema, err := os.ReadFile(schemaPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer esquema %s: %v\n", schemaPath, err)
		os.Exit(1)
	}
	if _, err := pool.Exec(ctx, string(schema)); err != nil {
		fmt.Fprintf(os.Stderr, "Aplicar esquema: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Esquema aplicado")

	profileRepo := postgres.NewProfileRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	ledgerUC := ledger.NewLedgerUseCase(postgres.NewTxRunner(pool), productRepo, movementRepo)

	// Usuario admin (idempotente: si ya existe no se duplica)
	admin, err := profileRepo.GetByEmail("admin@almacen.local")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Buscar admin: %v\n", err)
		os.Exit(1)
	}
	if admin == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin12345"), bcrypt.DefaultCost)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Hash de password: %v\n", err)
			os.Exit(1)
		}
		admin = &entity.Profile{
			ID:           uuid.New().String(),
			Email:        "admin@almacen.local",
			PasswordHash: string(hash),
			FullName:     "Administrador",
			CreatedAt:    time.Now(),
		}
		if err := profileRepo.Create(admin); err != nil {
			fmt.Fprintf(os.Stderr, "Crear admin: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Usuario admin creado: admin@almacen.local / admin12345")
	}

	type seedProduct struct {
		name    string
		unit    string
		initial int64
		minimum int64
	}
	seedData := map[string][]seedProduct{
		"Herramientas": {
			{"Martillo de uña", "unidad", 24, 5},
			{"Destornillador Phillips", "unidad", 40, 10},
		},
		"Materiales": {
			{"Cemento gris 50kg", "bulto", 120, 30},
			{"Arena fina", "m3", 15, 5},
		},
		"Seguridad": {
			{"Casco de obra", "unidad", 8, 10}, // queda en stock bajo a propósito
		},
	}

	for categoryName, prods := range seedData {
		category, err := categoryRepo.GetByName(categoryName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Buscar categoría %s: %v\n", categoryName, err)
			os.Exit(1)
		}
		if category == nil {
			category = &entity.Category{
				ID:        uuid.New().String(),
				Name:      categoryName,
				CreatedAt: time.Now(),
			}
			if err := categoryRepo.Create(category); err != nil {
				fmt.Fprintf(os.Stderr, "Crear categoría %s: %v\n", categoryName, err)
				os.Exit(1)
			}
		}
		for _, sp := range prods {
			now := time.Now()
			product := &entity.Product{
				ID:              uuid.New().String(),
				Name:            sp.name,
				CategoryID:      category.ID,
				Unit:            sp.unit,
				CurrentQuantity: decimal.Zero,
				MinimumQuantity: decimal.NewFromInt(sp.minimum),
				CreatedAt:       now,
				UpdatedAt:       now,
			}
			if err := productRepo.Create(product); err != nil {
				fmt.Fprintf(os.Stderr, "Crear producto %s: %v\n", sp.name, err)
				os.Exit(1)
			}
			_, err := ledgerUC.RegisterMovement(ctx, admin.ID, dto.RegisterMovementRequest{
				ProductID:         product.ID,
				Type:              entity.MovementTypeEntry,
				Quantity:          decimal.NewFromInt(sp.initial),
				ResponsibleUserID: admin.ID,
				Notes:             "saldo inicial",
			})
			if err != nil {
				fmt.Fprintf(os.Stderr, "Saldo inicial de %s: %v\n", sp.name, err)
				os.Exit(1)
			}
			fmt.Printf("Producto creado: %s (%d %s)\n", sp.name, sp.initial, sp.unit)
		}
	}

	fmt.Println("Seed completado")
}
