// seed puebla el documento de inventario con datos de demostración:
// categorías, productos y los usuarios por defecto.
//
// Uso: go run ./cmd/seed [ruta/inventario.json]
// Por defecto usa STORE_PATH o data/inventario.json.
package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-local/internal/application/auth"
	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/application/usecase"
	"github.com/jhoicas/inventario-local/internal/infrastructure/localstore"
	"github.com/jhoicas/inventario-local/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	path := cfg.Store.Path
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	store, err := localstore.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir documento: %v\n", err)
		os.Exit(1)
	}

	productRepo := localstore.NewProductRepository(store)
	categoryRepo := localstore.NewCategoryRepository(store)
	userRepo := localstore.NewUserRepository(store)
	txRunner := localstore.NewTxRunner(store)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{})
	if err := authUC.EnsureDefaultUsers(); err != nil {
		fmt.Fprintf(os.Stderr, "Sembrar usuarios: %v\n", err)
		os.Exit(1)
	}

	categoryUC := usecase.NewCategoryUseCase(categoryRepo, txRunner)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, txRunner)

	categories := []dto.CreateCategoryRequest{
		{Name: "Electrónica", Description: "Equipos electrónicos", Icon: "🖥️", Color: "#FF6B6B"},
		{Name: "Oficina", Description: "Material y mobiliario de oficina", Icon: "🗂️", Color: "#4ECDC4"},
		{Name: "Limpieza", Description: "Insumos de aseo", Icon: "🧹", Color: "#95E1D3"},
	}
	categoryIDs := make([]string, 0, len(categories))
	for _, in := range categories {
		out, err := categoryUC.Create(in)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Crear categoría %q: %v\n", in.Name, err)
			os.Exit(1)
		}
		categoryIDs = append(categoryIDs, out.ID)
		fmt.Printf("✓ Categoría %s (%s)\n", out.Name, out.ID)
	}

	qty := func(v int64) *int64 { return &v }
	products := []dto.CreateProductRequest{
		{
			SKU: "ELEC-MON-001", Name: "Monitor 24\"", Description: "Monitor LED Full HD",
			CategoryID: categoryIDs[0],
			PurchasePrice: decimal.NewFromInt(120), SellPrice: decimal.NewFromInt(180),
			Quantity: 15, MinQuantity: qty(3), MaxQuantity: qty(40),
		},
		{
			SKU: "ELEC-TEC-002", Name: "Teclado mecánico", Description: "Switch azul, layout ES",
			CategoryID: categoryIDs[0],
			PurchasePrice: decimal.NewFromInt(35), SellPrice: decimal.NewFromFloat(59.90),
			Quantity: 25, MinQuantity: qty(5), MaxQuantity: qty(60),
		},
		{
			SKU: "OFIC-SIL-001", Name: "Silla ergonómica", Description: "Respaldo de malla",
			CategoryID: categoryIDs[1],
			PurchasePrice: decimal.NewFromInt(90), SellPrice: decimal.NewFromInt(150),
			Quantity: 8, MinQuantity: qty(2), MaxQuantity: qty(20),
		},
		{
			SKU: "LIMP-DES-001", Name: "Desinfectante 1L", Description: "",
			CategoryID: categoryIDs[2],
			PurchasePrice: decimal.NewFromFloat(2.50), SellPrice: decimal.NewFromFloat(4.99),
			Quantity: 60, MinQuantity: qty(10), MaxQuantity: qty(200),
		},
	}
	for _, in := range products {
		out, err := productUC.Create(in)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Crear producto %q: %v\n", in.SKU, err)
			os.Exit(1)
		}
		fmt.Printf("✓ Producto %s %s (%s)\n", out.SKU, out.Name, out.ID)
	}

	fmt.Printf("Documento sembrado en %s\n", path)
}
