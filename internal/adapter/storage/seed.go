package storage

import (
	"github.com/shopspring/decimal"

	"github.com/rl1809/retail-store/internal/core/domain"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// SeedCatalog returns the PC hardware catalog the store opens with.
// Insertion order matters: menu numbers and category order derive from it.
func SeedCatalog() []domain.Product {
	return []domain.Product{
		{Name: "Intel Core i5-14600K", Category: "CPU", Price: price("320.00"), Stock: 15},
		{Name: "AMD Ryzen 7 7800X3D", Category: "CPU", Price: price("450.00"), Stock: 10},
		{Name: "NVIDIA RTX 4070 Ti", Category: "GPU", Price: price("799.99"), Stock: 8},
		{Name: "AMD Radeon RX 7900 XT", Category: "GPU", Price: price("899.99"), Stock: 5},
		{Name: "ASUS ROG Strix B650-E", Category: "Motherboard", Price: price("299.99"), Stock: 12},
		{Name: "MSI MPG Z790 Carbon", Category: "Motherboard", Price: price("399.99"), Stock: 7},
		{Name: "Corsair Vengeance DDR5 32GB", Category: "RAM", Price: price("149.99"), Stock: 25},
		{Name: "G.Skill Trident Z5 DDR5 32GB", Category: "RAM", Price: price("169.99"), Stock: 20},
		{Name: "Noctua NH-D15", Category: "Cooler", Price: price("99.99"), Stock: 18},
		{Name: "be quiet! Dark Rock Pro 5", Category: "Cooler", Price: price("109.99"), Stock: 15},
		{Name: "Corsair RM850x 850W", Category: "Power Supply", Price: price("139.99"), Stock: 10},
		{Name: "Seasonic Focus GX-750 750W", Category: "Power Supply", Price: price("129.99"), Stock: 8},
		{Name: "NZXT H710", Category: "PC Case", Price: price("169.99"), Stock: 6},
		{Name: "Fractal Design Meshify 2", Category: "PC Case", Price: price("159.99"), Stock: 7},
	}
}
