// Soak drives a randomized sequence of reservations and staff stock
// adjustments against a seeded in-memory catalog and checks that stock
// never goes negative and that every unit is accounted for.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/rl1809/retail-store/internal/adapter/storage"
	"github.com/rl1809/retail-store/internal/core/domain"
	"github.com/rl1809/retail-store/internal/core/service"
)

func main() {
	ops := flag.Int("ops", 10000, "number of operations to run")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	ctx := context.Background()

	store := storage.NewMemoryAdapter(storage.SeedCatalog())
	orders := service.NewOrderService(store)
	stock := service.NewStockService(store)

	products, err := store.ListAll(ctx)
	if err != nil {
		log.Fatalf("list catalog: %v", err)
	}

	// Per-product ledger: seeded stock plus increases must equal current
	// stock plus reservations plus decreases at every step.
	seeded := make([]int, len(products))
	reserved := make([]int, len(products))
	increased := make([]int, len(products))
	decreased := make([]int, len(products))
	for i, p := range products {
		seeded[i] = p.Stock
	}

	cart := domain.NewCart()
	var reserveOK, reserveRejected, adjustOK, adjustRejected, violations int

	for i := 0; i < *ops; i++ {
		ref := domain.ProductRef(rng.Intn(len(products)))
		amount := rng.Intn(8) - 1 // occasionally zero or negative on purpose

		switch rng.Intn(3) {
		case 0:
			if _, err := orders.Reserve(ctx, cart, ref, amount); err != nil {
				if !errors.Is(err, domain.ErrInvalidQuantity) {
					log.Fatalf("op %d: unexpected reserve error: %v", i, err)
				}
				reserveRejected++
			} else {
				reserved[ref] += amount
				reserveOK++
			}
		case 1:
			if _, err := stock.Increase(ctx, ref, amount); err != nil {
				if !errors.Is(err, domain.ErrInvalidQuantity) {
					log.Fatalf("op %d: unexpected increase error: %v", i, err)
				}
				adjustRejected++
			} else {
				increased[ref] += amount
				adjustOK++
			}
		case 2:
			if _, err := stock.Decrease(ctx, ref, amount); err != nil {
				if !errors.Is(err, domain.ErrInvalidQuantity) && !errors.Is(err, domain.ErrInsufficientStock) {
					log.Fatalf("op %d: unexpected decrease error: %v", i, err)
				}
				adjustRejected++
			} else {
				decreased[ref] += amount
				adjustOK++
			}
		}

		current, err := store.GetByRef(ctx, ref)
		if err != nil {
			log.Fatalf("op %d: get product: %v", i, err)
		}
		if current.Stock < 0 {
			fmt.Printf("VIOLATION at op %d: %s stock %d\n", i, current.Name, current.Stock)
			violations++
		}
		if got, want := current.Stock, seeded[ref]+increased[ref]-reserved[ref]-decreased[ref]; got != want {
			fmt.Printf("VIOLATION at op %d: %s stock %d, ledger says %d\n", i, current.Name, got, want)
			violations++
		}
	}

	receiptTotal := "0.00"
	if receipt, err := orders.Checkout(cart); err == nil {
		receiptTotal = receipt.Total.StringFixed(2)
	}

	fmt.Println("========== SOAK RESULTS ==========")
	fmt.Printf("Operations:         %d\n", *ops)
	fmt.Printf("Reservations:       %d ok, %d rejected\n", reserveOK, reserveRejected)
	fmt.Printf("Adjustments:        %d ok, %d rejected\n", adjustOK, adjustRejected)
	fmt.Printf("Cart total:         $%s\n", receiptTotal)
	fmt.Printf("Violations:         %d\n", violations)

	if violations > 0 {
		os.Exit(1)
	}
}
