// Package cli is the interactive terminal surface of the store. It owns
// prompting, parsing, coloring, and screen handling; the core services
// only ever see validated, typed values.
package cli

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	"github.com/rl1809/retail-store/internal/core/domain"
	"github.com/rl1809/retail-store/internal/core/service"
	"github.com/rl1809/retail-store/internal/port"
)

type Session struct {
	catalog *service.CatalogService
	orders  *service.OrderService
	stock   *service.StockService
	gate    port.AuthGate
	prompt  *Prompter
	render  *Renderer
	logger  *slog.Logger
}

func NewSession(
	catalog *service.CatalogService,
	orders *service.OrderService,
	stock *service.StockService,
	gate port.AuthGate,
	prompt *Prompter,
	render *Renderer,
	logger *slog.Logger,
) *Session {
	return &Session{
		catalog: catalog,
		orders:  orders,
		stock:   stock,
		gate:    gate,
		prompt:  prompt,
		render:  render,
		logger:  logger,
	}
}

// Run drives the role menu until the user exits, the input stream ends,
// or ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if s.prompt.EOF() {
			return nil
		}

		s.render.ClearScreen()
		headingStyle.Fprintln(s.render.out, "\n=== Welcome to the PC Hardware Store! ===")
		role := s.prompt.ReadInt("1. Customer\n2. Staff\n3. Exit\nChoose your role: ")

		switch role {
		case 1:
			s.customerSession(ctx)
		case 2:
			s.staffSession(ctx)
		case 3:
			successStyle.Fprintln(s.render.out, "Exiting the system. Goodbye!")
			return nil
		default:
			if s.prompt.EOF() {
				return nil
			}
			errorStyle.Fprintln(s.render.out, "Invalid choice. Please try again.")
		}
	}
}

// customerSession runs one browse-and-buy session. The cart lives only
// for this session; stock already reserved into it stays debited even
// if the customer walks away before checkout.
func (s *Session) customerSession(ctx context.Context) {
	cart := domain.NewCart()

	for !s.prompt.EOF() {
		categories, err := s.catalog.UniqueCategories(ctx)
		if err != nil {
			s.reportError(err)
			break
		}
		s.render.Categories(categories)

		choice := s.prompt.ReadInt("\nEnter the category number to browse or 0 to checkout: ")
		s.render.ClearScreen()
		if choice == 0 {
			break
		}
		if choice < 1 || choice > len(categories) {
			errorStyle.Fprintln(s.render.out, "Invalid category number.")
			continue
		}
		selected := categories[choice-1]

		products, err := s.catalog.ListAll(ctx)
		if err != nil {
			s.reportError(err)
			break
		}
		refs, err := s.catalog.ProductsInCategory(ctx, selected)
		if err != nil {
			s.reportError(err)
			break
		}
		s.render.CategoryProducts(selected, products, refs)
		if len(refs) == 0 {
			errorStyle.Fprintln(s.render.out, "\nReturning to category menu.")
			continue
		}

		productChoice := s.prompt.ReadInt("\nEnter the product number to add to cart (0 to go back): ")
		s.render.ClearScreen()
		if productChoice == 0 {
			continue
		}
		ref := domain.ProductRef(productChoice - 1)
		if !slices.Contains(refs, ref) {
			errorStyle.Fprintln(s.render.out, "Invalid product number for the selected category.")
			continue
		}

		quantity := s.prompt.ReadInt("Enter the quantity: ")
		s.render.ClearScreen()

		entry, err := s.orders.Reserve(ctx, cart, ref, quantity)
		if err != nil {
			s.reportError(err)
			continue
		}
		s.logger.Info("reserved", "product", entry.Name, "quantity", entry.Quantity)
		successStyle.Fprintf(s.render.out, "%d %s(s) added to cart.\n", entry.Quantity, entry.Name)
		s.render.Cart(cart)

		addMore := s.prompt.ReadInt("\nDo you want to add more items? (1 for Yes, 0 for Checkout): ")
		if addMore == 0 {
			break
		}
		s.render.ClearScreen()
	}

	s.checkout(cart)
}

func (s *Session) checkout(cart *domain.Cart) {
	receipt, err := s.orders.Checkout(cart)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCart) {
			errorStyle.Fprintln(s.render.out, "\nYour cart is empty. Returning to the main menu.")
			return
		}
		s.reportError(err)
		return
	}

	s.logger.Info("checkout", "receipt_id", receipt.ID, "lines", len(receipt.Lines), "total", receipt.Total.StringFixed(2))
	s.render.Receipt(receipt)
	s.prompt.Pause()
}

func (s *Session) staffSession(ctx context.Context) {
	if !s.login() {
		s.prompt.Pause()
		s.render.ClearScreen()
		return
	}

	for !s.prompt.EOF() {
		s.render.ClearScreen()
		sectionStyle.Fprintln(s.render.out, "\n--- Staff Management Menu ---")
		choice := s.prompt.ReadInt("1. Manage Existing Product Stock (Add/Decrease)\n2. Add New Product (and New Category if applicable)\n0. Logout / Return to Main Menu\nChoose action: ")

		switch choice {
		case 0:
			s.render.ClearScreen()
			return
		case 1:
			s.manageStock(ctx)
		case 2:
			s.addProduct(ctx)
		default:
			errorStyle.Fprintln(s.render.out, "Invalid choice.")
			s.prompt.Pause()
		}
	}
}

func (s *Session) login() bool {
	sectionStyle.Fprintln(s.render.out, "\n--- Staff Login ---")
	username := s.prompt.ReadLine("Enter staff username: ")
	password := s.prompt.ReadLine("Enter staff password: ")

	if !s.gate.Verify(username, password) {
		s.logger.Warn("staff login rejected", "username", username)
		errorStyle.Fprintln(s.render.out, "Invalid credentials. Please try again.")
		return false
	}

	s.logger.Info("staff login accepted", "username", username)
	successStyle.Fprintln(s.render.out, "Login successful. Welcome!")
	return true
}

func (s *Session) manageStock(ctx context.Context) {
	for !s.prompt.EOF() {
		s.render.ClearScreen()
		products, err := s.catalog.ListAll(ctx)
		if err != nil {
			s.reportError(err)
			return
		}
		s.render.Catalog(products)

		choice := s.prompt.ReadInt("\nEnter the product number to modify stock (0 to go back): ")
		if choice == 0 {
			s.render.ClearScreen()
			return
		}
		if choice < 1 || choice > len(products) {
			errorStyle.Fprintln(s.render.out, "Invalid product number.")
			continue
		}
		ref := domain.ProductRef(choice - 1)
		p := products[ref]

		promptStyle.Fprintf(s.render.out, "Product: %s | Current Stock: %d\n", p.Name, p.Stock)
		action := s.prompt.ReadInt("Enter 1 to Add stock or 2 to Decrease stock (0 to cancel): ")
		if action == 0 {
			continue
		}
		if action != 1 && action != 2 {
			errorStyle.Fprintln(s.render.out, "Invalid action. Please try again.")
			continue
		}

		amount := s.prompt.ReadInt("Enter the quantity: ")

		var newStock int
		if action == 1 {
			newStock, err = s.stock.Increase(ctx, ref, amount)
		} else {
			newStock, err = s.stock.Decrease(ctx, ref, amount)
		}
		if err != nil {
			s.reportError(err)
			s.prompt.Pause()
			continue
		}

		s.logger.Info("stock adjusted", "product", p.Name, "new_stock", newStock)
		if action == 1 {
			successStyle.Fprintf(s.render.out, "Stock for %s increased by %d.\n", p.Name, amount)
		} else {
			successStyle.Fprintf(s.render.out, "Stock for %s decreased by %d.\n", p.Name, amount)
		}
		s.prompt.Pause()
	}
}

func (s *Session) addProduct(ctx context.Context) {
	s.render.ClearScreen()
	sectionStyle.Fprintln(s.render.out, "\n--- Add New Product ---")

	name := s.prompt.ReadLine("Enter Product Name: ")
	category := s.prompt.ReadLine("Enter Product Category (e.g., SSD, Monitor): ")
	price := s.prompt.ReadDecimal("Enter Product Price: $")
	stock := s.prompt.ReadInt("Enter Initial Stock Quantity: ")

	if _, err := s.stock.AddProduct(ctx, name, category, price, stock); err != nil {
		s.reportError(err)
		return
	}

	s.logger.Info("product added", "name", name, "category", category)
	successStyle.Fprintf(s.render.out, "\nSuccessfully added new product: %s to category: %s.\n", name, category)
	s.prompt.Pause()
}

// reportError maps core errors onto user-facing messages. Every core
// error is recoverable; the session continues after reporting.
func (s *Session) reportError(err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity):
		errorStyle.Fprintf(s.render.out, "Invalid quantity or insufficient stock. (%v)\n", err)
	case errors.Is(err, domain.ErrInsufficientStock):
		errorStyle.Fprintf(s.render.out, "Error: You cannot decrease more stock than what is available. (%v)\n", err)
	case errors.Is(err, domain.ErrInvalidProduct):
		errorStyle.Fprintf(s.render.out, "Product addition failed. (%v)\n", err)
	case errors.Is(err, domain.ErrNotFound):
		errorStyle.Fprintln(s.render.out, "Invalid product number.")
	default:
		s.logger.Error("unexpected error", "error", err)
		errorStyle.Fprintf(s.render.out, "Unexpected error: %v\n", err)
	}
}
