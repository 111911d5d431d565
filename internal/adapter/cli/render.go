package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/rl1809/retail-store/internal/core/domain"
)

var (
	headingStyle = color.New(color.FgBlue, color.Bold)
	sectionStyle = color.New(color.FgCyan, color.Bold)
	promptStyle  = color.New(color.FgYellow)
	errorStyle   = color.New(color.FgRed)
	successStyle = color.New(color.FgGreen)
	numberStyle  = color.New(color.FgBlue)
)

// Renderer formats catalog views, carts, and receipts onto the terminal.
type Renderer struct {
	out io.Writer
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

func (r *Renderer) ClearScreen() {
	fmt.Fprint(r.out, "\033[2J\033[H")
}

func (r *Renderer) Categories(categories []string) {
	headingStyle.Fprintln(r.out, "\nAvailable Categories:")
	for i, c := range categories {
		fmt.Fprintf(r.out, "%d. %s\n", i+1, c)
	}
	fmt.Fprintln(r.out, "0. Back/Checkout")
}

// CategoryProducts lists the given refs under their category heading.
// Each product is shown with its global catalog number, since selection
// is by global position.
func (r *Renderer) CategoryProducts(category string, products []domain.Product, refs []domain.ProductRef) {
	sectionStyle.Fprintf(r.out, "\n--- Products in %s ---\n", category)
	if len(refs) == 0 {
		errorStyle.Fprintln(r.out, "No products found in this category.")
		return
	}
	for _, ref := range refs {
		p := products[ref]
		numberStyle.Fprintf(r.out, "%d. ", int(ref)+1)
		fmt.Fprintf(r.out, "%s - Price: $%s | Stock: %d\n", p.Name, p.Price.StringFixed(2), p.Stock)
	}
}

func (r *Renderer) Catalog(products []domain.Product) {
	sectionStyle.Fprintln(r.out, "\n--- Full Product Catalog ---")
	if len(products) == 0 {
		errorStyle.Fprintln(r.out, "The product catalog is currently empty.")
		return
	}
	for i, p := range products {
		numberStyle.Fprintf(r.out, "%d. ", i+1)
		fmt.Fprintf(r.out, "%s (%s) - Price: $%s | Stock: %d\n", p.Name, p.Category, p.Price.StringFixed(2), p.Stock)
	}
}

func (r *Renderer) Cart(cart *domain.Cart) {
	if cart.IsEmpty() {
		errorStyle.Fprintln(r.out, "Your cart is empty.")
		return
	}
	sectionStyle.Fprintln(r.out, "\n--- Your Cart ---")
	for _, e := range cart.Entries() {
		successStyle.Fprint(r.out, e.Name)
		fmt.Fprintf(r.out, " | Quantity: %d | Unit Price: $%s\n", e.Quantity, e.UnitPrice.StringFixed(2))
	}
}

func (r *Renderer) Receipt(rc *domain.Receipt) {
	sectionStyle.Fprintln(r.out, "\n--- Final Receipt ---")
	for _, line := range rc.Lines {
		fmt.Fprintf(r.out, "%-35sQty: %3d @ $%8s | Subtotal: $%9s\n",
			line.Name, line.Quantity, line.UnitPrice.StringFixed(2), line.LineTotal.StringFixed(2))
	}
	fmt.Fprintln(r.out, strings.Repeat("-", 68))
	fmt.Fprintf(r.out, "%-58s$ %9s\n", "TOTAL AMOUNT DUE:", rc.Total.StringFixed(2))
	successStyle.Fprintln(r.out, "\nThank you for your purchase!")
}
