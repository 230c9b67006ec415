package pricing

import "hotel-portal/internal/pkg/errs"

var (
	ErrNonPositiveQuantity = errs.Validation("Quantity must be at least 1.")
	ErrNegativeRate        = errs.Validation("Price must not be negative.")
)

// Estimate is a client-side price preview. The backend computes the
// authoritative amount.
type Estimate struct {
	Quantity        int64
	UnitPrice       Money
	PriceWithoutTax Money
	Tax             Money
	Total           Money
}

// NewEstimate multiplies quantity by unit price and adds TaxPercent.
func NewEstimate(quantity int64, unit Money) (Estimate, error) {
	if quantity < 1 {
		return Estimate{}, ErrNonPositiveQuantity
	}
	if unit.Cents() < 0 {
		return Estimate{}, ErrNegativeRate
	}
	net := unit.Times(quantity)
	tax := net.Percent(TaxPercent)
	return Estimate{
		Quantity:        quantity,
		UnitPrice:       unit,
		PriceWithoutTax: net,
		Tax:             tax,
		Total:           net.Add(tax),
	}, nil
}
