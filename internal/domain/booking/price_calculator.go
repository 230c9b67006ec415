package booking

import "hotel-portal/internal/domain/pricing"

// Quote previews the price of a stay: nights x nightly rate plus tax.
func Quote(stay Stay, nightlyRate pricing.Money) (pricing.Estimate, error) {
	return pricing.NewEstimate(int64(stay.Nights()), nightlyRate)
}
