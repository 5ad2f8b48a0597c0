package handler

import "github.com/shopspring/decimal"

// toDecimalPtr converts an optional JSON number into an optional decimal.
func toDecimalPtr(f *float64) *decimal.Decimal {
	if f == nil {
		return nil
	}
	d := decimal.NewFromFloat(*f)
	return &d
}
