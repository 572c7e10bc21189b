package compare

import "github.com/datar-psa/ordereval/api"

const maxTaxRate = 0.25

// Currencies whose merchants customarily quote totals before tax, so the
// reconciled total may need the tax amount added on top.
var separateTaxCurrencies = map[string]bool{
	"USD": true,
}

// CalculateOrderTotal derives the expected order total from line items,
// shipping, and discounts, adding the tax amount when the record looks like
// it carries tax as a separate line.
func CalculateOrderTotal(rec api.CostFields) float64 {
	var lineItemsCost float64
	for _, li := range rec.LineItems {
		quantity := 1.0
		if li.Quantity != nil {
			quantity = *li.Quantity
		}
		var unitPrice float64
		if li.UnitPrice != nil {
			unitPrice = *li.UnitPrice
		}
		lineItemsCost += quantity * unitPrice
	}

	var orderCost float64
	if rec.ShippingTotal != nil {
		orderCost = *rec.ShippingTotal
	}

	var discounts float64
	for _, d := range []*float64{rec.Coupon, rec.Discount, rec.GiftCard} {
		if d != nil {
			discounts += *d
		}
	}

	total := lineItemsCost + orderCost - discounts
	if HasSeparateTaxLineItem(rec, total) && rec.TotalTaxAmount != nil {
		total += *rec.TotalTaxAmount
	}
	return total
}

// HasSeparateTaxLineItem decides whether the stated total already includes
// tax. calculatedTotal is the pre-tax total derived from the record. The
// zero checks double as division-by-zero guards for the tax rate.
func HasSeparateTaxLineItem(rec api.CostFields, calculatedTotal float64) bool {
	if rec.Currency != nil && !separateTaxCurrencies[*rec.Currency] {
		return true
	}
	if len(rec.LineItems) == 0 {
		return false
	}
	if rec.TotalTaxAmount == nil || *rec.TotalTaxAmount == 0 {
		return true
	}
	if rec.TotalAmount == nil || *rec.TotalAmount == 0 {
		return true
	}
	if *rec.TotalTaxAmount / *rec.TotalAmount > maxTaxRate {
		return false
	}
	return calculatedTotal <= *rec.TotalAmount
}
