package pricing

import "math"

// TaxRate is the fixed value-added tax (IVA) applied at checkout.
const TaxRate = 0.19

// Breakdown carries every figure shown on the boleta. DiscountAmount and
// Tax are rounded independently; Subtotal, Net and GrandTotal are not.
// That rounding order is a compatibility contract with the boleta view.
type Breakdown struct {
	Subtotal       float64
	DiscountAmount int64
	Net            float64
	Tax            int64
	GrandTotal     float64
}

type Calculator struct {
	taxRate float64
}

func NewCalculator() *Calculator {
	return &Calculator{taxRate: TaxRate}
}

// Calculate derives the full breakdown from a raw subtotal and the coupon
// percentage (0 when no valid coupon is applied).
func (c *Calculator) Calculate(subtotal, percentOff float64) Breakdown {
	var discount int64
	if percentOff > 0 {
		discount = int64(math.Round(subtotal * percentOff / 100))
	}

	net := subtotal - float64(discount)
	tax := int64(math.Round(net * c.taxRate))

	return Breakdown{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		Net:            net,
		Tax:            tax,
		GrandTotal:     net + float64(tax),
	}
}

// DisplayTotal is the simplified figure shown on the pay button. It applies
// the coupon but no tax, so it differs from GrandTotal.
func (c *Calculator) DisplayTotal(subtotal float64, couponApplied bool) float64 {
	if couponApplied {
		return subtotal * 0.9
	}
	return subtotal
}
