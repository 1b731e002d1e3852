package catalog

// Product is the single internal shape every remote catalog record is
// normalized into before it reaches listings or the cart.
type Product struct {
	ID              string
	Title           string
	Description     string
	OriginalPrice   *float64
	FinalPrice      *float64
	DiscountPercent float64
	Image           string
	Category        string
	Stock           int
}

// Price is the amount charged when the product enters the cart.
func (p Product) Price() float64 {
	if p.FinalPrice != nil {
		return *p.FinalPrice
	}
	return 0
}

func (p Product) HasDiscount() bool {
	return p.DiscountPercent > 0
}
