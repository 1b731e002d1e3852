package response

import "balancestore/internal/domain/catalog"

type ProductResponse struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description,omitempty"`
	OriginalPrice   *float64 `json:"originalPrice,omitempty"`
	FinalPrice      float64  `json:"finalPrice"`
	DiscountPercent float64  `json:"discountPercent,omitempty"`
	Image           string   `json:"image,omitempty"`
	Category        string   `json:"category"`
	Stock           int      `json:"stock"`
}

type CatalogResponse struct {
	Total    int               `json:"total"`
	Products []ProductResponse `json:"products"`
}

func NewProductResponse(p catalog.Product) ProductResponse {
	return ProductResponse{
		ID:              p.ID,
		Title:           p.Title,
		Description:     p.Description,
		OriginalPrice:   p.OriginalPrice,
		FinalPrice:      p.Price(),
		DiscountPercent: p.DiscountPercent,
		Image:           p.Image,
		Category:        p.Category,
		Stock:           p.Stock,
	}
}

func NewCatalogResponse(products []catalog.Product) CatalogResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, NewProductResponse(p))
	}
	return CatalogResponse{Total: len(out), Products: out}
}
