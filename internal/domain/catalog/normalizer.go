package catalog

import (
	"fmt"

	"github.com/google/uuid"
)

const (
	DefaultTitle    = "Producto"
	DefaultCategory = "otros"
	DefaultStock    = 10
)

// RawProduct mirrors the heterogeneous record shapes the remote catalog
// returns. Field pairs exist because the service mixes Spanish and English
// keys depending on which backend seeded the product.
type RawProduct struct {
	ID              any      `json:"id,omitempty"`
	AltID           any      `json:"_id,omitempty"`
	Nombre          *string  `json:"nombre,omitempty"`
	Title           *string  `json:"title,omitempty"`
	Descripcion     *string  `json:"descripcion,omitempty"`
	Description     *string  `json:"description,omitempty"`
	Precio          *float64 `json:"precio,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	Descuento       *float64 `json:"descuento,omitempty"`
	Discount        *float64 `json:"discount,omitempty"`
	PrecioFinal     *float64 `json:"precioFinal,omitempty"`
	FinalPrice      *float64 `json:"finalPrice,omitempty"`
	Imagen          *string  `json:"imagen,omitempty"`
	Image           any      `json:"image,omitempty"`
	Images          []string `json:"images,omitempty"`
	Categoria       *string  `json:"categoria,omitempty"`
	Category        *string  `json:"category,omitempty"`
	Tipo            *string  `json:"tipo,omitempty"`
	Stock           *int     `json:"stock,omitempty"`
	StockDisponible *int     `json:"stockDisponible,omitempty"`
}

// Normalize maps a raw record into a Product. Precedence per field is part
// of the contract: Spanish key first, English key second, then the default.
// Only absent keys fall through; an empty string present in the record is
// kept as-is.
func Normalize(raw RawProduct) Product {
	title := DefaultTitle
	if s := firstString(raw.Nombre, raw.Title); s != nil {
		title = *s
	}

	var description string
	if s := firstString(raw.Descripcion, raw.Description); s != nil {
		description = *s
	}

	originalPrice := firstFloat(raw.Precio, raw.Price)

	var discount float64
	if d := firstFloat(raw.Descuento, raw.Discount); d != nil {
		discount = *d
	}

	finalPrice := firstFloat(raw.PrecioFinal, raw.FinalPrice)
	if finalPrice == nil {
		finalPrice = originalPrice
	}

	category := DefaultCategory
	if s := firstString(raw.Categoria, raw.Category, raw.Tipo); s != nil {
		category = *s
	}

	stock := DefaultStock
	if s := firstInt(raw.Stock, raw.StockDisponible); s != nil {
		stock = *s
	}

	return Product{
		ID:              resolveID(raw),
		Title:           title,
		Description:     description,
		OriginalPrice:   originalPrice,
		FinalPrice:      finalPrice,
		DiscountPercent: discount,
		Image:           resolveImage(raw),
		Category:        category,
		Stock:           stock,
	}
}

// resolveID prefers id, then _id, then generates a pseudo-random fallback.
// The fallback is not a uniqueness guarantee, only a listing key.
func resolveID(raw RawProduct) string {
	if s := stringifyID(raw.ID); s != "" {
		return s
	}
	if s := stringifyID(raw.AltID); s != "" {
		return s
	}
	return uuid.NewString()
}

func stringifyID(v any) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return id
	case float64:
		// JSON numbers decode as float64; catalog ids are integral
		return fmt.Sprintf("%.0f", id)
	default:
		return fmt.Sprintf("%v", id)
	}
}

// Image resolution order: direct field, first of the image list, then an
// object carrying a url key.
func resolveImage(raw RawProduct) string {
	if raw.Imagen != nil && *raw.Imagen != "" {
		return *raw.Imagen
	}
	if s, ok := raw.Image.(string); ok && s != "" {
		return s
	}
	if len(raw.Images) > 0 {
		return raw.Images[0]
	}
	if obj, ok := raw.Image.(map[string]any); ok {
		if u, ok := obj["url"].(string); ok {
			return u
		}
	}
	return ""
}

func firstString(candidates ...*string) *string {
	for _, c := range candidates {
		if c != nil {
			return c
		}
	}
	return nil
}

func firstFloat(candidates ...*float64) *float64 {
	for _, c := range candidates {
		if c != nil {
			return c
		}
	}
	return nil
}

func firstInt(candidates ...*int) *int {
	for _, c := range candidates {
		if c != nil {
			return c
		}
	}
	return nil
}
