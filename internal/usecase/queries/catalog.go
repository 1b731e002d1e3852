package queries

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"balancestore/internal/domain/catalog"
	"balancestore/internal/pkg/errs"
)

const (
	SortPriceDesc = "price_desc"
	SortPriceAsc  = "price_asc"
	SortNameAsc   = "name_asc"
	SortNameDesc  = "name_desc"

	// CategoryAll disables the category filter.
	CategoryAll = "todas"
)

type CatalogFilter struct {
	Category     string
	DiscountOnly bool
	Sort         string
	Limit        int
}

type CatalogFetcher interface {
	Fetch(ctx context.Context) ([]catalog.RawProduct, error)
}

type CatalogQueries interface {
	// List returns the normalized, filtered, sorted catalog. A fetch
	// failure degrades to an empty listing; it is never an error.
	List(ctx context.Context, filter CatalogFilter) []catalog.Product
	GetByID(ctx context.Context, id string) (*catalog.Product, error)
}

type catalogQueriesImpl struct {
	fetcher CatalogFetcher
	logger  *slog.Logger
}

func NewCatalogQueries(fetcher CatalogFetcher, logger *slog.Logger) CatalogQueries {
	return &catalogQueriesImpl{fetcher: fetcher, logger: logger}
}

func (q *catalogQueriesImpl) List(ctx context.Context, filter CatalogFilter) []catalog.Product {
	products := q.fetchNormalized(ctx)

	if filter.DiscountOnly {
		products = filterProducts(products, catalog.Product.HasDiscount)
	}

	if cat := strings.ToLower(strings.TrimSpace(filter.Category)); cat != "" && cat != CategoryAll {
		products = filterProducts(products, func(p catalog.Product) bool {
			return strings.ToLower(p.Category) == cat
		})
	}

	sortProducts(products, filter.Sort)

	if filter.Limit > 0 && len(products) > filter.Limit {
		products = products[:filter.Limit]
	}
	return products
}

func (q *catalogQueriesImpl) GetByID(ctx context.Context, id string) (*catalog.Product, error) {
	for _, p := range q.fetchNormalized(ctx) {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, errs.ErrProductNotFound
}

func (q *catalogQueriesImpl) fetchNormalized(ctx context.Context) []catalog.Product {
	raws, err := q.fetcher.Fetch(ctx)
	if err != nil {
		q.logger.Warn("catalog fetch failed, serving empty catalog", "error", err)
		return nil
	}

	products := make([]catalog.Product, 0, len(raws))
	for _, raw := range raws {
		products = append(products, catalog.Normalize(raw))
	}
	return products
}

func filterProducts(products []catalog.Product, keep func(catalog.Product) bool) []catalog.Product {
	out := products[:0:0]
	for _, p := range products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func sortProducts(products []catalog.Product, order string) {
	switch order {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price() < products[j].Price() })
	case SortNameAsc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Title < products[j].Title })
	case SortNameDesc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Title > products[j].Title })
	default: // price_desc
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price() > products[j].Price() })
	}
}
