package ordering

import (
	"context"
	"fmt"
	"sort"

	"github.com/mfowlewebs/dominos-mcp/internal/commerce"
	"github.com/mfowlewebs/dominos-mcp/pkg/types"
)

// categoryByProductType maps the provider's raw product types onto the
// fixed display categories. Several raw sub-categories consolidate into
// Sides; anything unlisted lands in Other.
var categoryByProductType = map[string]types.MenuCategory{
	"Pizza":    types.CategoryPizzas,
	"Pasta":    types.CategoryPastas,
	"Sandwich": types.CategorySandwiches,
	"Bread":    types.CategorySides,
	"Wings":    types.CategorySides,
	"GSalad":   types.CategorySides,
	"Sides":    types.CategorySides,
	"Drinks":   types.CategoryDrinks,
	"Dessert":  types.CategoryDesserts,
}

// GetMenu marks storeID as the selected store and fetches its menu. Any
// store id is accepted, not just ones from the current candidate list, so a
// session can resume from a bare identifier. A structurally incomplete menu
// payload surfaces as commerce.ErrIncompleteMenu, distinguishable from a
// generic provider fault.
func (s *Service) GetMenu(ctx context.Context, storeID string) (*types.Menu, error) {
	if storeID == "" {
		return nil, fmt.Errorf("store id is required")
	}

	// Selection happens before the fetch and sticks even if the fetch
	// fails; last write wins.
	if _, err := s.sessions.SelectStore(storeID); err != nil {
		s.sessions.SetSelectedStore(types.Store{ID: storeID})
	}

	raw, err := s.client.FetchMenu(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("get menu: %w", err)
	}

	menu := buildMenu(storeID, raw)
	s.sessions.RecordMenu(menu)
	s.log.Debug().Str("store_id", storeID).Int("sections", len(menu.Sections)).Msg("recorded menu snapshot")
	return menu, nil
}

// buildMenu shapes the raw provider payload into the categorized menu:
// items grouped into the fixed category order with empty categories
// omitted, variant codes de-duplicated, items sorted by name and variants
// by code for deterministic output.
func buildMenu(storeID string, raw *commerce.RawMenu) *types.Menu {
	grouped := make(map[types.MenuCategory][]types.MenuItem)

	for _, product := range raw.Products {
		category, ok := categoryByProductType[product.ProductType]
		if !ok {
			category = types.CategoryOther
		}

		seen := make(map[string]bool, len(product.Variants))
		variants := make([]types.MenuVariant, 0, len(product.Variants))
		for _, code := range product.Variants {
			if seen[code] {
				continue
			}
			seen[code] = true
			variant, ok := raw.Variants[code]
			if !ok {
				continue
			}
			variants = append(variants, types.MenuVariant{
				Code:  variant.Code,
				Name:  variant.Name,
				Price: variant.Price,
			})
		}
		sort.Slice(variants, func(i, j int) bool {
			return variants[i].Code < variants[j].Code
		})

		grouped[category] = append(grouped[category], types.MenuItem{
			Code:        product.Code,
			Name:        product.Name,
			Description: product.Description,
			Variants:    variants,
		})
	}

	menu := &types.Menu{StoreID: storeID}
	for _, category := range types.CategoryOrder {
		items := grouped[category]
		if len(items) == 0 {
			continue
		}
		sort.Slice(items, func(i, j int) bool {
			if items[i].Name != items[j].Name {
				return items[i].Name < items[j].Name
			}
			return items[i].Code < items[j].Code
		})
		menu.Sections = append(menu.Sections, types.MenuSection{
			Category: category,
			Items:    items,
		})
	}
	return menu
}
