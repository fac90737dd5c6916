package types

// MenuCategory is one of the fixed display categories items are grouped
// into. Categories render in the order of CategoryOrder; empty categories
// are omitted from the menu.
type MenuCategory string

const (
	CategoryPizzas     MenuCategory = "Pizzas"
	CategoryPastas     MenuCategory = "Pastas"
	CategorySandwiches MenuCategory = "Sandwiches"
	CategorySides      MenuCategory = "Sides"
	CategoryDrinks     MenuCategory = "Drinks"
	CategoryDesserts   MenuCategory = "Desserts"
	CategoryOther      MenuCategory = "Other"
)

// CategoryOrder is the fixed presentation order for menu categories.
var CategoryOrder = []MenuCategory{
	CategoryPizzas,
	CategoryPastas,
	CategorySandwiches,
	CategorySides,
	CategoryDrinks,
	CategoryDesserts,
	CategoryOther,
}

// MenuVariant is one orderable variant (size/crust/flavor) of a menu item.
// Variant codes are what go on order lines.
type MenuVariant struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Price string `json:"price,omitempty"`
}

// MenuItem aggregates a product's variants under one logical name.
type MenuItem struct {
	Code        string        `json:"code"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Variants    []MenuVariant `json:"variants"`
}

// MenuSection is the set of items in one category.
type MenuSection struct {
	Category MenuCategory `json:"category"`
	Items    []MenuItem   `json:"items"`
}

// Menu is an immutable snapshot of one store's menu at one point in time.
type Menu struct {
	StoreID  string        `json:"storeId"`
	Sections []MenuSection `json:"sections"`
}
