// Package menu holds the static drink catalog shown to guests.
package menu

// Category is one of a fixed, closed set of menu sections.
type Category string

const (
	Cocktails Category = "Cocktails"
	Beer      Category = "Beer"
	Wine      Category = "Wine"
	Mocktails Category = "Mocktails"
	Shots     Category = "Shots"
)

// Categories lists every category in display order.
var Categories = []Category{Cocktails, Beer, Wine, Mocktails, Shots}

var labels = map[Category]string{
	Cocktails: "Drinkar",
	Beer:      "Öl",
	Wine:      "Vin",
	Mocktails: "Alkoholfritt",
	Shots:     "Shots",
}

// Valid reports whether c belongs to the closed category set.
func (c Category) Valid() bool {
	_, ok := labels[c]
	return ok
}

// Label is the guest-facing tab name.
func (c Category) Label() string {
	return labels[c]
}

// AllowsComment reports whether lines of this category may carry a
// per-line comment. Only mixed drinks do; beer and wine are poured as-is.
func (c Category) AllowsComment() bool {
	switch c {
	case Cocktails, Mocktails, Shots:
		return true
	default:
		return false
	}
}

// Item is an immutable catalog entry. Price is in whole SEK.
type Item struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Desc     string   `json:"desc"`
	Price    float64  `json:"price"`
	Category Category `json:"category"`
	Tags     []string `json:"tags,omitempty"`
}

// Section groups the items of one category for display.
type Section struct {
	Category Category `json:"category"`
	Label    string   `json:"label"`
	Items    []Item   `json:"items"`
}

// Catalog returns a copy of every item in menu order.
func Catalog() []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

// Lookup finds an item by identifier.
func Lookup(id string) (Item, bool) {
	item, ok := byID[id]
	return item, ok
}

// ByCategory returns the items of one category in menu order.
func ByCategory(c Category) []Item {
	var out []Item
	for _, it := range items {
		if it.Category == c {
			out = append(out, it)
		}
	}
	return out
}

// Sections returns the whole catalog grouped by category.
func Sections() []Section {
	out := make([]Section, 0, len(Categories))
	for _, c := range Categories {
		out = append(out, Section{Category: c, Label: c.Label(), Items: ByCategory(c)})
	}
	return out
}

var byID = func() map[string]Item {
	m := make(map[string]Item, len(items))
	for _, it := range items {
		m[it.ID] = it
	}
	return m
}()
