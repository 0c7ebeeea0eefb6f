// Package taxonomy maps raw detection labels, in English or German free
// text, onto canonical German display names, categories, units and emoji.
// All lookup tables are ordered lists evaluated top to bottom with
// first-match-wins semantics; reordering them changes classification
// output.
package taxonomy

import "strings"

// Canonical item categories, in the user-facing language.
const (
	CategoryFruit     = "Obst"
	CategoryVegetable = "Gemüse"
	CategoryMeat      = "Fleisch"
	CategoryDairy     = "Milchprodukte"
	CategoryGrain     = "Getreideprodukte"
	CategoryBeverage  = "Getränke"
	CategoryOther     = "Sonstiges"
)

// Categories lists every canonical category.
var Categories = []string{
	CategoryFruit,
	CategoryVegetable,
	CategoryMeat,
	CategoryDairy,
	CategoryGrain,
	CategoryBeverage,
	CategoryOther,
}

type categoryRule struct {
	category string
	keywords []string
}

// Checked in order; the first category with a matching keyword wins.
var categoryRules = []categoryRule{
	{CategoryFruit, []string{"apple", "fruit", "banana", "orange", "berry", "grape"}},
	{CategoryVegetable, []string{"vegetable", "tomato", "lettuce", "carrot", "pepper", "onion"}},
	{CategoryMeat, []string{"meat", "chicken", "beef", "fish", "sausage", "pork"}},
	{CategoryDairy, []string{"dairy", "milk", "cheese", "yogurt", "butter", "cream"}},
	{CategoryGrain, []string{"bread", "grain", "cereal", "pasta", "rice", "flour"}},
	{CategoryBeverage, []string{"drink", "beverage", "juice", "water", "soda", "coffee"}},
}

// CategoryFor infers the canonical category for a raw label. Unmatched
// labels fall through to Sonstiges.
func CategoryFor(label string) string {
	lower := strings.ToLower(label)
	for _, rule := range categoryRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.category
			}
		}
	}
	return CategoryOther
}
