package taxonomy

import "strings"

// DefaultUnit is used when no table entry matches.
const DefaultUnit = "Stück"

var unitMappings = []mapping{
	// Liquids
	{"milk", "Liter"}, {"juice", "Liter"}, {"water", "Liter"}, {"wine", "Flasche"},
	{"beer", "Flasche"}, {"soda", "Flasche"}, {"oil", "Liter"},

	// Weight-based
	{"meat", "kg"}, {"fish", "kg"}, {"chicken", "kg"}, {"beef", "kg"}, {"pork", "kg"},
	{"cheese", "g"}, {"butter", "g"}, {"flour", "kg"}, {"sugar", "kg"}, {"rice", "kg"},

	// Countable
	{"apple", "Stück"}, {"banana", "Stück"}, {"orange", "Stück"}, {"egg", "Stück"},
	{"bread", "Stück"}, {"yogurt", "Becher"}, {"tomato", "Stück"},

	// Packages
	{"pasta", "Packung"}, {"cereal", "Packung"}, {"crackers", "Packung"},
}

// UnitFor infers the measuring unit for a raw label.
func UnitFor(label string) string {
	lower := strings.ToLower(label)

	for _, m := range unitMappings {
		if m.keyword == lower {
			return m.result
		}
	}

	for _, m := range unitMappings {
		if strings.Contains(lower, m.keyword) || strings.Contains(m.keyword, lower) {
			return m.result
		}
	}

	return DefaultUnit
}
