package taxonomy

import "strings"

type mapping struct {
	keyword string
	result  string
}

// Ordered: exact lookup first, then the first bidirectional substring match
// wins, so compound labels like "green apple" resolve to the earliest entry
// they contain.
var translations = []mapping{
	// Fruits
	{"apple", "Apfel"}, {"banana", "Banane"}, {"orange", "Orange"}, {"lemon", "Zitrone"},
	{"lime", "Limette"}, {"grape", "Weintraube"}, {"strawberry", "Erdbeere"},
	{"blueberry", "Blaubeere"}, {"raspberry", "Himbeere"}, {"peach", "Pfirsich"},
	{"pear", "Birne"}, {"cherry", "Kirsche"}, {"plum", "Pflaume"},
	{"pineapple", "Ananas"}, {"mango", "Mango"}, {"kiwi", "Kiwi"},
	{"watermelon", "Wassermelone"}, {"melon", "Melone"}, {"avocado", "Avocado"},

	// Vegetables
	{"tomato", "Tomate"}, {"lettuce", "Salat"}, {"carrot", "Karotte"},
	{"broccoli", "Brokkoli"}, {"cauliflower", "Blumenkohl"}, {"spinach", "Spinat"},
	{"cabbage", "Kohl"}, {"potato", "Kartoffel"}, {"onion", "Zwiebel"},
	{"garlic", "Knoblauch"}, {"pepper", "Paprika"}, {"cucumber", "Gurke"},
	{"zucchini", "Zucchini"}, {"eggplant", "Aubergine"}, {"corn", "Mais"},
	{"peas", "Erbsen"}, {"beans", "Bohnen"}, {"mushroom", "Pilz"},

	// Meat & fish
	{"chicken", "Hähnchen"}, {"beef", "Rindfleisch"}, {"pork", "Schweinefleisch"},
	{"lamb", "Lammfleisch"}, {"fish", "Fisch"}, {"salmon", "Lachs"},
	{"tuna", "Thunfisch"}, {"shrimp", "Garnele"}, {"turkey", "Pute"},
	{"sausage", "Wurst"}, {"ham", "Schinken"}, {"bacon", "Speck"},

	// Dairy
	{"milk", "Milch"}, {"yogurt", "Joghurt"}, {"cheese", "Käse"},
	{"butter", "Butter"}, {"cream", "Sahne"}, {"ice cream", "Eis"},

	// Bread & grains
	{"bread", "Brot"}, {"rice", "Reis"}, {"pasta", "Nudeln"},
	{"cereal", "Müsli"}, {"oats", "Haferflocken"}, {"flour", "Mehl"},

	// Beverages
	{"juice", "Saft"}, {"water", "Wasser"}, {"coffee", "Kaffee"},
	{"tea", "Tee"}, {"wine", "Wein"}, {"beer", "Bier"},

	// General categories
	{"food", "Lebensmittel"}, {"fruit", "Obst"}, {"vegetable", "Gemüse"},
	{"meat", "Fleisch"}, {"dairy", "Milchprodukt"}, {"beverage", "Getränk"},
	{"egg", "Ei"}, {"eggs", "Eier"},
}

// Translate maps a raw label to its canonical German display name. Labels
// without a table entry are returned capitalized.
func Translate(label string) string {
	lower := strings.ToLower(label)

	for _, m := range translations {
		if m.keyword == lower {
			return m.result
		}
	}

	// Partial matches for compound labels
	for _, m := range translations {
		if strings.Contains(lower, m.keyword) || strings.Contains(m.keyword, lower) {
			return m.result
		}
	}

	return Capitalize(label)
}

// Capitalize lowercases a label and upper-cases its first rune.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
	return string(runes)
}
