package taxonomy

import "strings"

var productEmoji = []mapping{
	// Fruits
	{"apfel", "🍎"}, {"apple", "🍎"}, {"banane", "🍌"}, {"banana", "🍌"},
	{"orange", "🍊"}, {"zitrone", "🍋"}, {"lemon", "🍋"},
	{"traube", "🍇"}, {"weintraube", "🍇"}, {"erdbeere", "🍓"}, {"strawberry", "🍓"},
	{"kirsche", "🍒"}, {"cherry", "🍒"}, {"pfirsich", "🍑"}, {"peach", "🍑"},
	{"ananas", "🍍"}, {"pineapple", "🍍"}, {"wassermelone", "🍉"}, {"melone", "🍈"},
	{"kiwi", "🥝"}, {"avocado", "🥑"}, {"kokosnuss", "🥥"}, {"coconut", "🥥"},

	// Vegetables
	{"tomate", "🍅"}, {"tomato", "🍅"}, {"aubergine", "🍆"}, {"eggplant", "🍆"},
	{"karotte", "🥕"}, {"möhre", "🥕"}, {"carrot", "🥕"},
	{"paprika", "🌶️"}, {"chili", "🌶️"}, {"mais", "🌽"}, {"corn", "🌽"},
	{"brokkoli", "🥦"}, {"broccoli", "🥦"}, {"salat", "🥬"}, {"lettuce", "🥬"},
	{"gurke", "🥒"}, {"cucumber", "🥒"}, {"kartoffel", "🥔"}, {"potato", "🥔"},
	{"zwiebel", "🧅"}, {"onion", "🧅"}, {"knoblauch", "🧄"}, {"garlic", "🧄"},
	{"pilz", "🍄"}, {"mushroom", "🍄"},

	// Meat & fish
	{"hähnchen", "🍗"}, {"chicken", "🍗"}, {"rindfleisch", "🥩"}, {"beef", "🥩"},
	{"fisch", "🐟"}, {"fish", "🐟"}, {"lachs", "🐟"}, {"wurst", "🌭"},
	{"speck", "🥓"}, {"bacon", "🥓"},

	// Dairy
	{"milch", "🥛"}, {"milk", "🥛"}, {"käse", "🧀"}, {"cheese", "🧀"},
	{"butter", "🧈"}, {"ei", "🥚"}, {"egg", "🥚"}, {"eis", "🍦"},

	// Bread & grains
	{"brot", "🍞"}, {"bread", "🍞"}, {"reis", "🍚"}, {"rice", "🍚"},
	{"nudeln", "🍝"}, {"pasta", "🍝"}, {"müsli", "🥣"},

	// Beverages
	{"saft", "🧃"}, {"juice", "🧃"}, {"wasser", "💧"}, {"water", "💧"},
	{"kaffee", "☕"}, {"coffee", "☕"}, {"tee", "🍵"}, {"tea", "🍵"},
	{"wein", "🍷"}, {"wine", "🍷"}, {"bier", "🍺"}, {"beer", "🍺"},
}

var categoryEmoji = map[string]string{
	CategoryFruit:     "🍎",
	CategoryVegetable: "🥬",
	CategoryMeat:      "🥩",
	CategoryDairy:     "🥛",
	CategoryGrain:     "🍞",
	CategoryBeverage:  "🥤",
	CategoryOther:     "🛒",
}

// EmojiFor picks an emoji for a product, falling back to the category
// emoji and finally to a shopping cart.
func EmojiFor(name, category string) string {
	lower := strings.ToLower(name)
	for _, m := range productEmoji {
		if strings.Contains(lower, m.keyword) {
			return m.result
		}
	}
	if emoji, ok := categoryEmoji[category]; ok {
		return emoji
	}
	return categoryEmoji[CategoryOther]
}
