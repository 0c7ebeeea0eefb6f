package taxonomy

import "strings"

var foodKeywords = []string{
	// General categories
	"food", "fruit", "vegetable", "meat", "dairy", "bread", "cheese", "beverage",
	"grocery", "produce", "snack", "meal", "ingredient", "cuisine",

	// Fruits
	"apple", "banana", "orange", "lemon", "lime", "grape", "strawberry", "blueberry",
	"raspberry", "peach", "pear", "cherry", "plum", "pineapple", "mango", "kiwi",
	"watermelon", "melon", "avocado", "coconut",

	// Vegetables
	"tomato", "lettuce", "carrot", "broccoli", "cauliflower", "spinach", "cabbage",
	"potato", "onion", "garlic", "pepper", "cucumber", "zucchini", "eggplant",
	"corn", "peas", "beans", "mushroom", "celery", "radish",

	// Meat & fish
	"chicken", "beef", "pork", "lamb", "fish", "salmon", "tuna", "shrimp",
	"turkey", "duck", "sausage", "ham", "bacon",

	// Dairy
	"milk", "yogurt", "butter", "cream", "ice cream",

	// Grains & bread
	"rice", "pasta", "cereal", "oats", "flour", "crackers",

	// Pantry
	"oil", "vinegar", "salt", "sugar", "honey", "jam", "sauce", "spice",

	// Beverages
	"juice", "soda", "water", "coffee", "tea", "wine", "beer",

	// German terms
	"lebensmittel", "obst", "gemüse", "fleisch", "milchprodukt", "getränk",
	"apfel", "banane", "tomate", "karotte", "milch", "käse", "brot",
}

// IsFood reports whether a raw label names something edible. The match is
// case-insensitive and bidirectional so both "Granny Smith apple" and the
// bare "app" prefix of a keyword qualify.
func IsFood(label string) bool {
	lower := strings.ToLower(label)
	for _, keyword := range foodKeywords {
		if strings.Contains(lower, keyword) || strings.Contains(keyword, lower) {
			return true
		}
	}
	return false
}
