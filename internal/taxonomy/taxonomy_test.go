package taxonomy

import "testing"

func TestTranslateExactMatch(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"apple", "Apfel"},
		{"Apple", "Apfel"},
		{"MILK", "Milch"},
		{"bread", "Brot"},
		{"tomato", "Tomate"},
	}
	for _, tt := range tests {
		if got := Translate(tt.label); got != tt.want {
			t.Errorf("Translate(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}

func TestTranslateSubstringOrder(t *testing.T) {
	// "pineapple" has its own entry and must not resolve through "apple",
	// which sits earlier in the table but only as a substring match.
	if got := Translate("pineapple"); got != "Ananas" {
		t.Errorf("Translate(pineapple) = %q, want Ananas", got)
	}
	// Compound labels resolve through the first containing entry.
	if got := Translate("green apple"); got != "Apfel" {
		t.Errorf("Translate(green apple) = %q, want Apfel", got)
	}
	// Exact match always beats substring: "watermelon" before "melon".
	if got := Translate("watermelon"); got != "Wassermelone" {
		t.Errorf("Translate(watermelon) = %q, want Wassermelone", got)
	}
}

func TestTranslateUnknownCapitalizes(t *testing.T) {
	if got := Translate("quinoa bowl xyz"); got != "Quinoa bowl xyz" {
		t.Errorf("Translate(unknown) = %q, want capitalized original", got)
	}
}

func TestCategoryFor(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"apple", CategoryFruit},
		{"strawberry", CategoryFruit},
		{"tomato", CategoryVegetable},
		{"chicken breast", CategoryMeat},
		{"fresh milk", CategoryDairy},
		{"white bread", CategoryGrain},
		{"orange juice", CategoryFruit}, // fruit rules run before beverage rules
		{"soda", CategoryBeverage},
		{"mystery object", CategoryOther},
	}
	for _, tt := range tests {
		if got := CategoryFor(tt.label); got != tt.want {
			t.Errorf("CategoryFor(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}

func TestUnitFor(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"milk", "Liter"},
		{"beer", "Flasche"},
		{"beef", "kg"},
		{"cheese", "g"},
		{"apple", "Stück"},
		{"yogurt", "Becher"},
		{"pasta", "Packung"},
		{"unknown thing", DefaultUnit},
	}
	for _, tt := range tests {
		if got := UnitFor(tt.label); got != tt.want {
			t.Errorf("UnitFor(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}

func TestIsFood(t *testing.T) {
	food := []string{"apple", "Granny Smith Apple", "Milch", "käse", "orange juice", "gemüse"}
	for _, label := range food {
		if !IsFood(label) {
			t.Errorf("IsFood(%q) = false, want true", label)
		}
	}
	notFood := []string{"bicycle", "detergent", "shampoo"}
	for _, label := range notFood {
		if IsFood(label) {
			t.Errorf("IsFood(%q) = true, want false", label)
		}
	}
}

func TestEmojiFor(t *testing.T) {
	tests := []struct {
		name     string
		category string
		want     string
	}{
		{"Apfel", CategoryFruit, "🍎"},
		{"Milch", CategoryDairy, "🥛"},
		{"Unbekannt", CategoryVegetable, "🥬"},
		{"Unbekannt", "Nicht-Kategorie", "🛒"},
	}
	for _, tt := range tests {
		if got := EmojiFor(tt.name, tt.category); got != tt.want {
			t.Errorf("EmojiFor(%q, %q) = %q, want %q", tt.name, tt.category, got, tt.want)
		}
	}
}
