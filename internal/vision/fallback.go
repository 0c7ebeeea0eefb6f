package vision

import (
	"time"

	"github.com/freshly-app/freshly/internal/detection"
	"github.com/freshly-app/freshly/internal/taxonomy"
)

// fallbackItems returns the fixed demonstration set used when no vision
// backend is reachable. Expiry dates are offset from the analysis time.
func fallbackItems(now time.Time) []detection.Candidate {
	expiry := func(days int) string {
		return now.AddDate(0, 0, days).Format("2006-01-02")
	}
	return []detection.Candidate{
		{
			Name:       "Apfel",
			Category:   taxonomy.CategoryFruit,
			Quantity:   3,
			Unit:       "Stück",
			Emoji:      taxonomy.EmojiFor("Apfel", taxonomy.CategoryFruit),
			Confidence: 85,
			ExpiryDate: expiry(7),
			Method:     detection.MethodLabel,
			Source:     detection.SourceVision,
		},
		{
			Name:       "Milch",
			Category:   taxonomy.CategoryDairy,
			Quantity:   1,
			Unit:       "Liter",
			Emoji:      taxonomy.EmojiFor("Milch", taxonomy.CategoryDairy),
			Confidence: 90,
			ExpiryDate: expiry(3),
			Method:     detection.MethodLabel,
			Source:     detection.SourceVision,
		},
		{
			Name:       "Brot",
			Category:   taxonomy.CategoryGrain,
			Quantity:   1,
			Unit:       "Stück",
			Emoji:      taxonomy.EmojiFor("Brot", taxonomy.CategoryGrain),
			Confidence: 80,
			ExpiryDate: expiry(2),
			Method:     detection.MethodLabel,
			Source:     detection.SourceVision,
		},
	}
}
