package detection

import (
	"math"
	"strings"

	"github.com/freshly-app/freshly/internal/taxonomy"
)

// Confidence thresholds per annotation source. Labels are the most specific
// signal and tolerate a lower score than localized objects.
const (
	labelScoreThreshold  = 0.4
	objectScoreThreshold = 0.5
	textConfidence       = 60
)

// LabelAnnotation is a classification label with a 0..1 score.
type LabelAnnotation struct {
	Description string  `json:"description"`
	Score       float64 `json:"score"`
}

// ObjectAnnotation is a localized object with a 0..1 score.
type ObjectAnnotation struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// German food words searched for in extracted text when no visual
// detection produced a candidate.
var textFoodWords = []string{
	"apfel", "banane", "orange", "tomate", "salat", "karotte", "brokkoli",
	"hähnchen", "rindfleisch", "schweinefleisch", "fisch", "milch",
	"joghurt", "ei", "butter", "brot", "käse",
}

// Reconcile merges label, object and text detections into a deduplicated
// candidate list. Labels are processed first, then objects; text extraction
// only fires when neither produced a candidate. The dedup key is the
// canonical translated name, lowercased, and the first occurrence wins.
func Reconcile(labels []LabelAnnotation, objects []ObjectAnnotation, fullText string) []Candidate {
	candidates := []Candidate{}
	seen := map[string]bool{}

	for _, label := range labels {
		if label.Score <= labelScoreThreshold || !taxonomy.IsFood(label.Description) {
			continue
		}
		name := taxonomy.Translate(label.Description)
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		candidates = append(candidates, Candidate{
			Name:       name,
			Category:   taxonomy.CategoryFor(label.Description),
			Quantity:   1,
			Unit:       taxonomy.UnitFor(label.Description),
			Emoji:      taxonomy.EmojiFor(name, taxonomy.CategoryFor(label.Description)),
			Confidence: int(math.Round(label.Score * 100)),
			Method:     MethodLabel,
			Source:     SourceVision,
		})
	}

	for _, object := range objects {
		if object.Score <= objectScoreThreshold || !taxonomy.IsFood(object.Name) {
			continue
		}
		name := taxonomy.Translate(object.Name)
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		candidates = append(candidates, Candidate{
			Name:       name,
			Category:   taxonomy.CategoryFor(object.Name),
			Quantity:   1,
			Unit:       taxonomy.UnitFor(object.Name),
			Emoji:      taxonomy.EmojiFor(name, taxonomy.CategoryFor(object.Name)),
			Confidence: int(math.Round(object.Score * 100)),
			Method:     MethodObject,
			Source:     SourceVision,
		})
	}

	// Text extraction is a last resort: only when no visual detection hit.
	if len(candidates) == 0 && fullText != "" {
		textLower := strings.ToLower(fullText)
		for _, word := range textFoodWords {
			if !strings.Contains(textLower, word) {
				continue
			}
			name := taxonomy.Capitalize(word)
			key := strings.ToLower(name)
			if seen[key] {
				continue
			}
			seen[key] = true
			candidates = append(candidates, Candidate{
				Name:       name,
				Category:   taxonomy.CategoryFor(word),
				Quantity:   1,
				Unit:       taxonomy.DefaultUnit,
				Emoji:      taxonomy.EmojiFor(name, taxonomy.CategoryFor(word)),
				Confidence: textConfidence,
				Method:     MethodText,
				Source:     SourceVision,
			})
		}
	}

	return candidates
}
