package detection

import (
	"strings"
	"testing"
)

func TestReconcileLabelThreshold(t *testing.T) {
	labels := []LabelAnnotation{
		{Description: "apple", Score: 0.4},  // at threshold, excluded
		{Description: "banana", Score: 0.41},
	}
	got := Reconcile(labels, nil, "")
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	if got[0].Name != "Banane" {
		t.Errorf("expected Banane, got %q", got[0].Name)
	}
	if got[0].Confidence != 41 {
		t.Errorf("expected confidence 41, got %d", got[0].Confidence)
	}
	if got[0].Method != MethodLabel {
		t.Errorf("expected method label, got %q", got[0].Method)
	}
}

func TestReconcileObjectThreshold(t *testing.T) {
	objects := []ObjectAnnotation{
		{Name: "apple", Score: 0.5},  // at threshold, excluded
		{Name: "tomato", Score: 0.51},
	}
	got := Reconcile(nil, objects, "")
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	if got[0].Name != "Tomate" || got[0].Method != MethodObject {
		t.Errorf("unexpected candidate %+v", got[0])
	}
}

func TestReconcileNonFoodDropped(t *testing.T) {
	labels := []LabelAnnotation{{Description: "bicycle", Score: 0.99}}
	if got := Reconcile(labels, nil, ""); len(got) != 0 {
		t.Fatalf("expected non-food to be dropped, got %+v", got)
	}
}

func TestReconcileDedupByCanonicalName(t *testing.T) {
	labels := []LabelAnnotation{
		{Description: "apple", Score: 0.9},
		{Description: "green apple", Score: 0.8}, // same canonical name
	}
	got := Reconcile(labels, nil, "")
	if len(got) != 1 {
		t.Fatalf("expected dedup to one candidate, got %d", len(got))
	}
	if got[0].Confidence != 90 {
		t.Errorf("first occurrence must win, got confidence %d", got[0].Confidence)
	}
}

func TestReconcileLabelBeatsObject(t *testing.T) {
	labels := []LabelAnnotation{{Description: "apple", Score: 0.6}}
	objects := []ObjectAnnotation{{Name: "Apple", Score: 0.95}}
	got := Reconcile(labels, objects, "")
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	if got[0].Method != MethodLabel {
		t.Errorf("label-sourced candidate must survive, got method %q", got[0].Method)
	}
	if got[0].Confidence != 60 {
		t.Errorf("expected label confidence 60, got %d", got[0].Confidence)
	}
}

func TestReconcileTextOnlyWhenVisualEmpty(t *testing.T) {
	text := "Liste: Milch und Brot kaufen"

	// Visual detections present: text is ignored.
	labels := []LabelAnnotation{{Description: "apple", Score: 0.9}}
	got := Reconcile(labels, nil, text)
	if len(got) != 1 || got[0].Method != MethodLabel {
		t.Fatalf("text must be ignored when visual candidates exist, got %+v", got)
	}

	// No visual detections: text fallback fires.
	got = Reconcile(nil, nil, text)
	if len(got) != 2 {
		t.Fatalf("expected 2 text candidates, got %d", len(got))
	}
	for _, c := range got {
		if c.Method != MethodText {
			t.Errorf("expected method text, got %q", c.Method)
		}
		if c.Confidence != 60 {
			t.Errorf("expected fixed confidence 60, got %d", c.Confidence)
		}
	}
	if got[0].Name != "Milch" || got[1].Name != "Brot" {
		t.Errorf("expected [Milch Brot] in word-list order, got %+v", got)
	}
}

func TestReconcileEmptyInputs(t *testing.T) {
	got := Reconcile(nil, nil, "")
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
	// No synthetic filler items for unhelpful text either.
	got = Reconcile(nil, nil, "nothing edible here")
	if len(got) != 0 {
		t.Fatalf("expected empty result for foodless text, got %+v", got)
	}
}

func TestReconcileNoDuplicateCanonicalNames(t *testing.T) {
	labels := []LabelAnnotation{
		{Description: "apple", Score: 0.9},
		{Description: "milk", Score: 0.8},
	}
	objects := []ObjectAnnotation{
		{Name: "milk", Score: 0.9},
		{Name: "banana", Score: 0.7},
	}
	got := Reconcile(labels, objects, "")
	seen := map[string]bool{}
	for _, c := range got {
		key := strings.ToLower(c.Name)
		if seen[key] {
			t.Errorf("duplicate canonical name %q in output", c.Name)
		}
		seen[key] = true
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(got))
	}
}
