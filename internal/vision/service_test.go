package vision

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/freshly-app/freshly/internal/detection"
	"github.com/freshly-app/freshly/internal/vision/annotate"
)

type fakePrompt struct {
	configured bool
	text       string
	err        error
	calls      int
}

func (f *fakePrompt) Configured() bool { return f.configured }

func (f *fakePrompt) GenerateJSON(ctx context.Context, instruction string, image []byte, mimeType string) (string, error) {
	f.calls++
	return f.text, f.err
}

type fakeAnnotate struct {
	configured bool
	result     annotate.Result
	err        error
	calls      int
}

func (f *fakeAnnotate) Configured() bool { return f.configured }

func (f *fakeAnnotate) Annotate(ctx context.Context, image []byte) (annotate.Result, error) {
	f.calls++
	return f.result, f.err
}

func fixedService(primary PromptBackend, secondary AnnotateBackend) *Service {
	svc := NewService(primary, secondary)
	svc.now = func() time.Time {
		return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestAnalyzePromptSuccess(t *testing.T) {
	primary := &fakePrompt{
		configured: true,
		text:       `Hier ist das Ergebnis: {"detectedItems":[{"name":"Apfel","category":"Obst","quantity":3,"unit":"Stück","confidence":150}]} Danke!`,
	}
	secondary := &fakeAnnotate{configured: true}
	svc := fixedService(primary, secondary)

	result, err := svc.Analyze(context.Background(), []byte("img"), "fridge.jpg")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if !result.Success || result.Method != MethodAIPrompt {
		t.Fatalf("unexpected result %+v", result)
	}
	if len(result.DetectedItems) != 1 {
		t.Fatalf("expected 1 item, got %d", len(result.DetectedItems))
	}
	item := result.DetectedItems[0]
	if item.Confidence != 100 {
		t.Errorf("confidence must clamp to 100, got %d", item.Confidence)
	}
	if item.Name != "Apfel" || item.Quantity != 3 || item.Unit != "Stück" {
		t.Errorf("unexpected item %+v", item)
	}
	if item.Source != detection.SourceAIPrompt || item.Method != detection.MethodAIPrompt {
		t.Errorf("unexpected tagging %+v", item)
	}
	if secondary.calls != 0 {
		t.Error("secondary backend must not run after primary success")
	}
}

func TestAnalyzePromptDefaults(t *testing.T) {
	primary := &fakePrompt{
		configured: true,
		text:       `{"detectedItems":[{"name":"Joghurt","category":"Milchprodukte"}]}`,
	}
	svc := fixedService(primary, &fakeAnnotate{})

	result, err := svc.Analyze(context.Background(), []byte("img"), "a.png")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	item := result.DetectedItems[0]
	if item.Quantity != 1 {
		t.Errorf("missing quantity must default to 1, got %v", item.Quantity)
	}
	if item.Unit != "Stück" {
		t.Errorf("missing unit must default to Stück, got %q", item.Unit)
	}
	if item.Confidence != 75 {
		t.Errorf("missing confidence must default to 75, got %d", item.Confidence)
	}
}

func TestAnalyzeMalformedPromptFallsBack(t *testing.T) {
	primary := &fakePrompt{configured: true, text: "Ich sehe leider kein Essen."}
	secondary := &fakeAnnotate{
		configured: true,
		result: annotate.Result{
			Labels: []detection.LabelAnnotation{{Description: "apple", Score: 0.9}},
		},
	}
	svc := fixedService(primary, secondary)

	result, err := svc.Analyze(context.Background(), []byte("img"), "a.jpg")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if result.Method != MethodSecondary {
		t.Fatalf("expected secondary-detection, got %q", result.Method)
	}
	if len(result.DetectedItems) != 1 || result.DetectedItems[0].Name != "Apfel" {
		t.Fatalf("unexpected items %+v", result.DetectedItems)
	}
	if result.FallbackMode {
		t.Error("secondary detection is not fallback mode")
	}
}

func TestAnalyzePromptNetworkErrorFallsBack(t *testing.T) {
	primary := &fakePrompt{configured: true, err: errors.New("connection refused")}
	secondary := &fakeAnnotate{configured: true, result: annotate.Result{
		Objects: []detection.ObjectAnnotation{{Name: "banana", Score: 0.8}},
	}}
	svc := fixedService(primary, secondary)

	result, err := svc.Analyze(context.Background(), []byte("img"), "a.jpg")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if result.Method != MethodSecondary {
		t.Fatalf("expected secondary-detection, got %q", result.Method)
	}
}

func TestAnalyzeBillingErrorYieldsDemoData(t *testing.T) {
	primary := &fakePrompt{configured: true, err: errors.New("boom")}
	secondary := &fakeAnnotate{
		configured: true,
		err:        annotate.ErrPermissionDenied,
	}
	svc := fixedService(primary, secondary)

	result, err := svc.Analyze(context.Background(), []byte("img"), "a.jpg")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if !result.FallbackMode || result.Method != MethodStaticFallback {
		t.Fatalf("expected static fallback, got %+v", result)
	}
	if len(result.DetectedItems) != 3 {
		t.Fatalf("expected exactly 3 demo items, got %d", len(result.DetectedItems))
	}
	wantNames := []string{"Apfel", "Milch", "Brot"}
	wantExpiry := []string{"2026-09-06", "2026-09-02", "2026-09-01"}
	for i, item := range result.DetectedItems {
		if item.Name != wantNames[i] {
			t.Errorf("item %d: expected %q, got %q", i, wantNames[i], item.Name)
		}
		if item.ExpiryDate != wantExpiry[i] {
			t.Errorf("item %d: expected expiry %q, got %q", i, wantExpiry[i], item.ExpiryDate)
		}
	}
}

func TestAnalyzeOtherSecondaryErrorIsFatal(t *testing.T) {
	primary := &fakePrompt{configured: false}
	secondary := &fakeAnnotate{configured: true, err: errors.New("internal error")}
	svc := fixedService(primary, secondary)

	if _, err := svc.Analyze(context.Background(), []byte("img"), "a.jpg"); err == nil {
		t.Fatal("expected fatal error for non-billing secondary failure")
	}
}

func TestAnalyzeNoBackendsYieldsDemoData(t *testing.T) {
	svc := fixedService(&fakePrompt{}, &fakeAnnotate{})

	result, err := svc.Analyze(context.Background(), []byte("img"), "a.jpg")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if !result.FallbackMode || len(result.DetectedItems) != 3 {
		t.Fatalf("expected demo data, got %+v", result)
	}
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare object", `{"a":1}`, `{"a":1}`},
		{"surrounded", `noise {"a":1} trailing`, `{"a":1}`},
		{"nested", `x {"a":{"b":2}} y`, `{"a":{"b":2}}`},
		{"brace in string", `{"a":"}"}`, `{"a":"}"}`},
		{"no object", "nothing here", ""},
		{"unbalanced", `{"a":1`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractJSONObject(tt.in); got != tt.want {
				t.Errorf("extractJSONObject(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMimeTypeFor(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"a.jpg", "image/jpeg"},
		{"a.JPEG", "image/jpeg"},
		{"a.png", "image/png"},
		{"a.gif", "image/gif"},
		{"a.webp", "image/webp"},
		{"a.bmp", "image/jpeg"},
		{"noext", "image/jpeg"},
	}
	for _, tt := range tests {
		if got := MimeTypeFor(tt.filename); got != tt.want {
			t.Errorf("MimeTypeFor(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}
