// Package vision orchestrates image analysis across a primary generative
// backend, a secondary annotation backend and a static demo fallback.
package vision

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/freshly-app/freshly/internal/detection"
	"github.com/freshly-app/freshly/internal/taxonomy"
	"github.com/freshly-app/freshly/internal/vision/annotate"
	"github.com/freshly-app/freshly/pkg/logger"
)

var tracer = otel.Tracer("vision-service")

// Analysis methods reported to the caller.
const (
	MethodAIPrompt       = "ai-prompt"
	MethodSecondary      = "secondary-detection"
	MethodStaticFallback = "static-fallback"
)

// Result is the outcome of one image analysis.
type Result struct {
	Success       bool                  `json:"success"`
	DetectedItems []detection.Candidate `json:"detectedItems"`
	FallbackMode  bool                  `json:"fallbackMode,omitempty"`
	Method        string                `json:"method"`
}

// PromptBackend is the primary backend: structured extraction via prompt.
type PromptBackend interface {
	Configured() bool
	GenerateJSON(ctx context.Context, instruction string, image []byte, mimeType string) (string, error)
}

// AnnotateBackend is the secondary backend: label/object/text annotation.
type AnnotateBackend interface {
	Configured() bool
	Annotate(ctx context.Context, image []byte) (annotate.Result, error)
}

// Service drives the per-image analysis state machine. Each request
// performs its own backend call; nothing is cached or batched.
type Service struct {
	primary   PromptBackend
	secondary AnnotateBackend
	now       func() time.Time
}

// NewService creates an analysis service. Either backend may be nil or
// unconfigured; the service degrades accordingly.
func NewService(primary PromptBackend, secondary AnnotateBackend) *Service {
	return &Service{
		primary:   primary,
		secondary: secondary,
		now:       time.Now,
	}
}

// Analyze runs the detection pipeline for one image. Primary backend
// failures silently fall back to the secondary backend; billing or
// credential failures there degrade to the static demo set, flagged via
// FallbackMode. Any other secondary failure is fatal for the request.
func (s *Service) Analyze(ctx context.Context, image []byte, filename string) (Result, error) {
	ctx, span := tracer.Start(ctx, "vision.Analyze")
	defer span.End()
	span.SetAttributes(
		attribute.String("image.filename", filename),
		attribute.Int("image.bytes", len(image)),
	)

	mimeType := MimeTypeFor(filename)

	if s.primary != nil && s.primary.Configured() {
		result, err := s.analyzeWithPrompt(ctx, image, mimeType)
		if err == nil {
			span.SetAttributes(attribute.String("analysis.method", result.Method))
			return result, nil
		}
		logger.Warn(ctx).
			Err(err).
			Str("filename", filename).
			Msg("Primary analysis failed, falling back to annotation backend")
	}

	if s.secondary == nil || !s.secondary.Configured() {
		logger.Warn(ctx).Str("filename", filename).Msg("No vision backend configured, using demo data")
		span.SetAttributes(attribute.String("analysis.method", MethodStaticFallback))
		return s.staticFallback(), nil
	}

	annotation, err := s.secondary.Annotate(ctx, image)
	if err != nil {
		if errors.Is(err, annotate.ErrPermissionDenied) {
			logger.Warn(ctx).
				Err(err).
				Str("filename", filename).
				Msg("Annotation backend denied, using demo data")
			span.SetAttributes(attribute.String("analysis.method", MethodStaticFallback))
			return s.staticFallback(), nil
		}
		return Result{}, fmt.Errorf("image analysis failed: %w", err)
	}

	items := detection.Reconcile(annotation.Labels, annotation.Objects, annotation.FullText)
	logger.Info(ctx).
		Int("labels", len(annotation.Labels)).
		Int("objects", len(annotation.Objects)).
		Int("detected", len(items)).
		Str("method", MethodSecondary).
		Msg("Image analyzed via annotation backend")
	span.SetAttributes(attribute.String("analysis.method", MethodSecondary))

	return Result{
		Success:       true,
		DetectedItems: items,
		Method:        MethodSecondary,
	}, nil
}

type promptPayload struct {
	DetectedItems []struct {
		Name       string  `json:"name"`
		Category   string  `json:"category"`
		Quantity   float64 `json:"quantity"`
		Unit       string  `json:"unit"`
		Confidence float64 `json:"confidence"`
	} `json:"detectedItems"`
}

func (s *Service) analyzeWithPrompt(ctx context.Context, image []byte, mimeType string) (Result, error) {
	text, err := s.primary.GenerateJSON(ctx, extractionPrompt, image, mimeType)
	if err != nil {
		return Result{}, err
	}

	raw := extractJSONObject(text)
	if raw == "" {
		return Result{}, errors.New("no JSON object in model response")
	}

	var payload promptPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return Result{}, fmt.Errorf("parse model response: %w", err)
	}

	items := make([]detection.Candidate, 0, len(payload.DetectedItems))
	for _, item := range payload.DetectedItems {
		candidate := detection.Candidate{
			Name:       item.Name,
			Category:   item.Category,
			Quantity:   item.Quantity,
			Unit:       item.Unit,
			Confidence: clampConfidence(item.Confidence),
			Method:     detection.MethodAIPrompt,
			Source:     detection.SourceAIPrompt,
		}
		if candidate.Quantity <= 0 {
			candidate.Quantity = 1
		}
		if candidate.Unit == "" {
			candidate.Unit = taxonomy.DefaultUnit
		}
		if candidate.Category == "" {
			candidate.Category = taxonomy.CategoryFor(item.Name)
		}
		candidate.Emoji = taxonomy.EmojiFor(candidate.Name, candidate.Category)
		items = append(items, candidate)
	}

	logger.Info(ctx).
		Int("detected", len(items)).
		Str("method", MethodAIPrompt).
		Msg("Image analyzed via prompt backend")

	return Result{
		Success:       true,
		DetectedItems: items,
		Method:        MethodAIPrompt,
	}, nil
}

func (s *Service) staticFallback() Result {
	return Result{
		Success:       true,
		DetectedItems: fallbackItems(s.now()),
		FallbackMode:  true,
		Method:        MethodStaticFallback,
	}
}

func clampConfidence(confidence float64) int {
	if confidence == 0 {
		confidence = 75
	}
	if confidence < 0 {
		return 0
	}
	if confidence > 100 {
		return 100
	}
	return int(confidence)
}

// extractJSONObject returns the first balanced {...} substring, skipping
// brace characters inside JSON strings.
func extractJSONObject(text string) string {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return ""
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return text[start : i+1]
				}
			}
		}
	}
	return ""
}
