//go:build wireinject
// +build wireinject

package http

import (
	"github.com/google/wire"

	"github.com/freshly-app/freshly/internal/vision"
	"github.com/freshly-app/freshly/internal/vision/annotate"
	"github.com/freshly-app/freshly/internal/vision/genai"
	"github.com/freshly-app/freshly/pkg/config"
)

// ProvidePromptBackend provides the primary AI backend client
func ProvidePromptBackend(cfg *config.Config) vision.PromptBackend {
	return genai.NewClient(genai.Config{
		APIKey:  cfg.GenAI.APIKey,
		BaseURL: cfg.GenAI.BaseURL,
		Model:   cfg.GenAI.Model,
		Timeout: cfg.GenAI.Timeout,
	})
}

// ProvideAnnotateBackend provides the secondary annotation backend client
func ProvideAnnotateBackend(cfg *config.Config) vision.AnnotateBackend {
	return annotate.NewClient(annotate.Config{
		APIKey:  cfg.Annotate.APIKey,
		BaseURL: cfg.Annotate.BaseURL,
		Timeout: cfg.Annotate.Timeout,
	})
}

// ProvideUploadDir provides the upload directory path
func ProvideUploadDir(cfg *config.Config) string {
	return cfg.UploadDir
}

// Wire sets
var BackendSet = wire.NewSet(
	ProvidePromptBackend,
	ProvideAnnotateBackend,
)

// InitializeUploadHandler initializes the upload handler with all dependencies
func InitializeUploadHandler(cfg *config.Config) (*UploadHandler, error) {
	wire.Build(
		BackendSet,
		vision.NewService,
		ProvideUploadDir,
		NewUploadHandler,
	)
	return nil, nil
}
