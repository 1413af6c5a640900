package application

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	configdomain "iri-guide/backend/internal/features/config/domain"
	"iri-guide/backend/internal/features/guide/domain"
	shared "iri-guide/backend/internal/features/shared/domain"
	"iri-guide/backend/internal/infrastructure"
)

// GuideService defines the interface for the design guide application service.
type GuideService interface {
	// GenerateGuide asks the model for a guide and never fails: on any error
	// the fallback guide for dc.PrimaryColor is returned instead.
	GenerateGuide(ctx context.Context, dc domain.DesignContext, kb domain.KnowledgeBase) shared.Recommendation
	// Fallback returns the fixed guide for the given primary color.
	Fallback(primaryColor string) shared.Recommendation
}

// guideService is the implementation of GuideService.
type guideService struct {
	aiClient infrastructure.AIClient
	params   configdomain.ModelParams
}

// NewGuideService creates a new instance of guideService.
func NewGuideService(client infrastructure.AIClient, params configdomain.ModelParams) GuideService {
	return &guideService{aiClient: client, params: params}
}

func (s *guideService) GenerateGuide(ctx context.Context, dc domain.DesignContext, kb domain.KnowledgeBase) shared.Recommendation {
	body, err := s.generate(ctx, dc, kb)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).
			Str("platform", dc.Platform).
			Str("keyword", dc.Keyword).
			Msg("guide generation failed, serving fallback")
		return s.Fallback(dc.PrimaryColor)
	}
	return shared.Recommendation{Body: body, Source: shared.SourceAI}
}

func (s *guideService) generate(ctx context.Context, dc domain.DesignContext, kb domain.KnowledgeBase) (json.RawMessage, error) {
	reply, err := s.aiClient.Complete(ctx, infrastructure.CompletionRequest{
		Model: s.params.Model,
		Messages: []infrastructure.Message{
			{Role: infrastructure.RoleSystem, Content: BuildGuidePrompt(dc, kb)},
			{Role: infrastructure.RoleUser, Content: guideUserPrompt},
		},
		Temperature: s.params.Temperature,
		MaxTokens:   s.params.MaxTokens,
	})
	if err != nil {
		return nil, errors.Wrap(err, "request design guide")
	}

	body, err := infrastructure.ParseJSONReply(reply)
	if err != nil {
		return nil, errors.Wrap(err, "parse design guide")
	}
	return body, nil
}

func (s *guideService) Fallback(primaryColor string) shared.Recommendation {
	// a struct of plain strings always marshals
	body, _ := json.Marshal(domain.FallbackGuide(primaryColor))
	return shared.Recommendation{Body: body, Source: shared.SourceFallback}
}
