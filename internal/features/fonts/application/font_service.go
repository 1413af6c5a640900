package application

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	configdomain "iri-guide/backend/internal/features/config/domain"
	"iri-guide/backend/internal/features/fonts/domain"
	shared "iri-guide/backend/internal/features/shared/domain"
	"iri-guide/backend/internal/infrastructure"
)

// ErrIncompleteFonts is returned when the model reply lacks one of the four fields.
var ErrIncompleteFonts = errors.New("font recommendation is missing fields")

// FontService defines the interface for the font recommendation service.
type FontService interface {
	// RecommendFonts asks the model for a font pairing. On any failure the
	// fallback pairing for req.Service is returned instead.
	RecommendFonts(ctx context.Context, req domain.FontRequest) shared.Recommendation
	// Fallback returns the fixed pairing for a service type.
	Fallback(service string) shared.Recommendation
}

// fontService is the implementation of FontService.
type fontService struct {
	aiClient infrastructure.AIClient
	params   configdomain.ModelParams
}

// NewFontService creates a new instance of fontService.
func NewFontService(client infrastructure.AIClient, params configdomain.ModelParams) FontService {
	return &fontService{aiClient: client, params: params}
}

func (s *fontService) RecommendFonts(ctx context.Context, req domain.FontRequest) shared.Recommendation {
	fonts, err := s.recommend(ctx, req)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).
			Str("service", req.Service).
			Msg("font recommendation failed, serving fallback")
		return s.Fallback(req.Service)
	}
	return marshalFonts(fonts, shared.SourceAI)
}

func (s *fontService) recommend(ctx context.Context, req domain.FontRequest) (domain.FontTriple, error) {
	reply, err := s.aiClient.Complete(ctx, infrastructure.CompletionRequest{
		Model: s.params.Model,
		Messages: []infrastructure.Message{
			{Role: infrastructure.RoleSystem, Content: BuildFontPrompt(req)},
			{Role: infrastructure.RoleUser, Content: fontUserPrompt},
		},
		Temperature: s.params.Temperature,
		MaxTokens:   s.params.MaxTokens,
		JSONMode:    true,
	})
	if err != nil {
		return domain.FontTriple{}, errors.Wrap(err, "request font recommendation")
	}

	body, err := infrastructure.ParseJSONReply(reply)
	if err != nil {
		return domain.FontTriple{}, errors.Wrap(err, "parse font recommendation")
	}

	// only the four known fields survive; extra keys in the reply are dropped
	var fonts domain.FontTriple
	if err := json.Unmarshal(body, &fonts); err != nil {
		return domain.FontTriple{}, errors.Wrap(err, "decode font recommendation")
	}
	if !fonts.Complete() {
		return domain.FontTriple{}, ErrIncompleteFonts
	}
	return fonts, nil
}

func (s *fontService) Fallback(service string) shared.Recommendation {
	return marshalFonts(domain.FallbackFonts(service), shared.SourceFallback)
}

func marshalFonts(fonts domain.FontTriple, source shared.Source) shared.Recommendation {
	body, _ := json.Marshal(fonts)
	return shared.Recommendation{Body: body, Source: source}
}
