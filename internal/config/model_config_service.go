package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"iri-guide/backend/internal/features/config/domain"
)

// ModelConfigService defines the interface for model configuration loading.
type ModelConfigService interface {
	LoadModelConfig() (*domain.ModelConfig, error)
}

// modelConfigService is the implementation of ModelConfigService.
type modelConfigService struct {
	configPath string
}

// NewModelConfigService creates a new instance of modelConfigService.
func NewModelConfigService(configPath string) ModelConfigService {
	return &modelConfigService{configPath: configPath}
}

// LoadModelConfig loads the model configuration from the configured JSON file.
// A missing file is not an error: the defaults are returned instead.
func (s *modelConfigService) LoadModelConfig() (*domain.ModelConfig, error) {
	defaults := domain.DefaultModelConfig()
	if s.configPath == "" {
		return &defaults, nil
	}

	absPath, err := filepath.Abs(s.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for %s: %w", s.configPath, err)
	}

	data, err := os.ReadFile(absPath)
	if errors.Is(err, fs.ErrNotExist) {
		return &defaults, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read model config file %s: %w", absPath, err)
	}

	var modelConfig domain.ModelConfig
	if err := json.Unmarshal(data, &modelConfig); err != nil {
		return nil, fmt.Errorf("failed to unmarshal model config from %s: %w", absPath, err)
	}

	modelConfig.Guide = modelConfig.Guide.Merge(defaults.Guide)
	modelConfig.Fonts = modelConfig.Fonts.Merge(defaults.Fonts)
	return &modelConfig, nil
}
