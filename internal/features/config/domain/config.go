package domain

// ModelConfig holds the model parameters for each recommendation endpoint.
type ModelConfig struct {
	Guide ModelParams `json:"guide"`
	Fonts ModelParams `json:"fonts"`
}

// ModelParams defines the parameters for the AI model.
type ModelParams struct {
	Model       string  `json:"model"`
	Temperature float32 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
}

// DefaultModelConfig returns the parameters used when no config file overrides them.
func DefaultModelConfig() ModelConfig {
	return ModelConfig{
		Guide: ModelParams{Model: "gpt-3.5-turbo", Temperature: 0.7, MaxTokens: 500},
		Fonts: ModelParams{Model: "gpt-4o-mini", Temperature: 0.8, MaxTokens: 500},
	}
}

// Merge fills zero fields of p with the values from def.
func (p ModelParams) Merge(def ModelParams) ModelParams {
	if p.Model == "" {
		p.Model = def.Model
	}
	if p.Temperature == 0 {
		p.Temperature = def.Temperature
	}
	if p.MaxTokens == 0 {
		p.MaxTokens = def.MaxTokens
	}
	return p
}
