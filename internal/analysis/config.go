package analysis

import (
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/abk234/trading-advisor/internal/types"
	"github.com/abk234/trading-advisor/pkg/errors"
)

// Config holds the tunable parameters of one analysis run.
type Config struct {
	// RiskRewardRatio scales the target distance relative to the risk.
	RiskRewardRatio float64 `yaml:"risk_reward_ratio" validate:"gt=0"`
	// StopLossMethod selects how the stop is derived. An unrecognized
	// method falls back to a 2% stop at calculation time.
	StopLossMethod types.StopLossMethod `yaml:"stop_loss_method" validate:"required"`
	// StopLossPercentage is used by the percentage method.
	StopLossPercentage float64 `yaml:"stop_loss_percentage" validate:"gte=0"`
	// ATRMultiplier is used by the atr method.
	ATRMultiplier float64 `yaml:"atr_multiplier" validate:"gte=0"`
	// UseAdvancedIndicators enables MACD and Bollinger Band analysis.
	UseAdvancedIndicators bool `yaml:"use_advanced_indicators"`
}

// DefaultConfig returns the default analysis configuration.
func DefaultConfig() Config {
	return Config{
		RiskRewardRatio:       2.0,
		StopLossMethod:        types.StopLossMethodATR,
		StopLossPercentage:    2.0,
		ATRMultiplier:         2.0,
		UseAdvancedIndicators: true,
	}
}

// ParseConfig unmarshals a YAML document over the defaults and validates
// the result.
func ParseConfig(data []byte) (Config, error) {
	config := DefaultConfig()

	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to parse analysis config", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// Validate validates the config struct.
func (c Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid analysis config", err)
	}

	return nil
}
