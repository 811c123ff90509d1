package bot

import (
	"time"

	"github.com/example/citizenprep/pkg/models"
)

// BotConfig represents the configuration for the bot
type BotConfig struct {
	// Long polling timeout in seconds
	UpdateTimeout int
	// Deadline for one update's service calls
	RequestTimeout time.Duration
	// Province the bot draws questions for
	Province string
	// How long Stop waits for in-flight updates
	DrainTimeout time.Duration
}

// DefaultConfig returns the default bot configuration
func DefaultConfig() *BotConfig {
	return &BotConfig{
		UpdateTimeout:  60,
		RequestTimeout: 5 * time.Second,
		Province:       models.ProvinceAll,
		DrainTimeout:   5 * time.Second,
	}
}
