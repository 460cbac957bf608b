package discord

import (
	"errors"
	"time"
)

const (
	// WebhookURLFormat is the Discord webhook execute endpoint.
	WebhookURLFormat = "https://discord.com/api/webhooks/%s/%s"

	// DefaultTimeout bounds a single webhook call.
	DefaultTimeout = 10 * time.Second

	// DefaultUsername is the display name used for webhook messages.
	DefaultUsername = "pdb-srv"

	colorError   = 0xE74C3C
	colorWarning = 0xF1C40F
	colorInfo    = 0x3498DB
)

var errWebhookRequired = errors.New("discord: webhook ID and token are required")

// DefaultConfig returns the default Discord service configuration.
func DefaultConfig() Config {
	return Config{
		Timeout:         DefaultTimeout,
		DefaultUsername: DefaultUsername,
	}
}
