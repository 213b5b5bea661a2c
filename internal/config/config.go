package config

// Service-level defaults. The pipeline's business defaults live in the
// pipeline package; these only shape the hosting process.
const (
	DefaultServicePort   = 7201
	DefaultRunTTLMinutes = 120
	DefaultSweepSchedule = "*/10 * * * *"

	// Upload parsing limit for multipart forms.
	MaxUploadBytes = 32 << 20
)
