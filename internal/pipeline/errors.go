package pipeline

import "fmt"

// MissingColumnError reports a required header absent from the upload.
// The whole run fails; partial processing of a misshapen export would
// silently produce wrong notes.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("required column %q not found in upload", e.Column)
}

// ConfigError reports an invalid pipeline parameter, caught before any
// row is processed.
type ConfigError struct {
	Param  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s %s", e.Param, e.Reason)
}
