package catalog

import "errors"

var (
	// ErrConfiguration marks a major configuration that cannot be used.
	ErrConfiguration = errors.New("configuration error")

	// ErrUnknownMajor indicates no configuration is registered for a major.
	ErrUnknownMajor = errors.New("unknown major")
)
