package commands

import "time"

// Command execution constants
const (
	// OpenTimeout bounds a single browser or mail client launch
	OpenTimeout = 5 * time.Second
)
