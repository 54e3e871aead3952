package ui

import (
	"errors"
	"time"
)

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the header drops the
	// backend URL.
	LayoutCompactWidth = 80

	// LayoutListIndent is the left margin of the airport list and button.
	LayoutListIndent = 2
)

// Timing constants.
const (
	// DefaultPollInterval is the status poll cadence.
	DefaultPollInterval = time.Second

	// RequestTimeout bounds every tower request.
	RequestTimeout = 5 * time.Second
)

var errNoClient = errors.New("tower client not configured")
