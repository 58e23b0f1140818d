// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// StandardObserver implements observability for all components
type StandardObserver struct {
	level         ObservabilityLevel
	logger        zerolog.Logger
	DebugObserver *DebugObserver // Reference to debug observer when in debug mode
}

type ObservabilityLevel int

const (
	ObservabilityOff     ObservabilityLevel = 0
	ObservabilityMetrics ObservabilityLevel = 1
	ObservabilityDebug   ObservabilityLevel = 2
)

// NewStandardObserver creates observability component
func NewStandardObserver(level ObservabilityLevel, writer io.Writer) *StandardObserver {
	return &StandardObserver{
		level:  level,
		logger: zerolog.New(writer).With().Timestamp().Logger(),
	}
}

// StartTiming returns a function to complete timing
func (o *StandardObserver) StartTiming(component, operation string) func(success bool, metadata map[string]interface{}) {
	start := time.Now()

	return func(success bool, metadata map[string]interface{}) {
		o.LogOperation(StandardObservabilityData{
			Component:  component,
			Operation:  operation,
			DurationMs: time.Since(start).Milliseconds(),
			Success:    success,
			Metadata:   metadata,
		})
	}
}

// LogOperation logs operation data
func (o *StandardObserver) LogOperation(data StandardObservabilityData) {
	if o.level == ObservabilityOff {
		return
	}

	event := o.logger.Info()
	if !data.Success {
		event = o.logger.Warn()
	}
	event = event.
		Str("component", data.Component).
		Str("operation", data.Operation).
		Int64("duration_ms", data.DurationMs).
		Bool("success", data.Success)
	if data.Error != "" {
		event = event.Str("error", data.Error)
	}
	if data.RowCount > 0 {
		event = event.Int("row_count", data.RowCount)
	}
	if data.FindingCount > 0 {
		event = event.Int("finding_count", data.FindingCount)
	}
	// Free-form metadata is debug-only noise at the metrics level.
	if o.level == ObservabilityDebug {
		event = event.Fields(data.Metadata)
	}
	event.Msg(data.Operation)
}

// StandardObservabilityData for all components
type StandardObservabilityData struct {
	Component    string
	Operation    string
	DurationMs   int64
	Success      bool
	Error        string
	RowCount     int
	FindingCount int
	Metadata     map[string]interface{}
}
