// Package notify defines the notification collaborator the web layer uses
// to surface mutation outcomes. The function is injected by the caller; the
// store controllers know nothing about it.
package notify

import "github.com/rs/zerolog/log"

// Severity classifies a notification for display.
type Severity string

const (
	// SeveritySuccess marks a completed mutation.
	SeveritySuccess Severity = "success"
	// SeverityInfo marks a neutral outcome.
	SeverityInfo Severity = "info"
	// SeverityWarning marks a degraded outcome, e.g. a fallback dataset served.
	SeverityWarning Severity = "warning"
	// SeverityError marks a failed mutation.
	SeverityError Severity = "error"
)

// Func receives one outcome message with its severity.
type Func func(message string, severity Severity)

// Discard drops every notification.
func Discard(string, Severity) {}

// Zerolog returns a Func that writes notifications to the global logger.
func Zerolog() Func {
	return func(message string, severity Severity) {
		switch severity {
		case SeverityError:
			log.Error().Str("severity", string(severity)).Msg(message)
		case SeverityWarning:
			log.Warn().Str("severity", string(severity)).Msg(message)
		default:
			log.Info().Str("severity", string(severity)).Msg(message)
		}
	}
}
