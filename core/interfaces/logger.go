// ABOUTME: Logger interface for structured logging across the application
// ABOUTME: Implementations exist for logrus and the standard library

package interfaces

// Logger defines the interface for logging throughout the application.
//
// Example usage:
//
//	logger.Info("extracted media", map[string]interface{}{
//		"note_id": id,
//		"count":   len(items),
//	})
type Logger interface {
	// Debug logs detailed troubleshooting information.
	Debug(msg string, fields map[string]interface{})

	// Info logs general informational messages.
	Info(msg string, fields map[string]interface{})

	// Warn logs potential issues that don't prevent operation.
	Warn(msg string, fields map[string]interface{})

	// Error logs failures that need attention.
	Error(msg string, fields map[string]interface{})
}
