// Package logging provides structured logging utilities for unitctl.
//
// # Overview
//
// This package wraps the standard library slog package with unitctl defaults
// and conventions for consistent logging across all components. It supports
// environment-based log level configuration, module/version context injection,
// and automatic source location tracking for debug logs.
//
// # Features
//
//   - Structured JSON logging to stderr
//   - Environment-based log level configuration (LOG_LEVEL)
//   - Automatic module and version context
//   - Source location tracking for debug logs
//   - Flexible log level parsing
//   - Integration with standard library log package
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("unitctl", "v1.0.0")
//	    defer slog.Info("application started")
//
//	    // Use slog as normal
//	    slog.Info("processing request", "id", "req-123")
//	    slog.Debug("detailed state", "data", complexObject)
//	    slog.Error("operation failed", "error", err)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("unit-panel", "v2.0.0", "debug")
//	logger.Info("listing units", "count", 42)
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("unitctl", "v1.0.0", "warn")
//
// Converting standard library logger:
//
//	stdLogger := logging.NewLogLogger(slog.LevelInfo, false)
//	stdLogger.Println("legacy log message")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug ./unit-panel
//	LOG_LEVEL=error ./unit-panel
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "bus call",
//	    "module": "unitctl",
//	    "version": "v1.0.0",
//	    "method": "ListUnitFiles"
//	}
//
// Debug logs include source location:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "DEBUG",
//	    "source": {
//	        "function": "systemd.(*Manager).call",
//	        "file": "manager.go",
//	        "line": 112
//	    },
//	    "msg": "bus call",
//	    "module": "unitctl",
//	    "version": "v1.0.0"
//	}
//
// # Integration
//
// pkg/systemd logs every manager round trip at debug level through the
// logger passed with systemd.WithLogger, or slog.Default when none is given.
package logging
