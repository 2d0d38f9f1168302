// Package logging provides structured logging utilities for the briefing CLI.
//
// # Overview
//
// This package wraps the standard library slog package with project defaults
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
//	    logging.SetDefaultStructuredLogger("briefing", "v1.0.0")
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
//	logger := logging.NewStructuredLogger("git-scan", "v2.0.0", "debug")
//	logger.Info("scan complete", "repos", 12)
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("cli", "v1.0.0", "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug briefing
//	LOG_LEVEL=error briefing --format json
//
// If LOG_LEVEL is not set and no level is passed, defaults to INFO level.
// The CLI passes WARN unless --log-level or LOG_LEVEL says otherwise.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "section collected",
//	    "module": "briefing",
//	    "version": "v1.0.0",
//	    "section": "git"
//	}
//
// Debug logs include source location:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "DEBUG",
//	    "source": {
//	        "function": "git.(*Scanner).Scan",
//	        "file": "scanner.go",
//	        "line": 45
//	    },
//	    "msg": "scanning root",
//	    "module": "briefing",
//	    "version": "v1.0.0"
//	}
//
// # Best Practices
//
// 1. Set default logger early in main():
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("myapp", version)
//	    defer slog.Info("application started")
//	    // ...
//	}
//
// 2. Include context in log messages:
//
//	slog.Info("section collected",
//	    "section", "kubernetes",
//	    "status", "ok",
//	    "duration_ms", 125,
//	)
//
// 3. Use appropriate log levels:
//
//	slog.Debug("git query", "dir", dir)      // Development/troubleshooting
//	slog.Info("briefing rendered")          // Normal operations
//	slog.Warn("section failed")             // Potential issues
//	slog.Error("cannot write output")       // Errors requiring action
//
// 4. Log errors with context:
//
//	slog.Error("failed to render briefing",
//	    "error", err,
//	    "format", format,
//	)
//
// # Integration
//
// This package is used by:
//   - pkg/cli - CLI command logging
//   - pkg/collector - Data collection logging
//   - pkg/process - External command logging
//   - pkg/snapshotter - Aggregation logging
//
// All components share consistent logging format and configuration.
package logging
