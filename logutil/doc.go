// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package logutil provides structured logging for colorfmt on top of slog.
//
// Logs are diagnostics only: they go to stderr and never into rendered
// output.
//
// # Basic Usage
//
//	// Initialize logging (typically in the root command)
//	logutil.SetupFromEnv(os.Stderr, debug, structured)
//
//	// Log messages at different levels
//	logutil.Debug("decoded document", "syntax", "yaml")
//	logutil.Warn("theme file is world-writable", "path", path)
//
//	// Component loggers carry context
//	log := logutil.NewLogger("cli").WithOperation("render").WithInput(path)
//	log.Debug("rendering", "indent", 1)
//
// # Debug Mode
//
// Debug logging can be enabled in two ways:
//   - Pass debug=true to SetupLogger or SetupFromEnv (the --debug flag)
//   - Set COLORFMT_DEBUG=true and call SetupFromEnv
//
// # Structured Logging
//
// When structured is true, or COLORFMT_LOG_FORMAT=json, logs are output as JSON:
//
//	{"time":"2024-01-15T10:30:00Z","level":"DEBUG","msg":"decoded document","component":"tree","syntax":"yaml"}
//
// Otherwise, logs use a human-readable text format:
//
//	time=2024-01-15T10:30:00Z level=DEBUG msg="decoded document" component=tree syntax=yaml
package logutil
