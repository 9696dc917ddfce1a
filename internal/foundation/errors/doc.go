// Package errors provides the classified error primitives used across blogsite.
//
// Key features:
//   - ErrorCategory: broad classification (config, validation, git, filesystem, render, internal)
//   - ErrorSeverity: impact level (fatal, error, warning, info)
//   - ClassifiedError: structured error with category, severity and context
//   - ErrorBuilder: fluent API for creating classified errors
//   - CLIErrorAdapter: exit codes and presentation for the command line
//
// Example usage:
//
//	err := errors.WrapError(cause, errors.CategoryConfig, "failed to parse site config").
//		WithContext("path", configPath).
//		Build()
package errors
