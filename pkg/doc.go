// Package pkg provides shared utilities for the monsmod hook runtime:
// component-tagged structured logging built on log/slog, and the sentinel
// errors returned at the HAL and harness boundary.
//
// Logging defaults to Warn level on stderr. Handler hot paths log at Debug
// only, so the runtime stays silent (and cheap) unless verbosity is raised
// with SetLogLevel.
package pkg
