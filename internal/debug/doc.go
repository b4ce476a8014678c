// Package debug provides optional debug logging for the positioning engines.
//
// When the OVERLAY_DEBUG environment variable is set to a file path, debug
// messages are appended to that file through a charmbracelet/log logger.
// Hosts may route messages into their own logger with SetLogger. Otherwise,
// logging is a no-op.
package debug
