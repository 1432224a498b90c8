// Package debug provides optional file-based trace logging for the
// arrangement engine.
//
// When the ASCII_DEBUG environment variable is set to a file path, engine
// visits are appended to that file at debug level. Otherwise the logger
// discards everything.
package debug
