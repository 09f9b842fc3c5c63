// Package logger builds the diagnostic logger used by the prettylog
// command.
//
// Diagnostics (undecodable lines, I/O failures, configuration problems)
// are kept apart from the pretty-printed stream: they are written by a
// zap console encoder to stderr while formatted records go to stdout.
//
//	log := logger.NewBuilder().
//	    WithLevel(logger.ParseLevel("debug")).
//	    WithColor(true).
//	    Build()
//
// The core packages never log; only the pipeline and the command take a
// *zap.Logger.
package logger
