package errors

import (
	"fmt"
	"os"
)

// LogHandler is an ErrorHandler that logs errors to stderr.
type LogHandler struct {
	// Verbose enables logging of recoverable routing misses.
	Verbose bool
}

// HandleError logs a LoomError to stderr.
func (h *LogHandler) HandleError(err *LoomError) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "[loom error] %s [%s]: %v\n", err.Op, err.Kind, err.Err)
}

// HandleRoutingMiss logs a RoutingError to stderr when Verbose is set.
// Routing misses are expected after tree mutations and are suppressed
// by default.
func (h *LogHandler) HandleRoutingMiss(err *RoutingError) {
	if err == nil || !h.Verbose {
		return
	}
	fmt.Fprintf(os.Stderr, "[loom routing] %s\n", err.Error())
}
