// Package errors provides structured error handling for the Loom toolkit.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindRouting indicates an event routed to a widget id that no
	// longer exists in the tree.
	KindRouting
	// KindLayout indicates a layout-pass anomaly.
	KindLayout
	// KindConfig indicates a configuration load failure.
	KindConfig
	// KindBackend indicates a rendering or windowing backend error.
	KindBackend
)

func (k ErrorKind) String() string {
	switch k {
	case KindRouting:
		return "routing"
	case KindLayout:
		return "layout"
	case KindConfig:
		return "config"
	case KindBackend:
		return "backend"
	default:
		return "unknown"
	}
}

// LoomError represents a structured error in the Loom toolkit.
type LoomError struct {
	// Op is the operation that failed (e.g., "theme.LoadConfig").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *LoomError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *LoomError) Unwrap() error {
	return e.Err
}

// RoutingError reports an event addressed to a widget id that was not
// found in the tree, usually because the tree changed shape after the
// id-assignment walk. These are recoverable: the event is delivered to
// the nearest surviving ancestor instead.
type RoutingError struct {
	// Target is the stale widget id the event was addressed to.
	Target uint64
	// Ancestor is the id of the widget that absorbed the event.
	Ancestor uint64
	// Timestamp is when the miss occurred.
	Timestamp time.Time
}

func (e *RoutingError) Error() string {
	return fmt.Sprintf("event for stale widget id %d delivered to ancestor %d", e.Target, e.Ancestor)
}

// ErrorHandler receives errors reported by the toolkit.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *LoomError)
	// HandleRoutingMiss is called when an event misses its target and
	// falls back to an ancestor. Always recoverable.
	HandleRoutingMiss(err *RoutingError)
}
