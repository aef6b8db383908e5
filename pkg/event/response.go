package event

// NoMsg is the message type of widgets that never report anything to
// their parent.
type NoMsg struct{}

type responseKind uint8

const (
	respNone responseKind = iota
	respMsg
	respUnhandled
)

// Response is the outcome of a widget's event handling: consumed with
// nothing to report, a typed message for the parent, or unhandled (to
// be reprocessed by an ancestor). The zero value is the consumed
// response.
type Response[M any] struct {
	kind responseKind
	msg  M
	ev   Event
}

// None returns the consumed response.
func None[M any]() Response[M] {
	return Response[M]{}
}

// Msg returns a response carrying a typed message for the parent.
func Msg[M any](msg M) Response[M] {
	return Response[M]{kind: respMsg, msg: msg}
}

// Unhandled returns a response pushing the event back up for
// reprocessing by an ancestor.
func Unhandled[M any](ev Event) Response[M] {
	return Response[M]{kind: respUnhandled, ev: ev}
}

// IsNone reports whether the event was consumed with nothing to report.
func (r Response[M]) IsNone() bool {
	return r.kind == respNone
}

// Message returns the carried message, if any.
func (r Response[M]) Message() (M, bool) {
	return r.msg, r.kind == respMsg
}

// UnhandledEvent returns the event pushed back up, if any.
func (r Response[M]) UnhandledEvent() (Event, bool) {
	if r.kind != respUnhandled {
		return nil, false
	}
	return r.ev, true
}

// Map converts a child response into the parent's message type,
// preserving None and Unhandled untouched.
func Map[C, M any](r Response[C], convert func(C) M) Response[M] {
	switch r.kind {
	case respMsg:
		return Msg(convert(r.msg))
	case respUnhandled:
		return Unhandled[M](r.ev)
	default:
		return None[M]()
	}
}

// DiscardMsg converts a child response into the parent's message type by
// dropping any message, for children whose reports the parent ignores.
func DiscardMsg[C, M any](r Response[C]) Response[M] {
	if r.kind == respUnhandled {
		return Unhandled[M](r.ev)
	}
	return None[M]()
}
