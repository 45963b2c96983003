package ui

import (
	"fmt"
	"strings"
)

// UI is the contract every front-end implements. OnMessage is called by
// the dispatch loop for every event except Stop; Finish is called exactly
// once, after Stop or once the channel closes, to flush final output.
type UI interface {
	OnMessage(m Message)
	Finish()
}

// Type selects which front-end implementation to instantiate.
type Type string

const (
	// TypePrint is the colored line-oriented front-end.
	TypePrint Type = "print"
	// TypeRaw dumps every message in its native representation.
	TypeRaw Type = "raw"
	// TypeCurses is the interactive terminal front-end.
	TypeCurses Type = "curses"
	// TypeJSON writes one serialized envelope per line.
	TypeJSON Type = "json"
	// TypeSilent discards everything.
	TypeSilent Type = "silent"
)

// ParseType maps a case-insensitive name to a front-end type. An
// unrecognized name is a configuration error carrying the input.
func ParseType(name string) (Type, error) {
	switch strings.ToLower(name) {
	case "print":
		return TypePrint, nil
	case "raw":
		return TypeRaw, nil
	case "curses":
		return TypeCurses, nil
	case "json":
		return TypeJSON, nil
	case "silent":
		return TypeSilent, nil
	default:
		return "", fmt.Errorf("unknown ui: %s", name)
	}
}

// Run is the consumer side of the protocol: it receives messages until a
// Stop arrives or the channel is closed and drained, forwarding each one
// to the front-end, then closes the receiver and finalizes the front-end
// exactly once.
func Run(r *Receiver, front UI) {
	for {
		m, ok := r.Recv()
		if !ok {
			break
		}
		if _, stop := m.(Stop); stop {
			break
		}
		front.OnMessage(m)
	}
	r.Close()
	front.Finish()
}
