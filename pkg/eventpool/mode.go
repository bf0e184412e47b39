package eventpool

import "strings"

// Mode is a bitset of registration and dispatch policies, fixed when the
// pool is created.
type Mode uint8

const (
	// AllowMultiHandler permits more than one handler on a single event ID.
	AllowMultiHandler Mode = 1 << iota

	// AllowDuplicateHandler permits subscribing the same handler to an
	// event ID more than once.
	AllowDuplicateHandler

	// AllowNoHandler makes dispatch of an event with no registered chain
	// and no default handler a silent success instead of a fault.
	AllowNoHandler
)

// ModeDefault forbids multiple handlers, duplicates and unhandled events.
const ModeDefault Mode = 0

// Has reports whether every bit of flag is set in m.
func (m Mode) Has(flag Mode) bool {
	return m&flag == flag
}

func (m Mode) String() string {
	if m == ModeDefault {
		return "default"
	}
	var parts []string
	if m.Has(AllowMultiHandler) {
		parts = append(parts, "multi-handler")
	}
	if m.Has(AllowDuplicateHandler) {
		parts = append(parts, "duplicate-handler")
	}
	if m.Has(AllowNoHandler) {
		parts = append(parts, "no-handler")
	}
	return strings.Join(parts, "|")
}
