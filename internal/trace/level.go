package trace

import (
	"fmt"
	"strings"
)

// Level controls tracing verbosity.
type Level uint8

const (
	// LevelOff disables tracing.
	LevelOff     Level = iota // no tracing
	LevelError                // only failed operations
	LevelSession              // session boundaries
	LevelWord                 // one span per input word
	LevelOp                   // everything including codec operations
)

// String returns the string representation of Level.
func (l Level) String() string {
	switch l {
	case LevelOff:
		return "off"
	case LevelError:
		return "error"
	case LevelSession:
		return "session"
	case LevelWord:
		return "word"
	case LevelOp:
		return "op"
	default:
		return "unknown"
	}
}

// ParseLevel converts a string to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "", "off":
		return LevelOff, nil
	case "error":
		return LevelError, nil
	case "session":
		return LevelSession, nil
	case "word":
		return LevelWord, nil
	case "op":
		return LevelOp, nil
	default:
		return LevelOff, fmt.Errorf("invalid trace level: %q (expected: off|error|session|word|op)", s)
	}
}

// ShouldEmit returns true if the given scope should emit at this level.
func (l Level) ShouldEmit(scope Scope) bool {
	switch l {
	case LevelOff:
		return false
	case LevelError:
		return false // KindError events bypass ShouldEmit
	case LevelSession:
		return scope <= ScopeSession
	case LevelWord:
		return scope <= ScopeWord
	case LevelOp:
		return true
	}
	return false
}
