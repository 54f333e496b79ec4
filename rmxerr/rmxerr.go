// Package rmxerr holds the error kinds shared across packages and the error message type for the explorer.
package rmxerr

import (
	"errors"

	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
)

type (
	ErrMsg struct {
		Err error
	}
)

var (
	// ErrUndefinedInterval is returned for a quality/number pair outside the interval table.
	ErrUndefinedInterval = errors.New("undefined interval")
	// ErrInvalidCatalog marks a mode whose formula and intervals disagree. Fatal at load.
	ErrInvalidCatalog = errors.New("invalid mode catalog")
	ErrUnknownMode    = errors.New("unknown mode")
	ErrInvalidTonic   = errors.New("invalid tonic")
	ErrSoundFont      = errors.New("soundfont unavailable")
	// ErrKeyRange is returned for MIDI keys outside 0-127.
	ErrKeyRange = errors.New("midi key out of range")
)

func (m ErrMsg) Error() string {
	return m.Err.Error()
}

func (m ErrMsg) Unwrap() error {
	return m.Err
}

// Describe returns the user facing text for err, falling back to the error string.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	if issue := fmsg.GetIssue(err); issue != "" {
		return issue
	}
	return err.Error()
}

// IsUserError reports whether err was caused by bad input rather than a defect.
func IsUserError(err error) bool {
	switch ftag.Get(err) {
	case ftag.InvalidArgument, ftag.NotFound:
		return true
	}
	return false
}
