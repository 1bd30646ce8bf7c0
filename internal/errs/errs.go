package errs

import (
	"errors"
)

var (
	ErrNoSuchInterface     = errors.New("no such interface")
	ErrUnsupportedHardware = errors.New("unsupported hardware")
)

var (
	ErrModeTransitionFailed   = errors.New("mode transition failed")
	ErrModeTransitionInFlight = errors.New("mode transition already in flight")
)

var (
	ErrAssociationFailed = errors.New("association failed")
	ErrScanInProgress    = errors.New("scan already in progress")
)

var (
	ErrAPStartFailed          = errors.New("access point start failed")
	ErrBridgeActivationFailed = errors.New("bridge activation failed")
)

var (
	ErrInvalidProfile  = errors.New("invalid profile")
	ErrProfileNotFound = errors.New("profile not found")
	ErrProcessNotReady = errors.New("process not ready")
	ErrProcessExited   = errors.New("process exited")
)
