package core

import (
	"errors"
)

var (
	ErrInvalidConfig   = errors.New("invalid configuration")
	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrUnknownEye      = errors.New("unknown eye")
	ErrWatcherClosed   = errors.New("watcher already closed")
)
