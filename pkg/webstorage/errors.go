package webstorage

import (
	"errors"

	"github.com/warpdl/warpstore/pkg/cookiecodec"
)

var (
	// ErrEmptyKey is returned by cookie writes and removals with an empty key.
	ErrEmptyKey = cookiecodec.ErrEmptyKey
	// ErrReservedKey is returned by cookie writes whose key is an attribute name.
	ErrReservedKey = cookiecodec.ErrReservedKey
	// ErrKeyNotFound is returned when removing a cookie that is not present.
	ErrKeyNotFound = errors.New("webstorage: key not found")
	// ErrUnknownMechanism is returned by ParseMechanism.
	ErrUnknownMechanism = errors.New("webstorage: unknown mechanism")
)
