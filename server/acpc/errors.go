package acpc

import "errors"

var (
	// ErrMalformedMessage is wrapped by every Parse failure.
	ErrMalformedMessage = errors.New("malformed message")
	// ErrIndexOutOfRange is returned by indexed accessors.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrUninitialized is returned by Parser accessors before the first successful Parse.
	ErrUninitialized = errors.New("no message parsed")
)
