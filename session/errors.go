package session

import "errors"

var (
	// ErrInputStream means the console input could not be read.
	ErrInputStream = errors.New("problem with input")

	// ErrParse means a selection was not a number.
	ErrParse = errors.New("not a number")

	// ErrIndexOutOfRange means a selection number is not one of the listed options.
	ErrIndexOutOfRange = errors.New("no such option")
)
