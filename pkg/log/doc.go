// Package log defines the logging abstraction used by domainfn
// components that optionally log, such as the Observe combinator and
// the dfserve service.
//
// The core algebra never logs; this port keeps the logging dependency
// at the edges. Two implementations ship with the module:
//
//	logger := log.NewZerolog(zerolog.New(os.Stderr))
//	logger := log.NewNoop() // for tests
//
// Any other logging library can be plugged in by implementing the
// four-method Logger interface.
package log
