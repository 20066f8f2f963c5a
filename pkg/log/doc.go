// Package log is the logging facade shared by docship's packages.
//
// Components accept a Logger and default to NoopLogger, so the library is
// silent unless the embedder opts in. The CLI wires zerolog:
//
//	logger := log.NewZerolog(zerolog.New(os.Stderr).With().Timestamp().Logger())
//
// Any other backend can be used by implementing the four Logger methods.
package log
