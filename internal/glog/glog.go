// Package glog is the one place graft touches github.com/araddon/gou,
// so every package (lexer, parser, evaluator, scheduler, optimiser,
// animation driver) logs through the same facility instead of each
// picking its own. Mirrors the `var _ = u.EMPTY` / direct u.Xxxf call
// idiom used throughout the teacher package (expr/dialect.go,
// expr/parse.go, exec/build.go).
package glog

import (
	u "github.com/araddon/gou"
)

var _ = u.EMPTY

func init() {
	u.SetupLogging("warn")
	u.SetColorOutput()
}

// SetVerbose turns on per-token/per-statement Debugf tracing. Off by
// default: graft programs are short and run many times a second under
// the scheduler, so debug tracing is opt-in only.
func SetVerbose(verbose bool) {
	if verbose {
		u.SetupLogging("debug")
	} else {
		u.SetupLogging("warn")
	}
}

func Debugf(format string, args ...interface{}) { u.Debugf(format, args...) }
func Infof(format string, args ...interface{})  { u.Infof(format, args...) }
func Warnf(format string, args ...interface{})  { u.Warnf(format, args...) }
func Errorf(format string, args ...interface{}) { u.Errorf(format, args...) }
