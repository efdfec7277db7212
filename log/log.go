/*
   Copyright 2018-2019 Banco Bilbao Vizcaya Argentaria, S.A.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package log implements the leveled logging wrapper used by the
// command line tooling of this module. The container packages stay
// silent: they are pure in-memory computations and report through
// their return values.
package log

import (
	"os"
)

// Log levels constants
const (
	SILENT = "silent"
	ERROR  = "error"
	INFO   = "info"
	DEBUG  = "debug"
)

// Private interface for the std variable.
type logger interface {
	Error(v ...interface{})
	Errorf(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Debug(v ...interface{})
	Debugf(format string, v ...interface{})
}

// The default logger is an ERROR level logger.
var std logger = newLevel(ERROR, "Positional: ")

// To allow mocking we require a switchable variable.
var osExit = os.Exit

// Below is the public interface for the logger, a proxy for the
// switchable implementation defined in std.

// Error writes to stdout and stops execution.
func Error(v ...interface{}) {
	std.Error(v...)
}

// Errorf writes with params to stdout and stops execution.
func Errorf(format string, v ...interface{}) {
	std.Errorf(format, v...)
}

// Info writes information relative to the usage of the positional
// packages.
func Info(v ...interface{}) {
	std.Info(v...)
}

// Infof writes information with params relative to the usage of the
// positional packages.
func Infof(format string, v ...interface{}) {
	std.Infof(format, v...)
}

// Debug writes internal debug information.
func Debug(v ...interface{}) {
	std.Debug(v...)
}

// Debugf writes internal debug information with params.
func Debugf(format string, v ...interface{}) {
	std.Debugf(format, v...)
}

// SetLogger switches between verbosity loggers. Default is error
// level. Available levels are "silent", "debug", "info" and "error".
func SetLogger(namespace, lv string) {
	prefix := namespace + " "

	switch lv {
	case SILENT:
		std = newSilent()
	case ERROR, INFO, DEBUG:
		std = newLevel(lv, prefix)
	default:
		l := newLevel(INFO, prefix)
		l.Infof("Incorrect level of verbosity (%v) fallback to log.INFO", lv)
		std = l
	}
}
