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

package log

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hashicorp/logutils"
)

const caller = 3

// getFilter maps our level names to a logutils filter over the level
// brackets written by levelLogger.
func getFilter(lv string) *logutils.LevelFilter {
	mapLevel := map[string]logutils.LogLevel{
		ERROR: "ERROR",
		INFO:  "INFO",
		DEBUG: "DEBUG",
	}

	return &logutils.LevelFilter{
		Levels:   []logutils.LogLevel{"DEBUG", "INFO", "ERROR"},
		MinLevel: mapLevel[lv],
		Writer:   os.Stdout,
	}
}

// levelLogger writes bracketed level tags through a logutils filter,
// which decides what reaches stdout.
type levelLogger struct {
	log.Logger
}

func newLevel(lv, prefix string) *levelLogger {
	var l levelLogger
	l.SetOutput(getFilter(lv))
	l.SetPrefix(prefix)
	l.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile | log.LUTC)
	return &l
}

func (l *levelLogger) Error(v ...interface{}) {
	l.Output(caller, "[ERROR] "+fmt.Sprint(v...))
	osExit(1)
}

func (l *levelLogger) Errorf(format string, v ...interface{}) {
	l.Output(caller, "[ERROR] "+fmt.Sprintf(format, v...))
	osExit(1)
}

func (l *levelLogger) Info(v ...interface{}) {
	l.Output(caller, "[INFO] "+fmt.Sprint(v...))
}

func (l *levelLogger) Infof(format string, v ...interface{}) {
	l.Output(caller, "[INFO] "+fmt.Sprintf(format, v...))
}

func (l *levelLogger) Debug(v ...interface{}) {
	l.Output(caller, "[DEBUG] "+fmt.Sprint(v...))
}

func (l *levelLogger) Debugf(format string, v ...interface{}) {
	l.Output(caller, "[DEBUG] "+fmt.Sprintf(format, v...))
}

// silentLogger drops everything, but an error still stops execution.
type silentLogger struct {
	log.Logger
}

func newSilent() *silentLogger {
	var l silentLogger
	l.SetOutput(io.Discard)
	return &l
}

func (l *silentLogger) Error(v ...interface{})                 { osExit(1) }
func (l *silentLogger) Errorf(format string, v ...interface{}) { osExit(1) }
func (l *silentLogger) Info(v ...interface{})                  {}
func (l *silentLogger) Infof(format string, v ...interface{})  {}
func (l *silentLogger) Debug(v ...interface{})                 {}
func (l *silentLogger) Debugf(format string, v ...interface{}) {}
