package logging

import (
	"fmt"
	"strings"
)

const (
	// TraceLevel is the most verbose level, logging every folded Record
	TraceLevel = iota
	// DebugLevel logs the lifecycle of each worker and source
	DebugLevel
	// InfoLevel logs the beginning and end of a run
	InfoLevel
	// WarnLevel logs questionable configuration
	WarnLevel
	// ErrorLevel logs failed sources and runs
	ErrorLevel
	// FatalLevel indicates a log message's level of criticality
	FatalLevel
)

var levelNames = []string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

// LogLevelToString translates a log level enum to a string representation
func LogLevelToString(level int) string {
	if level < TraceLevel || level > FatalLevel {
		return levelNames[TraceLevel]
	}
	return levelNames[level]
}

// ParseLogLevel translates a string representation of a log level to a log level enum
func ParseLogLevel(s string) (int, error) {
	for level, name := range levelNames {
		if strings.EqualFold(s, name) {
			return level, nil
		}
	}
	return 0, fmt.Errorf("Unknown log level %q", s)
}
