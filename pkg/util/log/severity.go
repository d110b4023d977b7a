// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

// Severity is the importance of a log entry.
type Severity int32

// Severity levels, in increasing order of importance.
const (
	Severity_UNKNOWN Severity = iota
	Severity_INFO
	Severity_WARNING
	Severity_ERROR
	Severity_FATAL
)

var severityNames = [...]string{
	Severity_UNKNOWN: "UNKNOWN",
	Severity_INFO:    "INFO",
	Severity_WARNING: "WARNING",
	Severity_ERROR:   "ERROR",
	Severity_FATAL:   "FATAL",
}

func (s Severity) String() string {
	if s < 0 || int(s) >= len(severityNames) {
		return severityNames[Severity_UNKNOWN]
	}
	return severityNames[s]
}

// char returns the single-character prefix used for the severity in
// crdb-v1 formatted entries.
func (s Severity) char() byte {
	return s.String()[0]
}

// SeverityByName attempts to parse the passed-in string into a severity.
func SeverityByName(name string) (Severity, bool) {
	for i, n := range severityNames {
		if n == name {
			return Severity(i), true
		}
	}
	return Severity_UNKNOWN, false
}
