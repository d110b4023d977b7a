// Copyright 2020 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package exit

// Success (0) represents a normal process termination.
func Success() Code { return Code{0} }

// UnspecifiedError (1) indicates the process has terminated with an
// error condition. The specific cause of the error can be found in
// the logging output.
func UnspecifiedError() Code { return Code{1} }

// UnspecifiedGoPanic (2) indicates the process has terminated due to
// an uncaught Go panic or some other error in the Go runtime.
//
// This should not be used when implementing features.
func UnspecifiedGoPanic() Code { return Code{2} }

// CommandLineFlagError (4) indicates there was an error in the
// command-line parameters.
func CommandLineFlagError() Code { return Code{4} }

// LoggingStderrUnavailable (5) indicates that an error occurred
// during a logging operation to the process' stderr stream.
func LoggingStderrUnavailable() Code { return Code{5} }

// FatalError (7) indicates that a container operation failed under the
// exit-on-error policy, or that a Fatal message was logged.
func FatalError() Code { return Code{7} }

// Codes that are specific to client commands follow. Command-specific exit
// codes are allocated down from 125.

// DemoScriptFailed (125) indicates that an operation in a ringdemo script
// returned an error under the return-errors policy.
func DemoScriptFailed() Code { return Code{125} }
