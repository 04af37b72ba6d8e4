// Copyright (c) 2025 Snapcli
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package logging provides the CLI logger and utilities for secure logging and
// error presentation. It masks macaroons, passwords and one-time passcodes
// before they reach a terminal or log line, and renders daemon errors for
// human readers.
package logging

import (
	"regexp"
)

var (
	reMacaroonHeader = regexp.MustCompile(`(?i)(macaroon\s+root=")([^"]*)(")`)
	reJSONSecret     = regexp.MustCompile(`(?i)("(?:macaroon|password|otp|discharges)"\s*:\s*")((?:[^"\\]|\\.)*)(")`)
	reToken          = regexp.MustCompile(`(?i)(token=|bearer\s+)([A-Za-z0-9._-]+)`)
	rePassword       = regexp.MustCompile(`(?i)(password=)([^\s;]+)`)
)

// Mask replaces sensitive values in the input string with "***".
func Mask(s string) string {
	out := s
	out = reMacaroonHeader.ReplaceAllString(out, "${1}***${3}")
	out = reJSONSecret.ReplaceAllString(out, "${1}***${3}")
	out = reToken.ReplaceAllString(out, "$1***")
	out = rePassword.ReplaceAllString(out, "$1***")
	return out
}

// PresentError prefixes the masked error text with what was being done.
func PresentError(context string, err error) string {
	if err == nil {
		return ""
	}
	return context + ": " + Mask(err.Error())
}
