// ABOUTME: Destination file writing with a generated-timestamp comment header
// ABOUTME: Platform line terminator and env-size ceiling constants

package session

import (
	"fmt"
	"os"
	"runtime"
	"time"
)

// lineSeparator is the host platform's line terminator.
var lineSeparator = func() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}()

// maxEnvSize is the ceiling for the assembled output. Windows caps the
// environment block at 32767 characters; elsewhere the 128K ARG_MAX
// fallback from the original tool applies.
var maxEnvSize = func() int {
	if runtime.GOOS == "windows" {
		return 32767
	}
	return 131072
}()

// writeEnvFile writes the assembled variables to path, preceded by a
// generated-timestamp header.
func writeEnvFile(path, content string, now time.Time) error {
	header := fmt.Sprintf("# Generated by scaffold on %s%s", now.Format("01/02/2006 15:04:05"), lineSeparator) +
		fmt.Sprintf("# Do not edit this file directly; use the template instead.%s", lineSeparator)

	if err := os.WriteFile(path, []byte(header+content), 0o600); err != nil {
		return fmt.Errorf("writing environment file: %w", err)
	}
	return nil
}
