// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"fmt"
	"strings"

	cueerrors "cuelang.org/go/cue/errors"
)

// ErrFileTooLarge is wrapped by CheckFileSize.
var ErrFileTooLarge = errors.New("file too large")

// FormatError rewrites a CUE error so every line names the file and the
// dotted field it refers to, e.g. "config.cue: log.level: conflicting values".
func FormatError(err error, filename string) error {
	if err == nil {
		return nil
	}

	list := cueerrors.Errors(err)
	switch len(list) {
	case 0:
		return fmt.Errorf("%s: %w", filename, err)
	case 1:
		return fmt.Errorf("%s: %s", filename, describe(list[0]))
	}

	lines := make([]string, len(list))
	for i, e := range list {
		lines[i] = describe(e)
	}
	return fmt.Errorf("%s: validation failed:\n  %s", filename, strings.Join(lines, "\n  "))
}

// describe prefixes the message with the field path unless CUE already did.
func describe(e cueerrors.Error) string {
	field := strings.Join(cueerrors.Path(e), ".")
	msg := e.Error()
	if field == "" {
		return msg
	}
	if rest, ok := strings.CutPrefix(msg, field); ok {
		msg = strings.TrimSpace(strings.TrimPrefix(rest, ":"))
	}
	return field + ": " + msg
}

// CheckFileSize rejects data larger than maxSize bytes.
func CheckFileSize(data []byte, maxSize int64, filename string) error {
	if size := int64(len(data)); size > maxSize {
		return fmt.Errorf("%s: %w: %d bytes, limit is %d", filename, ErrFileTooLarge, size, maxSize)
	}
	return nil
}
