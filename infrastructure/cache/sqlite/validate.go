// ABOUTME: Input validation for SQLite cache keys and values
// ABOUTME: Bounds sizes and rejects inputs that SQLite handles poorly

package sqlite

import (
	"errors"
	"fmt"
	"strings"
)

const (
	maxKeyLength   = 255
	maxValueLength = 4 * 1024 * 1024 // feed payloads can be large
)

func validateKey(key string) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}
	if len(key) > maxKeyLength {
		return fmt.Errorf("key too long: max %d characters", maxKeyLength)
	}
	if strings.Contains(key, "\x00") {
		return errors.New("key cannot contain null bytes")
	}
	return nil
}

func validateValue(value []byte) error {
	if len(value) == 0 {
		return errors.New("value cannot be empty")
	}
	if len(value) > maxValueLength {
		return fmt.Errorf("value too large: max %d bytes", maxValueLength)
	}
	return nil
}
