package organize

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConfiguration marks invalid source or destination arguments. It is
	// the only error class that aborts a run before traversal starts.
	ErrConfiguration = errors.New("configuration error")
	// ErrHash marks a file that could not be read for digesting.
	ErrHash = errors.New("hash error")
	// ErrMove marks a failed filesystem move.
	ErrMove = errors.New("move error")
	// ErrResolverExhausted marks a collision probe that ran out of attempts.
	ErrResolverExhausted = errors.New("rename attempts exhausted")
)

// Wrap builds an error message that includes operation context while tagging
// it with the provided marker for later classification with errors.Is.
func Wrap(marker error, operation, message string, err error) error {
	detail := buildDetail(operation, message)
	if marker == nil {
		marker = ErrMove
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(operation, message string) string {
	parts := make([]string, 0, 2)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "organize failure"
	}
	return strings.Join(parts, ": ")
}
