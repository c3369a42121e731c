package asana

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/bornholm/corpus-asana/internal/core/port"
	"github.com/pkg/errors"
)

// Error is returned when the Asana API answers with a non-2xx status code.
type Error struct {
	StatusCode int
	Status     string
	Messages   []string
}

func (e *Error) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("asana api error %d (%s)", e.StatusCode, e.Status)
	}

	return fmt.Sprintf("asana api error %d (%s): %s", e.StatusCode, e.Status, strings.Join(e.Messages, "; "))
}

// Is makes 404 answers match port.ErrNotFound.
func (e *Error) Is(target error) bool {
	return target == port.ErrNotFound && e.StatusCode == http.StatusNotFound
}

type errorResponse struct {
	Errors []struct {
		Message string `json:"message"`
		Help    string `json:"help,omitempty"`
	} `json:"errors"`
}

func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized) || hasStatus(err, http.StatusForbidden)
}

func hasStatus(err error, status int) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return false
	}

	return apiErr.StatusCode == status
}
