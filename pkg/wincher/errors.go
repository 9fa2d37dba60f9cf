package wincher

import (
	"errors"
	"fmt"
	"strings"

	"github.com/adrianliechti/wincher-mcp/pkg/rest"
)

var ErrAuthMissing = errors.New(APIKeyEnv + " environment variable not set")

type UnknownOperationError struct {
	Name string
}

func (e *UnknownOperationError) Error() string {
	return "unknown tool: " + e.Name
}

type MissingArgumentError struct {
	Name string
}

func (e *MissingArgumentError) Error() string {
	return "missing required argument: " + e.Name
}

type InvalidArgumentError struct {
	Name string
	Err  error
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %v", e.Name, e.Err)
}

func (e *InvalidArgumentError) Unwrap() error {
	return e.Err
}

type panicError struct {
	value any
}

func (e *panicError) Error() string {
	return fmt.Sprintf("%v", e.value)
}

// Kind classifies err into the taxonomy used in logs and error reports.
func Kind(err error) string {
	var unknownErr *UnknownOperationError
	var missingErr *MissingArgumentError
	var statusErr *rest.StatusError
	var networkErr *rest.NetworkError
	var decodeErr *rest.DecodeError
	var invalidErr *InvalidArgumentError
	var panicErr *panicError

	switch {
	case err == nil:
		return ""
	case errors.As(err, &unknownErr):
		return "UnknownOperation"
	case errors.As(err, &missingErr):
		return "MissingArgument"
	case errors.As(err, &invalidErr):
		return "InvalidArgument"
	case errors.Is(err, ErrAuthMissing), errors.Is(err, rest.ErrMissingCredentials):
		return "AuthMissing"
	case errors.As(err, &statusErr):
		return "HttpStatus"
	case errors.As(err, &networkErr):
		return "Network"
	case errors.As(err, &decodeErr):
		return "DecodeError"
	case errors.As(err, &panicErr):
		return "Panic"
	}

	name := fmt.Sprintf("%T", err)
	name = strings.TrimLeft(name, "*")

	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}

	return name
}

// FormatError renders err as the text block returned to the caller.
func FormatError(err error) string {
	var unknownErr *UnknownOperationError

	if errors.As(err, &unknownErr) {
		return "Unknown tool: " + unknownErr.Name
	}

	var statusErr *rest.StatusError

	if errors.As(err, &statusErr) {
		var sb strings.Builder

		fmt.Fprintf(&sb, "API Error: %d\n", statusErr.StatusCode)
		fmt.Fprintf(&sb, "URL: %s\n", statusErr.URL)
		fmt.Fprintf(&sb, "Response: %s\n", statusErr.Body)

		return sb.String()
	}

	message := err.Error()

	if errors.Is(err, rest.ErrMissingCredentials) {
		message = ErrAuthMissing.Error()
	}

	return fmt.Sprintf("Error: %s\nType: %s", message, Kind(err))
}
