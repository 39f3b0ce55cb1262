// Package result defines the uniform envelope every service operation
// returns. Business-rule failures (invalid input, insufficient stock,
// ownership mismatch) are carried as Error envelopes, never as Go errors;
// Go errors are reserved for infrastructure failures.
package result

import "net/http"

// Envelope type-error kinds.
const (
	TypeInvalid      = "INVALID"
	TypeUnauthorized = "UNAUTHORIZED"
	TypeInternal     = "INTERNAL_ERROR"
)

// Result is the envelope handlers depend on. Status carries an
// HTTP-status-like code, StatusMessage is "Success" or "Error".
type Result struct {
	Status        int         `json:"status"`
	StatusMessage string      `json:"statusMessage"`
	TypeError     string      `json:"typeError"`
	Message       string      `json:"message"`
	Data          interface{} `json:"data"`
}

// IsError reports whether the envelope carries a business failure.
func (r *Result) IsError() bool {
	return r.StatusMessage == "Error"
}

// Fetched wraps data read successfully.
func Fetched(data interface{}) *Result {
	return &Result{
		Status:        http.StatusOK,
		StatusMessage: "Success",
		TypeError:     "",
		Message:       "Success",
		Data:          data,
	}
}

// Done wraps the outcome of a successful mutation.
func Done(message string, data interface{}) *Result {
	return &Result{
		Status:        http.StatusCreated,
		StatusMessage: "Success",
		TypeError:     "",
		Message:       message,
		Data:          data,
	}
}

// Invalid reports a validation or business-rule failure. Missing records
// answer through this envelope as well, matching the service contract.
func Invalid(message string) *Result {
	return &Result{
		Status:        http.StatusBadRequest,
		StatusMessage: "Error",
		TypeError:     TypeInvalid,
		Message:       message,
		Data:          nil,
	}
}

// Unauthorized reports an ownership or permission failure.
func Unauthorized(message string) *Result {
	return &Result{
		Status:        http.StatusUnauthorized,
		StatusMessage: "Error",
		TypeError:     TypeUnauthorized,
		Message:       message,
		Data:          nil,
	}
}
