package leadapi

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnreachable is returned when no HTTP response came back from the API
var ErrUnreachable = errors.New("lead api unreachable")

// FallbackMessage is shown when a rejection carries no usable error text
const FallbackMessage = "There was an error submitting your request. Please try again."

// messageList decodes an error entry that is usually a list of strings.
// A bare string is accepted as a one-element list.
type messageList []string

func (m *messageList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*m = list
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*m = messageList{single}
		return nil
	}
	// Anything else carries no text we can show
	*m = nil
	return nil
}

func (m messageList) first() (string, bool) {
	if len(m) == 0 || m[0] == "" {
		return "", false
	}
	return m[0], true
}

// ErrorBody is the error payload returned by the API on a rejected lead
type ErrorBody struct {
	NonFieldErrors messageList `json:"non_field_errors"`
	Email          messageList `json:"email"`
	Name           messageList `json:"name"`
}

// Message picks the text to show the visitor: general errors first, then the
// email error, then the name error. Phone and state errors are not consulted.
func (b ErrorBody) Message() string {
	for _, list := range []messageList{b.NonFieldErrors, b.Email, b.Name} {
		if msg, ok := list.first(); ok {
			return msg
		}
	}
	return FallbackMessage
}

// RejectedError is returned when the API answered with a non-success status
type RejectedError struct {
	StatusCode int
	Body       ErrorBody
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("lead api rejected submission: status %d: %s", e.StatusCode, e.Body.Message())
}

// Message returns the visitor-facing text for the rejection
func (e *RejectedError) Message() string {
	return e.Body.Message()
}
