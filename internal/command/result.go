package command

import "encoding/json"

// Result is exactly one of a success value or an error message.
type Result struct {
	value  any
	errMsg string
	failed bool
}

// Ok wraps a success value. A nil value stands for unit.
func Ok(v any) Result { return Result{value: v} }

// Fail wraps err's message. A nil err still yields a failed result.
func Fail(err error) Result {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return Result{errMsg: msg, failed: true}
}

// Failed reports whether r is an error result.
func (r Result) Failed() bool { return r.failed }

// Value is the success payload; nil for error results and unit successes.
func (r Result) Value() any { return r.value }

// Error is the error message; empty for success results.
func (r Result) Error() string { return r.errMsg }

// MarshalJSON encodes {"ok":true,"value":...} or {"ok":false,"error":"..."}.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.failed {
		return json.Marshal(struct {
			OK    bool   `json:"ok"`
			Error string `json:"error"`
		}{false, r.errMsg})
	}
	return json.Marshal(struct {
		OK    bool `json:"ok"`
		Value any  `json:"value"`
	}{true, r.value})
}
