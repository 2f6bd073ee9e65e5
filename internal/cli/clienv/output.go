package clienv

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/steviee/go-mc-profiles/internal/profiles"
)

// Output is the JSON envelope printed in --json mode.
type Output struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Code    string      `json:"code,omitempty"`
}

// ErrorCode returns the stable code reported for err in JSON output.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return "INVALID_INPUT"
	case errors.Is(err, ErrProfileNotFound):
		return "PROFILE_NOT_FOUND"
	default:
		return profiles.Code(err)
	}
}

// WriteJSON encodes v as indented JSON.
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode JSON output: %w", err)
	}
	return nil
}

// OutputSuccess prints a success envelope.
func OutputSuccess(w io.Writer, data interface{}, message string) error {
	return WriteJSON(w, Output{
		Status:  "success",
		Data:    data,
		Message: message,
	})
}

// OutputError prints an error envelope in JSON mode and returns err unchanged.
func (e *Env) OutputError(w io.Writer, err error) error {
	if e.JSON {
		_ = WriteJSON(w, Output{
			Status: "error",
			Error:  err.Error(),
			Code:   ErrorCode(err),
		})
	}
	return err
}

// Printf writes human output unless quiet mode is on.
func (e *Env) Printf(w io.Writer, format string, args ...interface{}) {
	if e.Quiet {
		return
	}
	_, _ = fmt.Fprintf(w, format, args...)
}
