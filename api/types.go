// types.go - Core API Types (Requests, Responses, Errors)
// Enthaelt: StatusError, ValidateRequest/Response, CreateRequest,
// ExperimentResponse, ShowRequest/Response, DeleteRequest, EvalRequest
package api

import (
	"fmt"
	"time"

	"github.com/resona-asr/resona/config"
)

// StatusError is an error with an HTTP status code and message.
type StatusError struct {
	StatusCode   int
	Status       string
	ErrorMessage string `json:"error"`
}

func (e StatusError) Error() string {
	switch {
	case e.Status != "" && e.ErrorMessage != "":
		return fmt.Sprintf("%s: %s", e.Status, e.ErrorMessage)
	case e.Status != "":
		return e.Status
	case e.ErrorMessage != "":
		return e.ErrorMessage
	default:
		// this should not happen
		return "something went wrong, please see the resona server logs for details"
	}
}

// ValidateRequest carries a raw YAML training configuration to validate.
type ValidateRequest struct {
	Config string `json:"config"`
}

// ValidateResponse reports whether a configuration is usable for training,
// every violation found, and derived facts about the resulting model.
type ValidateResponse struct {
	Valid    bool            `json:"valid"`
	Errors   []string        `json:"errors,omitempty"`
	Warnings []string        `json:"warnings,omitempty"`
	Summary  *config.Summary `json:"summary,omitempty"`
}

// CreateRequest creates or updates a named experiment from a full
// configuration in YAML form.
type CreateRequest struct {
	Name   string `json:"name"`
	Config string `json:"config"`
	Notes  string `json:"notes,omitempty"`
}

// ExperimentResponse is a single stored experiment as returned in listings.
type ExperimentResponse struct {
	Name       string    `json:"name"`
	Params     uint64    `json:"params"`
	SizeBytes  uint64    `json:"size_bytes"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}

// ListResponse lists stored experiments.
type ListResponse struct {
	Experiments []ExperimentResponse `json:"experiments"`
}

// ShowRequest names the experiment to inspect.
type ShowRequest struct {
	Name string `json:"name"`
}

// ShowResponse returns the stored configuration together with derived
// details and all recorded evaluation results.
type ShowResponse struct {
	Name       string          `json:"name"`
	Config     string          `json:"config"`
	Summary    *config.Summary `json:"summary,omitempty"`
	Notes      string          `json:"notes,omitempty"`
	Evals      []EvalResponse  `json:"evals,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	ModifiedAt time.Time       `json:"modified_at"`
}

// DeleteRequest names the experiment to delete.
type DeleteRequest struct {
	Name string `json:"name"`
}

// EvalRequest records an error-rate measurement for a stored experiment.
type EvalRequest struct {
	Name  string  `json:"name"`
	Split string  `json:"split"`
	Epoch int     `json:"epoch,omitempty"`
	WER   float64 `json:"wer"`
	CER   float64 `json:"cer"`
}

// EvalResponse is a stored evaluation result.
type EvalResponse struct {
	Split     string    `json:"split"`
	Epoch     int       `json:"epoch"`
	WER       float64   `json:"wer"`
	CER       float64   `json:"cer"`
	CreatedAt time.Time `json:"created_at"`
}
