// Package api - Einfache API-Methoden des Clients.
// Dieses Modul enthaelt alle API-Methoden gegen den Registry-Server.

package api

import (
	"context"
	"fmt"
	"net/http"
)

// List lists experiments stored in the registry.
func (c *Client) List(ctx context.Context) (*ListResponse, error) {
	var lr ListResponse
	if err := c.do(ctx, http.MethodGet, "/api/experiments", nil, &lr); err != nil {
		return nil, err
	}
	return &lr, nil
}

// Create stores an experiment - creating it or updating the experiment
// already stored under the same name.
func (c *Client) Create(ctx context.Context, req *CreateRequest) (*ExperimentResponse, error) {
	var resp ExperimentResponse
	if err := c.do(ctx, http.MethodPost, "/api/experiments", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Show obtains experiment information, including the stored configuration,
// derived details and recorded evaluation results.
func (c *Client) Show(ctx context.Context, req *ShowRequest) (*ShowResponse, error) {
	var resp ShowResponse
	if err := c.do(ctx, http.MethodPost, "/api/show", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Delete deletes an experiment and its evaluation results.
func (c *Client) Delete(ctx context.Context, req *DeleteRequest) error {
	if err := c.do(ctx, http.MethodDelete, "/api/delete", req, nil); err != nil {
		return err
	}
	return nil
}

// Validate checks a raw YAML configuration against the consumer schema and
// returns every violation found.
func (c *Client) Validate(ctx context.Context, req *ValidateRequest) (*ValidateResponse, error) {
	var resp ValidateResponse
	if err := c.do(ctx, http.MethodPost, "/api/validate", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AddEval records an evaluation result for a stored experiment.
func (c *Client) AddEval(ctx context.Context, req *EvalRequest) (*EvalResponse, error) {
	var resp EvalResponse
	if err := c.do(ctx, http.MethodPost, "/api/evals", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Heartbeat checks if the server has started and is responsive; if yes, it
// returns nil, otherwise an error.
func (c *Client) Heartbeat(ctx context.Context) error {
	if err := c.do(ctx, http.MethodHead, "/", nil, nil); err != nil {
		return fmt.Errorf("could not connect to a running resona instance: %w", err)
	}
	return nil
}

// Version returns the version of the resona server.
func (c *Client) Version(ctx context.Context) (string, error) {
	var version struct {
		Version string `json:"version"`
	}

	if err := c.do(ctx, http.MethodGet, "/api/version", nil, &version); err != nil {
		return "", err
	}

	return version.Version, nil
}
