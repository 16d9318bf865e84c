// Package server - Validierungs-Handler
// Beinhaltet: ValidateHandler fuer /api/validate
package server

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/resona-asr/resona/api"
	"github.com/resona-asr/resona/config"
)

// ValidateHandler verarbeitet POST /api/validate Anfragen. Der Body ist
// entweder eine JSON-Huelle {"config": "<yaml>"} oder roher YAML-Text.
func (s *Server) ValidateHandler(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(bytes.TrimSpace(body)) == 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "missing request body"})
		return
	}

	raw := body
	var req api.ValidateRequest
	if err := json.Unmarshal(body, &req); err == nil && req.Config != "" {
		raw = []byte(req.Config)
	}

	cfg, err := config.Load(bytes.NewReader(raw), loadOpts()...)
	if err != nil {
		// Schema-Fehler sind ein Befund, kein Request-Fehler
		c.JSON(http.StatusOK, api.ValidateResponse{Errors: []string{err.Error()}})
		return
	}

	resp := api.ValidateResponse{Valid: true}
	for _, err := range cfg.Validate() {
		resp.Valid = false
		resp.Errors = append(resp.Errors, err.Error())
	}
	resp.Warnings = cfg.Warnings()

	if resp.Valid {
		summary := cfg.Summarize()
		resp.Summary = &summary
	}

	c.JSON(http.StatusOK, resp)
}
