// Package server - Experiment Registry Handler
// Beinhaltet: ListHandler, CreateHandler, ShowHandler, DeleteHandler,
// EvalHandler
package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/resona-asr/resona/api"
	"github.com/resona-asr/resona/config"
	"github.com/resona-asr/resona/store"
	"github.com/resona-asr/resona/types/experiment"
)

// ListHandler verarbeitet /api/experiments Anfragen
func (s *Server) ListHandler(c *gin.Context) {
	experiments, err := s.store.Experiments()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	list := []api.ExperimentResponse{}
	for _, exp := range experiments {
		list = append(list, api.ExperimentResponse{
			Name:       exp.Name.DisplayShortest(),
			Params:     exp.Params,
			SizeBytes:  config.BytesPerParam * exp.Params,
			Notes:      exp.Notes,
			CreatedAt:  exp.CreatedAt,
			ModifiedAt: exp.UpdatedAt,
		})
	}

	c.JSON(http.StatusOK, api.ListResponse{Experiments: list})
}

// CreateHandler verarbeitet POST /api/experiments Anfragen
func (s *Server) CreateHandler(c *gin.Context) {
	var req api.CreateRequest
	if err := c.ShouldBindJSON(&req); errors.Is(err, io.EOF) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "missing request body"})
		return
	} else if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	name := experiment.ParseName(req.Name)
	if !name.IsValid() {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("name %q is invalid", req.Name)})
		return
	}

	cfg, err := config.Load(strings.NewReader(req.Config), loadOpts()...)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := cfg.Valid(); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	exp, err := s.store.SaveExperiment(store.Experiment{
		Name:   name,
		Config: req.Config,
		Params: cfg.EstimateParams(),
		Notes:  req.Notes,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, api.ExperimentResponse{
		Name:       exp.Name.DisplayShortest(),
		Params:     exp.Params,
		SizeBytes:  config.BytesPerParam * exp.Params,
		Notes:      exp.Notes,
		CreatedAt:  exp.CreatedAt,
		ModifiedAt: exp.UpdatedAt,
	})
}

// ShowHandler verarbeitet /api/show Anfragen
func (s *Server) ShowHandler(c *gin.Context) {
	var req api.ShowRequest
	err := c.ShouldBindJSON(&req)
	switch {
	case errors.Is(err, io.EOF):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "missing request body"})
		return
	case err != nil:
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	name := experiment.ParseName(req.Name)
	if !name.IsValid() {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("name %q is invalid", req.Name)})
		return
	}

	exp, err := s.store.Experiment(name)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("experiment %q not found", req.Name)})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	resp := api.ShowResponse{
		Name:       exp.Name.DisplayShortest(),
		Config:     exp.Config,
		Notes:      exp.Notes,
		CreatedAt:  exp.CreatedAt,
		ModifiedAt: exp.UpdatedAt,
	}

	// Gespeicherte Konfigurationen waren beim Anlegen gueltig, beim
	// Anzeigen zaehlt nur noch was sich ableiten laesst
	if cfg, err := config.Load(strings.NewReader(exp.Config), config.WithLenient()); err == nil {
		summary := cfg.Summarize()
		resp.Summary = &summary
	}

	evals, err := s.store.Evals(name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	for _, eval := range evals {
		resp.Evals = append(resp.Evals, api.EvalResponse{
			Split:     eval.Split,
			Epoch:     eval.Epoch,
			WER:       eval.WER,
			CER:       eval.CER,
			CreatedAt: eval.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteHandler verarbeitet /api/delete Anfragen
func (s *Server) DeleteHandler(c *gin.Context) {
	var r api.DeleteRequest
	if err := c.ShouldBindJSON(&r); errors.Is(err, io.EOF) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "missing request body"})
		return
	} else if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := experiment.ParseName(r.Name)
	if !name.IsValid() {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("name %q is invalid", r.Name)})
		return
	}

	if err := s.store.DeleteExperiment(name); errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("experiment %q not found", r.Name)})
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// EvalHandler verarbeitet POST /api/evals Anfragen
func (s *Server) EvalHandler(c *gin.Context) {
	var req api.EvalRequest
	if err := c.ShouldBindJSON(&req); errors.Is(err, io.EOF) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "missing request body"})
		return
	} else if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := experiment.ParseName(req.Name)
	if !name.IsValid() {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("name %q is invalid", req.Name)})
		return
	}

	if req.Split == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "split is required"})
		return
	}
	if req.WER < 0 || req.CER < 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "error rates must not be negative"})
		return
	}

	eval, err := s.store.AddEval(name, store.Eval{
		Split: req.Split,
		Epoch: req.Epoch,
		WER:   req.WER,
		CER:   req.CER,
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("experiment %q not found", req.Name)})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, api.EvalResponse{
		Split:     eval.Split,
		Epoch:     eval.Epoch,
		WER:       eval.WER,
		CER:       eval.CER,
		CreatedAt: eval.CreatedAt,
	})
}
