// Package server exposes the converter over HTTP. The main endpoint takes
// a raw REA XML document and returns the extracted listings as JSON,
// together with per-listing validation messages and per-fragment skips.
package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"rea_ingest/config"
	"rea_ingest/rea"
	"rea_ingest/scheduler"
	"rea_ingest/validation"
)

type Server struct {
	cfg    *config.Config
	sched  *scheduler.Scheduler
	engine *gin.Engine
}

type convertedListing struct {
	Variant          string            `json:"variant"`
	Listing          json.RawMessage   `json:"listing"`
	ValidationErrors map[string]string `json:"validationErrors,omitempty"`
}

type skippedFragment struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

type convertResponse struct {
	Listings []convertedListing `json:"listings"`
	Skipped  []skippedFragment  `json:"skipped,omitempty"`
}

func New(cfg *config.Config, sched *scheduler.Scheduler) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{cfg: cfg, sched: sched, engine: engine}

	engine.GET("/healthz", s.handleHealth)
	engine.POST("/convert", s.handleConvert)
	engine.POST("/ingest/run", s.handleIngestRun)

	return s
}

func (s *Server) Run() error {
	log.Printf("HTTP server listening on %s", s.cfg.Server.Addr)
	return s.engine.Run(s.cfg.Server.Addr)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleConvert(c *gin.Context) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	result, err := rea.ConvertWithOptions(data, rea.Options{Workers: s.cfg.Ingest.Workers})
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	resp := convertResponse{Listings: make([]convertedListing, 0, len(result.Listings))}

	for _, listing := range result.Listings {
		payload, err := json.Marshal(listing)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("serializing listing: %v", err)})
			return
		}
		resp.Listings = append(resp.Listings, convertedListing{
			Variant:          listing.Variant(),
			Listing:          payload,
			ValidationErrors: validation.Validate(listing),
		})
	}

	for _, skip := range result.Skipped {
		resp.Skipped = append(resp.Skipped, skippedFragment{
			Index:  skip.Index,
			Reason: skip.Reason.Error(),
		})
	}

	c.JSON(http.StatusOK, resp)
}

// handleIngestRun triggers an immediate pass over all configured feed
// directories, outside the schedule.
func (s *Server) handleIngestRun(c *gin.Context) {
	if s.sched == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "ingest is not configured"})
		return
	}
	if err := s.sched.TriggerNow(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "completed"})
}
