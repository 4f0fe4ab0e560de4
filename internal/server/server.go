// Package server exposes the resolver over HTTP. It is a thin layer:
// request validation and response shaping live here, every legal
// decision lives in the pipeline.
package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vidhisaar/vidhisaar/internal/pipeline"
)

// Server wires the resolver pipeline into a gin router.
type Server struct {
	pipeline *pipeline.Pipeline
}

// New returns a Server over an assembled pipeline.
func New(p *pipeline.Pipeline) *Server {
	return &Server{pipeline: p}
}

// Router builds the route table. Exposed separately from Run so tests
// can drive it with httptest.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", s.handleHealth)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/analyze", s.handleAnalyze)
		v1.GET("/sections", s.handleSearchSections)
		v1.GET("/sections/:code", s.handleGetSection)
	}

	return r
}

// Run blocks serving HTTP on addr.
func (s *Server) Run(addr string) error {
	return s.Router().Run(addr)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, gin.H{"status": "ok"})
}

// AnalyzeRequest is the POST /api/v1/analyze body. Role is echoed back
// untouched; Urgency bypasses the result cache so a re-submitted urgent
// case is always re-resolved.
type AnalyzeRequest struct {
	Description string `json:"description" binding:"required"`
	Role        string `json:"role"`
	Urgency     bool   `json:"urgency"`
}

func (s *Server) handleAnalyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"message": "description is required"})
		return
	}
	if len(strings.TrimSpace(req.Description)) < 3 {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"message": "description too short"})
		return
	}
	if req.Role == "" {
		req.Role = "victim"
	}

	requestID := uuid.NewString()
	c.Header("X-Request-ID", requestID)

	resolve := s.pipeline.Resolve
	if req.Urgency {
		resolve = s.pipeline.ResolveUncached
	}

	resolution, err := resolve(c.Request.Context(), req.Description)
	if err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	c.IndentedJSON(http.StatusOK, buildAnalyzeResponse(requestID, req.Role, resolution))
}

func (s *Server) handleGetSection(c *gin.Context) {
	code := c.Param("code")
	record, ok := s.pipeline.Catalog().Lookup(code)
	if !ok {
		c.IndentedJSON(http.StatusNotFound, gin.H{"message": "unknown section code: " + code})
		return
	}
	c.IndentedJSON(http.StatusOK, record)
}

func (s *Server) handleSearchSections(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"message": "query parameter q is required"})
		return
	}
	results := s.pipeline.Catalog().Search(q)
	c.IndentedJSON(http.StatusOK, gin.H{"query": q, "count": len(results), "sections": results})
}
