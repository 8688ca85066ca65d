// Package server exposes the analysis orchestrator, persistence, and export
// collaborators over HTTP.
package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Shivakarthikeya23/CultureSense/internal/analysis"
	"github.com/Shivakarthikeya23/CultureSense/internal/auth"
	"github.com/Shivakarthikeya23/CultureSense/internal/culture"
	"github.com/Shivakarthikeya23/CultureSense/internal/export"
	"github.com/Shivakarthikeya23/CultureSense/internal/storage"
)

type Handler struct {
	svc    *analysis.Service
	repo   storage.Repository
	auth   auth.Provider
	logger *zap.Logger
}

func NewHandler(svc *analysis.Service, repo storage.Repository, authProvider auth.Provider, logger *zap.Logger) *Handler {
	return &Handler{
		svc:    svc,
		repo:   repo,
		auth:   authProvider,
		logger: logger,
	}
}

// Routes registers every endpoint on the router.
func (h *Handler) Routes(r *gin.Engine) {
	profile := r.Group("/api/profile")
	{
		profile.POST("/cross-domain-analysis", h.CrossDomainAnalysis)
		profile.POST("/brand-culture-alignment", h.BrandCultureAlignment)
		profile.POST("/cultural-market-intelligence", h.MarketIntelligence)
		profile.POST("/cultural-persona", h.CulturalPersona)
		profile.POST("/cultural-strategist", h.Strategist)

		// Legacy aliases kept for older dashboard builds.
		profile.POST("/analyze-trends", h.MarketIntelligence)
		profile.POST("/campaign-insights", h.BrandCultureAlignment)
	}

	personas := r.Group("/api/personas")
	{
		personas.POST("", h.SavePersona)
		personas.GET("", h.ListPersonas)
		personas.GET("/:id", h.GetPersona)
		personas.DELETE("/:id", h.DeletePersona)
	}

	analyses := r.Group("/api/analyses")
	{
		analyses.POST("", h.SaveAnalysis)
		analyses.GET("", h.ListAnalyses)
		analyses.GET("/:id", h.GetAnalysis)
		analyses.DELETE("/:id", h.DeleteAnalysis)
	}

	r.POST("/api/export/report", h.ExportReport)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
}

type crossDomainRequest struct {
	Domains     []string          `json:"domains"`
	Preferences map[string]string `json:"preferences"`
}

// CrossDomainAnalysis handles POST /api/profile/cross-domain-analysis.
// Validation happens before the orchestrator runs, so an invalid request
// never touches an adapter or generator.
func (h *Handler) CrossDomainAnalysis(c *gin.Context) {
	var req crossDomainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid domains array is required"})
		return
	}
	if len(req.Domains) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid domains array is required"})
		return
	}
	if req.Preferences == nil {
		req.Preferences = map[string]string{}
	}

	h.logger.Info("analyzing cross-domain cultural intelligence",
		zap.Strings("domains", req.Domains))

	result := h.svc.CrossDomainAnalysis(c.Request.Context(), req.Domains, req.Preferences)
	c.JSON(http.StatusOK, result)
}

type brandRequest struct {
	Brand          string   `json:"brand"`
	TargetAudience string   `json:"targetAudience"`
	Domains        []string `json:"domains"`
}

// BrandCultureAlignment handles POST /api/profile/brand-culture-alignment.
func (h *Handler) BrandCultureAlignment(c *gin.Context) {
	var req brandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Brand, target audience, and domains array are required"})
		return
	}
	if req.Brand == "" || req.TargetAudience == "" || len(req.Domains) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Brand, target audience, and domains array are required"})
		return
	}

	h.logger.Info("analyzing brand-culture alignment",
		zap.String("brand", req.Brand),
		zap.Strings("domains", req.Domains))

	result := h.svc.BrandCultureAlignment(c.Request.Context(), req.Brand, req.TargetAudience, req.Domains)
	c.JSON(http.StatusOK, result)
}

type marketRequest struct {
	Domains   []string `json:"domains"`
	Region    string   `json:"region"`
	Timeframe string   `json:"timeframe"`
}

// MarketIntelligence handles POST /api/profile/cultural-market-intelligence.
func (h *Handler) MarketIntelligence(c *gin.Context) {
	var req marketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid domains array is required"})
		return
	}
	if len(req.Domains) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid domains array is required"})
		return
	}

	h.logger.Info("generating cultural market intelligence",
		zap.Strings("domains", req.Domains),
		zap.String("region", req.Region),
		zap.String("timeframe", req.Timeframe))

	result := h.svc.MarketIntelligence(c.Request.Context(), req.Domains, req.Region, req.Timeframe)
	c.JSON(http.StatusOK, result)
}

type personaRequest struct {
	Preferences map[string]string `json:"preferences"`
}

// CulturalPersona handles POST /api/profile/cultural-persona.
func (h *Handler) CulturalPersona(c *gin.Context) {
	var req personaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid preferences map is required"})
		return
	}
	if req.Preferences == nil {
		req.Preferences = map[string]string{}
	}

	result := h.svc.CulturalPersona(c.Request.Context(), req.Preferences)
	c.JSON(http.StatusOK, result)
}

type strategistRequest struct {
	Message             string                `json:"message"`
	ConversationHistory []culture.ChatMessage `json:"conversationHistory"`
}

// Strategist handles POST /api/profile/cultural-strategist.
func (h *Handler) Strategist(c *gin.Context) {
	var req strategistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid message is required"})
		return
	}
	if req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid message is required"})
		return
	}

	result := h.svc.Strategist(c.Request.Context(), req.Message, req.ConversationHistory)
	c.JSON(http.StatusOK, result)
}

// currentUser resolves the request's user or writes a 401.
func (h *Handler) currentUser(c *gin.Context) (string, bool) {
	userID, ok := h.auth.CurrentUser(c.Request)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
	}
	return userID, ok
}

// SavePersona handles POST /api/personas.
func (h *Handler) SavePersona(c *gin.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	var rec culture.PersonaRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid persona record is required"})
		return
	}

	saved, err := h.repo.CreatePersona(c.Request.Context(), userID, rec)
	if err != nil {
		h.logger.Error("failed to save persona", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save persona"})
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// ListPersonas handles GET /api/personas.
func (h *Handler) ListPersonas(c *gin.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	personas, err := h.repo.PersonasByUser(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("failed to list personas", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list personas"})
		return
	}
	c.JSON(http.StatusOK, personas)
}

// GetPersona handles GET /api/personas/:id.
func (h *Handler) GetPersona(c *gin.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	persona, err := h.repo.PersonaByID(c.Request.Context(), c.Param("id"))
	if err != nil || persona.UserID != userID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Persona not found"})
		return
	}
	c.JSON(http.StatusOK, persona)
}

// DeletePersona handles DELETE /api/personas/:id.
func (h *Handler) DeletePersona(c *gin.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	persona, err := h.repo.PersonaByID(c.Request.Context(), c.Param("id"))
	if err != nil || persona.UserID != userID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Persona not found"})
		return
	}
	if err := h.repo.DeletePersona(c.Request.Context(), persona.ID); err != nil {
		h.logger.Error("failed to delete persona", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete persona"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": persona.ID})
}

type saveAnalysisRequest struct {
	AnalysisType string                 `json:"analysis_type"`
	Payload      map[string]interface{} `json:"payload"`
}

// SaveAnalysis handles POST /api/analyses.
func (h *Handler) SaveAnalysis(c *gin.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req saveAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.AnalysisType == "" || req.Payload == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid analysis_type and payload are required"})
		return
	}

	saved, err := h.repo.CreateAnalysis(c.Request.Context(), userID, req.AnalysisType, req.Payload)
	if err != nil {
		h.logger.Error("failed to save analysis", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save analysis"})
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// ListAnalyses handles GET /api/analyses, optionally filtered by ?type=.
func (h *Handler) ListAnalyses(c *gin.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	var analyses []storage.Analysis
	var err error
	if analysisType := c.Query("type"); analysisType != "" {
		analyses, err = h.repo.AnalysesByType(c.Request.Context(), userID, analysisType)
	} else {
		analyses, err = h.repo.AnalysesByUser(c.Request.Context(), userID)
	}
	if err != nil {
		h.logger.Error("failed to list analyses", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list analyses"})
		return
	}
	c.JSON(http.StatusOK, analyses)
}

// GetAnalysis handles GET /api/analyses/:id.
func (h *Handler) GetAnalysis(c *gin.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	a, err := h.repo.AnalysisByID(c.Request.Context(), c.Param("id"))
	if err != nil || a.UserID != userID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Analysis not found"})
		return
	}
	c.JSON(http.StatusOK, a)
}

// DeleteAnalysis handles DELETE /api/analyses/:id.
func (h *Handler) DeleteAnalysis(c *gin.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	a, err := h.repo.AnalysisByID(c.Request.Context(), c.Param("id"))
	if err != nil || a.UserID != userID {
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			h.logger.Error("failed to load analysis", zap.Error(err))
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Analysis not found"})
		return
	}
	if err := h.repo.DeleteAnalysis(c.Request.Context(), a.ID); err != nil {
		h.logger.Error("failed to delete analysis", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete analysis"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": a.ID})
}

type exportRequest struct {
	Data      map[string]interface{} `json:"data"`
	Domains   []string               `json:"domains"`
	Region    string                 `json:"region"`
	Timeframe string                 `json:"timeframe"`
}

// ExportReport handles POST /api/export/report, rendering an already-built
// payload as plain text.
func (h *Handler) ExportReport(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Data == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid data payload is required"})
		return
	}

	report := export.Report(req.Data, export.Params{
		Domains:   req.Domains,
		Region:    req.Region,
		Timeframe: req.Timeframe,
	})
	c.String(http.StatusOK, report)
}
