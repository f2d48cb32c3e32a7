package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"showphaze/models"
	"showphaze/services/booking"
	ai "showphaze/services/intelligence"
	"showphaze/utils"
)

// AgentHandler exposes the booking agent over HTTP: extraction preview,
// full booking formatting, and cached session retrieval.
type AgentHandler struct {
	Extractor ai.Extractor
	Formatter booking.FormatterService
	Sessions  *ai.RedisSessionStore
}

func NewAgentHandler(extractor ai.Extractor, formatter booking.FormatterService, sessions *ai.RedisSessionStore) *AgentHandler {
	return &AgentHandler{
		Extractor: extractor,
		Formatter: formatter,
		Sessions:  sessions,
	}
}

// QueryHandler runs extraction only and returns the parameter bag, so a
// client can show the user what was understood before booking.
func (h *AgentHandler) QueryHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.AgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	params, err := h.Extractor.ExtractBookingParams(c.Request.Context(), req.Text)
	if err != nil {
		logger.Error("extraction failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Extraction failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": params})
}

// BookHandler runs the full pipeline: extract, format against the catalog,
// cache the outcome under a fresh session id, and return the records.
func (h *AgentHandler) BookHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.AgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	ctx := c.Request.Context()

	params, err := h.Extractor.ExtractBookingParams(ctx, req.Text)
	if err != nil {
		logger.Error("extraction failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Extraction failed", err.Error())
		return
	}

	records, err := h.Formatter.FormatBookingRecords(ctx, *params)
	if err != nil {
		if errors.Is(err, booking.ErrNoPositionData) {
			utils.JSONError(c, http.StatusNotFound, "No position data found", err.Error())
			return
		}
		logger.Error("formatting failed", zap.Error(err))
		utils.JSONError(c, http.StatusUnprocessableEntity, "Could not format booking request", err.Error())
		return
	}

	session := &models.AgentSession{
		SessionID: uuid.NewString(),
		UserID:    req.UserID,
		Query:     req.Text,
		Records:   records,
		CreatedAt: time.Now(),
	}
	if err := h.Sessions.Set(ctx, session); err != nil {
		// A cache failure must not lose the formatted result.
		logger.Warn("failed to cache agent session", zap.Error(err))
	}

	c.JSON(http.StatusOK, models.AgentBookingResponse{
		SessionID: session.SessionID,
		Records:   records,
	})
}

// GetSessionHandler returns a previously cached booking result.
func (h *AgentHandler) GetSessionHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")

	session, err := h.Sessions.Get(c.Request.Context(), sessionID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load session", err.Error())
		return
	}
	if session == nil {
		utils.JSONError(c, http.StatusNotFound, "Session not found or expired", sessionID)
		return
	}

	c.JSON(http.StatusOK, session)
}
