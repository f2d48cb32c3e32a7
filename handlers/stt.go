package handlers

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"showphaze/services/transcription"
	"showphaze/utils"
)

const (
	MaxAudioFileSize = 5 * 1024 * 1024 // 5MB
	AllowedExtension = ".wav"
)

// STTHandler accepts a WAV recording and returns its transcription, which a
// client then feeds back into the agent endpoints as text.
type STTHandler struct {
	Transcriber transcription.Transcriber
}

func NewSTTHandler(transcriber transcription.Transcriber) *STTHandler {
	return &STTHandler{Transcriber: transcriber}
}

func (h *STTHandler) TranscribeHandler(c *gin.Context) {
	logger := utils.GetLogger()

	language := c.DefaultPostForm("language", "en-US")

	file, header, err := c.Request.FormFile("audio")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "audio file is required", err.Error())
		return
	}
	defer file.Close()

	if ext := strings.ToLower(filepath.Ext(header.Filename)); ext != AllowedExtension {
		utils.JSONError(c, http.StatusBadRequest, "invalid file type",
			fmt.Sprintf("expected %s, got %s", AllowedExtension, ext))
		return
	}

	wavData, err := io.ReadAll(io.LimitReader(file, MaxAudioFileSize))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to read audio file", err.Error())
		return
	}

	transcript, err := h.Transcriber.Transcribe(c.Request.Context(), wavData, language)
	if err != nil {
		logger.Error("transcription failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "transcription failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"transcription": transcript})
}
