package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"realartist-backend/internal/generation"
	"realartist-backend/internal/models"
)

// statusClientClosedRequest is recorded when the caller hangs up during a simulated render.
const statusClientClosedRequest = 499

type GenerationHandler struct {
	simulator *generation.Simulator
	logger    *zap.SugaredLogger
}

func NewGenerationHandler(simulator *generation.Simulator, logger *zap.SugaredLogger) *GenerationHandler {
	return &GenerationHandler{simulator: simulator, logger: logger}
}

// GenerateScript godoc
// @Summary     Generate song script
// @Description Splits lyrics into a song structure after a simulated processing delay
// @Tags        ai
// @Accept      json
// @Produce     json
// @Param       body body models.GenerateScriptRequest true "Lyrics and style"
// @Success     200 {object} models.ScriptResult
// @Failure     400 {object} models.ErrorResponse
// @Failure     429 {object} map[string]interface{}
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/ai/generate-script [post]
func (h *GenerationHandler) GenerateScript(c *gin.Context) {
	var req models.GenerateScriptRequest
	if !bindJSON(c, &req, "Invalid script request") {
		return
	}

	result, err := h.simulator.Script(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err, "Failed to generate AI script")
		return
	}
	c.JSON(http.StatusOK, result)
}

// GenerateVoice godoc
// @Summary     Generate vocals
// @Description Returns a fabricated vocal render for the chosen AI artist
// @Tags        ai
// @Accept      json
// @Produce     json
// @Param       body body models.GenerateVoiceRequest true "Script and voice"
// @Success     200 {object} models.VoiceResult
// @Failure     400 {object} models.ErrorResponse
// @Failure     429 {object} map[string]interface{}
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/ai/generate-voice [post]
func (h *GenerationHandler) GenerateVoice(c *gin.Context) {
	var req models.GenerateVoiceRequest
	if !bindJSON(c, &req, "Invalid voice request") {
		return
	}

	result, err := h.simulator.Voice(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err, "Failed to generate AI voice")
		return
	}
	c.JSON(http.StatusOK, result)
}

// GenerateInstrumental godoc
// @Summary     Generate instrumental
// @Description Returns a fabricated backing track with arrangement and stems
// @Tags        ai
// @Accept      json
// @Produce     json
// @Param       body body models.GenerateInstrumentalRequest true "Style"
// @Success     200 {object} models.InstrumentalResult
// @Failure     400 {object} models.ErrorResponse
// @Failure     429 {object} map[string]interface{}
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/ai/generate-instrumental [post]
func (h *GenerationHandler) GenerateInstrumental(c *gin.Context) {
	var req models.GenerateInstrumentalRequest
	if !bindJSON(c, &req, "Invalid instrumental request") {
		return
	}

	result, err := h.simulator.Instrumental(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err, "Failed to generate AI instrumental")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *GenerationHandler) fail(c *gin.Context, err error, message string) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		h.logger.Infow("generation abandoned by client",
			"path", c.Request.URL.Path,
			"error", err,
		)
		c.AbortWithStatus(statusClientClosedRequest)
		return
	}
	respondInternal(c, h.logger, err, message)
}
