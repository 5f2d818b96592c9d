package delivery

import (
	"errors"
	"io"
	"net/http"

	"adpulse/internal/domain"
	"adpulse/internal/usecase"
	"adpulse/pkg/logger"
	"adpulse/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// handles HTTP requests
type HTTPHandlers struct {
	pipeline      *usecase.PipelineService
	insights      *usecase.InsightsService
	assistant     *usecase.AssistantService
	settings      domain.SettingsRepository
	logger        *logger.Logger
	metrics       *metrics.Metrics
	maxChunkBytes int
}

// creates new HTTP handlers
func NewHTTPHandlers(
	pipeline *usecase.PipelineService,
	insights *usecase.InsightsService,
	assistant *usecase.AssistantService,
	settings domain.SettingsRepository,
	logger *logger.Logger,
	metrics *metrics.Metrics,
	maxChunkBytes int,
) *HTTPHandlers {
	return &HTTPHandlers{
		pipeline:      pipeline,
		insights:      insights,
		assistant:     assistant,
		settings:      settings,
		logger:        logger,
		metrics:       metrics,
		maxChunkBytes: maxChunkBytes,
	}
}

// HealthCheck reports service liveness.
func (h *HTTPHandlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type initFileRequest struct {
	Name string `json:"name" binding:"required"`
}

// InitFile registers a new upload and returns its opaque file identifier.
func (h *HTTPHandlers) InitFile(c *gin.Context) {
	h.metrics.IncHTTPRequestsInFlight()
	defer h.metrics.DecHTTPRequestsInFlight()

	var req initFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid request body", err)
		return
	}

	ds, err := h.pipeline.InitFile(c.Request.Context(), req.Name)
	if err != nil {
		h.serverError(c, "Failed to initialize upload", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"file_id":    ds.ID,
		"name":       ds.Name,
		"request_id": c.GetString("request_id"),
	})
}

// AppendChunk ingests one newline-delimited CSV chunk. The chunk either
// repeats the header or is marked as an append via ?append=1. A failing
// chunk must not abort the remaining ones, so the accepted count is always
// reported back.
func (h *HTTPHandlers) AppendChunk(c *gin.Context) {
	h.metrics.IncHTTPRequestsInFlight()
	defer h.metrics.DecHTTPRequestsInFlight()

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, int64(h.maxChunkBytes)+1))
	if err != nil {
		h.badRequest(c, "Failed to read chunk body", err)
		return
	}
	if len(body) > h.maxChunkBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error":      "Chunk exceeds size limit",
			"request_id": c.GetString("request_id"),
		})
		return
	}

	isAppend := c.Query("append") == "1" || c.Query("append") == "true"
	accepted, err := h.pipeline.AppendChunk(c.Request.Context(), c.Param("id"), string(body), isAppend)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.notFound(c)
			return
		}
		// Best-effort: report how far we got alongside the failure.
		c.JSON(http.StatusConflict, gin.H{
			"error":           err.Error(),
			"chunks_accepted": accepted,
			"request_id":      c.GetString("request_id"),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"chunks_accepted": accepted,
		"request_id":      c.GetString("request_id"),
	})
}

// Commit runs the ingestion pipeline over the assembled upload.
func (h *HTTPHandlers) Commit(c *gin.Context) {
	h.metrics.IncHTTPRequestsInFlight()
	defer h.metrics.DecHTTPRequestsInFlight()

	ds, merged, err := h.pipeline.Commit(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.notFound(c)
			return
		}
		h.serverError(c, "Failed to commit upload", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"file_id":    ds.ID,
		"merged":     merged,
		"records":    len(ds.Records),
		"request_id": c.GetString("request_id"),
	})
}

// DeleteFile removes a dataset and its settings.
func (h *HTTPHandlers) DeleteFile(c *gin.Context) {
	h.metrics.IncHTTPRequestsInFlight()
	defer h.metrics.DecHTTPRequestsInFlight()

	id := c.Param("id")
	if err := h.pipeline.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.notFound(c)
			return
		}
		h.serverError(c, "Failed to delete dataset", err)
		return
	}
	if err := h.settings.Delete(c.Request.Context(), id); err != nil {
		h.logger.WithContext(c.Request.Context()).WithError(err).Warn("Failed to delete settings")
	}

	c.JSON(http.StatusOK, gin.H{
		"deleted":    id,
		"request_id": c.GetString("request_id"),
	})
}

// GetRecords returns the canonical records of a committed dataset.
func (h *HTTPHandlers) GetRecords(c *gin.Context) {
	h.metrics.IncHTTPRequestsInFlight()
	defer h.metrics.DecHTTPRequestsInFlight()

	records, err := h.pipeline.Records(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.notFound(c)
			return
		}
		h.serverError(c, "Failed to load records", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  records,
		"total": len(records),
	})
}

// GetGroups returns the aggregated, date-synchronized groups. Explicit
// from/to query bounds win; otherwise the stored date-range settings apply.
func (h *HTTPHandlers) GetGroups(c *gin.Context) {
	h.metrics.IncHTTPRequestsInFlight()
	defer h.metrics.DecHTTPRequestsInFlight()

	id := c.Param("id")
	from, to := h.dateRange(c, id)

	groups, err := h.pipeline.Groups(c.Request.Context(), id, from, to)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.notFound(c)
			return
		}
		h.serverError(c, "Failed to aggregate", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  groups,
		"total": len(groups),
	})
}

// GetSummary returns the KPI card payload.
func (h *HTTPHandlers) GetSummary(c *gin.Context) {
	h.metrics.IncHTTPRequestsInFlight()
	defer h.metrics.DecHTTPRequestsInFlight()

	id := c.Param("id")
	from, to := h.dateRange(c, id)

	summary, err := h.insights.Summarize(c.Request.Context(), id, from, to)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.notFound(c)
			return
		}
		h.serverError(c, "Failed to summarize", err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetSettings returns the per-file dashboard settings.
func (h *HTTPHandlers) GetSettings(c *gin.Context) {
	h.metrics.IncHTTPRequestsInFlight()
	defer h.metrics.DecHTTPRequestsInFlight()

	settings, err := h.settings.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.serverError(c, "Failed to load settings", err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

// PatchSettings merges the provided keys into the stored settings.
func (h *HTTPHandlers) PatchSettings(c *gin.Context) {
	h.metrics.IncHTTPRequestsInFlight()
	defer h.metrics.DecHTTPRequestsInFlight()

	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.badRequest(c, "Invalid settings patch", err)
		return
	}

	settings, err := h.settings.Patch(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		h.badRequest(c, "Failed to apply settings patch", err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

// Chat answers a dashboard chat message with a canned, data-driven reply.
func (h *HTTPHandlers) Chat(c *gin.Context) {
	h.metrics.IncHTTPRequestsInFlight()
	defer h.metrics.DecHTTPRequestsInFlight()

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid chat request", err)
		return
	}

	reply, err := h.assistant.Reply(c.Request.Context(), c.Param("id"), req.Message)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.notFound(c)
			return
		}
		h.serverError(c, "Failed to answer", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reply":      reply,
		"request_id": c.GetString("request_id"),
	})
}

// dateRange resolves the effective from/to bounds for a request: explicit
// query parameters first, then the stored per-file settings.
func (h *HTTPHandlers) dateRange(c *gin.Context, fileID string) (string, string) {
	from := c.Query("from")
	to := c.Query("to")
	if from != "" || to != "" {
		return from, to
	}

	settings, err := h.settings.Get(c.Request.Context(), fileID)
	if err != nil {
		return "", ""
	}
	return settings.DateFrom, settings.DateTo
}

func (h *HTTPHandlers) badRequest(c *gin.Context, message string, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":      message,
		"message":    err.Error(),
		"request_id": c.GetString("request_id"),
	})
}

func (h *HTTPHandlers) notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"error":      "File not found",
		"request_id": c.GetString("request_id"),
	})
}

func (h *HTTPHandlers) serverError(c *gin.Context, message string, err error) {
	h.logger.WithContext(c.Request.Context()).WithError(err).Error(message)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":      message,
		"message":    err.Error(),
		"request_id": c.GetString("request_id"),
	})
}
