package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/doanhtu/image-interpolation/internal/config"
	"github.com/doanhtu/image-interpolation/internal/models"
	"github.com/doanhtu/image-interpolation/internal/services/processor"
	"github.com/doanhtu/image-interpolation/pkg/utils"
)

const (
	imageParamKey  = "image"
	imagesParamKey = "images"
	scaleParamKey  = "scale"
)

type ImageHandler struct {
	processor *processor.ImageProcessor
	storage   ResultStore
	queue     JobQueue
	logger    *zap.Logger
	config    *config.Config
}

func NewImageHandler(
	proc *processor.ImageProcessor,
	storage ResultStore,
	queue JobQueue,
	logger *zap.Logger,
	cfg *config.Config,
) *ImageHandler {
	return &ImageHandler{
		processor: proc,
		storage:   storage,
		queue:     queue,
		logger:    logger,
		config:    cfg,
	}
}

// === MAIN API ENDPOINTS ===

// ResizeImage handles one uploaded image, producing all four
// interpolation variants at the requested scale.
func (h *ImageHandler) ResizeImage(c *gin.Context) {
	file, header, err := c.Request.FormFile(imageParamKey)
	if err != nil {
		h.respondError(c, http.StatusBadRequest, "No image file provided")
		return
	}
	defer file.Close()

	scale, err := h.parseScale(c.PostForm(scaleParamKey))
	if err != nil {
		h.respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.processor.ValidateImage(file, h.config.Storage.MaxFileSize); err != nil {
		h.respondError(c, http.StatusBadRequest, "Invalid image: "+err.Error())
		return
	}

	data, err := h.readUpload(file)
	if err != nil {
		h.logger.Error("Failed to read upload", zap.Error(err))
		h.respondError(c, http.StatusInternalServerError, "Internal file error")
		return
	}

	result, err := h.resizeSource(c.Request.Context(), header.Filename, data, scale)
	if err != nil {
		h.logger.Error("Processing failed", zap.String("filename", header.Filename), zap.Error(err))
		h.respondError(c, http.StatusInternalServerError, "Failed to process image")
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data:    result,
	})
}

// BatchResize processes every uploaded file independently. A file that
// fails to decode yields one error entry and never aborts the rest.
func (h *ImageHandler) BatchResize(c *gin.Context) {
	files, err := h.parseMultipartFiles(c)
	if err != nil {
		h.respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	scale, err := h.parseScale(c.PostForm(scaleParamKey))
	if err != nil {
		h.respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	response := models.BatchResponse{}
	for _, fh := range files {
		item := h.processBatchFile(c, fh, scale)
		if item.Error != "" {
			response.Failed++
		} else {
			response.Processed++
		}
		response.Items = append(response.Items, item)
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data:    response,
	})
}

// FolderResize resizes every accepted image inside a server-side
// directory. A bad path is reported once and nothing is processed;
// failures inside a valid directory are isolated per file.
func (h *ImageHandler) FolderResize(c *gin.Context) {
	var req models.FolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	scale, err := h.validateScale(req.Scale)
	if err != nil {
		h.respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	entries, err := os.ReadDir(req.Path)
	if err != nil {
		h.respondError(c, http.StatusBadRequest, "Invalid directory path: "+err.Error())
		return
	}

	response := models.BatchResponse{}
	for _, entry := range entries {
		if entry.IsDir() || !utils.HasImageExtension(entry.Name()) {
			continue
		}

		item := h.processFolderFile(c, filepath.Join(req.Path, entry.Name()), scale)
		if item.Error != "" {
			response.Failed++
		} else {
			response.Processed++
		}
		response.Items = append(response.Items, item)
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data:    response,
	})
}

// Download streams a stored variant PNG with its download filename.
func (h *ImageHandler) Download(c *gin.Context) {
	id := c.Param("id")

	data, filename, err := h.storage.GetVariant(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("Failed to fetch variant", zap.String("id", id), zap.Error(err))
		h.respondError(c, http.StatusInternalServerError, "Failed to fetch variant")
		return
	}
	if data == nil {
		h.respondError(c, http.StatusNotFound, "Variant not found or expired")
		return
	}

	// The filename key can expire independently of the data key.
	if filename == "" {
		filename = id + ".png"
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "image/png", data)
}

// CreateJob queues an async resize of a remote image.
func (h *ImageHandler) CreateJob(c *gin.Context) {
	if h.queue == nil {
		h.respondError(c, http.StatusServiceUnavailable, "Async processing is not available")
		return
	}

	var req models.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	scale, err := h.validateScale(req.Scale)
	if err != nil {
		h.respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	job := &models.ProcessingJob{
		ID:        uuid.New().String(),
		ImageURL:  req.ImageURL,
		Scale:     scale,
		Status:    models.StatusPending,
		CreatedAt: time.Now(),
	}

	if err := h.storage.SaveJob(c.Request.Context(), job); err != nil {
		h.logger.Error("Failed to persist job", zap.Error(err))
		h.respondError(c, http.StatusInternalServerError, "Failed to create job")
		return
	}

	if err := h.queue.PublishJob(c.Request.Context(), job); err != nil {
		h.logger.Error("Failed to publish job", zap.Error(err))
		h.respondError(c, http.StatusInternalServerError, "Failed to queue job")
		return
	}

	c.JSON(http.StatusAccepted, models.APIResponse{
		Success: true,
		Data:    job,
	})
}

// GetJob reports the status and, once completed, the result of an
// async job.
func (h *ImageHandler) GetJob(c *gin.Context) {
	id := c.Param("id")

	job, err := h.storage.GetJob(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("Failed to fetch job", zap.String("id", id), zap.Error(err))
		h.respondError(c, http.StatusInternalServerError, "Failed to fetch job")
		return
	}
	if job == nil {
		h.respondError(c, http.StatusNotFound, "Job not found")
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data:    job,
	})
}

// QueueStats reports queue depth and consumer count.
func (h *ImageHandler) QueueStats(c *gin.Context) {
	if h.queue == nil {
		h.respondError(c, http.StatusServiceUnavailable, "Async processing is not available")
		return
	}

	stats, err := h.queue.GetQueueStats()
	if err != nil {
		h.logger.Error("Failed to inspect queue", zap.Error(err))
		h.respondError(c, http.StatusInternalServerError, "Failed to inspect queue")
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data:    stats,
	})
}

// HealthCheck aggregates backing service health.
func (h *ImageHandler) HealthCheck(c *gin.Context) {
	services := h.storage.HealthCheck(c.Request.Context())
	if h.queue != nil {
		services["rabbitmq"] = h.queue.HealthCheck()
	} else {
		services["rabbitmq"] = "not configured"
	}

	overall := h.calculateOverallHealth(services)

	statusCode := http.StatusOK
	if overall == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, models.APIResponse{
		Success: overall == "healthy",
		Data: models.HealthCheck{
			Status:    overall,
			Timestamp: time.Now(),
			Services:  services,
		},
	})
}
