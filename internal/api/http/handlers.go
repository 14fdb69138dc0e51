package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/taupy/internal/domain/assets"
	"github.com/GriffinCanCode/taupy/internal/infrastructure/logging"
)

// Handlers serves files from one dist root.
type Handlers struct {
	root   string
	logger *logging.Logger
}

// NewHandlers creates a handler set bound to root.
func NewHandlers(root string, logger *logging.Logger) *Handlers {
	return &Handlers{root: root, logger: logger}
}

// ServeAsset writes the file for the request path with status 200, an empty
// 404 when there is none, or an empty 500 when it exists but cannot be read.
// No Content-Type is sent.
func (h *Handlers) ServeAsset(c *gin.Context) {
	asset, err := assets.Load(h.root, c.Request.URL.Path)
	if err != nil {
		var readErr *assets.ReadError
		if errors.As(err, &readErr) {
			h.logger.Error("Failed to read asset",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
			writeEmpty(c, http.StatusInternalServerError)
			return
		}
		h.logger.Debug("Asset not found",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		writeEmpty(c, http.StatusNotFound)
		return
	}

	header := c.Writer.Header()
	header["Content-Type"] = nil
	header.Set("Content-Length", strconv.Itoa(len(asset.Data)))
	c.Status(http.StatusOK)

	if c.Request.Method == http.MethodHead {
		c.Writer.WriteHeaderNow()
		return
	}
	if _, err := c.Writer.Write(asset.Data); err != nil {
		h.logger.Debug("Client went away", zap.String("path", c.Request.URL.Path), zap.Error(err))
	}
}

// NotFound answers every request no route accepts.
func (h *Handlers) NotFound(c *gin.Context) {
	writeEmpty(c, http.StatusNotFound)
}

func writeEmpty(c *gin.Context, status int) {
	c.Writer.Header()["Content-Type"] = nil
	c.Status(status)
	c.Writer.WriteHeaderNow()
}
