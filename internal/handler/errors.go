package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/domain"
	"blog-backend/internal/gateway"
	"blog-backend/internal/logger"
	"blog-backend/internal/service"
)

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Code    string   `json:"code,omitempty"`
	Details any      `json:"details,omitempty"`
	Paths   []string `json:"paths,omitempty"`
}

// respondError writes err with the status its kind maps to. Gateway
// messages are passed through unchanged; unknown errors are logged and
// hidden behind a generic 500.
func respondError(c *gin.Context, err error) {
	var (
		de      *domain.Error
		partial *service.PartialUploadError
		ge      *gateway.Error
	)
	switch {
	case errors.As(err, &de):
		c.JSON(de.HTTPStatus(), ErrorResponse{Error: de.Message, Code: string(de.Code), Details: de.Details})
	case errors.As(err, &partial):
		logger.ErrorContext(c.Request.Context(), "Upload left blobs behind",
			slog.String("bucket", partial.Bucket),
			slog.Any("paths", partial.Paths),
			slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: partial.Error(), Code: "PARTIAL_UPLOAD", Paths: partial.Paths})
	case errors.As(err, &ge):
		status := ge.Status
		if status < 400 || status >= 500 {
			status = http.StatusBadGateway
		}
		c.JSON(status, ErrorResponse{Error: ge.Message, Code: ge.Code})
	default:
		logger.ErrorContext(c.Request.Context(), "Request failed",
			slog.String("path", c.FullPath()),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error", Code: string(domain.CodeInternal)})
	}
}

func badRequest(c *gin.Context, msg string) {
	respondError(c, domain.Validation(msg))
}
