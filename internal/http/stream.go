package httpx

import (
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/target/settle-ui-api/internal/ports"
)

// WriteFileStream copies an upstream file download to the response,
// closing the stream when done. The filename travels on the
// Content-Disposition header.
func WriteFileStream(w http.ResponseWriter, stream ports.FileStream, logger *slog.Logger) {
	defer func() { _ = stream.Body.Close() }()

	contentType := stream.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition",
		mime.FormatMediaType("attachment", map[string]string{"filename": stream.FileName}))

	if _, err := io.Copy(w, stream.Body); err != nil {
		// Headers are already gone; all we can do is note the break.
		if logger != nil {
			logger.Warn("file stream interrupted", "file", stream.FileName, "error", err)
		}
	}
}
