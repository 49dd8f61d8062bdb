// github.com/doka-one/doka/internal/fileserver/interface/http/download/download.go
package download

import (
	"net/http"

	"go.uber.org/zap"

	svc "github.com/doka-one/doka/internal/fileserver/service/download"
	"github.com/doka-one/doka/pkg/httperror"
)

type DownloadHTTPHandler struct {
	logger  *zap.Logger
	service svc.Service
}

func NewDownloadHTTPHandler(logger *zap.Logger, service svc.Service) *DownloadHTTPHandler {
	return &DownloadHTTPHandler{logger: logger, service: service}
}

func (*DownloadHTTPHandler) Pattern() string {
	return "GET /download/{file_ref}"
}

// ServeHTTP writes the decrypted plaintext in one piece. The download
// usecase reassembles and checksum-verifies the whole file in memory before
// anything is written, so the body is not streamed part by part; a checksum
// mismatch produces an error reply and no file bytes are sent.
func (h *DownloadHTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	fileRef := r.PathValue("file_ref")

	plaintext, mimeType, err := h.service.Download(r.Context(), r.Header.Get("sid"), fileRef)
	if err != nil {
		h.logger.Warn("download failed", zap.Error(err))
		httperror.ResponseError(w, err)
		return
	}

	if mimeType != "" {
		w.Header().Set("Content-Type", mimeType)
	} else {
		w.Header().Set("Content-Type", "application/octet-stream")
	}
	w.Write(plaintext)
}
