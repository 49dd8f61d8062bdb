// github.com/doka-one/doka/internal/fileserver/interface/http/upload/upload.go
package upload

import (
	"encoding/json"
	"io"
	"net/http"

	"go.uber.org/zap"

	svc "github.com/doka-one/doka/internal/fileserver/service/upload"
	"github.com/doka-one/doka/pkg/httperror"
)

// maxUploadBytes bounds one multipart body File Server will buffer in
// memory while streaming it through ParseMultipartForm.
const maxUploadBytes = 64 << 20

type UploadHTTPHandler struct {
	logger  *zap.Logger
	service svc.Service
}

func NewUploadHTTPHandler(logger *zap.Logger, service svc.Service) *UploadHTTPHandler {
	return &UploadHTTPHandler{logger: logger, service: service}
}

func (*UploadHTTPHandler) Pattern() string {
	return "POST /upload2/{item_info}"
}

func (h *UploadHTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	itemInfo := r.PathValue("item_info")

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		httperror.ResponseError(w, httperror.NewForBadRequestWithSingleField("non_field_error", "malformed multipart body"))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file_data")
	if err != nil {
		httperror.ResponseError(w, httperror.NewForBadRequestWithSingleField("file_data", "file_data part is required"))
		return
	}
	defer file.Close()

	body, err := io.ReadAll(file)
	if err != nil {
		httperror.ResponseError(w, httperror.NewForBadRequestWithSingleField("file_data", "failed to read file_data"))
		return
	}

	mimeType := header.Header.Get("Content-Type")

	reply, err := h.service.Upload(r.Context(), r.Header.Get("sid"), itemInfo, mimeType, body)
	if err != nil {
		h.logger.Warn("upload failed", zap.Error(err))
		httperror.ResponseError(w, err)
		return
	}

	json.NewEncoder(w).Encode(reply)
}
