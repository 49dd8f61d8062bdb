// github.com/doka-one/doka/internal/fileserver/interface/http/fileinfo/fileinfo.go
package fileinfo

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	svc "github.com/doka-one/doka/internal/fileserver/service/fileinfo"
	"github.com/doka-one/doka/pkg/httperror"
)

type FileInfoHTTPHandler struct {
	logger  *zap.Logger
	service svc.Service
}

func NewFileInfoHTTPHandler(logger *zap.Logger, service svc.Service) *FileInfoHTTPHandler {
	return &FileInfoHTTPHandler{logger: logger, service: service}
}

func (*FileInfoHTTPHandler) Pattern() string {
	return "GET /info/{file_ref}"
}

func (h *FileInfoHTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	reply, err := h.service.Get(r.Context(), r.Header.Get("sid"), r.PathValue("file_ref"))
	if err != nil {
		h.logger.Warn("file info failed", zap.Error(err))
		httperror.ResponseError(w, err)
		return
	}

	json.NewEncoder(w).Encode(reply)
}
