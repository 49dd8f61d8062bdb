// github.com/doka-one/doka/internal/fileserver/interface/http/filelist/filelist.go
package filelist

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	svc "github.com/doka-one/doka/internal/fileserver/service/filelist"
	"github.com/doka-one/doka/pkg/httperror"
)

type FileListHTTPHandler struct {
	logger  *zap.Logger
	service svc.Service
}

func NewFileListHTTPHandler(logger *zap.Logger, service svc.Service) *FileListHTTPHandler {
	return &FileListHTTPHandler{logger: logger, service: service}
}

func (*FileListHTTPHandler) Pattern() string {
	return "GET /list/{pattern}"
}

func (h *FileListHTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	entries, err := h.service.List(r.Context(), r.Header.Get("sid"), r.PathValue("pattern"))
	if err != nil {
		h.logger.Warn("file list failed", zap.Error(err))
		httperror.ResponseError(w, err)
		return
	}

	json.NewEncoder(w).Encode(entries)
}
