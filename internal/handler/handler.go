package handler

import (
	"encoding/json"
	"net/http"

	"github.com/raddit-dev/raddit/internal/logger"
	"github.com/raddit-dev/raddit/internal/service"
	"github.com/raddit-dev/raddit/internal/textproc"
)

type Handler struct {
	thread  service.ThreadService
	comment service.CommentService
	text    *textproc.Processor
	health  Pinger
}

func New(thread service.ThreadService, comment service.CommentService, text *textproc.Processor) *Handler {
	return &Handler{thread: thread, comment: comment, text: text}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error(err.Error())
		http.Error(w, "Bad request", http.StatusBadRequest)
	}
}
