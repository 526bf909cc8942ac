package handler

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/raddit-dev/raddit/internal/api"
	"github.com/raddit-dev/raddit/internal/domain"
	mw "github.com/raddit-dev/raddit/internal/middleware"
	"github.com/raddit-dev/raddit/internal/utils"
)

func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)

	var body api.CreateThreadRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	creation := domain.ThreadCreationData{
		Title:       body.Title,
		Category:    domain.ThreadCategory(body.Category),
		Description: body.Description,
		Tags:        body.Tags,
		Creator:     user.AsCreator(),
	}

	thread, err := h.thread.Create(r.Context(), creation)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/v1/threads/%d", thread.Id))
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, h.threadResponse(thread))
}

func (h *Handler) ListThreads(w http.ResponseWriter, r *http.Request) {
	threads, err := h.thread.List(r.Context(), r.URL.Query().Get("tag"))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	response := api.ThreadListResponse{Threads: make([]api.ThreadResponse, 0, len(threads))}
	for _, t := range threads {
		response.Threads = append(response.Threads, h.threadResponse(t))
	}
	writeJSON(w, response)
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	threadId, err := parseIntParam(mux.Vars(r)["thread"], "thread ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	thread, err := h.thread.Get(r.Context(), threadId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	cs, err := h.comment.ListForThread(r.Context(), threadId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	response := api.ThreadDetailResponse{
		ThreadResponse: h.threadResponse(thread),
		Comments:       h.renderTree(thread, cs),
	}
	if thread.Locked {
		response.LockNotice = "This thread is locked. New comments are disabled."
	}
	writeJSON(w, response)
}

func (h *Handler) DeleteThread(w http.ResponseWriter, r *http.Request) {
	threadId, err := parseIntParam(mux.Vars(r)["thread"], "thread ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.thread.Delete(r.Context(), threadId); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) ToggleThreadLock(w http.ResponseWriter, r *http.Request) {
	threadId, err := parseIntParam(mux.Vars(r)["thread"], "thread ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	locked, err := h.thread.ToggleLock(r.Context(), threadId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.LockResponse{Locked: locked})
}

func (h *Handler) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.thread.Tags(r.Context())
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.TagListResponse{Tags: tags})
}
