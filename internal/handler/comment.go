package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/raddit-dev/raddit/internal/api"
	"github.com/raddit-dev/raddit/internal/domain"
	mw "github.com/raddit-dev/raddit/internal/middleware"
	"github.com/raddit-dev/raddit/internal/utils"
)

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	threadId, err := parseIntParam(mux.Vars(r)["thread"], "thread ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	user := mw.GetUserFromContext(r)

	var body api.CreateCommentRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	creation := domain.CommentCreationData{
		Thread:          threadId,
		Content:         body.Content,
		Creator:         user.AsCreator(),
		ParentCommentId: body.ParentCommentId,
	}

	comment, err := h.comment.Create(r.Context(), creation)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	writeJSON(w, api.CommentResponse{
		Comment:     comment,
		ContentHtml: h.text.RenderComment(comment.Content),
		Replies:     []*api.CommentResponse{},
	})
}

// ListComments returns the thread's rendered comment tree on its own,
// for clients refreshing replies without refetching the thread.
func (h *Handler) ListComments(w http.ResponseWriter, r *http.Request) {
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

	writeJSON(w, api.CommentListResponse{Comments: h.renderTree(thread, cs)})
}

// ToggleCommentVisibility flips the expand/collapse state of one
// comment's reply list and reports the new state.
func (h *Handler) ToggleCommentVisibility(w http.ResponseWriter, r *http.Request) {
	commentId, err := parseIntParam(mux.Vars(r)["comment"], "comment ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	vis := h.comment.Visibility()
	vis.Toggle(commentId)
	writeJSON(w, map[string]bool{"expanded": vis.Expanded(commentId)})
}
