package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raddit-dev/raddit/internal/api"
	"github.com/raddit-dev/raddit/internal/domain"
	internal_errors "github.com/raddit-dev/raddit/internal/errors"
)

func sampleThread(id int64) domain.Thread {
	return domain.Thread{
		Id:           id,
		Title:        "thread title",
		Description:  "thread body",
		Category:     domain.CategoryThread,
		Creator:      domain.Creator{UserName: "alice"},
		CreationDate: time.UnixMilli(id).UTC(),
	}
}

func TestCreateThreadHandler(t *testing.T) {
	h, threads, _ := newTestHandler()
	router := newTestRouter(h)
	requestBody := []byte(`{"title": "thread title", "category": "THREAD", "description": "thread body"}`)

	threads.MockCreate = func(data domain.ThreadCreationData) (domain.Thread, error) {
		assert.Equal(t, "thread title", data.Title)
		assert.Equal(t, domain.CategoryThread, data.Category)
		assert.Equal(t, domain.AnonymousUserName, data.Creator.UserName)
		return sampleThread(42), nil
	}

	rr := doRequest(router, http.MethodPost, "/v1/threads", requestBody)
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "/v1/threads/42", rr.Header().Get("Location"))

	var resp api.ThreadResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.Id)
	assert.Equal(t, "thread body", resp.DescriptionHtml)
}

func TestCreateThreadHandlerBadBody(t *testing.T) {
	h, _, _ := newTestHandler()
	router := newTestRouter(h)

	rr := doRequest(router, http.MethodPost, "/v1/threads", []byte(`{invalid json::}`))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	// Missing required fields fail DTO validation before the service runs.
	rr = doRequest(router, http.MethodPost, "/v1/threads", []byte(`{"title": "x"}`))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateThreadHandlerServiceError(t *testing.T) {
	h, threads, _ := newTestHandler()
	router := newTestRouter(h)

	threads.MockCreate = func(domain.ThreadCreationData) (domain.Thread, error) {
		return domain.Thread{}, &internal_errors.ValidationError{Message: "Fields cannot be empty"}
	}

	rr := doRequest(router, http.MethodPost, "/v1/threads",
		[]byte(`{"title": " ", "category": "THREAD", "description": " "}`))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Fields cannot be empty")
}

func TestListThreadsHandler(t *testing.T) {
	h, threads, _ := newTestHandler()
	router := newTestRouter(h)

	threads.MockList = func(tagQuery string) ([]domain.Thread, error) {
		assert.Equal(t, "help", tagQuery)
		return []domain.Thread{sampleThread(2), sampleThread(1)}, nil
	}

	rr := doRequest(router, http.MethodGet, "/v1/threads?tag=help", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp api.ThreadListResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Threads, 2)
	assert.Equal(t, int64(2), resp.Threads[0].Id)
}

func TestGetThreadHandler(t *testing.T) {
	h, threads, cs := newTestHandler()
	router := newTestRouter(h)

	thread := sampleThread(42)
	threads.MockGet = func(id domain.ThreadId) (domain.Thread, error) {
		assert.Equal(t, int64(42), id)
		return thread, nil
	}
	parent := int64(100)
	cs.MockListForThread = func(threadId domain.ThreadId) ([]domain.Comment, error) {
		return []domain.Comment{
			{Id: 100, Thread: 42, Content: "root", Creator: domain.Creator{UserName: "alice"}},
			{Id: 101, Thread: 42, Content: "reply", Creator: domain.Creator{UserName: "bob"}, ParentCommentId: &parent},
		}, nil
	}

	rr := doRequest(router, http.MethodGet, "/v1/threads/42", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp api.ThreadDetailResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Comments, 1)
	root := resp.Comments[0]
	assert.True(t, root.IsOp)
	assert.False(t, root.Expanded)
	assert.Equal(t, 1, root.TotalReplies)
	require.Len(t, root.Replies, 1)
	assert.False(t, root.Replies[0].IsOp)
	assert.Empty(t, resp.LockNotice)
}

func TestGetThreadHandlerLockNotice(t *testing.T) {
	h, threads, _ := newTestHandler()
	router := newTestRouter(h)

	locked := sampleThread(42)
	locked.Locked = true
	threads.MockGet = func(domain.ThreadId) (domain.Thread, error) { return locked, nil }

	rr := doRequest(router, http.MethodGet, "/v1/threads/42", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp api.ThreadDetailResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.LockNotice)
}

func TestGetThreadHandlerNotFound(t *testing.T) {
	h, threads, _ := newTestHandler()
	router := newTestRouter(h)

	threads.MockGet = func(domain.ThreadId) (domain.Thread, error) {
		return domain.Thread{}, internal_errors.NotFound
	}

	rr := doRequest(router, http.MethodGet, "/v1/threads/42", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetThreadHandlerBadId(t *testing.T) {
	h, _, _ := newTestHandler()
	router := newTestRouter(h)

	rr := doRequest(router, http.MethodGet, "/v1/threads/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDeleteThreadHandler(t *testing.T) {
	h, threads, _ := newTestHandler()
	router := newTestRouter(h)

	deleted := int64(0)
	threads.MockDelete = func(id domain.ThreadId) error {
		deleted = id
		return nil
	}

	rr := doRequest(router, http.MethodDelete, "/v1/threads/42", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, int64(42), deleted)
}

func TestToggleThreadLockHandler(t *testing.T) {
	h, threads, _ := newTestHandler()
	router := newTestRouter(h)

	threads.MockToggleLock = func(id domain.ThreadId) (bool, error) { return true, nil }

	rr := doRequest(router, http.MethodPost, "/v1/threads/42/lock", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"locked": true}`, rr.Body.String())
}

func TestListTagsHandler(t *testing.T) {
	h, threads, _ := newTestHandler()
	router := newTestRouter(h)

	threads.MockTags = func() ([]domain.Tag, error) {
		return []domain.Tag{"Discussion", "Help"}, nil
	}

	rr := doRequest(router, http.MethodGet, "/v1/tags", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"tags": ["Discussion", "Help"]}`, rr.Body.String())
}
