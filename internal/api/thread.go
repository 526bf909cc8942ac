package api

import (
	"github.com/raddit-dev/raddit/internal/domain"
)

// Request DTOs

type CreateThreadRequest struct {
	Title       string       `json:"title" validate:"required"`
	Category    string       `json:"category" validate:"required"`
	Description string       `json:"description" validate:"required"`
	Tags        []domain.Tag `json:"tags,omitempty"`
}

// Response DTOs

// ThreadResponse is the list-view card: the stored thread plus the
// censored description markup.
type ThreadResponse struct {
	domain.Thread
	DescriptionHtml string `json:"descriptionHtml"`
}

// ThreadDetailResponse adds the materialized comment tree. LockNotice
// is set when the thread refuses new top-level comments.
type ThreadDetailResponse struct {
	ThreadResponse
	LockNotice string             `json:"lockNotice,omitempty"`
	Comments   []*CommentResponse `json:"comments"`
}

type ThreadListResponse struct {
	Threads []ThreadResponse `json:"threads"`
}

type LockResponse struct {
	Locked bool `json:"locked"`
}

type TagListResponse struct {
	Tags []domain.Tag `json:"tags"`
}
