package service

import (
	"context"
	"net/http"
	"time"

	"github.com/raddit-dev/raddit/internal/comments"
	"github.com/raddit-dev/raddit/internal/domain"
	internal_errors "github.com/raddit-dev/raddit/internal/errors"
)

type CommentService interface {
	Create(ctx context.Context, data domain.CommentCreationData) (domain.Comment, error)
	ListForThread(ctx context.Context, threadId domain.ThreadId) ([]domain.Comment, error)
	Visibility() *comments.Visibility
}

type CommentStorage interface {
	LoadComments(ctx context.Context, threadId domain.ThreadId) ([]domain.Comment, error)
	AppendComment(ctx context.Context, comment domain.Comment) error
}

type CommentValidator interface {
	Content(content string) error
}

// ThreadDirectory is the slice of the thread lifecycle the comment
// service needs: lock checks and the per-comment count bump.
type ThreadDirectory interface {
	Get(ctx context.Context, id domain.ThreadId) (domain.Thread, error)
	RecordComment(ctx context.Context, thread domain.Thread) error
}

type Comment struct {
	storage    CommentStorage
	threads    ThreadDirectory
	validator  CommentValidator
	visibility *comments.Visibility
	now        func() time.Time
}

func NewComment(store CommentStorage, threads ThreadDirectory, validator CommentValidator) *Comment {
	return &Comment{
		storage:    store,
		threads:    threads,
		validator:  validator,
		visibility: comments.NewVisibility(),
		now:        time.Now,
	}
}

// Create appends a comment or reply and bumps the thread's persisted
// comment count once.
//
// A locked thread refuses new top-level comments but still accepts
// replies to existing ones; only the top-level input is gated.
func (s *Comment) Create(ctx context.Context, data domain.CommentCreationData) (domain.Comment, error) {
	if err := s.validator.Content(data.Content); err != nil {
		return domain.Comment{}, err
	}

	thread, err := s.threads.Get(ctx, data.Thread)
	if err != nil {
		return domain.Comment{}, err
	}
	if thread.Locked && data.ParentCommentId == nil {
		return domain.Comment{}, &internal_errors.ErrorWithStatusCode{
			Message:    "Thread is locked",
			StatusCode: http.StatusForbidden,
		}
	}

	// Replies to a since-deleted parent are accepted and simply never
	// render; nothing validates the parent link.
	_, comment := comments.NewReply(nil, data.Thread, data.ParentCommentId, data.Content, data.Creator, s.now())
	if err := s.storage.AppendComment(ctx, comment); err != nil {
		return domain.Comment{}, err
	}

	if err := s.threads.RecordComment(ctx, thread); err != nil {
		return domain.Comment{}, err
	}

	// The acting user sees their own reply without a second click.
	if data.ParentCommentId != nil {
		s.visibility.Expand(*data.ParentCommentId)
	}
	return comment, nil
}

// ListForThread returns the thread's comments in insertion order.
// Orphans of a deleted thread are still retrievable here.
func (s *Comment) ListForThread(ctx context.Context, threadId domain.ThreadId) ([]domain.Comment, error) {
	return s.storage.LoadComments(ctx, threadId)
}

// Visibility exposes the expand/collapse state tracker.
func (s *Comment) Visibility() *comments.Visibility {
	return s.visibility
}
