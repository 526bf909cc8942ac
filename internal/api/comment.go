package api

import "github.com/raddit-dev/raddit/internal/domain"

// Request DTOs

type CreateCommentRequest struct {
	Content         string            `json:"content" validate:"required"`
	ParentCommentId *domain.CommentId `json:"parentCommentId,omitempty"`
}

// Response DTOs

// CommentResponse is one node of the rendered reply tree.
//
// IsOp marks comments by the thread creator. TotalReplies counts the
// whole subtree, direct and nested; Replies holds only the direct
// children, themselves fully nested.
type CommentResponse struct {
	domain.Comment
	ContentHtml  string             `json:"contentHtml"`
	IsOp         bool               `json:"isOp"`
	Expanded     bool               `json:"expanded"`
	TotalReplies int                `json:"totalReplies"`
	Replies      []*CommentResponse `json:"replies"`
}

type CommentListResponse struct {
	Comments []*CommentResponse `json:"comments"`
}
