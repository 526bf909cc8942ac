package domain

import (
	"time"
)

// Comment is a reply to a thread or to another comment.
//
// ParentCommentId nil marks a top-level comment. The parent-reference
// graph is expected to be a forest; nothing enforces that at write time,
// so readers walking the links must guard against corrupted input.
type Comment struct {
	Id              CommentId  `json:"id"`
	Thread          ThreadId   `json:"thread"`
	Content         string     `json:"content"`
	Creator         Creator    `json:"creator"`
	CreationDate    time.Time  `json:"creationDate"`
	ParentCommentId *CommentId `json:"parentCommentId,omitempty"`
}

// TopLevel reports whether the comment roots its own reply subtree.
func (c Comment) TopLevel() bool {
	return c.ParentCommentId == nil
}

type CommentCreationData struct {
	Thread  ThreadId
	Content string
	Creator Creator
	// ParentCommentId nil creates a top-level comment.
	ParentCommentId *CommentId
}
