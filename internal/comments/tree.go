// Package comments models the reply tree over a flat comment
// collection. Comments link to their parent by id; top-level comments
// root the forest. The collection itself stays flat and append-only;
// the tree is a read-side view.
package comments

import (
	"time"

	"github.com/raddit-dev/raddit/internal/domain"
)

// TopLevel filters to comments with no parent, in insertion order.
func TopLevel(cs []domain.Comment) []domain.Comment {
	var out []domain.Comment
	for _, c := range cs {
		if c.TopLevel() {
			out = append(out, c)
		}
	}
	return out
}

// DirectReplies filters to comments whose parent is the given id, in
// insertion order.
func DirectReplies(cs []domain.Comment, id domain.CommentId) []domain.Comment {
	var out []domain.Comment
	for _, c := range cs {
		if c.ParentCommentId != nil && *c.ParentCommentId == id {
			out = append(out, c)
		}
	}
	return out
}

// TotalReplyCount counts direct replies plus all nested descendants.
//
// The walk uses an explicit stack and a visited set, so it terminates
// even if the parent links are corrupted into a cycle; on forest-shaped
// input the guard never triggers.
func TotalReplyCount(cs []domain.Comment, id domain.CommentId) int {
	children := childIndex(cs)

	total := 0
	visited := map[domain.CommentId]bool{id: true}
	stack := []domain.CommentId{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, reply := range children[cur] {
			if visited[reply.Id] {
				continue
			}
			visited[reply.Id] = true
			total++
			stack = append(stack, reply.Id)
		}
	}
	return total
}

// NewReply appends a reply to the collection without mutating existing
// entries and returns the updated collection together with the new
// comment. The id is the creation timestamp in unix milliseconds.
// A nil parent produces a top-level comment.
func NewReply(cs []domain.Comment, threadId domain.ThreadId, parent *domain.CommentId, content string, author domain.Creator, at time.Time) ([]domain.Comment, domain.Comment) {
	c := domain.Comment{
		Id:              at.UnixMilli(),
		Thread:          threadId,
		Content:         content,
		Creator:         author,
		CreationDate:    at,
		ParentCommentId: parent,
	}
	updated := make([]domain.Comment, 0, len(cs)+1)
	updated = append(updated, cs...)
	updated = append(updated, c)
	return updated, c
}

// Node is one comment with its resolved replies.
type Node struct {
	Comment domain.Comment
	Replies []*Node
}

// BuildTree materializes the reply forest once, as an adjacency walk
// from the top-level roots. Replies whose ancestor chain never reaches
// a top-level comment are unreachable and simply do not appear,
// matching what a per-node re-filter would render.
func BuildTree(cs []domain.Comment) []*Node {
	children := childIndex(cs)

	var roots []*Node
	visited := make(map[domain.CommentId]bool)
	for _, c := range TopLevel(cs) {
		root := &Node{Comment: c}
		visited[c.Id] = true
		roots = append(roots, root)

		stack := []*Node{root}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, reply := range children[cur.Comment.Id] {
				if visited[reply.Id] {
					continue
				}
				visited[reply.Id] = true
				child := &Node{Comment: reply}
				cur.Replies = append(cur.Replies, child)
				stack = append(stack, child)
			}
		}
	}
	return roots
}

func childIndex(cs []domain.Comment) map[domain.CommentId][]domain.Comment {
	children := make(map[domain.CommentId][]domain.Comment)
	for _, c := range cs {
		if c.ParentCommentId != nil {
			children[*c.ParentCommentId] = append(children[*c.ParentCommentId], c)
		}
	}
	return children
}
