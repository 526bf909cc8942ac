package storage

import (
	"github.com/raddit-dev/raddit/internal/domain"
)

// BuildAggregates materializes threads for the read path: every
// thread's commentCount is recomputed from the comment table. Pure
// function of its two inputs; the inputs are not mutated.
//
// Invariant: for every returned thread, CommentCount equals the number
// of comments whose Thread field matches its id.
func BuildAggregates(threads []domain.Thread, comments []domain.Comment) []domain.Thread {
	counts := make(map[domain.ThreadId]int, len(threads))
	for _, c := range comments {
		counts[c.Thread]++
	}

	out := make([]domain.Thread, len(threads))
	for i, t := range threads {
		t.CommentCount = counts[t.Id]
		out[i] = t
	}
	return out
}
