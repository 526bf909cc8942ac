package comments

import (
	"sync"

	"github.com/raddit-dev/raddit/internal/domain"
)

// Visibility tracks which comments have their reply list expanded.
// Presentation state only, keyed by comment id, independent of the data
// model. Replies start collapsed; a node is forced open when it
// receives a new reply so the author sees their own post without a
// second click.
type Visibility struct {
	mu       sync.RWMutex
	expanded map[domain.CommentId]bool
}

func NewVisibility() *Visibility {
	return &Visibility{expanded: make(map[domain.CommentId]bool)}
}

// Expanded reports whether the comment's replies are shown.
func (v *Visibility) Expanded(id domain.CommentId) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.expanded[id]
}

// Toggle flips the comment between collapsed and expanded.
func (v *Visibility) Toggle(id domain.CommentId) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.expanded[id] = !v.expanded[id]
}

// Expand forces the comment open regardless of its previous state.
func (v *Visibility) Expand(id domain.CommentId) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.expanded[id] = true
}
