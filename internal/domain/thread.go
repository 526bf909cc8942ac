package domain

import (
	"time"
)

// Creator is a denormalized author reference, not a foreign key.
type Creator struct {
	UserName string `json:"userName"`
}

// Thread is a top-level discussion post.
//
// Id doubles as the creation timestamp in unix milliseconds.
// CommentCount is derived on every read from the comment table and must
// never be trusted if persisted stale.
type Thread struct {
	Id           ThreadId       `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Category     ThreadCategory `json:"category"`
	Tags         []Tag          `json:"tags"`
	Creator      Creator        `json:"creator"`
	CreationDate time.Time      `json:"creationDate"`
	Locked       bool           `json:"locked"`
	CommentCount int            `json:"commentCount"`
}

// to iterate thru layers: handler -> service -> storage
type ThreadCreationData struct {
	Title       ThreadTitle
	Category    ThreadCategory
	Description string
	Tags        []Tag
	Creator     Creator
}
