package storage

import (
	"time"

	"github.com/raddit-dev/raddit/internal/domain"
)

// threadRecord mirrors the persisted thread schema. Locked is a pointer
// so records written before the field existed can be told apart from an
// explicit false and defaulted in one place at load time. New optional
// fields must follow the same default-on-read pattern; there is no
// version field in the table.
type threadRecord struct {
	Id           domain.ThreadId       `json:"id"`
	Title        string                `json:"title"`
	Description  string                `json:"description"`
	Category     domain.ThreadCategory `json:"category"`
	Tags         []domain.Tag          `json:"tags"`
	Creator      domain.Creator        `json:"creator"`
	CreationDate time.Time             `json:"creationDate"`
	Locked       *bool                 `json:"locked,omitempty"`
	CommentCount int                   `json:"commentCount"`
}

// migrateThread normalizes one stored record. The persisted
// commentCount is deliberately dropped: it is derived state and must be
// recomputed from the comment table on every read.
func migrateThread(rec threadRecord) domain.Thread {
	locked := false
	if rec.Locked != nil {
		locked = *rec.Locked
	}
	return domain.Thread{
		Id:           rec.Id,
		Title:        rec.Title,
		Description:  rec.Description,
		Category:     rec.Category,
		Tags:         rec.Tags,
		Creator:      rec.Creator,
		CreationDate: rec.CreationDate,
		Locked:       locked,
	}
}

func recordFromThread(t domain.Thread) threadRecord {
	locked := t.Locked
	return threadRecord{
		Id:           t.Id,
		Title:        t.Title,
		Description:  t.Description,
		Category:     t.Category,
		Tags:         t.Tags,
		Creator:      t.Creator,
		CreationDate: t.CreationDate,
		Locked:       &locked,
		CommentCount: t.CommentCount,
	}
}
