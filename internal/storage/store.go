// Package storage is the persistence adapter: two logical tables,
// threads and comments, serialized as JSON arrays under fixed keys in a
// key-value store. Every write rewrites the whole table; there are no
// transactions spanning the two tables.
package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/raddit-dev/raddit/internal/domain"
	internal_errors "github.com/raddit-dev/raddit/internal/errors"
	"github.com/raddit-dev/raddit/internal/kv"
)

const (
	threadsKey  = "forum_threads"
	commentsKey = "forum_comments"
)

type Store struct {
	kv kv.Store
}

func New(store kv.Store) *Store {
	return &Store{kv: store}
}

// LoadThreads reads the thread table. An absent table is normal state
// and yields an empty result. Stored commentCount values are stripped;
// only the aggregate builder may produce them.
func (s *Store) LoadThreads(ctx context.Context) ([]domain.Thread, error) {
	raw, ok, err := s.kv.Get(ctx, threadsKey)
	if err != nil {
		return nil, fmt.Errorf("load threads: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var records []threadRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("decode thread table: %w", err)
	}

	threads := make([]domain.Thread, 0, len(records))
	for _, rec := range records {
		threads = append(threads, migrateThread(rec))
	}
	return threads, nil
}

// SaveThreads overwrites the entire thread table in a single
// serialize-and-write call.
func (s *Store) SaveThreads(ctx context.Context, threads []domain.Thread) error {
	records := make([]threadRecord, 0, len(threads))
	for _, t := range threads {
		records = append(records, recordFromThread(t))
	}

	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode thread table: %w", err)
	}
	if err := s.kv.Set(ctx, threadsKey, string(raw)); err != nil {
		return fmt.Errorf("save threads: %w", err)
	}
	return nil
}

// LoadAllComments reads the full comment table.
func (s *Store) LoadAllComments(ctx context.Context) ([]domain.Comment, error) {
	raw, ok, err := s.kv.Get(ctx, commentsKey)
	if err != nil {
		return nil, fmt.Errorf("load comments: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var comments []domain.Comment
	if err := json.Unmarshal([]byte(raw), &comments); err != nil {
		return nil, fmt.Errorf("decode comment table: %w", err)
	}
	return comments, nil
}

// LoadComments filters the full comment table down to one thread.
// O(total comments) per call, which is fine at this scale.
func (s *Store) LoadComments(ctx context.Context, threadId domain.ThreadId) ([]domain.Comment, error) {
	all, err := s.LoadAllComments(ctx)
	if err != nil {
		return nil, err
	}

	var comments []domain.Comment
	for _, c := range all {
		if c.Thread == threadId {
			comments = append(comments, c)
		}
	}
	return comments, nil
}

// AppendComment appends one comment and rewrites the whole table.
func (s *Store) AppendComment(ctx context.Context, comment domain.Comment) error {
	all, err := s.LoadAllComments(ctx)
	if err != nil {
		return err
	}
	all = append(all, comment)

	raw, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("encode comment table: %w", err)
	}
	if err := s.kv.Set(ctx, commentsKey, string(raw)); err != nil {
		return fmt.Errorf("save comments: %w", err)
	}
	return nil
}

// SetThreadLocked read-modify-writes the thread table, updating exactly
// the matching record's locked field.
func (s *Store) SetThreadLocked(ctx context.Context, threadId domain.ThreadId, locked bool) error {
	threads, err := s.LoadThreads(ctx)
	if err != nil {
		return err
	}

	found := false
	for i := range threads {
		if threads[i].Id == threadId {
			threads[i].Locked = locked
			found = true
		}
	}
	if !found {
		return internal_errors.NotFound
	}
	return s.SaveThreads(ctx, threads)
}

// DeleteThread removes the thread record. Its comments are NOT
// cascade-deleted; they stay in the comment table as orphans.
func (s *Store) DeleteThread(ctx context.Context, threadId domain.ThreadId) error {
	threads, err := s.LoadThreads(ctx)
	if err != nil {
		return err
	}

	kept := threads[:0]
	found := false
	for _, t := range threads {
		if t.Id == threadId {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		return internal_errors.NotFound
	}
	return s.SaveThreads(ctx, kept)
}

// Ping reports whether the underlying store is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.kv.Ping(ctx)
}
