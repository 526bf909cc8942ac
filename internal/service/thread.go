package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/raddit-dev/raddit/internal/domain"
	internal_errors "github.com/raddit-dev/raddit/internal/errors"
	"github.com/raddit-dev/raddit/internal/storage"
)

type ThreadService interface {
	Create(ctx context.Context, data domain.ThreadCreationData) (domain.Thread, error)
	List(ctx context.Context, tagQuery string) ([]domain.Thread, error)
	Get(ctx context.Context, id domain.ThreadId) (domain.Thread, error)
	ToggleLock(ctx context.Context, id domain.ThreadId) (bool, error)
	Delete(ctx context.Context, id domain.ThreadId) error
	RecordComment(ctx context.Context, thread domain.Thread) error
	Tags(ctx context.Context) ([]domain.Tag, error)
}

type ThreadStorage interface {
	LoadThreads(ctx context.Context) ([]domain.Thread, error)
	SaveThreads(ctx context.Context, threads []domain.Thread) error
	LoadAllComments(ctx context.Context) ([]domain.Comment, error)
	SetThreadLocked(ctx context.Context, id domain.ThreadId, locked bool) error
	DeleteThread(ctx context.Context, id domain.ThreadId) error
}

type ThreadValidator interface {
	Title(title string) error
	Description(description string) error
	Category(category domain.ThreadCategory) error
}

type Thread struct {
	storage   ThreadStorage
	validator ThreadValidator
	now       func() time.Time
}

func NewThread(store ThreadStorage, validator ThreadValidator) *Thread {
	return &Thread{storage: store, validator: validator, now: time.Now}
}

// Create validates and persists a new thread. Nothing is written when
// validation fails. The id is the creation timestamp in unix
// milliseconds; the thread starts unlocked with no comments.
func (s *Thread) Create(ctx context.Context, data domain.ThreadCreationData) (domain.Thread, error) {
	if err := s.validator.Title(data.Title); err != nil {
		return domain.Thread{}, err
	}
	if err := s.validator.Description(data.Description); err != nil {
		return domain.Thread{}, err
	}
	if err := s.validator.Category(data.Category); err != nil {
		return domain.Thread{}, err
	}

	at := s.now()
	thread := domain.Thread{
		Id:           at.UnixMilli(),
		Title:        data.Title,
		Description:  data.Description,
		Category:     data.Category,
		Tags:         data.Tags,
		Creator:      data.Creator,
		CreationDate: at,
	}

	threads, err := s.storage.LoadThreads(ctx)
	if err != nil {
		return domain.Thread{}, err
	}
	threads = append(threads, thread)
	if err := s.storage.SaveThreads(ctx, threads); err != nil {
		return domain.Thread{}, err
	}
	return thread, nil
}

// List materializes all threads with derived comment counts, newest
// first. A non-empty tagQuery keeps only threads with a matching tag
// (case-insensitive substring, like the header search).
func (s *Thread) List(ctx context.Context, tagQuery string) ([]domain.Thread, error) {
	threads, err := s.loadAggregates(ctx)
	if err != nil {
		return nil, err
	}

	if tagQuery != "" {
		query := strings.ToLower(tagQuery)
		filtered := threads[:0]
		for _, t := range threads {
			for _, tag := range t.Tags {
				if strings.Contains(strings.ToLower(tag), query) {
					filtered = append(filtered, t)
					break
				}
			}
		}
		threads = filtered
	}

	sort.SliceStable(threads, func(i, j int) bool {
		return threads[i].CreationDate.After(threads[j].CreationDate)
	})
	return threads, nil
}

func (s *Thread) Get(ctx context.Context, id domain.ThreadId) (domain.Thread, error) {
	threads, err := s.loadAggregates(ctx)
	if err != nil {
		return domain.Thread{}, err
	}
	for _, t := range threads {
		if t.Id == id {
			return t, nil
		}
	}
	return domain.Thread{}, internal_errors.NotFound
}

// ToggleLock flips the thread's locked flag and returns the new state.
// Existing comments are untouched; locking only gates new top-level
// comments.
func (s *Thread) ToggleLock(ctx context.Context, id domain.ThreadId) (bool, error) {
	thread, err := s.Get(ctx, id)
	if err != nil {
		return false, err
	}
	newState := !thread.Locked
	if err := s.storage.SetThreadLocked(ctx, id, newState); err != nil {
		return false, err
	}
	return newState, nil
}

// Delete removes the thread record only. Its comments stay behind as
// orphans and never render, since no top-level root reaches them.
func (s *Thread) Delete(ctx context.Context, id domain.ThreadId) error {
	return s.storage.DeleteThread(ctx, id)
}

// RecordComment persists thread.CommentCount + 1 for the given thread.
// Callers pass the thread as materialized before the comment was
// appended, and call this exactly once per successful comment or
// reply, independent of nesting depth. This is a separate write from
// the comment append; the two are not atomic.
func (s *Thread) RecordComment(ctx context.Context, thread domain.Thread) error {
	threads, err := s.storage.LoadThreads(ctx)
	if err != nil {
		return err
	}

	found := false
	for i := range threads {
		if threads[i].Id == thread.Id {
			updated := thread
			updated.CommentCount = thread.CommentCount + 1
			threads[i] = updated
			found = true
		}
	}
	if !found {
		return internal_errors.NotFound
	}
	return s.storage.SaveThreads(ctx, threads)
}

// Tags returns the premade tag vocabulary merged with every tag in
// use, sorted, for the header search.
func (s *Thread) Tags(ctx context.Context) ([]domain.Tag, error) {
	threads, err := s.storage.LoadThreads(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[domain.Tag]bool)
	var tags []domain.Tag
	for _, tag := range domain.AvailableTags {
		seen[tag] = true
		tags = append(tags, tag)
	}
	for _, t := range threads {
		for _, tag := range t.Tags {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	sort.Strings(tags)
	return tags, nil
}

func (s *Thread) loadAggregates(ctx context.Context) ([]domain.Thread, error) {
	threads, err := s.storage.LoadThreads(ctx)
	if err != nil {
		return nil, err
	}
	comments, err := s.storage.LoadAllComments(ctx)
	if err != nil {
		return nil, err
	}
	return storage.BuildAggregates(threads, comments), nil
}
