package storage

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raddit-dev/raddit/internal/domain"
	internal_errors "github.com/raddit-dev/raddit/internal/errors"
	"github.com/raddit-dev/raddit/internal/kv"
)

func testThread(id int64, title string) domain.Thread {
	return domain.Thread{
		Id:           id,
		Title:        title,
		Description:  "some text",
		Category:     domain.CategoryThread,
		Tags:         []domain.Tag{"Discussion"},
		Creator:      domain.Creator{UserName: "alice"},
		CreationDate: time.UnixMilli(id).UTC(),
	}
}

func testComment(id, threadId int64, parent *int64) domain.Comment {
	return domain.Comment{
		Id:              id,
		Thread:          threadId,
		Content:         "a comment",
		Creator:         domain.Creator{UserName: "bob"},
		CreationDate:    time.UnixMilli(id).UTC(),
		ParentCommentId: parent,
	}
}

func TestLoadThreadsEmptyStore(t *testing.T) {
	s := New(kv.NewMemory())

	threads, err := s.LoadThreads(context.Background())
	require.NoError(t, err)
	assert.Empty(t, threads)
}

func TestThreadRoundTrip(t *testing.T) {
	s := New(kv.NewMemory())
	ctx := context.Background()

	in := testThread(1700000000000, "Hi")
	in.Locked = true
	require.NoError(t, s.SaveThreads(ctx, []domain.Thread{in}))

	out, err := s.LoadThreads(ctx)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, in.Id, out[0].Id)
	assert.Equal(t, in.Title, out[0].Title)
	assert.Equal(t, in.Tags, out[0].Tags)
	assert.True(t, out[0].Locked)
	assert.True(t, in.CreationDate.Equal(out[0].CreationDate))
}

func TestLoadDefaultsMissingLocked(t *testing.T) {
	// A record written before the locked field existed.
	store := kv.NewMemory()
	raw := `[{"id":1,"title":"old","description":"d","category":"THREAD",` +
		`"tags":[],"creator":{"userName":"alice"},` +
		`"creationDate":"2024-01-02T03:04:05.000Z","commentCount":7}]`
	require.NoError(t, store.Set(context.Background(), "forum_threads", raw))

	s := New(store)
	threads, err := s.LoadThreads(context.Background())
	require.NoError(t, err)
	require.Len(t, threads, 1)
	assert.False(t, threads[0].Locked)
	// Persisted commentCount is derived state and must not survive a read.
	assert.Equal(t, 0, threads[0].CommentCount)
}

func TestSaveAlwaysWritesLocked(t *testing.T) {
	store := kv.NewMemory()
	s := New(store)
	ctx := context.Background()

	require.NoError(t, s.SaveThreads(ctx, []domain.Thread{testThread(1, "t")}))

	raw, ok, err := store.Get(ctx, "forum_threads")
	require.NoError(t, err)
	require.True(t, ok)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &decoded))
	require.Len(t, decoded, 1)
	locked, present := decoded[0]["locked"]
	assert.True(t, present)
	assert.Equal(t, false, locked)
}

func TestLoadCommentsFiltersByThread(t *testing.T) {
	s := New(kv.NewMemory())
	ctx := context.Background()

	require.NoError(t, s.AppendComment(ctx, testComment(1, 10, nil)))
	require.NoError(t, s.AppendComment(ctx, testComment(2, 20, nil)))
	require.NoError(t, s.AppendComment(ctx, testComment(3, 10, nil)))

	comments, err := s.LoadComments(ctx, 10)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	// Insertion order kept.
	assert.Equal(t, int64(1), comments[0].Id)
	assert.Equal(t, int64(3), comments[1].Id)
}

func TestSetThreadLocked(t *testing.T) {
	s := New(kv.NewMemory())
	ctx := context.Background()

	require.NoError(t, s.SaveThreads(ctx, []domain.Thread{testThread(1, "a"), testThread(2, "b")}))
	require.NoError(t, s.SetThreadLocked(ctx, 2, true))

	threads, err := s.LoadThreads(ctx)
	require.NoError(t, err)
	assert.False(t, threads[0].Locked)
	assert.True(t, threads[1].Locked)
}

func TestSetThreadLockedMissingThread(t *testing.T) {
	s := New(kv.NewMemory())
	err := s.SetThreadLocked(context.Background(), 99, true)
	assert.ErrorIs(t, err, internal_errors.NotFound)
}

func TestDeleteThreadLeavesCommentsOrphaned(t *testing.T) {
	s := New(kv.NewMemory())
	ctx := context.Background()

	require.NoError(t, s.SaveThreads(ctx, []domain.Thread{testThread(10, "doomed")}))
	require.NoError(t, s.AppendComment(ctx, testComment(1, 10, nil)))
	require.NoError(t, s.AppendComment(ctx, testComment(2, 10, nil)))

	require.NoError(t, s.DeleteThread(ctx, 10))

	threads, err := s.LoadThreads(ctx)
	require.NoError(t, err)
	assert.Empty(t, threads)

	// No cascade: the two comments stay retrievable.
	comments, err := s.LoadComments(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, comments, 2)
}

func TestDeleteThreadMissing(t *testing.T) {
	s := New(kv.NewMemory())
	err := s.DeleteThread(context.Background(), 404)
	assert.ErrorIs(t, err, internal_errors.NotFound)
}

func TestUnavailableStorageDegradesSilently(t *testing.T) {
	s := New(kv.Unavailable{})
	ctx := context.Background()

	threads, err := s.LoadThreads(ctx)
	require.NoError(t, err)
	assert.Empty(t, threads)

	// Writes are silently skipped, never errors.
	require.NoError(t, s.SaveThreads(ctx, []domain.Thread{testThread(1, "t")}))
	require.NoError(t, s.AppendComment(ctx, testComment(1, 1, nil)))

	threads, err = s.LoadThreads(ctx)
	require.NoError(t, err)
	assert.Empty(t, threads)
}
