package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/raddit-dev/raddit/internal/domain"
)

func TestBuildAggregatesCounts(t *testing.T) {
	threads := []domain.Thread{testThread(1, "a"), testThread(2, "b"), testThread(3, "c")}
	parent := int64(100)
	comments := []domain.Comment{
		testComment(100, 1, nil),
		testComment(101, 1, &parent), // nested replies count too
		testComment(102, 2, nil),
		testComment(103, 99, nil), // orphan of a deleted thread
	}

	out := BuildAggregates(threads, comments)

	assert.Equal(t, 2, out[0].CommentCount)
	assert.Equal(t, 1, out[1].CommentCount)
	assert.Equal(t, 0, out[2].CommentCount)
}

func TestBuildAggregatesPure(t *testing.T) {
	threads := []domain.Thread{testThread(1, "a")}
	comments := []domain.Comment{testComment(100, 1, nil)}

	_ = BuildAggregates(threads, comments)

	// Inputs are untouched.
	assert.Equal(t, 0, threads[0].CommentCount)
	assert.Len(t, comments, 1)
}

func TestBuildAggregatesEmptyInputs(t *testing.T) {
	assert.Empty(t, BuildAggregates(nil, nil))

	out := BuildAggregates([]domain.Thread{testThread(1, "a")}, nil)
	assert.Equal(t, 0, out[0].CommentCount)
}
