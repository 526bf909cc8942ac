package kv

import "context"

// Unavailable models a context with no storage at all: every read
// reports absence and every write is silently dropped. Nothing ever
// fails; worst case is stale or missing data in view.
type Unavailable struct{}

var _ Store = Unavailable{}

func (Unavailable) Get(context.Context, string) (string, bool, error) { return "", false, nil }

func (Unavailable) Set(context.Context, string, string) error { return nil }

func (Unavailable) Delete(context.Context, string) error { return nil }

func (Unavailable) Ping(context.Context) error { return nil }
