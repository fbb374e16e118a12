package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const defaultMemoryEntries = 1024

// Memory is an in-process Store used when Redis is not configured.
type Memory struct {
	lru *expirable.LRU[string, string]
}

// NewMemory creates an in-memory store whose entries expire after ttl.
func NewMemory(ttl time.Duration) *Memory {
	return &Memory{lru: expirable.NewLRU[string, string](defaultMemoryEntries, nil, ttl)}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool) {
	return m.lru.Get(key)
}

func (m *Memory) Set(_ context.Context, key, value string) {
	m.lru.Add(key, value)
}
