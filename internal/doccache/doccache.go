// Copyright 2015-2017 Piprate Limited
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package doccache wraps any jsonld.DocumentLoader with a bounded, TTL'd
// in-process cache, so repeated dereferences of the same remote context
// (the common case during expansion of many documents sharing a vocabulary)
// don't re-fetch over the network on every call.
package doccache

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/zeebo/xxh3"

	"github.com/vantablack-ld/jsonld/jsonld"
)

// Loader wraps an underlying jsonld.DocumentLoader with a ristretto cache
// keyed on the xxh3 hash of the requested URL.
type Loader struct {
	underlying jsonld.DocumentLoader
	cache      *ristretto.Cache[uint64, *jsonld.RemoteDocument]
	ttl        time.Duration
}

// Config controls the cache's capacity and entry lifetime.
type Config struct {
	// MaxCost bounds the cache's total cost, roughly the number of cached
	// documents when each counts for cost 1.
	MaxCost int64
	// TTL is how long a cached document is served before being
	// re-fetched. Zero means cached entries never expire on their own.
	TTL time.Duration
}

// DefaultConfig returns sane defaults for CLI and library use: a few
// thousand documents, cached for five minutes.
func DefaultConfig() Config {
	return Config{MaxCost: 1 << 12, TTL: 5 * time.Minute}
}

// New wraps underlying with a bounded cache described by cfg.
func New(underlying jsonld.DocumentLoader, cfg Config) (*Loader, error) {
	cache, err := ristretto.NewCache(&ristretto.Config[uint64, *jsonld.RemoteDocument]{
		NumCounters: cfg.MaxCost * 10,
		MaxCost:     cfg.MaxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &Loader{underlying: underlying, cache: cache, ttl: cfg.TTL}, nil
}

// LoadDocument implements jsonld.DocumentLoader, serving from cache when
// possible and populating the cache on a miss.
func (l *Loader) LoadDocument(u string) (*jsonld.RemoteDocument, error) {
	key := cacheKey(u)
	if rd, found := l.cache.Get(key); found {
		return rd, nil
	}

	rd, err := l.underlying.LoadDocument(u)
	if err != nil {
		return nil, err
	}

	if l.ttl > 0 {
		l.cache.SetWithTTL(key, rd, 1, l.ttl)
	} else {
		l.cache.Set(key, rd, 1)
	}
	l.cache.Wait()

	return rd, nil
}

// Close releases the cache's background goroutines.
func (l *Loader) Close() {
	l.cache.Close()
}

func cacheKey(u string) uint64 {
	return xxh3.HashString(u)
}
