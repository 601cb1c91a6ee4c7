// Package memo remembers the match found for an ordered pair of inputs.
package memo

import (
	"encoding/binary"

	"github.com/VictoriaMetrics/fastcache"
	"github.com/cespare/xxhash/v2"
)

// Cache is safe for concurrent use. Entries too large for the underlying
// cache are silently not stored, and a nil *Cache stores nothing.
type Cache struct {
	c *fastcache.Cache
}

// New returns nil when maxBytes is not positive.
func New(maxBytes int) *Cache {
	if maxBytes <= 0 {
		return nil
	}
	return &Cache{c: fastcache.New(maxBytes)}
}

func (c *Cache) Get(first, second string) (string, bool) {
	if c == nil {
		return "", false
	}

	value, found := c.c.HasGet(nil, key(first, second))
	if !found {
		return "", false
	}

	// digests can collide, so the entry carries both inputs
	a, b, match, ok := decode(value)
	if !ok || a != first || b != second {
		return "", false
	}

	return match, true
}

func (c *Cache) Set(first, second, match string) {
	if c == nil {
		return
	}
	c.c.Set(key(first, second), encode(first, second, match))
}

func (c *Cache) Reset() {
	if c == nil {
		return
	}
	c.c.Reset()
}

func key(first, second string) []byte {
	k := make([]byte, 16)
	binary.BigEndian.PutUint64(k[:8], xxhash.Sum64String(first))
	binary.BigEndian.PutUint64(k[8:], xxhash.Sum64String(second))
	return k
}

func encode(first, second, match string) []byte {
	value := make([]byte, 0, 2*binary.MaxVarintLen64+len(first)+len(second)+len(match))
	value = binary.AppendUvarint(value, uint64(len(first)))
	value = binary.AppendUvarint(value, uint64(len(second)))
	value = append(value, first...)
	value = append(value, second...)
	value = append(value, match...)
	return value
}

func decode(value []byte) (first, second, match string, ok bool) {
	la, n := binary.Uvarint(value)
	if n <= 0 {
		return "", "", "", false
	}
	value = value[n:]

	lb, n := binary.Uvarint(value)
	if n <= 0 {
		return "", "", "", false
	}
	value = value[n:]

	if uint64(len(value)) < la+lb {
		return "", "", "", false
	}

	return string(value[:la]), string(value[la : la+lb]), string(value[la+lb:]), true
}
