package dataset

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

var ErrBuildFailed = errors.New("dataset build failed")

// BuildFunc produces the table for a seed.
type BuildFunc func(seed int64) *Table

// BuildHook is told about every table the cache actually generates.
type BuildHook func(seed int64, rows int, took time.Duration)

// Cache memoizes generated tables by seed. Concurrent callers asking for the
// same uncached seed share a single build. Once more than max seeds are cached
// the least recently used one is dropped; asking for it again regenerates an
// identical table.
type Cache struct {
	build   BuildFunc
	tables  *lru.Cache[int64, *Table]
	flights singleflight.Group

	OnBuild BuildHook
}

// NewCache returns a cache holding at most max tables.
func NewCache(max int, build BuildFunc) *Cache {
	if max < 1 {
		max = 1
	}
	tables, err := lru.New[int64, *Table](max)
	if err != nil {
		// only returned for a non-positive size
		panic(err)
	}
	return &Cache{build: build, tables: tables}
}

// GeneratorBuild returns a BuildFunc running the built-in generator.
func GeneratorBuild(mode ProgressMode) BuildFunc {
	return func(seed int64) *Table {
		return NewGenerator(seed, mode).Generate()
	}
}

// Get returns the table for seed, generating it on first use.
func (c *Cache) Get(ctx context.Context, seed int64) (*Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if table, ok := c.tables.Get(seed); ok {
		return table, nil
	}

	v, err, _ := c.flights.Do(strconv.FormatInt(seed, 10), func() (any, error) {
		if table, ok := c.tables.Get(seed); ok {
			return table, nil
		}
		return c.generate(seed)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Table), nil
}

func (c *Cache) generate(seed int64) (table *Table, err error) {
	defer func() {
		if r := recover(); r != nil {
			table, err = nil, fmt.Errorf("%w: seed %d: %v", ErrBuildFailed, seed, r)
		}
	}()

	start := time.Now()
	table = c.build(seed)
	if table == nil {
		return nil, fmt.Errorf("%w: seed %d: no table", ErrBuildFailed, seed)
	}
	c.tables.Add(seed, table)
	if c.OnBuild != nil {
		c.OnBuild(seed, table.Len(), time.Since(start))
	}
	return table, nil
}

// Len reports how many seeds are cached.
func (c *Cache) Len() int {
	return c.tables.Len()
}
