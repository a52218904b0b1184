// Package querycache keeps successful read results keyed by resource family
// so that mutations can drop every entry of the families they affect.
package querycache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const DefaultTTL = 5 * time.Minute

const keySeparator = "|"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Key identifies one cached read. Params are encoded as JSON so filters given
// as structs produce stable keys.
type Key struct {
	Family string
	Params []any
}

func NewKey(family string, params ...any) Key {
	return Key{Family: family, Params: params}
}

func (k Key) String() string {
	if len(k.Params) == 0 {
		return k.Family + keySeparator
	}
	encoded, err := json.Marshal(k.Params)
	if err != nil {
		encoded = []byte(fmt.Sprint(k.Params...))
	}
	return k.Family + keySeparator + string(encoded)
}

type Cache struct {
	store  *cache.Cache
	group  singleflight.Group
	logger *zap.Logger

	mu          sync.Mutex
	epoch       uint64
	generations map[string]uint64
}

func New(ttl time.Duration, logger *zap.Logger) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cache{
		store:       cache.New(ttl, 2*ttl),
		logger:      logger,
		generations: make(map[string]uint64),
	}
}

// generation changes whenever the family is invalidated or the cache flushed.
func (c *Cache) generation(family string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generationLocked(family)
}

func (c *Cache) generationLocked(family string) string {
	return fmt.Sprintf("%d.%d", c.epoch, c.generations[family])
}

// Fetch returns the cached value for key or calls fetch once for all concurrent
// callers asking for the same key. Errors are returned to every waiting caller
// and never stored. A result whose family was invalidated while the fetch was in
// flight is returned but not stored.
//
// The shared call does not inherit any caller's cancellation: a caller whose ctx
// is done stops waiting, the others keep waiting for the result.
func Fetch[T any](ctx context.Context, c *Cache, key Key, fetch func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	id := key.String()
	if cached, ok := c.store.Get(id); ok {
		if value, ok := cached.(T); ok {
			return value, nil
		}
	}

	gen := c.generation(key.Family)
	shared := context.WithoutCancel(ctx)
	results := c.group.DoChan(gen+keySeparator+id, func() (interface{}, error) {
		value, err := fetch(shared)
		if err != nil {
			return nil, err
		}
		c.storeIfCurrent(key.Family, gen, id, value)
		return value, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-results:
		if res.Err != nil {
			return zero, res.Err
		}
		if res.Shared {
			c.logger.Debug("shared in-flight query", zap.String("key", id))
		}
		return res.Val.(T), nil
	}
}

// storeIfCurrent stores value unless its family was invalidated since gen was read.
func (c *Cache) storeIfCurrent(family, gen, id string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generationLocked(family) == gen {
		c.store.SetDefault(id, value)
	}
}

// Invalidate drops every entry of the named families.
func (c *Cache) Invalidate(families ...string) {
	if len(families) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, family := range families {
		c.generations[family]++
	}

	for id := range c.store.Items() {
		for _, family := range families {
			if strings.HasPrefix(id, family+keySeparator) {
				c.store.Delete(id)
				break
			}
		}
	}
	c.logger.Debug("invalidated query families", zap.Strings("families", families))
}

func (c *Cache) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.epoch++
	c.store.Flush()
}

// Len reports the number of live entries.
func (c *Cache) Len() int {
	return c.store.ItemCount()
}
