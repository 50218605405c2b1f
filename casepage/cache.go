package casepage

import (
	"sync"

	"github.com/golang/glog"
)

// Cache memoizes built pages for one table (to_upper, to_lower,
// regex-canonical, or regex-equivalence-class), plus a one-entry "last
// page" hot slot for the common case where consecutive lookups land in
// the same 256-code-point block. Pages are retained for the process
// lifetime; there is no eviction.
//
// P is whatever a page pointer type for this table is (*StringPage,
// *CodepointPage, *ClassPage); its zero value (nil) represents the absent
// page, same as returned by the Build* functions.
type Cache[P any] struct {
	name string

	mu      sync.Mutex
	pages   map[int32]P
	built   bool
	lastIdx int32
	lastPg  P
}

// NewCache constructs an empty cache. name is used only for verbose
// logging (e.g. "to_upper", "regex-canonical").
func NewCache[P any](name string) *Cache[P] {
	return &Cache[P]{name: name, pages: map[int32]P{}}
}

// Page returns the page covering codePoint, building it via build on first
// access to that page index. Safe for concurrent use: the mutex is held
// across the build, so each page is built at most once and a concurrent
// caller for the same page waits, then reads it back out of the map.
func (c *Cache[P]) Page(codePoint int32, build func(pageIdx int32) P) P {
	pageIdx := codePoint >> 8

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.built && pageIdx == c.lastIdx {
		glog.V(2).Infof("casepage: hot-slot hit table=%s page=%#x codepoint=%#x", c.name, pageIdx, codePoint)
		return c.lastPg
	}

	page, ok := c.pages[pageIdx]
	if !ok {
		glog.V(1).Infof("casepage: building page table=%s page=%#x", c.name, pageIdx)
		page = build(pageIdx)
		c.pages[pageIdx] = page
	} else {
		glog.V(2).Infof("casepage: cache hit table=%s page=%#x codepoint=%#x", c.name, pageIdx, codePoint)
	}
	c.lastIdx = pageIdx
	c.lastPg = page
	c.built = true
	return page
}
