package cache

import (
	"fmt"
	"time"
)

// PostTTL bounds staleness for cached post bodies. Invalidation on update and
// delete keeps the common path fresh; the TTL covers missed invalidations.
const PostTTL = 5 * time.Minute

// PostKey returns the cache key for a single post.
func PostKey(id uint) string {
	return fmt.Sprintf("post:%d", id)
}
