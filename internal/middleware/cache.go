package middleware

import "github.com/gin-gonic/gin"

// CacheHeader reports whether a response was served from the analytics cache.
const CacheHeader = "X-Cache"

// SetCacheHit writes the cache outcome to the response headers.
func SetCacheHit(c *gin.Context, hit bool) {
	if hit {
		c.Header(CacheHeader, "HIT")
		return
	}
	c.Header(CacheHeader, "MISS")
}
