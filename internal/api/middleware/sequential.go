package middleware

import (
	"sync"

	"github.com/gin-gonic/gin"
)

// Sequential serializes request handling: at most one handler behind this
// middleware runs at a time, in arrival order of lock acquisition.
func Sequential() gin.HandlerFunc {
	var mu sync.Mutex

	return func(c *gin.Context) {
		mu.Lock()
		defer mu.Unlock()
		c.Next()
	}
}
