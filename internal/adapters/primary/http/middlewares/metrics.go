package middlewares

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// HTTPObserver принимает замеры обработанных запросов
type HTTPObserver interface {
	ObserveHTTP(method, route, status string, duration time.Duration)
}

// Metrics считает запросы по шаблону маршрута, а не по сырому пути
func Metrics(observer HTTPObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		observer.ObserveHTTP(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
