package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// RequestRecorder records served requests.
type RequestRecorder interface {
	ObserveRequest(route, method string, status int, elapsed time.Duration)
}

// Metrics reports every request to recorder, labelled by its route template.
func Metrics(recorder RequestRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		recorder.ObserveRequest(c.FullPath(), c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
