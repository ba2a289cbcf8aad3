package middleware

import (
	"strings"

	"checkout-engine/internal/domain/audit"

	"github.com/gin-gonic/gin"
)

const (
	ActorHeader = "X-Actor"
	actorKey    = "actor"
	maxActorLen = 128
)

// Actor attaches the caller named by X-Actor to the request context so audit
// entries written during the request carry it.
func Actor() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := strings.TrimSpace(c.GetHeader(ActorHeader))
		if len(actor) > maxActorLen {
			actor = actor[:maxActorLen]
		}
		if actor != "" {
			c.Set(actorKey, actor)
			c.Request = c.Request.WithContext(audit.WithActor(c.Request.Context(), actor))
		}
		c.Next()
	}
}

func GetActor(c *gin.Context) string {
	if v, ok := c.Get(actorKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
