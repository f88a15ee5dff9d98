package middleware

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"
)

// ActorHeader names who performs a request. It is recorded in audit fields only;
// there is no authentication behind it.
const ActorHeader = "X-Actor"

// DefaultActor is recorded when no actor header is sent.
const DefaultActor = "system"

const actorKey = contextKey("actor")

// ActorMiddleware stores the request actor in the Gin context and enriches the logger with it.
func ActorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := strings.TrimSpace(c.GetHeader(ActorHeader))
		if actor == "" {
			actor = DefaultActor
		}
		c.Set(string(actorKey), actor)

		logger := GetLoggerFromCtx(c.Request.Context()).With(slog.String("actor", actor))
		c.Request = c.Request.WithContext(WithLogger(c.Request.Context(), logger))
		c.Next()
	}
}

// GetActorFromContext retrieves the actor set by ActorMiddleware, or DefaultActor.
func GetActorFromContext(c *gin.Context) string {
	actorVal, exists := c.Get(string(actorKey))
	if !exists {
		return DefaultActor
	}
	actor, ok := actorVal.(string)
	if !ok || actor == "" {
		return DefaultActor
	}
	return actor
}
