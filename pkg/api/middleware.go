package api

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/gnoobs75/Expedition-sub004/pkg/obs"
)

const RequestIDHeader = "X-Request-ID"

func requestIDMiddleware(c *fiber.Ctx) error {
	requestID := strings.TrimSpace(c.Get(RequestIDHeader))
	if requestID == "" {
		requestID = uuid.NewString()
	}

	ctx := context.WithValue(c.UserContext(), obs.RequestIDContextKey, requestID)
	c.SetUserContext(ctx)
	c.Set(RequestIDHeader, requestID)

	return c.Next()
}
