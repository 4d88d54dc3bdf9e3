// Package obs is the logging client used across the exchange. Log lines
// carry the request id when one is present on the context, so a single
// order submission can be traced through matching and event publishing.
package obs

import (
	"context"
	"fmt"
)

// RequestIDContextKey is where the API middleware stores the request id.
const RequestIDContextKey = "reqId"

type Client struct{}

func New() *Client {
	return &Client{}
}

func (c *Client) requestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if reqID, ok := ctx.Value(RequestIDContextKey).(string); ok {
		return reqID
	}
	return ""
}

func (c *Client) LogDebug(ctx context.Context, msg string, args ...interface{}) {
	fmt.Printf("[DEBUG][%v] %s\n", c.requestID(ctx), fmt.Sprintf(msg, args...))
}

func (c *Client) LogInfo(ctx context.Context, msg string, args ...interface{}) {
	fmt.Printf("[INFO][%v] %s\n", c.requestID(ctx), fmt.Sprintf(msg, args...))
}

// LogNotice is for lifecycle events: startup, shutdown, restores.
func (c *Client) LogNotice(ctx context.Context, msg string, args ...interface{}) {
	fmt.Printf("[NOTICE] %s\n", fmt.Sprintf(msg, args...))
}

func (c *Client) LogErr(ctx context.Context, msg string, args ...interface{}) {
	fmt.Printf("[ERROR][%v] %s\n", c.requestID(ctx), fmt.Sprintf(msg, args...))
}

// LogAlert is for conditions an operator should look at immediately.
func (c *Client) LogAlert(ctx context.Context, msg string, args ...interface{}) {
	fmt.Printf("[ALERT] %s\n", fmt.Sprintf(msg, args...))
}
