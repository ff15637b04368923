package fiberlog

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	TagPid      = "pid"
	TagLatency  = "latency"
	TagStatus   = "status"
	TagMethod   = "method"
	TagPath     = "path"
	TagQuery    = "query"
	TagIP       = "ip"
	TagUA       = "user_agent"
	TagBody     = "body"
	TagResBody  = "response_body"
	RequestID   = "request_id"
	maxBodySize = 2048
)

type data struct {
	pid   int
	start time.Time
	end   time.Time
}

// FuncTag extracts a single field value from the request
type FuncTag func(c *fiber.Ctx, d *data) interface{}

func getFuncTagMap(cfg Config) map[string]FuncTag {
	all := map[string]FuncTag{
		TagPid: func(_ *fiber.Ctx, d *data) interface{} {
			return d.pid
		},
		TagLatency: func(_ *fiber.Ctx, d *data) interface{} {
			return d.end.Sub(d.start).String()
		},
		TagStatus: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Response().StatusCode()
		},
		TagMethod: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Method()
		},
		TagPath: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Path()
		},
		TagQuery: func(c *fiber.Ctx, _ *data) interface{} {
			return string(c.Request().URI().QueryString())
		},
		TagIP: func(c *fiber.Ctx, _ *data) interface{} {
			return c.IP()
		},
		TagUA: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Get(fiber.HeaderUserAgent)
		},
		TagBody: func(c *fiber.Ctx, _ *data) interface{} {
			return truncate(c.Body())
		},
		TagResBody: func(c *fiber.Ctx, _ *data) interface{} {
			if c.GetRespHeader(fiber.HeaderContentType) != fiber.MIMEApplicationJSON &&
				c.GetRespHeader(fiber.HeaderContentType) != fiber.MIMEApplicationJSONCharsetUTF8 {
				return ""
			}
			return truncate(c.Response().Body())
		},
		RequestID: func(c *fiber.Ctx, _ *data) interface{} {
			return c.GetRespHeader(fiber.HeaderXRequestID)
		},
	}
	result := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if ft, ok := all[tag]; ok {
			result[tag] = ft
		}
	}
	return result
}

func truncate(body []byte) string {
	if len(body) > maxBodySize {
		return string(body[:maxBodySize]) + "..."
	}
	return string(body)
}
