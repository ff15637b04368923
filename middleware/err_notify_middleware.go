package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type errNotification struct {
	Code      int    `json:"code"`
	Method    string `json:"method"`
	Path      string `json:"path"`
	RequestID string `json:"request_id"`
	Error     string `json:"error"`
}

// ErrNotify posts every 5xx answer to addr, does nothing when addr is empty
func ErrNotify(addr string) fiber.Handler {
	client := &http.Client{Timeout: 5 * time.Second}
	return func(c *fiber.Ctx) error {
		err := c.Next()
		if addr == "" {
			return err
		}
		statusCode := c.Response().StatusCode()
		if statusCode < http.StatusInternalServerError {
			return err
		}

		var data struct {
			Error string `json:"error"`
		}
		if unmErr := json.Unmarshal(c.Response().Body(), &data); unmErr != nil {
			log.WithError(unmErr).Warn("error unmarshalling response body in middleware")
		}
		path := c.OriginalURL()
		if r := c.Route(); r != nil {
			path = r.Path
		}
		payload, mErr := json.Marshal(errNotification{
			Code:      statusCode,
			Method:    c.Method(),
			Path:      path,
			RequestID: GetRequestID(c),
			Error:     data.Error,
		})
		if mErr != nil {
			log.WithError(mErr).Warn("error serializing error notification")
			return err
		}

		go func() {
			resp, reqErr := client.Post(addr, fiber.MIMEApplicationJSON, bytes.NewReader(payload))
			if reqErr != nil {
				log.WithError(reqErr).Warn("error sending error notification")
				return
			}
			_ = resp.Body.Close()
		}()
		return err
	}
}
