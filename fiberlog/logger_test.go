package fiberlog

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestRequestLogger(t *testing.T) {
	out := &bytes.Buffer{}
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.JSONFormatter{})

	app := fiber.New()
	app.Use(New(Config{
		Logger: logger,
		Tags:   []string{TagMethod, TagPath, TagQuery, TagStatus, TagResBody},
		Skip:   []string{"/health"},
	}))
	app.Get("/jobs/:id", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Job not found"})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	t.Run(`fields check`, func(t *testing.T) {
		out.Reset()
		_, err := app.Test(httptest.NewRequest(http.MethodGet, "/jobs/4?page=1", nil))
		require.Nil(t, err)

		entry := map[string]interface{}{}
		require.Nil(t, json.Unmarshal(out.Bytes(), &entry))
		require.Equal(t, "warning", entry["level"])
		require.Equal(t, "api request", entry["msg"])
		require.Equal(t, http.MethodGet, entry[TagMethod])
		require.Equal(t, "/jobs/4", entry[TagPath])
		require.Equal(t, "page=1", entry[TagQuery])
		require.Equal(t, float64(fiber.StatusNotFound), entry[TagStatus])
		require.Equal(t, `{"error":"Job not found"}`, entry[TagResBody])
	})

	t.Run(`skip check`, func(t *testing.T) {
		out.Reset()
		_, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		require.Nil(t, err)
		require.Equal(t, 0, out.Len())
	})
}
