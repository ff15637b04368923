package apiv1

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestRootApi(t *testing.T) {
	newApp := func(ping func() error) *fiber.App {
		app := fiber.New()
		controller := rootApiController{ping: ping}
		app.Get("/", controller.hello)
		app.Get("health", controller.health)
		return app
	}

	t.Run(`hello check`, func(t *testing.T) {
		status, body := doRequest(t, newApp(func() error { return nil }), http.MethodGet, "/")
		require.Equal(t, http.StatusOK, status)
		require.JSONEq(t, `{"hello":"world"}`, string(body))
	})

	t.Run(`health check`, func(t *testing.T) {
		status, body := doRequest(t, newApp(func() error { return nil }), http.MethodGet, "/health")
		require.Equal(t, http.StatusOK, status)
		require.JSONEq(t, `{"status":"ok"}`, string(body))

		status, body = doRequest(t, newApp(func() error { return errors.New("connection refused") }), http.MethodGet, "/health")
		require.Equal(t, http.StatusServiceUnavailable, status)
		require.JSONEq(t, `{"status":"fail"}`, string(body))
	})
}
