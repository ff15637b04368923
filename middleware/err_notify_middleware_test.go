package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestErrNotify(t *testing.T) {
	received := make(chan errNotification, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		notification := errNotification{}
		_ = json.NewDecoder(r.Body).Decode(&notification)
		received <- notification
	}))
	defer server.Close()

	app := fiber.New()
	app.Use(RequestID())
	app.Use(ErrNotify(server.URL))
	app.Use(CurrentUser(1))
	app.Get("/ok", func(c *fiber.Ctx) error {
		require.Equal(t, 1, GetUserID(c))
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/jobs/:id", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error fetching job"})
	})

	t.Run(`success is not notified check`, func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil))
		require.Nil(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		select {
		case <-received:
			t.Fatal("unexpected notification")
		case <-time.After(100 * time.Millisecond):
		}
	})

	t.Run(`server error is notified check`, func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/jobs/3", nil))
		require.Nil(t, err)
		require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		select {
		case notification := <-received:
			require.Equal(t, http.StatusInternalServerError, notification.Code)
			require.Equal(t, http.MethodGet, notification.Method)
			require.Equal(t, "/jobs/:id", notification.Path)
			require.Equal(t, "Error fetching job", notification.Error)
			require.NotEmpty(t, notification.RequestID)
		case <-time.After(2 * time.Second):
			t.Fatal("notification not received")
		}
	})
}
