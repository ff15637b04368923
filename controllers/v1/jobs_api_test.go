package apiv1

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	jobshandler "jobs-board-backend/lib/jobs"
	"jobs-board-backend/middleware"
	apimodels "jobs-board-backend/models/api"
	jobsapimodels "jobs-board-backend/models/api/jobs"
)

type fakeJobsHandler struct {
	lastUserID int
	lastFilter jobsapimodels.JobFilter
	favorites  map[int]bool
	fail       bool
}

func (h *fakeJobsHandler) List(ctx context.Context, userID int, filter jobsapimodels.JobFilter) (jobsapimodels.JobListResponse, string, error) {
	h.lastUserID = userID
	h.lastFilter = filter
	if h.fail {
		return jobsapimodels.JobListResponse{}, "", errors.New("upstream timeout")
	}
	if hMsg := filter.Validate(); hMsg != "" {
		return jobsapimodels.JobListResponse{}, hMsg, nil
	}
	return jobsapimodels.JobListResponse{
		Pagination: jobsapimodels.Pagination{CurrentPage: filter.Page, LastPage: 4},
		Data:       []jobsapimodels.Job{{ID: 1, Title: "Go developer", Company: "Acme", IsFavorite: h.favorites[1]}},
	}, "", nil
}

func (h *fakeJobsHandler) Get(ctx context.Context, userID, id int) (jobsapimodels.Job, string, error) {
	h.lastUserID = userID
	if h.fail {
		return jobsapimodels.Job{}, "", errors.New("upstream timeout")
	}
	if id != 1 {
		return jobsapimodels.Job{}, "Job not found", nil
	}
	return jobsapimodels.Job{ID: 1, Title: "Go developer", Company: "Acme", IsFavorite: h.favorites[1]}, "", nil
}

func (h *fakeJobsHandler) ToggleFavorite(ctx context.Context, userID, id int) (bool, error) {
	h.lastUserID = userID
	if h.fail {
		return false, errors.New("db is down")
	}
	h.favorites[id] = !h.favorites[id]
	return h.favorites[id], nil
}

func (h *fakeJobsHandler) Favorites(ctx context.Context, userID int) ([]jobsapimodels.Job, error) {
	if h.fail {
		return nil, errors.New("db is down")
	}
	result := []jobsapimodels.Job{}
	for id, ok := range h.favorites {
		if ok {
			result = append(result, jobsapimodels.Job{ID: id, IsFavorite: true})
		}
	}
	return result, nil
}

func (h *fakeJobsHandler) ExportFavorites(ctx context.Context, userID int) (*bytes.Buffer, error) {
	if h.fail {
		return nil, errors.New("db is down")
	}
	return bytes.NewBufferString("PK"), nil
}

func newTestApp(handler jobshandler.Provider) *fiber.App {
	jobshandler.Instance = handler
	app := fiber.New()
	app.Use(middleware.RequestID())
	app.Use(middleware.CurrentUser(1))
	InitJobsApiRouters(app)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, target string) (int, []byte) {
	resp, err := app.Test(httptest.NewRequest(method, target, nil))
	require.Nil(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.Nil(t, err)
	return resp.StatusCode, body
}

func TestJobsApi(t *testing.T) {
	t.Run(`list check`, func(t *testing.T) {
		handler := &fakeJobsHandler{favorites: map[int]bool{1: true}}
		app := newTestApp(handler)

		status, body := doRequest(t, app, http.MethodGet, "/jobs?page=2")
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, 1, handler.lastUserID)
		require.Equal(t, jobsapimodels.JobFilter{Page: 2}, handler.lastFilter)

		resp := jobsapimodels.JobListResponse{}
		require.Nil(t, json.Unmarshal(body, &resp))
		require.Equal(t, 2, resp.Pagination.CurrentPage)
		require.Len(t, resp.Data, 1)
		require.True(t, resp.Data[0].IsFavorite)
		require.Contains(t, string(body), `"isFavorite":true`)
		require.Contains(t, string(body), `"currentPage":2`)
	})

	t.Run(`list page normalization check`, func(t *testing.T) {
		handler := &fakeJobsHandler{favorites: map[int]bool{}}
		app := newTestApp(handler)

		status, _ := doRequest(t, app, http.MethodGet, "/jobs?page=-3")
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, 0, handler.lastFilter.Page)

		status, _ = doRequest(t, app, http.MethodGet, "/jobs?page=abc&search=go")
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, jobsapimodels.JobFilter{Search: "go", Page: 0}, handler.lastFilter)
	})

	t.Run(`list short search check`, func(t *testing.T) {
		app := newTestApp(&fakeJobsHandler{favorites: map[int]bool{}})
		status, body := doRequest(t, app, http.MethodGet, "/jobs?search=g")
		require.Equal(t, http.StatusBadRequest, status)
		resp := apimodels.ErrorResponse{}
		require.Nil(t, json.Unmarshal(body, &resp))
		require.Equal(t, "Search query must be at least 2 characters long", resp.Error)
	})

	t.Run(`list upstream error check`, func(t *testing.T) {
		app := newTestApp(&fakeJobsHandler{favorites: map[int]bool{}, fail: true})
		status, body := doRequest(t, app, http.MethodGet, "/jobs")
		require.Equal(t, http.StatusInternalServerError, status)
		require.JSONEq(t, `{"error":"Error fetching jobs"}`, string(body))
	})

	t.Run(`get check`, func(t *testing.T) {
		app := newTestApp(&fakeJobsHandler{favorites: map[int]bool{}})

		status, body := doRequest(t, app, http.MethodGet, "/jobs/1")
		require.Equal(t, http.StatusOK, status)
		require.JSONEq(t, `{"id":1,"title":"Go developer","description":"","company":"Acme","isFavorite":false}`, string(body))

		status, body = doRequest(t, app, http.MethodGet, "/jobs/2")
		require.Equal(t, http.StatusNotFound, status)
		require.JSONEq(t, `{"error":"Job not found"}`, string(body))

		status, _ = doRequest(t, app, http.MethodGet, "/jobs/abc")
		require.Equal(t, http.StatusBadRequest, status)

		status, _ = doRequest(t, app, http.MethodGet, "/jobs/0")
		require.Equal(t, http.StatusBadRequest, status)
	})

	t.Run(`get error check`, func(t *testing.T) {
		app := newTestApp(&fakeJobsHandler{favorites: map[int]bool{}, fail: true})
		status, body := doRequest(t, app, http.MethodGet, "/jobs/1")
		require.Equal(t, http.StatusInternalServerError, status)
		require.JSONEq(t, `{"error":"Error fetching job"}`, string(body))
	})

	t.Run(`favorite toggle check`, func(t *testing.T) {
		handler := &fakeJobsHandler{favorites: map[int]bool{}}
		app := newTestApp(handler)

		status, body := doRequest(t, app, http.MethodPut, "/jobs/5/favorite")
		require.Equal(t, http.StatusOK, status)
		require.JSONEq(t, `{"message":"Job favorited","isFavorite":true}`, string(body))

		status, body = doRequest(t, app, http.MethodPut, "/jobs/5/favorite")
		require.Equal(t, http.StatusOK, status)
		require.JSONEq(t, `{"message":"Job unfavorited","isFavorite":false}`, string(body))

		status, _ = doRequest(t, app, http.MethodPut, "/jobs/x/favorite")
		require.Equal(t, http.StatusBadRequest, status)
	})

	t.Run(`favorite toggle error check`, func(t *testing.T) {
		app := newTestApp(&fakeJobsHandler{favorites: map[int]bool{}, fail: true})
		status, body := doRequest(t, app, http.MethodPut, "/jobs/5/favorite")
		require.Equal(t, http.StatusInternalServerError, status)
		require.JSONEq(t, `{"error":"Error favoriting job"}`, string(body))
	})

	t.Run(`favorites check`, func(t *testing.T) {
		app := newTestApp(&fakeJobsHandler{favorites: map[int]bool{8: true}})
		status, body := doRequest(t, app, http.MethodGet, "/jobs/favorites")
		require.Equal(t, http.StatusOK, status)
		list := []jobsapimodels.Job{}
		require.Nil(t, json.Unmarshal(body, &list))
		require.Len(t, list, 1)
		require.Equal(t, 8, list[0].ID)
	})

	t.Run(`favorites export check`, func(t *testing.T) {
		app := newTestApp(&fakeJobsHandler{favorites: map[int]bool{}})
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/jobs/favorites/export", nil))
		require.Nil(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", resp.Header.Get(fiber.HeaderContentType))
		require.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "favorite_jobs.xlsx")
	})
}
