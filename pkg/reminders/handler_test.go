package reminders_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/remindkit/pkg/logger"
	"github.com/dmitrymomot/remindkit/pkg/reminders"
)

func newBannerServer(t *testing.T, api reminders.Acknowledger) (*reminders.List, *httptest.Server) {
	t.Helper()

	list := reminders.NewList(sampleTasks())
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	b := reminders.NewBanner(api, list.Remove, list.Clear,
		reminders.WithLogger(logger.Discard()),
		reminders.WithClock(func() time.Time { return now }),
	)

	srv := httptest.NewServer(b.Router(list))
	t.Cleanup(srv.Close)
	return list, srv
}

func noRedirect(srv *httptest.Server) *http.Client {
	c := srv.Client()
	c.CheckRedirect = func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }
	return c
}

func TestRouter_Render(t *testing.T) {
	_, srv := newBannerServer(t, &fakeAcknowledger{})

	resp, err := srv.Client().Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html"))
	assert.Contains(t, string(body), "Task Reminders (3)")
}

func TestRouter_Dismiss(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		list, srv := newBannerServer(t, &fakeAcknowledger{})

		resp, err := noRedirect(srv).Post(srv.URL+"/reminders/2/dismiss", "", nil)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, []int64{1, 3}, ids(list.Tasks()))
	})

	t.Run("failure keeps item", func(t *testing.T) {
		list, srv := newBannerServer(t, &fakeAcknowledger{fail: map[int64]bool{2: true}})

		resp, err := noRedirect(srv).Post(srv.URL+"/reminders/2/dismiss", "", nil)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, 3, list.Len())
	})

	t.Run("unknown id", func(t *testing.T) {
		api := &fakeAcknowledger{}
		_, srv := newBannerServer(t, api)

		resp, err := noRedirect(srv).Post(srv.URL+"/reminders/77/dismiss", "", nil)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Empty(t, api.called())
	})

	t.Run("invalid id", func(t *testing.T) {
		_, srv := newBannerServer(t, &fakeAcknowledger{})

		resp, err := noRedirect(srv).Post(srv.URL+"/reminders/abc/dismiss", "", nil)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestRouter_DismissAll(t *testing.T) {
	t.Run("success clears list", func(t *testing.T) {
		list, srv := newBannerServer(t, &fakeAcknowledger{})

		resp, err := noRedirect(srv).Post(srv.URL+"/reminders/dismiss-all", "", nil)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Zero(t, list.Len())
	})

	t.Run("partial failure keeps list", func(t *testing.T) {
		list, srv := newBannerServer(t, &fakeAcknowledger{fail: map[int64]bool{2: true}})

		resp, err := noRedirect(srv).Post(srv.URL+"/reminders/dismiss-all", "", nil)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, 3, list.Len())
	})
}
