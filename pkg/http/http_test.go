package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionClient(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		c, err := NewSessionClient()
		require.NoError(t, err)

		assert.Equal(t, DefaultTimeout, c.client.Timeout)
		assert.Equal(t, http.DefaultTransport, c.client.Transport)
		assert.Equal(t, DefaultUserAgent, c.userAgent)
		assert.NotNil(t, c.Jar())
	})

	t.Run("custom", func(t *testing.T) {
		transport := &http.Transport{MaxIdleConns: 10}
		c, err := NewSessionClient(
			WithTimeout(time.Second*5),
			WithTransport(transport),
			WithUserAgent("test-agent"),
		)
		require.NoError(t, err)

		assert.Equal(t, time.Second*5, c.client.Timeout)
		assert.Equal(t, transport, c.client.Transport)
		assert.Equal(t, "test-agent", c.userAgent)
	})
}

func TestSessionClient_Do(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/login":
			http.SetCookie(w, &http.Cookie{Name: "SID", Value: "session-1", Path: "/"})
			io.WriteString(w, "Ok.")
		case "/whoami":
			cookie, err := r.Cookie("SID")
			if err != nil {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			io.WriteString(w, cookie.Value+" "+r.UserAgent())
		}
	}))
	defer server.Close()

	c, err := NewSessionClient(WithUserAgent("test-agent"))
	require.NoError(t, err)

	get := func(path string) (int, string) {
		req, err := http.NewRequest(http.MethodGet, server.URL+path, nil)
		require.NoError(t, err)

		resp, err := c.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		b, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return resp.StatusCode, string(b)
	}

	status, _ := get("/whoami")
	assert.Equal(t, http.StatusForbidden, status)

	status, body := get("/login")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Ok.", body)

	status, body = get("/whoami")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "session-1 test-agent", body)

	u, err := url.Parse(server.URL)
	require.NoError(t, err)
	cookies := c.Jar().Cookies(u)
	require.Len(t, cookies, 1)
	assert.Equal(t, "SID", cookies[0].Name)
}

func TestSessionClient_KeepsExplicitUserAgent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, r.UserAgent())
	}))
	defer server.Close()

	c, err := NewSessionClient()
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "custom")

	resp, err := c.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "custom", string(b))
}
