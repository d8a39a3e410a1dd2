package httpserver

import (
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_ServeAndShutdown(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("pong"))
	})
	s := New(handler, Listener(l), ShutdownTimeout(time.Second))

	resp, err := http.Get("http://" + l.Addr().String())
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, err)
	assert.Equal(t, "pong", string(body))

	require.NoError(t, s.Shutdown())

	select {
	case err, ok := <-s.Notify():
		assert.False(t, ok, "unexpected error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("notify channel was not closed")
	}
}

func TestServer_BindError(t *testing.T) {
	busy, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer busy.Close()

	_, port, err := net.SplitHostPort(busy.Addr().String())
	require.NoError(t, err)

	s := New(http.NotFoundHandler(), Port(port))

	select {
	case err := <-s.Notify():
		assert.Error(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("bind error was not reported")
	}
}
