package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPServer_Address(t *testing.T) {
	s := NewHTTPServer(http.NewServeMux(), ":8080")
	assert.Equal(t, ":8080", s.Address())
}

func TestHTTPServer_StartStop(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	s := NewHTTPServer(mux, "127.0.0.1:0")

	done := make(chan error, 1)
	go func() {
		done <- s.Start(NewPlainListener())
	}()

	// Give the listener a moment to come up.
	time.Sleep(100 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestTLSListener_MissingCertificate(t *testing.T) {
	l := NewTLSListener("missing-cert.pem", "missing-key.pem")

	_, err := l.Listen("tcp", "127.0.0.1:0")
	require.Error(t, err)
}

func TestPlainListener_Listen(t *testing.T) {
	l := NewPlainListener()

	listener, err := l.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	require.NoError(t, listener.Close())
}
