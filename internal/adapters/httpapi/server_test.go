package httpapi_test

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sanakirja/internal/adapters/httpapi"
	"sanakirja/internal/application"
	"sanakirja/internal/domain/entities"
	"sanakirja/internal/infrastructure/i18n"
	"sanakirja/internal/testutil"
)

// slowRepo blocks List until released and then honours the request context.
type slowRepo struct {
	started chan struct{}
	release chan struct{}
}

func (r *slowRepo) List(ctx context.Context) ([]entities.WordPair, error) {
	close(r.started)
	<-r.release
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []entities.WordPair{{Fin: "koira", Eng: "dog"}}, nil
}

func (r *slowRepo) Append(context.Context, entities.WordPair) error { return nil }

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())
	return port
}

func TestServe_ShutdownLetsInFlightRequestsFinish(t *testing.T) {
	logger := testutil.NewTestLogger(t)
	repo := &slowRepo{started: make(chan struct{}), release: make(chan struct{})}
	port := freePort(t)

	srv := httpapi.NewServer(httpapi.Config{
		Dictionary: application.NewDictionaryService(repo),
		Translator: i18n.NewTranslator("en", logger),
		Port:       port,
		Logger:     logger,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	served := make(chan error, 1)
	go func() { served <- srv.Serve(ctx) }()

	type response struct {
		status int
		body   string
		err    error
	}
	responses := make(chan response, 1)
	go func() {
		url := fmt.Sprintf("http://127.0.0.1:%d/", port)
		for attempt := 0; attempt < 200; attempt++ {
			resp, err := http.Get(url)
			if err != nil {
				time.Sleep(10 * time.Millisecond)
				continue
			}
			b, err := io.ReadAll(resp.Body)
			_ = resp.Body.Close()
			responses <- response{status: resp.StatusCode, body: string(b), err: err}
			return
		}
		responses <- response{err: fmt.Errorf("server never came up on port %d", port)}
	}()

	select {
	case <-repo.started:
	case r := <-responses:
		t.Fatalf("request finished before reaching the store: %+v", r)
	}

	cancel()
	time.Sleep(50 * time.Millisecond)
	close(repo.release)

	r := <-responses
	require.NoError(t, r.err)
	assert.Equal(t, http.StatusOK, r.status)
	assert.JSONEq(t, `[{"fin":"koira","eng":"dog"}]`, r.body)

	select {
	case err := <-served:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after shutdown")
	}
}
