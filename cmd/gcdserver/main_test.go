package main

import (
	"context"
	"flag"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/InQaaaaGit/gcd_form.git/internal/buildinfo"
	"github.com/InQaaaaGit/gcd_form.git/internal/config"
)

func TestRunServesAndStops(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	cfg := &config.Config{ServerAddress: addr, ShutdownTimeout: time.Second}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(ctx, cfg, zap.NewNop())
	}()

	var body string
	require.Eventually(t, func() bool {
		resp, err := http.PostForm("http://"+addr+"/gcd", url.Values{"n": {"48"}, "m": {"18"}})
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return false
		}
		body = string(b)
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)
	assert.Contains(t, body, "is <b>6</b>")

	cancel()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("run did not return after cancel")
	}
}

func TestRunReturnsListenError(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	// Адрес уже занят, сервер должен вернуть ошибку сразу
	cfg := &config.Config{ServerAddress: l.Addr().String(), ShutdownTimeout: time.Second}
	err = run(context.Background(), cfg, zap.NewNop())
	assert.Error(t, err)
}

func TestStartReturnsConfigError(t *testing.T) {
	oldArgs, oldFlags := os.Args, flag.CommandLine
	defer func() {
		os.Args, flag.CommandLine = oldArgs, oldFlags
	}()
	os.Args = []string{"gcdserver"}
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	t.Setenv("RATE_LIMIT", "-1")

	// Ошибка возвращается вызывающему, а не завершает процесс
	err := start(zap.NewNop(), buildinfo.NewInfo("", "", ""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")
}
