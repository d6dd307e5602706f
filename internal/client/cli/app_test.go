package cli

import (
	"bufio"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/gophproducts/internal/client/client"
	"github.com/dmitrijs2005/gophproducts/internal/client/config"
)

func TestNewApp(t *testing.T) {
	a := NewApp(&config.Config{ServerEndpointAddr: "http://127.0.0.1:1", RequestTimeout: time.Second})

	assert.IsType(t, &client.APIClient{}, a.api)
	assert.False(t, a.isLoggedIn())
}

func TestRun_WarnsWhenServerUnreachable(t *testing.T) {
	capturePrint(t)

	a, out := newTestApp(&fakeAPI{pingErr: errors.New("server unavailable")})
	a.reader = bufio.NewReader(strings.NewReader("exit\n"))

	a.Run(context.Background())

	assert.Contains(t, out.String(), "Welcome")
	assert.Contains(t, out.String(), "Warning: http://test is not reachable")
}

func TestRun_NoWarningWhenReachable(t *testing.T) {
	capturePrint(t)

	a, out := newTestApp(&fakeAPI{})
	a.reader = bufio.NewReader(strings.NewReader(""))

	a.Run(context.Background())

	assert.NotContains(t, out.String(), "Warning")
}
