package pkg

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const waitFor = 5 * time.Second

func startServer(t *testing.T) (*Server, context.CancelFunc, <-chan error) {
	t.Helper()
	server := NewServer("127.0.0.1:0", NewStore())
	require.NoError(t, server.Listen())

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() {
		errc <- server.Serve(ctx)
	}()
	t.Cleanup(cancel)
	return server, cancel, errc
}

func TestServerConnectionLifecycle(t *testing.T) {
	server, _, _ := startServer(t)
	store := server.Store
	assert.Equal(t, NoClient, store.Connection())

	cl, err := Connect(server.Addr().String())
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return store.Connection() == ClientConnected
	}, waitFor, 10*time.Millisecond)

	require.NoError(t, cl.Send("8/8/8/4k3/8/8/8/4K3"))
	require.Eventually(t, func() bool {
		return store.Version() == 1
	}, waitFor, 10*time.Millisecond)
	assert.Equal(t, "8/8/8/4k3/8/8/8/4K3", store.Read().Grid.FEN())

	require.NoError(t, cl.Close())
	require.Eventually(t, func() bool {
		return store.Connection() == NoClient
	}, waitFor, 10*time.Millisecond)

	// The server keeps accepting after a session ends.
	cl, err = Connect(server.Addr().String())
	require.NoError(t, err)
	defer cl.Close()
	require.NoError(t, cl.Send("8/8/8/8/8/8/8/7"))
	require.Eventually(t, func() bool {
		return store.Version() == 2
	}, waitFor, 10*time.Millisecond)
	assert.Equal(t, DefaultGrid(), store.Read().Grid)
}

func TestServerOneSessionAtATime(t *testing.T) {
	server, _, _ := startServer(t)
	store := server.Store

	first, err := Connect(server.Addr().String())
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		return store.Connection() == ClientConnected
	}, waitFor, 10*time.Millisecond)

	// The second client sits in the backlog until the first leaves.
	second, err := Connect(server.Addr().String())
	require.NoError(t, err)
	defer second.Close()
	require.NoError(t, second.Send("8/8/8/8/8/8/8/8"))
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, uint64(0), store.Version())

	require.NoError(t, first.Close())
	require.Eventually(t, func() bool {
		return store.Version() == 1
	}, waitFor, 10*time.Millisecond)
	assert.Equal(t, BoardGrid{}, store.Read().Grid)
}

func TestServerCancelUnblocks(t *testing.T) {
	server, cancel, errc := startServer(t)

	cl, err := Connect(server.Addr().String())
	require.NoError(t, err)
	defer cl.Close()
	require.Eventually(t, func() bool {
		return server.Store.Connection() == ClientConnected
	}, waitFor, 10*time.Millisecond)

	cancel()
	select {
	case err := <-errc:
		assert.NoError(t, err)
	case <-time.After(waitFor):
		t.Fatal("Serve did not return after cancel")
	}
	assert.Equal(t, NoClient, server.Store.Connection())
}

func TestServerBindError(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer taken.Close()

	server := NewServer(taken.Addr().String(), NewStore())
	err = server.Listen()

	var bindErr *BindError
	require.ErrorAs(t, err, &bindErr)
	assert.Equal(t, taken.Addr().String(), bindErr.Addr)
	assert.Nil(t, server.Addr())
}

func TestServeWithoutListen(t *testing.T) {
	server := NewServer("127.0.0.1:0", NewStore())
	assert.Error(t, server.Serve(context.Background()))
}

func TestAddress(t *testing.T) {
	assert.Equal(t, "127.0.0.1:8888", Address("", 0))
	assert.Equal(t, "0.0.0.0:9000", Address("0.0.0.0", 9000))
	assert.Equal(t, "[::1]:8888", Address("::1", 0))
}

func TestListenAndServeBindError(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer taken.Close()

	server := NewServer(taken.Addr().String(), NewStore())
	err = server.ListenAndServe(context.Background())

	var bindErr *BindError
	assert.ErrorAs(t, err, &bindErr)
}
