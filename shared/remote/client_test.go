package remote

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T, queueSize int) *Server {
	t.Helper()
	s := NewServer(queueSize)
	require.NoError(t, s.Start("127.0.0.1:0"))
	t.Cleanup(func() { s.Close() })
	return s
}

func TestClientSend(t *testing.T) {
	s := startServer(t, 4)

	c := NewClient(URLFor(s.Addr()))
	require.NoError(t, c.Connect())
	defer c.Close()

	reply, err := c.Send(CommandComplete)
	require.NoError(t, err)
	assert.True(t, reply.OK)
	assert.Equal(t, "complete", reply.Command)
	_, err = uuid.Parse(reply.ID)
	assert.NoError(t, err, "resposta carrega o ID gerado pelo cliente")
	assert.Equal(t, CommandComplete, <-s.Commands())
}

func TestClientQueueFull(t *testing.T) {
	s := startServer(t, 1)

	c := NewClient(URLFor(s.Addr()))
	require.NoError(t, c.Connect())
	defer c.Close()

	_, err := c.Send(CommandCopy)
	require.NoError(t, err)

	reply, err := c.Send(CommandReset)
	require.Error(t, err)
	assert.False(t, reply.OK)
	assert.Equal(t, ErrQueueFull.Error(), reply.Error)
}

func TestClientNotConnected(t *testing.T) {
	c := NewClient("ws://127.0.0.1:1/ws")
	_, err := c.Send(CommandReset)
	assert.ErrorIs(t, err, ErrNotConnected)
	assert.NoError(t, c.Close())
}

func TestClientConnectFails(t *testing.T) {
	s := startServer(t, 1)
	addr := s.Addr()
	require.NoError(t, s.Close())

	c := NewClient(URLFor(addr))
	c.MaxRetries = 1
	c.RetryDelay = 0
	assert.Error(t, c.Connect())
}
