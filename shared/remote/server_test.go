package remote

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dial(t *testing.T, s *Server) *websocket.Conn {
	t.Helper()
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func roundTrip(t *testing.T, conn *websocket.Conn, body string) Reply {
	t.Helper()
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(body)))
	var reply Reply
	require.NoError(t, conn.ReadJSON(&reply))
	return reply
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		in      string
		want    Command
		wantErr bool
	}{
		{"complete", CommandComplete, false},
		{"COPY", CommandCopy, false},
		{" reset ", CommandReset, false},
		{"undo", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseCommand(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestCommandsArriveInOrder(t *testing.T) {
	s := NewServer(8)
	conn := dial(t, s)

	for _, body := range []string{`{"command":"complete"}`, `{"command":"copy"}`, `{"command":"reset"}`} {
		reply := roundTrip(t, conn, body)
		assert.True(t, reply.OK, body)
	}

	assert.Equal(t, CommandComplete, <-s.Commands())
	assert.Equal(t, CommandCopy, <-s.Commands())
	assert.Equal(t, CommandReset, <-s.Commands())
}

func TestInvalidMessages(t *testing.T) {
	s := NewServer(8)
	conn := dial(t, s)

	reply := roundTrip(t, conn, `nao e json`)
	assert.False(t, reply.OK)
	assert.Contains(t, reply.Error, "mensagem inválida")

	reply = roundTrip(t, conn, `{"command":"undo"}`)
	assert.False(t, reply.OK)
	assert.Equal(t, "undo", reply.Command)
	assert.Contains(t, reply.Error, "desconhecido")

	assert.Empty(t, s.Commands())
}

func TestQueueFull(t *testing.T) {
	s := NewServer(1)
	conn := dial(t, s)

	assert.True(t, roundTrip(t, conn, `{"command":"copy"}`).OK)
	reply := roundTrip(t, conn, `{"command":"reset"}`)
	assert.False(t, reply.OK)
	assert.Equal(t, ErrQueueFull.Error(), reply.Error)

	assert.Equal(t, CommandCopy, <-s.Commands())
}

func TestStartAndClose(t *testing.T) {
	s := NewServer(4)
	require.NoError(t, s.Start("127.0.0.1:0"))
	addr := s.Addr()
	require.NotEmpty(t, addr)

	conn, _, err := websocket.DefaultDialer.Dial("ws://"+addr+"/ws", nil)
	require.NoError(t, err)
	reply := roundTrip(t, conn, `{"command":"complete"}`)
	assert.True(t, reply.OK)
	conn.Close()

	require.NoError(t, s.Close())
	assert.Empty(t, s.Addr())
	assert.NoError(t, s.Close(), "fechar duas vezes não falha")
}

func TestReplyEchoesID(t *testing.T) {
	s := NewServer(4)
	conn := dial(t, s)

	reply := roundTrip(t, conn, `{"id":"abc-1","command":"copy"}`)
	assert.True(t, reply.OK)
	assert.Equal(t, "abc-1", reply.ID)

	reply = roundTrip(t, conn, `{"id":"abc-2","command":"nada"}`)
	assert.False(t, reply.OK)
	assert.Equal(t, "abc-2", reply.ID)
}
