package remote

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// ErrNotConnected é retornado por Send antes de Connect ou após a conexão cair.
var ErrNotConnected = errors.New("não conectado à ponte de comandos")

// Client envia comandos para a ponte de um PolyDraw em execução.
type Client struct {
	url        string
	conn       *websocket.Conn
	mu         sync.Mutex
	MaxRetries int
	RetryDelay time.Duration
}

// NewClient cria um cliente para a URL ws://host:porta/ws.
func NewClient(url string) *Client {
	return &Client{
		url:        url,
		MaxRetries: 5,
		RetryDelay: time.Second,
	}
}

// URLFor monta a URL do endpoint a partir de host:porta.
func URLFor(addr string) string {
	return "ws://" + addr + "/ws"
}

// Connect tenta conectar até MaxRetries vezes.
func (c *Client) Connect() error {
	dialer := websocket.Dialer{
		HandshakeTimeout: 5 * time.Second,
	}

	retries := max(c.MaxRetries, 1)
	var err error
	var conn *websocket.Conn
	for i := 0; i < retries; i++ {
		conn, _, err = dialer.Dial(c.url, nil)
		if err == nil {
			break
		}
		log.Printf("[Remote] Tentativa %d/%d em %s falhou: %v", i+1, retries, c.url, err)
		if i < retries-1 {
			time.Sleep(c.RetryDelay)
		}
	}
	if err != nil {
		return fmt.Errorf("conectando em %s: %w", c.url, err)
	}

	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()
	return nil
}

// Send envia um comando e espera a resposta da ponte.
// Cada envio leva um ID novo que deve voltar na resposta.
func (c *Client) Send(cmd Command) (Reply, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return Reply{}, ErrNotConnected
	}
	req := Request{ID: uuid.NewString(), Command: string(cmd)}
	if err := c.conn.WriteJSON(req); err != nil {
		c.dropLocked()
		return Reply{}, fmt.Errorf("enviando %s: %w", cmd, err)
	}

	var reply Reply
	if err := c.conn.ReadJSON(&reply); err != nil {
		c.dropLocked()
		return Reply{}, fmt.Errorf("lendo resposta de %s: %w", cmd, err)
	}
	if reply.ID != req.ID {
		return reply, fmt.Errorf("resposta fora de ordem: esperado %s, recebido %s", req.ID, reply.ID)
	}
	if !reply.OK {
		return reply, fmt.Errorf("ponte recusou %s: %s", cmd, reply.Error)
	}
	return reply, nil
}

// Close encerra a conexão de forma limpa.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return nil
	}
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = c.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
	err := c.conn.Close()
	c.conn = nil
	return err
}

func (c *Client) dropLocked() {
	c.conn.Close()
	c.conn = nil
}
