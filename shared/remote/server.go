// Package remote expõe os comandos da interface (concluir, copiar, reiniciar) via WebSocket.
// O servidor apenas enfileira; quem aplica os comandos é o loop principal do app.
package remote

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
)

// Command é um comando da interface sem parâmetros.
type Command string

const (
	CommandComplete Command = "complete"
	CommandCopy     Command = "copy"
	CommandReset    Command = "reset"
)

// ErrQueueFull é retornado quando o loop principal não está drenando a fila.
var ErrQueueFull = errors.New("fila de comandos cheia")

// ParseCommand valida o nome de um comando (sem diferenciar maiúsculas).
func ParseCommand(name string) (Command, error) {
	switch cmd := Command(strings.ToLower(strings.TrimSpace(name))); cmd {
	case CommandComplete, CommandCopy, CommandReset:
		return cmd, nil
	}
	return "", fmt.Errorf("comando desconhecido %q", name)
}

// Request é a mensagem enviada pelo cliente. ID é opcional e volta na resposta.
type Request struct {
	ID      string `json:"id,omitempty"`
	Command string `json:"command"`
}

// Reply é a resposta para cada Request.
type Reply struct {
	ID      string `json:"id,omitempty"`
	OK      bool   `json:"ok"`
	Command string `json:"command,omitempty"`
	Error   string `json:"error,omitempty"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Server recebe comandos por WebSocket e os entrega em ordem de chegada no canal Commands.
type Server struct {
	commands chan Command

	mu       sync.Mutex
	listener net.Listener
	httpSrv  *http.Server
}

// NewServer cria um servidor com fila de tamanho queueSize.
func NewServer(queueSize int) *Server {
	if queueSize <= 0 {
		queueSize = 16
	}
	return &Server{commands: make(chan Command, queueSize)}
}

// Commands retorna o canal de comandos pendentes.
func (s *Server) Commands() <-chan Command {
	return s.commands
}

// Handler retorna o roteador HTTP com o endpoint /ws.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWs)
	return mux
}

// Start abre a porta e atende em background. Erros de porta são retornados imediatamente.
func (s *Server) Start(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("não foi possível abrir %s: %w", addr, err)
	}

	s.mu.Lock()
	s.listener = ln
	s.httpSrv = &http.Server{Handler: s.Handler()}
	srv := s.httpSrv
	s.mu.Unlock()

	log.Printf("[Remote] Ponte de comandos ouvindo em ws://%s/ws", ln.Addr())
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("[Remote] Servidor encerrado com erro: %v", err)
		}
	}()
	return nil
}

// Addr retorna o endereço efetivo (útil com porta 0).
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Close encerra o servidor e todas as conexões.
func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.httpSrv == nil {
		return nil
	}
	err := s.httpSrv.Close()
	s.httpSrv = nil
	s.listener = nil
	return err
}

// Enqueue coloca um comando na fila sem bloquear.
func (s *Server) Enqueue(cmd Command) error {
	select {
	case s.commands <- cmd:
		return nil
	default:
		return ErrQueueFull
	}
}

// serveWs maneja uma conexão: cada mensagem de texto é um Request JSON.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Remote] Erro no upgrade do WebSocket: %v", err)
		return
	}
	defer conn.Close()

	log.Printf("[Remote] Cliente conectado: %s", r.RemoteAddr)
	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("[Remote] Conexão perdida: %v", err)
			}
			return
		}

		reply := s.handleMessage(message)
		if err := conn.WriteJSON(reply); err != nil {
			log.Printf("[Remote] Erro ao responder: %v", err)
			return
		}
	}
}

func (s *Server) handleMessage(message []byte) Reply {
	var req Request
	if err := json.Unmarshal(message, &req); err != nil {
		return Reply{Error: fmt.Sprintf("mensagem inválida: %v", err)}
	}

	cmd, err := ParseCommand(req.Command)
	if err != nil {
		return Reply{ID: req.ID, Command: req.Command, Error: err.Error()}
	}

	if err := s.Enqueue(cmd); err != nil {
		return Reply{ID: req.ID, Command: string(cmd), Error: err.Error()}
	}
	return Reply{ID: req.ID, OK: true, Command: string(cmd)}
}
