package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"github.com/oesand/rawhttp"
	"github.com/oesand/rawhttp/internal/encoding"
	"github.com/oesand/rawhttp/specs"
	"github.com/rs/zerolog"
	"golang.org/x/net/netutil"
	"net"
	"sync"
	"time"
)

const (
	// DefaultReadBufferSize is used when Server.ReadBufferSize is zero.
	DefaultReadBufferSize = 8 << 10 // 8 kb

	// DefaultMaxConns is used when Server.MaxConns is zero.
	DefaultMaxConns = 64
)

// Handler builds the reply for a parsed request.
type Handler func(req *rawhttp.Request) rawhttp.Response

type Server struct {
	// Address to listen on, ":3333" when empty.
	Addr string

	// Handler to invoke
	Handler Handler

	Logger zerolog.Logger

	// MaxConns caps simultaneously served connections.
	// If zero, DefaultMaxConns is used.
	MaxConns int

	// ReadBufferSize is the largest request accepted, head and body.
	// If zero, DefaultReadBufferSize is used.
	ReadBufferSize int

	// ReadTimeout is the maximum duration for reading the request.
	// A zero or negative value means there will be no timeout.
	ReadTimeout time.Duration

	// WriteTimeout is the maximum duration for writing the response.
	// A zero or negative value means there will be no timeout.
	WriteTimeout time.Duration
}

func (server *Server) readBufferSize() int {
	if server.ReadBufferSize > 0 {
		return server.ReadBufferSize
	}
	return DefaultReadBufferSize
}

func (server *Server) maxConns() int {
	if server.MaxConns > 0 {
		return server.MaxConns
	}
	return DefaultMaxConns
}

func (server *Server) applyReadTimeout(conn net.Conn) {
	if server.ReadTimeout > 0 {
		conn.SetReadDeadline(time.Now().Add(server.ReadTimeout))
	}
}

func (server *Server) applyWriteTimeout(conn net.Conn) {
	if server.WriteTimeout > 0 {
		conn.SetWriteDeadline(time.Now().Add(server.WriteTimeout))
	}
}

// ListenAndServe listens on Server.Addr and serves until ctx is cancelled.
func (server *Server) ListenAndServe(ctx context.Context) error {
	addr := server.Addr
	if addr == "" {
		addr = ":3333"
	}
	lst, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return server.Serve(ctx, lst)
}

// Serve accepts connections on listener, one goroutine per connection.
// It returns nil once ctx is cancelled and every connection is finished.
func (server *Server) Serve(ctx context.Context, listener net.Listener) error {
	if server.Handler == nil {
		panic("nil server handler")
	}

	listener = netutil.LimitListener(listener, server.maxConns())
	server.Logger.Info().
		Str("addr", listener.Addr().String()).
		Int("max_conns", server.maxConns()).
		Msg("listening")

	stop := context.AfterFunc(ctx, func() {
		listener.Close()
	})
	defer stop()

	var connTrack sync.WaitGroup
	defer connTrack.Wait()

	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				server.Logger.Info().Msg("server stopped")
				return nil
			}
			return fmt.Errorf("accept: %w", err)
		}

		connTrack.Add(1)
		go func() {
			defer connTrack.Done()
			server.serveConn(conn)
		}()
	}
}

func (server *Server) serveConn(conn net.Conn) {
	defer conn.Close()
	log := server.Logger.With().Str("remote", conn.RemoteAddr().String()).Logger()

	server.applyReadTimeout(conn)
	raw, err := readRequest(bufio.NewReader(conn), server.readBufferSize())

	var resp rawhttp.Response
	switch {
	case errors.Is(err, errRequestTooLarge):
		log.Warn().Int("limit", server.readBufferSize()).Msg("request too large")
		resp = rawhttp.Content("request too large", specs.ContentTypePlain).
			Status(specs.StatusBadRequest)
	case err != nil:
		log.Warn().Err(err).Msg("read request")
		return
	default:
		resp = server.respond(raw, log)
	}

	server.applyWriteTimeout(conn)
	if _, err = resp.WriteTo(conn); err != nil {
		log.Warn().Err(err).Msg("write response")
	}
}

func (server *Server) respond(raw rawRequest, log zerolog.Logger) rawhttp.Response {
	req, err := rawhttp.ParseRequest(raw.Text)
	if err != nil {
		log.Debug().Err(err).Msg("rejected request")
		return errorResponse(err)
	}

	// The parsed body has CRLF pairs removed, decode the framed bytes instead.
	if coding := req.Header("Content-Encoding"); coding != "" {
		body, err := encoding.Decode(coding, raw.Body)
		if err != nil {
			log.Debug().Err(err).Str("encoding", coding).Msg("undecodable body")
			return rawhttp.Content("unsupported content encoding", specs.ContentTypePlain).
				Status(specs.StatusBadRequest)
		}
		req.Body = body
	}

	resp := server.Handler(req)
	log.Info().
		Str("method", req.Method.String()).
		Str("path", req.Path.Uri).
		Uint16("status", resp.StatusCode().Code()).
		Msg("served")
	return resp
}
