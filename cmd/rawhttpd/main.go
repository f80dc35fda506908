package main

import (
	"context"
	"flag"
	"github.com/rs/zerolog"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	addr := flag.String("addr", ":3333", "address to listen on")
	maxConns := flag.Int("max-conns", DefaultMaxConns, "maximum simultaneous connections")
	bufferSize := flag.Int("buffer", DefaultReadBufferSize, "maximum request size in bytes")
	timeout := flag.Duration("timeout", 10*time.Second, "read and write timeout")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	server := &Server{
		Addr:           *addr,
		Handler:        route,
		Logger:         logger,
		MaxConns:       *maxConns,
		ReadBufferSize: *bufferSize,
		ReadTimeout:    *timeout,
		WriteTimeout:   *timeout,
	}
	if err := server.ListenAndServe(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server failed")
	}
}
