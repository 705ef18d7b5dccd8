package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/andreasstove999/bar-ordering/internal/board"
	"github.com/andreasstove999/bar-ordering/internal/client"
	"github.com/andreasstove999/bar-ordering/internal/config"
	"github.com/andreasstove999/bar-ordering/internal/order"
)

const usage = "commands: start|ready|serve|archive <id>, refresh, quit"

func main() {
	cfg := config.Load()
	logger := log.New(os.Stderr, "[board] ", log.LstdFlags|log.Lshortfile)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	api, err := client.New(cfg.OrderAPIURL, &http.Client{Timeout: cfg.RequestTimeout})
	if err != nil {
		logger.Fatalf("order api: %v", err)
	}

	out := os.Stdout
	b := board.New(api,
		board.WithInterval(cfg.PollInterval),
		board.WithLogger(logger),
		board.WithOnUpdate(func(v board.View) { draw(out, v) }),
	)

	go func() {
		if err := b.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Printf("poller stopped: %v", err)
		}
	}()

	lines := make(chan string)
	go readLines(os.Stdin, lines)

	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-lines:
			if !ok {
				return
			}
			if quit := handle(ctx, b, out, line); quit {
				return
			}
		}
	}
}

func readLines(r io.Reader, out chan<- string) {
	defer close(out)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		out <- sc.Text()
	}
}

var actions = map[string]order.Status{
	"start":   order.StatusStarted,
	"ready":   order.StatusReady,
	"serve":   order.StatusServed,
	"archive": order.StatusArchived,
}

func handle(ctx context.Context, b *board.Board, out io.Writer, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	switch cmd := strings.ToLower(fields[0]); cmd {
	case "quit", "exit", "q":
		return true
	case "refresh", "r":
		_ = b.Refresh(ctx)
	default:
		status, ok := actions[cmd]
		if !ok || len(fields) != 2 {
			fmt.Fprintln(out, usage)
			return false
		}
		id, err := b.Resolve(fields[1])
		if err != nil {
			fmt.Fprintln(out, err)
			return false
		}
		if err := b.Transition(ctx, id, status); err != nil {
			fmt.Fprintf(out, "%s %s: %v\n", cmd, board.ShortID(id), err)
		}
	}
	return false
}

func draw(out io.Writer, v board.View) {
	fmt.Fprint(out, "\033[H\033[2J")
	_ = board.Render(out, v)
	fmt.Fprintln(out)
	fmt.Fprintln(out, usage)
}
