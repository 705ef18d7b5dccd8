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
	"text/tabwriter"

	"github.com/andreasstove999/bar-ordering/internal/board"
	"github.com/andreasstove999/bar-ordering/internal/cart"
	"github.com/andreasstove999/bar-ordering/internal/checkout"
	"github.com/andreasstove999/bar-ordering/internal/client"
	"github.com/andreasstove999/bar-ordering/internal/config"
	"github.com/andreasstove999/bar-ordering/internal/menu"
)

const usage = "commands: menu, add <id>, remove <id>, comment <id> <text>, note <text>, cart, checkout [table], quit"

func main() {
	cfg := config.Load()
	logger := log.New(os.Stderr, "[guest] ", log.LstdFlags|log.Lshortfile)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	api, err := client.New(cfg.OrderAPIURL, &http.Client{Timeout: cfg.RequestTimeout})
	if err != nil {
		logger.Fatalf("order api: %v", err)
	}

	store, err := cart.NewFileStore(cfg.CartDir, cart.DefaultKey)
	if err != nil {
		logger.Fatalf("cart store: %v", err)
	}

	s := &session{
		menu:    api,
		cart:    cart.Load(store, logger),
		gateway: checkout.NewGateway(api, logger),
		out:     os.Stdout,
		logger:  logger,
	}
	s.showMenu(ctx)

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
			if quit := s.handle(ctx, line); quit {
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

type menuSource interface {
	Menu(ctx context.Context) ([]menu.Section, error)
}

// session is one guest at one device: the menu they browse and the cart
// they fill.
type session struct {
	menu    menuSource
	cart    *cart.Cart
	gateway *checkout.Gateway
	out     io.Writer
	logger  *log.Logger

	sections []menu.Section
}

func (s *session) handle(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	switch cmd := strings.ToLower(fields[0]); cmd {
	case "quit", "exit", "q":
		return true
	case "menu", "m":
		s.showMenu(ctx)
	case "cart", "c":
		s.showCart()
	case "add", "remove":
		if len(fields) != 2 {
			fmt.Fprintln(s.out, usage)
			return false
		}
		s.change(ctx, cmd, fields[1])
	case "comment":
		if len(fields) < 2 {
			fmt.Fprintln(s.out, usage)
			return false
		}
		text := strings.Join(fields[2:], " ")
		if !s.cart.SetComment(fields[1], text) {
			fmt.Fprintf(s.out, "%s tar inga kommentarer\n", fields[1])
			return false
		}
		s.showCart()
	case "note":
		s.cart.SetNote(strings.Join(fields[1:], " "))
		s.showCart()
	case "checkout":
		s.checkout(ctx, strings.Join(fields[1:], " "))
	default:
		fmt.Fprintln(s.out, usage)
	}
	return false
}

// showMenu fetches the menu from the order service. When the service
// cannot be reached the built-in catalog is shown instead.
func (s *session) showMenu(ctx context.Context) {
	sections, err := s.menu.Menu(ctx)
	if err != nil {
		s.logger.Printf("load menu: %v", err)
		sections = menu.Sections()
	}
	s.sections = sections

	tw := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	for _, sec := range sections {
		fmt.Fprintf(tw, "%s\n", strings.ToUpper(sec.Label))
		for _, item := range sec.Items {
			fmt.Fprintf(tw, "  %s\t%s\t%s kr\t%d i varukorgen\n", item.ID, item.Name, formatPrice(item.Price), s.cart.Qty(item.ID))
		}
	}
	_ = tw.Flush()
	fmt.Fprintln(s.out, usage)
}

func (s *session) lookup(ctx context.Context, id string) (menu.Item, bool) {
	if s.sections == nil {
		s.showMenu(ctx)
	}
	for _, sec := range s.sections {
		for _, item := range sec.Items {
			if item.ID == id {
				return item, true
			}
		}
	}
	return menu.Item{}, false
}

func (s *session) change(ctx context.Context, cmd, id string) {
	if cmd == "remove" {
		s.cart.Remove(id)
		s.showCart()
		return
	}
	item, ok := s.lookup(ctx, id)
	if !ok {
		fmt.Fprintf(s.out, "okänd produkt %q\n", id)
		return
	}
	s.cart.Add(item)
	s.showCart()
}

func (s *session) showCart() {
	snap := s.cart.Snapshot()
	if len(snap.Lines) == 0 {
		fmt.Fprintln(s.out, "Varukorgen är tom.")
		return
	}

	tw := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	for _, l := range snap.Lines {
		fmt.Fprintf(tw, "%d x\t%s\t%s kr\t%s\n", l.Qty, l.Name, formatPrice(l.Price), l.Comment)
	}
	totals := s.cart.Totals()
	fmt.Fprintf(tw, "%d st\tTotalt\t%s kr\t\n", totals.Count, formatPrice(totals.Sum.InexactFloat64()))
	_ = tw.Flush()
	if snap.OrderNote != "" {
		fmt.Fprintf(s.out, "Meddelande: %s\n", snap.OrderNote)
	}
}

// checkout sends the cart. An empty cart sends the guest back to the menu.
func (s *session) checkout(ctx context.Context, table string) {
	if _, err := s.gateway.Enter(s.cart); err != nil {
		fmt.Fprintln(s.out, checkout.Message(err))
		if errors.Is(err, cart.ErrEmptyCart) {
			s.showMenu(ctx)
		}
		return
	}

	s.showCart()
	o, err := s.gateway.Submit(ctx, s.cart, table, nil)
	if err != nil {
		fmt.Fprintln(s.out, checkout.Message(err))
		return
	}
	fmt.Fprintf(s.out, "Tack! Order %s är skickad till baren.\n", board.ShortID(o.ID))
}

func formatPrice(p float64) string {
	if p == float64(int64(p)) {
		return fmt.Sprintf("%d", int64(p))
	}
	return fmt.Sprintf("%.2f", p)
}
