package order

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/andreasstove999/bar-ordering/internal/menu"
)

var (
	ErrNoLines     = errors.New("no lines")
	ErrInvalidLine = errors.New("invalid line")
)

// EventPublisher announces committed changes to other systems.
type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, o *Order) error
	PublishStatusChanged(ctx context.Context, o *Order, from Status) error
}

// Service applies the business rules around order submission and status
// changes on top of the Repository.
type Service struct {
	repo      Repository
	publisher EventPublisher
	logger    *log.Logger
}

func NewService(repo Repository, publisher EventPublisher, logger *log.Logger) *Service {
	return &Service{repo: repo, publisher: publisher, logger: logger}
}

// Place validates a submission and stores it as a NEW order.
func (s *Service) Place(ctx context.Context, req PlaceRequest) (*Order, error) {
	if len(req.Lines) == 0 {
		return nil, ErrNoLines
	}

	o := &Order{
		Status:    StatusNew,
		Table:     strings.TrimSpace(req.Table),
		OrderNote: strings.TrimSpace(req.OrderNote),
		Lines:     make([]Line, 0, len(req.Lines)),
	}

	for i, l := range req.Lines {
		line, err := sanitizeLine(l)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
		o.Lines = append(o.Lines, line)
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishOrderPlaced(ctx, o); err != nil {
			s.logger.Printf("publish order placed %s: %v", o.ID, err)
		}
	}

	s.logger.Printf("placed order %s (table %q, %d lines)", o.ID, o.Table, len(o.Lines))
	return o, nil
}

// sanitizeLine enforces the per-line rules. Comments are dropped for
// categories that do not take them, whatever the client sent.
func sanitizeLine(l Line) (Line, error) {
	l.ProductID = strings.TrimSpace(l.ProductID)
	if l.ProductID == "" {
		return Line{}, fmt.Errorf("%w: missing id", ErrInvalidLine)
	}
	if !l.Category.Valid() {
		return Line{}, fmt.Errorf("%w: unknown category %q", ErrInvalidLine, l.Category)
	}
	if l.Quantity <= 0 {
		return Line{}, fmt.Errorf("%w: qty must be positive", ErrInvalidLine)
	}
	if l.Price < 0 {
		return Line{}, fmt.Errorf("%w: negative price", ErrInvalidLine)
	}
	// Prices are stored with two decimals.
	l.Price = decimal.NewFromFloat(l.Price).Round(2).InexactFloat64()
	if l.Name == "" {
		if item, ok := menu.Lookup(l.ProductID); ok {
			l.Name = item.Name
		}
	}

	if l.Category.AllowsComment() {
		l.Comment = strings.TrimSpace(l.Comment)
	} else {
		l.Comment = ""
	}
	return l, nil
}

func (s *Service) List(ctx context.Context) ([]Order, error) {
	return s.repo.List(ctx)
}

// UpdateStatus moves an order along the lifecycle. The repository checks
// the edge against the stored status under a row lock.
func (s *Service) UpdateStatus(ctx context.Context, id string, to Status) (*Order, error) {
	if !to.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, to)
	}

	o, from, err := s.repo.UpdateStatus(ctx, id, to)
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		if err := s.publisher.PublishStatusChanged(ctx, o, from); err != nil {
			s.logger.Printf("publish status changed %s: %v", o.ID, err)
		}
	}

	s.logger.Printf("order %s: %s -> %s", o.ID, from, o.Status)
	return o, nil
}
