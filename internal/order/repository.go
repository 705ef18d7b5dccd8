package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/andreasstove999/bar-ordering/internal/menu"
)

var ErrNotFound = errors.New("order not found")

// DBPool matches the methods from *pgxpool.Pool that we use.
// This allows us to mock the database in tests.
type DBPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

type Repository interface {
	Create(ctx context.Context, o *Order) error
	List(ctx context.Context) ([]Order, error)
	// UpdateStatus returns the updated order and the status it had before.
	UpdateStatus(ctx context.Context, id string, to Status) (*Order, Status, error)
}

type PostgresRepository struct {
	pool DBPool
	now  func() time.Time
}

func NewPostgresRepository(pool DBPool) *PostgresRepository {
	return &PostgresRepository{pool: pool, now: time.Now}
}

const (
	insertOrderSQL = `INSERT INTO orders (id, status, table_label, order_note, created_at)
         VALUES ($1, $2, $3, $4, $5)`

	insertItemSQL = `INSERT INTO order_items (id, order_id, position, product_id, name, category, qty, price, comment)
             VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	listOrdersSQL = `
		SELECT
			o.id::text, o.created_at, o.status, COALESCE(o.table_label, ''), COALESCE(o.order_note, ''),
			oi.product_id, oi.name, oi.category, oi.qty, oi.price::float8, COALESCE(oi.comment, '')
		FROM orders o
		JOIN order_items oi ON oi.order_id = o.id
		ORDER BY o.created_at DESC, o.id, oi.position
	`

	lockStatusSQL = `SELECT status FROM orders WHERE id = $1 FOR UPDATE`

	updateStatusSQL = `UPDATE orders SET status = $2, updated_at = now() WHERE id = $1
         RETURNING id::text, created_at, status, COALESCE(table_label, ''), COALESCE(order_note, '')`

	selectItemsSQL = `SELECT product_id, name, category, qty, price::float8, COALESCE(comment, '')
         FROM order_items WHERE order_id = $1 ORDER BY position`
)

// Create stores the order header and its lines in one transaction. The
// store assigns the identifier and creation time when they are unset.
func (r *PostgresRepository) Create(ctx context.Context, o *Order) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = r.now()
	}
	// TIMESTAMPTZ keeps microseconds.
	o.CreatedAt = o.CreatedAt.UTC().Truncate(time.Microsecond)

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, insertOrderSQL,
		o.ID, string(o.Status), nullable(o.Table), nullable(o.OrderNote), o.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for i, l := range o.Lines {
		_, err = tx.Exec(ctx, insertItemSQL,
			uuid.NewString(), o.ID, i, l.ProductID, l.Name, string(l.Category), l.Quantity, l.Price, nullable(l.Comment),
		)
		if err != nil {
			return fmt.Errorf("insert order_item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// List returns every order, newest first, with its lines in submission order.
func (r *PostgresRepository) List(ctx context.Context) ([]Order, error) {
	rows, err := r.pool.Query(ctx, listOrdersSQL)
	if err != nil {
		return nil, fmt.Errorf("select orders: %w", err)
	}
	defer rows.Close()

	orders := []Order{}
	index := map[string]int{}
	for rows.Next() {
		var (
			o        Order
			l        Line
			status   string
			category string
		)
		if err := rows.Scan(
			&o.ID, &o.CreatedAt, &status, &o.Table, &o.OrderNote,
			&l.ProductID, &l.Name, &category, &l.Quantity, &l.Price, &l.Comment,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		l.Category = menu.Category(category)

		i, ok := index[o.ID]
		if !ok {
			o.Status = Status(status)
			orders = append(orders, o)
			i = len(orders) - 1
			index[o.ID] = i
		}
		orders[i].Lines = append(orders[i].Lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return orders, nil
}

// UpdateStatus locks the order row, checks the lifecycle edge against the
// stored status and writes the new one. Concurrent updates of the same
// order are serialized by the row lock, so the loser sees the winner's
// status and fails the edge check.
func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, to Status) (*Order, Status, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, "", ErrNotFound
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var current string
	if err := tx.QueryRow(ctx, lockStatusSQL, id).Scan(&current); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", ErrNotFound
		}
		return nil, "", fmt.Errorf("select status: %w", err)
	}
	from := Status(current)

	if err := ValidateTransition(from, to); err != nil {
		return nil, from, err
	}

	var (
		o      Order
		status string
	)
	if err := tx.QueryRow(ctx, updateStatusSQL, id, string(to)).
		Scan(&o.ID, &o.CreatedAt, &status, &o.Table, &o.OrderNote); err != nil {
		return nil, from, fmt.Errorf("update status: %w", err)
	}
	o.Status = Status(status)

	lines, err := selectLines(ctx, tx, id)
	if err != nil {
		return nil, from, err
	}
	o.Lines = lines

	if err := tx.Commit(ctx); err != nil {
		return nil, from, fmt.Errorf("commit: %w", err)
	}
	return &o, from, nil
}

func selectLines(ctx context.Context, tx pgx.Tx, orderID string) ([]Line, error) {
	rows, err := tx.Query(ctx, selectItemsSQL, orderID)
	if err != nil {
		return nil, fmt.Errorf("select order_items: %w", err)
	}
	defer rows.Close()

	var lines []Line
	for rows.Next() {
		var (
			l        Line
			category string
		)
		if err := rows.Scan(&l.ProductID, &l.Name, &category, &l.Quantity, &l.Price, &l.Comment); err != nil {
			return nil, fmt.Errorf("scan order_item: %w", err)
		}
		l.Category = menu.Category(category)
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return lines, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
