package sql

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/syssam/dialect"
	"github.com/syssam/dialect/schema"
)

// Snapshot drains the provider's catalog iterators into a fully-resolved
// table list: every table in the schema with its column definitions, in
// catalog order. It consumes the given connection sequentially, because
// an iterator owns the connection's result cursor.
func Snapshot(ctx context.Context, p Provider, conn dialect.ExecQuerier, schemaName string) ([]schema.Table, error) {
	tables, err := tableNames(ctx, p, conn, schemaName)
	if err != nil {
		return nil, err
	}
	for i := range tables {
		if err := fillColumns(ctx, p, conn, &tables[i]); err != nil {
			return nil, err
		}
	}
	return tables, nil
}

// SnapshotN is the concurrent variant of Snapshot for callers that hold
// a DSN rather than a connection. Each worker opens its own connection
// through the provider, so no cursor is ever shared between goroutines.
func SnapshotN(ctx context.Context, p Provider, source, schemaName string, workers int) ([]schema.Table, error) {
	if workers < 1 {
		workers = 1
	}
	drv, err := p.CreateConnection(source)
	if err != nil {
		return nil, err
	}
	defer drv.Close()
	tables, err := tableNames(ctx, p, drv, schemaName)
	if err != nil {
		return nil, err
	}
	if workers > len(tables) {
		workers = len(tables)
	}
	g, ctx := errgroup.WithContext(ctx)
	next := make(chan int)
	g.Go(func() error {
		defer close(next)
		for i := range tables {
			select {
			case next <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			conn, err := p.CreateConnection(source)
			if err != nil {
				return err
			}
			defer conn.Close()
			for i := range next {
				if err := fillColumns(ctx, p, conn, &tables[i]); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return tables, nil
}

// tableNames drains a Tables iterator, sorted for deterministic output.
func tableNames(ctx context.Context, p Provider, conn dialect.ExecQuerier, schemaName string) ([]schema.Table, error) {
	it, err := p.Tables(ctx, conn, schemaName)
	if err != nil {
		return nil, err
	}
	defer it.Close()
	var tables []schema.Table
	for it.Next() {
		tables = append(tables, it.Table())
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	sort.Slice(tables, func(i, j int) bool { return tables[i].Name < tables[j].Name })
	return tables, nil
}

// fillColumns drains a Columns iterator into the table definition.
func fillColumns(ctx context.Context, p Provider, conn dialect.ExecQuerier, t *schema.Table) error {
	it, err := p.Columns(ctx, conn, t.Name, t.Schema)
	if err != nil {
		return err
	}
	defer it.Close()
	for it.Next() {
		t.Columns = append(t.Columns, it.Column())
	}
	return it.Err()
}
