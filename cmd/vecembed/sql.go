package main

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/viant/vecembed/engine"
	"github.com/viant/vecembed/vector"
	"go.uber.org/zap"
)

// SQLResponse is the response for the sql command. BLOB cells that decode as
// embeddings are reported as arrays of components.
type SQLResponse struct {
	Columns []string        `json:"columns"`
	Rows    [][]interface{} `json:"rows"`
}

func newSQLCmd(a *app) *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "sql QUERY [ARGS...]",
		Short: "Run a SQL query with the vec_* functions registered",
		Long: `Run a SQL query against the configured database with the vector
functions registered. Extra arguments bind to ? placeholders as text.

Any BLOB cell whose length is a multiple of 4 bytes is shown as the float32
components it encodes, so unrelated BLOBs such as x'00000000' print as [0].
Use --raw to report every BLOB as bytes.

Examples:
  vecembed sql "SELECT vec_cosine(vec_from_json('[1,0]'), vec_from_json('[0,1]'))"
  vecembed sql "SELECT vec_to_json(vec_normalize(vec_from_json(?)))" "[3,4]"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.runSQL(cmd.Context(), args[0], args[1:], !raw)
			if err != nil {
				return err
			}
			if a.humanOutput() {
				w := cmd.OutOrStdout()
				if err := outputHuman(w, "%s\n", strings.Join(resp.Columns, "\t")); err != nil {
					return err
				}
				for _, row := range resp.Rows {
					cells := make([]string, len(row))
					for i, v := range row {
						cells[i] = formatCell(v)
					}
					if err := outputHuman(w, "%s\n", strings.Join(cells, "\t")); err != nil {
						return err
					}
				}
				return nil
			}
			return outputJSON(cmd.OutOrStdout(), resp)
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "Report BLOB cells as bytes instead of decoding embeddings")
	return cmd
}

func (a *app) runSQL(ctx context.Context, query string, params []string, decode bool) (*SQLResponse, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := engine.RegisterVectorFunctions(); err != nil {
		return nil, err
	}
	db, err := engine.Open(a.cfg.DatabasePath)
	if err != nil {
		return nil, withExitCode(ExitConfigError, fmt.Errorf("opening database: %w", err))
	}
	defer db.Close()

	bound := make([]interface{}, len(params))
	for i, p := range params {
		bound[i] = p
	}
	a.logger.Debug("sql query", zap.String("database_path", a.cfg.DatabasePath), zap.String("query", query), zap.Int("params", len(params)))

	rows, err := db.QueryContext(ctx, query, bound...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()
	return collectRows(rows, decode)
}

// collectRows scans every row. When decode is set, BLOB cells go through
// blobCell.
func collectRows(rows *sql.Rows, decode bool) (*SQLResponse, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	resp := &SQLResponse{Columns: cols, Rows: [][]interface{}{}}
	for rows.Next() {
		cells := make([]interface{}, len(cols))
		ptrs := make([]interface{}, len(cols))
		for i := range cells {
			ptrs[i] = &cells[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		for i, v := range cells {
			if b, ok := v.([]byte); ok && decode {
				cells[i] = blobCell(b)
			}
		}
		resp.Rows = append(resp.Rows, cells)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	return resp, nil
}

// blobCell decodes an embedding BLOB into its components and leaves any other
// BLOB as raw bytes.
func blobCell(b []byte) interface{} {
	e, err := vector.DecodeEmbedding(b)
	if err != nil {
		return append([]byte(nil), b...)
	}
	return e.Values()
}

func formatCell(v interface{}) string {
	switch c := v.(type) {
	case nil:
		return "NULL"
	case []float32:
		e, err := vector.New(c)
		if err != nil {
			return fmt.Sprint(c)
		}
		return e.String()
	case []byte:
		return fmt.Sprintf("x'%x'", c)
	}
	return fmt.Sprint(v)
}
