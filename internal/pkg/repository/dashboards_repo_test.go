package repository

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tuolden/health-dashboard-sub003/internal/app/types"
)

// stubRows feeds pre-built scan values and reports err once they run
// out, the way a result stream broken mid-read does.
type stubRows struct {
	values [][]any
	err    error

	idx int
}

func (r *stubRows) Next() bool {
	if r.idx >= len(r.values) {
		return false
	}
	r.idx++
	return true
}

func (r *stubRows) Scan(dest ...any) error {
	row := r.values[r.idx-1]
	for i, d := range dest {
		reflect.ValueOf(d).Elem().Set(reflect.ValueOf(row[i]))
	}
	return nil
}

func (r *stubRows) Err() error                                   { return r.err }
func (r *stubRows) Close()                                       {}
func (r *stubRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *stubRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *stubRows) Values() ([]any, error)                       { return nil, nil }
func (r *stubRows) RawValues() [][]byte                          { return nil }
func (r *stubRows) Conn() *pgx.Conn                              { return nil }

func TestCollectDashboards(t *testing.T) {
	createdAt := time.Date(2026, time.March, 2, 10, 30, 0, 0, time.UTC)

	rowValues := func(id int64, name string) []any {
		return []any{id, name, "alice", "last_month", createdAt, createdAt}
	}
	dashboard := func(id int64, name string) types.Dashboard {
		return types.Dashboard{
			ID:        id,
			Name:      name,
			UserID:    "alice",
			TimeRange: "last_month",
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		}
	}

	tests := []struct {
		name string

		rows    *stubRows
		want    types.Dashboards
		wantErr string
	}{
		{
			name: "ok",
			rows: &stubRows{values: [][]any{
				rowValues(1, "heart"),
				rowValues(2, "sleep"),
			}},
			want: types.Dashboards{
				dashboard(1, "heart"),
				dashboard(2, "sleep"),
			},
		},
		{
			name: "ok_empty",
			rows: &stubRows{},
			want: types.Dashboards{},
		},
		{
			name: "err_broken_stream",
			rows: &stubRows{
				values: [][]any{rowValues(1, "heart")},
				err:    errors.New("conn closed"),
			},
			wantErr: "failed to read rows: conn closed",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := collectDashboards(tt.rows)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
