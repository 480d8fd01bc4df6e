package summary

import (
	"sort"

	"github.com/samber/lo"

	"github.com/aatrey56/fpl-monthly-standings/internal/model"
	"github.com/aatrey56/fpl-monthly-standings/internal/points"
)

// TotalColumn is the header of the derived row-sum column.
const TotalColumn = "Total Points"

type TableRow struct {
	Rank    int                   `json:"rank"`
	Manager model.ManagerIdentity `json:"manager"`
	// Months is aligned with Table.Months; absent months are 0.
	Months []int `json:"months"`
	Total  int   `json:"total"`
}

// Table is managers by months plus a Total column, sorted by Total descending.
type Table struct {
	Months []model.Month `json:"months"`
	Rows   []TableRow    `json:"rows"`
}

// Columns returns the header labels including the Total column.
func (t Table) Columns() []string {
	cols := lo.Map(t.Months, func(m model.Month, _ int) string { return string(m) })
	return append(cols, TotalColumn)
}

// CombinedTable builds the month table. Equal totals keep roster order and
// share a rank.
func CombinedTable(t *points.Tables) Table {
	if t.Empty() {
		return Table{}
	}
	rows := make([]TableRow, 0, len(t.Managers))
	for _, who := range t.Managers {
		months := lo.Map(t.Months, func(m model.Month, _ int) int {
			return t.Monthly.Points(m, who)
		})
		rows = append(rows, TableRow{
			Manager: who,
			Months:  months,
			Total:   lo.Sum(months),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Total > rows[j].Total })
	for i := range rows {
		if i > 0 && rows[i].Total == rows[i-1].Total {
			rows[i].Rank = rows[i-1].Rank
			continue
		}
		rows[i].Rank = i + 1
	}
	return Table{Months: append([]model.Month(nil), t.Months...), Rows: rows}
}
