package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testTable() *Table {
	t := NewTable([]string{"ID_ITEM", "ACTIVIDAD", "FECHA", "VALOR_TOTAL"})
	t.AppendRow([]string{"1.01", "Limpieza de cubiertas", "2025-11-26", "60000"})
	t.AppendRow([]string{"1.21", "Llenado de tanques", "2025-11-27", "45000"})
	t.AppendRow([]string{"2.03", "Sellado de juntas", "2025-11-28", "120000"})
	return t
}

func TestTable_CellIsCaseInsensitive(t *testing.T) {
	tab := testTable()
	assert.Equal(t, "Limpieza de cubiertas", tab.Cell(0, "actividad"))
	assert.Equal(t, "Limpieza de cubiertas", tab.Cell(0, " ACTIVIDAD "))
	assert.Equal(t, "", tab.Cell(0, "NO_EXISTE"))
	assert.Equal(t, "", tab.Cell(99, "ACTIVIDAD"))
}

func TestTable_AppendRowPadsShortRows(t *testing.T) {
	tab := NewTable([]string{"A", "B", "C"})
	tab.AppendRow([]string{"1"})
	tab.AppendRow([]string{"1", "2", "3", "4"})
	assert.Equal(t, "", tab.Cell(0, "C"))
	assert.Equal(t, "3", tab.Cell(1, "C"))
}

func TestTable_ResolvePriorityOrder(t *testing.T) {
	tab := NewTable([]string{"DETALLE", "DESCRIPCION"})
	col, ok := tab.Resolve("ACTIVIDAD", "DESCRIPCION", "DETALLE")
	assert.True(t, ok)
	assert.Equal(t, "DESCRIPCION", col)

	_, ok = tab.Resolve("NADA", "TAMPOCO")
	assert.False(t, ok)
}

func TestTable_ColumnValues(t *testing.T) {
	tab := testTable()
	assert.Equal(t, []string{"60000", "45000", "120000"}, tab.Column("valor_total"))
	assert.Nil(t, tab.Column("missing"))
}

func TestExcludeItems(t *testing.T) {
	tab := testTable()
	out := ExcludeItems(tab, "ID_ITEM", []string{"1.21"})
	assert.Equal(t, 2, out.Len())
	for i := 0; i < out.Len(); i++ {
		assert.NotEqual(t, "1.21", out.Cell(i, "ID_ITEM"))
	}
}

func TestExcludeItems_NoColumnLeavesTableUnchanged(t *testing.T) {
	tab := testTable()
	assert.Equal(t, tab.Len(), ExcludeItems(tab, "", []string{"1.21"}).Len())
	assert.Equal(t, tab.Len(), ExcludeItems(tab, "MISSING", []string{"1.21"}).Len())
}

func TestExcludeItems_TrimsCodes(t *testing.T) {
	tab := NewTable([]string{"ID_ITEM"})
	tab.AppendRow([]string{" 1.21 "})
	tab.AppendRow([]string{"1.22"})
	out := ExcludeItems(tab, "ID_ITEM", []string{"1.21"})
	assert.Equal(t, 1, out.Len())
	assert.Equal(t, "1.22", out.Cell(0, "ID_ITEM"))
}
