package ledger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.csv")
	content := "FECHA,ACTIVIDAD,VALOR_TOTAL\n" +
		"2025-11-26,Limpieza de cubiertas,60000\n" +
		"2025-11-30,Sellado de juntas,120000\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	tab, err := LoadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"FECHA", "ACTIVIDAD", "VALOR_TOTAL"}, tab.Columns())
	require.Equal(t, 2, tab.Len())
	assert.Equal(t, "Sellado de juntas", tab.Cell(1, "ACTIVIDAD"))
}

func TestLoadCSV_MissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func writeTestWorkbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]any{
		{"FECHA", "ACTIVIDAD", "VALOR_TOTAL"},
		{"2025-11-26", "Limpieza de cubiertas", "60000"},
		{"2025-11-30", "Inspección hidrosanitaria", "45000"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	_, err := f.NewSheet("LUGARES")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("LUGARES", "A1", &[]any{"LUGAR_EJECUCION"}))
	require.NoError(t, f.SetSheetRow("LUGARES", "A2", &[]any{"Muelle 4"}))

	path := filepath.Join(t.TempDir(), "ledger.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadXLSX(t *testing.T) {
	path := writeTestWorkbook(t)

	tab, err := LoadXLSX(path, "")
	require.NoError(t, err)
	require.Equal(t, 2, tab.Len())
	assert.Equal(t, "Inspección hidrosanitaria", tab.Cell(1, "ACTIVIDAD"))

	lugares, err := LoadXLSX(path, "LUGARES")
	require.NoError(t, err)
	require.Equal(t, 1, lugares.Len())
	assert.Equal(t, "Muelle 4", lugares.Cell(0, "LUGAR_EJECUCION"))
}

func TestSheetNames(t *testing.T) {
	path := writeTestWorkbook(t)
	names, err := SheetNames(path)
	require.NoError(t, err)
	require.Len(t, names, 2)
	assert.Equal(t, "LUGARES", names[1])
}
