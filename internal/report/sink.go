package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Reporte_Reposicion"

// #region workbook-sink

// WriteWorkbook persists the report as an Excel workbook in dir: the
// narrative block first, one blank row, then the flat table. Returns the full
// path of the written file. On error nothing else is touched, so the caller
// can retry with the same report.
func WriteWorkbook(r Report, dir string) (string, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create report dir: %w", err)
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return "", fmt.Errorf("rename sheet: %w", err)
	}

	row := 1
	if err := setCell(f, 1, row, "Detalles de la Sesión de Reposición"); err != nil {
		return "", err
	}
	row++
	for _, line := range r.Narrative {
		if err := setCell(f, 1, row, line); err != nil {
			return "", err
		}
		row++
	}

	row++ // blank separator row
	for col, h := range Header {
		if err := setCell(f, col+1, row, h); err != nil {
			return "", err
		}
	}
	row++

	for _, tr := range r.Rows {
		values := []string{
			tr.NumeroParte, tr.CodigoGeneral, tr.CircuitoA, tr.CircuitoB,
			tr.Proceso, strconv.Itoa(tr.Cantidad), tr.Grupo, tr.Planta,
		}
		for col, v := range values {
			if err := setCell(f, col+1, row, v); err != nil {
				return "", err
			}
		}
		row++
	}

	path := filepath.Join(dir, r.Filename())
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save report %s: %w", path, err)
	}
	return path, nil
}

func setCell(f *excelize.File, col, row int, value string) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}
	if err := f.SetCellValue(sheetName, cell, value); err != nil {
		return fmt.Errorf("set cell %s: %w", cell, err)
	}
	return nil
}

// #endregion workbook-sink

// #region text-sink

// Render returns the console form of the report: narrative, then the table
// with aligned columns.
func Render(r Report) string {
	var b strings.Builder

	for _, line := range r.Narrative {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if len(r.Rows) == 0 {
		return b.String()
	}

	b.WriteByte('\n')

	table := make([][]string, 0, len(r.Rows)+1)
	table = append(table, Header)
	for _, tr := range r.Rows {
		table = append(table, []string{
			tr.NumeroParte, tr.CodigoGeneral, tr.CircuitoA, tr.CircuitoB,
			tr.Proceso, strconv.Itoa(tr.Cantidad), tr.Grupo, tr.Planta,
		})
	}

	widths := make([]int, len(Header))
	for _, row := range table {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	for _, row := range table {
		for i, cell := range row {
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", widths[i]-len(cell)+2))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// #endregion text-sink
