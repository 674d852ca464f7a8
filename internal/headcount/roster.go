package headcount

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"reposicion-assistant/internal/catalog"
)

// #region columns
// Roster workbook column headers.
const (
	ColEmpleado     = "Empleado"
	ColNombre       = "Nombre"
	ColLocalidad    = "Localidad"
	ColTurno        = "Turno"
	ColFServicio    = "F Servicio"
	ColDepartamento = "Departamento"
	ColLinea        = "LINEA"
	ColPuesto       = "Puesto"
	ColCategoria    = "Categoria"
	ColPosition     = "POSITION"
	ColFunction     = "FUNCTION"
	ColProceso      = "Proceso"
)

// #endregion columns

// #region employee
// Employee is one roster row. ServiceDate is zero when the cell is empty or
// unparseable; seniority and experience treat that as unknown.
type Employee struct {
	ID          string
	Name        string
	Location    string
	Shift       string
	ServiceDate time.Time
	Department  string
	Line        string
	Puesto      string
	Category    string
	Position    string
	Function    string
	Process     string
}

// #endregion employee

// #region load-roster

// LoadRoster reads the employee roster from the first sheet of an Excel
// workbook. The Empleado column is mandatory; everything else is optional.
func LoadRoster(path string) ([]Employee, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open roster: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("roster %s has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read roster sheet: %w", err)
	}
	if len(rows) == 0 {
		return nil, &catalog.SchemaError{Source: filepath.Base(path), Missing: []string{ColEmpleado}}
	}

	idx := make(map[string]int)
	for pos, cell := range rows[0] {
		idx[strings.TrimSpace(cell)] = pos
	}
	if _, ok := idx[ColEmpleado]; !ok {
		return nil, &catalog.SchemaError{Source: filepath.Base(path), Missing: []string{ColEmpleado}}
	}

	cell := func(row []string, col string) string {
		pos, ok := idx[col]
		if !ok || pos >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[pos])
	}

	var roster []Employee
	for _, row := range rows[1:] {
		id := cell(row, ColEmpleado)
		if id == "" {
			continue
		}
		roster = append(roster, Employee{
			ID:          id,
			Name:        cell(row, ColNombre),
			Location:    cell(row, ColLocalidad),
			Shift:       cell(row, ColTurno),
			ServiceDate: parseServiceDate(cell(row, ColFServicio)),
			Department:  cell(row, ColDepartamento),
			Line:        cell(row, ColLinea),
			Puesto:      cell(row, ColPuesto),
			Category:    cell(row, ColCategoria),
			Position:    cell(row, ColPosition),
			Function:    cell(row, ColFunction),
			Process:     cell(row, ColProceso),
		})
	}
	return roster, nil
}

// serviceDateLayouts covers the formats excelize renders date cells in,
// depending on the cell style of the source workbook.
var serviceDateLayouts = []string{
	"2006-01-02",
	"01-02-06",
	"1/2/06",
	"01/02/2006",
	"2006-01-02 15:04:05",
	"2/1/2006",
}

func parseServiceDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range serviceDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// #endregion load-roster
