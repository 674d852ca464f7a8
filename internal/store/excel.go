package store

import (
	"fmt"
	"path/filepath"
	"strings"

	"reposicion-assistant/internal/catalog"

	"github.com/xuri/excelize/v2"
)

// #region read-workbook

// ReadWorkbook loads item records from the first sheet of an Excel workbook.
// The header row is matched against the known column names; the three
// mandatory columns (Numero Sencillo, Codigos, Proceso) must be present or a
// *catalog.SchemaError is returned. Optional columns that are absent load as
// empty strings. Cell values are trimmed; casing is preserved.
func ReadWorkbook(path string) ([]catalog.Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, &catalog.SchemaError{Source: filepath.Base(path), Missing: catalog.RequiredColumns}
	}

	colIndex := headerIndex(rows[0])
	if missing := missingRequired(colIndex); len(missing) > 0 {
		return nil, &catalog.SchemaError{Source: filepath.Base(path), Missing: missing}
	}

	var records []catalog.Record
	for _, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		records = append(records, recordFromRow(row, colIndex))
	}
	return records, nil
}

// #endregion read-workbook

// #region header-mapping

// headerIndex maps known column names to their position in the header row.
func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(catalog.KnownColumns))
	for pos, cell := range header {
		name := strings.TrimSpace(cell)
		for _, known := range catalog.KnownColumns {
			if name == known {
				idx[known] = pos
				break
			}
		}
	}
	return idx
}

func missingRequired(colIndex map[string]int) []string {
	var missing []string
	for _, col := range catalog.RequiredColumns {
		if _, ok := colIndex[col]; !ok {
			missing = append(missing, col)
		}
	}
	return missing
}

// #endregion header-mapping

// #region row-conversion

func recordFromRow(row []string, colIndex map[string]int) catalog.Record {
	cell := func(col string) string {
		pos, ok := colIndex[col]
		if !ok || pos >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[pos])
	}
	return catalog.Record{
		NumeroSencillo: cell(catalog.ColNumeroSencillo),
		Codigos:        cell(catalog.ColCodigos),
		CodA:           cell(catalog.ColCodA),
		CodB:           cell(catalog.ColCodB),
		Proceso:        cell(catalog.ColProceso),
		Maq:            cell(catalog.ColMaq),
		CktGrp:         cell(catalog.ColCktGrp),
		Type:           cell(catalog.ColType),
		Size:           cell(catalog.ColSize),
		Color:          cell(catalog.ColColor),
		CutLength:      cell(catalog.ColCutLength),
		General:        cell(catalog.ColGeneral),
		Planta:         cell(catalog.ColPlanta),
		Qty:            cell(catalog.ColQty),
	}
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// #endregion row-conversion
