package catalog

import "strings"

// #region dataset
// Dataset holds the loaded item table in two parallel views: the rows as they
// appear in the source, and a normalized copy used for matching. Row i in one
// view addresses the same logical record as row i in the other. Input row
// order is preserved; no other ordering is guaranteed.
type Dataset struct {
	rows []Record
	norm []Record
}

// NewDataset builds both views from the original-case rows.
func NewDataset(rows []Record) *Dataset {
	ds := &Dataset{rows: rows, norm: make([]Record, len(rows))}
	for i, r := range rows {
		ds.norm[i] = normalizeRecord(r)
	}
	return ds
}

// Len returns the row count. Safe on a nil dataset.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.rows)
}

// Empty reports whether the dataset holds no rows. A nil dataset is empty.
func (d *Dataset) Empty() bool {
	return d.Len() == 0
}

// Rows returns the original-case view.
func (d *Dataset) Rows() []Record {
	if d == nil {
		return nil
	}
	return d.rows
}

// #endregion dataset

// #region normalization

// NormalizeTerm prepares a user-supplied search term for comparison against
// the normalized view: surrounding whitespace stripped, uppercased.
func NormalizeTerm(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// normalizeRecord trims every column and uppercases the search-optimized ones
// (Numero Sencillo, Codigos, Proceso, Maq).
func normalizeRecord(r Record) Record {
	return Record{
		NumeroSencillo: NormalizeTerm(r.NumeroSencillo),
		Codigos:        NormalizeTerm(r.Codigos),
		CodA:           strings.TrimSpace(r.CodA),
		CodB:           strings.TrimSpace(r.CodB),
		Proceso:        NormalizeTerm(r.Proceso),
		Maq:            NormalizeTerm(r.Maq),
		CktGrp:         strings.TrimSpace(r.CktGrp),
		Type:           strings.TrimSpace(r.Type),
		Size:           strings.TrimSpace(r.Size),
		Color:          strings.TrimSpace(r.Color),
		CutLength:      strings.TrimSpace(r.CutLength),
		General:        strings.TrimSpace(r.General),
		Planta:         strings.TrimSpace(r.Planta),
		Qty:            strings.TrimSpace(r.Qty),
	}
}

// #endregion normalization
