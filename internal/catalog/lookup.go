package catalog

import (
	"math/rand"
	"time"
)

// #region engine
// Engine answers the three lookup operations over a Dataset. All operations
// are pure reads against the normalized view and return copies of rows from
// the original-case view. An engine over a nil or empty dataset answers every
// query with "not found" rather than failing.
//
// Representative selection in FindProcess is random by contract, not by
// accident: the same input may yield different representatives across runs.
// The random source is injected so callers can fix the seed.
type Engine struct {
	ds  *Dataset
	rng *rand.Rand
}

// NewEngine creates an engine over ds. A nil rng gets a time-seeded source.
func NewEngine(ds *Dataset, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{ds: ds, rng: rng}
}

// SetDataset swaps the backing dataset after a reload. Rows already handed
// out remain valid snapshots of the previous load.
func (e *Engine) SetDataset(ds *Dataset) {
	e.ds = ds
}

// Loaded reports whether the engine has a non-empty dataset.
func (e *Engine) Loaded() bool {
	return !e.ds.Empty()
}

// #endregion engine

// #region find-direct

// FindDirect matches rows whose Numero Sencillo or Codigos equals the code,
// case- and whitespace-insensitively. The machine-exclusion rule is applied
// using the first match's process. Returns all surviving original-case rows,
// or nil when nothing matches.
func (e *Engine) FindDirect(code string) []Record {
	if e.ds.Empty() {
		return nil
	}
	term := NormalizeTerm(code)
	if term == "" {
		return nil
	}

	var idx []int
	for i, n := range e.ds.norm {
		if n.NumeroSencillo == term || n.Codigos == term {
			idx = append(idx, i)
		}
	}
	if len(idx) == 0 {
		return nil
	}

	idx = e.applyExclusion(e.ds.norm[idx[0]].Proceso, idx)
	if len(idx) == 0 {
		return nil
	}

	out := make([]Record, len(idx))
	for i, j := range idx {
		out[i] = e.ds.rows[j]
	}
	return out
}

// #endregion find-direct

// #region find-process

// FindProcess identifies a process from the input, treating it first as a
// Proceso value and then as a Codigos value that resolves to its row's
// process. The whole process is collected, the exclusion rule applied, and a
// representative Numero Sencillo chosen uniformly at random among the
// distinct values that remain. Returns the process code, the representative
// in original case, and the representative's rows — not the full process.
// All three are zero when no process can be identified or every row is
// excluded.
func (e *Engine) FindProcess(input string) (process, representative string, group []Record) {
	if e.ds.Empty() {
		return "", "", nil
	}
	term := NormalizeTerm(input)
	if term == "" {
		return "", "", nil
	}

	proc := ""
	for _, n := range e.ds.norm {
		if n.Proceso == term {
			proc = term
			break
		}
	}
	if proc == "" {
		for _, n := range e.ds.norm {
			if n.Codigos == term {
				proc = n.Proceso
				break
			}
		}
	}
	if proc == "" {
		return "", "", nil
	}

	var idx []int
	for i, n := range e.ds.norm {
		if n.Proceso == proc {
			idx = append(idx, i)
		}
	}
	idx = e.applyExclusion(proc, idx)
	if len(idx) == 0 {
		return "", "", nil
	}

	// Distinct Numero Sencillo values in first-seen order.
	seen := make(map[string]bool)
	var distinct []string
	for _, j := range idx {
		ns := e.ds.norm[j].NumeroSencillo
		if !seen[ns] {
			seen[ns] = true
			distinct = append(distinct, ns)
		}
	}

	chosen := distinct[e.rng.Intn(len(distinct))]

	var rows []Record
	rep := ""
	for _, j := range idx {
		if e.ds.norm[j].NumeroSencillo == chosen {
			if rep == "" {
				rep = e.ds.rows[j].NumeroSencillo
			}
			rows = append(rows, e.ds.rows[j])
		}
	}
	return proc, rep, rows
}

// #endregion find-process

// #region find-in-process

// FindInProcess matches a circuit code against a representative group from a
// prior FindProcess, case-insensitively on Numero Sencillo and Codigos.
// Returns the first match in original case.
func (e *Engine) FindInProcess(group []Record, code string) (Record, bool) {
	term := NormalizeTerm(code)
	if term == "" {
		return Record{}, false
	}
	for _, r := range group {
		if NormalizeTerm(r.NumeroSencillo) == term || NormalizeTerm(r.Codigos) == term {
			return r, true
		}
	}
	return Record{}, false
}

// #endregion find-in-process

// #region exclusion

// applyExclusion drops rows on the excluded machine when the process is one
// of the special processes. Indexes reference the normalized view.
func (e *Engine) applyExclusion(process string, idx []int) []int {
	if !isSpecialProcess(process) {
		return idx
	}
	var kept []int
	for _, j := range idx {
		if e.ds.norm[j].Maq != ExcludedMachine {
			kept = append(kept, j)
		}
	}
	return kept
}

func isSpecialProcess(p string) bool {
	for _, s := range SpecialProcesses {
		if p == s {
			return true
		}
	}
	return false
}

// #endregion exclusion
