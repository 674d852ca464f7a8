package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"reposicion-assistant/internal/catalog"
	"reposicion-assistant/internal/dialogue"
)

// #region types
// Row is one line of the flat report table.
type Row struct {
	NumeroParte   string
	CodigoGeneral string
	CircuitoA     string
	CircuitoB     string
	Proceso       string
	Cantidad      int
	Grupo         string // "SI" | "NO"
	Planta        string
}

// Header columns in table order.
var Header = []string{
	"NUMERO_DE_PARTE", "CODIGO_GENERAL", "CIRCUITO_A", "CIRCUITO_B",
	"PROCESO", "CANTIDAD", "GRUPO", "PLANTA",
}

// Report is the shaped output of one session: a narrative log plus the flat
// row table.
type Report struct {
	ID          string
	GeneratedAt time.Time
	Narrative   []string
	Rows        []Row
}

// #endregion types

// #region build

// Build shapes the accumulated transactions into a report. It is a pure
// function of its inputs: no lookups, no mutation of the snapshots.
//
// Row expansion: a direct transaction and a single-circuit transaction yield
// one row each; a full-group transaction yields one row per distinct Codigos
// value in the representative group (first row per value), flagged GRUPO=SI,
// with the captured quantity repeated on every row.
func Build(completed []dialogue.CompletedReposition, now time.Time) Report {
	rep := Report{
		ID:          uuid.New().String(),
		GeneratedAt: now,
	}

	stamp := now.Format("2006-01-02 15:04:05")
	rep.Narrative = append(rep.Narrative,
		fmt.Sprintf("--- INICIO REPORTE GENERAL DE REPOSICIONES (%s) ---", stamp))

	if len(completed) == 0 {
		rep.Narrative = append(rep.Narrative, "No hay reposiciones registradas en esta sesión.")
		return rep
	}

	for i, c := range completed {
		rep.Narrative = append(rep.Narrative, fmt.Sprintf("--- REPOSICIÓN #%d ---", i+1))
		rep.Narrative = append(rep.Narrative, "Tipo de Reposición: "+upperType(c.Type))
		rep.Narrative = append(rep.Narrative, "Código/Proceso Solicitado: "+orNA(c.CodeSearched))

		if c.Type == dialogue.TypeProcess {
			rep.Narrative = append(rep.Narrative, "Proceso Identificado en BD: "+orNA(c.ProcessCode))
			rep.Narrative = append(rep.Narrative, "Numero Sencillo Representante: "+orNA(c.Representative))
			if c.Scope == dialogue.ScopeFullGroup {
				rep.Narrative = append(rep.Narrative, "Alcance: Grupo Completo")
			}
		}

		switch {
		case c.Type == dialogue.TypeProcess && c.Scope == dialogue.ScopeFullGroup:
			rep.Narrative = append(rep.Narrative,
				fmt.Sprintf("Cantidad (por cada código general del grupo): %d piezas", c.Quantity))
		default:
			rep.Narrative = append(rep.Narrative,
				fmt.Sprintf("Cantidad a Reponer (ítem/circuito): %d piezas", c.Quantity))
		}

		rep.Rows = append(rep.Rows, expandRows(c)...)
		rep.Narrative = append(rep.Narrative, "--- FIN REPOSICIÓN ---")
	}

	rep.Narrative = append(rep.Narrative,
		fmt.Sprintf("--- FIN REPORTE GENERAL (%s) ---", stamp))
	return rep
}

func expandRows(c dialogue.CompletedReposition) []Row {
	if c.Type == dialogue.TypeProcess && c.Scope == dialogue.ScopeFullGroup {
		var rows []Row
		seen := make(map[string]bool)
		for _, r := range c.Group {
			if seen[r.Codigos] {
				continue
			}
			seen[r.Codigos] = true
			rows = append(rows, rowFromRecord(r, c.Quantity, "SI"))
		}
		return rows
	}
	if c.FoundItem == nil {
		return nil
	}
	return []Row{rowFromRecord(*c.FoundItem, c.Quantity, "NO")}
}

func rowFromRecord(r catalog.Record, qty int, group string) Row {
	return Row{
		NumeroParte:   orNA(r.NumeroSencillo),
		CodigoGeneral: orNA(r.Codigos),
		CircuitoA:     orNA(r.CodA),
		CircuitoB:     orNA(r.CodB),
		Proceso:       orNA(r.Proceso),
		Cantidad:      qty,
		Grupo:         group,
		Planta:        orNA(r.Planta),
	}
}

func upperType(t dialogue.RepositionType) string {
	switch t {
	case dialogue.TypeDirect:
		return "DIRECTO"
	case dialogue.TypeProcess:
		return "PROCESO"
	}
	return "N/A"
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// #endregion build

// #region filename

// Filename returns the collision-free output name for this report, stamped
// with the generation time.
func (r Report) Filename() string {
	return "reposicion_" + r.GeneratedAt.Format("20060102_150405") + ".xlsx"
}

// #endregion filename
