package report

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"reposicion-assistant/internal/catalog"
	"reposicion-assistant/internal/dialogue"
)

var buildTime = time.Date(2026, 8, 28, 14, 30, 0, 0, time.UTC)

func TestBuildDirectSingleRow(t *testing.T) {
	item := catalog.Record{NumeroSencillo: "A1", Codigos: "G1", Proceso: "P1", Planta: "PL1"}
	completed := []dialogue.CompletedReposition{
		{Type: dialogue.TypeDirect, CodeSearched: "A1", FoundItem: &item, Quantity: 5},
	}

	r := Build(completed, buildTime)
	if len(r.Rows) != 1 {
		t.Fatalf("rows: got %d, want 1", len(r.Rows))
	}
	row := r.Rows[0]
	if row.Cantidad != 5 || row.Grupo != "NO" {
		t.Fatalf("unexpected row: %+v", row)
	}
	if row.NumeroParte != "A1" || row.Planta != "PL1" {
		t.Fatalf("unexpected row fields: %+v", row)
	}
	// Absent optional columns render as N/A.
	if row.CircuitoA != "N/A" || row.CircuitoB != "N/A" {
		t.Fatalf("empty circuits should render N/A: %+v", row)
	}
}

func TestBuildFullGroupExpandsDistinctCodigos(t *testing.T) {
	group := []catalog.Record{
		{NumeroSencillo: "X", Codigos: "G1", Proceso: "P1", CodA: "first-G1"},
		{NumeroSencillo: "X", Codigos: "G1", Proceso: "P1", CodA: "second-G1"},
		{NumeroSencillo: "X", Codigos: "G2", Proceso: "P1"},
		{NumeroSencillo: "X", Codigos: "G1", Proceso: "P1", CodA: "third-G1"},
	}
	completed := []dialogue.CompletedReposition{
		{
			Type: dialogue.TypeProcess, Scope: dialogue.ScopeFullGroup,
			CodeSearched: "P1", ProcessCode: "P1", Representative: "X",
			Group: group, Quantity: 7,
		},
	}

	r := Build(completed, buildTime)
	if len(r.Rows) != 2 {
		t.Fatalf("rows: got %d, want 2 (one per distinct Codigos)", len(r.Rows))
	}
	for _, row := range r.Rows {
		if row.Cantidad != 7 || row.Grupo != "SI" {
			t.Fatalf("unexpected group row: %+v", row)
		}
	}
	// First row per distinct value is the one kept.
	if r.Rows[0].CodigoGeneral != "G1" || r.Rows[0].CircuitoA != "first-G1" {
		t.Fatalf("expected first G1 row, got %+v", r.Rows[0])
	}
	if r.Rows[1].CodigoGeneral != "G2" {
		t.Fatalf("expected G2 second, got %+v", r.Rows[1])
	}
}

func TestBuildSingleCircuit(t *testing.T) {
	item := catalog.Record{NumeroSencillo: "X", Codigos: "G2", Proceso: "P1"}
	completed := []dialogue.CompletedReposition{
		{
			Type: dialogue.TypeProcess, Scope: dialogue.ScopeSingleCircuit,
			ProcessCode: "P1", Representative: "X", FoundItem: &item, Quantity: 3,
		},
	}

	r := Build(completed, buildTime)
	if len(r.Rows) != 1 {
		t.Fatalf("rows: got %d, want 1", len(r.Rows))
	}
	if r.Rows[0].Grupo != "NO" {
		t.Fatalf("single circuit must not carry the group flag: %+v", r.Rows[0])
	}
}

func TestBuildNarrative(t *testing.T) {
	item := catalog.Record{NumeroSencillo: "A1", Codigos: "G1", Proceso: "P1"}
	completed := []dialogue.CompletedReposition{
		{Type: dialogue.TypeDirect, CodeSearched: "A1", FoundItem: &item, Quantity: 2},
		{
			Type: dialogue.TypeProcess, Scope: dialogue.ScopeFullGroup,
			CodeSearched: "P1", ProcessCode: "P1", Representative: "A1",
			Group: []catalog.Record{item}, Quantity: 9,
		},
	}

	r := Build(completed, buildTime)
	joined := strings.Join(r.Narrative, "\n")

	for _, want := range []string{
		"REPOSICIÓN #1", "Tipo de Reposición: DIRECTO",
		"REPOSICIÓN #2", "Tipo de Reposición: PROCESO",
		"Proceso Identificado en BD: P1",
		"Numero Sencillo Representante: A1",
		"Alcance: Grupo Completo",
		"Cantidad (por cada código general del grupo): 9 piezas",
	} {
		if !strings.Contains(joined, want) {
			t.Fatalf("narrative missing %q:\n%s", want, joined)
		}
	}
	if r.ID == "" {
		t.Fatal("report should carry an id")
	}
}

func TestBuildEmptySession(t *testing.T) {
	r := Build(nil, buildTime)
	if len(r.Rows) != 0 {
		t.Fatalf("empty session produced rows: %+v", r.Rows)
	}
	if !strings.Contains(strings.Join(r.Narrative, "\n"), "No hay reposiciones registradas") {
		t.Fatal("empty session narrative missing")
	}
}

func TestFilenameStamp(t *testing.T) {
	r := Report{GeneratedAt: buildTime}
	if got := r.Filename(); got != "reposicion_20260828_143000.xlsx" {
		t.Fatalf("filename: %q", got)
	}
}

func TestWriteWorkbook(t *testing.T) {
	item := catalog.Record{NumeroSencillo: "A1", Codigos: "G1", Proceso: "P1", Planta: "PL1"}
	r := Build([]dialogue.CompletedReposition{
		{Type: dialogue.TypeDirect, CodeSearched: "A1", FoundItem: &item, Quantity: 5},
	}, buildTime)

	dir := t.TempDir()
	path, err := WriteWorkbook(r, dir)
	if err != nil {
		t.Fatalf("WriteWorkbook: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Fatalf("report written outside dir: %s", path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}

	var foundHeader, foundRow bool
	for _, row := range rows {
		if len(row) > 0 && row[0] == "NUMERO_DE_PARTE" {
			foundHeader = true
		}
		if len(row) >= 6 && row[0] == "A1" && row[5] == "5" {
			foundRow = true
		}
	}
	if !foundHeader || !foundRow {
		t.Fatalf("workbook missing header/data (header=%v row=%v)", foundHeader, foundRow)
	}
}

func TestRenderContainsTable(t *testing.T) {
	item := catalog.Record{NumeroSencillo: "A1", Codigos: "G1", Proceso: "P1"}
	r := Build([]dialogue.CompletedReposition{
		{Type: dialogue.TypeDirect, CodeSearched: "A1", FoundItem: &item, Quantity: 5},
	}, buildTime)

	out := Render(r)
	if !strings.Contains(out, "NUMERO_DE_PARTE") || !strings.Contains(out, "A1") {
		t.Fatalf("render missing table:\n%s", out)
	}
}
