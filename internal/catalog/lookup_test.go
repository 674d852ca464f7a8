package catalog

import (
	"math/rand"
	"testing"
)

func sampleRows() []Record {
	return []Record{
		{NumeroSencillo: "A1", Codigos: "G1", CodA: "CA1", CodB: "CB1", Proceso: "P1", Maq: "M1", Planta: "PL1"},
		{NumeroSencillo: "A2", Codigos: "G1", Proceso: "P1", Maq: "M2"},
		{NumeroSencillo: "A3", Codigos: "G2", Proceso: "P1", Maq: "M3"},
		{NumeroSencillo: "T1", Codigos: "GT1", Proceso: "TW", Maq: "TW01"},
		{NumeroSencillo: "T1", Codigos: "GT1", Proceso: "TW", Maq: "TW02"},
		{NumeroSencillo: "B1", Codigos: "GB1", Proceso: "BR", Maq: "TW01"},
	}
}

func seededEngine(t *testing.T, rows []Record, seed int64) *Engine {
	t.Helper()
	return NewEngine(NewDataset(rows), rand.New(rand.NewSource(seed)))
}

func TestFindDirectCaseAndWhitespaceInsensitive(t *testing.T) {
	e := seededEngine(t, sampleRows(), 1)

	for _, input := range []string{"a1", "A1", " a1 ", "\tA1\n"} {
		got := e.FindDirect(input)
		if len(got) != 1 {
			t.Fatalf("FindDirect(%q): got %d rows, want 1", input, len(got))
		}
		if got[0].NumeroSencillo != "A1" {
			t.Fatalf("FindDirect(%q): got %q", input, got[0].NumeroSencillo)
		}
	}
}

func TestFindDirectByCodigos(t *testing.T) {
	e := seededEngine(t, sampleRows(), 1)

	got := e.FindDirect("g1")
	if len(got) != 2 {
		t.Fatalf("expected 2 rows sharing Codigos G1, got %d", len(got))
	}
}

func TestFindDirectExclusionRule(t *testing.T) {
	e := seededEngine(t, sampleRows(), 1)

	// T1 has two rows in special process TW; the TW01 row must never surface.
	got := e.FindDirect("T1")
	if len(got) != 1 {
		t.Fatalf("expected 1 surviving row, got %d", len(got))
	}
	if got[0].Maq == ExcludedMachine {
		t.Fatalf("excluded machine row returned: %+v", got[0])
	}

	// B1's only row is on the excluded machine inside special process BR.
	if got := e.FindDirect("B1"); got != nil {
		t.Fatalf("expected no rows for fully excluded code, got %d", len(got))
	}
}

func TestFindDirectMiss(t *testing.T) {
	e := seededEngine(t, sampleRows(), 1)
	if got := e.FindDirect("ZZZ"); got != nil {
		t.Fatalf("expected nil for unknown code, got %v", got)
	}
}

func TestFindProcessByProcessCode(t *testing.T) {
	e := seededEngine(t, sampleRows(), 42)

	proc, rep, group := e.FindProcess("p1")
	if proc != "P1" {
		t.Fatalf("process: got %q, want P1", proc)
	}
	switch rep {
	case "A1", "A2", "A3":
	default:
		t.Fatalf("representative %q not among process members", rep)
	}
	for _, r := range group {
		if r.NumeroSencillo != rep {
			t.Fatalf("group row %q does not match representative %q", r.NumeroSencillo, rep)
		}
	}
}

func TestFindProcessByProductCode(t *testing.T) {
	e := seededEngine(t, sampleRows(), 7)

	proc, rep, group := e.FindProcess("G2")
	if proc != "P1" {
		t.Fatalf("process resolved from product code: got %q, want P1", proc)
	}
	if rep == "" || len(group) == 0 {
		t.Fatalf("expected representative and group, got %q / %d rows", rep, len(group))
	}
}

func TestFindProcessSeededDeterminism(t *testing.T) {
	rows := sampleRows()

	_, first, _ := seededEngine(t, rows, 99).FindProcess("P1")
	for i := 0; i < 5; i++ {
		_, rep, _ := seededEngine(t, rows, 99).FindProcess("P1")
		if rep != first {
			t.Fatalf("same seed picked different representatives: %q vs %q", rep, first)
		}
	}
}

func TestFindProcessAllExcluded(t *testing.T) {
	rows := []Record{
		{NumeroSencillo: "B1", Codigos: "GB1", Proceso: "BR", Maq: "TW01"},
	}
	e := seededEngine(t, rows, 1)

	proc, rep, group := e.FindProcess("BR")
	if proc != "" || rep != "" || group != nil {
		t.Fatalf("expected zero results for fully excluded process, got %q %q %v", proc, rep, group)
	}
}

func TestFindProcessMiss(t *testing.T) {
	e := seededEngine(t, sampleRows(), 1)
	if proc, rep, group := e.FindProcess("NOPE"); proc != "" || rep != "" || group != nil {
		t.Fatalf("expected miss, got %q %q %v", proc, rep, group)
	}
}

func TestFindInProcess(t *testing.T) {
	e := seededEngine(t, sampleRows(), 1)
	group := []Record{
		{NumeroSencillo: "A1", Codigos: "G1"},
		{NumeroSencillo: "A1", Codigos: "G2"},
	}

	rec, ok := e.FindInProcess(group, " g2 ")
	if !ok {
		t.Fatal("expected match inside group")
	}
	if rec.Codigos != "G2" {
		t.Fatalf("got %q, want G2", rec.Codigos)
	}

	if _, ok := e.FindInProcess(group, "G9"); ok {
		t.Fatal("expected miss for code outside the group")
	}
}

func TestEmptyDatasetIsValidEmptyResultState(t *testing.T) {
	e := NewEngine(nil, rand.New(rand.NewSource(1)))

	if got := e.FindDirect("A1"); got != nil {
		t.Fatalf("FindDirect on nil dataset: got %v", got)
	}
	if proc, rep, group := e.FindProcess("P1"); proc != "" || rep != "" || group != nil {
		t.Fatal("FindProcess on nil dataset should return zero values")
	}
	if _, ok := e.FindInProcess(nil, "A1"); ok {
		t.Fatal("FindInProcess on nil group should miss")
	}
	if e.Loaded() {
		t.Fatal("nil dataset must not report loaded")
	}
}

func TestDatasetViewsAligned(t *testing.T) {
	rows := []Record{
		{NumeroSencillo: " a1 ", Codigos: "g1", Proceso: " p1", Maq: "m1 ", Color: " rojo "},
	}
	ds := NewDataset(rows)

	if ds.Len() != 1 {
		t.Fatalf("Len: got %d", ds.Len())
	}
	n := ds.norm[0]
	if n.NumeroSencillo != "A1" || n.Codigos != "G1" || n.Proceso != "P1" || n.Maq != "M1" {
		t.Fatalf("search columns not upper-trimmed: %+v", n)
	}
	if n.Color != "rojo" {
		t.Fatalf("non-search column should be trimmed only, got %q", n.Color)
	}
	if ds.Rows()[0].NumeroSencillo != " a1 " {
		t.Fatal("original view must keep source casing and spacing")
	}
}
