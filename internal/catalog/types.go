package catalog

// #region columns
// Column headers as they appear in the source workbook and the items table.
const (
	ColNumeroSencillo = "Numero Sencillo"
	ColCodigos        = "Codigos"
	ColCodA           = "Cod A"
	ColCodB           = "Cod B"
	ColProceso        = "Proceso"
	ColMaq            = "Maq"
	ColCktGrp         = "Ckt Grp"
	ColType           = "Type"
	ColSize           = "Size"
	ColColor          = "Color"
	ColCutLength      = "Cut Length"
	ColGeneral        = "General"
	ColPlanta         = "Planta"
	ColQty            = "Qty"
)

// RequiredColumns must all be present in an imported workbook.
var RequiredColumns = []string{ColNumeroSencillo, ColCodigos, ColProceso}

// KnownColumns is the full set of columns the loader recognizes. Anything
// missing from the source loads as an empty string.
var KnownColumns = []string{
	ColNumeroSencillo, ColCodigos, ColCodA, ColCodB, ColProceso, ColMaq,
	ColCktGrp, ColType, ColSize, ColColor, ColCutLength, ColGeneral,
	ColPlanta, ColQty,
}

// SearchColumns are normalized to uppercase for case-insensitive matching.
var SearchColumns = []string{ColNumeroSencillo, ColCodigos, ColProceso, ColMaq}

// #endregion columns

// #region business-rules
// SpecialProcesses are the processes subject to the machine-exclusion rule.
var SpecialProcesses = []string{"TW", "BR"}

// ExcludedMachine is filtered out of lookup results for special processes.
const ExcludedMachine = "TW01"

// #endregion business-rules

// #region record
// Record is one row of the item dataset. All attributes are text; Qty is
// carried verbatim from the source.
type Record struct {
	NumeroSencillo string
	Codigos        string
	CodA           string
	CodB           string
	Proceso        string
	Maq            string
	CktGrp         string
	Type           string
	Size           string
	Color          string
	CutLength      string
	General        string
	Planta         string
	Qty            string
}

// #endregion record

// #region schema-error
// SchemaError reports mandatory columns missing from a source dataset.
type SchemaError struct {
	Source  string
	Missing []string
}

func (e *SchemaError) Error() string {
	return "dataset " + e.Source + " is missing required columns: " + joinColumns(e.Missing)
}

func joinColumns(cols []string) string {
	out := ""
	for i, c := range cols {
		if i > 0 {
			out += ", "
		}
		out += "'" + c + "'"
	}
	return out
}

// #endregion schema-error
