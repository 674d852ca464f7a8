package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"reposicion-assistant/internal/config"
	"reposicion-assistant/internal/store"
)

var (
	inspectLimit   int
	inspectJSON    bool
	inspectSession string
)

var inspeccionarCmd = &cobra.Command{
	Use:   "inspeccionar",
	Short: "Muestra los ítems almacenados o la bitácora de una sesión",
	RunE:  runInspeccionar,
}

func init() {
	inspeccionarCmd.Flags().IntVar(&inspectLimit, "limit", 20, "máximo de filas a mostrar (0 = todas)")
	inspeccionarCmd.Flags().BoolVar(&inspectJSON, "json", false, "salida en JSON")
	inspeccionarCmd.Flags().StringVar(&inspectSession, "session", "", "imprime la bitácora de la sesión dada")
	rootCmd.AddCommand(inspeccionarCmd)
}

func runInspeccionar(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	st, err := store.NewStore(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer st.Close()

	if inspectSession != "" {
		return printTranscript(st, inspectSession)
	}
	return printItems(st)
}

func printTranscript(st *store.Store, sessionID string) error {
	entries, err := st.Transcript(sessionID)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Printf("Sin bitácora para la sesión %s.\n", sessionID)
		return nil
	}
	if inspectJSON {
		return dumpJSON(entries)
	}
	for _, e := range entries {
		fmt.Printf("%s  %3d  %-9s  %-28s  %s\n",
			e.CreatedAt.Format(time.RFC3339), e.Turn, e.Speaker, e.Step, e.Line)
	}
	return nil
}

func printItems(st *store.Store) error {
	ds, err := st.LoadDataset()
	if err != nil {
		return err
	}
	rows := ds.Rows()
	total := len(rows)
	if inspectLimit > 0 && total > inspectLimit {
		rows = rows[:inspectLimit]
	}

	if inspectJSON {
		if err := dumpJSON(rows); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "%d de %d filas\n", len(rows), total)
		return nil
	}

	fmt.Printf("%-18s  %-14s  %-10s  %-8s  %s\n",
		"NUMERO SENCILLO", "CODIGOS", "PROCESO", "MAQ", "PLANTA")
	fmt.Println(strings.Repeat("-", 66))
	for _, r := range rows {
		fmt.Printf("%-18s  %-14s  %-10s  %-8s  %s\n",
			r.NumeroSencillo, r.Codigos, r.Proceso, r.Maq, r.Planta)
	}
	fmt.Printf("\n%d de %d filas\n", len(rows), total)
	return nil
}

func dumpJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
