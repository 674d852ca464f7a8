package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// cfgFile is the path to the YAML configuration, overridable per invocation.
var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "asistente",
	Short: "Asistente de reposición y control de personal",
	Long: `Herramientas de piso para reposición de material y control de personal.

El subcomando 'chat' inicia el asistente conversacional de reposiciones sobre
la tabla de ítems respaldada en SQLite; 'cargar' importa un Excel a esa tabla;
'headcount' lleva el conteo de personal escaneado contra la programación.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"asistente.yaml",
		"ruta del archivo de configuración",
	)
}
