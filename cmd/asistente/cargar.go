package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"reposicion-assistant/internal/catalog"
	"reposicion-assistant/internal/config"
	"reposicion-assistant/internal/logging"
	"reposicion-assistant/internal/store"
)

var cargarCmd = &cobra.Command{
	Use:   "cargar <archivo.xlsx>",
	Short: "Importa un Excel a la tabla de ítems",
	Long: `Lee la primera hoja del archivo y reemplaza por completo la tabla de
ítems. El archivo debe traer al menos las columnas 'Numero Sencillo',
'Codigos' y 'Proceso'; si falta alguna no se reemplaza nada.`,
	Args: cobra.ExactArgs(1),
	RunE: runCargar,
}

func init() {
	rootCmd.AddCommand(cargarCmd)
}

func runCargar(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log.File, cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return err
	}
	defer logger.Sync()

	st, err := store.NewStore(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer st.Close()

	n, err := st.ImportWorkbook(args[0])
	if err != nil {
		var schemaErr *catalog.SchemaError
		if errors.As(err, &schemaErr) {
			return fmt.Errorf("el archivo no tiene el formato esperado: %w", schemaErr)
		}
		return err
	}

	logger.Info("workbook imported", zap.String("path", args[0]), zap.Int("rows", n))
	fmt.Printf("Se importaron %d filas desde %s a %s.\n", n, args[0], cfg.Database.Path)
	return nil
}
