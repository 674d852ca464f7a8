package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"reposicion-assistant/internal/config"
	"reposicion-assistant/internal/headcount"
	"reposicion-assistant/internal/logging"
)

var (
	rosterPath   string
	selectedLine string
)

var headcountCmd = &cobra.Command{
	Use:   "headcount",
	Short: "Conteo de personal escaneado contra la programación",
	Long: `Lee el roster de empleados y registra escaneos uno por línea. Comandos:

  :programar <op> <sop> <cal>  fija la dotación programada
  :linea <nombre>              fija la línea seleccionada
  :stats                       imprime el resumen
  :salir                       termina`,
	RunE: runHeadcount,
}

func init() {
	headcountCmd.Flags().StringVar(&rosterPath, "roster", "", "archivo del roster (por defecto el de la configuración)")
	headcountCmd.Flags().StringVar(&selectedLine, "linea", "", "línea de producción seleccionada")
	rootCmd.AddCommand(headcountCmd)
}

func runHeadcount(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log.File, cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return err
	}
	defer logger.Sync()

	path := rosterPath
	if path == "" {
		path = cfg.Headcount.Roster
	}
	roster, err := headcount.LoadRoster(path)
	if err != nil {
		return fmt.Errorf("cargar roster %s: %w", path, err)
	}
	tracker := headcount.NewTracker(roster)
	logger.Info("headcount session started",
		zap.String("roster", path),
		zap.Int("employees", len(roster)),
	)

	ok := color.New(color.FgGreen).SprintFunc()
	bad := color.New(color.FgRed).SprintFunc()
	warn := color.New(color.FgYellow).SprintFunc()

	fmt.Printf("Roster cargado: %d empleados. Escanee IDs uno por línea.\n", len(roster))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ":") {
			if quit := headcountCommand(line, tracker, time.Now()); quit {
				return nil
			}
			continue
		}

		rec, err := tracker.Scan(line, time.Now())
		switch {
		case err == nil:
			fmt.Println(ok(fmt.Sprintf(
				"Empleado %s - %s registrado. Antigüedad: %.1f años.",
				rec.Employee.ID, rec.Employee.Name, rec.SeniorityYears)))
			if selectedLine != "" &&
				!strings.EqualFold(strings.TrimSpace(rec.Employee.Line), selectedLine) {
				fmt.Println(warn(fmt.Sprintf(
					"Aviso: %s pertenece a la línea %s, no a %s.",
					rec.Employee.Name, rec.Employee.Line, selectedLine)))
			}
		case errors.Is(err, headcount.ErrDuplicateScan):
			fmt.Println(warn(fmt.Sprintf("El empleado %s ya fue registrado.", line)))
		case errors.Is(err, headcount.ErrUnknownEmployee):
			fmt.Println(bad(fmt.Sprintf("El empleado con ID '%s' no está en el roster.", line)))
		default:
			fmt.Println(bad("Escaneo inválido: " + err.Error()))
		}
		logger.Debug("scan", zap.String("id", line), zap.Error(err))
	}
}

// headcountCommand handles one in-band command. Returns true to end the
// session.
func headcountCommand(line string, tracker *headcount.Tracker, now time.Time) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case ":salir":
		printStats(tracker.Stats(selectedLine, now))
		return true
	case ":stats":
		printStats(tracker.Stats(selectedLine, now))
	case ":linea":
		if len(fields) != 2 {
			fmt.Println("Uso: :linea <nombre>")
			return false
		}
		selectedLine = fields[1]
		fmt.Printf("Línea seleccionada: %s\n", selectedLine)
	case ":programar":
		if len(fields) != 4 {
			fmt.Println("Uso: :programar <operadores> <soportes> <calidad>")
			return false
		}
		nums := make([]int, 3)
		for i, f := range fields[1:] {
			n, err := strconv.Atoi(f)
			if err != nil {
				fmt.Printf("Valor inválido: %s\n", f)
				return false
			}
			nums[i] = n
		}
		if err := tracker.SetProgrammed(nums[0], nums[1], nums[2]); err != nil {
			fmt.Println("No se pudo fijar la programación: " + err.Error())
			return false
		}
		fmt.Printf("Programados: %d operadores, %d soportes, %d calidad.\n",
			nums[0], nums[1], nums[2])
	default:
		fmt.Println("Comando desconocido: " + fields[0])
	}
	return false
}

func printStats(s headcount.Stats) {
	fmt.Println("---- Resumen de personal ----")
	fmt.Printf("Escaneados:        %d\n", s.TotalScanned)
	fmt.Printf("Operadores:        %d\n", s.Operators)
	fmt.Printf("Calidad:           %d\n", s.Quality)
	fmt.Printf("Con experiencia:   %d\n", s.Experienced)
	fmt.Printf("Sin experiencia:   %d\n", s.Inexperienced)
	if s.OutsideLine > 0 {
		fmt.Printf("Fuera de línea:    %d\n", s.OutsideLine)
	}
	fmt.Printf("Programados:       %d (op %d / sop %d / cal %d)\n",
		s.ProgrammedTotal, s.ProgrammedOperators, s.ProgrammedSupports, s.ProgrammedQuality)
	fmt.Printf("Diferencia:        %+d\n", s.Difference)
}
