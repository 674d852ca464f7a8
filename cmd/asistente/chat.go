package main

import (
	"bufio"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"reposicion-assistant/internal/catalog"
	"reposicion-assistant/internal/config"
	"reposicion-assistant/internal/dialogue"
	"reposicion-assistant/internal/logging"
	"reposicion-assistant/internal/report"
	"reposicion-assistant/internal/store"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Inicia el asistente conversacional de reposiciones",
	Long: `Sesión interactiva línea por línea. Además del diálogo normal se aceptan
comandos internos:

  :cargar <archivo.xlsx>   importa un Excel y recarga la tabla de ítems
  :reiniciar               reinicia la conversación y descarta lo acumulado
  :salir                   termina la sesión`,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

// #region session

// chatSession holds the wiring of one interactive run. The store may be nil
// when the database could not be opened; the session then degrades to the
// "no dataset loaded" state instead of exiting.
type chatSession struct {
	cfg     *config.Config
	log     *zap.Logger
	st      *store.Store
	engine  *catalog.Engine
	machine *dialogue.Machine

	sessionID string
	turn      int
	started   bool

	botLabel  func(a ...interface{}) string
	userLabel func(a ...interface{}) string
	warnLabel func(a ...interface{}) string
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log.File, cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return err
	}
	defer logger.Sync()

	s := &chatSession{
		cfg:       cfg,
		log:       logger,
		sessionID: uuid.New().String(),
		botLabel:  color.New(color.FgCyan, color.Bold).SprintFunc(),
		userLabel: color.New(color.FgGreen, color.Bold).SprintFunc(),
		warnLabel: color.New(color.FgYellow).SprintFunc(),
	}

	st, err := store.NewStore(cfg.Database.Path)
	if err != nil {
		logger.Error("open store", zap.String("path", cfg.Database.Path), zap.Error(err))
		fmt.Println(s.warnLabel("No se pudo abrir la base de datos: " + err.Error()))
	} else {
		s.st = st
		defer st.Close()
	}

	var rng *rand.Rand
	if cfg.Lookup.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Lookup.Seed))
	}
	s.engine = catalog.NewEngine(s.loadDataset(), rng)
	s.machine = dialogue.NewMachine(s.engine, logger)

	logger.Info("chat session started",
		zap.String("session_id", s.sessionID),
		zap.Bool("dataset_loaded", s.engine.Loaded()),
	)

	if s.engine.Loaded() {
		s.say(s.machine.Start().Messages...)
		s.started = true
	} else {
		s.say("Base de datos no cargada. Use ':cargar <archivo.xlsx>' para importar los datos.")
	}

	return s.loop()
}

// loadDataset reads the item table, tolerating a missing store or a read
// failure by returning an empty dataset.
func (s *chatSession) loadDataset() *catalog.Dataset {
	if s.st == nil {
		return catalog.NewDataset(nil)
	}
	ds, err := s.st.LoadDataset()
	if err != nil {
		s.log.Error("load dataset", zap.Error(err))
		fmt.Println(s.warnLabel("No se pudieron leer los ítems: " + err.Error()))
		return catalog.NewDataset(nil)
	}
	return ds
}

// #endregion session

// #region loop

func (s *chatSession) loop() error {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(s.userLabel("Usted> "))
		if !scanner.Scan() {
			s.log.Info("input closed", zap.String("session_id", s.sessionID))
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		s.turn++
		s.audit("usuario", line)

		if strings.HasPrefix(line, ":") {
			if quit := s.handleCommand(line); quit {
				return nil
			}
			continue
		}

		if !s.engine.Loaded() {
			s.say("No hay datos cargados. Use ':cargar <archivo.xlsx>' primero.")
			continue
		}

		r := s.machine.Handle(line)
		s.say(r.Messages...)

		if r.PrintRequested {
			if err := s.emitReport(); err != nil {
				s.log.Error("write report", zap.Error(err))
				s.say("No se pudo generar el reporte: " + err.Error())
				s.say(s.machine.RetryPrint().Messages...)
				continue
			}
		}
		if r.Done {
			return nil
		}
	}
}

// #endregion loop

// #region commands

// handleCommand processes one in-band command. Returns true when the session
// should end.
func (s *chatSession) handleCommand(line string) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case ":salir":
		s.say("Sesión terminada.")
		return true
	case ":reiniciar":
		s.say(s.machine.Start().Messages...)
		s.started = true
	case ":cargar":
		if len(fields) != 2 {
			s.say("Uso: :cargar <archivo.xlsx>")
			return false
		}
		s.reload(fields[1])
	default:
		s.say("Comando desconocido: " + fields[0])
	}
	return false
}

// reload imports a workbook and swaps the lookup engine's dataset. When the
// conversation has not accumulated anything it restarts cleanly; otherwise
// the machine keeps its snapshots and warns about the swap.
func (s *chatSession) reload(path string) {
	if s.st == nil {
		s.say("La base de datos no está disponible; no se puede importar.")
		return
	}

	n, err := s.st.ImportWorkbook(path)
	if err != nil {
		var schemaErr *catalog.SchemaError
		if errors.As(err, &schemaErr) {
			s.say("El archivo no tiene el formato esperado: " + schemaErr.Error())
		} else {
			s.say("Error al importar: " + err.Error())
		}
		s.log.Error("import workbook", zap.String("path", path), zap.Error(err))
		return
	}

	s.engine.SetDataset(s.loadDataset())
	s.log.Info("dataset reloaded", zap.String("path", path), zap.Int("rows", n))
	s.say(fmt.Sprintf("Se importaron %d filas desde %s.", n, path))

	fresh := !s.started ||
		(len(s.machine.Completed()) == 0 && s.machine.State().Step == dialogue.StepAskReposition)
	if fresh {
		s.say(s.machine.Start().Messages...)
		s.started = true
		return
	}
	s.say(s.machine.SetEngine(s.engine).Messages...)
}

// #endregion commands

// #region report

func (s *chatSession) emitReport() error {
	rep := report.Build(s.machine.Completed(), time.Now())
	path, err := report.WriteWorkbook(rep, s.cfg.Report.OutputDir)
	if err != nil {
		return err
	}
	s.log.Info("report written",
		zap.String("session_id", s.sessionID),
		zap.String("path", path),
		zap.Int("rows", len(rep.Rows)),
	)
	s.say("Reporte guardado en: " + path)
	fmt.Println()
	fmt.Print(report.Render(rep))
	return nil
}

// #endregion report

// #region output

// say prints assistant messages and mirrors them into the session log.
func (s *chatSession) say(msgs ...string) {
	for _, msg := range msgs {
		fmt.Println(s.botLabel("Asistente:"), msg)
		s.audit("asistente", msg)
	}
}

func (s *chatSession) audit(speaker, line string) {
	if s.st == nil {
		return
	}
	err := s.st.LogTurn(store.AuditEntry{
		SessionID: s.sessionID,
		Turn:      s.turn,
		Speaker:   speaker,
		Step:      s.machine.State().Step.String(),
		Line:      line,
	})
	if err != nil {
		s.log.Warn("audit write failed", zap.Error(err))
	}
}

// #endregion output
