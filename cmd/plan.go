package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mfaulds/weekplan/config"
	"github.com/mfaulds/weekplan/core/model"
	"github.com/mfaulds/weekplan/core/planner"
	"github.com/mfaulds/weekplan/core/state"
	"github.com/mfaulds/weekplan/infra/logger"
	"github.com/mfaulds/weekplan/pkg/export"
)

var (
	statePath  string
	outPath    string
	outFormat  string
	appendPlan bool
	modeFlag   string
	savePlan   bool
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a weekly meeting plan from a saved planner state",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVarP(&statePath, "state", "s", "", "planner state file (json or yaml)")
	planCmd.Flags().StringVarP(&outPath, "out", "o", "", "write the plan here instead of stdout")
	planCmd.Flags().StringVarP(&outFormat, "format", "f", "json", "output format: json or csv")
	planCmd.Flags().BoolVar(&appendPlan, "append", false, "merge generated meetings into the held plan instead of replacing it")
	planCmd.Flags().StringVarP(&modeFlag, "mode", "m", "", "override the scheduling mode: 1on1, team or scramble")
	planCmd.Flags().BoolVar(&savePlan, "save", false, "write the resulting plan back into the state file")
	if err := planCmd.MarkFlagRequired("state"); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logg := logger.NewZerologLogger("plan", cfg.Logging.Level)

	st, err := state.Load(statePath)
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}

	settings := effectiveSettings(st, cfg)
	if modeFlag != "" {
		settings.Mode = model.Mode(modeFlag)
	}

	eng := planner.New(logg)
	res, err := eng.Generate(planner.Request{
		Employees:         st.Employees,
		ConvenerWindows:   st.ManagerWindows,
		Settings:          settings,
		PerEmployeeDayCap: cfg.Engine.MaxPerEmployeePerDay,
		Append:            appendPlan,
		Current:           st.Plan,
	})
	if err != nil {
		return err
	}

	reportDiagnostics(logg, res.Diagnostics)

	var w io.Writer = os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	switch outFormat {
	case "json":
		err = export.WriteJSON(w, res.Plan)
	case "csv":
		err = export.WriteCSV(w, res.Plan)
	default:
		return fmt.Errorf("unsupported output format: %s", outFormat)
	}
	if err != nil {
		return err
	}

	if savePlan {
		st.Plan = res.Plan
		st.Settings = settings
		if err := state.Save(statePath, st); err != nil {
			return fmt.Errorf("save state: %w", err)
		}
	}
	return nil
}

// effectiveSettings takes the state file's settings where present and falls
// back to configured defaults field by field.
func effectiveSettings(st state.State, cfg *config.Config) model.Settings {
	s := st.Settings
	def := cfg.Engine.Settings()
	if s.Mode == "" {
		s.Mode = def.Mode
	}
	if s.SlotMinutes == 0 {
		s.SlotMinutes = def.SlotMinutes
	}
	if s.BufferMinutes == 0 {
		s.BufferMinutes = def.BufferMinutes
	}
	if s.MaxPerDay == 0 {
		s.MaxPerDay = def.MaxPerDay
	}
	if s.SessionMinutes == 0 {
		s.SessionMinutes = def.SessionMinutes
	}
	if s.TargetConversations == 0 {
		s.TargetConversations = def.TargetConversations
	}
	return s
}

func reportDiagnostics(logg logger.Logger, d planner.Diagnostics) {
	logg.Infof("placed %d one-on-ones (%d employees covered) and %d team sessions (%d heads)",
		d.OneOnOneCount, d.EmployeesWithOneOnOne, d.TeamCount, d.TeamHeadcount)
	logg.Debugw("availability spread", map[string]any{
		"free_minutes_mean":   d.FreeMinutesMean,
		"free_minutes_stddev": d.FreeMinutesStdDev,
	})
	for _, name := range d.WithoutOneOnOne {
		logg.Warnf("no one-on-one scheduled for %s", name)
	}
}
