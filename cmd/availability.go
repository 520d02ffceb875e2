package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mfaulds/weekplan/core/availability"
	"github.com/mfaulds/weekplan/core/model"
	"github.com/mfaulds/weekplan/core/state"
	"github.com/mfaulds/weekplan/core/timeline"
)

var availStatePath string

var availabilityCmd = &cobra.Command{
	Use:   "availability",
	Short: "Show each employee's schedulable time within the convener's windows",
	RunE:  runAvailability,
}

func init() {
	availabilityCmd.Flags().StringVarP(&availStatePath, "state", "s", "", "planner state file (json or yaml)")
	if err := availabilityCmd.MarkFlagRequired("state"); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(availabilityCmd)
}

func runAvailability(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	st, err := state.Load(availStatePath)
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}

	normalized, err := availability.NormalizeOvernights(st.Employees)
	if err != nil {
		return err
	}
	wins, err := availability.ConvenerWindowsAbs(st.ManagerWindows)
	if err != nil {
		return err
	}
	byEmp, err := availability.ByEmployee(normalized, wins)
	if err != nil {
		return err
	}
	slotLen := st.Settings.SlotMinutes
	if slotLen == 0 {
		slotLen = cfg.Engine.SlotMinutes
	}
	stats := availability.Stats(byEmp, slotLen)

	names := make(map[string]string, len(st.Employees))
	ids := make([]string, 0, len(st.Employees))
	for _, e := range st.Employees {
		names[e.ID] = e.Name
		ids = append(ids, e.ID)
	}
	sort.SliceStable(ids, func(i, j int) bool { return names[ids[i]] < names[ids[j]] })

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "EMPLOYEE\tWINDOWS\tMINUTES\tSLOTS")
	for _, id := range ids {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\n",
			names[id], formatWindows(byEmp[id]), stats[id].Minutes, stats[id].Slots)
	}
	return tw.Flush()
}

func formatWindows(ivs []model.Interval) string {
	if len(ivs) == 0 {
		return "-"
	}
	out := ""
	for i, iv := range ivs {
		if i > 0 {
			out += ", "
		}
		for j, span := range timeline.SliceAcrossDays(iv) {
			if j > 0 {
				out += "+"
			}
			end := timeline.FormatClock(span.EndMin)
			if span.EndMin == model.MinutesPerDay {
				end = "24:00"
			}
			out += fmt.Sprintf("%s %s-%s", model.DayNames[span.Day],
				timeline.FormatClock(span.StartMin), end)
		}
	}
	return out
}
