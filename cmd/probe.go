package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/thedjpetersen/relay/provider"
	"github.com/thedjpetersen/relay/runner"
)

var (
	probeOK      = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")).Bold(true)
	probeMissing = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Check which provider CLIs are installed",
	Long: `Probe invokes each registered provider executable with its version
flag and reports whether it is installed and runnable.`,
	Run: func(cmd *cobra.Command, args []string) {
		ids := provider.Available()
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

		missing := 0
		for _, id := range ids {
			drv, err := provider.Lookup(id)
			if err != nil {
				continue
			}

			if runner.IsAvailable(context.Background(), id) {
				fmt.Printf("%s %s (%s)\n", probeOK.Render("✓"), drv.DisplayName(), drv.ExecName())
			} else {
				fmt.Printf("%s %s (%s) not found\n", probeMissing.Render("✗"), drv.DisplayName(), drv.ExecName())
				missing++
			}
		}

		if missing == len(ids) {
			exitWithError("no provider CLIs are installed")
		}
	},
}

func init() {
	rootCmd.AddCommand(probeCmd)
}
