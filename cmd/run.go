package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/thedjpetersen/relay/config"
	"github.com/thedjpetersen/relay/progress"
	"github.com/thedjpetersen/relay/provider"
	"github.com/thedjpetersen/relay/runner"
	"github.com/thedjpetersen/relay/selection"
	"github.com/thedjpetersen/relay/ui"
	"github.com/thedjpetersen/relay/workflow"
)

var (
	prdPath string
	taskID  string
	watch   bool
)

var runCmd = &cobra.Command{
	Use:   "run [prompt]",
	Short: "Run a prompt against a provider",
	Long: `Run streams a prompt through one provider CLI and reports the result.

The prompt comes from the argument, or from a PRD task when --prd and
--task are given. Provider and model selection is resolved from flags,
the repo config, the PRD file override, and the task override, in that
order.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		defaults, err := cliDefaults()
		if err != nil {
			exitWithError(err.Error())
		}

		prompt := ""
		if len(args) > 0 {
			prompt = args[0]
		}

		var fileOv, taskOv *config.Override
		var wf *workflow.Workflow
		var task *config.Task
		if prdPath != "" {
			prd, err := config.LoadPRD(prdPath)
			if err != nil {
				exitWithError(err.Error())
			}
			fileOv = prd.Override()

			// Without an explicit prompt the run targets a PRD task:
			// the named one, or the next pending one.
			if prompt == "" || taskID != "" {
				task, err = selection.NewSelector(prd, taskID).SelectTask()
				if err != nil {
					exitWithError(err.Error())
				}
				taskOv = task.Override()
				if prompt == "" {
					prompt = taskPrompt(task)
				}
				wf = workflow.NewWorkflow(prdPath, prd)
			}
		}

		if strings.TrimSpace(prompt) == "" {
			exitWithError("no prompt: pass one as an argument or select a PRD task with --prd and --task")
		}

		resolved := config.Resolve(defaults, fileOv, taskOv)
		opts := runner.Options{
			ProjectRoot: projectRoot,
			DryRun:      dryRun,
			Timeout:     timeout,
			Models:      resolved.Models,
		}

		if wf != nil && !dryRun {
			if watch {
				wf.SetOutput(io.Discard)
			}
			if err := wf.StartWorking([]string{task.ID}); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}

		var result runner.Result
		if watch && !dryRun {
			result = runWatched(resolved, prompt, opts)
		} else {
			opts.Reporter = progress.NewTerminal(os.Stderr)
			result = runner.Run(context.Background(), resolved.Provider, prompt, opts)
			fmt.Fprintln(os.Stderr)
		}

		if wf != nil && !dryRun {
			var err error
			if result.Success {
				err = wf.MarkComplete([]string{task.ID})
			} else {
				err = wf.MarkFailed([]string{task.ID})
			}
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}

		printResult(result)
		if !result.Success {
			os.Exit(1)
		}
	},
}

func init() {
	runCmd.Flags().StringVar(&prdPath, "prd", "", "PRD file with tasks and provider overrides")
	runCmd.Flags().StringVar(&taskID, "task", "", "task ID within the PRD file")
	runCmd.Flags().BoolVar(&watch, "watch", false, "watch the run in an interactive TUI")
	rootCmd.AddCommand(runCmd)
}

// runWatched executes the run behind a bubbletea watch screen.
func runWatched(resolved config.Resolved, prompt string, opts runner.Options) runner.Result {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	drv, err := provider.Lookup(resolved.Provider)
	if err != nil {
		return runner.Result{Provider: resolved.Provider, Error: err.Error()}
	}

	model := ui.NewModel(drv.DisplayName(), drv.ModelLabel(opts.Models), prompt, cancel)
	p := tea.NewProgram(&model)
	opts.Reporter = ui.NewReporter(p)

	done := make(chan runner.Result, 1)
	go func() {
		result := runner.Run(ctx, resolved.Provider, prompt, opts)
		done <- result
		p.Send(ui.CompletedMsg{Result: result})
	}()

	if _, err := p.Run(); err != nil {
		exitWithError(fmt.Sprintf("error running UI: %v", err))
	}
	cancel()

	return <-done
}

// taskPrompt builds the prompt for a PRD task from its title and body.
func taskPrompt(task *config.Task) string {
	if task.Title == "" {
		return task.Prompt
	}
	if task.Prompt == "" {
		return task.Title
	}
	return task.Title + "\n\n" + task.Prompt
}

func printResult(r runner.Result) {
	if r.Success {
		fmt.Printf("✓ %s completed in %ds\n", provider.DisplayName(r.Provider), int(r.Duration.Seconds()))
	} else {
		fmt.Printf("✗ %s failed after %ds\n", provider.DisplayName(r.Provider), int(r.Duration.Seconds()))
		if r.Error != "" {
			fmt.Printf("  error: %s\n", r.Error)
		}
	}
	if len(r.ToolsUsed) > 0 {
		snap := progress.Snapshot{Tools: r.ToolsUsed}
		fmt.Printf("  tools: %s\n", snap.ToolSummary())
	}
	if r.Summary != "" {
		fmt.Printf("  %s\n", r.Summary)
	}
}
