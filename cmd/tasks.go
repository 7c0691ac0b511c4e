package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thedjpetersen/relay/config"
	"github.com/thedjpetersen/relay/progress"
	"github.com/thedjpetersen/relay/provider"
	"github.com/thedjpetersen/relay/runner"
	"github.com/thedjpetersen/relay/workflow"
)

var (
	tasksPRDPath string
	runTasks     bool
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List or run the tasks in a PRD file",
	Long: `Tasks shows each task in a PRD file with its effective provider and
model after applying the file-level and task-level overrides. With --run,
every task is executed sequentially.`,
	Run: func(cmd *cobra.Command, args []string) {
		defaults, err := cliDefaults()
		if err != nil {
			exitWithError(err.Error())
		}

		prd, err := config.LoadPRD(tasksPRDPath)
		if err != nil {
			exitWithError(err.Error())
		}
		if len(prd.Tasks) == 0 {
			exitWithError("PRD file has no tasks")
		}

		fileOv := prd.Override()

		if !runTasks {
			for i := range prd.Tasks {
				task := &prd.Tasks[i]
				resolved := config.Resolve(defaults, fileOv, task.Override())
				status := task.Status
				if status == "" {
					status = config.StatusTodo
				}
				fmt.Printf("%-12s %-12s %-40s %s\n", task.ID, status, task.Title, effectiveLabel(resolved))
			}
			return
		}

		wf := workflow.NewWorkflow(tasksPRDPath, prd)
		ran, failed := 0, 0
		for i := range prd.Tasks {
			task := &prd.Tasks[i]
			if !task.Pending() {
				continue
			}
			ran++

			resolved := config.Resolve(defaults, fileOv, task.Override())
			fmt.Printf("── %s: %s [%s]\n", task.ID, task.Title, effectiveLabel(resolved))

			if !dryRun {
				if err := wf.StartWorking([]string{task.ID}); err != nil {
					fmt.Fprintln(os.Stderr, err)
				}
			}

			result := runner.Run(context.Background(), resolved.Provider, taskPrompt(task), runner.Options{
				ProjectRoot: projectRoot,
				DryRun:      dryRun,
				Timeout:     timeout,
				Models:      resolved.Models,
				Reporter:    progress.NewTerminal(os.Stderr),
			})
			fmt.Fprintln(os.Stderr)

			if !dryRun {
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
				failed++
			}
		}

		if ran == 0 {
			fmt.Println("no pending tasks")
			return
		}
		fmt.Printf("%d/%d tasks succeeded\n", ran-failed, ran)
		if failed > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	tasksCmd.Flags().StringVar(&tasksPRDPath, "prd", "", "PRD file with tasks (required)")
	tasksCmd.Flags().BoolVar(&runTasks, "run", false, "run every task sequentially")
	tasksCmd.MarkFlagRequired("prd")
	rootCmd.AddCommand(tasksCmd)
}

// effectiveLabel renders "provider/model" for display.
func effectiveLabel(resolved config.Resolved) string {
	drv, err := provider.Lookup(resolved.Provider)
	if err != nil {
		return string(resolved.Provider)
	}
	return fmt.Sprintf("%s/%s", resolved.Provider, drv.ModelLabel(resolved.Models))
}
