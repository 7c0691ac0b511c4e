package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/thedjpetersen/relay/config"
	"github.com/thedjpetersen/relay/provider"
)

var (
	providerFlag string
	claudeModel  string
	geminiModel  string
	cursorModel  string
	cursorMode   string
	codexModel   string
	projectRoot  string
	timeout      time.Duration
	dryRun       bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "relay",
	Short: "Relay - run AI coding agents from the command line",
	Long: `Relay drives AI coding-agent CLIs (Claude Code, Gemini CLI, Cursor
Agent, Codex) as subprocesses, streaming their progress and reporting a
structured result.

Examples:
  # Run a prompt against the default provider
  relay run "fix the failing tests"

  # Pick a provider and model
  relay run --provider gemini --gemini-model pro "add a retry loop"

  # Run a task from a PRD file, watching progress in a TUI
  relay run --prd tasks.yaml --task task-3 --watch

  # Check which providers are installed
  relay probe`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&providerFlag, "provider", "claude", "default provider (claude, gemini, cursor, codex)")
	pf.StringVar(&claudeModel, "claude-model", "sonnet", "Claude model alias")
	pf.StringVar(&geminiModel, "gemini-model", "flash", "Gemini model alias")
	pf.StringVar(&cursorModel, "cursor-model", "", "Cursor model")
	pf.StringVar(&cursorMode, "cursor-mode", "", "Cursor mode (agent, plan)")
	pf.StringVar(&codexModel, "codex-model", "", "Codex model")
	pf.StringVar(&projectRoot, "project-root", ".", "working directory for the agent subprocess")
	pf.DurationVar(&timeout, "timeout", 0, "maximum run time (0 = 30m default)")
	pf.BoolVar(&dryRun, "dry-run", false, "print what would run without spawning anything")
}

// cliDefaults folds the .relay.yaml repo config under the command-line
// flags: a flag the user set always wins, otherwise a value from the repo
// config replaces the built-in default.
func cliDefaults() (config.Defaults, error) {
	repo, err := config.Load(projectRoot)
	if err != nil {
		return config.Defaults{}, fmt.Errorf("failed to load repo config: %w", err)
	}

	flags := rootCmd.PersistentFlags()
	fromRepo := func(flag, repoValue string, target *string) {
		if repoValue != "" && !flags.Changed(flag) {
			*target = repoValue
		}
	}
	fromRepo("provider", repo.Provider, &providerFlag)
	fromRepo("claude-model", repo.ClaudeModel, &claudeModel)
	fromRepo("gemini-model", repo.GeminiModel, &geminiModel)
	fromRepo("cursor-model", repo.CursorModel, &cursorModel)
	fromRepo("cursor-mode", repo.CursorMode, &cursorMode)
	fromRepo("codex-model", repo.CodexModel, &codexModel)

	if repo.TimeoutMinutes > 0 && !flags.Changed("timeout") {
		timeout = time.Duration(repo.TimeoutMinutes) * time.Minute
	}

	if !provider.IsValid(providerFlag) {
		return config.Defaults{}, fmt.Errorf("unknown provider %q", providerFlag)
	}

	return config.Defaults{
		Provider: provider.ID(providerFlag),
		Models: provider.Options{
			ClaudeModel: claudeModel,
			GeminiModel: geminiModel,
			CursorModel: cursorModel,
			CursorMode:  cursorMode,
			CodexModel:  codexModel,
		},
	}, nil
}

// exitWithError prints an error message to stderr and exits with code 1
func exitWithError(msg string) {
	fmt.Fprintln(os.Stderr, "Error:", msg)
	os.Exit(1)
}
