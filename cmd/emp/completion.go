package main

import (
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/jacksmith/emp/internal/cli"
	"github.com/jacksmith/emp/internal/model"
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for emp.

To load completions:

Bash:
  $ source <(emp completion bash)
  # To load completions for each session, execute once:
  # Linux:
  $ emp completion bash > /etc/bash_completion.d/emp
  # macOS:
  $ emp completion bash > $(brew --prefix)/etc/bash_completion.d/emp

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc
  # To load completions for each session, execute once:
  $ emp completion zsh > "${fpath[1]}/_emp"
  # You will need to start a new shell for this setup to take effect.

Fish:
  $ emp completion fish | source
  # To load completions for each session, execute once:
  $ emp completion fish > ~/.config/fish/completions/emp.fish
`,
}

var completionBashCmd = &cobra.Command{
	Use:   "bash",
	Short: "Generate bash completion script",
	Long:  "Generate the autocompletion script for bash.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenBashCompletion(os.Stdout)
	},
}

var completionZshCmd = &cobra.Command{
	Use:   "zsh",
	Short: "Generate zsh completion script",
	Long:  "Generate the autocompletion script for zsh.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenZshCompletion(os.Stdout)
	},
}

var completionFishCmd = &cobra.Command{
	Use:   "fish",
	Short: "Generate fish completion script",
	Long:  "Generate the autocompletion script for fish.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenFishCompletion(os.Stdout, true)
	},
}

func init() {
	completionCmd.AddCommand(completionBashCmd)
	completionCmd.AddCommand(completionZshCmd)
	completionCmd.AddCommand(completionFishCmd)
	rootCmd.AddCommand(completionCmd)
}

// completionEmployees lists the roster for shell completion.
// A missing data file yields nothing rather than being created.
func completionEmployees() []model.Employee {
	cfg, _, err := loadSettings()
	if err != nil {
		return nil
	}
	if _, err := os.Stat(cfg.DataFile); err != nil {
		return nil
	}

	s, err := openSession()
	if err != nil {
		return nil
	}
	defer s.Close()

	employees, err := s.store.ListAll()
	if err != nil {
		return nil
	}
	return employees
}

// completeEmployeeIDs completes the first argument with employee IDs.
func completeEmployeeIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var completions []string
	for _, e := range completionEmployees() {
		id := strconv.Itoa(e.ID)
		if strings.HasPrefix(id, strings.TrimPrefix(toComplete, "#")) {
			completions = append(completions, id+"\t"+cli.Truncate(e.Name, 40))
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}

// completePositions completes positions already present in the roster.
func completePositions(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return completeValues(toComplete, func(e model.Employee) []string {
		return []string{e.Position}
	})
}

// completeSkills completes skills already present in the roster.
func completeSkills(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return completeValues(toComplete, func(e model.Employee) []string {
		return e.Skills
	})
}

// completeValues collects unique, non-empty values with the given prefix.
// Matching is case-sensitive, like the searches themselves.
func completeValues(toComplete string, values func(model.Employee) []string) ([]string, cobra.ShellCompDirective) {
	seen := make(map[string]bool)
	var completions []string
	for _, e := range completionEmployees() {
		for _, v := range values(e) {
			if v == "" || seen[v] || !strings.HasPrefix(v, toComplete) {
				continue
			}
			seen[v] = true
			completions = append(completions, v)
		}
	}
	sort.Strings(completions)
	return completions, cobra.ShellCompDirectiveNoFileComp
}
