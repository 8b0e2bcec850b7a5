package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/formline/formline-terminal/cmd/commands"
	"github.com/formline/formline-terminal/internal/cli"
	"github.com/formline/formline-terminal/pkg/store"
	"github.com/formline/formline-terminal/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	flagOutput  string
	flagQuiet   bool
	flagNoColor bool
	flagYes     bool
)

var rootCmd = &cobra.Command{
	Use:   "formline",
	Short: "Terminal-based form builder",
	Long:  `Formline is a terminal-based form builder. Design forms with drag and drop, fill them out, and collect submissions, all from your terminal.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Check if .formline directory exists
		if _, err := os.Stat(store.FormlineDir); os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error: No .formline directory found in the current directory.\n")
			fmt.Fprintf(os.Stderr, "Please run 'formline init' first to initialize a new project.\n")
			os.Exit(1)
		}

		settings, err := store.ReadSettings()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to read settings: %v\n", err)
			os.Exit(1)
		}
		st, err := store.Open(settings)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to open form store: %v\n", err)
			os.Exit(1)
		}

		// Launch TUI
		app := tui.NewApp(st, settings)
		p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to start the terminal user interface: %v\n", err)
			fmt.Fprintf(os.Stderr, "This could be due to terminal compatibility issues. Try running in a different terminal.\n")
			os.Exit(1)
		}
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new Formline project",
	Long:  `Creates the .formline folder structure in the current directory`,
	Run: func(cmd *cobra.Command, args []string) {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to determine current directory: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Initializing Formline project in %s...\n", cwd)

		if err := store.InitProjectStructure(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to initialize project structure: %v\n", err)
			fmt.Fprintf(os.Stderr, "Make sure you have write permissions in the current directory.\n")
			os.Exit(1)
		}

		fmt.Println("✓ Created .formline folder structure")
		fmt.Println("✓ You can now build forms and collect submissions!")
		fmt.Println("\nRun 'formline' to start the interactive TUI.")
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Formline",
	Long:  `Display the current version of the Formline CLI tool`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Formline version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "text", "Output format (text, json, yaml)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&flagYes, "yes", "y", false, "Skip confirmation prompts")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		cli.SetGlobalFlags(flagQuiet, flagNoColor, flagYes)
	}

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewListCommand())
	rootCmd.AddCommand(commands.NewShowCommand())
	rootCmd.AddCommand(commands.NewDeleteCommand())
	rootCmd.AddCommand(commands.NewExportCommand())
	rootCmd.AddCommand(commands.NewClipboardCommand())
	rootCmd.AddCommand(commands.NewSubmissionsCommand())
	rootCmd.AddCommand(commands.NewServeCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Command execution failed: %v\n", err)
		os.Exit(1)
	}
}
