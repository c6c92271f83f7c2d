// Package cli implements the setbuilder command line tool.
package cli

import (
	"io"
	"runtime"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"set-builder/internal/config"
	"set-builder/internal/logging"
)

var (
	// Version information - set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
	GoVersion = "unknown"
)

// Global flag names.
const (
	flagConfig   = "config"
	flagLogLevel = "log-level"
	flagDev      = "dev"
)

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "setbuilder",
		Short: "Selector generator and demo for the fluent struct builder",
		Long: color.CyanString(`setbuilder - fluent, type-checked construction of Go structs

The builder package populates a struct field by field through selector
functions such as func(p *Person) *string { return &p.Name }.

Commands:
  gen     generate named selector functions for the structs of a package
  demo    build a sample Person with nested builders and print it
  version show version information`),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String(flagConfig, "", "configuration file (default ./setbuilder.yaml)")
	rootCmd.PersistentFlags().String(flagLogLevel, "info", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().Bool(flagDev, false, "human readable development logs")

	// Add subcommands
	rootCmd.AddCommand(NewVersionCommand())
	rootCmd.AddCommand(NewGenCommand())
	rootCmd.AddCommand(NewDemoCommand())

	return rootCmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display the setbuilder version, Git commit, build date, and Go version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			// Set GoVersion to actual runtime if not set at build time
			goVer := GoVersion
			if goVer == "unknown" {
				goVer = runtime.Version()
			}

			titleColor := color.New(color.FgCyan, color.Bold)
			valueColor := color.New(color.FgWhite)

			out := cmd.OutOrStdout()
			for _, row := range [][2]string{
				{"setbuilder version: ", Version},
				{"Git commit: ", GitCommit},
				{"Build date: ", BuildDate},
				{"Go version: ", goVer},
			} {
				titleColor.Fprint(out, row[0])
				valueColor.Fprintln(out, row[1])
			}
		},
	}
}

// loadConfig loads the configuration with the global flags and the given
// command flags bound to their configuration keys.
func loadConfig(cmd *cobra.Command, keys map[string]string) (*config.Config, error) {
	file, err := cmd.Flags().GetString(flagConfig)
	if err != nil {
		return nil, err
	}

	bindings := map[string]string{
		"log.level":       flagLogLevel,
		"log.development": flagDev,
	}
	for key, name := range keys {
		bindings[key] = name
	}

	opts := config.Options{File: file}
	opts.Flags = make(map[string]*pflag.Flag, len(bindings))
	for key, name := range bindings {
		opts.Flags[key] = cmd.Flags().Lookup(name)
	}

	return config.Load(opts)
}

// newLogger builds the command logger. Every run is tagged with an id so
// interleaved logs of concurrent invocations can be told apart.
func newLogger(w io.Writer, cfg *config.Config, command string) (*zap.Logger, error) {
	logger, err := logging.New(w, cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return nil, err
	}

	return logger.With(zap.String("command", command), zap.String("run", uuid.NewString())), nil
}

// Execute runs the root command
func Execute() error {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		errorColor := color.New(color.FgRed, color.Bold)
		errorColor.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	return nil
}
