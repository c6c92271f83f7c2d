package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"set-builder/internal/analyze"
	"set-builder/internal/diagnostic"
	"set-builder/internal/gen"
)

// NewGenCommand creates the gen command
func NewGenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen [packages]",
		Short: "Generate selector functions",
		Long: `Generate one named selector function per settable field of every exported
struct in the given packages (default "."):

  func PersonName(x *Person) *string { return &x.Name }

Unexported, embedded and setbuilder:"-" or setbuilder:"readonly" fields are
skipped. Names already declared in the package get a numeric suffix.

Examples:
  setbuilder gen ./examples/people
  setbuilder gen --type Person --prefix Sel ./...
  setbuilder gen --dry-run .`,
		RunE: runGen,
	}

	cmd.Flags().String("filename", "selectors_gen.go", "name of the generated file in each package")
	cmd.Flags().String("prefix", "", "prefix of every selector name")
	cmd.Flags().StringSlice("type", nil, "generate only for these struct names")
	cmd.Flags().Bool("dry-run", false, "print the generated files instead of writing them")

	return cmd
}

func runGen(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, map[string]string{
		"gen.filename": "filename",
		"gen.prefix":   "prefix",
		"gen.types":    "type",
		"gen.dry_run":  "dry-run",
	})
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logger, err := newLogger(cmd.ErrOrStderr(), cfg, "gen")
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	patterns := args
	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	pkgs, err := analyze.NewAnalyzer().LoadPackages(patterns...)
	if err != nil {
		return fmt.Errorf("loading packages: %w", err)
	}

	for _, pkg := range pkgs {
		logger.Debug("loaded package",
			zap.String("package", pkg.Path),
			zap.String("dir", pkg.Dir),
			zap.Int("structs", len(pkg.Structs)))
	}

	g := gen.NewGenerator(gen.GeneratorConfig{
		Filename: cfg.Gen.Filename,
		Prefix:   cfg.Gen.Prefix,
		Types:    cfg.Gen.Types,
	})

	files, genErr := g.Generate(pkgs)

	diags := g.Diagnostics()
	for _, d := range diags.All() {
		logDiagnostic(logger, d)
	}

	if genErr != nil {
		return fmt.Errorf("generating selectors: %w", genErr)
	}

	out := cmd.OutOrStdout()
	successColor := color.New(color.FgGreen, color.Bold)
	infoColor := color.New(color.FgCyan)

	if cfg.Gen.DryRun {
		for _, f := range files {
			infoColor.Fprintf(out, "// %s\n", f.Path())
			fmt.Fprintln(out, string(f.Content))
		}

		return nil
	}

	if err := gen.WriteFiles(files); err != nil {
		return err
	}

	for _, f := range files {
		logger.Info("wrote file", zap.String("path", f.Path()), zap.Int("selectors", f.Selectors))
		successColor.Fprint(out, "✓ ")
		fmt.Fprintf(out, "%s (%d selectors)\n", f.Path(), f.Selectors)
	}

	if len(files) == 0 {
		infoColor.Fprintln(out, "nothing to generate")
	}

	return nil
}

func logDiagnostic(logger *zap.Logger, d diagnostic.Diagnostic) {
	fields := []zap.Field{
		zap.String("code", d.Code),
		zap.String("subject", d.Subject()),
	}

	switch d.Severity {
	case diagnostic.SeverityError:
		logger.Error(d.Message, fields...)
	case diagnostic.SeverityWarning:
		logger.Warn(d.Message, fields...)
	default:
		logger.Debug(d.Message, fields...)
	}
}
