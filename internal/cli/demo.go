package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"set-builder/builder"
	"set-builder/examples/people"
	"set-builder/internal/config"
)

// NewDemoCommand creates the demo command
func NewDemoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Build a sample person and print it",
		Long: `Build a Person with a partner, friends and friends of friends using
nested builders, deferred collections and deferred nested collections, then
print it with go-spew or as YAML.

Examples:
  setbuilder demo
  setbuilder demo --format yaml`,
		Args: cobra.NoArgs,
		RunE: runDemo,
	}

	cmd.Flags().String("format", config.FormatSpew, "output format: spew or yaml")

	return cmd
}

func runDemo(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd, map[string]string{"demo.format": "format"})
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logger, err := newLogger(cmd.ErrOrStderr(), cfg, "demo")
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	person, err := demoPerson()
	if err != nil {
		return fmt.Errorf("building demo person: %w", err)
	}

	logger.Debug("built person",
		zap.String("name", person.Name),
		zap.Int("friends", len(person.Friends)),
		zap.Int("groups", len(person.FriendsOfFriends)))

	return printPerson(cmd.OutOrStdout(), cfg.Demo.Format, person)
}

func named(name string, married bool) func(*people.Person) *people.Person {
	return func(*people.Person) *people.Person {
		return builder.New[people.Person]().
			With(
				builder.Value(people.PersonName, name),
				builder.Value(people.PersonMarried, married),
			).
			MustBuild()
	}
}

// demoPerson builds Edu, married to Livia, with two friends and two groups
// of friends of friends.
func demoPerson() (*people.Person, error) {
	return builder.New[people.Person]().
		With(
			builder.Deferred(people.PersonName, func(string) string { return "Edu" }),
			builder.Deferred(people.PersonMarried, func(bool) bool { return true }),
			builder.Deferred(people.PersonBirthDate, func(time.Time) time.Time {
				return time.Date(2005, time.September, 22, 0, 0, 0, 0, time.UTC)
			}),
			builder.Deferred(people.PersonPartner, func(*people.Person) *people.Person {
				return builder.New[people.Person]().
					With(
						builder.Value(people.PersonName, "Livia"),
						builder.Value(people.PersonMarried, true),
						builder.Value(people.PersonGender, people.Female),
					).
					MustBuild()
			}),
			builder.CollectionOf(people.PersonFriends, func(bf *builder.Producers[*people.Person]) {
				bf.Add(named("Guilherme", false))
				bf.Add(named("Alan", true))
			}),
			builder.NestedOf(people.PersonFriendsOfFriends, func(bfof *builder.Groups[*people.Person]) {
				bfof.Add(func(bf *builder.Producers[*people.Person]) {
					bf.Add(named("João", false))
					bf.Add(named("Paulo", false))
				})

				bfof.Add(func(bf *builder.Producers[*people.Person]) {
					bf.Add(named("Pedro", true))
				})
			}),
		).
		Build()
}

func printPerson(w io.Writer, format string, p *people.Person) error {
	switch format {
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}

		return enc.Close()
	case config.FormatSpew:
		cs := spew.ConfigState{
			Indent:                  "  ",
			DisablePointerAddresses: true,
			DisableCapacities:       true,
			SortKeys:                true,
		}
		cs.Fdump(w, p)

		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
