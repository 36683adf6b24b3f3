package cli

import (
	"fmt"
	"maps"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/idelchi/projstat/internal/projstat"
	"github.com/idelchi/projstat/internal/report"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// Execute runs the CLI with the process arguments.
func (c CLI) Execute() error {
	return c.Command().Execute()
}

// flags holds the command-line values that are not bound to configuration keys.
type flags struct {
	config string
	file   string
	types  []string
}

// Command builds the root command and its subcommands. Each call returns an
// independent command tree with its own configuration store.
func (c CLI) Command() *cobra.Command {
	v := newViper()
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "projstat [path]",
		Short: "Report file type, size and source line statistics of a project",
		Long: heredoc.Doc(`
			projstat walks a project directory and reports statistics per file type:
			how many files each type has, how much space they take and how many lines
			of source code they contain.

			Extensions can be ignored, marked as source code and grouped into named
			types. The built-in profiles are "base" and "web".

			Reports are rendered as html, json, yaml or text. With --output auto the
			text report is printed on a terminal and the html report otherwise.

			Settings are read from flags, PROJSTAT_* environment variables, a .env file
			and projstat.yaml in the working directory, in that order of precedence.
		`),
		Example: heredoc.Doc(`
			projstat
			projstat ./site -o json
			projstat -p base --source go,mod -t golang=go,mod
			projstat -f report.html
			projstat serve ./site --addr :8080
		`),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd, v, f)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			options, err := buildOptions(v, f, args)
			if err != nil {
				return err
			}

			return logic(cmd.Context(), options, cmd.OutOrStdout())
		},
	}

	configureRootFlags(cmd, v, f)

	cmd.AddCommand(
		newServeCmd(v, f),
		newInitCmd(v),
		newVersionCmd(c.version),
	)

	return cmd
}

func configureRootFlags(cmd *cobra.Command, v *viper.Viper, f *flags) {
	persistent := cmd.PersistentFlags()
	persistent.SortFlags = false

	persistent.StringVar(&f.config, "config", "", "Configuration file (default ./"+configFileName+")")
	persistent.StringP("profile", "p", defaultProfile,
		fmt.Sprintf("Built-in profile applied first (%s)", strings.Join(projstat.Profiles(), ", ")))
	bindFlagToConfig(v, persistent.Lookup("profile"), profileKey)

	persistent.StringSlice("ignore", nil, "Extensions to ignore (e.g. log,tmp)")
	bindFlagToConfig(v, persistent.Lookup("ignore"), ignoreAddKey)
	persistent.StringSlice("remove-ignore", nil, "Extensions to stop ignoring")
	bindFlagToConfig(v, persistent.Lookup("remove-ignore"), ignoreRemoveKey)
	persistent.Bool("clear-ignore", false, "Empty the ignore list before adding extensions")
	bindFlagToConfig(v, persistent.Lookup("clear-ignore"), ignoreClearKey)

	persistent.StringSlice("source", nil, "Extensions whose lines are counted (e.g. go,py)")
	bindFlagToConfig(v, persistent.Lookup("source"), sourceAddKey)
	persistent.StringSlice("remove-source", nil, "Extensions whose lines are no longer counted")
	bindFlagToConfig(v, persistent.Lookup("remove-source"), sourceRemoveKey)
	persistent.Bool("clear-source", false, "Empty the source list before adding extensions")
	bindFlagToConfig(v, persistent.Lookup("clear-source"), sourceClearKey)

	persistent.StringArrayVarP(&f.types, "type", "t", nil, "Group extensions under a type, as name=ext1,ext2 (repeatable)")
	persistent.StringSlice("remove-type", nil, "Type names to unregister")
	bindFlagToConfig(v, persistent.Lookup("remove-type"), typesRemoveKey)

	persistent.Bool("debug", false, "Enable debug logging")
	bindFlagToConfig(v, persistent.Lookup("debug"), debugKey)
	persistent.String("log-file", "", "Write logs to a rotated file instead of stderr")
	bindFlagToConfig(v, persistent.Lookup("log-file"), logFilenameKey)

	local := cmd.Flags()
	local.SortFlags = false

	local.StringP("output", "o", defaultOutput,
		fmt.Sprintf("Output format: auto or one of %v", report.Formats()))
	bindFlagToConfig(v, local.Lookup("output"), outputKey)
	local.StringVarP(&f.file, "file", "f", "", "Write the report to a file instead of stdout")
}

// bindFlagToConfig wires a cobra flag to a viper key so config and env values feed the flag.
func bindFlagToConfig(v *viper.Viper, flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))

		return
	}

	cobra.CheckErr(v.BindPFlag(key, flag))
}

// setup loads .env and the configuration file, then installs the logger.
func setup(cmd *cobra.Command, v *viper.Viper, f *flags) error {
	if err := loadDotEnv(); err != nil {
		return fmt.Errorf("loading .env: %w", err)
	}

	if err := readConfig(v, f.config); err != nil {
		return fmt.Errorf("reading configuration: %w", err)
	}

	configureLogger(v, cmd.ErrOrStderr())

	return nil
}

// buildOptions collects the scan options from the configuration store and flags.
func buildOptions(v *viper.Viper, f *flags, args []string) (projstat.Options, error) {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	types := map[string][]string{}
	for name, exts := range v.GetStringMapStringSlice(typesKey) {
		types[name] = normalizeExtensions(exts)
	}

	flagTypes, err := parseTypeFlags(f.types)
	if err != nil {
		return projstat.Options{}, err
	}

	maps.Copy(types, flagTypes)

	return projstat.Options{
		Path:         path,
		Profile:      v.GetString(profileKey),
		Ignore:       normalizeExtensions(v.GetStringSlice(ignoreAddKey)),
		RemoveIgnore: normalizeExtensions(v.GetStringSlice(ignoreRemoveKey)),
		ClearIgnore:  v.GetBool(ignoreClearKey),
		Source:       normalizeExtensions(v.GetStringSlice(sourceAddKey)),
		RemoveSource: normalizeExtensions(v.GetStringSlice(sourceRemoveKey)),
		ClearSource:  v.GetBool(sourceClearKey),
		Types:        types,
		RemoveTypes:  v.GetStringSlice(typesRemoveKey),
		Output:       v.GetString(outputKey),
		File:         f.file,
		Debug:        v.GetBool(debugKey),
	}, nil
}

// parseTypeFlags parses name=ext1,ext2 values. Later values for the same name win.
func parseTypeFlags(values []string) (map[string][]string, error) {
	types := make(map[string][]string, len(values))

	for _, value := range values {
		name, list, ok := strings.Cut(value, "=")
		name = strings.TrimSpace(name)

		if !ok || name == "" {
			return nil, fmt.Errorf("invalid type %q: expected name=ext1,ext2", value)
		}

		exts := normalizeExtensions(strings.Split(list, ","))
		if len(exts) == 0 {
			return nil, fmt.Errorf("invalid type %q: no extensions", value)
		}

		types[name] = exts
	}

	return types, nil
}

// normalizeExtensions trims whitespace and a leading dot and drops empty entries.
func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))

	for _, ext := range exts {
		ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
		if ext != "" {
			out = append(out, ext)
		}
	}

	return out
}
