package main

import (
	"errors"
	"io/fs"
	"os"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/viant/identscan/parser"
	"github.com/viant/identscan/report"
	"github.com/viant/identscan/scanner"
)

var (
	cfgFile       string
	debug         bool
	keepGoing     bool
	workers       int
	relativePaths bool
)

// rootCmd classifies every identifier occurrence in the given files or
// directories and streams the records to stdout.
var rootCmd = &cobra.Command{
	Use:   "identscan [flags] path...",
	Short: "Classify identifier occurrences in JavaScript sources",
	Long: `identscan walks JavaScript-family source files and classifies every
identifier occurrence as a binding definition or a reference, using
syntax-only context. Records stream to stdout, one per line as
tag,name,file,line:column,sourceLineText; unrecognized syntactic contexts
are diagnosed on stderr.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadConfig()
		if err != nil {
			return err
		}
		reporter := report.NewStreamReporter(cmd.OutOrStdout(), cmd.ErrOrStderr(), config.Debug)
		return scanner.New(config).ScanPaths(cmd.Context(), args, reporter)
	},
	SilenceUsage: true,
}

func loadConfig() (*scanner.Config, error) {
	config := scanner.DefaultConfig()
	if cfgFile != "" {
		loaded, err := scanner.LoadConfig(cfgFile)
		if err != nil {
			return nil, err
		}
		config = loaded
	}
	// flags override the file
	if debug {
		config.Debug = true
	}
	if keepGoing {
		config.KeepGoing = true
	}
	if workers > 0 {
		config.Workers = workers
	}
	if relativePaths {
		config.RelativePaths = true
	}
	return config, nil
}

func init() {
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "YAML config file")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "echo structural paths with every record")
	rootCmd.Flags().BoolVar(&keepGoing, "keep-going", false, "skip files that fail to parse instead of aborting")
	rootCmd.Flags().IntVar(&workers, "workers", 0, "concurrent file workers (0 = one per CPU)")
	rootCmd.Flags().BoolVar(&relativePaths, "relative-paths", false, "report paths relative to the detected project root")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode surfaces the OS-level status of a read failure; parse failures
// and everything else exit 1. The error text itself is printed by cobra.
func exitCode(err error) int {
	var syntaxErr *parser.SyntaxError
	if errors.As(err, &syntaxErr) {
		return 1
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		var errno syscall.Errno
		if errors.As(pathErr.Err, &errno) {
			return int(errno)
		}
	}
	return 1
}
