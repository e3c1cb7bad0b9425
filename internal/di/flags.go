package di

import (
	"flag"
	"fmt"
	"io"

	"github.com/mikey/eml-analyzer/internal/config"
)

// CLIFlags contains all command line flags for the CLI application
type CLIFlags struct {
	InputDir    string
	OutputDir   string
	GeoProvider string
	ConfigFile  string
	Verbose     bool
	JSONLog     bool

	// names of the flags given on the command line
	set map[string]bool
}

// ParseFlags parses command line arguments (without the program name)
func ParseFlags(args []string, output io.Writer) (*CLIFlags, error) {
	flags := &CLIFlags{set: make(map[string]bool)}

	fs := flag.NewFlagSet("eml-analyzer", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&flags.InputDir, "input", "emails", "Directory containing .eml files to analyze")
	fs.StringVar(&flags.OutputDir, "output", "reports", "Directory to write reports to")
	fs.StringVar(&flags.GeoProvider, "geo-provider", "ipapi", "Geolocation provider (ipapi, maxmind, none)")
	fs.StringVar(&flags.ConfigFile, "config", "", "Path to config file")
	fs.BoolVar(&flags.Verbose, "verbose", false, "Enable verbose logging")
	fs.BoolVar(&flags.JSONLog, "json-log", false, "Output logs in JSON format")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	fs.Visit(func(f *flag.Flag) { flags.set[f.Name] = true })

	return flags, nil
}

// createConfigFromFlags loads the configuration and lets explicit flags override it
func createConfigFromFlags(flags *CLIFlags) (*config.Config, error) {
	cfg, err := config.New(flags.ConfigFile)
	if err != nil {
		return nil, err
	}

	v := cfg.GetViper()
	if flags.set["input"] {
		v.Set("input.dir", flags.InputDir)
	}
	if flags.set["output"] {
		v.Set("output.dir", flags.OutputDir)
	}
	if flags.set["geo-provider"] {
		v.Set("geo.provider", flags.GeoProvider)
	}

	return cfg, nil
}
