package internal

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
)

// Config is the resolved command line of a single generator run.
type Config struct {
	Template     string
	Output       string
	NamelistName string
	ParamAFiles  []string
	ParamBFiles  []string
	LogLevel     string
}

// ParseConfig parses args (without the program name). Usage errors wrap
// ErrInvalidInvocation; pflag.ErrHelp is returned untouched.
func ParseConfig(args []string, out io.Writer) (*Config, error) {
	var (
		cfg    Config
		paramA string
		paramB string
	)

	fs := pflag.NewFlagSet("probingen", pflag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVarP(&cfg.Template, "template", "t", "", "template file to expand")
	fs.StringVarP(&cfg.Output, "output", "o", "", "generated file to write")
	fs.StringVarP(&cfg.NamelistName, "namelist", "n", "", "namelist group name")
	fs.StringVar(&paramA, "pa", "", "space-separated parameter files for group A")
	fs.StringVar(&paramB, "pb", "", "space-separated parameter files for group B")
	fs.StringVar(&cfg.LogLevel, "log-level", "info", "log level (trace, debug, info, warn, error, off)")

	if err := fs.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidInvocation, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected arguments %s", ErrInvalidInvocation, strings.Join(fs.Args(), " "))
	}

	cfg.ParamAFiles = SplitFileList(paramA)
	cfg.ParamBFiles = SplitFileList(paramB)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var missing []string
	if c.Template == "" {
		missing = append(missing, "-t")
	}
	if c.Output == "" {
		missing = append(missing, "-o")
	}
	if c.NamelistName == "" {
		missing = append(missing, "-n")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidInvocation, strings.Join(missing, ", "))
	}
	return nil
}

// SplitFileList splits a space-separated list of paths. An empty list is valid.
func SplitFileList(s string) []string {
	return strings.Fields(strings.Trim(s, `"'`))
}
