package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/pflag"

	"github.com/sv3tluv/probingen/internal"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run performs one generator invocation and returns the process exit status.
func run(args []string, out io.Writer) int {
	cfg, err := internal.ParseConfig(args, out)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return internal.ExitOK
		}
		_, _ = fmt.Fprintf(out, "probingen: ERROR: %v\n", err)
		return internal.ExitCode(err)
	}

	log := internal.NewLogger(cfg.LogLevel, out)
	log.Info("creating output", "file", cfg.Output)

	if err = generate(cfg, log); err != nil {
		log.Error("generation failed", "error", err)
		return internal.ExitCode(err)
	}
	return internal.ExitOK
}

func generate(cfg *internal.Config, log hclog.Logger) error {
	loader := internal.NewLoader()
	parser := internal.NewParser(loader, log)
	generator := internal.NewGenerator(log)

	paramsA, err := parser.ParseGroup(cfg.ParamAFiles, nil)
	if err != nil {
		return abort(generator, cfg.Output, err)
	}
	paramsB, err := parser.ParseGroup(cfg.ParamBFiles, paramsA)
	if err != nil {
		return abort(generator, cfg.Output, err)
	}

	template, err := loader.ReadTemplateLines(cfg.Template)
	if err != nil {
		return err
	}

	return generator.Generate(template, &internal.TemplateData{
		NamelistName: cfg.NamelistName,
		ParamsA:      paramsA,
		ParamsB:      paramsB,
	}, cfg.Output)
}

// abort replaces the output with a stub after a parse failure. Missing input
// files are reported without touching the output.
func abort(generator *internal.Generator, output string, err error) error {
	if errors.Is(err, internal.ErrMissingInput) {
		return err
	}
	if stubErr := generator.WriteStub(output); stubErr != nil {
		return fmt.Errorf("%w (writing stub %s: %v)", err, output, stubErr)
	}
	return &internal.ExitError{Code: internal.ExitFailure, Err: err}
}
