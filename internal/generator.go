package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
)

const header = `! DO NOT EDIT THIS FILE!!!
!
! This file is automatically generated by probingen at
! compile-time.
!
! To add a runtime parameter, do so by editing the appropriate _parameters
! file.

`

// StubContent is written in place of the output when the parameter files
// cannot be parsed, so that the downstream compile fails.
const StubContent = "There was an error parsing the parameter files"

// dummyVar keeps the declarations and namelist valid Fortran when there are
// no parameters at all.
const dummyVar = "a_dummy_var"

type typeSpec struct {
	declare func(name, value string) string
	read    func(name string) []string
}

func declaration(kind string) func(name, value string) string {
	return func(name, value string) string {
		return fmt.Sprintf("%s, save, public :: %s = %s", kind, name, value)
	}
}

func readDirect(name string) []string {
	return []string{fmt.Sprintf("   call get_command_argument(farg, value = %s)", name)}
}

func readParsed(name string) []string {
	return []string{
		"   call get_command_argument(farg, value = fname)",
		fmt.Sprintf("   read(fname, *) %s", name),
	}
}

var typeSpecs = map[ParamType]typeSpec{
	TypeReal:      {declare: declaration("real (kind=dp_t)"), read: readParsed},
	TypeCharacter: {declare: declaration("character (len=256)"), read: readDirect},
	TypeInteger:   {declare: declaration("integer"), read: readParsed},
	TypeLogical:   {declare: declaration("logical"), read: readParsed},
}

type TemplateData struct {
	NamelistName string
	ParamsA      ParamList
	ParamsB      ParamList
}

// Params returns group A followed by group B.
func (d *TemplateData) Params() ParamList {
	out := make(ParamList, 0, len(d.ParamsA)+len(d.ParamsB))
	out = append(out, d.ParamsA...)
	return append(out, d.ParamsB...)
}

type Generator struct {
	log hclog.Logger
}

func NewGenerator(log hclog.Logger) *Generator {
	return &Generator{log: log}
}

// Generate expands template and writes the result to output.
func (g *Generator) Generate(template []string, data *TemplateData, output string) error {
	code := g.GenerateFile(template, data)
	if err := g.WriteFile(output, code); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	return nil
}

// GenerateFile renders the header followed by the expanded template.
func (g *Generator) GenerateFile(template []string, data *TemplateData) string {
	var buf strings.Builder
	buf.WriteString(header)
	for _, line := range template {
		directive, ok := ParseDirective(line)
		if !ok {
			buf.WriteString(line)
			continue
		}
		if !directive.Keyword.IsValid() {
			g.log.Debug("dropping unknown directive", "keyword", string(directive.Keyword))
			continue
		}
		for _, out := range g.Expand(directive, data) {
			buf.WriteString(out)
			buf.WriteByte('\n')
		}
	}
	return buf.String()
}

// Expand returns the lines, without terminators, that replace directive.
// Unknown keywords expand to nothing.
func (g *Generator) Expand(directive *Directive, data *TemplateData) []string {
	indent := directive.Prefix()

	var lines []string
	emit := func(format string, args ...interface{}) {
		lines = append(lines, indent+fmt.Sprintf(format, args...))
	}

	switch directive.Keyword {
	case KeywordDeclarationsA:
		lines = g.declarations(indent, data.ParamsA)
		if len(data.ParamsA) == 0 {
			emit("integer, save, public :: %s = 0", dummyVar)
		}

	case KeywordDeclarationsB:
		lines = g.declarations(indent, data.ParamsB)
		if len(data.ParamsB) == 0 {
			lines = append(lines, "")
		}

	case KeywordNamelist:
		params := data.Params()
		for _, p := range params {
			emit("namelist /%s/ %s", data.NamelistName, p.Name)
		}
		if len(params) == 0 {
			emit("namelist /%s/ %s", data.NamelistName, dummyVar)
		}

	case KeywordDefaults:
		for _, p := range data.Params() {
			emit("%s = %s", p.Name, p.Value)
		}

	case KeywordCommandLine:
		for _, p := range data.Params() {
			emit("case ('--%s')", p.Name)
			emit("   farg = farg + 1")
			read := readParsed
			if spec, ok := typeSpecs[p.Type]; ok {
				read = spec.read
			}
			for _, stmt := range read(p.Name) {
				emit("%s", stmt)
			}
			lines = append(lines, "")
		}
	}

	return lines
}

func (g *Generator) declarations(indent string, params ParamList) []string {
	var lines []string
	for _, p := range params {
		spec, ok := typeSpecs[p.Type]
		if !ok {
			g.log.Warn("invalid datatype for variable", "name", p.Name, "type", string(p.Type))
			continue
		}
		lines = append(lines, indent+spec.declare(p.Name, p.Value))
	}
	return lines
}

// WriteFile replaces filename with content. The data goes to a temporary file
// in the same directory first, so readers never see a partial file.
func (g *Generator) WriteFile(filename, content string) error {
	tmp, err := os.CreateTemp(filepath.Dir(filename), "."+filepath.Base(filename)+".tmp*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.WriteString(content); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Chmod(0644); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), filename)
}

// WriteStub replaces output with StubContent.
func (g *Generator) WriteStub(output string) error {
	return g.WriteFile(output, StubContent)
}
