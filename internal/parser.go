package internal

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
)

type ParamType string

const (
	TypeReal      ParamType = "real"
	TypeCharacter ParamType = "character"
	TypeInteger   ParamType = "integer"
	TypeLogical   ParamType = "logical"
)

func (t ParamType) IsValid() bool {
	_, ok := typeSpecs[t]
	return ok
}

// Param is one runtime parameter definition.
type Param struct {
	Name  string
	Type  ParamType
	Value string
}

type ParamList []Param

// Index returns the position of the parameter called name, or -1.
func (l ParamList) Index(name string) int {
	for i, p := range l {
		if p.Name == name {
			return i
		}
	}
	return -1
}

func (l ParamList) Contains(name string) bool {
	return l.Index(name) >= 0
}

type Parser struct {
	loader *Loader
	log    hclog.Logger
}

func NewParser(loader *Loader, log hclog.Logger) *Parser {
	return &Parser{loader: loader, log: log}
}

// ParseGroup parses files in order into one list. Names are checked against
// the group itself and against other.
func (p *Parser) ParseGroup(files []string, other ParamList) (ParamList, error) {
	var params ParamList
	for _, file := range files {
		var err error
		params, err = p.ParseFile(file, params, other)
		if err != nil {
			return params, err
		}
	}
	return params, nil
}

// ParseFile appends the parameters defined in path to params. On error the
// records parsed before the failing line are still returned.
func (p *Parser) ParseFile(path string, params, other ParamList) (ParamList, error) {
	lines, err := p.loader.ReadParamLines(path)
	if err != nil {
		return params, err
	}

	p.log.Info("working on parameter file", "file", path)

	for i, line := range lines {
		param, ok, err := ParseLine(line)
		if err != nil {
			return params, fmt.Errorf("%s:%d: %w", path, i+1, err)
		}
		if !ok {
			continue
		}
		if params.Contains(param.Name) || other.Contains(param.Name) {
			return params, fmt.Errorf("%s:%d: %w: %s", path, i+1, ErrDuplicateName, param.Name)
		}
		params = append(params, param)
	}
	return params, nil
}

// ParseLine parses a single definition line. ok is false for lines that are
// blank once the comment is removed.
func ParseLine(line string) (param Param, ok bool, err error) {
	line, _, _ = strings.Cut(line, "#")
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Param{}, false, nil
	}
	if len(fields) != 3 {
		return Param{}, false, fmt.Errorf("%w: %q", ErrMalformedLine, strings.TrimSpace(line))
	}
	return Param{
		Name:  fields[0],
		Type:  ParamType(fields[1]),
		Value: fields[2],
	}, true, nil
}
