package internal

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name          string
		args          []string
		expected      *Config
		expectedError string
	}{
		{
			name: "short flags and groups",
			args: []string{"-t", "probin.template", "-o", "probin.f90", "-n", "probin",
				"--pa", "a/_parameters b/_parameters", "--pb", "c/_parameters"},
			expected: &Config{
				Template:     "probin.template",
				Output:       "probin.f90",
				NamelistName: "probin",
				ParamAFiles:  []string{"a/_parameters", "b/_parameters"},
				ParamBFiles:  []string{"c/_parameters"},
				LogLevel:     "info",
			},
		},
		{
			name: "long flags and attached values",
			args: []string{"--template=t", "-oout", "--namelist", "nl", "--pa=", "--log-level", "warn"},
			expected: &Config{
				Template:     "t",
				Output:       "out",
				NamelistName: "nl",
				ParamAFiles:  []string{},
				ParamBFiles:  []string{},
				LogLevel:     "warn",
			},
		},
		{
			name: "groups may be omitted",
			args: []string{"-t", "t", "-o", "o", "-n", "n"},
			expected: &Config{
				Template:     "t",
				Output:       "o",
				NamelistName: "n",
				ParamAFiles:  []string{},
				ParamBFiles:  []string{},
				LogLevel:     "info",
			},
		},
		{
			name:          "missing required flags",
			args:          []string{"-t", "t"},
			expectedError: "invalid calling sequence: missing -o, -n",
		},
		{
			name:          "no flags",
			args:          nil,
			expectedError: "invalid calling sequence: missing -t, -o, -n",
		},
		{
			name:          "unknown flag",
			args:          []string{"-t", "t", "-o", "o", "-n", "n", "--px", "a"},
			expectedError: "invalid calling sequence: unknown flag: --px",
		},
		{
			name:          "positional argument",
			args:          []string{"-t", "t", "-o", "o", "-n", "n", "extra"},
			expectedError: "invalid calling sequence: unexpected arguments extra",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseConfig(tt.args, io.Discard)
			if tt.expectedError != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidInvocation)
				assert.Equal(t, tt.expectedError, err.Error())
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}

func TestParseConfig_Help(t *testing.T) {
	var buf bytes.Buffer
	_, err := ParseConfig([]string{"--help"}, &buf)
	assert.True(t, errors.Is(err, pflag.ErrHelp))
	assert.Contains(t, buf.String(), "--pa")
}

func TestSplitFileList(t *testing.T) {
	assert.Equal(t, []string{}, SplitFileList(""))
	assert.Equal(t, []string{}, SplitFileList("   "))
	assert.Equal(t, []string{"a", "b"}, SplitFileList(" a   b "))
	assert.Equal(t, []string{"a", "b"}, SplitFileList(`"a b"`))
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err      error
		expected int
	}{
		{nil, ExitOK},
		{fmt.Errorf("x: %w", ErrMissingInput), ExitUsage},
		{fmt.Errorf("x: %w", ErrInvalidInvocation), ExitUsage},
		{fmt.Errorf("x: %w", ErrMalformedLine), ExitFailure},
		{fmt.Errorf("x: %w", ErrDuplicateName), ExitFailure},
		{&ExitError{Code: ExitFailure, Err: ErrMissingInput}, ExitFailure},
		{errors.New("disk full"), ExitFailure},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, ExitCode(tt.err), "%v", tt.err)
	}
}
