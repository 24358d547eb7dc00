package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GBuella/pi-arccot/internal/arccot"
	"github.com/GBuella/pi-arccot/internal/cliargs"
)

func execute(args []string) (stdout, stderr string, err error) {
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCmd_ListFormulas(t *testing.T) {
	stdout, _, err := execute([]string{"--list-formulas"})
	require.NoError(t, err)
	assert.Contains(t, stdout, "default")
	assert.Contains(t, stdout, "machin")
	assert.Contains(t, stdout, "euler")
	assert.Contains(t, stdout, "hutton")
}

func TestRootCmd_FormulaFlag(t *testing.T) {
	stdout, _, err := execute([]string{"--formula", "euler", "2"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(stdout), "3."))
}

func TestRootCmd_UnknownFormula(t *testing.T) {
	_, _, err := execute([]string{"--formula", "nonexistent", "2"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown formula")
}

func TestRootCmd_PositionalGrammar(t *testing.T) {
	stdout, _, err := execute([]string{"2", "4", "5", "7", "4", "68", "2", "117"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(stdout), "3."))
}

func TestRootCmd_InvalidArgsReportsUsage(t *testing.T) {
	_, stderr, err := execute([]string{"0", "4", "1", "7"})
	assert.Error(t, err)
	assert.Contains(t, stderr, "Usage")
}

func TestResolveArgs_FormulaRequiresExactlyOnePositionalArg(t *testing.T) {
	_, err := resolveArgs("euler", nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "requires exactly one positional argument")

	_, err = resolveArgs("euler", []string{"5", "6"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "requires exactly one positional argument")
}

func TestResolveArgs_UnknownFormulaName(t *testing.T) {
	_, err := resolveArgs("does-not-exist", []string{"5"})
	assert.ErrorContains(t, err, "unknown formula")
}

func TestResolveArgs_InvalidPrecisionForFormula(t *testing.T) {
	_, err := resolveArgs("euler", []string{"not-a-number"})
	assert.ErrorContains(t, err, "invalid precision")
}

func TestResolveArgs_NoFormulaDelegatesToCliargsParse(t *testing.T) {
	got, err := resolveArgs("", []string{"10", "4", "5", "7"})
	require.NoError(t, err)
	want, err := cliargs.Parse([]string{"10", "4", "5", "7"})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRun_Success(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)

	parsed := &cliargs.Parsed{Precision: 2, Scale: 4, Terms: []arccot.Term{{Mult: 1, Arg: 2}, {Mult: 1, Arg: 3}}}
	err := run(cmd, parsed)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out.String()), "3."))
}

func TestRun_BuildErrorReportsUsage(t *testing.T) {
	cmd := newRootCmd()
	var errOut bytes.Buffer
	cmd.SetErr(&errOut)

	parsed := &cliargs.Parsed{Precision: 2, Scale: 4, Terms: []arccot.Term{{Mult: 1, Arg: 0}}}
	err := run(cmd, parsed)
	assert.ErrorIs(t, err, arccot.ErrInvalidArg)
	assert.Contains(t, errOut.String(), "Usage")
}

func TestRun_RecoversPanicAsError(t *testing.T) {
	cmd := newRootCmd()

	// A lone negative-multiplier term with no positive counterpart
	// makes the combine-and-subtract step in Evaluator.Run try to
	// subtract a positive quantity from a zero accumulator, which
	// violates subtractInPlace's non-negative-result invariant and
	// panics. run must recover that and report it as an ordinary
	// error instead of crashing the process.
	parsed := &cliargs.Parsed{Precision: 2, Scale: 4, Terms: []arccot.Term{{Mult: -1, Arg: 2}}}
	err := run(cmd, parsed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "internal error")
}
