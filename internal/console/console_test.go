package console

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestPrinter(verbosity int) (*Printer, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return NewPrinter(&out, &errOut, verbosity), &out, &errOut
}

// ── verbosity gating ──────────────────────────────────────────────────────────

func TestPrinter_Quiet(t *testing.T) {
	p, out, errOut := newTestPrinter(0)

	p.Step("step")
	p.Done("done")
	p.Warn("warn")
	p.Info("info")

	assert.Empty(t, out.String())
	assert.Empty(t, errOut.String())
}

func TestPrinter_Normal(t *testing.T) {
	p, _, errOut := newTestPrinter(1)

	p.Step("hidden step")
	p.Done("created %s", "alice.testnet")
	p.Warn("already there")
	p.Info("note")

	assert.Equal(t, "✓ created alice.testnet\n! already there\nnote\n", errOut.String())
}

func TestPrinter_Verbose(t *testing.T) {
	p, _, errOut := newTestPrinter(2)

	p.Step("Looking up %s", "bob.near")

	assert.Equal(t, "» Looking up bob.near\n", errOut.String())
}

// ── unconditional output ──────────────────────────────────────────────────────

func TestPrinter_ResultAlwaysPrinted(t *testing.T) {
	p, out, errOut := newTestPrinter(0)

	p.Result("testnet accounts:")
	p.Result("  %s", "alice.testnet")

	assert.Equal(t, "testnet accounts:\n  alice.testnet\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestPrinter_Error(t *testing.T) {
	p, out, errOut := newTestPrinter(0)

	p.Error(errors.New("boom"))
	p.Error(nil)

	assert.Empty(t, out.String())
	assert.Equal(t, "error: boom\n", errOut.String())
}

func TestPrinter_Verbosity(t *testing.T) {
	p, _, _ := newTestPrinter(3)
	assert.Equal(t, 3, p.Verbosity())
}
