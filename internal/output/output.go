package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/labcheck/labcheck/internal/core"
)

const (
	ruleWidth = 60
	nameWidth = 15
	indent    = "            "

	// StatusReady is printed when every check passed.
	StatusReady = "STATUS: READY FOR LABS"
	// StatusIncomplete is printed when at least one check failed.
	StatusIncomplete = "STATUS: INCOMPLETE ENVIRONMENT"
)

var (
	colorPass    = text.Colors{text.FgHiGreen}
	colorFail    = text.Colors{text.FgHiRed}
	colorBanner  = text.Colors{text.FgHiCyan}
	colorSection = text.Colors{text.FgHiYellow}
)

// Options controls report rendering.
type Options struct {
	// Color enables ANSI styling.
	Color bool
	// Title is shown in the header banner.
	Title string
	// Submission names the assignment the evidence reminder refers to.
	Submission string
	// SetupScript is suggested when the environment is incomplete.
	SetupScript string
	// PostQuantumLabel names the PQ backend in its section heading.
	PostQuantumLabel string
}

// Reporter renders a verification run as human-readable text.
type Reporter struct {
	w    io.Writer
	opts Options
	err  error
}

// NewReporter writes to w using opts.
func NewReporter(w io.Writer, opts Options) *Reporter {
	if strings.TrimSpace(opts.Title) == "" {
		opts.Title = "Environment Verification Tool"
	}
	if strings.TrimSpace(opts.SetupScript) == "" {
		opts.SetupScript = "./setup_vm.sh"
	}
	return &Reporter{w: w, opts: opts}
}

// Err returns the first write error, if any.
func (r *Reporter) Err() error {
	return r.err
}

// Header prints the banner with host details.
func (r *Reporter) Header(info core.HostInfo) {
	host := info.Hostname
	platform := strings.TrimSpace(info.OS + " " + info.Release)

	var b strings.Builder
	b.WriteString(rule() + "\n")
	fmt.Fprintf(&b, "   %s\n", r.opts.Title)
	fmt.Fprintf(&b, "   Running on: %s (%s)\n", host, platform)
	fmt.Fprintf(&b, "   Go Ver:     %s\n", info.GoVersion)
	fmt.Fprintf(&b, "   Python Ver: %s\n", info.PythonVersion)
	b.WriteString(rule())

	r.println(r.paint(colorBanner, b.String()))
	r.println("")
}

// Section prints the heading that precedes a group of checks.
func (r *Reporter) Section(kind core.CheckKind) {
	var heading string
	switch kind {
	case core.CheckKindBinary:
		heading = "--- Checking System Binaries ---"
	case core.CheckKindLibrary:
		heading = "--- Checking Python Environment ---"
	case core.CheckKindPostQuantum:
		heading = "--- Checking Post-Quantum Crypto ---"
		if label := strings.TrimSpace(r.opts.PostQuantumLabel); label != "" {
			heading = fmt.Sprintf("--- Checking Post-Quantum Crypto (%s) ---", label)
		}
	default:
		heading = fmt.Sprintf("--- Checking %s ---", kind)
	}

	if kind != core.CheckKindBinary {
		r.println("")
	}
	r.println(r.paint(colorSection, heading))
}

// Result prints the line (or lines) for one check.
func (r *Reporter) Result(result *core.CheckResult) {
	if result == nil {
		return
	}
	switch result.Kind {
	case core.CheckKindBinary:
		r.binaryLine(result)
	case core.CheckKindLibrary:
		r.libraryLine(result)
	case core.CheckKindPostQuantum:
		r.postQuantumLines(result)
	default:
		r.println(fmt.Sprintf(" %s %s", r.installed(result.Passed()), result.Name))
	}
}

// Summary prints the tally and the ready or incomplete status.
func (r *Reporter) Summary(tally core.Tally) {
	r.println("")
	r.println(r.paint(colorBanner, rule()))
	r.println(fmt.Sprintf("SUMMARY: %d/%d Checks Passed", tally.Score, tally.Total))

	if tally.Ready() {
		r.println(r.paint(colorPass, StatusReady))
		r.println(fmt.Sprintf("Please take a screenshot of this window for your %s submission.", r.submission()))
	} else {
		r.println(r.paint(colorFail, StatusIncomplete))
		r.println(fmt.Sprintf("Please re-run %s or check error messages above.", r.opts.SetupScript))
	}
	r.println(r.paint(colorBanner, rule()))
}

func (r *Reporter) binaryLine(result *core.CheckResult) {
	path := result.Path
	if !result.Passed() || path == "" {
		path = core.NotFound
	}
	r.println(fmt.Sprintf(" %s System Tool: %s Path: %s", r.installed(result.Passed()), pad(result.Name), path))
}

func (r *Reporter) libraryLine(result *core.CheckResult) {
	var version string
	switch result.Outcome {
	case core.OutcomePresent:
		version = result.Version
	case core.OutcomeBroken:
		version = "Error: " + result.Detail
	default:
		version = core.NotFound
	}
	r.println(fmt.Sprintf(" %s Python Lib:  %s Ver: %s", r.installed(result.Passed()), pad(result.Name), version))
}

func (r *Reporter) postQuantumLines(result *core.CheckResult) {
	provider := result.Provider
	if provider == "" {
		provider = result.Name
	}

	switch result.Outcome {
	case core.OutcomePresent:
		r.println(fmt.Sprintf(" %s   %s is compiled and linked.", r.paint(colorPass, "[SUCCESS]"), provider))
		r.println(fmt.Sprintf("%sAvailable Quantum-Safe Algorithms: %d", indent, len(result.Mechanisms)))
	case core.OutcomeMissing:
		r.println(fmt.Sprintf(" %s   Could not import '%s'.", r.paint(colorFail, "[FAILURE]"), result.Lookup))
		r.println(fmt.Sprintf("%sDid you run %s? Is the venv active?", indent, strings.TrimPrefix(r.opts.SetupScript, "./")))
	default:
		r.println(fmt.Sprintf(" %s   %s error: %s", r.paint(colorFail, "[FAILURE]"), provider, result.Detail))
	}
}

func (r *Reporter) installed(ok bool) string {
	if ok {
		return r.paint(colorPass, "[INSTALLED]")
	}
	return r.paint(colorFail, "[MISSING]")
}

func (r *Reporter) submission() string {
	if s := strings.TrimSpace(r.opts.Submission); s != "" {
		return s
	}
	return "lab"
}

func (r *Reporter) paint(colors text.Colors, s string) string {
	if !r.opts.Color {
		return s
	}
	return colors.Sprint(s)
}

func (r *Reporter) println(s string) {
	if r.err != nil || r.w == nil {
		return
	}
	_, r.err = fmt.Fprintln(r.w, s)
}

func rule() string {
	return strings.Repeat("=", ruleWidth)
}

// pad left-aligns name in a fixed-width column.
func pad(name string) string {
	return text.AlignLeft.Apply(name, nameWidth)
}
