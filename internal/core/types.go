package core

// CheckKind identifies the kind of target a check verifies.
type CheckKind string

const (
	CheckKindBinary      CheckKind = "binary"
	CheckKindLibrary     CheckKind = "library"
	CheckKindPostQuantum CheckKind = "pqc"
)

// Outcome is the result state of a single check.
type Outcome string

const (
	// OutcomePresent means the target was found and, where applicable, loaded.
	OutcomePresent Outcome = "present"
	// OutcomeMissing means the target is absent.
	OutcomeMissing Outcome = "missing"
	// OutcomeBroken means the target exists but failed to load or run.
	OutcomeBroken Outcome = "broken"
)

// Target is one entry of the verification list: a display name plus the name
// used to look it up (command, importable module, or PQ module).
type Target struct {
	Kind   CheckKind `yaml:"-"`
	Name   string    `yaml:"name"`
	Lookup string    `yaml:"lookup"`
}

// LookupName returns Lookup, falling back to Name.
func (t Target) LookupName() string {
	if t.Lookup != "" {
		return t.Lookup
	}
	return t.Name
}

// CheckResult reports the outcome of one check.
type CheckResult struct {
	CheckID string
	Kind    CheckKind
	Name    string
	Lookup  string
	Outcome Outcome

	// Path is the resolved executable path for binary checks.
	Path string
	// Version is the reported library version ("Unknown" when the module has none).
	Version string
	// Detail carries the underlying failure text for broken targets.
	Detail string
	// Provider names the PQ backend that produced the result.
	Provider string
	// Mechanisms lists enumerated signature mechanisms for PQ checks.
	Mechanisms []string
}

// Passed reports whether the check contributes to the score.
func (r *CheckResult) Passed() bool {
	return r != nil && r.Outcome == OutcomePresent
}

// Tally accumulates passed and attempted checks.
type Tally struct {
	Score int
	Total int
}

// Record counts one executed check.
func (t *Tally) Record(result *CheckResult) {
	t.Total++
	if result.Passed() {
		t.Score++
	}
}

// Ready reports whether every attempted check passed.
func (t Tally) Ready() bool {
	return t.Score == t.Total
}
