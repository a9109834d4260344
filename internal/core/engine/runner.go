package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/labcheck/labcheck/internal/core"
)

// Checker verifies a single target.
type Checker interface {
	Check(ctx context.Context, target core.Target) (*core.CheckResult, error)
	Kind() core.CheckKind
}

// Reporter receives run progress in order.
type Reporter interface {
	Header(info core.HostInfo)
	Section(kind core.CheckKind)
	Result(result *core.CheckResult)
	Summary(tally core.Tally)
}

// Run is the record of one verification pass.
type Run struct {
	ID         string
	Host       core.HostInfo
	Results    []*core.CheckResult
	Tally      core.Tally
	StartedAt  time.Time
	FinishedAt time.Time
}

// Runner executes the manifest strictly in order: binaries, libraries, then
// the post-quantum check. A failing check never stops the ones after it.
type Runner struct {
	Checkers map[core.CheckKind]Checker
	Reporter Reporter
	Host     func(ctx context.Context) core.HostInfo
	Clock    func() time.Time
}

// NewRunner indexes checkers by kind.
func NewRunner(reporter Reporter, checkers ...Checker) *Runner {
	index := make(map[core.CheckKind]Checker, len(checkers))
	for _, c := range checkers {
		if c != nil {
			index[c.Kind()] = c
		}
	}
	return &Runner{Checkers: index, Reporter: reporter}
}

// Run verifies every manifest target and reports the tally.
func (r *Runner) Run(ctx context.Context, manifest *core.Manifest) (*Run, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if manifest == nil {
		return nil, fmt.Errorf("manifest is required")
	}

	run := &Run{
		ID:        uuid.New().String(),
		StartedAt: r.now(),
	}
	if r.Host != nil {
		run.Host = r.Host(ctx)
	}
	if r.Reporter != nil {
		r.Reporter.Header(run.Host)
	}

	var section core.CheckKind
	for _, target := range manifest.Targets() {
		if target.Kind != section {
			section = target.Kind
			if r.Reporter != nil {
				r.Reporter.Section(section)
			}
		}

		result := r.check(ctx, target)
		run.Tally.Record(result)
		run.Results = append(run.Results, result)
		if r.Reporter != nil {
			r.Reporter.Result(result)
		}
	}

	run.FinishedAt = r.now()
	if r.Reporter != nil {
		r.Reporter.Summary(run.Tally)
	}
	return run, nil
}

func (r *Runner) check(ctx context.Context, target core.Target) *core.CheckResult {
	c := r.Checkers[target.Kind]
	if c == nil {
		return brokenResult(target, "checker not configured")
	}

	result, err := c.Check(ctx, target)
	if err != nil {
		return brokenResult(target, err.Error())
	}
	if result == nil {
		return brokenResult(target, "checker returned no result")
	}
	if result.CheckID == "" {
		result.CheckID = uuid.New().String()
	}
	return result
}

func brokenResult(target core.Target, detail string) *core.CheckResult {
	return &core.CheckResult{
		CheckID: uuid.New().String(),
		Kind:    target.Kind,
		Name:    target.Name,
		Lookup:  target.LookupName(),
		Outcome: core.OutcomeBroken,
		Detail:  detail,
	}
}

func (r *Runner) now() time.Time {
	if r.Clock != nil {
		return r.Clock()
	}
	return time.Now()
}
