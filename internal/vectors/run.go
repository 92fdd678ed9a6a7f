package vectors

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/calebcase/sd59x18/sd59x18"
)

// Options configure Run.
type Options struct {
	// Workers bounds how many vectors are evaluated at once. Zero means
	// GOMAXPROCS.
	Workers int

	// Logger receives per-vector outcomes. Nil discards them.
	Logger *slog.Logger
}

// Outcome is the result of one multiplication.
type Outcome struct {
	Value sd59x18.SD59x18
	Kind  sd59x18.Kind
}

func (o Outcome) String() string {
	if o.Kind != 0 {
		return o.Kind.String()
	}

	return o.Value.String()
}

// Result is the evaluation of a single Case.
type Result struct {
	Name     string `json:"name"`
	Group    string `json:"group,omitempty"`
	Expected string `json:"expected"`
	Got      string `json:"got"`
	Pass     bool   `json:"pass"`

	// Reason explains a failure.
	Reason string `json:"reason,omitempty"`
}

// Report is the evaluation of a set of cases. Results are in input order.
type Report struct {
	Results []Result `json:"results"`
	Passed  int      `json:"passed"`
	Failed  int      `json:"failed"`
}

// OK reports whether every vector passed.
func (r *Report) OK() bool {
	return r.Failed == 0
}

// Failures returns the failed results.
func (r *Report) Failures() (failed []Result) {
	for _, res := range r.Results {
		if !res.Pass {
			failed = append(failed, res)
		}
	}

	return failed
}

// Run evaluates cases concurrently. It returns early with the context's
// error if ctx is canceled.
func Run(ctx context.Context, cases []Case, opts Options) (*Report, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	results := make([]Result, len(cases))

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i, c := range cases {
		if gctx.Err() != nil {
			break
		}

		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			res := Eval(c)
			if res.Pass {
				logger.Debug("vector passed", "name", c.Name, "got", res.Got)
			} else {
				logger.Warn("vector failed", "name", c.Name, "expected", res.Expected, "got", res.Got, "reason", res.Reason)
			}

			results[i] = res

			return nil
		})
	}

	err := eg.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		return nil, Error.Wrap(err)
	}

	report := &Report{Results: results}
	for _, res := range results {
		if res.Pass {
			report.Passed++
		} else {
			report.Failed++
		}
	}

	return report, nil
}

// Eval runs c through both entry points in both operand orders.
func Eval(c Case) Result {
	res := Result{
		Name:     c.Name,
		Group:    c.Group,
		Expected: c.Expected(),
	}

	type attempt struct {
		name string
		fn   func() (sd59x18.SD59x18, error)
	}

	attempts := []attempt{
		{"raw", func() (sd59x18.SD59x18, error) {
			z, err := sd59x18.Mul(c.X.Unwrap(), c.Y.Unwrap())
			return sd59x18.Wrap(z), err
		}},
		{"typed", func() (sd59x18.SD59x18, error) {
			return c.X.Mul(c.Y)
		}},
		{"raw commuted", func() (sd59x18.SD59x18, error) {
			z, err := sd59x18.Mul(c.Y.Unwrap(), c.X.Unwrap())
			return sd59x18.Wrap(z), err
		}},
		{"typed commuted", func() (sd59x18.SD59x18, error) {
			return c.Y.Mul(c.X)
		}},
	}

	var first Outcome
	for i, a := range attempts {
		z, err := a.fn()

		o := Outcome{Value: z}
		if err != nil {
			k, ok := sd59x18.KindOf(err)
			if !ok {
				res.Got = err.Error()
				res.Reason = fmt.Sprintf("%s: unexpected error", a.name)
				return res
			}

			o = Outcome{Kind: k}
		}

		if i == 0 {
			first = o
			res.Got = o.String()
			continue
		}

		if o != first {
			res.Reason = fmt.Sprintf("%s: got %s, raw got %s", a.name, o, first)
			return res
		}
	}

	want := Outcome{Value: c.Want, Kind: c.Kind}
	if c.Kind != 0 {
		want.Value = sd59x18.SD59x18{}
	}

	if first != want {
		res.Reason = "mismatch"
		return res
	}

	res.Pass = true

	return res
}
