package vectors_test

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/calebcase/sd59x18/internal/vectors"
	"github.com/calebcase/sd59x18/sd59x18"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestDefault(t *testing.T) {
	cases, err := vectors.Default()
	require.NoError(t, err)
	require.Len(t, cases, 88)

	groups := map[string]int{}
	kinds := map[sd59x18.Kind]int{}
	for _, c := range cases {
		groups[c.Group]++
		kinds[c.Kind]++
	}

	require.Equal(t, map[string]int{
		"zero":              6,
		"min":               5,
		"overflow":          5,
		"unsigned-overflow": 6,
		"same-sign":         32,
		"opposite-sign":     32,
		"min-result":        2,
	}, groups)

	require.Equal(t, 5, kinds[sd59x18.MulInputTooSmall])
	require.Equal(t, 5, kinds[sd59x18.MulOverflow])
	require.Equal(t, 6, kinds[sd59x18.MulDivFixedPointOverflow])

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	report, err := vectors.Run(context.Background(), cases, vectors.Options{Workers: 4, Logger: logger})
	require.NoError(t, err)

	if !report.OK() {
		t.Logf("failures: %s", spew.Sdump(report.Failures()))
	}

	require.True(t, report.OK())
	require.Equal(t, 88, report.Passed)
	require.Len(t, report.Results, 88)
	require.Equal(t, 88, strings.Count(buf.String(), "vector passed"))

	for i, c := range cases {
		require.Equal(t, c.Name, report.Results[i].Name)
	}
}

func TestLoad(t *testing.T) {
	type TC struct {
		name string
		yaml string
		want []vectors.Case
		err  error
	}

	tcs := []TC{
		{
			name: "success",
			yaml: `
vectors:
  - name: "PI * -E"
    group: opposite-sign
    x: "PI"
    y: "-E"
    want: "-8.539734222673567063"
  - name: "MIN * 1e-18"
    x: "MIN"
    y: "1e-18"
    kind: MulInputTooSmall
`,
			want: []vectors.Case{
				{
					Name:  "PI * -E",
					Group: "opposite-sign",
					X:     sd59x18.Pi,
					Y:     sd59x18.MustParse("-E"),
					Want:  sd59x18.MustParse("-8.539734222673567063"),
				},
				{
					Name: "MIN * 1e-18",
					X:    sd59x18.Min,
					Y:    sd59x18.MustParse("0.000000000000000001"),
					Kind: sd59x18.MulInputTooSmall,
				},
			},
		},
		{
			name: "empty",
			yaml: "vectors: []\n",
			err:  vectors.ErrInvalid,
		},
		{
			name: "no name",
			yaml: "vectors:\n  - x: \"1\"\n    y: \"1\"\n    want: \"1\"\n",
			err:  vectors.ErrInvalid,
		},
		{
			name: "no expectation",
			yaml: "vectors:\n  - name: a\n    x: \"1\"\n    y: \"1\"\n",
			err:  vectors.ErrInvalid,
		},
		{
			name: "both expectations",
			yaml: "vectors:\n  - name: a\n    x: \"1\"\n    y: \"1\"\n    want: \"1\"\n    kind: MulOverflow\n",
			err:  vectors.ErrInvalid,
		},
		{
			name: "bad operand",
			yaml: "vectors:\n  - name: a\n    x: \"1e-19\"\n    y: \"1\"\n    want: \"0\"\n",
			err:  sd59x18.ErrPrecision,
		},
		{
			name: "bad want",
			yaml: "vectors:\n  - name: a\n    x: \"1\"\n    y: \"1\"\n    want: \"one\"\n",
			err:  sd59x18.ErrSyntax,
		},
		{
			name: "bad kind",
			yaml: "vectors:\n  - name: a\n    x: \"1\"\n    y: \"1\"\n    kind: Overflow\n",
			err:  vectors.ErrInvalid,
		},
		{
			name: "unknown field",
			yaml: "vectors:\n  - name: a\n    x: \"1\"\n    y: \"1\"\n    wants: \"1\"\n",
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			cases, err := vectors.Load(strings.NewReader(tc.yaml))
			if tc.want == nil {
				require.Error(t, err)
				require.True(t, vectors.Error.Has(err))
				if tc.err != nil {
					require.ErrorIs(t, err, tc.err)
				}

				return
			}

			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, cases); diff != "" {
				t.Fatalf("cases mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "v.yaml")
	require.NoError(t, os.WriteFile(path, []byte("vectors:\n  - name: a\n    x: \"2\"\n    y: \"3\"\n    want: \"6\"\n"), 0o600))

	cases, err := vectors.LoadFile(path)
	require.NoError(t, err)
	require.Len(t, cases, 1)
	require.Equal(t, sd59x18.MustParse("6"), cases[0].Want)

	_, err = vectors.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunFailures(t *testing.T) {
	cases := []vectors.Case{
		{Name: "ok", X: sd59x18.MustParse("2"), Y: sd59x18.MustParse("3"), Want: sd59x18.MustParse("6")},
		{Name: "wrong value", X: sd59x18.Unit, Y: sd59x18.Unit, Want: sd59x18.MustParse("2")},
		{Name: "wrong kind", X: sd59x18.Max, Y: sd59x18.MustParse("2"), Kind: sd59x18.MulDivFixedPointOverflow},
		{Name: "missing kind", X: sd59x18.Min, Y: sd59x18.Unit, Want: sd59x18.Min},
	}

	report, err := vectors.Run(context.Background(), cases, vectors.Options{Workers: 2})
	require.NoError(t, err)

	want := &vectors.Report{
		Results: []vectors.Result{
			{Name: "ok", Expected: "6", Got: "6", Pass: true},
			{Name: "wrong value", Expected: "2", Got: "1", Reason: "mismatch"},
			{Name: "wrong kind", Expected: "MulDivFixedPointOverflow", Got: "MulOverflow", Reason: "mismatch"},
			{Name: "missing kind", Expected: sd59x18.Min.String(), Got: "MulInputTooSmall", Reason: "mismatch"},
		},
		Passed: 1,
		Failed: 3,
	}

	if diff := cmp.Diff(want, report); diff != "" {
		t.Fatalf("report mismatch (-want +got):\n%s", diff)
	}

	require.False(t, report.OK())
	require.Len(t, report.Failures(), 3)
}

func TestRunCanceled(t *testing.T) {
	cases, err := vectors.Default()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = vectors.Run(ctx, cases, vectors.Options{Workers: 1})
	require.ErrorIs(t, err, context.Canceled)
	require.True(t, vectors.Error.Has(err))
}

func TestEval(t *testing.T) {
	res := vectors.Eval(vectors.Case{
		Name: "sqrt max squared",
		X:    sd59x18.SqrtMax,
		Y:    sd59x18.SqrtMax,
		Want: sd59x18.MustParse("57896044618658097711785492504343953926634992332789893003858.35436857899615326"),
	})

	require.True(t, res.Pass, res.Reason)
	require.Equal(t, "57896044618658097711785492504343953926634992332789893003858.35436857899615326", res.Got)
}
