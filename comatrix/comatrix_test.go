package comatrix_test

import (
	"bytes"
	"math"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scimetric/comatrix"
	"github.com/katalvlaran/scimetric/interdisc"
)

var _ interdisc.Lookup = (*comatrix.Labeled)(nil)

const tol = 1e-12

func value(t *testing.T, l *comatrix.Labeled, a, b string) float64 {
	t.Helper()
	v, err := l.Value(a, b)
	require.NoError(t, err)

	return v
}

func TestBuild_Frequency(t *testing.T) {
	res, err := comatrix.Build([][]string{{"a", "b"}, {"a", "c"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, res.Categories)
	assert.Equal(t, []int{2, 1, 1}, res.Counts)
	assert.Equal(t, []float64{2, 1, 1}, res.Strength)

	f := res.Frequency
	assert.Equal(t, 1.0, value(t, f, "a", "b"))
	assert.Equal(t, 1.0, value(t, f, "b", "a"))
	assert.Equal(t, 1.0, value(t, f, "a", "c"))
	assert.Equal(t, 0.0, value(t, f, "b", "c"))
	for _, c := range res.Categories {
		assert.Equal(t, 0.0, value(t, f, c, c), "diagonal of %s", c)
	}
}

func TestBuild_DerivedMatrices(t *testing.T) {
	res, err := comatrix.Build([][]string{{"a", "b"}, {"a", "c"}})
	require.NoError(t, err)

	assert.InDelta(t, 1/math.Sqrt2, value(t, res.Ochiai, "a", "b"), tol)
	assert.Equal(t, 0.0, value(t, res.Ochiai, "b", "c"))
	assert.Equal(t, 0.0, value(t, res.Ochiai, "a", "a"))

	assert.InDelta(t, 0.5, value(t, res.Equivalence, "a", "c"), tol)
	assert.Equal(t, 1.0, value(t, res.Equivalence, "b", "b"))

	// rows: a=[0,1,1] b=[1,0,0] c=[1,0,0]
	assert.InDelta(t, 0.0, value(t, res.CosineSimilarity, "a", "b"), tol)
	assert.InDelta(t, 1.0, value(t, res.CosineSimilarity, "b", "c"), tol)
	assert.InDelta(t, 1.0, value(t, res.CosineSimilarity, "a", "a"), tol)

	assert.InDelta(t, 1.0, value(t, res.CosineDistance, "a", "c"), tol)
	assert.InDelta(t, 0.0, value(t, res.CosineDistance, "b", "c"), tol)
	assert.Equal(t, 0.0, value(t, res.CosineDistance, "a", "a"))
}

func TestBuild_Symmetric(t *testing.T) {
	docs := comatrix.ParseDocuments([]string{
		"x,y,z", "y,z", "z,w", "x,w,y", "q",
	})
	res, err := comatrix.Build(docs)
	require.NoError(t, err)

	for _, l := range []*comatrix.Labeled{res.Frequency, res.Ochiai, res.Equivalence, res.CosineSimilarity, res.CosineDistance} {
		for _, a := range res.Categories {
			for _, b := range res.Categories {
				assert.InDelta(t, value(t, l, a, b), value(t, l, b, a), tol)
			}
		}
	}
	for _, a := range res.Categories {
		for _, b := range res.Categories {
			d := value(t, res.CosineDistance, a, b)
			assert.GreaterOrEqual(t, d, 0.0)
			assert.LessOrEqual(t, d, 2.0)
		}
	}
}

func TestBuild_Filters(t *testing.T) {
	docs := [][]string{{"a", "b"}, {"a", "c"}, {"a", "b", "d"}}

	res, err := comatrix.Build(docs, comatrix.WithMinFrequency(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, res.Categories)
	assert.Equal(t, 2.0, value(t, res.Frequency, "a", "b"))

	res, err = comatrix.Build(docs, comatrix.WithAllowList("c", "d", "zz"))
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "d"}, res.Categories)
	assert.Equal(t, 0.0, value(t, res.CosineSimilarity, "c", "c"), "zero row")
	assert.Equal(t, 1.0, value(t, res.CosineDistance, "c", "d"))

	_, err = comatrix.Build(docs, comatrix.WithMinFrequency(4))
	require.ErrorIs(t, err, comatrix.ErrNoCategories)

	_, err = comatrix.Build(nil)
	require.ErrorIs(t, err, comatrix.ErrNoCategories)
}

func TestBuild_RepeatedTagInDocument(t *testing.T) {
	res, err := comatrix.Build([][]string{{"a", "a", "b"}})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, res.Counts)
	assert.Equal(t, 2.0, value(t, res.Frequency, "a", "b"))
	assert.Equal(t, 0.0, value(t, res.Frequency, "a", "a"))
}

func TestBuild_DeterministicOrder(t *testing.T) {
	r1, err := comatrix.Build([][]string{{"b", "a"}, {"c", "a"}})
	require.NoError(t, err)
	r2, err := comatrix.Build([][]string{{"a", "c"}, {"a", "b"}})
	require.NoError(t, err)
	assert.Equal(t, r1.Categories, r2.Categories)
	assert.Equal(t, r1.Frequency.Map(), r2.Frequency.Map())
}

func TestLabeled_Accessors(t *testing.T) {
	res, err := comatrix.Build([][]string{{"a", "b"}, {"a", "c"}})
	require.NoError(t, err)
	f := res.Frequency

	_, err = f.Value("a", "nope")
	require.ErrorIs(t, err, comatrix.ErrUnknownCategory)

	row, err := f.Row("a")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 1}, row)

	_, err = f.Row("nope")
	require.ErrorIs(t, err, comatrix.ErrUnknownCategory)

	assert.Equal(t, 3, f.Len())
	m := f.Matrix()
	require.NoError(t, m.Set(0, 1, 42))
	assert.Equal(t, 1.0, value(t, f, "a", "b"), "Matrix returns a copy")

	labels := f.Labels()
	labels[0] = "zzz"
	assert.Equal(t, []string{"a", "b", "c"}, f.Labels())
}

func TestParseDocuments(t *testing.T) {
	got := comatrix.ParseDocuments([]string{"a, b ,c", "", " ,x,,"})
	assert.Equal(t, [][]string{{"a", "b", "c"}, {}, {"x"}}, got)
}

func TestWriteCSVAndTSV(t *testing.T) {
	res, err := comatrix.Build([][]string{{"a", "b"}, {"a", "c"}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, comatrix.WriteCSV(&buf, res.Frequency))
	assert.Equal(t, "index,a,b,c\na,0,1,1\nb,1,0,0\nc,1,0,0\n", buf.String())

	buf.Reset()
	require.NoError(t, comatrix.WriteTSV(&buf, res.Frequency))
	assert.Equal(t, "*\ta\tb\tc\na\t0\t1\t1\nb\t1\t0\t0\nc\t1\t0\t0\n", buf.String())

	require.ErrorIs(t, comatrix.WriteCSV(&buf, nil), comatrix.ErrNilMatrix)
}

func TestLabeled_MarshalJSON(t *testing.T) {
	res, err := comatrix.Build([][]string{{"a", "b"}})
	require.NoError(t, err)

	out, err := json.Marshal(res.Frequency)
	require.NoError(t, err)
	assert.JSONEq(t, `{"labels":["a","b"],"values":[[0,1],[1,0]]}`, string(out))
}

func TestBuild_FeedsInterdisc(t *testing.T) {
	res, err := comatrix.Build([][]string{{"a", "b"}, {"a", "c"}})
	require.NoError(t, err)

	fields := []interdisc.Field{{Category: "a", Weight: 1}, {Category: "b", Weight: 1}, {Category: "c", Weight: 1}}
	d, err := interdisc.Disparity(fields, res.CosineSimilarity)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3.0, d, 1e-9)

	_, err = interdisc.Disparity([]interdisc.Field{{Category: "a"}, {Category: "x"}}, res.CosineSimilarity)
	require.ErrorIs(t, err, interdisc.ErrUnknownCategory)
	require.ErrorIs(t, err, comatrix.ErrUnknownCategory)
}

func TestLabeled_NilReceiver(t *testing.T) {
	var l *comatrix.Labeled

	_, err := l.Value("a", "b")
	require.ErrorIs(t, err, comatrix.ErrNilMatrix)
	_, err = l.Row("a")
	require.ErrorIs(t, err, comatrix.ErrNilMatrix)
	assert.Zero(t, l.Len())
	assert.Nil(t, l.Labels())

	// A typed nil satisfies interdisc.Lookup; it must fail, not panic.
	fields := []interdisc.Field{{Category: "a", Weight: 1}, {Category: "b", Weight: 1}}
	require.NotPanics(t, func() {
		_, err = interdisc.Disparity(fields, l)
	})
	require.ErrorIs(t, err, comatrix.ErrNilMatrix)
}

func TestWithMinFrequency_Panics(t *testing.T) {
	assert.Panics(t, func() { comatrix.WithMinFrequency(0) })
}

func TestReadGrid(t *testing.T) {
	res, err := comatrix.Build(comatrix.ParseDocuments([]string{"x,y,z", "y,z", "z,w"}))
	require.NoError(t, err)

	for name, write := range map[string]func(*bytes.Buffer, *comatrix.Labeled) error{
		"csv": func(b *bytes.Buffer, l *comatrix.Labeled) error { return comatrix.WriteCSV(b, l) },
		"tsv": func(b *bytes.Buffer, l *comatrix.Labeled) error { return comatrix.WriteTSV(b, l) },
	} {
		var buf bytes.Buffer
		require.NoError(t, write(&buf, res.Ochiai), name)
		got, err := comatrix.ReadGrid(&buf)
		require.NoError(t, err, name)
		assert.Equal(t, res.Ochiai.Labels(), got.Labels(), name)
		assert.Equal(t, res.Ochiai.Map(), got.Map(), name)
	}
}

func TestReadGrid_RowsInAnyOrder(t *testing.T) {
	got, err := comatrix.ReadGrid(bytes.NewBufferString("index,a,b\nb,0.5,1\na,1,0.5\n"))
	require.NoError(t, err)
	assert.Equal(t, 0.5, value(t, got, "a", "b"))
	assert.Equal(t, 1.0, value(t, got, "b", "b"))
}

func TestReadGrid_Errors(t *testing.T) {
	bad := map[string]string{
		"empty":        "",
		"header only":  "index,a,b\n",
		"not square":   "index,a,b\na,1,0\n",
		"unknown row":  "index,a\nz,1\n",
		"repeated row": "index,a,b\na,1,0\na,0,1\n",
		"repeated col": "index,a,a\na,1,0\na,0,1\n",
		"non-numeric":  "index,a\na,one\n",
		"ragged":       "index,a,b\na,1\nb,0,1\n",
		"asymmetric":   "index,a,b\na,1,0.2\nb,0.3,1\n",
	}
	for name, in := range bad {
		_, err := comatrix.ReadGrid(bytes.NewBufferString(in))
		require.ErrorIs(t, err, comatrix.ErrBadGrid, name)
	}
}
