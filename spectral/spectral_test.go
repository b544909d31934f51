package spectral

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weaming/colorchecker-go/matrix"
)

func mustNew(t *testing.T, wl, v []float64) Function {
	t.Helper()
	f, err := New(wl, v)
	require.NoError(t, err)
	return f
}

func TestShapeCount(t *testing.T) {
	cases := []struct {
		shape Shape
		count int
	}{
		{Shape{380, 780, 5}, 81},
		{Shape{380, 780, 10}, 41},
		{Shape{380, 780, 1}, 401},
		{Shape{360, 830, 1}, 471},
		{Shape{400, 700, 0.1}, 3001},
		{Shape{400, 407, 3}, 3}, // 400, 403, 406
		{Shape{0.1, 0.7, 0.2}, 4},
	}
	for _, c := range cases {
		require.NoError(t, c.shape.Validate())
		assert.Equal(t, c.count, c.shape.Count(), c.shape.String())
		wl := c.shape.Wavelengths()
		assert.Len(t, wl, c.count)
		assert.Equal(t, c.shape.Start, wl[0])
		assert.LessOrEqual(t, wl[len(wl)-1], c.shape.End+1e-9)
	}
}

func TestShapeValidate(t *testing.T) {
	bad := []Shape{
		{380, 780, 0},
		{380, 780, -5},
		{780, 380, 5},
		{380, 380, 5},
		{math.NaN(), 780, 5},
		{380, 780, math.Inf(1)},
		{380, 780, 1e-320},
		{0, 1e9, 1e-3},
	}
	for _, s := range bad {
		err := s.Validate()
		var de *DomainError
		assert.True(t, errors.As(err, &de), "%v should be rejected", s)
	}

	for _, s := range []Shape{{380, 780, 1e-320}, {0, 1e9, 1e-3}} {
		var de *DomainError
		require.ErrorAs(t, s.Validate(), &de)
		assert.Equal(t, "interval", de.Param)
	}

	fine := Shape{Start: 0, End: MaxSamples - 1, Interval: 1}
	require.NoError(t, fine.Validate())
	assert.Equal(t, MaxSamples, fine.Count())
	assert.Error(t, Shape{Start: 0, End: MaxSamples, Interval: 1}.Validate())
}

func TestNewValidation(t *testing.T) {
	_, err := New(nil, nil)
	assert.Error(t, err)

	_, err = New([]float64{400, 410}, []float64{1})
	assert.Error(t, err)

	_, err = New([]float64{400, 400}, []float64{1, 2})
	var de *DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "wavelength", de.Param)

	_, err = New([]float64{410, 400}, []float64{1, 2})
	assert.Error(t, err)

	_, err = New([]float64{400, 410}, []float64{1, math.NaN()})
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "value", de.Param)
}

func TestNewCopiesInput(t *testing.T) {
	wl := []float64{400, 500}
	v := []float64{1, 2}
	f := mustNew(t, wl, v)
	v[0] = 99
	wl[0] = 0
	assert.Equal(t, 1.0, f.Value(400))

	got := f.Values()
	got[1] = 42
	assert.Equal(t, 2.0, f.Value(500))
}

func TestValueInterpolation(t *testing.T) {
	f := mustNew(t, []float64{400, 410, 430}, []float64{0, 1, 3})

	assert.Equal(t, 0.0, f.Value(400))
	assert.Equal(t, 1.0, f.Value(410))
	assert.InDelta(t, 0.5, f.Value(405), 1e-12)
	assert.InDelta(t, 2.0, f.Value(420), 1e-12)

	// flat extrapolation on both sides
	assert.Equal(t, 0.0, f.Value(380))
	assert.Equal(t, 3.0, f.Value(780))
}

func TestResampleGrid(t *testing.T) {
	f := mustNew(t, []float64{390, 400, 500, 700}, []float64{0.2, 0.4, 0.8, 0.1})
	for _, s := range []Shape{{380, 780, 5}, {380, 780, 10}, {400, 700, 1}, {300, 830, 7}} {
		r, err := f.Resample(s)
		require.NoError(t, err)
		assert.Equal(t, s.Count(), r.Len())
		assert.Equal(t, s.Wavelengths(), r.Wavelengths())
		assert.True(t, r.OnShape(s))
	}
}

func TestResampleIdempotent(t *testing.T) {
	f := mustNew(t, []float64{393, 421.5, 500, 688}, []float64{0.05, 0.3, 0.9, 0.2})
	for _, s := range []Shape{{380, 780, 5}, {380, 780, 0.5}, {400, 700, 3}} {
		once, err := f.Resample(s)
		require.NoError(t, err)
		twice, err := once.Resample(s)
		require.NoError(t, err)
		assert.True(t, once.Equal(twice), s.String())
	}
}

func TestResampleEdges(t *testing.T) {
	f := mustNew(t, []float64{450, 460}, []float64{0.25, 0.75})
	r, err := f.Resample(Shape{440, 470, 5})
	require.NoError(t, err)
	want := []float64{0.25, 0.25, 0.25, 0.5, 0.75, 0.75, 0.75}
	if diff := cmp.Diff(want, r.Values(), cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("resampled values mismatch (-want +got):\n%s", diff)
	}

	// the original is untouched
	assert.Equal(t, []float64{450, 460}, f.Wavelengths())

	_, err = f.Resample(Shape{470, 440, 5})
	var de *DomainError
	assert.ErrorAs(t, err, &de)

	_, err = Function{}.Resample(DefaultShape)
	assert.ErrorAs(t, err, &de)
}

func TestSingleSample(t *testing.T) {
	f := mustNew(t, []float64{550}, []float64{0.7})
	r, err := f.Resample(Shape{500, 600, 50})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.7, 0.7, 0.7}, r.Values())
}

func TestFromMapAndConstant(t *testing.T) {
	f, err := FromMap(map[float64]float64{500: 2, 400: 1, 600: 3})
	require.NoError(t, err)
	assert.Equal(t, []float64{400, 500, 600}, f.Wavelengths())
	assert.Equal(t, []float64{1, 2, 3}, f.Values())

	c, err := Constant(Shape{400, 420, 10}, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1}, c.Values())

	g, err := Generate(Shape{400, 420, 10}, func(wl float64) float64 { return wl / 100 })
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 4.1, 4.2}, g.Values())
	assert.Equal(t, []float64{8, 8.2, 8.4}, g.Scale(2).Values())
}

func TestMultiFunction(t *testing.T) {
	m, err := NewMulti([3]string{"x", "y", "z"},
		[]float64{400, 500},
		[]matrix.Vector3{{1, 2, 3}, {3, 4, 5}})
	require.NoError(t, err)
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, matrix.Vector3{2, 3, 4}, m.Value(450))

	r, err := m.Resample(Shape{400, 500, 25})
	require.NoError(t, err)
	assert.Equal(t, 5, r.Len())
	wl, v := r.Sample(1)
	assert.Equal(t, 425.0, wl)
	assert.Equal(t, matrix.Vector3{1.5, 2.5, 3.5}, v)

	again, err := r.Resample(Shape{400, 500, 25})
	require.NoError(t, err)
	assert.True(t, r.Equal(again))

	_, err = NewMulti([3]string{}, []float64{400}, nil)
	assert.Error(t, err)

	c, err := NewMultiFromChannels([3]string{"x", "y", "z"},
		[]float64{400, 500}, []float64{1, 3}, []float64{2, 4}, []float64{3, 5})
	require.NoError(t, err)
	assert.True(t, c.Equal(m))
}
