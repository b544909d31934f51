package matrix

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyRowMajor(t *testing.T) {
	m := Matrix3x3{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}
	assert.Equal(t, Vector3{14, 32, 50}, m.Apply(Vector3{1, 2, 3}))
	assert.Equal(t, Vector3{4, 5, 6}, m.Row(1))
	assert.Equal(t, Vector3{2, 5, 8}, m.Col(1))
	assert.Equal(t, m, FromRows(m.Row(0), m.Row(1), m.Row(2)))
}

func TestMultiplyIdentity(t *testing.T) {
	m := Matrix3x3{
		3.2404542, -1.5371385, -0.4985314,
		-0.9692660, 1.8760108, 0.0415560,
		0.0556434, -0.2040259, 1.0572252,
	}
	assert.Equal(t, m, m.Multiply(Identity3x3()))
	assert.Equal(t, m, Identity3x3().Multiply(m))
	assert.Equal(t, m, m.Transpose().Transpose())
}

func TestInverse(t *testing.T) {
	m := Matrix3x3{
		0.4124564, 0.3575761, 0.1804375,
		0.2126729, 0.7151522, 0.0721750,
		0.0193339, 0.1191920, 0.9503041,
	}
	inv, err := m.Inverse()
	require.NoError(t, err)
	tolassert.EqualTol(t, 0, m.Multiply(inv).MaxAbsDiff(Identity3x3()), 1e-12)

	// 已发布的 XYZ → sRGB 矩阵与求逆结果只在舍入误差范围内不同
	published := Matrix3x3{
		3.2404542, -1.5371385, -0.4985314,
		-0.9692660, 1.8760108, 0.0415560,
		0.0556434, -0.2040259, 1.0572252,
	}
	tolassert.EqualTol(t, 0, inv.MaxAbsDiff(published), 1e-5)
}

func TestInverseSingular(t *testing.T) {
	_, err := Matrix3x3{1, 2, 3, 2, 4, 6, 0, 0, 1}.Inverse()
	assert.ErrorIs(t, err, ErrSingular)
}

func TestVectorOps(t *testing.T) {
	v := Vector3{1, -2, 3}
	assert.Equal(t, Vector3{2, -4, 6}, v.Scale(2))
	assert.Equal(t, Vector3{2, 0, 6}, v.Add(Vector3{1, 2, 3}))
	assert.Equal(t, Vector3{0, -4, 0}, v.Sub(Vector3{1, 2, 3}))
	assert.Equal(t, Vector3{1, -4, 9}, v.ComponentMul(Vector3{1, 2, 3}))
	assert.Equal(t, 2.0, v.Sum())
	assert.Equal(t, Vector3{0, 0, 1}, v.Clamp(0, 1))
	assert.Equal(t, Vector3{2, -1, 4}, v.Map(func(x float64) float64 { return x + 1 }))
	tolassert.EqualTol(t, 5.0, Vector3{3, 4, 0}.Norm(), 1e-12)
	assert.Equal(t, Matrix3x3{1, 0, 0, 0, -2, 0, 0, 0, 3}, Diagonal3x3(v))
}
