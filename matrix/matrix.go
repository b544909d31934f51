package matrix

import (
	"errors"
	"math"
)

// Matrix3x3 表示 3x3 矩阵（行优先存储）
type Matrix3x3 [9]float64

// Vector3 表示 3 维向量
type Vector3 [3]float64

// ErrSingular is returned by Inverse for matrices without an inverse.
var ErrSingular = errors.New("matrix: singular 3x3 matrix")

// FromRows 按行构造矩阵
func FromRows(r0, r1, r2 Vector3) Matrix3x3 {
	return Matrix3x3{
		r0[0], r0[1], r0[2],
		r1[0], r1[1], r1[2],
		r2[0], r2[1], r2[2],
	}
}

// Row 返回第 i 行
func (m Matrix3x3) Row(i int) Vector3 {
	return Vector3{m[i*3], m[i*3+1], m[i*3+2]}
}

// Col 返回第 j 列
func (m Matrix3x3) Col(j int) Vector3 {
	return Vector3{m[j], m[3+j], m[6+j]}
}

// 矩阵乘法 (this * other)
func (m Matrix3x3) Multiply(other Matrix3x3) Matrix3x3 {
	var result Matrix3x3

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum := 0.0
			for k := 0; k < 3; k++ {
				sum += m[i*3+k] * other[k*3+j]
			}
			result[i*3+j] = sum
		}
	}

	return result
}

// 应用矩阵到向量 (matrix * vector)
func (m Matrix3x3) Apply(v Vector3) Vector3 {
	return Vector3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

// Determinant 计算行列式
func (m Matrix3x3) Determinant() float64 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// 计算矩阵的逆
func (m Matrix3x3) Inverse() (Matrix3x3, error) {
	var inv Matrix3x3

	det := m.Determinant()
	if math.Abs(det) < 1e-12 {
		return Identity3x3(), ErrSingular
	}

	invDet := 1.0 / det

	inv[0] = (m[4]*m[8] - m[5]*m[7]) * invDet
	inv[1] = (m[2]*m[7] - m[1]*m[8]) * invDet
	inv[2] = (m[1]*m[5] - m[2]*m[4]) * invDet
	inv[3] = (m[5]*m[6] - m[3]*m[8]) * invDet
	inv[4] = (m[0]*m[8] - m[2]*m[6]) * invDet
	inv[5] = (m[2]*m[3] - m[0]*m[5]) * invDet
	inv[6] = (m[3]*m[7] - m[4]*m[6]) * invDet
	inv[7] = (m[1]*m[6] - m[0]*m[7]) * invDet
	inv[8] = (m[0]*m[4] - m[1]*m[3]) * invDet

	return inv, nil
}

// 转置矩阵
func (m Matrix3x3) Transpose() Matrix3x3 {
	return Matrix3x3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// 返回 3x3 单位矩阵
func Identity3x3() Matrix3x3 {
	return Matrix3x3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// 从向量创建对角矩阵
func Diagonal3x3(v Vector3) Matrix3x3 {
	return Matrix3x3{
		v[0], 0, 0,
		0, v[1], 0,
		0, 0, v[2],
	}
}

// Scale 缩放矩阵的所有元素
func (m Matrix3x3) Scale(s float64) Matrix3x3 {
	var result Matrix3x3
	for i := 0; i < 9; i++ {
		result[i] = m[i] * s
	}
	return result
}

// MaxAbsDiff 返回两个矩阵逐元素差的最大绝对值
func (m Matrix3x3) MaxAbsDiff(other Matrix3x3) float64 {
	d := 0.0
	for i := range m {
		d = math.Max(d, math.Abs(m[i]-other[i]))
	}
	return d
}

// Scale 缩放向量
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{v[0] * s, v[1] * s, v[2] * s}
}

// Add 向量加法
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{v[0] + other[0], v[1] + other[1], v[2] + other[2]}
}

// Sub 向量减法
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{v[0] - other[0], v[1] - other[1], v[2] - other[2]}
}

// 逐分量乘法
func (v Vector3) ComponentMul(other Vector3) Vector3 {
	return Vector3{v[0] * other[0], v[1] * other[1], v[2] * other[2]}
}

// Sum 分量之和
func (v Vector3) Sum() float64 {
	return v[0] + v[1] + v[2]
}

// Norm 欧氏长度
func (v Vector3) Norm() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Map 对每个分量应用 f
func (v Vector3) Map(f func(float64) float64) Vector3 {
	return Vector3{f(v[0]), f(v[1]), f(v[2])}
}

// 将向量各分量限制在 [min, max] 范围内
func (v Vector3) Clamp(min, max float64) Vector3 {
	result := v
	for i := range result {
		if result[i] < min {
			result[i] = min
		} else if result[i] > max {
			result[i] = max
		}
	}
	return result
}
