package math

import (
	"math"
	"testing"
)

func TestMat4Identity(t *testing.T) {
	m := Identity()
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			want := float32(0)
			if row == col {
				want = 1
			}
			if m.At(row, col) != want {
				t.Errorf("Identity[%d][%d] = %v, want %v", row, col, m.At(row, col), want)
			}
		}
	}

	a := Translate(1, 2, 3).Mul(RotateX(0.5))
	if a.Mul(Identity()) != a || Identity().Mul(a) != a {
		t.Error("multiplying by identity should not change the matrix")
	}
}

func TestMat4RowMajorLayout(t *testing.T) {
	m := Translate(5, 6, 7)
	if m[3] != 5 || m[7] != 6 || m[11] != 7 {
		t.Errorf("translation should live in the last column, got %v", m)
	}
	if m.At(0, 3) != 5 || m.Row(2) != (Vec4{0, 0, 1, 7}) {
		t.Error("At/Row disagree with the row-major layout")
	}

	var s Mat4
	s.Set(1, 2, 9)
	if s[6] != 9 {
		t.Errorf("Set(1, 2) wrote %v", s)
	}

	arr := m.Array()
	for i := range arr {
		if arr[i] != m[i] {
			t.Fatalf("Array()[%d] = %v, want %v", i, arr[i], m[i])
		}
	}
}

func TestMat4Transpose(t *testing.T) {
	m := Mat4{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}
	tr := m.Transposed()
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if tr.At(row, col) != m.At(col, row) {
				t.Errorf("Transposed[%d][%d] = %v, want %v", row, col, tr.At(row, col), m.At(col, row))
			}
		}
	}

	tr.Transpose()
	if tr != m {
		t.Error("transposing twice should restore the matrix")
	}
}

func TestMat4Mul(t *testing.T) {
	// translate after scale: the point is scaled first
	m := Translate(1, 0, 0).Mul(Scale(2, 2, 2))
	if got := m.MulVec4(Vec4{1, 1, 1, 1}); got != (Vec4{3, 2, 2, 1}) {
		t.Errorf("T*S*p = %+v, want (3,2,2,1)", got)
	}

	m = Scale(2, 2, 2).Mul(Translate(1, 0, 0))
	if got := m.MulVec4(Vec4{1, 1, 1, 1}); got != (Vec4{4, 2, 2, 1}) {
		t.Errorf("S*T*p = %+v, want (4,2,2,1)", got)
	}

	// directions ignore translation
	if got := Translate(9, 9, 9).MulVec4(Vec4{1, 0, 0, 0}); got != (Vec4{1, 0, 0, 0}) {
		t.Errorf("direction moved to %+v", got)
	}
}

func TestMat4Inverse(t *testing.T) {
	m := RotateX(0.3).Mul(Translate(1, 2, 3)).Mul(Scale(2, 3, 4)).Mul(RotateZ(-1.1))

	inv, det := m.Inverse()
	if !m.Mul(inv).ApproxEqual(Identity(), 0.0001) {
		t.Errorf("M * M^-1 = %v, want identity", m.Mul(inv))
	}
	if !inv.Mul(m).ApproxEqual(Identity(), 0.0001) {
		t.Errorf("M^-1 * M = %v, want identity", inv.Mul(m))
	}
	if math.Abs(float64(det-24)) > 0.001 {
		t.Errorf("det = %v, want 24", det)
	}
	if math.Abs(float64(det-m.Determinant())) > 0.001 {
		t.Errorf("returned det %v disagrees with Determinant() %v", det, m.Determinant())
	}
}

func TestMat4InverseGeneral(t *testing.T) {
	m := Mat4{
		2, 0, 1, 3,
		1, 1, 0, 2,
		0, 3, 1, 1,
		1, 0, 2, 1,
	}
	inv, det := m.Inverse()
	if math.Abs(float64(det-m.Determinant())) > 0.001 {
		t.Errorf("det %v, Determinant %v", det, m.Determinant())
	}
	if !m.Mul(inv).ApproxEqual(Identity(), 0.0001) {
		t.Errorf("M * M^-1 = %v", m.Mul(inv))
	}
}

func TestMat4InverseSingular(t *testing.T) {
	inv, det := Scale(0, 1, 1).Inverse()
	if det != 0 {
		t.Fatalf("det = %v, want 0", det)
	}
	bad := false
	for _, v := range inv {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			bad = true
		}
	}
	if !bad {
		t.Errorf("singular inverse should contain Inf or NaN, got %v", inv)
	}
}

func TestMat4OrthogonalInverseIsTranspose(t *testing.T) {
	r := RotateY(0.7).Mul(RotateX(-0.2))
	inv, _ := r.Inverse()
	if !inv.ApproxEqual(r.Transposed(), 0.0001) {
		t.Errorf("inverse %v, transposed %v", inv, r.Transposed())
	}
}

func TestDeterminant(t *testing.T) {
	if d := Identity().Determinant(); d != 1 {
		t.Errorf("det(I) = %v", d)
	}
	if d := Scale(2, 3, 4).Determinant(); d != 24 {
		t.Errorf("det(S) = %v", d)
	}
	if d := RotateZ(1.3).Determinant(); math.Abs(float64(d-1)) > 0.0001 {
		t.Errorf("det(R) = %v", d)
	}
}
