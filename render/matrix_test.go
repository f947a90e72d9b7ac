// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"math"
	"testing"

	"github.com/gogpu/arm2d"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestMatrixTransformPoint(t *testing.T) {
	p := arm2d.Pt(2, 3)
	tests := []struct {
		name string
		m    Matrix
		want arm2d.Point
	}{
		{"identity", Identity(), arm2d.Pt(2, 3)},
		{"translate", Translate(10, -5), arm2d.Pt(12, -2)},
		{"scale", Scale(2, -1), arm2d.Pt(4, -3)},
		{"rotate 90", Rotate(math.Pi / 2), arm2d.Pt(-3, 2)},
		{"translate after rotate", Translate(1, 1).Multiply(Rotate(math.Pi)), arm2d.Pt(-1, -2)},
		{"rotate after translate", Rotate(math.Pi).Multiply(Translate(1, 1)), arm2d.Pt(-3, -4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.m.TransformPoint(p), approx); diff != "" {
				t.Errorf("TransformPoint mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMatrixTransformVectorIgnoresTranslation(t *testing.T) {
	m := Translate(100, 100).Multiply(Scale(2, 3))
	if got := m.TransformVector(arm2d.Pt(1, 1)); got != arm2d.Pt(2, 3) {
		t.Errorf("TransformVector = %v, want (2, 3)", got)
	}
}

func TestMatrixIsIdentity(t *testing.T) {
	if !Identity().IsIdentity() {
		t.Error("Identity().IsIdentity() = false")
	}
	if !Translate(0, 0).IsIdentity() {
		t.Error("Translate(0, 0).IsIdentity() = false")
	}
	if Translate(1, 0).IsIdentity() {
		t.Error("Translate(1, 0).IsIdentity() = true")
	}
	if (Matrix{}).IsIdentity() {
		t.Error("zero Matrix.IsIdentity() = true")
	}
}

func TestTransformable(t *testing.T) {
	tr := NewTransformable()
	if !tr.Transform().IsIdentity() {
		t.Fatalf("NewTransformable().Transform() = %+v, want identity", tr.Transform())
	}

	tr.SetOrigin(arm2d.Pt(1, 0))
	tr.SetScale(2, 2)
	tr.SetRotation(math.Pi / 2)
	tr.SetPosition(arm2d.Pt(10, 10))

	// The origin lands on the position.
	if diff := cmp.Diff(arm2d.Pt(10, 10), tr.Transform().TransformPoint(arm2d.Pt(1, 0)), approx); diff != "" {
		t.Errorf("origin mapping (-want +got):\n%s", diff)
	}
	// (2, 0) is 1 unit from the origin: scaled to 2, rotated to +Y.
	if diff := cmp.Diff(arm2d.Pt(10, 12), tr.Transform().TransformPoint(arm2d.Pt(2, 0)), approx); diff != "" {
		t.Errorf("point mapping (-want +got):\n%s", diff)
	}

	tr.Move(arm2d.Pt(-10, 0))
	tr.Turn(math.Pi / 2)
	if got := tr.Position(); got != arm2d.Pt(0, 10) {
		t.Errorf("Position() after Move = %v, want (0, 10)", got)
	}
	if math.Abs(tr.Rotation()-math.Pi) > 1e-12 {
		t.Errorf("Rotation() after Turn = %v, want π", tr.Rotation())
	}
	if got := tr.ScaleFactors(); got != arm2d.Pt(2, 2) {
		t.Errorf("ScaleFactors() = %v, want (2, 2)", got)
	}
	if got := tr.Origin(); got != arm2d.Pt(1, 0) {
		t.Errorf("Origin() = %v, want (1, 0)", got)
	}
}
