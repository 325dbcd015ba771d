// Copyright 2017 The Gosketch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sketch

// HorizontalLine drives a line's rise to zero.
// loss = ½(y_end - y_start)²
type HorizontalLine struct {
	line *Line
}

// NewHorizontalLine returns a new horizontal-line constraint
func NewHorizontalLine(line *Line) *HorizontalLine {
	return &HorizontalLine{line: line}
}

// Line returns the constrained line
func (o *HorizontalLine) Line() *Line { return o.line }

// References returns the line
func (o *HorizontalLine) References() []Parametric {
	return []Parametric{o.line}
}

// LossValue returns ½(y_end - y_start)²
func (o *HorizontalLine) LossValue() float64 {
	dy := o.line.End().Y() - o.line.Start().Y()
	return 0.5 * dy * dy
}

// UpdateGradient accumulates dy·[0 1] through the line's fan-out
func (o *HorizontalLine) UpdateGradient() {
	dy := o.line.End().Y() - o.line.Start().Y()
	o.line.AddToGradient(lineRow([]float64{0, dy}))
}

// Kind returns the constraint tag
func (o *HorizontalLine) Kind() string { return KindHorizontalLine }

// VerticalLine drives a line's run to zero.
// loss = ½(x_end - x_start)²
type VerticalLine struct {
	line *Line
}

// NewVerticalLine returns a new vertical-line constraint
func NewVerticalLine(line *Line) *VerticalLine {
	return &VerticalLine{line: line}
}

// Line returns the constrained line
func (o *VerticalLine) Line() *Line { return o.line }

// References returns the line
func (o *VerticalLine) References() []Parametric {
	return []Parametric{o.line}
}

// LossValue returns ½(x_end - x_start)²
func (o *VerticalLine) LossValue() float64 {
	dx := o.line.End().X() - o.line.Start().X()
	return 0.5 * dx * dx
}

// UpdateGradient accumulates dx·[1 0] through the line's fan-out
func (o *VerticalLine) UpdateGradient() {
	dx := o.line.End().X() - o.line.Start().X()
	o.line.AddToGradient(lineRow([]float64{dx, 0}))
}

// Kind returns the constraint tag
func (o *VerticalLine) Kind() string { return KindVerticalLine }

// EqualLength drives two lines to equal length.
// loss = ½(‖L₁‖ - ‖L₂‖)²
type EqualLength struct {
	line1 *Line
	line2 *Line
}

// NewEqualLength returns a new equal-length constraint
func NewEqualLength(line1, line2 *Line) *EqualLength {
	return &EqualLength{line1: line1, line2: line2}
}

// Line1 returns the first line
func (o *EqualLength) Line1() *Line { return o.line1 }

// Line2 returns the second line
func (o *EqualLength) Line2() *Line { return o.line2 }

// References returns both lines
func (o *EqualLength) References() []Parametric {
	return []Parametric{o.line1, o.line2}
}

// LossValue returns ½(‖L₁‖ - ‖L₂‖)²
func (o *EqualLength) LossValue() float64 {
	diff := o.line1.Length() - o.line2.Length()
	return 0.5 * diff * diff
}

// UpdateGradient accumulates the chain-rule gradient onto both lines.
// Skips the step when either line is near zero length
func (o *EqualLength) UpdateGradient() {
	d1, d2 := o.line1.Dir(), o.line2.Dir()
	n1, n2 := d1.Norm(), d2.Norm()
	if n1 < geomEps || n2 < geomEps {
		return
	}
	diff := n1 - n2
	o.line1.AddToGradient(lineRow([]float64{diff * d1.X / n1, diff * d1.Y / n1}))
	o.line2.AddToGradient(lineRow([]float64{-diff * d2.X / n2, -diff * d2.Y / n2}))
}

// Kind returns the constraint tag
func (o *EqualLength) Kind() string { return KindEqualLength }

// normalizedDirRow maps a 1×2 row acting on the unit direction û back to
// a row acting on d, through ∂û/∂d = (I - d dᵀ/‖d‖²)/‖d‖
func normalizedDirRow(row []float64, d Vec, n float64) []float64 {
	nsq := n * n
	m00 := (1 - d.X*d.X/nsq) / n
	m01 := -d.X * d.Y / nsq / n
	m11 := (1 - d.Y*d.Y/nsq) / n
	return []float64{
		row[0]*m00 + row[1]*m01,
		row[0]*m01 + row[1]*m11,
	}
}

// ParallelLines drives the cross product of two unit directions to zero.
// loss = ½(û₁ × û₂)²
type ParallelLines struct {
	line1 *Line
	line2 *Line
}

// NewParallelLines returns a new parallel-lines constraint
func NewParallelLines(line1, line2 *Line) *ParallelLines {
	return &ParallelLines{line1: line1, line2: line2}
}

// Line1 returns the first line
func (o *ParallelLines) Line1() *Line { return o.line1 }

// Line2 returns the second line
func (o *ParallelLines) Line2() *Line { return o.line2 }

// References returns both lines
func (o *ParallelLines) References() []Parametric {
	return []Parametric{o.line1, o.line2}
}

// LossValue returns ½(û₁ × û₂)², or 0 for degenerate lines
func (o *ParallelLines) LossValue() float64 {
	d1, d2 := o.line1.Dir(), o.line2.Dir()
	n1, n2 := d1.Norm(), d2.Norm()
	if n1 < geomEps || n2 < geomEps {
		return 0
	}
	cross := d1.Scale(1 / n1).Cross(d2.Scale(1 / n2))
	return 0.5 * cross * cross
}

// UpdateGradient accumulates the chain-rule gradient onto both lines.
// Skips the step when either line is near zero length
func (o *ParallelLines) UpdateGradient() {
	d1, d2 := o.line1.Dir(), o.line2.Dir()
	n1, n2 := d1.Norm(), d2.Norm()
	if n1 < geomEps || n2 < geomEps {
		return
	}
	u1, u2 := d1.Scale(1/n1), d2.Scale(1/n2)
	cross := u1.Cross(u2)

	// ∂cross/∂û₁ = [û₂y -û₂x], ∂cross/∂û₂ = [-û₁y û₁x]
	row1 := normalizedDirRow([]float64{cross * u2.Y, -cross * u2.X}, d1, n1)
	row2 := normalizedDirRow([]float64{-cross * u1.Y, cross * u1.X}, d2, n2)
	o.line1.AddToGradient(lineRow(row1))
	o.line2.AddToGradient(lineRow(row2))
}

// Kind returns the constraint tag
func (o *ParallelLines) Kind() string { return KindParallelLines }

// PerpendicularLines drives the dot product of two unit directions to
// zero. loss = ½(û₁ ⋅ û₂)²
type PerpendicularLines struct {
	line1 *Line
	line2 *Line
}

// NewPerpendicularLines returns a new perpendicular-lines constraint
func NewPerpendicularLines(line1, line2 *Line) *PerpendicularLines {
	return &PerpendicularLines{line1: line1, line2: line2}
}

// Line1 returns the first line
func (o *PerpendicularLines) Line1() *Line { return o.line1 }

// Line2 returns the second line
func (o *PerpendicularLines) Line2() *Line { return o.line2 }

// References returns both lines
func (o *PerpendicularLines) References() []Parametric {
	return []Parametric{o.line1, o.line2}
}

// LossValue returns ½(û₁ ⋅ û₂)², or 0 for degenerate lines
func (o *PerpendicularLines) LossValue() float64 {
	d1, d2 := o.line1.Dir(), o.line2.Dir()
	n1, n2 := d1.Norm(), d2.Norm()
	if n1 < geomEps || n2 < geomEps {
		return 0
	}
	dot := d1.Scale(1 / n1).Dot(d2.Scale(1 / n2))
	return 0.5 * dot * dot
}

// UpdateGradient accumulates the chain-rule gradient onto both lines.
// Skips the step when either line is near zero length
func (o *PerpendicularLines) UpdateGradient() {
	d1, d2 := o.line1.Dir(), o.line2.Dir()
	n1, n2 := d1.Norm(), d2.Norm()
	if n1 < geomEps || n2 < geomEps {
		return
	}
	u1, u2 := d1.Scale(1/n1), d2.Scale(1/n2)
	dot := u1.Dot(u2)

	row1 := normalizedDirRow([]float64{dot * u2.X, dot * u2.Y}, d1, n1)
	row2 := normalizedDirRow([]float64{dot * u1.X, dot * u1.Y}, d2, n2)
	o.line1.AddToGradient(lineRow(row1))
	o.line2.AddToGradient(lineRow(row2))
}

// Kind returns the constraint tag
func (o *PerpendicularLines) Kind() string { return KindPerpendicularLines }
