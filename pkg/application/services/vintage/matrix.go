package vintage

// capacityTolerance is the absolute threshold below which a capacity value is
// treated as zero. The waterfall subtraction leaves floating-point residue in
// fully retired cells; extraction filters against this constant.
const capacityTolerance = 1e-8

// CohortMatrix is the per-partition ledger of capacity by vintage year and
// observation year. Vintage rows span [yStart-life+1, yEnd], observation
// columns span [yStart-life+1, yEnd+life-1]. For a fixed vintage the non-zero
// observation years form one contiguous interval of at most life years,
// starting no earlier than the vintage year.
type CohortMatrix struct {
	life    int
	vMin    int // first vintage row
	vMax    int // last vintage row
	obsMin  int // first observation column
	obsMax  int // last observation column
	cells   [][]float64
}

// NewCohortMatrix allocates a zeroed matrix for the observed span
// [yStart, yEnd] and the given service life.
func NewCohortMatrix(yStart, yEnd, life int) *CohortMatrix {
	m := &CohortMatrix{
		life:   life,
		vMin:   yStart - life + 1,
		vMax:   yEnd,
		obsMin: yStart - life + 1,
		obsMax: yEnd + life - 1,
	}
	rows := m.vMax - m.vMin + 1
	cols := m.obsMax - m.obsMin + 1
	m.cells = make([][]float64, rows)
	for i := range m.cells {
		m.cells[i] = make([]float64, cols)
	}
	return m
}

// Life returns the service life the matrix was sized for
func (m *CohortMatrix) Life() int { return m.life }

// VintageRange returns the first and last vintage row
func (m *CohortMatrix) VintageRange() (int, int) { return m.vMin, m.vMax }

// Value returns the capacity of a vintage at an observation year, or zero if
// either coordinate lies outside the matrix bounds.
func (m *CohortMatrix) Value(vintage, obs int) float64 {
	if vintage < m.vMin || vintage > m.vMax || obs < m.obsMin || obs > m.obsMax {
		return 0
	}
	return m.cells[vintage-m.vMin][obs-m.obsMin]
}

// setSpan overwrites a vintage row's value over [from, to], clipped to the
// matrix column bounds. Spans are only ever set once and then truncated or
// reduced, never widened.
func (m *CohortMatrix) setSpan(vintage, from, to int, value float64) {
	if vintage < m.vMin || vintage > m.vMax {
		return
	}
	if from < m.obsMin {
		from = m.obsMin
	}
	if to > m.obsMax {
		to = m.obsMax
	}
	row := m.cells[vintage-m.vMin]
	for obs := from; obs <= to; obs++ {
		row[obs-m.obsMin] = value
	}
}

// SurvivingAt returns the total capacity alive at an observation year,
// summed over all vintages.
func (m *CohortMatrix) SurvivingAt(obs int) float64 {
	if obs < m.obsMin || obs > m.obsMax {
		return 0
	}
	col := obs - m.obsMin
	var total float64
	for _, row := range m.cells {
		total += row[col]
	}
	return total
}
