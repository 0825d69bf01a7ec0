package simulation

// TrajectoryMatrix is a dense (months+1) x paths grid of portfolio
// values. Row 0 holds the initial investment for every path; entry
// (t, p) is the value of path p after t months. Storage is row-major
// so a whole time step can be handed to the aggregator as one slice.
type TrajectoryMatrix struct {
	months int
	paths  int
	values []float64
}

// NewTrajectoryMatrix allocates a zeroed matrix for the given horizon.
func NewTrajectoryMatrix(months, paths int) *TrajectoryMatrix {
	return &TrajectoryMatrix{
		months: months,
		paths:  paths,
		values: make([]float64, (months+1)*paths),
	}
}

// Months returns the simulated horizon in months (rows-1).
func (m *TrajectoryMatrix) Months() int { return m.months }

// Paths returns the number of independent trajectories.
func (m *TrajectoryMatrix) Paths() int { return m.paths }

// Rows returns months+1, the number of time steps including step 0.
func (m *TrajectoryMatrix) Rows() int { return m.months + 1 }

// At returns the value of path p at time step t.
func (m *TrajectoryMatrix) At(t, p int) float64 {
	return m.values[t*m.paths+p]
}

// Set stores the value of path p at time step t.
func (m *TrajectoryMatrix) Set(t, p int, v float64) {
	m.values[t*m.paths+p] = v
}

// Row returns the cross-path slice at time step t. The slice aliases
// the matrix storage; callers that sort or mutate must copy first.
func (m *TrajectoryMatrix) Row(t int) []float64 {
	return m.values[t*m.paths : (t+1)*m.paths]
}

// FinalRow returns the terminal values of all paths.
func (m *TrajectoryMatrix) FinalRow() []float64 {
	return m.Row(m.months)
}

// TimePoints returns the x-axis in years: step i maps to i/12.
func (m *TrajectoryMatrix) TimePoints() []float64 {
	points := make([]float64, m.Rows())
	for i := range points {
		points[i] = float64(i) / 12.0
	}
	return points
}
