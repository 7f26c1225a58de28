package simplex

// Status is the terminal state of a Solve call.
type Status int

const (
	Optimal Status = iota
	Unbounded
	IterationLimit
)

func (s Status) String() string {
	switch s {
	case Optimal:
		return "optimal"
	case Unbounded:
		return "unbounded"
	case IterationLimit:
		return "iteration-limit"
	}
	return "unknown"
}

// Solution is the outcome of Solve.
//
// For Optimal, X is an optimal vertex and Objective its value in the model's
// own sense. For Unbounded, X is nil and Objective is +Inf (maximize) or -Inf
// (minimize). For IterationLimit, X and Objective describe the last feasible
// vertex reached.
type Solution struct {
	Status    Status
	X         []float64
	Objective float64

	// Basis holds the basic column of each constraint row; columns >= len(X)
	// are slacks.
	Basis      []int
	Iterations int
}
