package model

// Amount is a fixed-length integer vector representing a multi-dimensional
// demand or capacity (weight, volume, pallet count, ...). All Amounts
// belonging to the same Problem share the same dimension; operations below
// panic on a dimension mismatch rather than returning an error, because a
// mismatch can only arise from a programming bug once construction-time
// validation (ErrDimensionMismatch) has passed.
//
// Amount is a value type: callers pass it by value and get independent
// backing slices from Add/Sub (never aliasing the receiver).
type Amount struct {
	v []int64
}

// NewAmount constructs an Amount from the given per-dimension values.
func NewAmount(values ...int64) Amount {
	cp := make([]int64, len(values))
	copy(cp, values)
	return Amount{v: cp}
}

// ZeroAmount returns the additive identity of dimension dims.
func ZeroAmount(dims int) Amount {
	return Amount{v: make([]int64, dims)}
}

// Dims reports the number of dimensions.
func (a Amount) Dims() int { return len(a.v) }

// At returns the value at dimension i.
func (a Amount) At(i int) int64 { return a.v[i] }

// Slice returns a defensive copy of the underlying values.
func (a Amount) Slice() []int64 {
	cp := make([]int64, len(a.v))
	copy(cp, a.v)
	return cp
}

func mustSameDims(a, b Amount) {
	if len(a.v) != len(b.v) {
		panic(ErrDimensionMismatch)
	}
}

// Add returns the pointwise sum a+b.
func (a Amount) Add(b Amount) Amount {
	mustSameDims(a, b)
	out := make([]int64, len(a.v))
	for i := range a.v {
		out[i] = a.v[i] + b.v[i]
	}
	return Amount{v: out}
}

// Sub returns the pointwise difference a-b.
func (a Amount) Sub(b Amount) Amount {
	mustSameDims(a, b)
	out := make([]int64, len(a.v))
	for i := range a.v {
		out[i] = a.v[i] - b.v[i]
	}
	return Amount{v: out}
}

// LessEq reports whether a[i] <= b[i] for every dimension i (pointwise, the
// partial order used for capacity feasibility checks).
func (a Amount) LessEq(b Amount) bool {
	mustSameDims(a, b)
	for i := range a.v {
		if a.v[i] > b.v[i] {
			return false
		}
	}
	return true
}

// Less reports whether a is lexicographically less than b, dimension 0
// taken as the most significant.
func (a Amount) Less(b Amount) bool {
	mustSameDims(a, b)
	for i := range a.v {
		if a.v[i] != b.v[i] {
			return a.v[i] < b.v[i]
		}
	}
	return false
}

// IsZero reports whether every dimension is zero.
func (a Amount) IsZero() bool {
	for _, x := range a.v {
		if x != 0 {
			return false
		}
	}
	return true
}

// Max returns the pointwise maximum of a and b.
func (a Amount) Max(b Amount) Amount {
	mustSameDims(a, b)
	out := make([]int64, len(a.v))
	for i := range a.v {
		if a.v[i] >= b.v[i] {
			out[i] = a.v[i]
		} else {
			out[i] = b.v[i]
		}
	}
	return Amount{v: out}
}
