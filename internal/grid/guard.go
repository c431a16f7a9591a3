package grid

// DefaultCeiling is the default maximum number of cases a run may create.
const DefaultCeiling = 100000

// CheckCeiling fails with a *TooManyCasesError when total exceeds ceiling.
// A total equal to the ceiling is allowed.
func CheckCeiling(total, ceiling int) error {
	if total > ceiling {
		return &TooManyCasesError{Total: total, Ceiling: ceiling}
	}
	return nil
}
