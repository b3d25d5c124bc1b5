package service

// CalculateGrade maps a percentage to its letter band. Lower bounds are
// inclusive and out-of-range inputs are not clamped, so anything below
// 40 (including negatives) is an "F".
func CalculateGrade(percentage float64) string {
	switch {
	case percentage >= 90:
		return "A+"
	case percentage >= 80:
		return "A"
	case percentage >= 70:
		return "B+"
	case percentage >= 60:
		return "B"
	case percentage >= 50:
		return "C"
	case percentage >= 40:
		return "D"
	default:
		return "F"
	}
}
