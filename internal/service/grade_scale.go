package service

type gradeBand struct {
	min    float64
	grade  string
	remark string
}

var gradeScale = []gradeBand{
	{min: 90, grade: "A1", remark: "Distinction"},
	{min: 75, grade: "B2", remark: "Very Good"},
	{min: 60, grade: "C4", remark: "Good"},
	{min: 50, grade: "C6", remark: "Pass"},
}

// GradeFor maps a subject total to its letter grade and remark.
func GradeFor(total float64) (grade, remark string) {
	for _, band := range gradeScale {
		if total >= band.min {
			return band.grade, band.remark
		}
	}
	return "F9", "Still Learning"
}
