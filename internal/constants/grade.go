package constants

import "fmt"

// Grade is an ordered rank in the graded system, 0 (lowest) through 12
// (highest). Grades 0-5 are kyu ranks, 6-12 are dan ranks.
type Grade int

const (
	GradeSixthKyu Grade = iota
	GradeFifthKyu
	GradeFourthKyu
	GradeThirdKyu
	GradeSecondKyu
	GradeFirstKyu
	GradeFirstDan
	GradeSecondDan
	GradeThirdDan
	GradeFourthDan
	GradeFifthDan
	GradeSixthDan
	GradeSeventhDan

	// MinGrade and MaxGrade bound the valid grade range
	MinGrade = GradeSixthKyu
	MaxGrade = GradeSeventhDan
)

var gradeLabels = map[Grade]string{
	GradeSixthKyu:   "6th kyu",
	GradeFifthKyu:   "5th kyu",
	GradeFourthKyu:  "4th kyu",
	GradeThirdKyu:   "3rd kyu",
	GradeSecondKyu:  "2nd kyu",
	GradeFirstKyu:   "1st kyu",
	GradeFirstDan:   "1st dan",
	GradeSecondDan:  "2nd dan",
	GradeThirdDan:   "3rd dan",
	GradeFourthDan:  "4th dan",
	GradeFifthDan:   "5th dan",
	GradeSixthDan:   "6th dan",
	GradeSeventhDan: "7th dan",
}

// Label returns the human-readable rank name
func (g Grade) Label() string {
	if label, exists := gradeLabels[g]; exists {
		return label
	}
	return fmt.Sprintf("grade %d", int(g))
}

// IsValid reports whether the grade is within the known range
func (g Grade) IsValid() bool {
	return g >= MinGrade && g <= MaxGrade
}

// IsKyu reports whether the grade is a kyu rank. Kyu ranks are eligible for
// ordinary exam advancement; dan ranks are not.
func (g Grade) IsKyu() bool {
	return g < GradeFirstDan
}

// Next returns the grade one step above, capped at MaxGrade
func (g Grade) Next() Grade {
	if g >= MaxGrade {
		return MaxGrade
	}
	return g + 1
}
