package models

import "fmt"

// StatType identifies one statistic family. The string form is used in
// storage keys and API paths, so values never change once persisted.
type StatType string

const (
	TypeCourses           StatType = "courses"
	TypeFacility          StatType = "facility"
	TypeVisitors          StatType = "visitors"
	TypeStudentPages      StatType = "student-pages"
	TypePerformance       StatType = "performance"
	TypePreference        StatType = "preference"
	TypeExam              StatType = "exam"
	TypeAssignment        StatType = "assignment"
	TypeCurrentAssignment StatType = "current-assignment"
	TypeWeeklyScores      StatType = "weekly-scores"
	TypeStudents          StatType = "students"
)

var allStatTypes = []StatType{
	TypeCourses,
	TypeFacility,
	TypeVisitors,
	TypeStudentPages,
	TypePerformance,
	TypePreference,
	TypeExam,
	TypeAssignment,
	TypeCurrentAssignment,
	TypeWeeklyScores,
	TypeStudents,
}

func AllStatTypes() []StatType {
	out := make([]StatType, len(allStatTypes))
	copy(out, allStatTypes)
	return out
}

func ParseStatType(s string) (StatType, error) {
	for _, t := range allStatTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown statistic type %q", s)
}
