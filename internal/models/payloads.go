package models

import "time"

// Trend classifies the change between consecutive preference snapshots.
type Trend string

const (
	TrendRising  Trend = "rising"
	TrendFalling Trend = "falling"
	TrendStable  Trend = "stable"
)

type CourseEnrollment struct {
	CourseID      string `json:"course_id,omitempty"`
	CourseName    string `json:"course_name"`
	Instructor    string `json:"instructor,omitempty"`
	Room          string `json:"room,omitempty"`
	EnrolledCount int    `json:"enrolled_count"`
}

type CoursePayload struct {
	TotalEnrollment   int                `json:"total_enrollment"`
	CourseEnrollments []CourseEnrollment `json:"course_enrollments"`
}

func (p CoursePayload) Headline() Headline {
	return Headline{
		"total_enrollment": p.TotalEnrollment,
		"course_count":     len(p.CourseEnrollments),
	}
}

type FacilityUsage struct {
	Name      string  `json:"name"`
	Capacity  int     `json:"capacity"`
	InUse     int     `json:"in_use"`
	UsageRate float64 `json:"usage_rate"`
}

type FacilityPayload struct {
	TotalInUse int             `json:"total_in_use"`
	Facilities []FacilityUsage `json:"facilities"`
}

func (p FacilityPayload) Headline() Headline {
	return Headline{
		"total_in_use":   p.TotalInUse,
		"facility_count": len(p.Facilities),
	}
}

type VisitorPayload struct {
	TotalVisitors  int `json:"total_visitors"`
	UniqueVisitors int `json:"unique_visitors"`
	PageViews      int `json:"page_views"`
}

func (p VisitorPayload) Headline() Headline {
	return Headline{
		"total_visitors":  p.TotalVisitors,
		"unique_visitors": p.UniqueVisitors,
		"page_views":      p.PageViews,
	}
}

type PageRank struct {
	Rank  int    `json:"rank"`
	Path  string `json:"path"`
	Title string `json:"title"`
	Views int    `json:"views"`
}

type PagePayload struct {
	TotalViews int        `json:"total_views"`
	Rankings   []PageRank `json:"rankings"`
}

func (p PagePayload) Headline() Headline {
	top := ""
	if len(p.Rankings) > 0 {
		top = p.Rankings[0].Title
	}
	return Headline{
		"total_views": p.TotalViews,
		"top_page":    top,
	}
}

type StudentPerformance struct {
	StudentName    string  `json:"student_name"`
	AttendanceRate float64 `json:"attendance_rate"`
	AverageScore   float64 `json:"average_score"`
}

type PerformancePayload struct {
	TotalStudents     int                  `json:"total_students"`
	AvgAttendanceRate float64              `json:"avg_attendance_rate"`
	Students          []StudentPerformance `json:"students"`
}

func (p PerformancePayload) Headline() Headline {
	return Headline{
		"total_students":      p.TotalStudents,
		"avg_attendance_rate": p.AvgAttendanceRate,
	}
}

type PagePreference struct {
	Name   string  `json:"name"`
	Visits float64 `json:"visits"`
}

type PreferencePayload struct {
	TotalVisits float64          `json:"total_visits"`
	Trend       Trend            `json:"trend"`
	Pages       []PagePreference `json:"pages"`
}

func (p PreferencePayload) Headline() Headline {
	return Headline{
		"total_visits": p.TotalVisits,
		"trend":        string(p.Trend),
	}
}

type ExamStatus struct {
	StudentName string `json:"student_name"`
	Submitted   bool   `json:"submitted"`
	Score       int    `json:"score,omitempty"`
}

type ExamPayload struct {
	ExamName       string       `json:"exam_name"`
	TotalStudents  int          `json:"total_students"`
	SubmissionRate float64      `json:"submission_rate"`
	ExamStatus     []ExamStatus `json:"exam_status"`
}

func (p ExamPayload) Headline() Headline {
	return Headline{
		"total_students":  p.TotalStudents,
		"submission_rate": p.SubmissionRate,
	}
}

type AssignmentStatus struct {
	StudentName string     `json:"student_name"`
	Submitted   bool       `json:"submitted"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
}

type AssignmentPayload struct {
	AssignmentName string             `json:"assignment_name"`
	TotalStudents  int                `json:"total_students"`
	SubmissionRate float64            `json:"submission_rate"`
	Statuses       []AssignmentStatus `json:"statuses"`
}

func (p AssignmentPayload) Headline() Headline {
	return Headline{
		"total_students":  p.TotalStudents,
		"submission_rate": p.SubmissionRate,
	}
}

type WeeklyScore struct {
	StudentName  string  `json:"student_name"`
	AverageScore float64 `json:"average_score"`
}

type WeeklyScorePayload struct {
	Week         string        `json:"week"`
	ClassAverage float64       `json:"class_average"`
	Scores       []WeeklyScore `json:"scores"`
}

func (p WeeklyScorePayload) Headline() Headline {
	return Headline{
		"week":          p.Week,
		"class_average": p.ClassAverage,
	}
}

type StudentRecord struct {
	StudentName    string  `json:"student_name"`
	Grade          int     `json:"grade"`
	AttendanceRate float64 `json:"attendance_rate"`
}

type StudentPayload struct {
	TotalStudents  int             `json:"total_students"`
	ActiveStudents int             `json:"active_students"`
	Students       []StudentRecord `json:"students"`
}

func (p StudentPayload) Headline() Headline {
	return Headline{
		"total_students":  p.TotalStudents,
		"active_students": p.ActiveStudents,
	}
}
