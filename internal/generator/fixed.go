package generator

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"dashd/internal/models"
)

// The fixed-catalog family: every generator below walks a hardcoded
// entity list and assigns bounded random magnitudes. Bounds are part of
// the contract and asserted by tests.

type CourseGenerator struct {
	rng *rand.Rand
}

func NewCourseGenerator(rng *rand.Rand) *CourseGenerator {
	return &CourseGenerator{rng: rng}
}

func (g *CourseGenerator) Type() models.StatType { return models.TypeCourses }

// Generate assigns each catalog course an enrollment in [15, 60].
func (g *CourseGenerator) Generate(now time.Time, _ *models.Snapshot) models.Snapshot {
	enrollments := make([]models.CourseEnrollment, 0, len(courseCatalog))
	total := 0
	for _, c := range courseCatalog {
		n := uniformInt(g.rng, 15, 60)
		total += n
		enrollments = append(enrollments, models.CourseEnrollment{
			CourseID:      c.id,
			CourseName:    c.name,
			Instructor:    c.instructor,
			Room:          c.room,
			EnrolledCount: n,
		})
	}
	return newSnapshot(now, models.CoursePayload{
		TotalEnrollment:   total,
		CourseEnrollments: enrollments,
	})
}

type FacilityGenerator struct {
	rng *rand.Rand
}

func NewFacilityGenerator(rng *rand.Rand) *FacilityGenerator {
	return &FacilityGenerator{rng: rng}
}

func (g *FacilityGenerator) Type() models.StatType { return models.TypeFacility }

// Generate assigns each facility an occupancy in [0, capacity], weighted
// by time of day so night readings trend low.
func (g *FacilityGenerator) Generate(now time.Time, _ *models.Snapshot) models.Snapshot {
	weight := timeOfDayWeight(now.Hour())
	facilities := make([]models.FacilityUsage, 0, len(facilityCatalog))
	total := 0
	for _, f := range facilityCatalog {
		inUse := int(float64(uniformInt(g.rng, 0, f.capacity)) * weight)
		if inUse > f.capacity {
			inUse = f.capacity
		}
		total += inUse
		facilities = append(facilities, models.FacilityUsage{
			Name:      f.name,
			Capacity:  f.capacity,
			InUse:     inUse,
			UsageRate: round1(float64(inUse) / float64(f.capacity) * 100),
		})
	}
	return newSnapshot(now, models.FacilityPayload{
		TotalInUse: total,
		Facilities: facilities,
	})
}

type VisitorGenerator struct {
	rng *rand.Rand
}

func NewVisitorGenerator(rng *rand.Rand) *VisitorGenerator {
	return &VisitorGenerator{rng: rng}
}

func (g *VisitorGenerator) Type() models.StatType { return models.TypeVisitors }

// Generate draws a visitor total in [100, 1200] scaled by the time-of-day
// weight, so the final value stays in [30, 1200]. Unique visitors are a
// 60-90% share, page views a 1.5-4x multiple.
func (g *VisitorGenerator) Generate(now time.Time, _ *models.Snapshot) models.Snapshot {
	weight := timeOfDayWeight(now.Hour())
	total := int(uniform(g.rng, 100, 1200) * weight)
	if total < 0 {
		total = 0
	}
	unique := int(float64(total) * uniform(g.rng, 0.6, 0.9))
	views := int(float64(total) * uniform(g.rng, 1.5, 4.0))
	return newSnapshot(now, models.VisitorPayload{
		TotalVisitors:  total,
		UniqueVisitors: unique,
		PageViews:      views,
	})
}

type PageGenerator struct {
	rng *rand.Rand
}

func NewPageGenerator(rng *rand.Rand) *PageGenerator {
	return &PageGenerator{rng: rng}
}

func (g *PageGenerator) Type() models.StatType { return models.TypeStudentPages }

// Generate assigns each catalog page a view count in [50, 800] and ranks
// the pages by views, descending.
func (g *PageGenerator) Generate(now time.Time, _ *models.Snapshot) models.Snapshot {
	rankings := make([]models.PageRank, 0, len(pageCatalog))
	total := 0
	for _, p := range pageCatalog {
		v := uniformInt(g.rng, 50, 800)
		total += v
		rankings = append(rankings, models.PageRank{Path: p.path, Title: p.title, Views: v})
	}
	sort.Slice(rankings, func(i, j int) bool { return rankings[i].Views > rankings[j].Views })
	for i := range rankings {
		rankings[i].Rank = i + 1
	}
	return newSnapshot(now, models.PagePayload{
		TotalViews: total,
		Rankings:   rankings,
	})
}

type PerformanceGenerator struct {
	rng *rand.Rand
}

func NewPerformanceGenerator(rng *rand.Rand) *PerformanceGenerator {
	return &PerformanceGenerator{rng: rng}
}

func (g *PerformanceGenerator) Type() models.StatType { return models.TypePerformance }

// Generate assigns each student an attendance rate in [91, 99] and an
// average score in [60, 100].
func (g *PerformanceGenerator) Generate(now time.Time, _ *models.Snapshot) models.Snapshot {
	students := make([]models.StudentPerformance, 0, len(studentCatalog))
	var attendanceSum float64
	for _, name := range studentCatalog {
		att := round1(uniform(g.rng, 91, 99))
		attendanceSum += att
		students = append(students, models.StudentPerformance{
			StudentName:    name,
			AttendanceRate: att,
			AverageScore:   round1(uniform(g.rng, 60, 100)),
		})
	}
	return newSnapshot(now, models.PerformancePayload{
		TotalStudents:     len(students),
		AvgAttendanceRate: round1(attendanceSum / float64(len(students))),
		Students:          students,
	})
}

type ExamGenerator struct {
	rng *rand.Rand
	typ models.StatType
}

func NewExamGenerator(rng *rand.Rand, typ models.StatType) *ExamGenerator {
	return &ExamGenerator{rng: rng, typ: typ}
}

func (g *ExamGenerator) Type() models.StatType { return g.typ }

// Generate draws a submission rate uniformly in [60, 100] and marks each
// student submitted with that probability; submitted students get a score
// in [0, 100].
func (g *ExamGenerator) Generate(now time.Time, _ *models.Snapshot) models.Snapshot {
	rate := round1(uniform(g.rng, 60, 100))
	statuses := make([]models.ExamStatus, 0, len(studentCatalog))
	for _, name := range studentCatalog {
		submitted := g.rng.Float64()*100 < rate
		st := models.ExamStatus{StudentName: name, Submitted: submitted}
		if submitted {
			st.Score = uniformInt(g.rng, 0, 100)
		}
		statuses = append(statuses, st)
	}
	return newSnapshot(now, models.ExamPayload{
		ExamName:       fmt.Sprintf("Midterm %s", now.Format("2006-01")),
		TotalStudents:  len(statuses),
		SubmissionRate: rate,
		ExamStatus:     statuses,
	})
}

type AssignmentGenerator struct {
	rng *rand.Rand
	typ models.StatType
}

func NewAssignmentGenerator(rng *rand.Rand, typ models.StatType) *AssignmentGenerator {
	return &AssignmentGenerator{rng: rng, typ: typ}
}

func (g *AssignmentGenerator) Type() models.StatType { return g.typ }

// Generate mirrors the exam generator: submission rate in [60, 100],
// submitted students stamped with a submission time earlier today.
func (g *AssignmentGenerator) Generate(now time.Time, _ *models.Snapshot) models.Snapshot {
	rate := round1(uniform(g.rng, 60, 100))
	dayStart := models.PeriodOf(now).Start
	window := now.Sub(dayStart)
	statuses := make([]models.AssignmentStatus, 0, len(studentCatalog))
	for _, name := range studentCatalog {
		submitted := g.rng.Float64()*100 < rate
		st := models.AssignmentStatus{StudentName: name, Submitted: submitted}
		if submitted && window > 0 {
			at := dayStart.Add(time.Duration(g.rng.Int63n(int64(window))))
			st.SubmittedAt = &at
		}
		statuses = append(statuses, st)
	}
	name := "Weekly Assignment"
	if g.typ == models.TypeCurrentAssignment {
		name = "Current Assignment"
	}
	return newSnapshot(now, models.AssignmentPayload{
		AssignmentName: name,
		TotalStudents:  len(statuses),
		SubmissionRate: rate,
		Statuses:       statuses,
	})
}

type WeeklyScoreGenerator struct {
	rng *rand.Rand
}

func NewWeeklyScoreGenerator(rng *rand.Rand) *WeeklyScoreGenerator {
	return &WeeklyScoreGenerator{rng: rng}
}

func (g *WeeklyScoreGenerator) Type() models.StatType { return models.TypeWeeklyScores }

// Generate assigns each student a weekly average score in [75, 95].
func (g *WeeklyScoreGenerator) Generate(now time.Time, _ *models.Snapshot) models.Snapshot {
	scores := make([]models.WeeklyScore, 0, len(studentCatalog))
	var sum float64
	for _, name := range studentCatalog {
		s := round1(uniform(g.rng, 75, 95))
		sum += s
		scores = append(scores, models.WeeklyScore{StudentName: name, AverageScore: s})
	}
	year, week := now.ISOWeek()
	return newSnapshot(now, models.WeeklyScorePayload{
		Week:         fmt.Sprintf("%d-W%02d", year, week),
		ClassAverage: round1(sum / float64(len(scores))),
		Scores:       scores,
	})
}

type StudentGenerator struct {
	rng *rand.Rand
}

func NewStudentGenerator(rng *rand.Rand) *StudentGenerator {
	return &StudentGenerator{rng: rng}
}

func (g *StudentGenerator) Type() models.StatType { return models.TypeStudents }

// Generate lists the student catalog with an attendance rate in [91, 99]
// and a grade year in [1, 4]; the active count never exceeds the total.
func (g *StudentGenerator) Generate(now time.Time, _ *models.Snapshot) models.Snapshot {
	students := make([]models.StudentRecord, 0, len(studentCatalog))
	for _, name := range studentCatalog {
		students = append(students, models.StudentRecord{
			StudentName:    name,
			Grade:          uniformInt(g.rng, 1, 4),
			AttendanceRate: round1(uniform(g.rng, 91, 99)),
		})
	}
	return newSnapshot(now, models.StudentPayload{
		TotalStudents:  len(students),
		ActiveStudents: uniformInt(g.rng, len(students)/2, len(students)),
		Students:       students,
	})
}
