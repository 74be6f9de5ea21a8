package generator

// Fixed catalogs backing the sample-data generators. No real enrollment
// or attendance system exists behind these; the collectors synthesize
// bounded magnitudes over the entries below.

type courseEntry struct {
	id         string
	name       string
	instructor string
	room       string
}

var courseCatalog = []courseEntry{
	{id: "CS101", name: "Introduction to Programming", instructor: "Kim Minjun", room: "301"},
	{id: "CS201", name: "Data Structures", instructor: "Lee Seoyeon", room: "302"},
	{id: "CS301", name: "Operating Systems", instructor: "Park Jihoon", room: "303"},
	{id: "MA102", name: "Discrete Mathematics", instructor: "Choi Eunji", room: "210"},
	{id: "DB210", name: "Database Systems", instructor: "Jung Woojin", room: "valley-1"},
	{id: "WE110", name: "Web Development", instructor: "Kang Hyejin", room: "lab-2"},
	{id: "AI330", name: "Machine Learning Basics", instructor: "Yoon Taeyang", room: "404"},
	{id: "NW220", name: "Computer Networks", instructor: "Han Soomin", room: "305"},
}

type facilityEntry struct {
	name     string
	capacity int
}

var facilityCatalog = []facilityEntry{
	{name: "Main Library", capacity: 300},
	{name: "Study Room A", capacity: 40},
	{name: "Study Room B", capacity: 40},
	{name: "Computer Lab 1", capacity: 60},
	{name: "Computer Lab 2", capacity: 60},
	{name: "Gymnasium", capacity: 150},
	{name: "Cafeteria", capacity: 250},
	{name: "Auditorium", capacity: 400},
}

var studentCatalog = []string{
	"Kim Jiwoo",
	"Lee Dohyun",
	"Park Seojin",
	"Choi Yuna",
	"Jung Minseo",
	"Kang Hajun",
	"Yoon Chaewon",
	"Han Siwoo",
	"Shin Dain",
	"Oh Junseo",
	"Seo Yerin",
	"Lim Gaon",
}

type pageEntry struct {
	path  string
	title string
}

var pageCatalog = []pageEntry{
	{path: "/dashboard", title: "Dashboard"},
	{path: "/courses", title: "My Courses"},
	{path: "/assignments", title: "Assignments"},
	{path: "/exams", title: "Exams"},
	{path: "/grades", title: "Grades"},
	{path: "/board", title: "Community Board"},
	{path: "/calendar", title: "Calendar"},
	{path: "/library", title: "Library Search"},
}
