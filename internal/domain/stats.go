package domain

// Stats holds usage counters: total users seen and per-course view counts
type Stats struct {
	TotalUsers  int
	CourseViews map[string]int
}

// NewStats creates empty stats with an initialized views map
func NewStats() *Stats {
	return &Stats{CourseViews: make(map[string]int)}
}

// Clone returns a deep copy
func (s *Stats) Clone() *Stats {
	views := make(map[string]int, len(s.CourseViews))
	for k, v := range s.CourseViews {
		views[k] = v
	}
	return &Stats{TotalUsers: s.TotalUsers, CourseViews: views}
}
