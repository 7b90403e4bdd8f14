package model

// CourseInfo is the course header returned with requisites.
type CourseInfo struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	SubjectID    string `json:"subjectId"`
	CourseNumber string `json:"courseNumber"`
}

// Prerequisite is one incoming PREREQUISITE edge together with the
// course on its far end. RelationshipID is the grouping key: edges
// sharing a non-nil value are alternatives satisfying one requirement
// slot; a nil value means the edge stands alone.
type Prerequisite struct {
	ID                string  `json:"id"`
	RelationshipType  string  `json:"relationshipType"`
	RelationshipID    *string `json:"relationshipId"`
	CanTakeConcurrent bool    `json:"canTakeConcurrent"`
	MinimumGrade      string  `json:"minimumGrade"`
	Name              string  `json:"name"`
	SubjectID         string  `json:"subjectId"`
	CourseNumber      string  `json:"courseNumber"`
}

// Corequisite is one COREQUISITE edge; corequisites carry no grouping.
type Corequisite struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	SubjectID    string `json:"subjectId"`
	CourseNumber string `json:"courseNumber"`
}

// CourseRequirements is the assembled requisites payload.
// Prerequisites is an array of alternative-satisfying groups; both
// slices are always present, possibly empty, never null.
type CourseRequirements struct {
	Course        CourseInfo       `json:"course"`
	Prerequisites [][]Prerequisite `json:"prerequisites"`
	Corequisites  []Corequisite    `json:"corequisites"`
}

// CourseDetail is the full attribute set for a single course node,
// including offering attributes from its OFFERS edge when present.
type CourseDetail struct {
	ID                string  `json:"id"`
	SubjectID         string  `json:"subject_id"`
	CourseNumber      string  `json:"course_number"`
	Title             string  `json:"title"`
	Description       *string `json:"description"`
	Credits           float64 `json:"credits"`
	WritingIntensive  bool    `json:"writing_intensive"`
	RepeatStatus      *string `json:"repeat_status"`
	InstructionType   *string `json:"instruction_type"`
	InstructionMethod *string `json:"instruction_method"`
	CRN               *int64  `json:"crn"`
}

// Instructor holds aggregated rating data for one instructor.
type Instructor struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	AvgDifficulty *float64 `json:"avg_difficulty"`
	AvgRating     *float64 `json:"avg_rating"`
	NumRatings    *int64   `json:"num_ratings"`
}

// CourseAvailability is one section offering of a course in one term.
// Instructor is nil for sections with no assigned instructor.
type CourseAvailability struct {
	Term       string      `json:"term"`
	CRN        string      `json:"crn"`
	Instructor *Instructor `json:"instructor"`
}
