package domain

// EnrollmentStats summarises an account's course enrollments. The counts are
// owned by the enrollment collaborator and joined into user reads; they are
// never stored on Account.
type EnrollmentStats struct {
	EnrolledCourses  int64 `json:"enrolledCourses"`
	CompletedCourses int64 `json:"completedCourses"`
}
