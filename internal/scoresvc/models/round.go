package models

import "time"

// Round groups the per-hole scores of one outing on a course. It is
// created once when players are added and deleted only when the last
// participant removes their scores.
type Round struct {
	ID        int64     `json:"id"`        // Primary key
	CourseID  int64     `json:"course_id"` // FK to courses(course_id)
	CreatedAt time.Time `json:"created_at"`
}
