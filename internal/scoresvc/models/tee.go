package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tee is one set of tee boxes on a course with per-hole lengths and its
// own course/slope rating. A hole exists for this tee only when its
// length column is set.
type Tee struct {
	TeeID        int64               `json:"tee_id"`    // Primary key
	CourseID     int64               `json:"course_id"` // FK to courses(course_id)
	TeeName      string              `json:"tee_name"`
	CourseRating decimal.NullDecimal `json:"course_rating"` // e.g. 72.4
	SlopeRating  *int                `json:"slope_rating"`  // 55..155
	Length1      *int                `json:"length1"`
	Length2      *int                `json:"length2"`
	Length3      *int                `json:"length3"`
	Length4      *int                `json:"length4"`
	Length5      *int                `json:"length5"`
	Length6      *int                `json:"length6"`
	Length7      *int                `json:"length7"`
	Length8      *int                `json:"length8"`
	Length9      *int                `json:"length9"`
	Length10     *int                `json:"length10"`
	Length11     *int                `json:"length11"`
	Length12     *int                `json:"length12"`
	Length13     *int                `json:"length13"`
	Length14     *int                `json:"length14"`
	Length15     *int                `json:"length15"`
	Length16     *int                `json:"length16"`
	Length17     *int                `json:"length17"`
	Length18     *int                `json:"length18"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

func (t *Tee) lengthColumns() [MaxHoles]*int {
	return [MaxHoles]*int{
		t.Length1, t.Length2, t.Length3, t.Length4, t.Length5, t.Length6,
		t.Length7, t.Length8, t.Length9, t.Length10, t.Length11, t.Length12,
		t.Length13, t.Length14, t.Length15, t.Length16, t.Length17, t.Length18,
	}
}

// HolesWithLength lists the hole numbers this tee actually rates,
// in ascending order.
func (t *Tee) HolesWithLength() []int {
	cols := t.lengthColumns()
	var holes []int
	for i, l := range cols {
		if l != nil {
			holes = append(holes, i+1)
		}
	}
	return holes
}
