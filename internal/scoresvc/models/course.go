package models

import "time"

// MaxHoles is the largest number of holes a course row can describe.
const MaxHoles = 18

// Course keeps one par column per hole, the same denormalized shape the
// course data provider delivers.
type Course struct {
	CourseID      int64     `json:"course_id"` // Primary key
	ClubID        int64     `json:"club_id"`   // FK to clubs(club_id)
	CourseName    string    `json:"course_name"`
	NumHoles      int       `json:"num_holes"` // 9 or 18 for almost every course
	MeasureMeters bool      `json:"measure_meters"`
	Par1          *int      `json:"par1"`
	Par2          *int      `json:"par2"`
	Par3          *int      `json:"par3"`
	Par4          *int      `json:"par4"`
	Par5          *int      `json:"par5"`
	Par6          *int      `json:"par6"`
	Par7          *int      `json:"par7"`
	Par8          *int      `json:"par8"`
	Par9          *int      `json:"par9"`
	Par10         *int      `json:"par10"`
	Par11         *int      `json:"par11"`
	Par12         *int      `json:"par12"`
	Par13         *int      `json:"par13"`
	Par14         *int      `json:"par14"`
	Par15         *int      `json:"par15"`
	Par16         *int      `json:"par16"`
	Par17         *int      `json:"par17"`
	Par18         *int      `json:"par18"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// parColumns returns the par fields in hole order.
func (c *Course) parColumns() [MaxHoles]*int {
	return [MaxHoles]*int{
		c.Par1, c.Par2, c.Par3, c.Par4, c.Par5, c.Par6,
		c.Par7, c.Par8, c.Par9, c.Par10, c.Par11, c.Par12,
		c.Par13, c.Par14, c.Par15, c.Par16, c.Par17, c.Par18,
	}
}

// HolePars maps hole number (1..NumHoles) to its nullable par.
// Par columns beyond NumHoles are ignored.
func (c *Course) HolePars() map[int]*int {
	n := c.NumHoles
	if n < 0 {
		n = 0
	}
	if n > MaxHoles {
		n = MaxHoles
	}

	cols := c.parColumns()
	pars := make(map[int]*int, n)
	for hole := 1; hole <= n; hole++ {
		pars[hole] = cols[hole-1]
	}
	return pars
}
