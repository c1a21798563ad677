package entity

import "time"

type Gender string

const (
	GenderMale      Gender = "male"
	GenderFemale    Gender = "female"
	GenderNonBinary Gender = "non-binary"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderNonBinary:
		return true
	}

	return false
}

// UserProfile is supplied once at session start and immutable after.
type UserProfile struct {
	Gender   Gender   `json:"gender"`
	HeightCm *float64 `json:"height_cm,omitempty"`
	Age      *int     `json:"age,omitempty"`
}

type User struct {
	ID        string    `db:"id"`
	Gender    string    `db:"gender"`
	HeightCm  *float64  `db:"height_cm"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
