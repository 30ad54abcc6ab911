package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Gender values accepted for User.Gender.
const (
	GenderMale      = "Male"
	GenderFemale    = "Female"
	GenderUndefined = "undefined"
	DefaultUserRole = "Author"
)

// User represents a registered author/editor in the system. Password always
// holds a bcrypt hash; the plaintext is never stored. Role is a free-text label
// and deliberately not a foreign key into the roles table.
type User struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Mobile    *string   `json:"mobile" gorm:"size:32"`
	Password  string    `json:"password" gorm:"size:255;not null"`
	Role      string    `json:"role" gorm:"size:50;not null;default:'Author'"`
	Gender    string    `json:"gender" gorm:"size:16;not null;default:'undefined'"`
	Photo     *string   `json:"photo" gorm:"size:255"`
	IsVerify  bool      `json:"is_verify" gorm:"default:false"`
	Status    bool      `json:"status" gorm:"default:true"`
	Trash     bool      `json:"trash" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
