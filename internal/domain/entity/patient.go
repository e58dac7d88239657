package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient is a clinical registry record, kept separate from the users table.
// Appointments reference users, not this table; see the appointment entity.
type Patient struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name       string    `gorm:"type:varchar(100);not null" json:"name"`
	NationalID string    `gorm:"column:national_id;type:char(11);uniqueIndex;not null" json:"national_id"`
	Email      string    `gorm:"type:varchar(255);not null" json:"email"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Patient) TableName() string {
	return "patients"
}
