package models

import "time"

type User struct {
	ID               uint   `gorm:"primaryKey"`
	Name             string `gorm:"not null"`
	Email            string `gorm:"uniqueIndex;not null"`
	PasswordHash     string `gorm:"not null"`
	Age              *int
	HasPCOS          bool `gorm:"not null;default:false"`
	HasThyroid       bool `gorm:"not null;default:false"`
	HasAnemia        bool `gorm:"not null;default:false"`
	HasDiabetes      bool `gorm:"not null;default:false"`
	EmergencyContact string
	CreatedAt        time.Time `gorm:"not null"`
}

// ConditionNames lists the user's flagged health conditions in display order.
func (user *User) ConditionNames() []string {
	names := make([]string, 0, 4)
	if user.HasPCOS {
		names = append(names, "PCOS")
	}
	if user.HasThyroid {
		names = append(names, "Thyroid")
	}
	if user.HasAnemia {
		names = append(names, "Anemia")
	}
	if user.HasDiabetes {
		names = append(names, "Diabetes")
	}
	return names
}
