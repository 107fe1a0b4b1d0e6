package domain

import "time"

type Customer struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:140;not null" json:"name"`
	Email     string    `gorm:"size:140" json:"email"`
	Phone     string    `gorm:"size:60" json:"phone"`
	Address   string    `gorm:"type:text" json:"address"`
	GSTIN     string    `gorm:"size:30" json:"gstin"`
	CreatedAt time.Time `json:"created_at"`
}
