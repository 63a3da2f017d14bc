package entity

import (
	"gorm.io/gorm"
)

type Rider struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `json:"-"` // bcrypt hash, ห้ามส่งออก
	PhoneNumber string `json:"phoneNumber"`

	Location Location `gorm:"embedded;embeddedPrefix:location_" json:"location"`

	// preload เฉพาะตอนจำเป็น
	Rides []Ride `gorm:"foreignKey:RiderID" json:"-"`
}
