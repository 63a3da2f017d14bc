package entity

import (
	"gorm.io/gorm"
)

type Driver struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `json:"-"` // bcrypt hash, ห้ามส่งออก
	PhoneNumber string `json:"phoneNumber"`

	VehicleName   string `json:"vehicleName"`
	VehicleNumber string `json:"vehicleNumber"`
	VehicleType   string `json:"vehicleType"`
	Photo         string `json:"photo"` // public URL ของรูปที่อัปโหลด

	Location Location `gorm:"embedded;embeddedPrefix:location_" json:"location"`

	Rides []Ride `gorm:"foreignKey:DriverID" json:"-"`
}
