package entity

import (
	"gorm.io/gorm"
)

// สถานะของ ride ตามลำดับ lifecycle
const (
	RideStatusRequested = "requested"
	RideStatusAccepted  = "accepted"
	RideStatusStarted   = "started"
	RideStatusCompleted = "completed"
	RideStatusDeclined  = "declined"

	// RideStatusNone ใช้ตอบ endpoint polling เมื่อ rider ไม่มี ride ค้างอยู่
	RideStatusNone = "none"
)

// IsTerminalRideStatus reports whether a ride in this status can never change again.
func IsTerminalRideStatus(status string) bool {
	return status == RideStatusCompleted || status == RideStatusDeclined
}

// IsKnownRideStatus ตรวจว่า status ที่รับมาจาก client เป็นค่าที่ระบบรู้จัก
func IsKnownRideStatus(status string) bool {
	switch status {
	case RideStatusRequested, RideStatusAccepted, RideStatusStarted,
		RideStatusCompleted, RideStatusDeclined:
		return true
	}
	return false
}

type Ride struct {
	gorm.Model
	RiderID uint  `gorm:"not null;index" json:"riderId"`
	Rider   Rider `json:"-"` // preload เฉพาะตอนต้องการข้อมูล rider

	DriverID *uint   `json:"driverId,omitempty"` // nil จนกว่าจะมี driver รับงาน
	Driver   *Driver `json:"-"`

	Source      string   `gorm:"not null" json:"source"`
	Destination string   `gorm:"not null" json:"destination"`
	Cost        *float64 `json:"cost,omitempty"`

	Status string `gorm:"not null;default:requested;index" json:"status"`
}
