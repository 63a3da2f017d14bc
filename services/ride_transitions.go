// services/ride_transitions.go
package services

import (
	"context"
	"errors"

	"github.com/vishwaszadte/ride-sharing-app-backend/entity"

	"gorm.io/gorm"
)

// ตารางการเปลี่ยนสถานะ — นอกตารางนี้ถือว่าผิดทั้งหมด
// terminal states (completed, declined) ไม่มี next state
var rideTransitions = map[string]map[string]bool{
	entity.RideStatusRequested: {
		entity.RideStatusAccepted: true,
		entity.RideStatusDeclined: true,
	},
	entity.RideStatusAccepted: {
		entity.RideStatusStarted:  true,
		entity.RideStatusDeclined: true,
	},
	entity.RideStatusStarted: {
		entity.RideStatusCompleted: true,
	},
}

// UpdateRideStatus ให้ driver รับงานหรือเลื่อนสถานะ ride
//
// การเข้าสู่ accepted จะ bind driver_id ให้ driver ที่กดรับ หลังจากนั้น
// driver คนนั้นเท่านั้นที่เลื่อนสถานะต่อได้ ทุก transition เขียนเป็น
// conditional UPDATE เดียว: ถ้าแถวไม่เปลี่ยน แปลว่ามีคนแย่งไปก่อนแล้ว
func (s *RideService) UpdateRideStatus(ctx context.Context, driverID, rideID uint, newStatus string) (*entity.Ride, error) {
	if !entity.IsKnownRideStatus(newStatus) {
		return nil, ErrUnknownStatus
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		ride, err := s.Repo.FindByID(rideID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRideNotFound
			}
			return err
		}

		if !rideTransitions[ride.Status][newStatus] {
			return ErrInvalidTransition
		}

		var affected int64
		switch {
		case newStatus == entity.RideStatusAccepted:
			affected, err = s.Repo.ClaimRequested(tx, rideID, driverID)
		case ride.Status == entity.RideStatusRequested && newStatus == entity.RideStatusDeclined:
			// งานยังไม่มีเจ้าของ driver คนไหนก็ decline ได้
			affected, err = s.Repo.UpdateStatusGuard(tx, rideID, ride.Status, newStatus)
		default:
			if ride.DriverID == nil || *ride.DriverID != driverID {
				return ErrNotRideDriver
			}
			affected, err = s.Repo.AdvanceStatus(tx, rideID, driverID, ride.Status, newStatus)
		}
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrRideConflict
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	ride, err := s.Repo.FindByID(rideID)
	if err != nil {
		return nil, err
	}

	s.Cache.Invalidate(ctx, ride.RiderID)
	return ride, nil
}
