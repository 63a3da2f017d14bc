package services

import (
	"context"
	"errors"

	"github.com/vishwaszadte/ride-sharing-app-backend/entity"
	"github.com/vishwaszadte/ride-sharing-app-backend/repository"

	"gorm.io/gorm"
)

var (
	ErrRiderNotFound     = errors.New("rider not found")
	ErrDriverNotFound    = errors.New("driver not found")
	ErrRideNotFound      = errors.New("ride not found")
	ErrActiveRideExists  = errors.New("rider already has an active ride")
	ErrUnknownStatus     = errors.New("unknown ride status")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNotRideDriver     = errors.New("ride belongs to another driver")
	ErrRideConflict      = errors.New("ride was updated by someone else")
)

// RideService เป็นทางเดียวที่แก้สถานะ ride ได้ ทั้งฝั่ง rider และ driver
type RideService struct {
	DB         *gorm.DB
	Repo       *repository.RideRepository
	RiderRepo  *repository.RiderRepository
	DriverRepo *repository.DriverRepository
	Cache      *StatusCache // nil = ไม่มี cache
}

func NewRideService(db *gorm.DB, repo *repository.RideRepository, riderRepo *repository.RiderRepository, driverRepo *repository.DriverRepository, cache *StatusCache) *RideService {
	return &RideService{
		DB:         db,
		Repo:       repo,
		RiderRepo:  riderRepo,
		DriverRepo: driverRepo,
		Cache:      cache,
	}
}

// RequestRide สร้าง ride สถานะ requested — rider มี ride ค้างอยู่ได้แค่ตัวเดียว
func (s *RideService) RequestRide(ctx context.Context, riderID uint, source, destination string) (*entity.Ride, error) {
	if _, err := s.RiderRepo.FindByID(riderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRiderNotFound
		}
		return nil, err
	}

	active, err := s.Repo.HasActiveRide(riderID)
	if err != nil {
		return nil, err
	}
	if active {
		return nil, ErrActiveRideExists
	}

	ride := &entity.Ride{
		RiderID:     riderID,
		Source:      source,
		Destination: destination,
		Status:      entity.RideStatusRequested,
	}
	if err := s.Repo.Create(ride); err != nil {
		return nil, err
	}

	s.Cache.Invalidate(ctx, riderID)
	return ride, nil
}

// GetRide คืน ride พร้อมข้อมูลย่อของ rider เจ้าของงาน
func (s *RideService) GetRide(rideID uint) (*entity.Ride, *repository.RiderSummary, error) {
	ride, err := s.Repo.FindByID(rideID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrRideNotFound
		}
		return nil, nil, err
	}

	rider, err := s.RiderRepo.FindByID(ride.RiderID)
	if err != nil {
		return nil, nil, err
	}
	summary := &repository.RiderSummary{
		ID:          rider.ID,
		Name:        rider.Name,
		PhoneNumber: rider.PhoneNumber,
	}
	return ride, summary, nil
}

// GetRideInfoForRider คืน ride ล่าสุดของ rider
// ถ้ามี driver รับงานแล้วจะแนบข้อมูล driver (ไม่มี credential) ไปด้วย
func (s *RideService) GetRideInfoForRider(riderID uint) (*entity.Ride, *entity.Driver, error) {
	ride, err := s.Repo.FindLatestByRider(riderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrRideNotFound
		}
		return nil, nil, err
	}

	var driver *entity.Driver
	switch ride.Status {
	case entity.RideStatusAccepted, entity.RideStatusStarted, entity.RideStatusCompleted:
		if ride.DriverID != nil {
			driver, err = s.DriverRepo.FindByID(*ride.DriverID)
			if err != nil {
				return nil, nil, err
			}
		}
	}
	return ride, driver, nil
}

// GetRideStatusForRider เป็น endpoint สำหรับ polling
// คืนแค่สถานะของ ride ที่ยังไม่จบ หรือ "none" ถ้าไม่มี — ถูกกว่า GetRideInfoForRider
func (s *RideService) GetRideStatusForRider(ctx context.Context, riderID uint) (string, error) {
	if status, ok := s.Cache.Get(ctx, riderID); ok {
		return status, nil
	}

	ride, err := s.Repo.FindActiveByRider(riderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.Cache.Set(ctx, riderID, entity.RideStatusNone)
			return entity.RideStatusNone, nil
		}
		return "", err
	}

	s.Cache.Set(ctx, riderID, ride.Status)
	return ride.Status, nil
}
