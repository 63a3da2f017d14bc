package services

import (
	"errors"

	"github.com/vishwaszadte/ride-sharing-app-backend/entity"
	"github.com/vishwaszadte/ride-sharing-app-backend/repository"

	"gorm.io/gorm"
)

// MatchService จับคู่ rider/driver ด้วย pincode ของ location ล่าสุด
type MatchService struct {
	RiderRepo  *repository.RiderRepository
	DriverRepo *repository.DriverRepository
	RideRepo   *repository.RideRepository
}

func NewMatchService(riderRepo *repository.RiderRepository, driverRepo *repository.DriverRepository, rideRepo *repository.RideRepository) *MatchService {
	return &MatchService{
		RiderRepo:  riderRepo,
		DriverRepo: driverRepo,
		RideRepo:   rideRepo,
	}
}

// DriversNearRider คืน rider พร้อม driver ทุกคนใน pincode เดียวกัน
// rider ที่ยังไม่เคยอัปเดต location จะได้ list ว่าง ไม่ใช่ error
func (s *MatchService) DriversNearRider(riderID uint) (*entity.Rider, []entity.Driver, error) {
	rider, err := s.RiderRepo.FindByID(riderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrRiderNotFound
		}
		return nil, nil, err
	}

	if rider.Location.IsZero() {
		return rider, []entity.Driver{}, nil
	}

	drivers, err := s.DriverRepo.FindByPincode(rider.Location.Pincode)
	if err != nil {
		return nil, nil, err
	}
	return rider, drivers, nil
}

// OpenRidesForDriver คืน requested rides ของ rider ใน pincode ของ driver
// driver ที่ไม่มี location จะได้ list ว่าง ไม่ใช่ error
func (s *MatchService) OpenRidesForDriver(driverID uint) ([]repository.MatchedRide, error) {
	driver, err := s.DriverRepo.FindByID(driverID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDriverNotFound
		}
		return nil, err
	}

	if driver.Location.IsZero() {
		return []repository.MatchedRide{}, nil
	}

	return s.RideRepo.FindRequestedByPincode(driver.Location.Pincode)
}

// DriverByID ให้ rider ดูโปรไฟล์ driver รายตัว (ไม่มี credential)
func (s *MatchService) DriverByID(driverID uint) (*entity.Driver, error) {
	driver, err := s.DriverRepo.FindByID(driverID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDriverNotFound
		}
		return nil, err
	}
	return driver, nil
}
