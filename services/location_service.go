package services

import (
	"context"
	"errors"

	"github.com/vishwaszadte/ride-sharing-app-backend/entity"
	"github.com/vishwaszadte/ride-sharing-app-backend/pkg/geocode"
	"github.com/vishwaszadte/ride-sharing-app-backend/repository"

	"gorm.io/gorm"
)

// ReverseGeocoder คือ external geocoding collaborator
type ReverseGeocoder interface {
	Reverse(ctx context.Context, lat, lon float64) (*geocode.Address, error)
}

// LocationService แปลงพิกัดดิบเป็น address แล้วเขียนทับ location บน account
// ถ้า geocoder ล้ม จะไม่เขียนอะไรเลย (all-or-nothing)
type LocationService struct {
	Geocoder   ReverseGeocoder
	RiderRepo  *repository.RiderRepository
	DriverRepo *repository.DriverRepository
}

func NewLocationService(geocoder ReverseGeocoder, riderRepo *repository.RiderRepository, driverRepo *repository.DriverRepository) *LocationService {
	return &LocationService{
		Geocoder:   geocoder,
		RiderRepo:  riderRepo,
		DriverRepo: driverRepo,
	}
}

func (s *LocationService) resolve(ctx context.Context, lat, lon float64) (entity.Location, error) {
	addr, err := s.Geocoder.Reverse(ctx, lat, lon)
	if err != nil {
		return entity.Location{}, err
	}
	return entity.Location{
		FormattedAddress: addr.FormattedAddress,
		Latitude:         addr.Latitude,
		Longitude:        addr.Longitude,
		City:             addr.City,
		Country:          addr.Country,
		Pincode:          addr.Zipcode,
	}, nil
}

// POST /rider/update-location
func (s *LocationService) UpdateRiderLocation(ctx context.Context, riderID uint, lat, lon float64) (*entity.Rider, error) {
	if _, err := s.RiderRepo.FindByID(riderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRiderNotFound
		}
		return nil, err
	}

	loc, err := s.resolve(ctx, lat, lon)
	if err != nil {
		return nil, err
	}

	if err := s.RiderRepo.UpdateLocation(riderID, loc); err != nil {
		return nil, err
	}
	return s.RiderRepo.FindByID(riderID)
}

// POST /driver/update-location
func (s *LocationService) UpdateDriverLocation(ctx context.Context, driverID uint, lat, lon float64) (*entity.Driver, error) {
	if _, err := s.DriverRepo.FindByID(driverID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDriverNotFound
		}
		return nil, err
	}

	loc, err := s.resolve(ctx, lat, lon)
	if err != nil {
		return nil, err
	}

	if err := s.DriverRepo.UpdateLocation(driverID, loc); err != nil {
		return nil, err
	}
	return s.DriverRepo.FindByID(driverID)
}
