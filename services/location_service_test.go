package services

import (
	"context"
	"errors"
	"testing"

	"github.com/vishwaszadte/ride-sharing-app-backend/pkg/geocode"
	"github.com/vishwaszadte/ride-sharing-app-backend/repository"

	"gorm.io/gorm"
)

// geocoder ปลอมสำหรับเทส
type stubGeocoder struct {
	addr *geocode.Address
	err  error
}

func (s *stubGeocoder) Reverse(ctx context.Context, lat, lon float64) (*geocode.Address, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.addr, nil
}

func newTestLocationService(t *testing.T, g ReverseGeocoder) (*LocationService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewLocationService(
		g,
		repository.NewRiderRepository(db),
		repository.NewDriverRepository(db),
	), db
}

func TestUpdateRiderLocation(t *testing.T) {
	geocoder := &stubGeocoder{addr: &geocode.Address{
		FormattedAddress: "MG Road, Bengaluru",
		Latitude:         12.97,
		Longitude:        77.59,
		City:             "Bengaluru",
		Country:          "India",
		Zipcode:          "560001",
	}}
	svc, db := newTestLocationService(t, geocoder)
	rider := seedRider(t, db, "rider@example.com", "411001")

	updated, err := svc.UpdateRiderLocation(context.Background(), rider.ID, 12.97, 77.59)
	if err != nil {
		t.Fatalf("UpdateRiderLocation: %v", err)
	}
	if updated.Location.Pincode != "560001" {
		t.Errorf("pincode = %s, want 560001", updated.Location.Pincode)
	}
	if updated.Location.City != "Bengaluru" {
		t.Errorf("city = %s, want Bengaluru", updated.Location.City)
	}
}

func TestUpdateRiderLocation_NoResultsLeavesLocationUntouched(t *testing.T) {
	svc, db := newTestLocationService(t, &stubGeocoder{err: geocode.ErrNoResults})
	rider := seedRider(t, db, "rider@example.com", "411001")

	_, err := svc.UpdateRiderLocation(context.Background(), rider.ID, 0.0, 0.0)
	if !errors.Is(err, geocode.ErrNoResults) {
		t.Fatalf("expected ErrNoResults, got %v", err)
	}

	// all-or-nothing: location เดิมต้องอยู่ครบ
	var stored struct{ LocationPincode string }
	if err := db.Table("riders").Select("location_pincode").Where("id = ?", rider.ID).Scan(&stored).Error; err != nil {
		t.Fatalf("reload rider: %v", err)
	}
	if stored.LocationPincode != "411001" {
		t.Errorf("location was modified on geocoder failure: %s", stored.LocationPincode)
	}
}

func TestUpdateDriverLocation(t *testing.T) {
	geocoder := &stubGeocoder{addr: &geocode.Address{
		FormattedAddress: "FC Road, Pune",
		Latitude:         18.52,
		Longitude:        73.85,
		City:             "Pune",
		Country:          "India",
		Zipcode:          "411001",
	}}
	svc, db := newTestLocationService(t, geocoder)
	driver := seedDriver(t, db, "driver@example.com", "")

	updated, err := svc.UpdateDriverLocation(context.Background(), driver.ID, 18.52, 73.85)
	if err != nil {
		t.Fatalf("UpdateDriverLocation: %v", err)
	}
	if updated.Location.Pincode != "411001" {
		t.Errorf("pincode = %s, want 411001", updated.Location.Pincode)
	}
}

func TestUpdateRiderLocation_UnknownRider(t *testing.T) {
	svc, _ := newTestLocationService(t, &stubGeocoder{})
	if _, err := svc.UpdateRiderLocation(context.Background(), 42, 1, 1); !errors.Is(err, ErrRiderNotFound) {
		t.Fatalf("expected ErrRiderNotFound, got %v", err)
	}
}
