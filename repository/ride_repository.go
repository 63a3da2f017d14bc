package repository

import (
	"time"

	"github.com/vishwaszadte/ride-sharing-app-backend/entity"

	"gorm.io/gorm"
)

type RideRepository struct {
	DB *gorm.DB
}

func NewRideRepository(db *gorm.DB) *RideRepository {
	return &RideRepository{DB: db}
}

// ---------------- Rides (CRUD หลัก) ----------------

// POST /rider/request-ride → สร้าง ride สถานะ requested
func (r *RideRepository) Create(ride *entity.Ride) error {
	return r.DB.Create(ride).Error
}

func (r *RideRepository) FindByID(rideID uint) (*entity.Ride, error) {
	var ride entity.Ride
	if err := r.DB.First(&ride, rideID).Error; err != nil {
		return nil, err
	}
	return &ride, nil
}

// ride ล่าสุดของ rider ไม่ว่าจะจบไปแล้วหรือยัง
func (r *RideRepository) FindLatestByRider(riderID uint) (*entity.Ride, error) {
	var ride entity.Ride
	if err := r.DB.Where("rider_id = ?", riderID).
		Order("id DESC").First(&ride).Error; err != nil {
		return nil, err
	}
	return &ride, nil
}

// ride ที่ยังไม่จบ (ไม่ใช่ completed/declined) ของ rider — มีได้อย่างมากหนึ่งตัว
func (r *RideRepository) FindActiveByRider(riderID uint) (*entity.Ride, error) {
	var ride entity.Ride
	if err := r.DB.Where("rider_id = ? AND status NOT IN ?",
		riderID, []string{entity.RideStatusCompleted, entity.RideStatusDeclined}).
		Order("id DESC").First(&ride).Error; err != nil {
		return nil, err
	}
	return &ride, nil
}

func (r *RideRepository) HasActiveRide(riderID uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Ride{}).
		Where("rider_id = ? AND status NOT IN ?",
			riderID, []string{entity.RideStatusCompleted, entity.RideStatusDeclined}).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// ---------------- Matching ----------------

// ข้อมูล rider เท่าที่ driver ควรเห็นตอนเลือกงาน
type RiderSummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

type MatchedRide struct {
	Rider RiderSummary `json:"rider"`
	Ride  entity.Ride  `json:"ride"`
}

// GET /driver/get-rides → requested rides ของ rider ใน pincode เดียวกัน
// inner join เดียว: rider ที่ไม่มี ride ค้างจะไม่มีแถวออกมา
func (r *RideRepository) FindRequestedByPincode(pincode string) ([]MatchedRide, error) {
	var rows []struct {
		ID          uint
		CreatedAt   time.Time
		UpdatedAt   time.Time
		RiderID     uint
		DriverID    *uint
		Source      string
		Destination string
		Cost        *float64
		Status      string
		RiderName   string
		RiderPhone  string
	}
	err := r.DB.Table("rides AS rd").
		Select("rd.id, rd.created_at, rd.updated_at, rd.rider_id, rd.driver_id, rd.source, rd.destination, rd.cost, rd.status, u.name AS rider_name, u.phone_number AS rider_phone").
		Joins("JOIN riders u ON u.id = rd.rider_id").
		Where("u.location_pincode = ? AND rd.status = ? AND rd.deleted_at IS NULL", pincode, entity.RideStatusRequested).
		Order("rd.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]MatchedRide, 0, len(rows))
	for _, row := range rows {
		ride := entity.Ride{
			RiderID:     row.RiderID,
			DriverID:    row.DriverID,
			Source:      row.Source,
			Destination: row.Destination,
			Cost:        row.Cost,
			Status:      row.Status,
		}
		ride.ID = row.ID
		ride.CreatedAt = row.CreatedAt
		ride.UpdatedAt = row.UpdatedAt
		out = append(out, MatchedRide{
			Rider: RiderSummary{ID: row.RiderID, Name: row.RiderName, PhoneNumber: row.RiderPhone},
			Ride:  ride,
		})
	}
	return out, nil
}

// ---------------- Status transitions ----------------

// ClaimRequested ให้ driver จองงานด้วยเงื่อนไข status=requested และยังไม่มี driver
// ใน UPDATE เดียว — สอง driver แย่งงานเดียวกันจะมีคนชนะแค่คนเดียว
func (r *RideRepository) ClaimRequested(tx *gorm.DB, rideID, driverID uint) (int64, error) {
	res := tx.Model(&entity.Ride{}).
		Where("id = ? AND status = ? AND driver_id IS NULL", rideID, entity.RideStatusRequested).
		Updates(map[string]any{
			"status":    entity.RideStatusAccepted,
			"driver_id": driverID,
		})
	return res.RowsAffected, res.Error
}

// AdvanceStatus เลื่อนสถานะโดย driver ที่ถูก bind ไว้เท่านั้น
func (r *RideRepository) AdvanceStatus(tx *gorm.DB, rideID, driverID uint, from, to string) (int64, error) {
	res := tx.Model(&entity.Ride{}).
		Where("id = ? AND status = ? AND driver_id = ?", rideID, from, driverID).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// UpdateStatusGuard เปลี่ยนสถานะแบบมีเงื่อนไขโดยไม่ผูกกับ driver
// (ใช้กับ requested → declined ที่งานยังไม่มีเจ้าของ)
func (r *RideRepository) UpdateStatusGuard(tx *gorm.DB, rideID uint, from, to string) (int64, error) {
	res := tx.Model(&entity.Ride{}).
		Where("id = ? AND status = ?", rideID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}
