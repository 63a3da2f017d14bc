package services

import (
	"errors"
	"strings"
	"time"

	"github.com/vishwaszadte/ride-sharing-app-backend/entity"
	"github.com/vishwaszadte/ride-sharing-app-backend/repository"
	"github.com/vishwaszadte/ride-sharing-app-backend/utils"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// AuthService จัดการ business logic ของการ signup/login ทั้ง rider และ driver
type AuthService struct {
	riderRepo  *repository.RiderRepository
	driverRepo *repository.DriverRepository
	jwtSecret  string
	jwtTTL     time.Duration
}

func NewAuthService(riderRepo *repository.RiderRepository, driverRepo *repository.DriverRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		riderRepo:  riderRepo,
		driverRepo: driverRepo,
		jwtSecret:  secret,
		jwtTTL:     ttl,
	}
}

// SignupRider สร้าง rider ใหม่ ถ้า email ซ้ำจะ error
func (s *AuthService) SignupRider(name, email, password, phone string) (*entity.Rider, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	count, err := s.riderRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	rider := &entity.Rider{
		Name:        strings.TrimSpace(name),
		Email:       email,
		Password:    string(hashed),
		PhoneNumber: strings.TrimSpace(phone),
	}
	if err := s.riderRepo.Create(rider); err != nil {
		return nil, err
	}
	return rider, nil
}

// LoginRider ตรวจสอบ rider + สร้าง JWT
func (s *AuthService) LoginRider(email, password string) (string, *entity.Rider, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	rider, err := s.riderRepo.FindByEmail(email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(rider.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(rider.ID, "rider", s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}

	rider.Password = ""
	return token, rider, nil
}

// SignupDriver สร้าง driver ใหม่พร้อมข้อมูลรถและรูปที่อัปโหลดไว้แล้ว
func (s *AuthService) SignupDriver(name, email, password, phone, vehicleName, vehicleNumber, vehicleType, photoURL string) (*entity.Driver, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	count, err := s.driverRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	driver := &entity.Driver{
		Name:          strings.TrimSpace(name),
		Email:         email,
		Password:      string(hashed),
		PhoneNumber:   strings.TrimSpace(phone),
		VehicleName:   strings.TrimSpace(vehicleName),
		VehicleNumber: strings.TrimSpace(vehicleNumber),
		VehicleType:   strings.TrimSpace(vehicleType),
		Photo:         photoURL,
	}
	if err := s.driverRepo.Create(driver); err != nil {
		return nil, err
	}
	return driver, nil
}

// LoginDriver ตรวจสอบ driver + สร้าง JWT
func (s *AuthService) LoginDriver(email, password string) (string, *entity.Driver, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	driver, err := s.driverRepo.FindByEmail(email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(driver.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(driver.ID, "driver", s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}

	driver.Password = ""
	return token, driver, nil
}
