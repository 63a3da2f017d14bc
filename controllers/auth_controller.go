package controllers

import (
	"errors"

	"github.com/vishwaszadte/ride-sharing-app-backend/pkg/resp"
	"github.com/vishwaszadte/ride-sharing-app-backend/pkg/storage"
	"github.com/vishwaszadte/ride-sharing-app-backend/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Auth   *services.AuthService
	Photos *storage.Store
}

func NewAuthController(auth *services.AuthService, photos *storage.Store) *AuthController {
	return &AuthController{Auth: auth, Photos: photos}
}

// ======================== Rider ========================

type riderSignupReq struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

// POST /rider/signup
func (h *AuthController) RiderSignup(c *gin.Context) {
	var req riderSignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rider, err := h.Auth.SignupRider(req.Name, req.Email, req.Password, req.PhoneNumber)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			resp.Conflict(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	token, _, err := h.Auth.LoginRider(req.Email, req.Password)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"token": token, "rider": rider})
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /rider/login
func (h *AuthController) RiderLogin(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, rider, err := h.Auth.LoginRider(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			resp.Unauthorized(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token, "rider": rider})
}

// ======================== Driver ========================

type driverSignupReq struct {
	Name          string `form:"name" binding:"required"`
	Email         string `form:"email" binding:"required,email"`
	Password      string `form:"password" binding:"required,min=6"`
	PhoneNumber   string `form:"phoneNumber" binding:"required"`
	VehicleName   string `form:"vehicleName" binding:"required"`
	VehicleNumber string `form:"vehicleNumber" binding:"required"`
	VehicleType   string `form:"vehicleType" binding:"required"`
}

// POST /driver/signup — multipart พร้อมไฟล์ "photo"
func (h *AuthController) DriverSignup(c *gin.Context) {
	var req driverSignupReq
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		resp.BadRequest(c, "photo is required")
		return
	}
	src, err := file.Open()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	defer src.Close()

	photoURL, err := h.Photos.Save(file.Filename, src)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	driver, err := h.Auth.SignupDriver(req.Name, req.Email, req.Password, req.PhoneNumber,
		req.VehicleName, req.VehicleNumber, req.VehicleType, photoURL)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			resp.Conflict(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	token, _, err := h.Auth.LoginDriver(req.Email, req.Password)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"token": token, "driver": driver})
}

// POST /driver/login
func (h *AuthController) DriverLogin(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, driver, err := h.Auth.LoginDriver(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			resp.Unauthorized(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token, "driver": driver})
}
