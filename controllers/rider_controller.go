package controllers

import (
	"errors"
	"strconv"

	"github.com/vishwaszadte/ride-sharing-app-backend/pkg/geocode"
	"github.com/vishwaszadte/ride-sharing-app-backend/pkg/resp"
	"github.com/vishwaszadte/ride-sharing-app-backend/services"
	"github.com/vishwaszadte/ride-sharing-app-backend/utils"

	"github.com/gin-gonic/gin"
)

type RiderController struct {
	Match     *services.MatchService
	Rides     *services.RideService
	Locations *services.LocationService
}

func NewRiderController(match *services.MatchService, rides *services.RideService, locations *services.LocationService) *RiderController {
	return &RiderController{Match: match, Rides: rides, Locations: locations}
}

// GET /rider/home → rider ตัวเอง + driver ใน pincode เดียวกัน
func (h *RiderController) Home(c *gin.Context) {
	riderID := utils.CurrentAccountID(c)

	rider, drivers, err := h.Match.DriversNearRider(riderID)
	if err != nil {
		if errors.Is(err, services.ErrRiderNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"rider": rider, "drivers": drivers})
}

// lat/lon เป็น pointer เพราะ 0 เป็นพิกัดที่ valid
type updateLocationReq struct {
	Lat *float64 `json:"lat" binding:"required"`
	Lon *float64 `json:"lon" binding:"required"`
}

// POST /rider/update-location
func (h *RiderController) UpdateLocation(c *gin.Context) {
	riderID := utils.CurrentAccountID(c)

	var req updateLocationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rider, err := h.Locations.UpdateRiderLocation(c.Request.Context(), riderID, *req.Lat, *req.Lon)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRiderNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, geocode.ErrNoResults):
			resp.BadRequest(c, "could not resolve location")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"rider": rider})
}

type requestRideReq struct {
	Source      string `json:"source" binding:"required"`
	Destination string `json:"destination" binding:"required"`
}

// POST /rider/request-ride
func (h *RiderController) RequestRide(c *gin.Context) {
	riderID := utils.CurrentAccountID(c)

	var req requestRideReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	_, err := h.Rides.RequestRide(c.Request.Context(), riderID, req.Source, req.Destination)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRiderNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrActiveRideExists):
			resp.Conflict(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, gin.H{"message": "ride requested successfully"})
}

// GET /rider/get-ride-info → ride ล่าสุด + driver ถ้ามีคนรับแล้ว
func (h *RiderController) GetRideInfo(c *gin.Context) {
	riderID := utils.CurrentAccountID(c)

	ride, driver, err := h.Rides.GetRideInfoForRider(riderID)
	if err != nil {
		if errors.Is(err, services.ErrRideNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	out := gin.H{"ride": ride}
	if driver != nil {
		out["driver"] = driver
	}
	resp.OK(c, out)
}

// GET /rider/get-ride-status → สำหรับ polling; "none" ถ้าไม่มี ride ค้าง
func (h *RiderController) GetRideStatus(c *gin.Context) {
	riderID := utils.CurrentAccountID(c)

	status, err := h.Rides.GetRideStatusForRider(c.Request.Context(), riderID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"status": status})
}

// GET /rider/driver-detail/:driverID
func (h *RiderController) DriverDetail(c *gin.Context) {
	driverID, err := strconv.ParseUint(c.Param("driverID"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid driver id")
		return
	}

	driver, err := h.Match.DriverByID(uint(driverID))
	if err != nil {
		if errors.Is(err, services.ErrDriverNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"driver": driver})
}
