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

type DriverController struct {
	Match     *services.MatchService
	Rides     *services.RideService
	Locations *services.LocationService
}

func NewDriverController(match *services.MatchService, rides *services.RideService, locations *services.LocationService) *DriverController {
	return &DriverController{Match: match, Rides: rides, Locations: locations}
}

// POST /driver/update-location
func (h *DriverController) UpdateLocation(c *gin.Context) {
	driverID := utils.CurrentAccountID(c)

	var req updateLocationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	driver, err := h.Locations.UpdateDriverLocation(c.Request.Context(), driverID, *req.Lat, *req.Lon)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDriverNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, geocode.ErrNoResults):
			resp.BadRequest(c, "could not resolve location")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"driver": driver})
}

// GET /driver/get-rides → requested rides ใน pincode ของ driver
func (h *DriverController) GetRides(c *gin.Context) {
	driverID := utils.CurrentAccountID(c)

	rides, err := h.Match.OpenRidesForDriver(driverID)
	if err != nil {
		if errors.Is(err, services.ErrDriverNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"rides": rides})
}

type updateRideReq struct {
	Status string `json:"status" binding:"required"`
}

// PUT /driver/update-ride/:rideID → รับงานหรือเลื่อนสถานะ
func (h *DriverController) UpdateRide(c *gin.Context) {
	driverID := utils.CurrentAccountID(c)

	rideID, err := strconv.ParseUint(c.Param("rideID"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid ride id")
		return
	}

	var req updateRideReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	ride, err := h.Rides.UpdateRideStatus(c.Request.Context(), driverID, uint(rideID), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownStatus):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrRideNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrNotRideDriver):
			resp.Forbidden(c, err.Error())
		case errors.Is(err, services.ErrInvalidTransition), errors.Is(err, services.ErrRideConflict):
			resp.Conflict(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"ride": ride})
}

// GET /driver/get-ride/:rideID → ride + ข้อมูลย่อของ rider
func (h *DriverController) GetRide(c *gin.Context) {
	rideID, err := strconv.ParseUint(c.Param("rideID"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid ride id")
		return
	}

	ride, rider, err := h.Rides.GetRide(uint(rideID))
	if err != nil {
		if errors.Is(err, services.ErrRideNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ride": ride, "rider": rider})
}
