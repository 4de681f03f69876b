package controllers

import (
	"net/http"

	"PawShelter360/config/authorization"
	"PawShelter360/role"
	"PawShelter360/services"
	"PawShelter360/util"

	"github.com/gin-gonic/gin"
)

func Volunteer(r *gin.Engine) {
	volunteer := r.Group("volunteer")
	{
		volunteer.POST("/apply", ApplyVolunteer)
		volunteer.GET("/fetchAll", authorization.RequireRole(role.Admin), FetchAllVolunteers)
		volunteer.PATCH("/update/:volunteerId", authorization.RequireRole(role.Admin), UpdateVolunteerStatus)
	}
}

/*
* Bind JSON
* And pass to the service
 */
func ApplyVolunteer(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(util.E(util.ValidationError, err.Error())))
		return
	}
	volunteer, err := services.ApplyVolunteer(c, data)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusCreated, util.SuccessResponse(volunteer))
}

func FetchAllVolunteers(c *gin.Context) {
	volunteers, err := services.FetchAllVolunteers(c)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(volunteers))
}

func UpdateVolunteerStatus(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(util.E(util.ValidationError, err.Error())))
		return
	}
	if err := services.UpdateVolunteerStatus(c, c.Param("volunteerId"), data); err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse("volunteer application updated"))
}
