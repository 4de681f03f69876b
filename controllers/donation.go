package controllers

import (
	"net/http"

	"PawShelter360/config/authorization"
	"PawShelter360/role"
	"PawShelter360/services"
	"PawShelter360/util"

	"github.com/gin-gonic/gin"
)

func Donation(r *gin.Engine) {
	donation := r.Group("donation")
	{
		donation.POST("/create", CreateDonation)
		donation.GET("/mine", FetchMyDonations)
		donation.GET("/fetchAll", authorization.RequireRole(role.Admin), FetchAllDonations)
	}
}

/*
* Bind JSON
* And pass to the service
 */
func CreateDonation(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(util.E(util.ValidationError, err.Error())))
		return
	}
	donation, err := services.CreateDonation(c, data)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusCreated, util.SuccessResponse(donation))
}

func FetchMyDonations(c *gin.Context) {
	donations, err := services.FetchMyDonations(c)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(donations))
}

func FetchAllDonations(c *gin.Context) {
	donations, err := services.FetchAllDonations(c)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(donations))
}
