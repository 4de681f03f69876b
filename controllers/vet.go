package controllers

import (
	"net/http"

	"PawShelter360/config/authorization"
	"PawShelter360/role"
	"PawShelter360/services"
	"PawShelter360/util"

	"github.com/gin-gonic/gin"
)

func Vet(r *gin.Engine) {
	vet := r.Group("vet")
	{
		vet.POST("/create", authorization.RequireRole(role.Admin), CreateVet)
		vet.GET("/fetchAll", FetchAllVets)
		vet.GET("/fetch/:vetId", FetchVetByCode)
		vet.GET("/availability", FetchAvailability)
		vet.PATCH("/slot/:vetId", authorization.RequireRole(role.Admin), SetSlotAvailability)
	}
}

/*
* Bind JSON
* And pass to the service
 */
func CreateVet(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(util.E(util.ValidationError, err.Error())))
		return
	}
	vet, err := services.CreateVet(c, data)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusCreated, util.SuccessResponse(vet))
}

func FetchAllVets(c *gin.Context) {
	vets, err := services.FetchAllVets(c)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(vets))
}

func FetchVetByCode(c *gin.Context) {
	vet, err := services.FetchVetByCode(c, c.Param("vetId"))
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(vet))
}

/*
* Date comes from the query, time is optional
* Returns vets with an open slot per hour label
 */
func FetchAvailability(c *gin.Context) {
	date := c.Query("date")
	timeFilter := c.Query("time")
	grid, err := services.FetchAvailability(c, date, timeFilter)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(grid))
}

func SetSlotAvailability(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(util.E(util.ValidationError, err.Error())))
		return
	}
	if err := services.SetSlotAvailability(c, c.Param("vetId"), data); err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse("slot updated"))
}
