package controllers

import (
	"net/http"

	"PawShelter360/config/authorization"
	"PawShelter360/role"
	"PawShelter360/services"
	"PawShelter360/util"

	"github.com/gin-gonic/gin"
)

func Rescue(r *gin.Engine) {
	rescue := r.Group("rescue")
	{
		rescue.POST("/create", authorization.RequireRole(role.Admin, role.Vet), CreateRescue)
		rescue.GET("/fetchAll", FetchAllRescues)
		rescue.GET("/fetch/:code", FetchRescueByCode)
		rescue.PATCH("/update/:code", authorization.RequireRole(role.Admin, role.Vet), UpdateRescue)
		rescue.POST("/medical/:code", authorization.RequireRole(role.Admin, role.Vet), AddMedicalRecord)
		rescue.POST("/vaccination/:code", authorization.RequireRole(role.Admin, role.Vet), AddVaccination)
		rescue.PATCH("/confirm/:code", authorization.RequireRole(role.Vet), ConfirmRescue)
		rescue.PATCH("/archive/:code", authorization.RequireRole(role.Admin), ArchiveRescue)
		rescue.DELETE("/delete/:code", authorization.RequireRole(role.Admin), DeleteRescueByCode)
	}
}

/*
* Bind JSON
* And pass to the service
 */
func CreateRescue(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(util.E(util.ValidationError, err.Error())))
		return
	}
	rescue, err := services.CreateRescue(c, data)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusCreated, util.SuccessResponse(rescue))
}

func FetchAllRescues(c *gin.Context) {
	rescues, err := services.FetchAllRescues(c)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(rescues))
}

func FetchRescueByCode(c *gin.Context) {
	rescue, err := services.FetchRescueByCode(c, c.Param("code"))
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(rescue))
}

/*
* Generic partial update, the vehicle for adoption-status transitions
* The promotion outcome is not reported back explicitly
 */
func UpdateRescue(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(util.E(util.ValidationError, err.Error())))
		return
	}
	updated, err := services.UpdateRescueByCode(c, c.Param("code"), data)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(updated))
}

func AddMedicalRecord(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(util.E(util.ValidationError, err.Error())))
		return
	}
	if err := services.AddMedicalRecord(c, c.Param("code"), data); err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse("medical record added"))
}

func AddVaccination(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(util.E(util.ValidationError, err.Error())))
		return
	}
	if err := services.AddVaccination(c, c.Param("code"), data); err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse("vaccination added"))
}

func ConfirmRescue(c *gin.Context) {
	if err := services.ConfirmRescue(c, c.Param("code")); err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse("rescue record confirmed"))
}

func ArchiveRescue(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(util.E(util.ValidationError, err.Error())))
		return
	}
	if err := services.ArchiveRescue(c, c.Param("code"), data); err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse("rescue record archived"))
}

func DeleteRescueByCode(c *gin.Context) {
	msg, err := services.DeleteRescueByCode(c, c.Param("code"))
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(msg))
}
