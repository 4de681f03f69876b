package controllers

import (
	"net/http"

	"PawShelter360/services"
	"PawShelter360/util"

	"github.com/gin-gonic/gin"
)

func Appointment(r *gin.Engine) {
	appointment := r.Group("appointment")
	{
		appointment.POST("/create", CreateAppointment)
		appointment.GET("/fetchAll", FetchAllAppointments)
		appointment.GET("/mine", FetchMyAppointments)
		appointment.GET("/fetch/:id", FetchAppointmentByID)
		appointment.PATCH("/update/:appointmentId", UpdateAppointment)
		appointment.DELETE("/delete/:appointmentId", DeleteAppointmentByCode)
	}
}

/*
* Bind JSON
* And pass to the service
 */
func CreateAppointment(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(util.E(util.ValidationError, err.Error())))
		return
	}
	appointment, err := services.CreateAppointment(c, data)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusCreated, util.SuccessResponse(appointment))
}

func FetchAllAppointments(c *gin.Context) {
	appointments, err := services.FetchAllAppointments(c)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(appointments))
}

func FetchMyAppointments(c *gin.Context) {
	appointments, err := services.FetchMyAppointments(c)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(appointments))
}

// Point read by storage key.
func FetchAppointmentByID(c *gin.Context) {
	appointment, err := services.FetchAppointmentByID(c, c.Param("id"))
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(appointment))
}

func UpdateAppointment(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(util.E(util.ValidationError, err.Error())))
		return
	}
	updated, err := services.UpdateAppointmentByCode(c, c.Param("appointmentId"), data)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(updated))
}

/*
* releaseSlot=true also returns the claimed slot to the vet calendar
 */
func DeleteAppointmentByCode(c *gin.Context) {
	releaseSlot := c.Query("releaseSlot") == "true"
	msg, err := services.DeleteAppointmentByCode(c, c.Param("appointmentId"), releaseSlot)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(msg))
}
