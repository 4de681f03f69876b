package controllers

import (
	"net/http"

	"PawShelter360/services"
	"PawShelter360/util"

	"github.com/gin-gonic/gin"
)

func Auth(r *gin.Engine) {
	auth := r.Group("auth")
	{
		auth.POST("/register", Register)
		auth.POST("/login", Login)
	}
}

/*
* Bind JSON
* And pass to the service
 */
func Register(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(util.E(util.ValidationError, err.Error())))
		return
	}
	user, err := services.Register(c, data)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusCreated, util.SuccessResponse(user))
}

func Login(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(util.E(util.ValidationError, err.Error())))
		return
	}
	session, err := services.Login(c, data)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(session))
}
