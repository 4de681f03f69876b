package controllers

import (
	"net/http"

	"PawShelter360/config/authorization"
	"PawShelter360/role"
	"PawShelter360/services"
	"PawShelter360/util"

	"github.com/gin-gonic/gin"
)

// PublicPets registers the unauthenticated catalog routes.
func PublicPets(r *gin.Engine) {
	r.GET("/pets", FetchAllPets)
	r.GET("/pets/fetch/:petId", FetchPetByPetId)
}

func Pets(r *gin.Engine) {
	pets := r.Group("pets")
	{
		pets.POST("/create", authorization.RequireRole(role.Admin), CreatePet)
		pets.PATCH("/update/:petId", authorization.RequireRole(role.Admin), UpdatePet)
	}
}

func FetchAllPets(c *gin.Context) {
	pets, err := services.FetchAllPets(c, c.Query("status"))
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(pets))
}

func FetchPetByPetId(c *gin.Context) {
	pet, err := services.FetchPetByPetId(c, c.Param("petId"))
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(pet))
}

/*
* Bind JSON
* And pass to the service
 */
func CreatePet(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(util.E(util.ValidationError, err.Error())))
		return
	}
	pet, err := services.CreatePet(c, data)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusCreated, util.SuccessResponse(pet))
}

func UpdatePet(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(util.E(util.ValidationError, err.Error())))
		return
	}
	updated, err := services.UpdatePetByPetId(c, c.Param("petId"), data)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(updated))
}
