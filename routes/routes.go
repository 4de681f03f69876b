package routes

import (
	"PawShelter360/config/authorization"
	"PawShelter360/controllers"

	"github.com/gin-gonic/gin"
)

func Routes(r *gin.Engine) {

	//public
	controllers.Auth(r)
	controllers.PublicPets(r)

	//privateroutes
	r.Use(authorization.JWTAuth())
	controllers.Vet(r)
	controllers.Appointment(r)
	controllers.Rescue(r)
	controllers.Pets(r)
	controllers.Donation(r)
	controllers.Volunteer(r)
}
