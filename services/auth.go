package services

import (
	"log"
	"time"

	"PawShelter360/config/db"
	"PawShelter360/config/jwt"
	"PawShelter360/role"
	"PawShelter360/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

/*
* Validate name, email and password
* Reject duplicate emails, hash the password and allocate a user code
* Role defaults to the adopter role; staff roles are assigned by an admin
 */
func Register(c *gin.Context, data map[string]interface{}) (map[string]interface{}, error) {
	for _, f := range []string{"name", "email", "password"} {
		if _, err := util.GetTrimmedString(data, f); err != nil {
			log.Println("Error from GetTrimmedString: ", err)
			return nil, err
		}
	}
	email := data["email"].(string)
	count, err := db.CountDocuments(c, util.UserCollection, bson.M{"email": email})
	if err != nil {
		log.Println("Error while checking email uniqueness: ", err)
		return nil, util.E(util.InternalError, "unable to check email")
	}
	if count > 0 {
		return nil, util.E(util.Conflict, util.EMAIL_ALREADY_REGISTERED)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(data["password"].(string)), bcrypt.DefaultCost)
	if err != nil {
		log.Println("Error while hashing password: ", err)
		return nil, util.E(util.InternalError, "unable to hash password")
	}

	seq, err := NextSequence(c, "U")
	if err != nil {
		return nil, err
	}
	code := FormatCode("U", seq)

	userRole, _ := data["role"].(string)
	if !role.IsValid(userRole) {
		userRole = role.User
	}
	phoneNo, _ := data["phoneNo"].(string)
	user := bson.M{
		"code":      code,
		"name":      data["name"],
		"email":     email,
		"phoneNo":   phoneNo,
		"password":  string(hashed),
		"role":      userRole,
		"isActive":  true,
		"createdAt": time.Now(),
		"updatedAt": time.Now(),
	}
	if _, err := db.CreateOne(c, util.UserCollection, user); err != nil {
		log.Println("Error while creating user: ", err)
		return nil, util.E(util.InternalError, "unable to create user")
	}
	return bson.M{"code": code, "name": user["name"], "email": email, "role": userRole}, nil
}

/*
* Find the user by email and compare the bcrypt hash
* On success issue the JWT carrying {id, role, email}
 */
func Login(c *gin.Context, data map[string]interface{}) (map[string]interface{}, error) {
	email, err := util.GetTrimmedString(data, "email")
	if err != nil {
		return nil, err
	}
	password, err := util.GetTrimmedString(data, "password")
	if err != nil {
		return nil, err
	}

	user := make(map[string]interface{})
	if err := db.FindOne(c, util.UserCollection, bson.M{"email": email}, &user); err != nil {
		log.Println("Error from FindOne while fetching user: ", err)
		return nil, util.E(util.Unauthorized, util.INVALID_CREDENTIALS)
	}
	stored, _ := user["password"].(string)
	if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)); err != nil {
		return nil, util.E(util.Unauthorized, util.INVALID_CREDENTIALS)
	}
	if active, ok := user["isActive"].(bool); ok && !active {
		return nil, util.E(util.Forbidden, "account is disabled")
	}

	code, _ := user["code"].(string)
	userRole, _ := user["role"].(string)
	token, err := jwt.GenerateJWT(code, email, userRole)
	if err != nil {
		log.Println("Error while generating token: ", err)
		return nil, util.E(util.InternalError, "unable to generate token")
	}
	return bson.M{
		"token": token,
		"code":  code,
		"role":  userRole,
		"email": email,
	}, nil
}
