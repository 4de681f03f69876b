package services

import (
	"log"
	"time"

	"PawShelter360/config/db"
	"PawShelter360/config/redis"
	"PawShelter360/models"
	"PawShelter360/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// FetchAllPets is the public catalog of canonical profiles.
func FetchAllPets(c *gin.Context, statusFilter string) ([]map[string]interface{}, error) {
	filter := bson.M{}
	if statusFilter != "" {
		filter["status"] = statusFilter
	}
	pets, err := db.FindAll(c, util.PetCollection, filter, nil)
	if err != nil {
		log.Println("Error from FindAll while fetching pets: ", err)
		return nil, util.E(util.InternalError, "unable to fetch pets")
	}
	return pets, nil
}

func FetchPetByPetId(c *gin.Context, petId string) (map[string]interface{}, error) {
	key := util.PetKey + petId
	pet := make(map[string]interface{})
	if found, err := redis.GetCache(c, key, &pet); err == nil && found {
		return pet, nil
	}
	if err := db.FindOne(c, util.PetCollection, bson.M{"petId": petId}, &pet); err != nil {
		log.Println("Error from FindOne while fetching pet: ", err)
		return nil, util.E(util.NotFound, util.PET_NOT_FOUND)
	}
	if err := redis.SetCache(c, key, pet); err != nil {
		log.Println("Error while caching pet: ", err)
	}
	return pet, nil
}

/*
* Admin creation of a profile outside the promotion flow
* Uses the same per-prefix counter so identifiers stay dense
 */
func CreatePet(c *gin.Context, data map[string]interface{}) (map[string]interface{}, error) {
	createdBy, err := requesterCode(c)
	if err != nil {
		return nil, err
	}
	for _, f := range []string{"name", "species"} {
		if _, err := util.GetTrimmedString(data, f); err != nil {
			return nil, err
		}
	}
	species := data["species"].(string)
	prefix, supported := speciesPrefix(species)
	if !supported {
		return nil, util.E(util.ValidationError, "species must be Dog or Cat")
	}

	seq, err := NextSequence(c, prefix)
	if err != nil {
		return nil, err
	}
	petId := FormatCode(prefix, seq)

	age := 0
	if v, ok := data["age"].(float64); ok {
		age = int(v)
	}
	breed, _ := data["breed"].(string)
	sex, _ := data["sex"].(string)
	description, _ := data["description"].(string)
	status, _ := data["status"].(string)
	if status == "" {
		status = models.StatusAvailable
	}
	image, _ := data["image"].(string)
	if image == "" {
		image = util.PLACEHOLDER_IMAGE
	}

	pet := bson.M{
		"petId":       petId,
		"name":        data["name"],
		"species":     species,
		"breed":       breed,
		"age":         age,
		"sex":         sex,
		"status":      status,
		"description": description,
		"image":       image,
		"createdAt":   time.Now(),
		"createdBy":   createdBy,
		"updatedAt":   time.Now(),
		"updatedBy":   createdBy,
	}
	if _, err := db.CreateOne(c, util.PetCollection, pet); err != nil {
		log.Println("Error while creating pet: ", err)
		return nil, util.E(util.InternalError, "unable to create pet")
	}
	if err := redis.SetCache(c, util.PetKey+petId, pet); err != nil {
		log.Println("Error while caching new pet: ", err)
	}
	return pet, nil
}

func UpdatePetByPetId(c *gin.Context, petId string, data map[string]interface{}) (map[string]interface{}, error) {
	updatedBy, err := requesterCode(c)
	if err != nil {
		return nil, err
	}
	for _, immutable := range []string{"_id", "petId", "createdAt", "createdBy"} {
		delete(data, immutable)
	}
	data["updatedAt"] = time.Now()
	data["updatedBy"] = updatedBy

	filter := bson.M{"petId": petId}
	res, err := db.UpdateOne(c, util.PetCollection, filter, bson.M{"$set": data})
	if err != nil {
		log.Println("Error while updating pet: ", err)
		return nil, util.E(util.InternalError, "unable to update pet")
	}
	if res.MatchedCount == 0 {
		return nil, util.E(util.NotFound, util.PET_NOT_FOUND)
	}
	updated := make(map[string]interface{})
	if err := db.FindOne(c, util.PetCollection, filter, &updated); err != nil {
		log.Println("Error from FindOne after updating pet: ", err)
		return nil, util.E(util.InternalError, "unable to fetch updated pet")
	}
	key := util.PetKey + petId
	if err := redis.DeleteCache(c, key); err != nil {
		log.Println("Error while deleting pet cache: ", err)
	}
	if err := redis.SetCache(c, key, updated); err != nil {
		log.Println("Error while caching updated pet: ", err)
	}
	return updated, nil
}
