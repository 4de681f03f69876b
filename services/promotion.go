package services

import (
	"context"
	"log"
	"strings"
	"time"

	"PawShelter360/config/db"
	"PawShelter360/models"
	"PawShelter360/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// speciesPrefix selects the public identifier prefix. Only Dog and Cat have
// canonical profiles; every other species is a silent no-op for promotion.
func speciesPrefix(species string) (string, bool) {
	switch species {
	case "Dog":
		return "D", true
	case "Cat":
		return "C", true
	default:
		return "", false
	}
}

/*
* Runs synchronously inside the rescue update that set adoptionStatus=Adopted
* Preconditions, in order: supported species, breed of at least 2 characters,
* no existing (name, species) profile. Any skip leaves the rescue update
* untouched; any error is the caller's to log and swallow.
* The identifier comes from the atomic per-prefix counter, never from
* scanning existing profiles.
 */
func PromoteRescue(ctx context.Context, rescue map[string]interface{}) error {
	species, _ := rescue["species"].(string)
	prefix, supported := speciesPrefix(species)
	if !supported {
		log.Println("Skipping promotion, unsupported species: ", species)
		return nil
	}

	breed, _ := rescue["breed"].(string)
	if len(strings.TrimSpace(breed)) < 2 {
		log.Println("Skipping promotion, breed missing or too short")
		return nil
	}

	name, _ := rescue["name"].(string)
	existing := make(map[string]interface{})
	err := db.FindOne(ctx, util.PetCollection, bson.M{"name": name, "species": species}, &existing)
	if err == nil {
		log.Println("Skipping promotion, profile already exists for ", name, " (", species, ")")
		return nil
	}
	if err != mongo.ErrNoDocuments {
		log.Println("Error while checking for existing profile: ", err)
		return util.E(util.InternalError, "unable to check existing pet profile")
	}

	seq, err := NextSequence(ctx, prefix)
	if err != nil {
		return err
	}
	petId := FormatCode(prefix, seq)

	age := 0
	switch v := rescue["age"].(type) {
	case int:
		age = v
	case int32:
		age = int(v)
	case int64:
		age = int(v)
	case float64:
		age = int(v)
	}
	sex, _ := rescue["sex"].(string)
	description, _ := rescue["description"].(string)
	image, _ := rescue["image"].(string)
	if image == "" {
		image = util.PLACEHOLDER_IMAGE
	}
	rescueCode, _ := rescue["code"].(string)

	profile := bson.M{
		"petId":       petId,
		"name":        name,
		"species":     species,
		"breed":       strings.TrimSpace(breed),
		"age":         age,
		"sex":         sex,
		"status":      models.StatusAdopted,
		"description": description,
		"image":       image,
		"rescueCode":  rescueCode,
		"createdAt":   time.Now(),
		"createdBy":   "promotion",
		"updatedAt":   time.Now(),
		"updatedBy":   "promotion",
	}
	if _, err := db.CreateOne(ctx, util.PetCollection, profile); err != nil {
		log.Println("Error while creating canonical pet profile: ", err)
		return util.E(util.InternalError, "unable to create pet profile")
	}
	log.Println("Promoted rescue ", rescueCode, " to canonical profile ", petId)
	return nil
}
