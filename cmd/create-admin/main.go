// Creates or updates an administrator account.
//
//	go run ./cmd/create-admin -email admin@example.org -name "Site Admin" -password secret
package main

import (
	"errors"
	"flag"
	"log"

	"charity-foundation-api/config"
	"charity-foundation-api/models"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	email := flag.String("email", "", "admin email")
	name := flag.String("name", "", "admin display name")
	password := flag.String("password", "", "admin password")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	config.InitDB()
	config.MigrateDB()

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	var user models.AdminUser
	err = config.DB.Where("email = ?", *email).First(&user).Error
	switch {
	case err == nil:
		user.Password = string(hash)
		if *name != "" {
			user.Name = *name
		}
		if err := config.DB.Save(&user).Error; err != nil {
			log.Fatal("Failed to update admin:", err)
		}
		log.Printf("Updated admin %s", *email)
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = models.AdminUser{Name: *name, Email: *email, Password: string(hash)}
		if err := config.DB.Create(&user).Error; err != nil {
			log.Fatal("Failed to create admin:", err)
		}
		log.Printf("Created admin %s", *email)
	default:
		log.Fatal("Failed to look up admin:", err)
	}
}
