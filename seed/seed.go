package seed

import (
	"fmt"

	"rental-server/db"
	"rental-server/entities"

	"gorm.io/gorm/clause"
)

// Step is one named stage of seeding.
type Step struct {
	Name string
	Run  func() error
}

type seeder struct {
	database   db.Database
	data       *Data
	users      []entities.User
	properties []entities.Property
}

// Steps returns the seeding stages in the order they must run. Later steps
// depend on ids assigned by earlier ones.
func Steps(database db.Database, data *Data) []Step {
	s := &seeder{database: database, data: data}
	return []Step{
		{Name: "Dropping tables", Run: func() error { return db.Drop(s.database) }},
		{Name: "Creating tables", Run: func() error { return db.Migrate(s.database) }},
		{Name: "Inserting property types", Run: s.insertPropertyTypes},
		{Name: "Inserting users", Run: s.insertUsers},
		{Name: "Inserting properties", Run: s.insertProperties},
		{Name: "Inserting reviews", Run: s.insertReviews},
		{Name: "Inserting images", Run: s.insertImages},
		{Name: "Inserting favourites", Run: s.insertFavourites},
	}
}

// Run executes every step, stopping at the first failure.
func Run(database db.Database, data *Data) error {
	for _, step := range Steps(database, data) {
		if err := step.Run(); err != nil {
			return fmt.Errorf("%s: %w", step.Name, err)
		}
	}
	return nil
}

func (s *seeder) create(rows interface{}) error {
	return s.database.GetDB().Omit(clause.Associations).Create(rows).Error
}

func (s *seeder) insertPropertyTypes() error {
	if len(s.data.PropertyTypes) == 0 {
		return nil
	}
	types := make([]entities.PropertyType, 0, len(s.data.PropertyTypes))
	for _, t := range s.data.PropertyTypes {
		types = append(types, entities.PropertyType{Name: t.PropertyType, Description: t.Description})
	}
	return s.create(&types)
}

func (s *seeder) insertUsers() error {
	s.users = make([]entities.User, 0, len(s.data.Users))
	for _, u := range s.data.Users {
		s.users = append(s.users, entities.User{
			FirstName:   u.FirstName,
			Surname:     u.Surname,
			Email:       u.Email,
			PhoneNumber: u.PhoneNumber,
			IsHost:      u.IsHost,
			Avatar:      u.Avatar,
		})
	}
	if len(s.users) == 0 {
		return nil
	}
	return s.create(&s.users)
}

func (s *seeder) insertProperties() error {
	properties, err := FormatProperties(s.data.Properties, UserRef(s.users))
	if err != nil {
		return err
	}
	s.properties = properties
	if len(s.properties) == 0 {
		return nil
	}
	return s.create(&s.properties)
}

func (s *seeder) insertReviews() error {
	reviews, err := FormatReviews(s.data.Reviews, UserRef(s.users), PropertyRef(s.properties))
	if err != nil || len(reviews) == 0 {
		return err
	}
	return s.create(&reviews)
}

func (s *seeder) insertImages() error {
	images, err := FormatImages(s.data.Images, PropertyRef(s.properties))
	if err != nil || len(images) == 0 {
		return err
	}
	return s.create(&images)
}

func (s *seeder) insertFavourites() error {
	favourites, err := FormatFavourites(s.data.Favourites, UserRef(s.users), PropertyRef(s.properties))
	if err != nil || len(favourites) == 0 {
		return err
	}
	return s.create(&favourites)
}
