package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/gorm/clause"

	"classroombooking/internal/database"
	"classroombooking/internal/repository"
)

type classroomSeed struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	Building  string    `gorm:"column:building"`
	Capacity  int       `gorm:"column:capacity"`
	IsActive  bool      `gorm:"column:is_active"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (classroomSeed) TableName() string { return "classrooms" }

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "classrooms.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Seeding classrooms...")
	rooms := make([]classroomSeed, 0, 8)
	for i := 0; i < 8; i++ {
		rooms = append(rooms, classroomSeed{
			ID:       int64(i + 1),
			Name:     fmt.Sprintf("Room %c", 'A'+i),
			Building: "Main",
			Capacity: 30,
			IsActive: true,
		})
	}

	tx := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "building", "capacity", "is_active"}),
	}).Create(&rooms)
	if tx.Error != nil {
		log.Fatal("Seed failed:", tx.Error)
	}

	log.Printf("Seeded %d classrooms", len(rooms))
}
