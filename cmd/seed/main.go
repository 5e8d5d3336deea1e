package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"coursehub/internal/config"
	"coursehub/internal/db"
	"coursehub/internal/model"
	"coursehub/internal/repository"
)

// Demo data for local development: one admin plus a few of its courses.
const (
	seedAdminEmail    = "admin@coursehub.local"
	seedAdminPassword = "changeme"
)

var seedCourses = []model.Course{
	{
		Title:       "Go Basics",
		Description: "Syntax, tooling, and the standard library from zero.",
		Price:       100,
		Image: model.CourseImage{
			ExternalID: "seed/go-basics.png",
			URL:        "https://placehold.co/600x400?text=Go+Basics",
		},
	},
	{
		Title:       "Practical SQL",
		Description: "Schema design, indexes, and query tuning.",
		Price:       149,
		Image: model.CourseImage{
			ExternalID: "seed/practical-sql.png",
			URL:        "https://placehold.co/600x400?text=Practical+SQL",
		},
	},
	{
		Title:       "REST API Design",
		Description: "Resource modeling, auth, and versioning in practice.",
		Price:       89,
		Image: model.CourseImage{
			ExternalID: "seed/rest-api-design.png",
			URL:        "https://placehold.co/600x400?text=REST+API+Design",
		},
	},
}

func main() {
	log.Println("Starting seed script...")

	_ = godotenv.Load()
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.Admin{}, &model.User{}, &model.Course{}, &model.Purchase{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	adminRepo := repository.NewAdminRepository(gormDB)
	courseRepo := repository.NewCourseRepository(gormDB)

	admin, err := seedAdmin(ctx, adminRepo)
	if err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}
	log.Printf("Seed admin ready: %s", admin.Email)

	created, skipped, err := seedDemoCourses(ctx, gormDB, courseRepo, admin)
	if err != nil {
		log.Fatalf("Failed to seed courses: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New courses created: %d", created)
	log.Printf("  - Existing courses skipped: %d", skipped)
}

// seedAdmin creates the demo admin if it does not exist yet.
func seedAdmin(ctx context.Context, repo repository.PrincipalRepository) (*model.Principal, error) {
	existing, err := repo.FindByEmail(ctx, seedAdminEmail)
	if err == nil {
		return existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(seedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := &model.Principal{
		FirstName:    "Demo",
		LastName:     "Admin",
		Email:        seedAdminEmail,
		PasswordHash: string(hashed),
	}
	if err := repo.Create(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// seedDemoCourses inserts the sample courses owned by the demo admin,
// skipping titles that already exist.
func seedDemoCourses(ctx context.Context, gormDB *gorm.DB, repo repository.CourseRepository, admin *model.Principal) (created int, skipped int, err error) {
	for _, course := range seedCourses {
		var count int64
		if err := gormDB.WithContext(ctx).Model(&model.Course{}).
			Where("title = ? AND creator_id = ?", course.Title, admin.ID).
			Count(&count).Error; err != nil {
			return created, skipped, err
		}
		if count > 0 {
			skipped++
			continue
		}

		course.CreatorID = admin.ID
		if err := repo.Create(ctx, &course); err != nil {
			return created, skipped, err
		}
		created++
	}
	return created, skipped, nil
}
