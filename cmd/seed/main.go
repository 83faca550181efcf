package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kacameta/internal/config"
	"kacameta/internal/db"
	"kacameta/internal/model"
)

const seedBcryptCost = 12

type seedCategory struct {
	Name        string
	Slug        string
	Description string
}

var seedCategories = []seedCategory{
	{"Pria", "pria", "Kacamata untuk pria dengan berbagai gaya modern dan klasik"},
	{"Wanita", "wanita", "Kacamata elegan untuk wanita dengan desain yang fashionable"},
	{"Anak", "anak", "Kacamata aman dan nyaman untuk anak-anak"},
	{"Anti Radiasi", "anti-radiasi", "Kacamata dengan perlindungan blue light untuk kesehatan mata"},
	{"Sport", "sport", "Kacamata khusus untuk aktivitas olahraga dan outdoor"},
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	log.Info().Msg("seeding database")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}

	if err := gormDB.AutoMigrate(
		&model.Admin{},
		&model.Category{},
		&model.Product{},
		&model.Customer{},
		&model.Order{},
		&model.OrderItem{},
		&model.BotpressSession{},
		&model.PrescriptionConsultation{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	ctx := context.Background()

	categoryIDs := seedCategoriesIdempotent(ctx, gormDB)
	seedProducts(ctx, gormDB, categoryIDs)
	seedAdmins(ctx, gormDB)

	log.Info().Msg("seed complete")
}

func seedCategoriesIdempotent(ctx context.Context, gormDB *gorm.DB) map[string]uint {
	ids := make(map[string]uint, len(seedCategories))
	for _, sc := range seedCategories {
		description := sc.Description
		category := model.Category{
			Name:        sc.Name,
			Slug:        sc.Slug,
			Description: &description,
		}
		if err := gormDB.WithContext(ctx).
			Where(model.Category{Slug: sc.Slug}).
			FirstOrCreate(&category).Error; err != nil {
			log.Fatal().Err(err).Str("slug", sc.Slug).Msg("seed category")
		}
		ids[sc.Slug] = category.ID
	}
	log.Info().Int("count", len(ids)).Msg("categories seeded")
	return ids
}

func seedProducts(ctx context.Context, gormDB *gorm.DB, categoryIDs map[string]uint) {
	products := []model.Product{
		{
			Name:       "Classic Aviator",
			Slug:       "classic-aviator",
			Price:      decimal.NewFromInt(450000),
			Stock:      25,
			Status:     model.ProductStatusAvailable,
			CategoryID: categoryIDs["pria"],
		},
		{
			Name:       "Cat Eye Elegance",
			Slug:       "cat-eye-elegance",
			Price:      decimal.NewFromInt(520000),
			Stock:      18,
			Status:     model.ProductStatusAvailable,
			CategoryID: categoryIDs["wanita"],
		},
		{
			Name:       "Blue Shield Junior",
			Slug:       "blue-shield-junior",
			Price:      decimal.NewFromInt(280000),
			Stock:      30,
			Status:     model.ProductStatusAvailable,
			CategoryID: categoryIDs["anak"],
		},
		{
			Name:       "Anti Radiasi Pro",
			Slug:       "anti-radiasi-pro",
			Price:      decimal.NewFromInt(380000),
			Stock:      0,
			Status:     model.ProductStatusOutOfStock,
			CategoryID: categoryIDs["anti-radiasi"],
		},
	}

	for i := range products {
		if err := gormDB.WithContext(ctx).
			Where(model.Product{Slug: products[i].Slug}).
			FirstOrCreate(&products[i]).Error; err != nil {
			log.Fatal().Err(err).Str("slug", products[i].Slug).Msg("seed product")
		}
	}
	log.Info().Int("count", len(products)).Msg("products seeded")
}

func seedAdmins(ctx context.Context, gormDB *gorm.DB) {
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "admin12345"
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), seedBcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash seed password")
	}

	admins := []model.Admin{
		{
			Name:         "Super Admin",
			Username:     "superadmin",
			Email:        "superadmin@kacameta.com",
			PasswordHash: string(hashed),
			Role:         model.RoleSuperAdmin,
		},
		{
			Name:         "Store Admin",
			Username:     "admin",
			Email:        "admin@kacameta.com",
			PasswordHash: string(hashed),
			Role:         model.RoleAdmin,
		},
	}

	for i := range admins {
		if err := gormDB.WithContext(ctx).
			Where(model.Admin{Email: admins[i].Email}).
			FirstOrCreate(&admins[i]).Error; err != nil {
			log.Fatal().Err(err).Str("email", admins[i].Email).Msg("seed admin")
		}
	}
	log.Info().Int("count", len(admins)).Msg("admins seeded")
}
