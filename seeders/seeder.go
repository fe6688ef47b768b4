package seeders

import (
	"context"
	"log"

	"hospital-system/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedCoreDictionaries remplit les référentiels sans dépendances: services
// hospitaliers et catégories d'équipements.
func SeedCoreDictionaries(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("Remplissage des référentiels de base...")

	if err := seedDepartments(ctx, db); err != nil {
		log.Fatalf("échec du remplissage des services: %v", err)
	}
	if err := seedCategories(ctx, db); err != nil {
		log.Fatalf("échec du remplissage des catégories: %v", err)
	}
	log.Println("Référentiels de base remplis.")
}

// SeedRolesAndAdmin crée les rôles et le compte administrateur initial.
func SeedRolesAndAdmin(db *pgxpool.Pool, cfg *config.Config) {
	ctx := context.Background()
	log.Println("Création des rôles et de l'administrateur...")

	if err := seedRoles(ctx, db); err != nil {
		log.Fatalf("échec du remplissage des rôles: %v", err)
	}
	if err := seedAdminUser(ctx, db); err != nil {
		log.Fatalf("échec de la création de l'administrateur: %v", err)
	}
	log.Println("Rôles et administrateur en place.")
}
