package main

import (
	"flag"
	"log"

	"hospital-system/pkg/config"
	"hospital-system/pkg/database/postgresql"
	"hospital-system/seeders"
)

func main() {
	runCore := flag.Bool("core", false, "remplir les référentiels de base (services, catégories)")
	runRoles := flag.Bool("roles", false, "créer les rôles et le compte administrateur")
	runAll := flag.Bool("all", false, "lancer tous les seeders")
	flag.Parse()

	if !*runCore && !*runRoles && !*runAll {
		log.Println("Aucun seeder sélectionné.")
		flag.PrintDefaults()
		return
	}

	cfg := config.New()
	dbPool := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbPool.Close()

	if *runAll || *runCore {
		seeders.SeedCoreDictionaries(dbPool)
	}
	if *runAll || *runRoles {
		seeders.SeedRolesAndAdmin(dbPool, cfg)
	}
}
