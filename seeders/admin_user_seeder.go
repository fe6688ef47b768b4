package seeders

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

const adminEmail = "admin@hopital.local"

func seedAdminUser(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - compte administrateur...")

	var userID uint64
	err := db.QueryRow(ctx, `SELECT id FROM users WHERE LOWER(email) = LOWER($1)`, adminEmail).Scan(&userID)
	if err == nil {
		log.Println("    - l'administrateur existe déjà, rien à faire.")
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("vérification de l'administrateur: %w", err)
	}

	var roleID uint64
	if err := db.QueryRow(ctx, `SELECT id FROM roles WHERE LOWER(name) = 'admin'`).Scan(&roleID); err != nil {
		return fmt.Errorf("rôle 'admin' introuvable, lancer d'abord le seeder des rôles: %w", err)
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "ChangeMoi123!"
		log.Println("    - ADMIN_PASSWORD absent, mot de passe par défaut utilisé.")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hachage du mot de passe: %w", err)
	}

	_, err = db.Exec(ctx,
		`INSERT INTO users (first_name, last_name, username, email, password, role_id, scanning_access)
		 VALUES ($1, $2, $3, $4, $5, $6, TRUE)`,
		"Admin", "Système", "admin", adminEmail, string(hashed), roleID)
	if err != nil {
		return fmt.Errorf("insertion de l'administrateur: %w", err)
	}
	log.Println("    - administrateur créé:", adminEmail)
	return nil
}
