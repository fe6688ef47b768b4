package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedDepartments(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - table 'departments'...")
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)
	for _, name := range departmentsData {
		if _, err := tx.Exec(ctx,
			`INSERT INTO departments (name) VALUES ($1) ON CONFLICT (LOWER(name)) DO NOTHING`, name); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func seedCategories(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - table 'categories'...")
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)
	for _, c := range categoriesData {
		var exists bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM categories WHERE LOWER(name) = LOWER($1))`, c.Name).Scan(&exists); err != nil {
			return err
		}
		if exists {
			continue
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO categories (name, description) VALUES ($1, $2)`, c.Name, c.Description); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func seedRoles(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - table 'roles'...")
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)
	for _, name := range rolesData {
		if _, err := tx.Exec(ctx,
			`INSERT INTO roles (name) VALUES ($1) ON CONFLICT (LOWER(name)) DO NOTHING`, name); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
