// Copyright (c) 2026 Advora. All rights reserved.

package advocate

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fk-solace/advora/internal/platform/apperr"
	"github.com/fk-solace/advora/internal/platform/database/schema"
	"github.com/fk-solace/advora/internal/platform/dberr"
	"github.com/fk-solace/advora/pkg/uuid"
)

// PostgresRepository implements [Repository] using pgx.
//
// The scan query leans on two PostgreSQL features to hydrate the projection
// in a single round-trip: json_agg collapses the specialty junction into a
// name array per advocate, and a LATERAL join resolves at most one location
// row (earliest created wins when several exist).
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed advocate store.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// projection is the shared SELECT body for FetchAll and FindByID.
func projection() string {
	return fmt.Sprintf(`
		SELECT
			a.%s, a.%s, a.%s, a.%s, a.%s, a.%s, a.%s, a.%s,
			COALESCE(loc.%s, ''), COALESCE(loc.%s, ''), COALESCE(loc.%s, ''),
			COALESCE((
				SELECT json_agg(s.%s ORDER BY s.%s)
				FROM %s s
				JOIN %s asp ON s.%s = asp.%s
				WHERE asp.%s = a.%s
			), '[]') AS specialties
		FROM %s a
		LEFT JOIN LATERAL (
			SELECT l.%s, l.%s, l.%s
			FROM %s l
			WHERE l.%s = a.%s
			ORDER BY l.%s ASC
			LIMIT 1
		) loc ON true
	`,
		schema.Advocate.ID, schema.Advocate.FirstName, schema.Advocate.LastName,
		schema.Advocate.Degree, schema.Advocate.YearsOfExperience, schema.Advocate.PhoneNumber,
		schema.Advocate.CreatedAt, schema.Advocate.UpdatedAt,
		schema.Location.City, schema.Location.State, schema.Location.Country,
		schema.Specialty.Name, schema.Specialty.Name,
		schema.Specialty.Table,
		schema.AdvocateSpecialty.Table, schema.Specialty.ID, schema.AdvocateSpecialty.SpecialtyID,
		schema.AdvocateSpecialty.AdvocateID, schema.Advocate.ID,
		schema.Advocate.Table,
		schema.Location.City, schema.Location.State, schema.Location.Country,
		schema.Location.Table,
		schema.Location.AdvocateID, schema.Advocate.ID,
		schema.Location.CreatedAt,
	)
}

// FetchAll returns the complete hydrated advocate projection in stable
// creation order (newest first), matching the listing's default sort.
func (repository *PostgresRepository) FetchAll(context context.Context) ([]*Advocate, error) {
	query := projection() + fmt.Sprintf(" ORDER BY a.%s DESC, a.%s DESC", schema.Advocate.CreatedAt, schema.Advocate.ID)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "fetch_advocates")
	}
	defer rows.Close()

	var advocates []*Advocate
	for rows.Next() {
		a, err := scanAdvocate(rows)
		if err != nil {
			return nil, err
		}
		advocates = append(advocates, a)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "fetch_advocates")
	}

	return advocates, nil
}

// FindByID retrieves one hydrated advocate by primary key.
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Advocate, error) {
	query := projection() + fmt.Sprintf(" WHERE a.%s = $1", schema.Advocate.ID)

	rows, err := repository.pool.Query(context, query, id)
	if err != nil {
		return nil, dberr.Wrap(err, "find_advocate")
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, dberr.Wrap(err, "find_advocate")
		}
		return nil, apperr.NotFound("Advocate")
	}
	return scanAdvocate(rows)
}

// scanAdvocate maps one projected row, unmarshalling the aggregated
// specialty names.
func scanAdvocate(rows pgx.Rows) (*Advocate, error) {
	a := &Advocate{}
	var specialtiesJSON []byte

	err := rows.Scan(
		&a.ID, &a.FirstName, &a.LastName, &a.Degree, &a.YearsOfExperience,
		&a.PhoneNumber, &a.CreatedAt, &a.UpdatedAt,
		&a.City, &a.State, &a.Country,
		&specialtiesJSON,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "scan_advocate")
	}

	if err := json.Unmarshal(specialtiesJSON, &a.Specialties); err != nil {
		return nil, apperr.Internal(fmt.Errorf("postgres: failed to unmarshal specialties: %w", err))
	}
	if a.Specialties == nil {
		a.Specialties = []string{}
	}

	return a, nil
}

// Create persists an advocate, its location row, and its specialty links in
// one transaction. Specialty names are upserted so seeding and creation can
// reference them freely; the junction insert is batched.
func (repository *PostgresRepository) Create(context context.Context, a *Advocate) error {
	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_create_advocate")
	}
	defer transaction.Rollback(context)

	if a.ID == "" {
		a.ID = uuid.New()
	}

	insertAdvocate := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.Advocate.Table,
		schema.Advocate.ID, schema.Advocate.FirstName, schema.Advocate.LastName,
		schema.Advocate.Degree, schema.Advocate.YearsOfExperience, schema.Advocate.PhoneNumber,
		schema.Advocate.CreatedAt, schema.Advocate.UpdatedAt,
		schema.Advocate.CreatedAt, schema.Advocate.UpdatedAt,
	)

	err = transaction.QueryRow(context, insertAdvocate,
		a.ID, a.FirstName, a.LastName, a.Degree, a.YearsOfExperience, a.PhoneNumber,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_advocate")
	}

	if a.City != "" || a.State != "" || a.Country != "" {
		insertLocation := fmt.Sprintf(`
			INSERT INTO %s (%s, %s, %s, %s, %s, %s)
			VALUES ($1, $2, $3, $4, $5, NOW())
		`,
			schema.Location.Table,
			schema.Location.ID, schema.Location.AdvocateID,
			schema.Location.City, schema.Location.State, schema.Location.Country,
			schema.Location.CreatedAt,
		)
		if _, err := transaction.Exec(context, insertLocation, uuid.New(), a.ID, a.City, a.State, a.Country); err != nil {
			return dberr.Wrap(err, "create_advocate_location")
		}
	}

	if err := repository.linkSpecialties(context, transaction, a.ID, a.Specialties); err != nil {
		return err
	}

	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err, "commit_create_advocate")
	}
	return nil
}

// linkSpecialties upserts the named specialties and rewrites the junction
// rows for the advocate inside the caller's transaction.
func (repository *PostgresRepository) linkSpecialties(context context.Context, transaction pgx.Tx, advocateID string, names []string) error {
	clearQuery := fmt.Sprintf("DELETE FROM %s WHERE %s = $1",
		schema.AdvocateSpecialty.Table, schema.AdvocateSpecialty.AdvocateID)
	if _, err := transaction.Exec(context, clearQuery, advocateID); err != nil {
		return dberr.Wrap(err, "clear_advocate_specialties")
	}

	if len(names) == 0 {
		return nil
	}

	// Upsert each name, keeping the existing row's id on conflict.
	upsertQuery := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, NOW())
		ON CONFLICT (%s) DO UPDATE SET %s = EXCLUDED.%s
		RETURNING %s
	`,
		schema.Specialty.Table,
		schema.Specialty.ID, schema.Specialty.Name, schema.Specialty.CreatedAt,
		schema.Specialty.Name, schema.Specialty.Name, schema.Specialty.Name,
		schema.Specialty.ID,
	)

	specialtyIDs := make([]string, 0, len(names))
	for _, name := range names {
		var specialtyID string
		if err := transaction.QueryRow(context, upsertQuery, uuid.New(), name).Scan(&specialtyID); err != nil {
			return dberr.Wrap(err, "upsert_specialty")
		}
		specialtyIDs = append(specialtyIDs, specialtyID)
	}

	insertQuery := fmt.Sprintf("INSERT INTO %s (%s, %s) VALUES ($1, $2) ON CONFLICT DO NOTHING",
		schema.AdvocateSpecialty.Table, schema.AdvocateSpecialty.AdvocateID, schema.AdvocateSpecialty.SpecialtyID)
	batch := &pgx.Batch{}
	for _, specialtyID := range specialtyIDs {
		batch.Queue(insertQuery, advocateID, specialtyID)
	}

	response := transaction.SendBatch(context, batch)
	if err := response.Close(); err != nil {
		return dberr.Wrap(err, "link_advocate_specialties")
	}
	return nil
}
