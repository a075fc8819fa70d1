// Copyright (c) 2026 Advora. All rights reserved.

package advocate

import (
	"context"
	"log/slog"

	"github.com/fk-solace/advora/internal/platform/validate"
	"github.com/fk-solace/advora/pkg/listparams"
	"github.com/fk-solace/advora/pkg/pagination"
	"github.com/fk-solace/advora/pkg/slice"
)

// Service orchestrates the listing pipeline and advocate writes.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs the advocate service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List runs the full pipeline: fetch the hydrated set, apply the filter
// conjunction, sort, then window. A filter that fails to compile is logged
// and skipped; it never fails the request.
func (service *Service) List(context context.Context, query listparams.Query) ([]*Advocate, pagination.Meta, error) {
	advocates, err := service.repo.FetchAll(context)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	predicates, buildErrs := BuildPredicates(query.Filters)
	for _, buildErr := range buildErrs {
		service.logger.Warn("filter_predicate_skipped", slog.String("reason", buildErr.Error()))
	}

	matched := slice.Filter(advocates, func(a *Advocate) bool {
		return Matches(a, predicates)
	})

	if len(matched) == 0 {
		return []*Advocate{}, pagination.EmptyMeta(query.Page.Size, query.Page.CursorField), nil
	}

	Sort(matched, BuildSortExpressions(query.Sort))

	window, meta := pagination.Paginate(matched, pagination.Request{
		Number:      query.Page.Number,
		Size:        query.Page.Size,
		Cursor:      query.Page.Cursor,
		CursorField: query.Page.CursorField,
	}, FieldValue)

	return window, meta, nil
}

// Get retrieves one advocate by id.
func (service *Service) Get(context context.Context, id string) (*Advocate, error) {
	return service.repo.FindByID(context, id)
}

// Create validates and persists a new advocate with its location and
// specialty associations.
func (service *Service) Create(context context.Context, a *Advocate) error {
	validator := &validate.Validator{}

	validator.
		Required(FieldFirstName, a.FirstName).MaxLen(FieldFirstName, a.FirstName, 100).
		Required(FieldLastName, a.LastName).MaxLen(FieldLastName, a.LastName, 100).
		Required(FieldDegree, a.Degree).MaxLen(FieldDegree, a.Degree, 20).
		NonNegative(FieldYearsOfExperience, a.YearsOfExperience).
		Custom(FieldYearsOfExperience, a.YearsOfExperience > 80, "Implausible experience value").
		Custom(FieldPhoneNumber, a.PhoneNumber < 0, "Must be a positive number")

	for _, name := range a.Specialties {
		validator.Required(FieldSpecialty, name).MaxLen(FieldSpecialty, name, 120)
	}

	if err := validator.Err(); err != nil {
		return err
	}

	if a.Specialties == nil {
		a.Specialties = []string{}
	}

	if err := service.repo.Create(context, a); err != nil {
		return err
	}

	service.logger.Info("advocate_created",
		slog.String("advocate_id", a.ID),
		slog.String("last_name", a.LastName),
	)
	return nil
}

// Seed loads the bundled sample dataset. Individual failures abort the run
// so a partially seeded directory is visible immediately.
func (service *Service) Seed(context context.Context) (int, error) {
	samples := SampleAdvocates()
	for _, sample := range samples {
		if err := service.Create(context, sample); err != nil {
			return 0, err
		}
	}

	service.logger.Info("directory_seeded", slog.Int("count", len(samples)))
	return len(samples), nil
}
