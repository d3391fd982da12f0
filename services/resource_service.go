package services

import (
	"esantiye/models"
	"esantiye/validator"
)

// ResourceService handles list and create for one entity
type ResourceService struct {
	repo      ResourceRepository
	validator *validator.Validator
	spec      ResourceSpec
}

// NewResourceService creates a service bound to spec
func NewResourceService(repo ResourceRepository, v *validator.Validator, spec ResourceSpec) *ResourceService {
	return &ResourceService{
		repo:      repo,
		validator: v,
		spec:      spec,
	}
}

func (s *ResourceService) Spec() ResourceSpec {
	return s.spec
}

// List returns every row of the resource's table
func (s *ResourceService) List() ([]models.Row, error) {
	return s.repo.List(s.spec.Table, s.spec.NewestFirst)
}

// Create validates the mandatory field and inserts a row holding only that
// field. Anything else in fields is ignored.
func (s *ResourceService) Create(fields map[string]any) (int64, error) {
	if !s.spec.Creatable {
		return 0, ErrReadOnlyResource
	}

	value := fields[s.spec.Required]
	if err := s.validator.ValidateField(s.spec.Required, value, "required"); err != nil {
		return 0, &ValidationError{
			Field:   s.spec.Required,
			Message: s.spec.RequiredMessage,
			Err:     err,
		}
	}

	return s.repo.Insert(s.spec.Table, map[string]any{s.spec.Required: value})
}
