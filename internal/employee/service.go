package employee

import (
	"context"
	"errors"
	"fmt"
	"log"

	"hrdesk/api/internal/crypto"
	"hrdesk/api/internal/images"
)

type Repository interface {
	GetEmployeeImage(ctx context.Context, id int64) (*string, error)
	CreateEmployee(ctx context.Context, passwordHash string, fields Update) (int64, error)
	UpdateEmployee(ctx context.Context, id int64, fields Update) (int64, error)
	DeleteEmployeeCascade(ctx context.Context, id int64) error
}

type ImageStore interface {
	Save(upload images.Upload) (string, error)
}

// Cleaner removes stored images after the request that orphaned them.
type Cleaner interface {
	Schedule(name string)
}

// ChangeListener is told when employee rows change.
type ChangeListener interface {
	Invalidate(ctx context.Context)
}

type Service struct {
	repo     Repository
	images   ImageStore
	cleaner  Cleaner
	listener ChangeListener
}

func NewService(repo Repository, imageStore ImageStore, cleaner Cleaner, listener ChangeListener) *Service {
	return &Service{repo: repo, images: imageStore, cleaner: cleaner, listener: listener}
}

func (s *Service) Create(ctx context.Context, values map[string]string, upload *images.Upload) (int64, error) {
	req, err := ParseNewEmployee(values)
	if err != nil {
		return 0, err
	}
	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	fields := req.Fields
	var saved string
	if upload != nil {
		saved, err = s.images.Save(*upload)
		if err != nil {
			return 0, err
		}
		fields = fields.WithImage(saved)
	}

	id, err := s.repo.CreateEmployee(ctx, hash, fields)
	if err != nil {
		s.discard(saved)
		return 0, err
	}
	s.changed(ctx)
	return id, nil
}

// Update writes the subset of whitelisted fields present in values. A new
// upload replaces the stored image and the previous file is removed later.
func (s *Service) Update(ctx context.Context, id int64, values map[string]string, upload *images.Upload) error {
	fields, err := ParseUpdate(values)
	if err != nil {
		return err
	}
	if fields.Empty() && upload == nil {
		return ErrNoFieldsToUpdate
	}

	previous, err := s.repo.GetEmployeeImage(ctx, id)
	if err != nil {
		return err
	}

	var saved string
	if upload != nil {
		saved, err = s.images.Save(*upload)
		if err != nil {
			return err
		}
		fields = fields.WithImage(saved)
	}

	affected, err := s.repo.UpdateEmployee(ctx, id, fields)
	if err == nil && affected == 0 {
		err = ErrNotFound
	}
	if err != nil {
		s.discard(saved)
		return err
	}

	if saved != "" && previous != nil && *previous != "" && *previous != saved {
		s.discard(*previous)
	}
	s.changed(ctx)
	return nil
}

// UpdateSalary is the single-field update used by HR.
func (s *Service) UpdateSalary(ctx context.Context, id int64, raw string) error {
	fields, err := ParseUpdate(map[string]string{FieldSalary.Key(): raw})
	if err != nil {
		return err
	}
	affected, err := s.repo.UpdateEmployee(ctx, id, fields)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	s.changed(ctx)
	return nil
}

// Delete removes an employee with its leaves and attendance rows.
func (s *Service) Delete(ctx context.Context, id int64) error {
	image, err := s.repo.GetEmployeeImage(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteEmployeeCascade(ctx, id); err != nil {
		return err
	}
	if image != nil && *image != "" {
		s.discard(*image)
	}
	s.changed(ctx)
	return nil
}

func (s *Service) discard(name string) {
	if name == "" {
		return
	}
	if s.cleaner == nil {
		log.Printf("image cleanup skipped name=%s: no cleaner configured", name)
		return
	}
	s.cleaner.Schedule(name)
}

func (s *Service) changed(ctx context.Context) {
	if s.listener != nil {
		s.listener.Invalidate(ctx)
	}
}

// IsClientError reports whether err is caused by the request rather than the store.
func IsClientError(err error) bool {
	var validation *ValidationError
	return errors.As(err, &validation) || errors.Is(err, ErrNoFieldsToUpdate)
}
