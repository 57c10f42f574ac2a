package lender

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mortgage-rates/internal/domain/lender"
	"mortgage-rates/internal/domain/uow"
	"mortgage-rates/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct {
	repo lender.Repository
	uow  uow.UnitOfWork
}

// NewUsecase: reads go through repo, writes that must see a locked row go through tx.
func NewUsecase(r lender.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, uow: tx}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return lender.ErrNotFound
	}
	return err
}

func (u *Usecase) Create(ctx context.Context, in CreateLenderInput) (*LenderDTO, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", lender.ErrInvalidInput)
	}

	l := &lender.Lender{
		LenderID: id.NewID32(),
		Name:     name,
		LogoURL:  optional(in.LogoURL),
		Website:  optional(in.Website),
		Phone:    optional(in.Phone),
		Email:    optional(in.Email),
		Active:   true,
	}
	if in.Active != nil {
		l.Active = *in.Active
	}

	if err := u.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

func (u *Usecase) Get(ctx context.Context, lenderID string) (*LenderDTO, error) {
	l, err := u.repo.GetByLenderID(ctx, lenderID)
	if err != nil {
		return nil, notFound(err)
	}
	return toDTO(l), nil
}

func (u *Usecase) List(ctx context.Context, activeOnly bool) ([]LenderDTO, error) {
	ls, err := u.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	out := make([]LenderDTO, 0, len(ls))
	for i := range ls {
		out = append(out, *toDTO(&ls[i]))
	}
	return out, nil
}

func (u *Usecase) Update(ctx context.Context, lenderID string, in UpdateLenderInput) (*LenderDTO, error) {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be blank", lender.ErrInvalidInput)
	}

	var dto *LenderDTO
	err := u.uow.WithinLenderTx(ctx, lenderID, func(r uow.Repos, l *lender.Lender) error {
		if in.Name != nil {
			l.Name = strings.TrimSpace(*in.Name)
		}
		if in.LogoURL != nil {
			l.LogoURL = optional(in.LogoURL)
		}
		if in.Website != nil {
			l.Website = optional(in.Website)
		}
		if in.Phone != nil {
			l.Phone = optional(in.Phone)
		}
		if in.Email != nil {
			l.Email = optional(in.Email)
		}
		if err := r.Lenders.Save(ctx, l); err != nil {
			return err
		}
		dto = toDTO(l)
		return nil
	})
	if err != nil {
		return nil, notFound(err)
	}
	return dto, nil
}

// SetActive toggles whether the lender's rates are offered to borrowers.
// Rates keep their own flag; a rate is quoted only when both are active.
func (u *Usecase) SetActive(ctx context.Context, lenderID string, active bool) (*LenderDTO, error) {
	var dto *LenderDTO
	err := u.uow.WithinLenderTx(ctx, lenderID, func(r uow.Repos, l *lender.Lender) error {
		if l.Active != active {
			l.Active = active
			if err := r.Lenders.Save(ctx, l); err != nil {
				return err
			}
		}
		dto = toDTO(l)
		return nil
	})
	if err != nil {
		return nil, notFound(err)
	}
	return dto, nil
}

// optional trims s and maps blank to NULL.
func optional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func toDTO(l *lender.Lender) *LenderDTO {
	return &LenderDTO{
		LenderID:  l.LenderID,
		Name:      l.Name,
		LogoURL:   l.LogoURL,
		Website:   l.Website,
		Phone:     l.Phone,
		Email:     l.Email,
		Active:    l.Active,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}
