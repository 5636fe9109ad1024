package usecase

import (
	"context"
	"errors"
	"strings"

	"skill-matrix/internal/domain/organisation"
	"skill-matrix/internal/repository"
)

var (
	ErrUnknownOrganisationKind  = errors.New("unknown organisation kind")
	ErrOrganisationItemConflict = errors.New("organisation item already exists")
)

type OrganisationUsecase interface {
	List(ctx context.Context, kind string) ([]organisation.Item, error)
	Create(ctx context.Context, kind string, name string) (organisation.Item, error)
}

type Organisation struct {
	repo repository.OrganisationRepository
}

func NewOrganisationUsecase(repo repository.OrganisationRepository) *Organisation {
	return &Organisation{repo: repo}
}

func (u *Organisation) List(ctx context.Context, kind string) ([]organisation.Item, error) {
	k, err := organisation.ParseKind(kind)
	if err != nil {
		return nil, ErrUnknownOrganisationKind
	}
	items, err := u.repo.List(ctx, k)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Organisation) Create(ctx context.Context, kind string, name string) (organisation.Item, error) {
	k, err := organisation.ParseKind(kind)
	if err != nil {
		return organisation.Item{}, ErrUnknownOrganisationKind
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return organisation.Item{}, ErrInvalidInput
	}

	item, err := u.repo.Create(ctx, k, name)
	if err != nil {
		if errors.Is(err, repository.ErrOrganisationItemConflict) {
			return organisation.Item{}, ErrOrganisationItemConflict
		}
		return organisation.Item{}, ErrInternal
	}
	return item, nil
}
