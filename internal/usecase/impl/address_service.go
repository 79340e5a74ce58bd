package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"
)

// addressService implements the AddressUsecase interface. Every error is
// returned to the caller unchanged.
type addressService struct {
	repo   repository.AddressRepository
	logger *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(repo repository.AddressRepository, logger *slog.Logger) usecase.AddressUsecase {
	return &addressService{repo: repo, logger: logger}
}

func (srv *addressService) ListAddresses(ctx context.Context, token string) ([]entity.Address, error) {
	return srv.repo.Addresses(ctx, token)
}

func (srv *addressService) CreateAddress(ctx context.Context, input entity.AddressInput, token string) (*entity.Address, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	return srv.repo.CreateAddress(ctx, input, token)
}

func (srv *addressService) UpdateAddress(ctx context.Context, id int64, patch entity.AddressPatch, token string) (*entity.Address, error) {
	if err := validateInput(patch); err != nil {
		return nil, err
	}

	return srv.repo.UpdateAddress(ctx, id, patch, token)
}

func (srv *addressService) DeleteAddress(ctx context.Context, id int64, token string) error {
	return srv.repo.DeleteAddress(ctx, id, token)
}
