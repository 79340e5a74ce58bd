package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// AddressUsecase defines address book operations. An empty token means the session token.
type AddressUsecase interface {
	ListAddresses(ctx context.Context, token string) ([]entity.Address, error)
	CreateAddress(ctx context.Context, input entity.AddressInput, token string) (*entity.Address, error)
	UpdateAddress(ctx context.Context, id int64, patch entity.AddressPatch, token string) (*entity.Address, error)
	DeleteAddress(ctx context.Context, id int64, token string) error
}
