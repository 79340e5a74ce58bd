package entity

import "time"

// AddressType labels an address in the user's address book.
type AddressType string

const (
	AddressTypeHome  AddressType = "home"
	AddressTypeWork  AddressType = "work"
	AddressTypeOther AddressType = "other"
)

// Address is an entry of the user's address book. At most one address per
// user is the default; the server enforces that, clients must not assume it.
type Address struct {
	ID            int64       `json:"id"`
	User          int64       `json:"user"`
	AddressType   AddressType `json:"address_type"`
	ApartmentFlat string      `json:"apartment_flat"`
	Street        string      `json:"street"`
	Landmark      string      `json:"landmark"`
	Village       string      `json:"village"`
	Mandal        string      `json:"mandal"`
	District      string      `json:"district"`
	State         string      `json:"state"`
	Pincode       string      `json:"pincode"`
	FullAddress   string      `json:"full_address"`
	IsDefault     bool        `json:"is_default"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// AddressInput is the writable part of an address.
type AddressInput struct {
	AddressType   AddressType `json:"address_type" validate:"required,oneof=home work other"`
	ApartmentFlat string      `json:"apartment_flat"`
	Street        string      `json:"street"`
	Landmark      string      `json:"landmark"`
	Village       string      `json:"village"`
	Mandal        string      `json:"mandal"`
	District      string      `json:"district" validate:"required"`
	State         string      `json:"state" validate:"required"`
	Pincode       string      `json:"pincode" validate:"required,numeric,len=6"`
	FullAddress   string      `json:"full_address"`
	IsDefault     bool        `json:"is_default"`
}

// AddressPatch carries a partial address update; nil fields are omitted.
type AddressPatch struct {
	AddressType   *AddressType `json:"address_type,omitempty" validate:"omitempty,oneof=home work other"`
	ApartmentFlat *string      `json:"apartment_flat,omitempty"`
	Street        *string      `json:"street,omitempty"`
	Landmark      *string      `json:"landmark,omitempty"`
	Village       *string      `json:"village,omitempty"`
	Mandal        *string      `json:"mandal,omitempty"`
	District      *string      `json:"district,omitempty"`
	State         *string      `json:"state,omitempty"`
	Pincode       *string      `json:"pincode,omitempty" validate:"omitempty,numeric,len=6"`
	FullAddress   *string      `json:"full_address,omitempty"`
	IsDefault     *bool        `json:"is_default,omitempty"`
}
