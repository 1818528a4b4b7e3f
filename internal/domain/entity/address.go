package entity

// DefaultCountry is applied when an address is saved without a country.
const DefaultCountry = "India"

// AddressFields is the editable part of an address-book entry.
type AddressFields struct {
	Name                  string `json:"name" validate:"required"`
	MobileNumber          string `json:"mobile_number" validate:"required,numeric,len=10"`
	AlternateMobileNumber string `json:"alternate_mobile_number,omitempty" validate:"omitempty,numeric,len=10"`
	Address               string `json:"address" validate:"required"`
	Locality              string `json:"locality" validate:"required"`
	City                  string `json:"city" validate:"required"`
	State                 string `json:"state" validate:"required"`
	Pincode               string `json:"pincode" validate:"required"`
	Landmark              string `json:"landmark,omitempty"`
	Country               string `json:"country,omitempty"`
}

// Address is an entry of the remote address book.
type Address struct {
	ID int64 `json:"id"`
	AddressFields
}
