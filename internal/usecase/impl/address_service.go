package impl

import (
	"context"
	"log/slog"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/go-playground/validator/v10"
)

type addressService struct {
	book     service.AddressBook
	validate *validator.Validate
	logger   *slog.Logger
}

// NewAddressService creates a new address service instance
func NewAddressService(book service.AddressBook, logger *slog.Logger) usecase.AddressUsecase {
	return &addressService{
		book:     book,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

// ListAddresses returns the user's address book
func (s *addressService) ListAddresses(ctx context.Context) ([]entity.Address, error) {
	addresses, err := s.book.ListAddresses(ctx)
	if err != nil {
		return nil, asNetworkError("addresses.list", err)
	}

	return addresses, nil
}

// CreateAddress validates fields and adds them to the address book
func (s *addressService) CreateAddress(ctx context.Context, fields entity.AddressFields) (*entity.Address, error) {
	fields, err := s.normalize(fields)
	if err != nil {
		return nil, err
	}

	address, err := s.book.CreateAddress(ctx, fields)
	if err != nil {
		return nil, asNetworkError("addresses.create", err)
	}
	s.logger.Debug("Address created", slog.Int64("address_id", address.ID))

	return address, nil
}

// UpdateAddress validates fields and replaces the stored address
func (s *addressService) UpdateAddress(ctx context.Context, id int64, fields entity.AddressFields) (*entity.Address, error) {
	if id <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("address id must be positive")
	}

	fields, err := s.normalize(fields)
	if err != nil {
		return nil, err
	}

	address, err := s.book.UpdateAddress(ctx, id, fields)
	if err != nil {
		return nil, asNetworkError("addresses.update", err)
	}

	return address, nil
}

// normalize trims the form, applies the default country and validates it
// before any network call.
func (s *addressService) normalize(fields entity.AddressFields) (entity.AddressFields, error) {
	fields.Name = strings.TrimSpace(fields.Name)
	fields.MobileNumber = strings.TrimSpace(fields.MobileNumber)
	fields.AlternateMobileNumber = strings.TrimSpace(fields.AlternateMobileNumber)
	fields.Address = strings.TrimSpace(fields.Address)
	fields.Locality = strings.TrimSpace(fields.Locality)
	fields.City = strings.TrimSpace(fields.City)
	fields.State = strings.TrimSpace(fields.State)
	fields.Pincode = strings.TrimSpace(fields.Pincode)
	fields.Landmark = strings.TrimSpace(fields.Landmark)
	fields.Country = strings.TrimSpace(fields.Country)
	if fields.Country == "" {
		fields.Country = entity.DefaultCountry
	}

	if err := s.validate.Struct(fields); err != nil {
		return fields, domainerrors.NewValidationError("INVALID_ADDRESS", "Please check the address details").
			WithDetails(describeValidation(err))
	}

	return fields, nil
}

func describeValidation(err error) string {
	fieldErrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok {
		return err.Error()
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		parts = append(parts, fe.Field()+" failed "+fe.Tag())
	}

	return strings.Join(parts, "; ")
}
