package impl

import (
	"regexp"
	"unicode/utf8"

	"smachna/internal/domain/entity"
	domainerrors "smachna/internal/domain/errors"

	"smachna/internal/usecase"
)

// belarusPhonePattern accepts the national +375 format with the common mobile
// and Minsk city operator codes.
var belarusPhonePattern = regexp.MustCompile(`^\+375(17|25|29|33|44)\d{7}$`)

const (
	maxNameLength    = 255
	maxAddressLength = 500
	minCategories    = 1
	maxCategories    = 2
	minCuisines      = 1
	maxCuisines      = 3
)

// validateEstablishmentInput checks the full create payload, collecting one
// field error per offending field. All checks run before any write.
func validateEstablishmentInput(input *usecase.EstablishmentInput) *domainerrors.ValidationError {
	var fields []domainerrors.FieldError

	// Lengths are counted in runes so Cyrillic names get the full budget.
	if input.Name == "" || utf8.RuneCountInString(input.Name) > maxNameLength {
		fields = append(fields, domainerrors.FieldError{Field: "name", Message: "name is required and must be 1-255 characters"})
	}
	if !entity.City(input.City).IsValid() {
		fields = append(fields, domainerrors.FieldError{Field: "city", Message: "city must be one of the supported Belarus cities"})
	}
	if input.Address == "" || utf8.RuneCountInString(input.Address) > maxAddressLength {
		fields = append(fields, domainerrors.FieldError{Field: "address", Message: "address is required and must be 1-500 characters"})
	}
	fields = append(fields, validateCoordinates(input.Latitude, input.Longitude)...)
	fields = append(fields, validateCategories(input.Categories)...)
	fields = append(fields, validateCuisines(input.Cuisines)...)
	if input.PriceRange != "" && !entity.PriceRange(input.PriceRange).IsValid() {
		fields = append(fields, domainerrors.FieldError{Field: "price_range", Message: "price_range must be one of $, $$, $$$"})
	}
	if input.Phone != "" && !belarusPhonePattern.MatchString(input.Phone) {
		fields = append(fields, domainerrors.FieldError{Field: "phone", Message: "phone must be a Belarus number in +375XXXXXXXXX format"})
	}
	if len(input.WorkingHours) == 0 {
		fields = append(fields, domainerrors.FieldError{Field: "working_hours", Message: "working_hours is required"})
	}

	if len(fields) > 0 {
		return domainerrors.NewValidationError(fields...)
	}

	return nil
}

// validateEstablishmentUpdate checks only the fields present in a partial update.
func validateEstablishmentUpdate(update *usecase.EstablishmentUpdate) *domainerrors.ValidationError {
	var fields []domainerrors.FieldError

	if update.Name != nil && (*update.Name == "" || utf8.RuneCountInString(*update.Name) > maxNameLength) {
		fields = append(fields, domainerrors.FieldError{Field: "name", Message: "name must be 1-255 characters"})
	}
	if update.City != nil && !entity.City(*update.City).IsValid() {
		fields = append(fields, domainerrors.FieldError{Field: "city", Message: "city must be one of the supported Belarus cities"})
	}
	if update.Address != nil && (*update.Address == "" || utf8.RuneCountInString(*update.Address) > maxAddressLength) {
		fields = append(fields, domainerrors.FieldError{Field: "address", Message: "address must be 1-500 characters"})
	}
	// On a partial update an absent coordinate keeps the stored value, so only
	// the supplied one is bound-checked.
	if update.Latitude != nil && (*update.Latitude < entity.MinLatitude || *update.Latitude > entity.MaxLatitude) {
		fields = append(fields, domainerrors.FieldError{Field: "latitude", Message: "latitude must be within 51.0-56.0"})
	}
	if update.Longitude != nil && (*update.Longitude < entity.MinLongitude || *update.Longitude > entity.MaxLongitude) {
		fields = append(fields, domainerrors.FieldError{Field: "longitude", Message: "longitude must be within 23.0-33.0"})
	}
	if update.Categories != nil {
		fields = append(fields, validateCategories(update.Categories)...)
	}
	if update.Cuisines != nil {
		fields = append(fields, validateCuisines(update.Cuisines)...)
	}
	if update.PriceRange != nil && *update.PriceRange != "" && !entity.PriceRange(*update.PriceRange).IsValid() {
		fields = append(fields, domainerrors.FieldError{Field: "price_range", Message: "price_range must be one of $, $$, $$$"})
	}
	if update.Phone != nil && *update.Phone != "" && !belarusPhonePattern.MatchString(*update.Phone) {
		fields = append(fields, domainerrors.FieldError{Field: "phone", Message: "phone must be a Belarus number in +375XXXXXXXXX format"})
	}

	if len(fields) > 0 {
		return domainerrors.NewValidationError(fields...)
	}

	return nil
}

func validateCoordinates(lat, lon *float64) []domainerrors.FieldError {
	var fields []domainerrors.FieldError

	if lat == nil || *lat < entity.MinLatitude || *lat > entity.MaxLatitude {
		fields = append(fields, domainerrors.FieldError{Field: "latitude", Message: "latitude is required and must be within 51.0-56.0"})
	}
	if lon == nil || *lon < entity.MinLongitude || *lon > entity.MaxLongitude {
		fields = append(fields, domainerrors.FieldError{Field: "longitude", Message: "longitude is required and must be within 23.0-33.0"})
	}

	return fields
}

func validateCategories(values []string) []domainerrors.FieldError {
	if len(values) < minCategories || len(values) > maxCategories {
		return []domainerrors.FieldError{{Field: "categories", Message: "categories must contain 1-2 values"}}
	}
	for _, v := range values {
		if !entity.Category(v).IsValid() {
			return []domainerrors.FieldError{{Field: "categories", Message: "unknown category: " + v}}
		}
	}

	return nil
}

func validateCuisines(values []string) []domainerrors.FieldError {
	if len(values) < minCuisines || len(values) > maxCuisines {
		return []domainerrors.FieldError{{Field: "cuisines", Message: "cuisines must contain 1-3 values"}}
	}
	for _, v := range values {
		if !entity.Cuisine(v).IsValid() {
			return []domainerrors.FieldError{{Field: "cuisines", Message: "unknown cuisine: " + v}}
		}
	}

	return nil
}

func toCategories(values []string) []entity.Category {
	result := make([]entity.Category, 0, len(values))
	for _, v := range values {
		result = append(result, entity.Category(v))
	}

	return result
}

func toCuisines(values []string) []entity.Cuisine {
	result := make([]entity.Cuisine, 0, len(values))
	for _, v := range values {
		result = append(result, entity.Cuisine(v))
	}

	return result
}
