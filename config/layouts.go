package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"

	"seatgrid-cli/model"
)

var validate = validator.New()

// LoadTheaters reads a JSON file describing theater configurations. An empty
// path returns the built-in theaters.
func LoadTheaters(path string) ([]model.TheaterConfig, error) {
	if strings.TrimSpace(path) == "" {
		return model.BuiltinTheaters(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout file: %w", err)
	}

	var theaters []model.TheaterConfig
	if err := json.Unmarshal(data, &theaters); err != nil {
		return nil, fmt.Errorf("parse layout file %s: %w", path, err)
	}
	if len(theaters) == 0 {
		return nil, fmt.Errorf("layout file %s contains no theaters", path)
	}

	for i := range theaters {
		if err := ValidateTheater(&theaters[i]); err != nil {
			return nil, fmt.Errorf("layout file %s, theater %d: %w", path, i, err)
		}
	}
	return theaters, nil
}

// ValidateTheater checks the required fields of a theater configuration and
// that every section references a known seat type. The per-row pattern sum
// invariant is deliberately left unchecked; a short pattern degrades to gaps.
func ValidateTheater(theater *model.TheaterConfig) error {
	if err := validate.Struct(theater); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok {
			return fmt.Errorf("invalid theater config: %s", formatFieldErrors(fieldErrs))
		}
		return err
	}
	for _, section := range theater.Layout.Sections {
		if _, ok := theater.Layout.SeatTypes[section.SeatType]; !ok {
			return fmt.Errorf("section %q references unknown seat type %q", section.ID, section.SeatType)
		}
	}
	return nil
}

func formatFieldErrors(errs validator.ValidationErrors) string {
	var msgs []string
	for _, fieldErr := range errs {
		switch fieldErr.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fieldErr.Namespace()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", fieldErr.Namespace(), fieldErr.Param()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", fieldErr.Namespace(), fieldErr.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", fieldErr.Namespace()))
		}
	}
	return strings.Join(msgs, "; ")
}
