package store

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/JoseDFN/SpaceX-Explorer-App-sub001/internal/domain"
)

// FailureList stores a launch's failure descriptors as a JSON array in a TEXT column.
// An empty list is written as NULL; NULL reads back as an empty list.
type FailureList []domain.Failure

// Scan implements the sql.Scanner interface.
func (f *FailureList) Scan(value any) error {
	list, err := scanJSONList[domain.Failure](value)
	if err != nil {
		return fmt.Errorf("scanning failures: %w", err)
	}
	*f = list
	return nil
}

// Value implements the driver.Valuer interface.
func (f FailureList) Value() (driver.Value, error) {
	return jsonListValue(f)
}

// StringList stores a list of strings as a JSON array in a TEXT column.
type StringList []string

// Scan implements the sql.Scanner interface.
func (s *StringList) Scan(value any) error {
	list, err := scanJSONList[string](value)
	if err != nil {
		return fmt.Errorf("scanning string list: %w", err)
	}
	*s = list
	return nil
}

// Value implements the driver.Valuer interface.
func (s StringList) Value() (driver.Value, error) {
	return jsonListValue(s)
}

func scanJSONList[T any](value any) ([]T, error) {
	var raw []byte
	switch v := value.(type) {
	case nil:
		return []T{}, nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return nil, fmt.Errorf("unsupported type %T", v)
	}
	if len(raw) == 0 {
		return []T{}, nil
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func jsonListValue[T any](list []T) (driver.Value, error) {
	if len(list) == 0 {
		return nil, nil
	}
	encoded, err := json.Marshal(list)
	if err != nil {
		return nil, err
	}
	return string(encoded), nil
}
