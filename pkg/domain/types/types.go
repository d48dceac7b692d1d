package types

import (
	"github.com/google/uuid"
)

// Region represents a region name as it appears in the dataset
type Region string

// String returns the string representation
func (r Region) String() string {
	return string(r)
}

// LocalAuthority represents a local authority name
type LocalAuthority string

// String returns the string representation
func (a LocalAuthority) String() string {
	return string(a)
}

// Measure represents the statistic being reported
type Measure string

// String returns the string representation
func (m Measure) String() string {
	return string(m)
}

// FinancialYear represents a fiscal period label such as "2019-20"
type FinancialYear string

// String returns the string representation
func (y FinancialYear) String() string {
	return string(y)
}

// DatasetID identifies one load of the dataset
type DatasetID string

// String returns the string representation
func (id DatasetID) String() string {
	return string(id)
}

// NewDatasetID creates a new DatasetID using UUID v7
func NewDatasetID() (DatasetID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return DatasetID(id.String()), nil
}

// LocalAuthorities converts raw names into LocalAuthority values, skipping empty ones
func LocalAuthorities(names []string) []LocalAuthority {
	var result []LocalAuthority
	for _, name := range names {
		if name == "" {
			continue
		}
		result = append(result, LocalAuthority(name))
	}
	return result
}
