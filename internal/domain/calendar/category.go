package calendar

import "errors"

// ErrCategoryRejected indica que o banco recusou a categoria (CHECK constraint).
var ErrCategoryRejected = errors.New("calendar: category rejected by store")

type Category string

const (
	CategoryWedding   Category = "wedding"
	CategoryBirthday  Category = "birthday"
	CategoryCorporate Category = "corporate"
	CategoryOther     Category = "other"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryWedding, CategoryBirthday, CategoryCorporate, CategoryOther:
		return true
	}
	return false
}
