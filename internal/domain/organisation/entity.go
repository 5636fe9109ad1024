package organisation

import (
	"errors"

	"github.com/google/uuid"
)

var ErrUnknownKind = errors.New("unknown organisation kind")

// Kind names one reference list. The value is also the URL segment.
type Kind string

const (
	KindGrade      Kind = "grades"
	KindProfession Kind = "professions"
	KindUnit       Kind = "units"
	KindGender     Kind = "genders"
)

var kindTables = map[Kind]string{
	KindGrade:      "organisation_grades",
	KindProfession: "organisation_professions",
	KindUnit:       "organisation_units",
	KindGender:     "users_genders",
}

func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := kindTables[k]; !ok {
		return "", ErrUnknownKind
	}
	return k, nil
}

func (k Kind) Table() string {
	return kindTables[k]
}

func Kinds() []Kind {
	return []Kind{KindGrade, KindProfession, KindUnit, KindGender}
}

type Item struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
