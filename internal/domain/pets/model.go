package pets

import (
	"strconv"
	"strings"
)

// Gender define el sexo de la mascota tal como se guarda en la tabla (entero).
// @Enum 0, 1, 2
type Gender int

const (
	GenderUnknown Gender = 0
	GenderMale    Gender = 1
	GenderFemale  Gender = 2
)

// Valid indica si el valor es uno de los tres soportados.
func (g Gender) Valid() bool {
	switch g {
	case GenderUnknown, GenderMale, GenderFemale:
		return true
	default:
		return false
	}
}

func (g Gender) String() string {
	switch g {
	case GenderUnknown:
		return "unknown"
	case GenderMale:
		return "male"
	case GenderFemale:
		return "female"
	default:
		return "gender(" + strconv.Itoa(int(g)) + ")"
	}
}

// ParseGender convierte la etiqueta elegida en el editor al enum.
// Acepta "unknown|male|female" o el número crudo; vacío = unknown.
// Un número fuera de rango se devuelve tal cual: lo rechaza el Store.
func ParseGender(label string) (Gender, error) {
	s := strings.ToLower(strings.TrimSpace(label))
	switch s {
	case "", "unknown":
		return GenderUnknown, nil
	case "male":
		return GenderMale, nil
	case "female":
		return GenderFemale, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return GenderUnknown, ErrInvalidGender
	}
	return Gender(n), nil
}

// Pet es el único registro persistido.
type Pet struct {
	ID int64

	Name  string
	Breed string

	Gender Gender
	Weight int
}

// PetInput es lo que recibe el Store en Create/Update (reemplazo completo).
// Weight nil = sin peso, se guarda como 0.
type PetInput struct {
	Name   string
	Breed  string
	Gender Gender
	Weight *int
}

func (in PetInput) weight() int {
	if in.Weight == nil {
		return 0
	}
	return *in.Weight
}

func (in PetInput) toPet(id int64) Pet {
	return Pet{
		ID:     id,
		Name:   in.Name,
		Breed:  in.Breed,
		Gender: in.Gender,
		Weight: in.weight(),
	}
}
