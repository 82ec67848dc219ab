package pets

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// EditorForm es el formulario del editor tal como lo escribe el usuario.
// Todo es texto; ToInput hace el trim y los parseos antes de llamar al Store.
type EditorForm struct {
	Name   string `json:"name"`
	Breed  string `json:"breed"`
	Gender string `json:"gender"` // unknown|male|female (o 0|1|2)
	Weight string `json:"weight"` // entero 0..MaxWeight; vacío = 0
}

// MaxWeight es el tope del editor: el peso se escribe como entero de 32 bits.
const MaxWeight = math.MaxInt32

// ParseWeight: vacío => 0. Negativos, no numéricos o > MaxWeight => ErrInvalidInput.
func ParseWeight(text string) (int, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: weight must be a whole number", ErrInvalidInput)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: weight must not be negative", ErrInvalidInput)
	}
	if n > MaxWeight {
		return 0, fmt.Errorf("%w: weight must be at most %d", ErrInvalidInput, MaxWeight)
	}
	return n, nil
}

func (f EditorForm) ToInput() (PetInput, error) {
	g, err := ParseGender(f.Gender)
	if err != nil {
		return PetInput{}, err
	}
	w, err := ParseWeight(f.Weight)
	if err != nil {
		return PetInput{}, err
	}

	return PetInput{
		Name:   strings.TrimSpace(f.Name),
		Breed:  strings.TrimSpace(f.Breed),
		Gender: g,
		Weight: &w,
	}, nil
}

// IsBlank: el usuario no completó nada (sin nombre, raza ni peso, sexo unknown).
// El editor no guarda un formulario en blanco (alta ni edición); el Store sí lo aceptaría.
func IsBlank(in PetInput) bool {
	return in.Name == "" && in.Breed == "" && in.weight() == 0 && in.Gender == GenderUnknown
}

// DummyPet es el registro de ejemplo del menú del catálogo.
func DummyPet() PetInput {
	w := 7
	return PetInput{
		Name:   "Toto",
		Breed:  "Terrier",
		Gender: GenderMale,
		Weight: &w,
	}
}
