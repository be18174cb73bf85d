package model

import (
	"encoding/json"
	"strconv"
)

// MaxIngredients is the number of indexed ingredient/measure pairs a meal
// record carries upstream (strIngredient1..20, strMeasure1..20).
const MaxIngredients = 20

// IngredientSlot is one positional ingredient/measure pair as the upstream
// API reports it. Either value may be blank.
type IngredientSlot struct {
	Ingredient string
	Measure    string
}

// Meal is a single recipe record from the upstream recipe API.
//
// Null and absent upstream fields decode to the empty string. The indexed
// ingredient fields are collected into Ingredients by position.
type Meal struct {
	ID           string `json:"idMeal"`
	Name         string `json:"strMeal"`
	Category     string `json:"strCategory,omitempty"`
	Area         string `json:"strArea,omitempty"`
	Instructions string `json:"strInstructions,omitempty"`
	Thumbnail    string `json:"strMealThumb,omitempty"`
	Tags         string `json:"strTags,omitempty"`
	YouTube      string `json:"strYoutube,omitempty"`
	Source       string `json:"strSource,omitempty"`

	Ingredients [MaxIngredients]IngredientSlot `json:"-"`
}

func ingredientKey(i int) string { return "strIngredient" + strconv.Itoa(i+1) }
func measureKey(i int) string    { return "strMeasure" + strconv.Itoa(i+1) }

// UnmarshalJSON implements json.Unmarshaler
func (m *Meal) UnmarshalJSON(data []byte) error {
	type plain Meal
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	for i := range p.Ingredients {
		p.Ingredients[i] = IngredientSlot{
			Ingredient: stringField(fields, ingredientKey(i)),
			Measure:    stringField(fields, measureKey(i)),
		}
	}

	*m = Meal(p)
	return nil
}

// MarshalJSON implements json.Marshaler, producing the upstream field layout.
// Blank ingredient slots are omitted.
func (m Meal) MarshalJSON() ([]byte, error) {
	type plain Meal
	base, err := json.Marshal(plain(m))
	if err != nil {
		return nil, err
	}

	out := make(map[string]any)
	if err := json.Unmarshal(base, &out); err != nil {
		return nil, err
	}
	for i, slot := range m.Ingredients {
		if slot.Ingredient != "" {
			out[ingredientKey(i)] = slot.Ingredient
		}
		if slot.Measure != "" {
			out[measureKey(i)] = slot.Measure
		}
	}
	return json.Marshal(out)
}

// stringField returns the string value stored under key, treating absent,
// null and non-string values as empty.
func stringField(fields map[string]json.RawMessage, key string) string {
	raw, ok := fields[key]
	if !ok {
		return ""
	}
	var s *string
	if err := json.Unmarshal(raw, &s); err != nil || s == nil {
		return ""
	}
	return *s
}
