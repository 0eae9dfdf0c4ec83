package fields

// FieldKind classifies a discovered placeholder. The kind is computed once at
// discovery time and carried on the Field so consumers never re-derive it from
// string inspection.
type FieldKind string

const (
	// KindIndependent is a plain user-edited field.
	KindIndependent FieldKind = "independent"

	// KindAmountBase is a numeric amount entered by the user; its stored
	// value is digits and an optional decimal point, never the formatted
	// display string.
	KindAmountBase FieldKind = "amount"

	// KindAmountWords is the read-only spelled-out companion of an amount
	// base field.
	KindAmountWords FieldKind = "amount_words"

	// KindNameGenitive is the read-only genitive form of the reserved name
	// field.
	KindNameGenitive FieldKind = "name_genitive"
)

// Derived reports whether the kind is recomputed from a base field rather
// than edited directly.
func (k FieldKind) Derived() bool {
	return k == KindAmountWords || k == KindNameGenitive
}

// Field models a single input in the generated form. Base is set only on
// derived fields and names the field they are recomputed from.
type Field struct {
	Name     string    `json:"name"`
	Kind     FieldKind `json:"kind"`
	Base     string    `json:"base,omitempty"`
	Label    string    `json:"label,omitempty"`
	ReadOnly bool      `json:"readOnly"`
	Note     string    `json:"note,omitempty"`
}

// FormModel is the ordered field set discovered in one template. Field order
// is first-appearance order with each derived field placed immediately after
// its base.
type FormModel struct {
	Template string  `json:"template,omitempty"`
	Fields   []Field `json:"fields"`
}

// FieldByName returns the named field and whether it exists.
func (m FormModel) FieldByName(name string) (Field, bool) {
	for _, field := range m.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// Has reports whether the named field was discovered.
func (m FormModel) Has(name string) bool {
	_, ok := m.FieldByName(name)
	return ok
}

// Names returns the field names in form order.
func (m FormModel) Names() []string {
	names := make([]string, 0, len(m.Fields))
	for _, field := range m.Fields {
		names = append(names, field.Name)
	}
	return names
}

// Editable reports whether at least one field accepts direct user input.
// Interactive consumers refuse a model where nothing is editable.
func (m FormModel) Editable() bool {
	for _, field := range m.Fields {
		if !field.Kind.Derived() {
			return true
		}
	}
	return false
}
