package domain

import (
	shareddomain "finance-tracker/internal/shared_kernel/domain"
)

const (
	KeyAmount      Key = "amount"
	KeyDescription Key = "description"
	KeyCategory    Key = "category"
	KeyDate        Key = "date"
)

type defaultField struct {
	key   Key
	label string
	kind  Kind
}

var defaultFields = map[Context][]defaultField{
	ContextExpense: {
		{key: KeyDescription, label: "Descripción", kind: KindText},
		{key: KeyAmount, label: "Monto ($)", kind: KindNumber},
		{key: KeyCategory, label: "Categoría", kind: KindSelect},
	},
	ContextIncome: {
		{key: KeyDescription, label: "Descripción", kind: KindText},
		{key: KeyAmount, label: "Monto ($)", kind: KindNumber},
	},
}

// CoreKeys lists the keys backed by dedicated record columns for context.
func CoreKeys(context Context) []Key {
	fields := defaultFields[context]
	keys := make([]Key, len(fields))
	for i, f := range fields {
		keys[i] = f.key
	}
	return keys
}

func IsCoreKey(context Context, key Key) bool {
	for _, f := range defaultFields[context] {
		if f.key == key {
			return true
		}
	}
	return false
}

// DefaultFields builds the core, enabled field set seeded for a new owner.
func DefaultFields(owner shareddomain.OwnerID, context Context) ([]FieldDefinition, error) {
	result := make([]FieldDefinition, 0, len(defaultFields[context]))
	for i, f := range defaultFields[context] {
		field, err := NewFieldDefinitionBuilder().
			WithOwner(owner).
			WithContext(context).
			WithKey(f.key).
			WithLabel(f.label).
			WithKind(f.kind).
			WithOrder(i).
			WithCore(true).
			Build()
		if err != nil {
			return nil, err
		}
		result = append(result, field)
	}
	return result, nil
}
