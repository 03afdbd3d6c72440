package domain

import (
	"encoding/json"
	"finance-tracker/internal/infra/utils"
	schemadomain "finance-tracker/internal/schema/domain"
	shareddomain "finance-tracker/internal/shared_kernel/domain"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Composition is a submission split into core values and the attribute bag.
type Composition struct {
	Amount      decimal.Decimal
	Description string
	Category    *string
	OccurredOn  string
	Attributes  Attributes
}

// Entry is one decoded value in catalog order.
type Entry struct {
	Key   schemadomain.Key
	Label string
	Value any
}

type Decoded struct {
	Entries []Entry
	Values  map[string]any
}

// Encode splits a flat submission into the core values of fieldContext and an
// attribute bag holding every other key verbatim. today fills a missing date.
func Encode(fieldContext schemadomain.Context, submission map[string]any, today string) (Composition, error) {
	if !fieldContext.IsValid() {
		return Composition{}, shareddomain.NewValidationError("context", "must be expense or income")
	}

	amount, err := ParseAmount(submission[schemadomain.KeyAmount.String()])
	if err != nil {
		return Composition{}, err
	}

	description, err := optionalText(submission, schemadomain.KeyDescription)
	if err != nil {
		return Composition{}, err
	}

	rawDate, err := optionalText(submission, schemadomain.KeyDate)
	if err != nil {
		return Composition{}, err
	}
	occurredOn := today
	if strings.TrimSpace(rawDate) != "" {
		occurredOn, err = utils.ParseCalendarDate(strings.TrimSpace(rawDate))
		if err != nil {
			return Composition{}, shareddomain.NewValidationError("date", err.Error())
		}
	}

	composition := Composition{
		Amount:      amount,
		Description: description,
		OccurredOn:  occurredOn,
		Attributes:  Attributes{},
	}

	if fieldContext == schemadomain.ContextExpense {
		category, err := optionalText(submission, schemadomain.KeyCategory)
		if err != nil {
			return Composition{}, err
		}
		if strings.TrimSpace(category) == "" {
			category = FallbackCategoryName
		}
		composition.Category = &category
	}

	for key, value := range submission {
		if isColumnKey(fieldContext, key) {
			continue
		}
		if !isPrimitive(value) {
			return Composition{}, shareddomain.NewValidationError(key, "must be a text, number or boolean value")
		}
		composition.Attributes[key] = value
	}

	return composition, nil
}

// Decode flattens a stored record for editing. Entries follow activeFields
// order and skip absent or empty values. Values also carries the date.
func Decode(record Record, activeFields []schemadomain.FieldDefinition) Decoded {
	decoded := Decoded{
		Entries: make([]Entry, 0, len(activeFields)),
		Values:  map[string]any{schemadomain.KeyDate.String(): record.OccurredOn},
	}

	for _, field := range activeFields {
		value, ok := lookup(record, field.Key)
		if !ok {
			continue
		}
		decoded.Entries = append(decoded.Entries, Entry{Key: field.Key, Label: string(field.Label), Value: value})
		decoded.Values[field.Key.String()] = value
	}

	return decoded
}

// Legacy returns the attributes of record that no active field shows.
func Legacy(record Record, activeFields []schemadomain.FieldDefinition) map[string]any {
	active := make(map[string]struct{}, len(activeFields))
	for _, field := range activeFields {
		active[field.Key.String()] = struct{}{}
	}

	legacy := map[string]any{}
	for key, value := range record.Attributes {
		if _, ok := active[key]; ok || isEmpty(value) {
			continue
		}
		legacy[key] = value
	}
	return legacy
}

// AmountScale and maxAmount match the numeric(20,4) amount column.
const AmountScale = 4

var maxAmount = decimal.New(1, 20-AmountScale)

// ParseAmount accepts a JSON number or a numeric string and requires it to be
// greater than zero.
func ParseAmount(value any) (decimal.Decimal, error) {
	var (
		amount decimal.Decimal
		err    error
	)

	switch v := value.(type) {
	case nil:
		return decimal.Decimal{}, shareddomain.NewValidationError("amount", "is required")
	case decimal.Decimal:
		amount = v
	case float64:
		amount = decimal.NewFromFloat(v)
	case float32:
		amount = decimal.NewFromFloat32(v)
	case int:
		amount = decimal.NewFromInt(int64(v))
	case int64:
		amount = decimal.NewFromInt(v)
	case json.Number:
		amount, err = decimal.NewFromString(v.String())
	case string:
		amount, err = decimal.NewFromString(strings.TrimSpace(v))
	default:
		err = fmt.Errorf("unsupported type %T", value)
	}

	if err != nil {
		return decimal.Decimal{}, shareddomain.NewValidationError("amount", "must be a number")
	}
	if !amount.IsPositive() {
		return decimal.Decimal{}, shareddomain.NewValidationError("amount", "must be greater than zero")
	}
	if !amount.Equal(amount.Truncate(AmountScale)) {
		return decimal.Decimal{}, shareddomain.NewValidationError("amount", fmt.Sprintf("must have at most %d decimal places", AmountScale))
	}
	if amount.GreaterThanOrEqual(maxAmount) {
		return decimal.Decimal{}, shareddomain.NewValidationError("amount", "is too large")
	}
	return amount, nil
}

func lookup(record Record, key schemadomain.Key) (any, bool) {
	switch key {
	case schemadomain.KeyAmount:
		return json.Number(record.Amount.String()), true
	case schemadomain.KeyDescription:
		return record.Description, record.Description != ""
	case schemadomain.KeyCategory:
		if record.Category == nil || *record.Category == "" {
			return nil, false
		}
		return *record.Category, true
	case schemadomain.KeyDate:
		return record.OccurredOn, record.OccurredOn != ""
	}

	value, ok := record.Attributes[key.String()]
	if !ok || isEmpty(value) {
		return nil, false
	}
	return value, true
}

// isColumnKey reports whether key is stored in a dedicated record column.
func isColumnKey(fieldContext schemadomain.Context, key string) bool {
	if key == schemadomain.KeyDate.String() {
		return true
	}
	return schemadomain.IsCoreKey(fieldContext, schemadomain.Key(key))
}

func optionalText(submission map[string]any, key schemadomain.Key) (string, error) {
	switch v := submission[key.String()].(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case float64, json.Number, int, int64, bool:
		return fmt.Sprint(v), nil
	default:
		return "", shareddomain.NewValidationError(key.String(), "must be text")
	}
}

func isPrimitive(value any) bool {
	switch value.(type) {
	case nil, string, bool, float64, float32, int, int64, json.Number:
		return true
	default:
		return false
	}
}

func isEmpty(value any) bool {
	if value == nil {
		return true
	}
	s, ok := value.(string)
	return ok && s == ""
}
