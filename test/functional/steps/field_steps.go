package steps

import (
	"fmt"
	"strings"
)

type fieldData struct {
	ID    string `json:"id"`
	Key   string `json:"key"`
	Label string `json:"label"`
}

func (fc *FeatureContext) iListTheFields(context string) error {
	return fc.capture(fc.apiDriver.ListFields(fc.owner, context))
}

func (fc *FeatureContext) iListAllTheFields(context string) error {
	return fc.capture(fc.apiDriver.ListAllFields(fc.owner, context))
}

func (fc *FeatureContext) iListTheFieldsWithoutAnOwner(context string) error {
	return fc.capture(fc.apiDriver.ListFields("", context))
}

func (fc *FeatureContext) theFieldsShouldBe(labels string) error {
	var data ListResponse[fieldData]
	fc.require.NoError(fc.decodeBody(&data))

	got := make([]string, len(data.Data))
	for i, field := range data.Data {
		got[i] = field.Label
		fc.fieldIDs[field.Label] = field.ID
		fc.fieldKeys[field.Label] = field.Key
	}
	fc.require.Equal(splitList(labels), got)
	return nil
}

func (fc *FeatureContext) iCreateAFieldLabelledOfKind(context, label, kind string) error {
	if err := fc.capture(fc.apiDriver.CreateField(fc.owner, context, label, kind)); err != nil {
		return err
	}

	var field fieldData
	if err := fc.decodeBody(&field); err == nil && field.ID != "" {
		fc.fieldIDs[field.Label] = field.ID
		fc.fieldKeys[field.Label] = field.Key
	}
	return nil
}

func (fc *FeatureContext) aFieldLabelledExists(context, label string) error {
	if err := fc.iCreateAFieldLabelledOfKind(context, label, "text"); err != nil {
		return err
	}
	fc.require.Equal(201, fc.response.StatusCode, "creating field: %s", string(fc.body))
	return nil
}

func (fc *FeatureContext) loadFields(context string) error {
	if err := fc.iListTheFields(context); err != nil {
		return err
	}

	var data ListResponse[fieldData]
	fc.require.NoError(fc.decodeBody(&data))
	for _, field := range data.Data {
		fc.fieldIDs[field.Label] = field.ID
		fc.fieldKeys[field.Label] = field.Key
	}
	return nil
}

func (fc *FeatureContext) fieldID(context, label string) (string, error) {
	if id, ok := fc.fieldIDs[label]; ok {
		return id, nil
	}
	if err := fc.loadFields(context); err != nil {
		return "", err
	}
	id, ok := fc.fieldIDs[label]
	if !ok {
		return "", fmt.Errorf("field %q not found", label)
	}
	return id, nil
}

func (fc *FeatureContext) iMoveTheFieldToTheTop(context, label string) error {
	if err := fc.loadFields(context); err != nil {
		return err
	}

	var data ListResponse[fieldData]
	fc.require.NoError(fc.decodeBody(&data))

	ordered := []string{fc.fieldIDs[label]}
	for _, field := range data.Data {
		if field.Label != label {
			ordered = append(ordered, field.ID)
		}
	}
	return fc.capture(fc.apiDriver.ReorderFields(fc.owner, context, ordered))
}

func (fc *FeatureContext) iRetireTheField(context, label string) error {
	id, err := fc.fieldID(context, label)
	if err != nil {
		return err
	}
	return fc.capture(fc.apiDriver.RetireField(fc.owner, context, id))
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
