package steps

import (
	"fmt"
	"net/http"
)

type recordData struct {
	ID         string         `json:"id"`
	Amount     string         `json:"amount"`
	Category   *string        `json:"category"`
	Date       string         `json:"date"`
	Attributes map[string]any `json:"attributes"`
}

func submission(amount, date string) map[string]any {
	return map[string]any{
		"description": "functional",
		"amount":      amount,
		"date":        date,
	}
}

func (fc *FeatureContext) createRecord(owner, context string, values map[string]any) error {
	if err := fc.capture(fc.apiDriver.CreateRecord(owner, context, values)); err != nil {
		return err
	}

	if owner == fc.owner {
		fc.context = context
		var record recordData
		if err := fc.decodeBody(&record); err == nil && record.ID != "" {
			fc.recordID = record.ID
		}
	}
	return nil
}

func (fc *FeatureContext) iCreateARecord(context, amount, date string) error {
	return fc.createRecord(fc.owner, context, submission(amount, date))
}

func (fc *FeatureContext) iCreateARecordWithAttribute(context, amount, date, label, value string) error {
	key, ok := fc.fieldKeys[label]
	if !ok {
		return fmt.Errorf("field %q was not created in this scenario", label)
	}

	values := submission(amount, date)
	values[key] = value
	return fc.createRecord(fc.owner, context, values)
}

func (fc *FeatureContext) aRecordExists(context, amount, date string) error {
	if err := fc.iCreateARecord(context, amount, date); err != nil {
		return err
	}
	fc.require.Equal(http.StatusCreated, fc.response.StatusCode, "creating record: %s", string(fc.body))
	return nil
}

func (fc *FeatureContext) anotherOwnerCreatesARecord(context, amount, date string) error {
	err := fc.createRecord(fc.owner+"-other", context, submission(amount, date))
	if err != nil {
		return err
	}
	fc.require.Equal(http.StatusCreated, fc.response.StatusCode)
	return nil
}

func (fc *FeatureContext) theRecordShouldHaveAmountAndCategory(amount, category string) error {
	var record recordData
	fc.require.NoError(fc.decodeBody(&record))
	fc.require.Equal(amount, record.Amount)
	fc.require.NotNil(record.Category)
	fc.require.Equal(category, *record.Category)
	return nil
}

func (fc *FeatureContext) theRecordAttributeShouldBe(label, value string) error {
	var record recordData
	fc.require.NoError(fc.decodeBody(&record))
	fc.require.Equal(value, record.Attributes[fc.fieldKeys[label]])
	return nil
}

func (fc *FeatureContext) iUpdateTheRecordTo(amount, date string) error {
	return fc.capture(fc.apiDriver.UpdateRecord(fc.owner, fc.context, fc.recordID, submission(amount, date)))
}

func (fc *FeatureContext) anotherOwnerFetchesTheRecord() error {
	return fc.capture(fc.apiDriver.GetRecord(fc.owner+"-other", fc.context, fc.recordID))
}

func (fc *FeatureContext) iFetchTheRecord() error {
	return fc.capture(fc.apiDriver.GetRecord(fc.owner, fc.context, fc.recordID))
}

func (fc *FeatureContext) iDeleteTheRecord() error {
	return fc.capture(fc.apiDriver.DeleteRecord(fc.owner, fc.context, fc.recordID))
}

func (fc *FeatureContext) iListTheRecordsFromTo(context, start, end string) error {
	return fc.capture(fc.apiDriver.ListRecords(fc.owner, context, map[string]string{
		"start": start,
		"end":   end,
	}))
}

func (fc *FeatureContext) iListTheRecordsInTheActivePeriod(context string) error {
	return fc.capture(fc.apiDriver.ListRecords(fc.owner, context, map[string]string{
		"period": "active",
	}))
}

func (fc *FeatureContext) theRecordAmountsShouldBe(amounts string) error {
	var data ListResponse[recordData]
	fc.require.NoError(fc.decodeBody(&data))

	got := make([]string, len(data.Data))
	for i, record := range data.Data {
		got[i] = record.Amount
	}
	fc.require.Equal(splitList(amounts), got)
	return nil
}
