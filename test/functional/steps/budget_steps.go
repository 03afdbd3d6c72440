package steps

import (
	"fmt"
	"net/http"
)

type budgetData struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PeriodType string `json:"period_type"`
	IsActive   bool   `json:"is_active"`
}

func (fc *FeatureContext) iListTheBudgetPeriods() error {
	return fc.capture(fc.apiDriver.ListBudgets(fc.owner))
}

func (fc *FeatureContext) loadBudgets() ([]budgetData, error) {
	if err := fc.iListTheBudgetPeriods(); err != nil {
		return nil, err
	}
	fc.require.Equal(http.StatusOK, fc.response.StatusCode)

	var data ListResponse[budgetData]
	fc.require.NoError(fc.decodeBody(&data))
	for _, period := range data.Data {
		fc.budgetIDs[period.Name] = period.ID
	}
	return data.Data, nil
}

func (fc *FeatureContext) theBudgetPeriodsShouldBe(names string) error {
	var data ListResponse[budgetData]
	fc.require.NoError(fc.decodeBody(&data))

	got := make([]string, len(data.Data))
	for i, period := range data.Data {
		got[i] = period.Name
	}
	fc.require.Equal(splitList(names), got)
	return nil
}

func (fc *FeatureContext) theActiveBudgetPeriodShouldBe(name string) error {
	response, err := fc.apiDriver.GetActiveBudget(fc.owner)
	if err := fc.capture(response, err); err != nil {
		return err
	}
	fc.require.Equal(http.StatusOK, fc.response.StatusCode)

	var period budgetData
	fc.require.NoError(fc.decodeBody(&period))
	fc.require.Equal(name, period.Name)
	fc.require.True(period.IsActive)
	return nil
}

func (fc *FeatureContext) exactlyOneBudgetPeriodShouldBeActive() error {
	periods, err := fc.loadBudgets()
	if err != nil {
		return err
	}

	active := 0
	for _, period := range periods {
		if period.IsActive {
			active++
		}
	}
	fc.require.Equal(1, active)
	return nil
}

func (fc *FeatureContext) aCustomBudgetPeriodExists(name, start, end string) error {
	if err := fc.capture(fc.apiDriver.CreateBudget(fc.owner, name, start, end)); err != nil {
		return err
	}
	fc.require.Equal(http.StatusCreated, fc.response.StatusCode, "creating budget period: %s", string(fc.body))

	var period budgetData
	fc.require.NoError(fc.decodeBody(&period))
	fc.budgetIDs[period.Name] = period.ID
	return nil
}

func (fc *FeatureContext) budgetID(name string) (string, error) {
	if id, ok := fc.budgetIDs[name]; ok {
		return id, nil
	}
	if _, err := fc.loadBudgets(); err != nil {
		return "", err
	}
	id, ok := fc.budgetIDs[name]
	if !ok {
		return "", fmt.Errorf("budget period %q not found", name)
	}
	return id, nil
}

func (fc *FeatureContext) iActivateTheBudgetPeriod(name string) error {
	id, err := fc.budgetID(name)
	if err != nil {
		return err
	}
	return fc.capture(fc.apiDriver.ActivateBudget(fc.owner, id))
}

func (fc *FeatureContext) iDeleteTheBudgetPeriod(name string) error {
	id, err := fc.budgetID(name)
	if err != nil {
		return err
	}
	return fc.capture(fc.apiDriver.DeleteBudget(fc.owner, id))
}
