package steps

import (
	"context"
	"encoding/json"
	"finance-tracker/test/functional/driver"
	"io"
	"net/http"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

// ListResponse is the {"data": [...]} envelope of every list endpoint.
type ListResponse[T any] struct {
	Data []T `json:"data"`
}

type FeatureContext struct {
	apiDriver *driver.APIDriver
	owner     string
	response  *http.Response
	body      []byte
	fieldIDs  map[string]string
	fieldKeys map[string]string
	budgetIDs map[string]string
	recordID  string
	context   string
	wsConn    *websocket.Conn
	require   *require.Assertions
	t         godog.TestingT
}

func NewFeatureContext(baseURL string) *FeatureContext {
	return &FeatureContext{
		apiDriver: driver.NewAPIDriver(baseURL),
	}
}

func (fc *FeatureContext) RegisterSteps(ctx *godog.ScenarioContext) {
	// Generic steps
	ctx.Step(`^wait for (.*)$`, fc.waitForDuration)
	ctx.Then(`^the response status code should be (\d+)$`, fc.theResponseStatusCodeShouldBe)
	ctx.Then(`^the error should name the field "([^"]*)"$`, fc.theErrorShouldNameTheField)
	ctx.When(`^I call the healthz endpoint$`, fc.iCallTheHealthzEndpoint)
	ctx.Then(`^the response should contain status information$`, fc.theResponseShouldContainStatusInformation)

	// Field catalog steps
	ctx.When(`^I list the "([^"]*)" fields$`, fc.iListTheFields)
	ctx.When(`^I list all the "([^"]*)" fields$`, fc.iListAllTheFields)
	ctx.When(`^I list the "([^"]*)" fields without an owner$`, fc.iListTheFieldsWithoutAnOwner)
	ctx.Then(`^the fields should be "([^"]*)"$`, fc.theFieldsShouldBe)
	ctx.When(`^I create an? "([^"]*)" field labelled "([^"]*)" of kind "([^"]*)"$`, fc.iCreateAFieldLabelledOfKind)
	ctx.Given(`^an? "([^"]*)" field labelled "([^"]*)" exists$`, fc.aFieldLabelledExists)
	ctx.When(`^I move the "([^"]*)" field "([^"]*)" to the top$`, fc.iMoveTheFieldToTheTop)
	ctx.When(`^I retire the "([^"]*)" field "([^"]*)"$`, fc.iRetireTheField)

	// Record steps
	ctx.When(`^I create an? "([^"]*)" record of "([^"]*)" on "([^"]*)" with "([^"]*)" set to "([^"]*)"$`, fc.iCreateARecordWithAttribute)
	ctx.When(`^I create an? "([^"]*)" record of "([^"]*)" on "([^"]*)"$`, fc.iCreateARecord)
	ctx.Given(`^an? "([^"]*)" record of "([^"]*)" on "([^"]*)" exists$`, fc.aRecordExists)
	ctx.When(`^another owner creates an? "([^"]*)" record of "([^"]*)" on "([^"]*)"$`, fc.anotherOwnerCreatesARecord)
	ctx.Then(`^the record should have amount "([^"]*)" and category "([^"]*)"$`, fc.theRecordShouldHaveAmountAndCategory)
	ctx.Then(`^the record attribute "([^"]*)" should be "([^"]*)"$`, fc.theRecordAttributeShouldBe)
	ctx.When(`^I update the record to "([^"]*)" on "([^"]*)"$`, fc.iUpdateTheRecordTo)
	ctx.When(`^another owner fetches the record$`, fc.anotherOwnerFetchesTheRecord)
	ctx.When(`^I fetch the record$`, fc.iFetchTheRecord)
	ctx.When(`^I delete the record$`, fc.iDeleteTheRecord)
	ctx.When(`^I list the "([^"]*)" records from "([^"]*)" to "([^"]*)"$`, fc.iListTheRecordsFromTo)
	ctx.When(`^I list the "([^"]*)" records in the active period$`, fc.iListTheRecordsInTheActivePeriod)
	ctx.Then(`^the record amounts should be "([^"]*)"$`, fc.theRecordAmountsShouldBe)

	// Budget steps
	ctx.When(`^I list the budget periods$`, fc.iListTheBudgetPeriods)
	ctx.Then(`^the budget periods should be "([^"]*)"$`, fc.theBudgetPeriodsShouldBe)
	ctx.Then(`^the active budget period should be "([^"]*)"$`, fc.theActiveBudgetPeriodShouldBe)
	ctx.Then(`^exactly one budget period should be active$`, fc.exactlyOneBudgetPeriodShouldBeActive)
	ctx.Given(`^a custom budget period "([^"]*)" from "([^"]*)" to "([^"]*)" exists$`, fc.aCustomBudgetPeriodExists)
	ctx.Step(`^I activate the budget period "([^"]*)"$`, fc.iActivateTheBudgetPeriod)
	ctx.When(`^I delete the budget period "([^"]*)"$`, fc.iDeleteTheBudgetPeriod)

	// Change feed steps
	ctx.Given(`^I am connected to the ledger change feed$`, fc.iAmConnectedToTheLedgerChangeFeed)
	ctx.Then(`^the change feed should deliver a "([^"]*)" event for the record$`, fc.theChangeFeedShouldDeliverAnEventForTheRecord)

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		fc.t = godog.T(ctx)
		fc.require = require.New(fc.t)

		fc.reset()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		fc.cleanupWebSocket()
		return ctx, err
	})
}

// reset gives every scenario a fresh owner, so scenarios never share data.
func (fc *FeatureContext) reset() {
	fc.owner = "owner-" + uuid.NewString()
	fc.response = nil
	fc.body = nil
	fc.fieldIDs = map[string]string{}
	fc.fieldKeys = map[string]string{}
	fc.budgetIDs = map[string]string{}
	fc.recordID = ""
	fc.context = ""
}

// capture stores the response and drains its body.
func (fc *FeatureContext) capture(response *http.Response, err error) error {
	if err != nil {
		return err
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}
	fc.response = response
	fc.body = body
	return nil
}

func (fc *FeatureContext) decodeBody(target any) error {
	return json.Unmarshal(fc.body, target)
}
