//go:build wireinject
// +build wireinject

package wire

import (
	budgethttpapi "finance-tracker/internal/budget/httpapi"
	"finance-tracker/internal/infra/async"
	ledgerhttpapi "finance-tracker/internal/ledger/httpapi"
	schemahttpapi "finance-tracker/internal/schema/httpapi"

	"github.com/google/wire"
)

func InitializeFieldCatalogController() (*schemahttpapi.FieldCatalogController, error) {
	wire.Build(
		InfraSet,
		FieldCatalogSet,
		schemahttpapi.NewFieldCatalogController,
	)
	return nil, nil
}

func InitializeBudgetPeriodController() (*budgethttpapi.BudgetPeriodController, error) {
	wire.Build(
		InfraSet,
		BudgetPeriodSet,
		budgethttpapi.NewBudgetPeriodController,
	)
	return nil, nil
}

func InitializeCategoryController() (*ledgerhttpapi.CategoryController, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		CategorySet,
		ledgerhttpapi.NewCategoryController,
	)
	return nil, nil
}

func InitializeRecordController(broker async.InternalBroker) (*ledgerhttpapi.RecordController, error) {
	wire.Build(
		InfraSet,
		LedgerSet,
		ledgerhttpapi.NewRecordController,
	)
	return nil, nil
}

func InitializeFormController(broker async.InternalBroker) (*ledgerhttpapi.FormController, error) {
	wire.Build(
		InfraSet,
		LedgerSet,
		ledgerhttpapi.NewFormController,
	)
	return nil, nil
}

func InitializeLedgerWebSocketController(broker async.InternalBroker) (*ledgerhttpapi.LedgerWebSocketController, error) {
	wire.Build(
		ledgerhttpapi.NewLedgerWebSocketController,
	)
	return nil, nil
}
