//go:build wireinject
// +build wireinject

package wire

import (
	budgetpersistence "finance-tracker/internal/budget/persistence"
	budgetusecases "finance-tracker/internal/budget/usecases"
	ledgerpersistence "finance-tracker/internal/ledger/persistence"
	ledgerusecases "finance-tracker/internal/ledger/usecases"
	schemapersistence "finance-tracker/internal/schema/persistence"
	schemausecases "finance-tracker/internal/schema/usecases"

	"github.com/google/wire"
)

var InfraSet = wire.NewSet(
	provideAppConfig,
	provideDatabase,
	providePublisherFactory,
)

var FieldCatalogSet = wire.NewSet(
	provideCacheStore,
	schemapersistence.NewFieldDefinitionRepository,
	wire.Bind(new(schemausecases.FieldDefinitionRepository), new(*schemapersistence.SimpleFieldDefinitionRepository)),
	provideFieldListCache,
	wire.Bind(new(schemausecases.FieldListCache), new(*schemapersistence.CachedFieldList)),
	schemausecases.NewFieldCatalogService,
	wire.Bind(new(schemausecases.FieldCatalogService), new(*schemausecases.SimpleFieldCatalogService)),
)

var BudgetPeriodSet = wire.NewSet(
	budgetpersistence.NewBudgetPeriodRepository,
	wire.Bind(new(budgetusecases.BudgetPeriodRepository), new(*budgetpersistence.SimpleBudgetPeriodRepository)),
	provideBudgetPeriodService,
	wire.Bind(new(budgetusecases.BudgetPeriodService), new(*budgetusecases.SimpleBudgetPeriodService)),
)

var CategorySet = wire.NewSet(
	ledgerpersistence.NewCategoryRepository,
	wire.Bind(new(ledgerusecases.CategoryRepository), new(*ledgerpersistence.SimpleCategoryRepository)),
	ledgerusecases.NewCategoryService,
	wire.Bind(new(ledgerusecases.CategoryService), new(*ledgerusecases.SimpleCategoryService)),
)

// LedgerSet expects an async.InternalBroker among the injector arguments.
var LedgerSet = wire.NewSet(
	FieldCatalogSet,
	BudgetPeriodSet,
	CategorySet,
	wire.Bind(new(ledgerusecases.FieldCatalog), new(*schemausecases.SimpleFieldCatalogService)),
	wire.Bind(new(ledgerusecases.ActivePeriodResolver), new(*budgetusecases.SimpleBudgetPeriodService)),
	ledgerpersistence.NewRecordRepository,
	wire.Bind(new(ledgerusecases.RecordRepository), new(*ledgerpersistence.SimpleRecordRepository)),
	provideRecordService,
	wire.Bind(new(ledgerusecases.RecordService), new(*ledgerusecases.SimpleRecordService)),
	ledgerusecases.NewFormService,
	wire.Bind(new(ledgerusecases.FormService), new(*ledgerusecases.SimpleFormService)),
)
