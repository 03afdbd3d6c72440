package usecases

//go:generate mockgen -source=./budget_period_service.go -destination=../../../test/unit/doubles/budget/usecases/budget_period_service_mock.go -package=usecases -mock_names=BudgetPeriodService=MockBudgetPeriodService

import (
	"context"
	"errors"
	"finance-tracker/internal/budget/domain"
	shareddomain "finance-tracker/internal/shared_kernel/domain"
	"log/slog"
	"time"
)

// PeriodView is a period with the range it covers today.
type PeriodView struct {
	Period domain.BudgetPeriod
	Start  string
	End    string
}

type BudgetPeriodService interface {
	EnsureDefaults(ctx context.Context, owner shareddomain.OwnerID) error
	ListPeriods(ctx context.Context, owner shareddomain.OwnerID) ([]PeriodView, error)
	GetActivePeriod(ctx context.Context, owner shareddomain.OwnerID) (PeriodView, error)
	CreateCustomPeriod(ctx context.Context, owner shareddomain.OwnerID, name, start, end string) (PeriodView, error)
	ActivatePeriod(ctx context.Context, owner shareddomain.OwnerID, id shareddomain.ID) error
	DeletePeriod(ctx context.Context, owner shareddomain.OwnerID, id shareddomain.ID) error
	ActiveRange(ctx context.Context, owner shareddomain.OwnerID) (string, string, error)
}

func NewBudgetPeriodService(repository BudgetPeriodRepository, location *time.Location) *SimpleBudgetPeriodService {
	if location == nil {
		location = time.Local
	}
	return &SimpleBudgetPeriodService{
		repository: repository,
		location:   location,
	}
}

var _ BudgetPeriodService = (*SimpleBudgetPeriodService)(nil)

type SimpleBudgetPeriodService struct {
	repository BudgetPeriodRepository
	location   *time.Location
}

func (s *SimpleBudgetPeriodService) EnsureDefaults(ctx context.Context, owner shareddomain.OwnerID) error {
	count, err := s.repository.CountByOwner(ctx, owner)
	if err != nil {
		slog.Error("counting budget periods", slog.String("error", err.Error()))
		return shareddomain.NewStorageError("counting budget periods", err)
	}
	if count > 0 {
		return nil
	}

	defaults, err := domain.DefaultPeriods(owner)
	if err != nil {
		return err
	}

	err = s.repository.CreateAll(ctx, defaults)
	if errors.Is(err, ErrPeriodDuplicated) {
		slog.Debug("default budget periods already seeded", slog.String("owner", owner.String()))
		return nil
	}
	if err != nil {
		slog.Error("seeding budget periods", slog.String("error", err.Error()))
		return shareddomain.NewStorageError("seeding budget periods", err)
	}

	slog.Info("default budget periods seeded", slog.String("owner", owner.String()))
	return nil
}

func (s *SimpleBudgetPeriodService) ListPeriods(ctx context.Context, owner shareddomain.OwnerID) ([]PeriodView, error) {
	if err := s.EnsureDefaults(ctx, owner); err != nil {
		return nil, err
	}

	periods, err := s.repository.FindByOwner(ctx, owner)
	if err != nil {
		slog.Error("listing budget periods", slog.String("error", err.Error()))
		return nil, shareddomain.NewStorageError("listing budget periods", err)
	}

	now := s.now()
	result := make([]PeriodView, 0, len(periods))
	for _, period := range periods {
		view, err := toView(period, now)
		if err != nil {
			return nil, err
		}
		result = append(result, view)
	}
	return result, nil
}

func (s *SimpleBudgetPeriodService) GetActivePeriod(ctx context.Context, owner shareddomain.OwnerID) (PeriodView, error) {
	if err := s.EnsureDefaults(ctx, owner); err != nil {
		return PeriodView{}, err
	}

	period, err := s.repository.GetActive(ctx, owner)
	if errors.Is(err, ErrNoActivePeriod) {
		return PeriodView{}, ErrNoActivePeriod
	}
	if err != nil {
		slog.Error("getting active budget period", slog.String("error", err.Error()))
		return PeriodView{}, shareddomain.NewStorageError("getting active budget period", err)
	}

	return toView(period, s.now())
}

func (s *SimpleBudgetPeriodService) CreateCustomPeriod(
	ctx context.Context,
	owner shareddomain.OwnerID,
	name, start, end string,
) (PeriodView, error) {
	period, err := domain.NewBudgetPeriodBuilder().
		WithOwner(owner).
		WithName(name).
		WithType(domain.PeriodCustom).
		WithDates(start, end).
		Build()
	if err != nil {
		return PeriodView{}, err
	}

	if err := s.EnsureDefaults(ctx, owner); err != nil {
		return PeriodView{}, err
	}

	err = s.repository.Create(ctx, period)
	if errors.Is(err, ErrPeriodDuplicated) {
		return PeriodView{}, shareddomain.NewValidationError("name", "a budget period with the same name already exists")
	}
	if err != nil {
		slog.Error("creating budget period", slog.String("error", err.Error()))
		return PeriodView{}, shareddomain.NewStorageError("creating budget period", err)
	}

	slog.Info("custom budget period created", slog.String("id", period.ID.String()), slog.String("owner", owner.String()))
	return toView(period, s.now())
}

func (s *SimpleBudgetPeriodService) ActivatePeriod(ctx context.Context, owner shareddomain.OwnerID, id shareddomain.ID) error {
	err := s.repository.Switch(ctx, owner, id)
	if errors.Is(err, ErrPeriodNotFound) {
		return ErrPeriodNotFound
	}
	if err != nil {
		slog.Error("switching active budget period", slog.String("error", err.Error()))
		return shareddomain.NewStorageError("switching active budget period", err)
	}

	slog.Info("budget period activated", slog.String("id", id.String()), slog.String("owner", owner.String()))
	return nil
}

func (s *SimpleBudgetPeriodService) DeletePeriod(ctx context.Context, owner shareddomain.OwnerID, id shareddomain.ID) error {
	period, err := s.repository.GetByID(ctx, owner, id)
	if errors.Is(err, ErrPeriodNotFound) {
		return ErrPeriodNotFound
	}
	if err != nil {
		slog.Error("getting budget period", slog.String("error", err.Error()))
		return shareddomain.NewStorageError("getting budget period", err)
	}

	if period.Type.IsBuiltIn() {
		return domain.ErrBuiltInPeriod
	}

	err = s.repository.Delete(ctx, owner, id)
	if errors.Is(err, ErrPeriodNotFound) {
		return ErrPeriodNotFound
	}
	if err != nil {
		slog.Error("deleting budget period", slog.String("error", err.Error()))
		return shareddomain.NewStorageError("deleting budget period", err)
	}

	slog.Info("budget period deleted", slog.String("id", id.String()), slog.String("owner", owner.String()))
	return nil
}

// ActiveRange resolves the dates record listings filter on.
func (s *SimpleBudgetPeriodService) ActiveRange(ctx context.Context, owner shareddomain.OwnerID) (string, string, error) {
	view, err := s.GetActivePeriod(ctx, owner)
	if err != nil {
		return "", "", err
	}
	return view.Start, view.End, nil
}

func (s *SimpleBudgetPeriodService) now() time.Time {
	return time.Now().In(s.location)
}

func toView(period domain.BudgetPeriod, now time.Time) (PeriodView, error) {
	start, end, err := period.Range(now)
	if err != nil {
		return PeriodView{}, err
	}
	return PeriodView{Period: period, Start: start, End: end}, nil
}
