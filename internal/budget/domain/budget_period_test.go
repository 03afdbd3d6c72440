package domain_test

import (
	"finance-tracker/internal/budget/domain"
	shareddomain "finance-tracker/internal/shared_kernel/domain"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("BudgetPeriod", func() {
	Context("Range", func() {
		at := func(value string) time.Time {
			t, err := time.ParseInLocation("2006-01-02 15:04", value, time.UTC)
			Expect(err).NotTo(HaveOccurred())
			return t
		}

		DescribeTable("should derive built-in ranges from the current date",
			func(periodType domain.PeriodType, now, start, end string) {
				period := domain.BudgetPeriod{Type: periodType}

				gotStart, gotEnd, err := period.Range(at(now))
				Expect(err).NotTo(HaveOccurred())
				Expect(gotStart).To(Equal(start))
				Expect(gotEnd).To(Equal(end))
			},
			Entry("daily", domain.PeriodDaily, "2026-03-18 15:30", "2026-03-18", "2026-03-18"),
			Entry("daily at midnight", domain.PeriodDaily, "2026-03-18 00:00", "2026-03-18", "2026-03-18"),
			Entry("weekly midweek", domain.PeriodWeekly, "2026-03-18 15:30", "2026-03-16", "2026-03-22"),
			Entry("weekly on monday", domain.PeriodWeekly, "2026-03-16 00:00", "2026-03-16", "2026-03-22"),
			Entry("weekly on sunday", domain.PeriodWeekly, "2026-03-22 23:59", "2026-03-16", "2026-03-22"),
			Entry("monthly", domain.PeriodMonthly, "2026-03-18 15:30", "2026-03-01", "2026-03-31"),
			Entry("monthly in february", domain.PeriodMonthly, "2028-02-10 08:00", "2028-02-01", "2028-02-29"),
			Entry("monthly on the last day", domain.PeriodMonthly, "2026-04-30 23:59", "2026-04-01", "2026-04-30"),
			Entry("yearly", domain.PeriodYearly, "2026-03-18 15:30", "2026-01-01", "2026-12-31"),
			Entry("yearly on new year", domain.PeriodYearly, "2027-01-01 00:00", "2027-01-01", "2027-12-31"),
		)

		It("should take today in the location of now", func() {
			tokyo, err := time.LoadLocation("Asia/Tokyo")
			Expect(err).NotTo(HaveOccurred())
			// 2026-03-31 20:00 UTC is already April 1st in Tokyo.
			now := time.Date(2026, 3, 31, 20, 0, 0, 0, time.UTC).In(tokyo)

			start, end, err := domain.BudgetPeriod{Type: domain.PeriodMonthly}.Range(now)
			Expect(err).NotTo(HaveOccurred())
			Expect(start).To(Equal("2026-04-01"))
			Expect(end).To(Equal("2026-04-30"))
		})

		DescribeTable("should keep today when midnight is skipped by a DST change",
			func(periodType domain.PeriodType, start, end string) {
				santiago, err := time.LoadLocation("America/Santiago")
				Expect(err).NotTo(HaveOccurred())
				// Clocks jump from 00:00 to 01:00 on 2026-09-06 in Santiago.
				now := time.Date(2026, 9, 6, 10, 0, 0, 0, santiago)

				gotStart, gotEnd, err := domain.BudgetPeriod{Type: periodType}.Range(now)
				Expect(err).NotTo(HaveOccurred())
				Expect(gotStart).To(Equal(start))
				Expect(gotEnd).To(Equal(end))
			},
			Entry("daily", domain.PeriodDaily, "2026-09-06", "2026-09-06"),
			Entry("weekly", domain.PeriodWeekly, "2026-08-31", "2026-09-06"),
			Entry("monthly", domain.PeriodMonthly, "2026-09-01", "2026-09-30"),
		)

		It("should return the stored dates of a custom period", func() {
			start, end := "2026-01-15", "2026-02-14"
			period := domain.BudgetPeriod{Type: domain.PeriodCustom, StartDate: &start, EndDate: &end}

			gotStart, gotEnd, err := period.Range(time.Now())
			Expect(err).NotTo(HaveOccurred())
			Expect(gotStart).To(Equal(start))
			Expect(gotEnd).To(Equal(end))
		})
	})

	Context("Builder", func() {
		It("should build a custom period", func() {
			period, err := domain.NewBudgetPeriodBuilder().
				WithOwner("owner-1").
				WithName(" Vacaciones ").
				WithType(domain.PeriodCustom).
				WithDates("2026-07-01", "2026-07-15").
				Build()

			Expect(err).NotTo(HaveOccurred())
			Expect(period.ID).NotTo(BeEmpty())
			Expect(period.Name).To(Equal(shareddomain.Name("Vacaciones")))
			Expect(period.IsActive).To(BeFalse())
			Expect(*period.StartDate).To(Equal("2026-07-01"))
		})

		DescribeTable("should name the offending input",
			func(builder func() (domain.BudgetPeriod, error), field string) {
				_, err := builder()

				validationErr, ok := shareddomain.IsValidationError(err)
				Expect(ok).To(BeTrue())
				Expect(validationErr.Field).To(Equal(field))
			},
			Entry("empty name", func() (domain.BudgetPeriod, error) {
				return domain.NewBudgetPeriodBuilder().WithOwner("o").WithName("  ").WithType(domain.PeriodCustom).WithDates("2026-01-01", "2026-01-02").Build()
			}, "name"),
			Entry("bad start", func() (domain.BudgetPeriod, error) {
				return domain.NewBudgetPeriodBuilder().WithOwner("o").WithName("x").WithType(domain.PeriodCustom).WithDates("2026-13-01", "2026-01-02").Build()
			}, "start_date"),
			Entry("bad end", func() (domain.BudgetPeriod, error) {
				return domain.NewBudgetPeriodBuilder().WithOwner("o").WithName("x").WithType(domain.PeriodCustom).WithDates("2026-01-01", "01/02/2026").Build()
			}, "end_date"),
			Entry("start after end", func() (domain.BudgetPeriod, error) {
				return domain.NewBudgetPeriodBuilder().WithOwner("o").WithName("x").WithType(domain.PeriodCustom).WithDates("2026-02-01", "2026-01-31").Build()
			}, "end_date"),
			Entry("custom without dates", func() (domain.BudgetPeriod, error) {
				return domain.NewBudgetPeriodBuilder().WithOwner("o").WithName("x").WithType(domain.PeriodCustom).Build()
			}, "start_date"),
			Entry("built-in with dates", func() (domain.BudgetPeriod, error) {
				return domain.NewBudgetPeriodBuilder().WithOwner("o").WithName("x").WithType(domain.PeriodWeekly).WithDates("2026-01-01", "2026-01-02").Build()
			}, "start_date"),
			Entry("unknown type", func() (domain.BudgetPeriod, error) {
				return domain.NewBudgetPeriodBuilder().WithOwner("o").WithName("x").WithType("fortnightly").Build()
			}, "period_type"),
		)

		It("should require an owner", func() {
			_, err := domain.NewBudgetPeriodBuilder().WithName("x").WithType(domain.PeriodDaily).Build()
			Expect(err).To(MatchError(domain.ErrOwnerRequired))
		})
	})

	Context("DefaultPeriods", func() {
		It("should seed the four built-in periods with only the monthly one active", func() {
			periods, err := domain.DefaultPeriods("owner-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(periods).To(HaveLen(4))

			active := []domain.PeriodType{}
			for _, period := range periods {
				Expect(period.Type.IsBuiltIn()).To(BeTrue())
				if period.IsActive {
					active = append(active, period.Type)
				}
			}
			Expect(active).To(Equal([]domain.PeriodType{domain.PeriodMonthly}))
		})
	})

	Context("ParsePeriodType", func() {
		It("should reject unknown types", func() {
			_, err := domain.ParsePeriodType("hourly")
			_, ok := shareddomain.IsValidationError(err)
			Expect(ok).To(BeTrue())
		})
	})
})
