package service_test

import (
	"context"
	"errors"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/robotics-advisor/planner/internal/catalog"
	"github.com/robotics-advisor/planner/internal/costing"
	"github.com/robotics-advisor/planner/internal/service"
	"github.com/robotics-advisor/planner/internal/service/mappers"
)

var _ = Describe("ReportService", func() {
	var (
		st      *fakeStore
		svc     *service.AnalysisService
		reports *service.ReportService
		form    mappers.AnalysisCreateForm
	)

	BeforeEach(func() {
		robots, err := catalog.Load("testdata")
		Expect(err).ToNot(HaveOccurred())

		st = newFakeStore()
		analyzer := &stubAnalyzer{
			tasks: []costing.Task{
				{ID: 1, Action: "pick part from bin", Actor: costing.ActorHuman},
				{ID: 2, Action: "inspect part", Actor: costing.ActorHuman},
			},
		}
		planner := &stubPlanner{
			options: []costing.AutomationOption{
				{
					OptionID: "opt_1",
					Summary:  "automate picking",
					Assignments: []costing.Assignment{
						{TaskID: 1, RobotName: "picker", Reason: "within reach and payload"},
					},
					Unassigned: []costing.UnassignedTask{
						{TaskID: 2, Reason: "visual inspection needs judgment"},
					},
				},
			},
		}
		svc = service.NewAnalysisService(st, robots, analyzer, planner)
		reports = service.NewReportService(svc)

		form = mappers.AnalysisCreateForm{
			VideoURL: "gs://bucket/assembly.mp4",
			Config: costing.FinancialConfig{
				HumanCostPerMin:   0.5,
				DepreciationYears: 5,
				HoursPerWeek:      40,
			},
		}
	})

	It("exports one sheet per result section", func() {
		created, err := svc.CreateAnalysis(context.TODO(), form)
		Expect(err).ToNot(HaveOccurred())

		f, err := reports.ExportAnalysisXLSX(context.TODO(), created.ID)
		Expect(err).ToNot(HaveOccurred())
		defer f.Close()

		Expect(f.GetSheetList()).To(ConsistOf("Tasks", "Options", "Cost Benefit", "Projections", "Recommendation"))

		action, err := f.GetCellValue("Tasks", "B2")
		Expect(err).ToNot(HaveOccurred())
		Expect(action).To(Equal("pick part from bin"))

		robot, err := f.GetCellValue("Options", "C2")
		Expect(err).ToNot(HaveOccurred())
		Expect(robot).To(Equal("picker"))

		recommended, err := f.GetCellValue("Recommendation", "B1")
		Expect(err).ToNot(HaveOccurred())
		Expect(recommended).To(Equal("opt_1"))

		// option row plus baseline, each with purchase year and five operating years
		year5, err := f.GetCellValue("Projections", "G2")
		Expect(err).ToNot(HaveOccurred())
		Expect(year5).ToNot(BeEmpty())
	})

	It("returns a typed error for an unknown analysis", func() {
		_, err := reports.ExportAnalysisXLSX(context.TODO(), uuid.New())

		var notFoundErr *service.ErrResourceNotFound
		Expect(errors.As(err, &notFoundErr)).To(BeTrue())
	})

	It("refuses to export an analysis without a result", func() {
		incomplete := mappers.AnalysisCreateForm{VideoURL: "gs://bucket/raw.mp4"}.ToModel()
		_, err := st.Analysis().Create(context.TODO(), incomplete)
		Expect(err).ToNot(HaveOccurred())

		_, err = reports.ExportAnalysisXLSX(context.TODO(), incomplete.ID)

		var notCompletedErr *service.ErrAnalysisNotCompleted
		Expect(errors.As(err, &notCompletedErr)).To(BeTrue())
	})
})
