package httpapi_test

import (
	"encoding/json"
	"finance-tracker/internal/infra/httpserver"
	ledger_httpapi "finance-tracker/internal/ledger/httpapi"
	ledger_httpapi_internal "finance-tracker/internal/ledger/httpapi/internal"
	"finance-tracker/internal/ledger/usecases"
	schemadomain "finance-tracker/internal/schema/domain"
	shareddomain "finance-tracker/internal/shared_kernel/domain"
	mockusecases "finance-tracker/test/unit/doubles/ledger/usecases"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("FormController", func() {
	var (
		ctrl        *gomock.Controller
		mockService *mockusecases.MockFormService
		router      *http.ServeMux
		recorder    *httptest.ResponseRecorder
		owner       shareddomain.OwnerID
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockFormService(ctrl)
		router = http.NewServeMux()
		ledger_httpapi.NewFormController(mockService).AddRoutes(router)
		recorder = httptest.NewRecorder()
		owner = "user-1"
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	It("should render the inputs with their choices", func() {
		mockService.EXPECT().BuildForm(gomock.Any(), owner, schemadomain.ContextExpense).Return(usecases.FormView{
			Context: schemadomain.ContextExpense,
			Inputs: []usecases.FormInput{
				{Key: "description", Label: "Descripción", Kind: schemadomain.KindText},
				{Key: "amount", Label: "Monto ($)", Kind: schemadomain.KindNumber, Required: true},
				{Key: "category", Label: "Categoría", Kind: schemadomain.KindSelect, Choices: []string{"Varios"}},
			},
		}, nil)

		req := httpserver.WithOwner(httptest.NewRequest(http.MethodGet, "/v1/forms/expense", nil), owner.String())
		router.ServeHTTP(recorder, req)

		Expect(recorder.Code).To(Equal(http.StatusOK))
		var response ledger_httpapi_internal.FormResponse
		Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
		Expect(response.Inputs).To(HaveLen(3))
		Expect(response.Inputs[1].Required).To(BeTrue())
		Expect(response.Inputs[2].Choices).To(ConsistOf("Varios"))
	})
})
