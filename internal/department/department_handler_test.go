package department_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"go-staffhub/internal/department"
	departmentMock "go-staffhub/internal/department/mock"
	"go-staffhub/internal/shared/apperror"
)

func setupDepartmentRouter(mockService *departmentMock.MockService, companyID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()

	handler := department.NewHandler(mockService)
	router := gin.New()
	withCompany := func(c *gin.Context) { c.Set("company_id", companyID) }
	router.POST("/departments", withCompany, handler.Create)
	router.GET("/departments/options", withCompany, handler.GetOptions)
	return router
}

func TestDepartmentHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	companyID := "c56a4180-65aa-42ec-a945-5fd21dec0538"
	mockService := departmentMock.NewMockService(ctrl)
	router := setupDepartmentRouter(mockService, companyID)

	t.Run("Success Create", func(t *testing.T) {
		reqBody := department.CreateDepartmentRequest{Name: "Engineering"}
		body, _ := json.Marshal(reqBody)

		mockService.EXPECT().
			Create(gomock.Any(), companyID, reqBody).
			Return(department.DepartmentResponse{ID: "dept-1", Name: "Engineering", CompanyID: companyID}, nil)

		req := httptest.NewRequest(http.MethodPost, "/departments", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var res map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &res)
		assert.Equal(t, "Engineering", res["data"].(map[string]interface{})["name"])
	})

	t.Run("Validation Error - Missing Name", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/departments", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDepartmentHandler_GetOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	companyID := "c56a4180-65aa-42ec-a945-5fd21dec0538"
	mockService := departmentMock.NewMockService(ctrl)
	router := setupDepartmentRouter(mockService, companyID)

	t.Run("Success GetOptions", func(t *testing.T) {
		mockService.EXPECT().
			GetOptions(gomock.Any(), companyID).
			Return([]department.DepartmentResponse{
				{ID: "dept-1", Name: "Engineering", CompanyID: companyID},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/departments/options", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var res map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &res)
		data := res["data"].([]interface{})
		assert.Len(t, data, 1)
	})
}
