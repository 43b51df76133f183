package designation_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"go-staffhub/internal/designation"
	designationMock "go-staffhub/internal/designation/mock"
	"go-staffhub/internal/shared/apperror"
)

func setupDesignationRouter(mockService *designationMock.MockService, companyID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()

	handler := designation.NewHandler(mockService)
	router := gin.New()
	withCompany := func(c *gin.Context) { c.Set("company_id", companyID) }
	router.POST("/designations", withCompany, handler.Create)
	router.GET("/designations/options", withCompany, handler.GetOptions)
	return router
}

func TestDesignationHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	companyID := "c56a4180-65aa-42ec-a945-5fd21dec0538"
	mockService := designationMock.NewMockService(ctrl)
	router := setupDesignationRouter(mockService, companyID)

	t.Run("Success Create", func(t *testing.T) {
		reqBody := designation.CreateDesignationRequest{Name: "Senior Engineer"}
		body, _ := json.Marshal(reqBody)

		mockService.EXPECT().
			Create(gomock.Any(), companyID, reqBody).
			Return(designation.DesignationResponse{ID: "desig-1", Name: "Senior Engineer", CompanyID: companyID}, nil)

		req := httptest.NewRequest(http.MethodPost, "/designations", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var res map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &res)
		assert.Equal(t, "Senior Engineer", res["data"].(map[string]interface{})["name"])
	})

	t.Run("Validation Error - Missing Name", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/designations", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDesignationHandler_GetOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	companyID := "c56a4180-65aa-42ec-a945-5fd21dec0538"
	mockService := designationMock.NewMockService(ctrl)
	router := setupDesignationRouter(mockService, companyID)

	t.Run("Success GetOptions", func(t *testing.T) {
		mockService.EXPECT().
			GetOptions(gomock.Any(), companyID).
			Return([]designation.DesignationResponse{
				{ID: "desig-1", Name: "Senior Engineer", CompanyID: companyID},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/designations/options", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var res map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &res)
		data := res["data"].([]interface{})
		assert.Len(t, data, 1)
	})
}
