package employee_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"go-staffhub/internal/employee"
	employeeerrors "go-staffhub/internal/employee/errors"
	employeeMock "go-staffhub/internal/employee/mock"
	"go-staffhub/internal/shared/apperror"
)

func setupEmployeeRouter(mockService *employeeMock.MockService, companyID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()

	handler := employee.NewHandler(mockService)
	router := gin.New()
	router.POST("/employees", func(c *gin.Context) {
		c.Set("company_id", companyID)
		handler.Create(c)
	})
	return router
}

// multipartBody builds the registration form; withPic controls whether the
// profilePic file part is attached.
func multipartBody(t *testing.T, req employee.CreateEmployeeRequest, withPic bool) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	fields := map[string]string{
		"employeeCode":    req.EmployeeCode,
		"name":            req.Name,
		"email":           req.Email,
		"mobileNo":        req.MobileNo,
		"salary":          req.Salary,
		"gender":          req.Gender,
		"dob":             req.DOB,
		"address1":        req.Address1,
		"address2":        req.Address2,
		"password":        req.Password,
		"type":            req.Type,
		"accountNo":       req.AccountNo,
		"pfAccountNo":     req.PFAccountNo,
		"bankCode":        req.BankCode,
		"stateName":       req.StateName,
		"cityName":        req.CityName,
		"departmentName":  req.DepartmentName,
		"designationName": req.DesignationName,
	}
	for k, v := range fields {
		assert.NoError(t, writer.WriteField(k, v))
	}

	if withPic {
		part, err := writer.CreateFormFile("profilePic", "budi.png")
		assert.NoError(t, err)
		part.Write([]byte("fake-image-bytes"))
	}

	assert.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestEmployeeHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	companyID := "c56a4180-65aa-42ec-a945-5fd21dec0538"
	mockService := employeeMock.NewMockService(ctrl)
	router := setupEmployeeRouter(mockService, companyID)

	t.Run("Success Create", func(t *testing.T) {
		req := validCreateRequest()
		expected := employee.EmployeeResponse{
			ID:           "emp-1",
			EmployeeCode: req.EmployeeCode,
			Email:        req.Email,
			ProfilePic:   "https://cdn.example.com/budi.png",
		}

		mockService.EXPECT().
			Create(gomock.Any(), companyID, gomock.Any(), gomock.Any(), "budi.png").
			Return(expected, nil)

		body, contentType := multipartBody(t, req, true)
		httpReq := httptest.NewRequest(http.MethodPost, "/employees", body)
		httpReq.Header.Set("Content-Type", contentType)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusCreated, w.Code)

		var res map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &res)
		assert.Equal(t, true, res["ok"])
		assert.Equal(t, req.Email, res["data"].(map[string]interface{})["email"])
	})

	t.Run("Missing Profile Picture", func(t *testing.T) {
		body, contentType := multipartBody(t, validCreateRequest(), false)
		httpReq := httptest.NewRequest(http.MethodPost, "/employees", body)
		httpReq.Header.Set("Content-Type", contentType)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var res map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &res)
		errObj := res["error"].(map[string]interface{})
		assert.Equal(t, "Profile picture is required", errObj["message"])
	})

	t.Run("Missing Form Field", func(t *testing.T) {
		req := validCreateRequest()
		req.Email = ""

		body, contentType := multipartBody(t, req, true)
		httpReq := httptest.NewRequest(http.MethodPost, "/employees", body)
		httpReq.Header.Set("Content-Type", contentType)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var res map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &res)
		errObj := res["error"].(map[string]interface{})
		assert.Equal(t, "All fields are required", errObj["message"])
	})

	t.Run("Duplicate Entry From Service", func(t *testing.T) {
		mockService.EXPECT().
			Create(gomock.Any(), companyID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(employee.EmployeeResponse{}, employeeerrors.ErrDuplicateEntry)

		body, contentType := multipartBody(t, validCreateRequest(), true)
		httpReq := httptest.NewRequest(http.MethodPost, "/employees", body)
		httpReq.Header.Set("Content-Type", contentType)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var res map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &res)
		errObj := res["error"].(map[string]interface{})
		assert.Equal(t, "Duplicate entry found", errObj["message"])
	})
}
