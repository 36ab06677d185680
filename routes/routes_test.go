package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"mktrading-backend/database/dbtest"
	"mktrading-backend/repositories"
	"mktrading-backend/services"
	"mktrading-backend/utils"
)

type testServer struct {
	t      *testing.T
	router *gin.Engine
	token  string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gw := dbtest.New(t)
	log := zerolog.Nop()
	tokens := utils.NewTokenService("test-secret", time.Hour)
	auth := services.NewAuthService(repositories.NewUserRepository(gw), tokens, log)
	require.NoError(t, auth.SeedAdmin(context.Background(), "admin", "admin123"))

	router := SetupRouter(Dependencies{
		Gateway: gw,
		Tokens:  tokens,
		Auth:    auth,
		Reports: services.NewReportService(gw, time.UTC),
		Log:     log,
	})

	s := &testServer{t: t, router: router}
	w := s.do(http.MethodPost, "/api/login", `{"username":"admin","password":"admin123"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var login struct {
		Token string `json:"token"`
		User  struct {
			ID       int64  `json:"id"`
			Username string `json:"username"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)
	assert.Equal(t, "admin", login.User.Username)
	s.token = login.Token
	return s
}

func (s *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) decode(w *httptest.ResponseRecorder, dest interface{}) {
	s.t.Helper()
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), dest), w.Body.String())
}

func TestHealthNeedsNoToken(t *testing.T) {
	s := newTestServer(t)
	s.token = ""

	for _, path := range []string{"/health", "/api/health"} {
		w := s.do(http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	s := newTestServer(t)
	token := s.token

	s.token = ""
	w := s.do(http.MethodGet, "/api/parties", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Login required"}`, w.Body.String())

	s.token = token + "x"
	w = s.do(http.MethodPost, "/api/payments", `{"party_id":1,"amount":5}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid or expired token"}`, w.Body.String())
}

func TestLoginWithWrongPassword(t *testing.T) {
	s := newTestServer(t)
	s.token = ""

	w := s.do(http.MethodPost, "/api/login", `{"username":"admin","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid username or password"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "token")

	w = s.do(http.MethodPost, "/api/login", `{"username":"admin"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"username and password required"}`, w.Body.String())
}

func TestLedgerScenario(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/api/parties", `{"name":"Acme","contact":"98200 00000"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var party struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	s.decode(w, &party)
	assert.Equal(t, int64(1), party.ID)

	w = s.do(http.MethodPost, "/api/challans", `{"challan_number":"C100","party_id":1,"amount":500,"date":"2024-05-10"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = s.do(http.MethodPost, "/api/payments", `{"party_id":1,"amount":200}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = s.do(http.MethodGet, "/api/reports/outstanding", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"party_id":1,"party_name":"Acme","total_challan":500,"total_paid":200,"outstanding":300}]`, w.Body.String())

	w = s.do(http.MethodGet, "/api/parties/search-by-challan?challanNumber=C100", "")
	require.Equal(t, http.StatusOK, w.Code)
	var found map[string]interface{}
	s.decode(w, &found)
	assert.Equal(t, "Acme", found["name"])
	assert.Equal(t, "C100", found["challan_number"])
	assert.Equal(t, "2024-05-10", found["challan_date"])
	assert.Equal(t, 500.0, found["challan_amount"])

	w = s.do(http.MethodGet, "/api/parties/search-by-challan?challanNumber=NOPE", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"No party found for this challan number"}`, w.Body.String())

	w = s.do(http.MethodGet, "/api/parties/search-by-challan", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodGet, "/api/challans/search-by-party?partyName=acm", "")
	require.Equal(t, http.StatusOK, w.Code)
	var challans []map[string]interface{}
	s.decode(w, &challans)
	require.Len(t, challans, 1)
	assert.Equal(t, "Acme", challans[0]["party_name"])

	w = s.do(http.MethodGet, "/api/reports/total-incoming?month=all", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"month":"all","total_incoming":200}`, w.Body.String())

	w = s.do(http.MethodGet, "/api/reports/outstanding/export", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	cell, err := f.GetCellValue("Outstanding", "E2")
	require.NoError(t, err)
	assert.Equal(t, "300", cell)
}

func TestCreatePaymentWithoutAmountInsertsNothing(t *testing.T) {
	s := newTestServer(t)
	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/api/parties", `{"name":"Acme"}`).Code)

	w := s.do(http.MethodPost, "/api/payments", `{"party_id":1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"party_id and amount required"}`, w.Body.String())

	w = s.do(http.MethodGet, "/api/payments", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestUpdateAndDeleteResponses(t *testing.T) {
	s := newTestServer(t)
	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/api/employees", `{"name":"Ravi"}`).Code)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{"update ok", http.MethodPut, "/api/employees/1", `{"name":"Ravi K","role":"driver"}`, 200, `{"ok":true}`},
		{"update missing", http.MethodPut, "/api/employees/99", `{"name":"Ghost"}`, 404, `{"error":"Employee not found"}`},
		{"update invalid", http.MethodPut, "/api/employees/1", `{"name":""}`, 400, `{"error":"Employee name required"}`},
		{"bad id", http.MethodPut, "/api/employees/abc", `{"name":"X"}`, 400, `{"error":"Invalid id"}`},
		{"bad json", http.MethodPut, "/api/employees/1", `{"name":`, 400, `{"error":"Invalid request body"}`},
		{"bad date", http.MethodPost, "/api/office-expenses", `{"amount":5,"date":"31/12/2024"}`, 400, `{"error":"Invalid request body"}`},
		{"delete", http.MethodDelete, "/api/employees/1", "", 200, `{"ok":true}`},
		{"delete again", http.MethodDelete, "/api/employees/1", "", 200, `{"ok":true}`},
		{"list after delete", http.MethodGet, "/api/employees", "", 200, `[]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(tt.method, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestCorsConfig(t *testing.T) {
	all := corsConfig([]string{"*"})
	assert.True(t, all.AllowAllOrigins)
	assert.False(t, all.AllowCredentials)

	listed := corsConfig([]string{"https://app.example"})
	assert.False(t, listed.AllowAllOrigins)
	assert.Equal(t, []string{"https://app.example"}, listed.AllowOrigins)
	assert.True(t, listed.AllowCredentials)
}
