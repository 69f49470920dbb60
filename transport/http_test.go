package transport_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/krishsharda/Buyer-Leads/cmd/config"
	"github.com/krishsharda/Buyer-Leads/constant"
	buyermocks "github.com/krishsharda/Buyer-Leads/mocks/application/buyer"
	usermocks "github.com/krishsharda/Buyer-Leads/mocks/application/user"
	"github.com/krishsharda/Buyer-Leads/model"
	"github.com/krishsharda/Buyer-Leads/transport"
	cerr "github.com/krishsharda/Buyer-Leads/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	apiKey    = "internal-key"
	goodToken = "good-token"
)

var agent = &model.Actor{ID: "u-1"}

type fields struct {
	userApp  *usermocks.UserApp
	buyerApp *buyermocks.BuyerApp
}

func newServer(t *testing.T, checks ...transport.HealthCheck) (http.Handler, fields) {
	f := fields{
		userApp:  usermocks.NewUserApp(t),
		buyerApp: buyermocks.NewBuyerApp(t),
	}
	cfg := &config.Config{
		Auth:     config.AuthConfig{SessionExpTime: time.Hour},
		Internal: config.InternalConfig{APIKey: apiKey},
	}
	return transport.NewTransport(cfg, f.userApp, f.buyerApp, checks...), f
}

func authed(req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer "+goodToken)
	return req
}

func expectAuth(f fields) {
	f.userApp.On("ValidateToken", mock.Anything, goodToken).Return(agent, nil).Once()
}

type envelope struct {
	Code    string                `json:"code"`
	Message string                `json:"message"`
	Data    json.RawMessage       `json:"data"`
	Details []cerr.FieldViolation `json:"details"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	return env
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		req      func() *http.Request
		mockCall func(f fields)
		wantCode int
	}{
		{
			name:     "no token",
			req:      func() *http.Request { return httptest.NewRequest(http.MethodGet, "/buyers/b-1", nil) },
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "rejected token",
			req:  func() *http.Request { return authed(httptest.NewRequest(http.MethodGet, "/buyers/b-1", nil)) },
			mockCall: func(f fields) {
				f.userApp.On("ValidateToken", mock.Anything, goodToken).Return(nil, errors.New("expired")).Once()
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "cookie token",
			req: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/buyers/b-1", nil)
				req.AddCookie(&http.Cookie{Name: constant.AuthCookieName, Value: goodToken})
				return req
			},
			mockCall: func(f fields) {
				expectAuth(f)
				f.buyerApp.On("GetBuyer", mock.Anything, "b-1").Return(&model.Buyer{ID: "b-1"}, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "health is public",
			req:      func() *http.Request { return httptest.NewRequest(http.MethodGet, "/health", nil) },
			wantCode: http.StatusOK,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			h, f := newServer(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, tt.req())

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestRestHandler_Login(t *testing.T) {
	h, f := newServer(t)
	f.userApp.
		On("Login", mock.Anything, &model.LoginRequest{Email: "asha@example.com"}).
		Return(&model.LoginResponse{ID: "u-1", Email: "asha@example.com", Token: "tok"}, nil).
		Once()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"asha@example.com"}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, constant.AuthCookieName, cookies[0].Name)
	assert.Equal(t, "tok", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)

	t.Run("bad email", func(t *testing.T) {
		h, _ := newServer(t)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"nope"}`)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRestHandler_Logout(t *testing.T) {
	h, f := newServer(t)
	f.userApp.On("Logout", mock.Anything, goodToken).Return(nil).Once()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, authed(httptest.NewRequest(http.MethodPost, "/logout", nil)))

	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestRestHandler_CreateBuyer(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		mockCall    func(f fields)
		wantCode    int
		wantDetails []cerr.FieldViolation
	}{
		{
			name: "success",
			body: `{"fullName":"Asha Verma","phone":9876543210,"city":"mohali","tags":"hot, nri"}`,
			mockCall: func(f fields) {
				f.buyerApp.
					On("CreateBuyer", mock.Anything, agent, mock.MatchedBy(func(in *model.BuyerInput) bool {
						return in.FullName.Value == "Asha Verma" && in.Phone.Value == "9876543210" &&
							in.Tags.Present && len(in.Tags.Values) == 2 && !in.Email.Present
					})).
					Return(&model.Buyer{ID: "b-1"}, nil).
					Once()
			},
			wantCode: http.StatusCreated,
		},
		{
			name: "validation error carries details",
			body: `{"fullName":"J","phone":"123"}`,
			mockCall: func(f fields) {
				f.buyerApp.On("CreateBuyer", mock.Anything, agent, mock.Anything).
					Return(nil, cerr.SetValidationError([]cerr.FieldViolation{
						{Field: "fullName", Message: "Full name must be at least 2 characters"},
						{Field: "phone", Message: "Phone number must be at least 10 digits"},
					})).
					Once()
			},
			wantCode: http.StatusBadRequest,
			wantDetails: []cerr.FieldViolation{
				{Field: "fullName", Message: "Full name must be at least 2 characters"},
				{Field: "phone", Message: "Phone number must be at least 10 digits"},
			},
		},
		{
			name:     "malformed json",
			body:     `{"fullName":`,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "unexpected error is internal",
			body: `{}`,
			mockCall: func(f fields) {
				f.buyerApp.On("CreateBuyer", mock.Anything, agent, mock.Anything).Return(nil, errors.New("boom")).Once()
			},
			wantCode: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			h, f := newServer(t)
			expectAuth(f)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, authed(httptest.NewRequest(http.MethodPost, "/buyers", strings.NewReader(tt.body))))

			require.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantDetails, decode(t, rec).Details)
		})
	}
}

func TestRestHandler_UpdateBuyer(t *testing.T) {
	observed := time.Date(2025, 5, 1, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		body     string
		mockCall func(f fields)
		wantCode int
		wantErr  string
	}{
		{
			name: "rfc3339 updatedAt",
			body: `{"status":"Converted","updatedAt":"2025-05-01T09:30:00Z"}`,
			mockCall: func(f fields) {
				f.buyerApp.
					On("UpdateBuyer", mock.Anything, agent, "b-1",
						mock.MatchedBy(func(in *model.BuyerInput) bool { return in.Status.Value == "Converted" && !in.City.Present }),
						mock.MatchedBy(func(ts *time.Time) bool { return ts != nil && ts.Equal(observed) })).
					Return(&model.Buyer{ID: "b-1", Status: "Converted"}, nil).
					Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name: "epoch millis updatedAt",
			body: `{"notes":null,"updatedAt":1746091800000}`,
			mockCall: func(f fields) {
				f.buyerApp.
					On("UpdateBuyer", mock.Anything, agent, "b-1",
						mock.MatchedBy(func(in *model.BuyerInput) bool { return in.Notes.Present && in.Notes.Null }),
						mock.MatchedBy(func(ts *time.Time) bool { return ts != nil && ts.Equal(observed) })).
					Return(&model.Buyer{ID: "b-1"}, nil).
					Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name: "no updatedAt",
			body: `{"status":"Visited"}`,
			mockCall: func(f fields) {
				f.buyerApp.
					On("UpdateBuyer", mock.Anything, agent, "b-1", mock.Anything, (*time.Time)(nil)).
					Return(&model.Buyer{ID: "b-1"}, nil).
					Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name: "conflict",
			body: `{"status":"Converted","updatedAt":"2025-05-01T09:00:00Z"}`,
			mockCall: func(f fields) {
				f.buyerApp.On("UpdateBuyer", mock.Anything, agent, "b-1", mock.Anything, mock.Anything).
					Return(nil, cerr.SetCustomError(constant.ErrConflict)).Once()
			},
			wantCode: http.StatusConflict,
			wantErr:  constant.ErrorTypeCode[constant.ErrConflict],
		},
		{
			name: "forbidden",
			body: `{"status":"Converted"}`,
			mockCall: func(f fields) {
				f.buyerApp.On("UpdateBuyer", mock.Anything, agent, "b-1", mock.Anything, mock.Anything).
					Return(nil, cerr.SetCustomError(constant.ErrForbidden)).Once()
			},
			wantCode: http.StatusForbidden,
			wantErr:  constant.ErrorTypeCode[constant.ErrForbidden],
		},
		{
			name:     "unparsable updatedAt",
			body:     `{"updatedAt":"yesterday"}`,
			wantCode: http.StatusBadRequest,
			wantErr:  constant.ErrorTypeCode[constant.ErrInvalidRequest],
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			h, f := newServer(t)
			expectAuth(f)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, authed(httptest.NewRequest(http.MethodPut, "/buyers/b-1", strings.NewReader(tt.body))))

			require.Equal(t, tt.wantCode, rec.Code)
			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, decode(t, rec).Code)
			}
		})
	}
}

func TestRestHandler_DeleteBuyer(t *testing.T) {
	h, f := newServer(t)
	expectAuth(f)
	f.buyerApp.On("DeleteBuyer", mock.Anything, agent, "b-1").Return(nil).Once()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, authed(httptest.NewRequest(http.MethodDelete, "/buyers/b-1", nil)))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRestHandler_ListBuyers(t *testing.T) {
	t.Run("query becomes a filter", func(t *testing.T) {
		h, f := newServer(t)
		expectAuth(f)
		f.buyerApp.
			On("ListBuyers", mock.Anything, &model.BuyerFilter{
				Search:    "asha",
				City:      "Mohali",
				Status:    "New",
				BudgetMin: func() *int64 { n := int64(100); return &n }(),
				OwnerID:   agent.ID,
				Page:      2,
				PageSize:  20,
				SortBy:    "fullName",
				SortOrder: "asc",
			}).
			Return(&model.BuyerListResponse{Items: []model.Buyer{}, Page: 2, PageSize: 20}, nil).
			Once()

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, authed(httptest.NewRequest(http.MethodGet,
			"/buyers?search=asha&city=Mohali&status=New&budgetMin=100&mine=true&page=2&pageSize=20&sortBy=fullName&sortOrder=ASC", nil)))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("malformed numbers", func(t *testing.T) {
		h, f := newServer(t)
		expectAuth(f)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, authed(httptest.NewRequest(http.MethodGet, "/buyers?page=two&budgetMax=lots", nil)))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var fields []string
		for _, d := range decode(t, rec).Details {
			fields = append(fields, d.Field)
		}
		assert.ElementsMatch(t, []string{"page", "budgetMax"}, fields)
	})
}

func TestRestHandler_ListHistory(t *testing.T) {
	h, f := newServer(t)
	expectAuth(f)
	f.buyerApp.On("ListHistory", mock.Anything, "b-1").Return([]model.BuyerHistory{{ID: "h-1"}}, nil).Once()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, authed(httptest.NewRequest(http.MethodGet, "/buyers/b-1/history", nil)))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRestHandler_ImportBuyers(t *testing.T) {
	csvBody := "fullName,phone\nAsha Verma,9876543210\n"

	h, f := newServer(t)
	expectAuth(f)
	f.buyerApp.
		On("ImportCSV", mock.Anything, agent, mock.Anything).
		Return(func(_ context.Context, _ *model.Actor, r io.Reader) (*model.ImportResult, error) {
			b, err := io.ReadAll(r)
			if err != nil || string(b) != csvBody {
				return nil, errors.New("unexpected body")
			}
			return &model.ImportResult{Imported: 1, IDs: []string{"b-1"}}, nil
		}).
		Once()

	req := authed(httptest.NewRequest(http.MethodPost, "/buyers/import", strings.NewReader(csvBody)))
	req.Header.Set("Content-Type", "text/csv")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRestHandler_ExportBuyers(t *testing.T) {
	t.Run("csv attachment", func(t *testing.T) {
		h, f := newServer(t)
		expectAuth(f)
		f.buyerApp.
			On("ExportCSV", mock.Anything, mock.MatchedBy(func(fl *model.BuyerFilter) bool { return fl.City == "Mohali" }), mock.Anything).
			Run(func(args mock.Arguments) {
				_, _ = io.WriteString(args.Get(2).(io.Writer), "fullName\nAsha Verma\n")
			}).
			Return(nil).
			Once()

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, authed(httptest.NewRequest(http.MethodGet, "/buyers/export?city=Mohali", nil)))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "buyers.csv")
		assert.Equal(t, "fullName\nAsha Verma\n", rec.Body.String())
	})

	t.Run("failure is a json error", func(t *testing.T) {
		h, f := newServer(t)
		expectAuth(f)
		f.buyerApp.On("ExportCSV", mock.Anything, mock.Anything, mock.Anything).
			Return(cerr.SetCustomError(constant.ErrStorage)).Once()

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, authed(httptest.NewRequest(http.MethodGet, "/buyers/export", nil)))

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	})
}

func TestInternalRoutes(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		h, _ := newServer(t)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/internal/v1/buyers/b-1/cache", nil))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("user token is not the api key", func(t *testing.T) {
		h, _ := newServer(t)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, authed(httptest.NewRequest(http.MethodPost, "/internal/v1/buyers/b-1/cache", nil)))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("warm cache", func(t *testing.T) {
		h, f := newServer(t)
		f.buyerApp.On("WarmCache", mock.Anything, "b-1").Return(nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/internal/v1/buyers/b-1/cache", nil)
		req.Header.Set("Authorization", "Bearer "+apiKey)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("diagnostic reports a down dependency", func(t *testing.T) {
		h, _ := newServer(t,
			transport.HealthCheck{Name: "mysql", Ping: func(context.Context) error { return nil }},
			transport.HealthCheck{Name: "redis", Ping: func(context.Context) error { return errors.New("refused") }},
		)

		req := httptest.NewRequest(http.MethodGet, "/internal/v1/diagnostic", nil)
		req.Header.Set("Authorization", "Bearer "+apiKey)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		var res transport.HealthResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
		assert.Equal(t, "down", res.Status)
		assert.Equal(t, "ok", res.Components["mysql"].Status)
		assert.Equal(t, "down", res.Components["redis"].Status)
	})
}
