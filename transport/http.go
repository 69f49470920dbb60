package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	buyerapp "github.com/krishsharda/Buyer-Leads/application/buyer"
	userapp "github.com/krishsharda/Buyer-Leads/application/user"
	"github.com/krishsharda/Buyer-Leads/cmd/config"
	"github.com/krishsharda/Buyer-Leads/constant"
	"github.com/krishsharda/Buyer-Leads/model"
	"github.com/krishsharda/Buyer-Leads/utils/errors"
	validatorx "github.com/krishsharda/Buyer-Leads/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	config   *config.Config
	UserApp  userapp.UserApp
	BuyerApp buyerapp.BuyerApp
	checks   []HealthCheck
}

func NewTransport(cfg *config.Config, UserApp userapp.UserApp, BuyerApp buyerapp.BuyerApp, checks ...HealthCheck) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		config:   cfg,
		UserApp:  UserApp,
		BuyerApp: BuyerApp,
		checks:   checks,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	mux.HandleFunc("/login", rh.Login).Methods(http.MethodPost)
	mux.HandleFunc("/logout", rh.Logout).Methods(http.MethodPost)
	mux.HandleFunc("/health", rh.Health).Methods(http.MethodGet)

	// protected routes
	mux.HandleFunc("/buyers", rh.ListBuyers).Methods(http.MethodGet)
	mux.HandleFunc("/buyers", rh.CreateBuyer).Methods(http.MethodPost)
	mux.HandleFunc("/buyers/import", rh.ImportBuyers).Methods(http.MethodPost)
	mux.HandleFunc("/buyers/export", rh.ExportBuyers).Methods(http.MethodGet)
	mux.HandleFunc("/buyers/{id}", rh.GetBuyer).Methods(http.MethodGet)
	mux.HandleFunc("/buyers/{id}", rh.UpdateBuyer).Methods(http.MethodPut)
	mux.HandleFunc("/buyers/{id}", rh.DeleteBuyer).Methods(http.MethodDelete)
	mux.HandleFunc("/buyers/{id}/history", rh.ListHistory).Methods(http.MethodGet)

	// internal routes, static API key
	internal := mux.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(cfg.Internal.APIKey))
	internal.HandleFunc("/diagnostic", rh.Diagnostic).Methods(http.MethodGet)
	internal.HandleFunc("/buyers/{id}/cache", rh.WarmBuyerCache).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(UserApp))

	return mux
}

// Login handler
// @Summary Login user
// @Description Login with an email and receive a session token. Unknown emails are registered.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} Response
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     constant.AuthCookieName,
		Value:    res.Token,
		Path:     "/",
		MaxAge:   int(s.config.Auth.SessionExpTime.Seconds()),
		HttpOnly: true,
		Secure:   s.config.Auth.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	writeSuccess(w, res)
}

// Logout handler
// @Summary Logout user
// @Description Drop the current session and clear the auth cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} Response
// @Router /logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if token := tokenFromRequest(r); token != "" {
		if err := s.UserApp.Logout(r.Context(), token); err != nil {
			writeError(w, err)
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     constant.AuthCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.config.Auth.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	writeSuccess(w, nil)
}
