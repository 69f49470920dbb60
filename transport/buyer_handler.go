package transport

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/krishsharda/Buyer-Leads/constant"
	"github.com/krishsharda/Buyer-Leads/model"
	utilsContext "github.com/krishsharda/Buyer-Leads/utils/context"
	"github.com/krishsharda/Buyer-Leads/utils/errors"
)

const maxImportBytes = 5 << 20

func actorFrom(w http.ResponseWriter, r *http.Request) (*model.Actor, bool) {
	actor, ok := utilsContext.GetActor(r.Context())
	if !ok || actor == nil {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return nil, false
	}
	return actor, true
}

// ListBuyers handler
// @Summary List buyers
// @Description Search, filter, sort and page buyer leads
// @Tags Buyers
// @Produce json
// @Security BearerAuth
// @Param search query string false "Name, phone or email contains"
// @Param city query string false "City"
// @Param propertyType query string false "Property type"
// @Param status query string false "Status"
// @Param timeline query string false "Timeline"
// @Param purpose query string false "Purpose"
// @Param bhk query string false "BHK"
// @Param budgetMin query int false "Budget range start"
// @Param budgetMax query int false "Budget range end"
// @Param mine query bool false "Only my leads"
// @Param page query int false "Page (default 1)"
// @Param pageSize query int false "Page size (1-50, default 10)"
// @Param sortBy query string false "updatedAt, createdAt or fullName"
// @Param sortOrder query string false "asc or desc"
// @Success 200 {object} model.BuyerListResponse
// @Failure 400 {object} Response
// @Router /buyers [get]
func (s *RestHandler) ListBuyers(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	filter, err := parseFilter(r, actor)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.BuyerApp.ListBuyers(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateBuyer handler
// @Summary Create buyer
// @Tags Buyers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.BuyerInput true "Buyer"
// @Success 201 {object} model.Buyer
// @Failure 400 {object} Response
// @Router /buyers [post]
func (s *RestHandler) CreateBuyer(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	var in model.BuyerInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.BuyerApp.CreateBuyer(r.Context(), actor, &in)
	if err != nil {
		writeError(w, err)
		return
	}

	writeStatus(w, http.StatusCreated, res)
}

// GetBuyer handler
// @Summary Get buyer
// @Tags Buyers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Buyer ID"
// @Success 200 {object} model.Buyer
// @Failure 404 {object} Response
// @Router /buyers/{id} [get]
func (s *RestHandler) GetBuyer(w http.ResponseWriter, r *http.Request) {
	if _, ok := actorFrom(w, r); !ok {
		return
	}

	res, err := s.BuyerApp.GetBuyer(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateBuyer handler
// @Summary Update buyer
// @Description Partial update. Send the updatedAt you last saw; a newer stored value is a conflict.
// @Tags Buyers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Buyer ID"
// @Param request body model.UpdateBuyerRequest true "Changed fields and observed updatedAt"
// @Success 200 {object} model.Buyer
// @Failure 400 {object} Response
// @Failure 403 {object} Response
// @Failure 404 {object} Response
// @Failure 409 {object} Response
// @Router /buyers/{id} [put]
func (s *RestHandler) UpdateBuyer(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	var req model.UpdateBuyerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.BuyerApp.UpdateBuyer(r.Context(), actor, mux.Vars(r)["id"], &req.BuyerInput, req.UpdatedAt.Time)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteBuyer handler
// @Summary Delete buyer
// @Description Deletes the buyer together with its history
// @Tags Buyers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Buyer ID"
// @Success 200 {object} Response
// @Failure 403 {object} Response
// @Failure 404 {object} Response
// @Router /buyers/{id} [delete]
func (s *RestHandler) DeleteBuyer(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	if err := s.BuyerApp.DeleteBuyer(r.Context(), actor, mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// ListHistory handler
// @Summary Buyer history
// @Description Audit entries, newest first
// @Tags Buyers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Buyer ID"
// @Success 200 {array} model.BuyerHistory
// @Failure 404 {object} Response
// @Router /buyers/{id}/history [get]
func (s *RestHandler) ListHistory(w http.ResponseWriter, r *http.Request) {
	if _, ok := actorFrom(w, r); !ok {
		return
	}

	res, err := s.BuyerApp.ListHistory(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ImportBuyers handler
// @Summary Import buyers from CSV
// @Description All rows are inserted or none. Accepts a raw text/csv body or a multipart "file" field.
// @Tags Buyers
// @Accept text/csv
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Success 201 {object} model.ImportResult
// @Failure 400 {object} Response
// @Router /buyers/import [post]
func (s *RestHandler) ImportBuyers(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxImportBytes)

	var body io.Reader = r.Body
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		file, _, err := r.FormFile("file")
		if err != nil {
			writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
			return
		}
		defer file.Close()
		body = file
	}

	res, err := s.BuyerApp.ImportCSV(r.Context(), actor, body)
	if err != nil {
		writeError(w, err)
		return
	}

	writeStatus(w, http.StatusCreated, res)
}

// ExportBuyers handler
// @Summary Export buyers as CSV
// @Description Takes the same filters as the list, without paging
// @Tags Buyers
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {string} string "CSV file"
// @Failure 400 {object} Response
// @Router /buyers/export [get]
func (s *RestHandler) ExportBuyers(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	filter, err := parseFilter(r, actor)
	if err != nil {
		writeError(w, err)
		return
	}

	// buffered so a failure halfway still gets a JSON error
	var buf bytes.Buffer
	if err := s.BuyerApp.ExportCSV(r.Context(), filter, &buf); err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="buyers.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// parseFilter reads list query parameters. Malformed numbers are reported
// as field violations.
func parseFilter(r *http.Request, actor *model.Actor) (*model.BuyerFilter, error) {
	q := r.URL.Query()
	f := &model.BuyerFilter{
		Search:       strings.TrimSpace(q.Get("search")),
		City:         q.Get(constant.FieldCity),
		PropertyType: q.Get(constant.FieldPropertyType),
		Status:       q.Get(constant.FieldStatus),
		Timeline:     q.Get(constant.FieldTimeline),
		Purpose:      q.Get(constant.FieldPurpose),
		BHK:          q.Get(constant.FieldBHK),
		SortBy:       q.Get("sortBy"),
		SortOrder:    strings.ToLower(q.Get("sortOrder")),
	}

	var violations []errors.FieldViolation
	intParam := func(name string, dst *int) {
		raw := q.Get(name)
		if raw == "" {
			return
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			violations = append(violations, errors.FieldViolation{Field: name, Message: name + " must be a whole number"})
			return
		}
		*dst = n
	}
	budgetParam := func(name string, dst **int64) {
		raw := q.Get(name)
		if raw == "" {
			return
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			violations = append(violations, errors.FieldViolation{Field: name, Message: "Budget must be a positive number"})
			return
		}
		*dst = &n
	}

	intParam("page", &f.Page)
	intParam("pageSize", &f.PageSize)
	budgetParam(constant.FieldBudgetMin, &f.BudgetMin)
	budgetParam(constant.FieldBudgetMax, &f.BudgetMax)

	if mine, _ := strconv.ParseBool(q.Get("mine")); mine {
		f.OwnerID = actor.ID
	}

	if len(violations) > 0 {
		return nil, errors.SetValidationError(violations)
	}
	return f, nil
}
