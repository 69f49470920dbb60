package buyer

import (
	"context"
	"encoding/csv"
	stderrors "errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/krishsharda/Buyer-Leads/constant"
	"github.com/krishsharda/Buyer-Leads/model"
	"github.com/krishsharda/Buyer-Leads/utils/errors"
	"github.com/krishsharda/Buyer-Leads/utils/logger"
	"go.uber.org/zap"
)

// CSVColumns is the header of import and export files.
var CSVColumns = []string{
	constant.FieldFullName,
	constant.FieldEmail,
	constant.FieldPhone,
	constant.FieldCity,
	constant.FieldPropertyType,
	constant.FieldBHK,
	constant.FieldPurpose,
	constant.FieldBudgetMin,
	constant.FieldBudgetMax,
	constant.FieldTimeline,
	constant.FieldSource,
	constant.FieldNotes,
	constant.FieldTags,
	constant.FieldStatus,
}

// ImportCSV inserts every row or none. Row violations are reported as
// rows[n].field, n counting data rows from 1.
func (s *buyerAppImpl) ImportCSV(ctx context.Context, actor *model.Actor, r io.Reader) (*model.ImportResult, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil, rowsViolation("CSV file is empty")
		}
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	columns := mapHeader(header)

	var (
		records    []*model.Buyer
		violations []errors.FieldViolation
	)
	for {
		row, err := reader.Read()
		if stderrors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			logger.Info("[ImportCSV] unreadable csv", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		if len(records) >= s.config.Buyer.ImportMaxRows {
			return nil, rowsViolation(fmt.Sprintf("Maximum %d rows allowed", s.config.Buyer.ImportMaxRows))
		}

		record := NewRecord(s.normalize("ImportCSV", rowInput(columns, row)), s.policy)
		record.OwnerID = actor.ID
		records = append(records, record)

		if err := Validate(record); err != nil {
			var ce errors.CustomError
			if !stderrors.As(err, &ce) {
				return nil, err
			}
			for _, v := range ce.Details() {
				violations = append(violations, errors.FieldViolation{
					Field:   fmt.Sprintf("rows[%d].%s", len(records), v.Field),
					Message: v.Message,
				})
			}
		}
	}

	if len(records) == 0 {
		return nil, rowsViolation("CSV file has no data rows")
	}
	if len(violations) > 0 {
		return nil, errors.SetValidationError(violations)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ImportCSV] err txRepo.BeginTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStorage)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	ts := now()
	res := &model.ImportResult{IDs: make([]string, 0, len(records))}
	for _, record := range records {
		record.ID = uuid.NewString()
		record.CreatedAt = ts
		record.UpdatedAt = ts
		if err := s.buyerRepo.CreateTx(ctx, tx, record); err != nil {
			logger.Error("[ImportCSV] err buyerRepo.CreateTx", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrStorage)
		}
		res.IDs = append(res.IDs, record.ID)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ImportCSV] err txRepo.CommitTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStorage)
	}
	committed = true
	res.Imported = len(res.IDs)

	for _, record := range records {
		s.audit(ctx, "ImportCSV", record.ID, actor.ID, Snapshot(record))
		s.publish(ctx, constant.EventBuyerCreated, record.ID, actor.ID, nil)
	}

	logger.Info("[ImportCSV] imported buyers", zap.Int("count", res.Imported), zap.String("actor", actor.ID))
	return res, nil
}

// ExportCSV writes every buyer matching filter, page by page.
func (s *buyerAppImpl) ExportCSV(ctx context.Context, filter *model.BuyerFilter, w io.Writer) error {
	filter.WithDefaults()
	filter.Page = 1
	filter.PageSize = model.MaxPageSize
	if err := ValidateFilter(filter); err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(CSVColumns); err != nil {
		return err
	}

	for {
		items, total, err := s.buyerRepo.List(ctx, filter)
		if err != nil {
			logger.Error("[ExportCSV] err buyerRepo.List", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrStorage)
		}
		for i := range items {
			if err := writer.Write(rowValues(&items[i])); err != nil {
				return err
			}
		}
		if len(items) == 0 || int64(filter.Page*filter.PageSize) >= total {
			break
		}
		filter.Page++
	}

	writer.Flush()
	return writer.Error()
}

func rowsViolation(msg string) error {
	return errors.SetValidationError([]errors.FieldViolation{{Field: "rows", Message: msg}})
}

// mapHeader returns column index by field name. Unknown headers are ignored.
func mapHeader(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		for _, f := range CSVColumns {
			if strings.EqualFold(h, f) {
				columns[f] = i
			}
		}
	}
	return columns
}

func rowInput(columns map[string]int, row []string) *model.BuyerInput {
	get := func(field string) model.RawField {
		i, ok := columns[field]
		if !ok || i >= len(row) {
			return model.RawField{}
		}
		return model.Raw(row[i])
	}

	in := &model.BuyerInput{
		FullName:     get(constant.FieldFullName),
		Email:        get(constant.FieldEmail),
		Phone:        get(constant.FieldPhone),
		City:         get(constant.FieldCity),
		PropertyType: get(constant.FieldPropertyType),
		BHK:          get(constant.FieldBHK),
		Purpose:      get(constant.FieldPurpose),
		BudgetMin:    get(constant.FieldBudgetMin),
		BudgetMax:    get(constant.FieldBudgetMax),
		Timeline:     get(constant.FieldTimeline),
		Source:       get(constant.FieldSource),
		Notes:        get(constant.FieldNotes),
		Status:       get(constant.FieldStatus),
	}
	// an empty cell means "not given" for status
	if strings.TrimSpace(in.Status.Value) == "" {
		in.Status = model.RawField{}
	}
	if tags := get(constant.FieldTags); tags.Present {
		in.Tags = model.RawTagList(model.SplitTags(tags.Value)...)
	}
	return in
}

func rowValues(b *model.Buyer) []string {
	str := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}
	num := func(n *int64) string {
		if n == nil {
			return ""
		}
		return strconv.FormatInt(*n, 10)
	}
	return []string{
		b.FullName,
		str(b.Email),
		b.Phone,
		b.City,
		b.PropertyType,
		str(b.BHK),
		b.Purpose,
		num(b.BudgetMin),
		num(b.BudgetMax),
		b.Timeline,
		b.Source,
		str(b.Notes),
		strings.Join(b.Tags, ","),
		b.Status,
	}
}
