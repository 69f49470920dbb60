package buyer

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/krishsharda/Buyer-Leads/cmd/config"
	"github.com/krishsharda/Buyer-Leads/constant"
	"github.com/krishsharda/Buyer-Leads/model"
	buyerrepo "github.com/krishsharda/Buyer-Leads/repository/buyer"
	historyrepo "github.com/krishsharda/Buyer-Leads/repository/history"
	redisrepo "github.com/krishsharda/Buyer-Leads/repository/redis"
	txrepo "github.com/krishsharda/Buyer-Leads/repository/tx"
	"github.com/krishsharda/Buyer-Leads/utils/errors"
	"github.com/krishsharda/Buyer-Leads/utils/logger"
	"go.uber.org/zap"
)

type BuyerApp interface {
	CreateBuyer(ctx context.Context, actor *model.Actor, in *model.BuyerInput) (*model.Buyer, error)
	UpdateBuyer(ctx context.Context, actor *model.Actor, id string, in *model.BuyerInput, observedUpdatedAt *time.Time) (*model.Buyer, error)
	DeleteBuyer(ctx context.Context, actor *model.Actor, id string) error
	GetBuyer(ctx context.Context, id string) (*model.Buyer, error)
	ListBuyers(ctx context.Context, filter *model.BuyerFilter) (*model.BuyerListResponse, error)
	ListHistory(ctx context.Context, id string) ([]model.BuyerHistory, error)
	ImportCSV(ctx context.Context, actor *model.Actor, r io.Reader) (*model.ImportResult, error)
	ExportCSV(ctx context.Context, filter *model.BuyerFilter, w io.Writer) error
	WarmCache(ctx context.Context, id string) error
}

// EventPublisher delivers buyer events. Publishing is best effort.
type EventPublisher interface {
	Publish(ctx context.Context, event *model.BuyerEvent) error
}

type buyerAppImpl struct {
	config      *config.Config
	policy      Policy
	txRepo      txrepo.TxRepository
	buyerRepo   buyerrepo.BuyerRepository
	historyRepo historyrepo.HistoryRepository
	redisRepo   redisrepo.RedisRepository
	publisher   EventPublisher
}

func NewBuyerApp(config *config.Config, txRepo txrepo.TxRepository, buyerRepo buyerrepo.BuyerRepository, historyRepo historyrepo.HistoryRepository, redisRepo redisrepo.RedisRepository, publisher EventPublisher) BuyerApp {
	return &buyerAppImpl{
		config:      config,
		policy:      ParsePolicy(config.Buyer.NormalizePolicy),
		txRepo:      txRepo,
		buyerRepo:   buyerRepo,
		historyRepo: historyRepo,
		redisRepo:   redisRepo,
		publisher:   publisher,
	}
}

func (s *buyerAppImpl) normalize(op string, in *model.BuyerInput) *Draft {
	draft, unrecognized := Normalize(in, s.policy)
	for _, uv := range unrecognized {
		logger.Debug("["+op+"] unrecognized enum value",
			zap.String("field", uv.Field),
			zap.String("value", uv.Value),
			zap.String("policy", string(s.policy)))
	}
	return draft
}

func (s *buyerAppImpl) CreateBuyer(ctx context.Context, actor *model.Actor, in *model.BuyerInput) (*model.Buyer, error) {
	draft := s.normalize("CreateBuyer", in)
	record := NewRecord(draft, s.policy)

	// only an admin may file a lead under someone else
	if !actor.IsAdmin || record.OwnerID == "" {
		record.OwnerID = actor.ID
	}

	if err := Validate(record); err != nil {
		return nil, err
	}

	record.ID = uuid.NewString()
	record.CreatedAt = now()
	record.UpdatedAt = record.CreatedAt

	created, err := s.buyerRepo.Create(ctx, record)
	if err != nil {
		logger.Error("[CreateBuyer] err buyerRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStorage)
	}

	s.audit(ctx, "CreateBuyer", created.ID, actor.ID, Snapshot(created))
	s.publish(ctx, constant.EventBuyerCreated, created.ID, actor.ID, nil)

	return created, nil
}

func (s *buyerAppImpl) UpdateBuyer(ctx context.Context, actor *model.Actor, id string, in *model.BuyerInput, observedUpdatedAt *time.Time) (*model.Buyer, error) {
	if observedUpdatedAt == nil && s.config.Buyer.RequireObservedUpdatedAt {
		return nil, errors.SetValidationError([]errors.FieldViolation{{
			Field:   constant.FieldUpdatedAt,
			Message: "updatedAt is required",
		}})
	}

	existing, err := s.buyerRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[UpdateBuyer] err buyerRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStorage)
	}
	if existing == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if !actor.CanModify(existing.OwnerID) {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	draft := s.normalize("UpdateBuyer", in)
	if draft.Has(constant.FieldOwnerID) {
		switch {
		case draft.Values.OwnerID == "" || draft.Values.OwnerID == existing.OwnerID:
			draft.Unset(constant.FieldOwnerID)
		case !actor.IsAdmin:
			return nil, errors.SetCustomError(constant.ErrForbidden)
		}
	}

	merged := draft.Apply(existing)
	if err := Validate(merged); err != nil {
		return nil, err
	}

	if err := CheckConcurrency(existing.UpdatedAt, observedUpdatedAt); err != nil {
		logger.Info("[UpdateBuyer] stale write rejected",
			zap.String("buyer_id", id),
			zap.Time("stored", existing.UpdatedAt),
			zap.Time("observed", *observedUpdatedAt))
		return nil, err
	}

	changes := ChangeSet(existing, draft)
	if len(changes) == 0 {
		return existing, nil
	}

	updated, err := s.buyerRepo.Update(ctx, &model.BuyerUpdate{
		ID:                id,
		Columns:           merged.ColumnValues(changes.Fields()...),
		UpdatedAt:         nextVersion(existing.UpdatedAt),
		ExpectedUpdatedAt: existing.UpdatedAt,
	})
	if err != nil {
		if errors.IsType(err, constant.ErrConflict) || errors.IsType(err, constant.ErrNotFound) {
			return nil, err
		}
		logger.Error("[UpdateBuyer] err buyerRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStorage)
	}

	s.audit(ctx, "UpdateBuyer", id, actor.ID, changes)
	s.evict(ctx, "UpdateBuyer", id)
	s.publish(ctx, constant.EventBuyerUpdated, id, actor.ID, changes)

	return updated, nil
}

func (s *buyerAppImpl) DeleteBuyer(ctx context.Context, actor *model.Actor, id string) error {
	existing, err := s.buyerRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[DeleteBuyer] err buyerRepo.GetByID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrStorage)
	}
	if existing == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if !actor.CanModify(existing.OwnerID) {
		return errors.SetCustomError(constant.ErrForbidden)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[DeleteBuyer] err txRepo.BeginTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrStorage)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	// history goes first, it references the buyer
	if err := s.historyRepo.DeleteByBuyerTx(ctx, tx, id); err != nil {
		logger.Error("[DeleteBuyer] err historyRepo.DeleteByBuyerTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrStorage)
	}
	deleted, err := s.buyerRepo.DeleteTx(ctx, tx, id)
	if err != nil {
		logger.Error("[DeleteBuyer] err buyerRepo.DeleteTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrStorage)
	}
	if !deleted {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[DeleteBuyer] err txRepo.CommitTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrStorage)
	}
	committed = true

	s.evict(ctx, "DeleteBuyer", id)
	s.publish(ctx, constant.EventBuyerDeleted, id, actor.ID, nil)

	return nil
}

func (s *buyerAppImpl) GetBuyer(ctx context.Context, id string) (*model.Buyer, error) {
	key := constant.BuyerCachePrefix + id

	cached, err := s.redisRepo.Get(ctx, key)
	if err != nil {
		logger.Warn("[GetBuyer] err redisRepo.Get", zap.String("error", err.Error()))
	}
	if cached != "" {
		var b model.Buyer
		if err := json.Unmarshal([]byte(cached), &b); err == nil {
			return &b, nil
		}
		logger.Warn("[GetBuyer] dropping unreadable cache entry", zap.String("key", key))
	}

	b, err := s.buyerRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetBuyer] err buyerRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStorage)
	}
	if b == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	s.cache(ctx, "GetBuyer", b)
	return b, nil
}

// WarmCache reloads a buyer into the cache.
func (s *buyerAppImpl) WarmCache(ctx context.Context, id string) error {
	b, err := s.buyerRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[WarmCache] err buyerRepo.GetByID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrStorage)
	}
	if b == nil {
		s.evict(ctx, "WarmCache", id)
		return errors.SetCustomError(constant.ErrNotFound)
	}
	s.cache(ctx, "WarmCache", b)
	return nil
}

func (s *buyerAppImpl) ListBuyers(ctx context.Context, filter *model.BuyerFilter) (*model.BuyerListResponse, error) {
	filter.WithDefaults()
	if err := ValidateFilter(filter); err != nil {
		return nil, err
	}

	items, total, err := s.buyerRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListBuyers] err buyerRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStorage)
	}

	return &model.BuyerListResponse{
		Items:      items,
		TotalCount: total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: int((total + int64(filter.PageSize) - 1) / int64(filter.PageSize)),
	}, nil
}

func (s *buyerAppImpl) ListHistory(ctx context.Context, id string) ([]model.BuyerHistory, error) {
	b, err := s.buyerRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[ListHistory] err buyerRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStorage)
	}
	if b == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	entries, err := s.historyRepo.ListByBuyer(ctx, id, s.config.Buyer.HistoryLimit)
	if err != nil {
		logger.Error("[ListHistory] err historyRepo.ListByBuyer", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrStorage)
	}
	return entries, nil
}

// audit appends a history entry. A failure never undoes the write it records.
func (s *buyerAppImpl) audit(ctx context.Context, op, buyerID, actorID string, diff model.ChangeSet) {
	// v7 ids sort by creation time, so they order entries sharing a changed_at.
	entry := &model.BuyerHistory{
		ID:        uuid.Must(uuid.NewV7()).String(),
		BuyerID:   buyerID,
		ChangedBy: actorID,
		ChangedAt: now(),
		Diff:      diff,
	}
	if err := s.historyRepo.Append(ctx, entry); err != nil {
		logger.Error("["+op+"] err historyRepo.Append",
			zap.String("buyer_id", buyerID),
			zap.String("error", err.Error()))
	}
}

func (s *buyerAppImpl) cache(ctx context.Context, op string, b *model.Buyer) {
	raw, err := json.Marshal(b)
	if err != nil {
		logger.Warn("["+op+"] err json.Marshal", zap.String("error", err.Error()))
		return
	}
	if err := s.redisRepo.SetWithTTL(ctx, constant.BuyerCachePrefix+b.ID, string(raw), s.config.Buyer.CacheTTL); err != nil {
		logger.Warn("["+op+"] err redisRepo.SetWithTTL", zap.String("error", err.Error()))
	}
}

func (s *buyerAppImpl) evict(ctx context.Context, op, id string) {
	if err := s.redisRepo.Delete(ctx, constant.BuyerCachePrefix+id); err != nil {
		logger.Warn("["+op+"] err redisRepo.Delete", zap.String("error", err.Error()))
	}
}

func (s *buyerAppImpl) publish(ctx context.Context, eventType, buyerID, actorID string, changes model.ChangeSet) {
	if s.publisher == nil {
		return
	}
	event := &model.BuyerEvent{
		Type:       eventType,
		BuyerID:    buyerID,
		ActorID:    actorID,
		Changes:    changes,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		logger.Error("[Publish] err publisher.Publish",
			zap.String("type", eventType),
			zap.String("error", err.Error()))
	}
}
