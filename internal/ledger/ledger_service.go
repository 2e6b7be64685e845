package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/domain"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/events"
	ledgererrors "github.com/rayyanshaikh123/bharatbuild-sub004/internal/ledger/errors"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/messaging/kafka"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/shared/contextutil"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/shared/response"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	dateLayout = "2006-01-02"

	defaultPage  = 1
	defaultLimit = 50
	maxLimit     = 500
)

// ChangeNotifier is told after a ledger write for a project has committed.
type ChangeNotifier interface {
	LedgerChanged(ctx context.Context, projectID string)
}

//go:generate mockgen -source=ledger_service.go -destination=mock/ledger_service_mock.go -package=mock
type Service interface {
	// RecordWageApproval materializes an approved wage inside the caller's
	// transaction. The caller commits and notifies.
	RecordWageApproval(ctx context.Context, tx *sql.Tx, w WageApproval) (LedgerEntryResponse, error)
	RecordAdjustment(ctx context.Context, actor domain.Actor, projectID string, req CreateAdjustmentRequest) (RecordAdjustmentResponse, error)
	RecordMaterialApproval(ctx context.Context, projectID string, req MaterialApprovalRequest) (LedgerEntryResponse, error)
	Query(ctx context.Context, projectID string, req LedgerQueryRequest) (LedgerResponse, error)
	Export(ctx context.Context, projectID string, req LedgerQueryRequest, w io.Writer) error
}

type service struct {
	db       *sql.DB
	repo     Repository
	outbox   kafka.OutboxRepository
	notifier ChangeNotifier
	logger   *zap.Logger
	now      func() time.Time
}

var snapshotRead = &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, nil, logger...)
}

// NewServiceWithOutbox also queues a ledger.entry.recorded event for every
// write and notifies after commit. Either collaborator may be nil.
func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	notifier ChangeNotifier,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("ledger.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("ledger.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		outbox:   outboxRepo,
		notifier: notifier,
		logger:   l,
		now:      time.Now,
	}
}

func (s *service) RecordWageApproval(ctx context.Context, tx *sql.Tx, w WageApproval) (LedgerEntryResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	projectID, err := uuid.Parse(w.ProjectID)
	if err != nil {
		return LedgerEntryResponse{}, ledgererrors.ErrInvalidProjectID
	}

	approvedAt := w.ApprovedAt.UTC()
	approvedBy := w.ApprovedBy
	entry := &LedgerEntry{
		ProjectID:   projectID,
		EntryDate:   truncateDay(approvedAt),
		Type:        EntryTypeWage,
		ReferenceID: w.WageID,
		Description: w.Description,
		Amount:      w.Amount.Round(2),
		Category:    categoryForWageType(w.WageType),
		ApprovedBy:  &approvedBy,
		ApprovedAt:  &approvedAt,
		CreatedAt:   s.now().UTC(),
	}
	if entry.Description == "" {
		entry.Description = fmt.Sprintf("Wage for labour %s", w.LabourID)
	}

	if err := s.insertEntry(ctx, tx, entry); err != nil {
		log.Warn("record wage approval failed",
			zap.String("wage_id", w.WageID),
			zap.Error(err),
		)
		return LedgerEntryResponse{}, err
	}

	log.Info("wage materialized in ledger",
		zap.String("wage_id", w.WageID),
		zap.String("project_id", w.ProjectID),
		zap.Int64("entry_id", entry.ID),
	)
	return mapEntryToResponse(*entry, nil), nil
}

func (s *service) RecordAdjustment(
	ctx context.Context,
	actor domain.Actor,
	projectID string,
	req CreateAdjustmentRequest,
) (RecordAdjustmentResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	pid, err := uuid.Parse(projectID)
	if err != nil {
		return RecordAdjustmentResponse{}, ledgererrors.ErrInvalidProjectID
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return RecordAdjustmentResponse{}, ledgererrors.ErrInvalidDate
	}
	if req.Amount.IsZero() {
		return RecordAdjustmentResponse{}, ledgererrors.ErrInvalidAmount
	}

	category := req.Category
	if category == "" {
		category = CategoryAdjustment
	}
	now := s.now().UTC()
	adj := &LedgerAdjustment{
		ID:             uuid.New(),
		ProjectID:      pid,
		AdjustmentDate: date.UTC(),
		Description:    req.Description,
		Amount:         req.Amount.Round(2),
		Category:       category,
		Notes:          req.Notes,
		CreatedBy:      actor.UserID,
		CreatedAt:      now,
	}
	createdBy := actor.UserID
	entry := &LedgerEntry{
		ProjectID:   pid,
		EntryDate:   adj.AdjustmentDate,
		Type:        EntryTypeAdjustment,
		ReferenceID: adj.ID.String(),
		Description: adj.Description,
		Amount:      adj.Amount,
		Category:    category,
		ApprovedBy:  &createdBy,
		ApprovedAt:  &now,
		CreatedAt:   now,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RecordAdjustmentResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).CreateAdjustment(ctx, adj); err != nil {
		log.Error("create adjustment persist failed", zap.Error(err))
		return RecordAdjustmentResponse{}, err
	}
	if err := s.insertEntry(ctx, tx, entry); err != nil {
		log.Error("create adjustment entry failed", zap.Error(err))
		return RecordAdjustmentResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return RecordAdjustmentResponse{}, err
	}
	s.changed(ctx, projectID)

	log.Info("ledger adjustment recorded",
		zap.String("adjustment_id", adj.ID.String()),
		zap.String("project_id", projectID),
		zap.String("amount", adj.Amount.StringFixed(2)),
	)
	return RecordAdjustmentResponse{
		Adjustment: mapAdjustmentToResponse(*adj),
		Entry:      mapEntryToResponse(*entry, nil),
	}, nil
}

func (s *service) RecordMaterialApproval(ctx context.Context, projectID string, req MaterialApprovalRequest) (LedgerEntryResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	pid, err := uuid.Parse(projectID)
	if err != nil {
		return LedgerEntryResponse{}, ledgererrors.ErrInvalidProjectID
	}
	req.MaterialRequestID = strings.TrimSpace(req.MaterialRequestID)
	if req.MaterialRequestID == "" || len(req.MaterialRequestID) > maxReferenceLen {
		return LedgerEntryResponse{}, ledgererrors.ErrInvalidReference
	}
	if req.Amount.IsZero() {
		return LedgerEntryResponse{}, ledgererrors.ErrInvalidAmount
	}

	approvedAt := s.now().UTC()
	if req.ApprovedAt != nil {
		approvedAt = req.ApprovedAt.UTC()
	}
	category := req.Category
	if category == "" {
		category = CategoryMaterial
	}
	var approvedBy *string
	if req.ApprovedBy != "" {
		approvedBy = &req.ApprovedBy
	}
	entry := &LedgerEntry{
		ProjectID:   pid,
		EntryDate:   truncateDay(approvedAt),
		Type:        EntryTypeMaterial,
		ReferenceID: req.MaterialRequestID,
		Description: req.Description,
		Amount:      req.Amount.Round(2),
		Category:    category,
		ApprovedBy:  approvedBy,
		ApprovedAt:  &approvedAt,
		CreatedAt:   s.now().UTC(),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LedgerEntryResponse{}, err
	}
	defer tx.Rollback()

	if err := s.insertEntry(ctx, tx, entry); err != nil {
		log.Warn("record material approval failed",
			zap.String("material_request_id", req.MaterialRequestID),
			zap.Error(err),
		)
		return LedgerEntryResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return LedgerEntryResponse{}, err
	}
	s.changed(ctx, projectID)

	log.Info("material approval recorded",
		zap.String("material_request_id", req.MaterialRequestID),
		zap.String("project_id", projectID),
		zap.Int64("entry_id", entry.ID),
	)
	return mapEntryToResponse(*entry, nil), nil
}

// insertEntry writes entry and its outbox event on tx.
func (s *service) insertEntry(ctx context.Context, tx *sql.Tx, entry *LedgerEntry) error {
	if err := s.repo.WithTx(tx).Create(ctx, entry); err != nil {
		return mapRepositoryError(err)
	}
	if s.outbox == nil {
		return nil
	}

	event := events.LedgerEntryRecordedEvent{
		EventType:   "ledger.entry.recorded",
		EntryID:     entry.ID,
		ProjectID:   entry.ProjectID.String(),
		Type:        entry.Type,
		ReferenceID: entry.ReferenceID,
		Amount:      entry.Amount,
		EntryDate:   entry.EntryDate.Format(dateLayout),
		OccurredAt:  s.now().UTC(),
	}
	msg, err := kafka.NewOutboxEvent(
		contextutil.GetRequestID(ctx),
		"ledger_entry",
		fmt.Sprint(entry.ID),
		event.ProjectID,
		event.EventType,
		events.LedgerEntryRecordedTopic,
		event,
	)
	if err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, msg)
}

func (s *service) changed(ctx context.Context, projectID string) {
	if s.notifier != nil {
		s.notifier.LedgerChanged(ctx, projectID)
	}
}

// Query reads the count, the page and its running totals from one snapshot
// so a concurrent insert cannot skew the totals against the page.
func (s *service) Query(ctx context.Context, projectID string, req LedgerQueryRequest) (LedgerResponse, error) {
	q, err := parseQuery(projectID, req)
	if err != nil {
		return LedgerResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, snapshotRead)
	if err != nil {
		return LedgerResponse{}, err
	}
	defer tx.Rollback()
	repo := s.repo.WithTx(tx)

	total, err := repo.Count(ctx, projectID, q.filter)
	if err != nil {
		return LedgerResponse{}, err
	}
	rows, err := repo.FindPage(ctx, projectID, q.filter, (q.page-1)*q.limit, q.limit)
	if err != nil {
		return LedgerResponse{}, err
	}
	entries, err := withRunningTotals(ctx, repo, projectID, rows)
	if err != nil {
		return LedgerResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return LedgerResponse{}, err
	}

	return LedgerResponse{
		Entries:    entries,
		Pagination: response.NewPaginationMeta(total, q.page, q.limit),
	}, nil
}

// withRunningTotals attaches to each row the balance of the full project
// sequence up to and including it. Rows must be in ledger order.
func withRunningTotals(ctx context.Context, repo Repository, projectID string, rows []LedgerEntry) ([]LedgerEntryResponse, error) {
	if len(rows) == 0 {
		return []LedgerEntryResponse{}, nil
	}

	first := Position{Date: rows[0].EntryDate, ID: rows[0].ID}
	last := Position{Date: rows[len(rows)-1].EntryDate, ID: rows[len(rows)-1].ID}

	opening, err := repo.SumBefore(ctx, projectID, first)
	if err != nil {
		return nil, err
	}
	span, err := repo.FindSpan(ctx, projectID, first, last)
	if err != nil {
		return nil, err
	}
	totals := runningTotals(opening, span)

	res := make([]LedgerEntryResponse, len(rows))
	for i, r := range rows {
		t := totals[r.ID]
		res[i] = mapEntryToResponse(r, &t)
	}
	return res, nil
}

type parsedQuery struct {
	filter EntryFilter
	page   int
	limit  int
}

func parseQuery(projectID string, req LedgerQueryRequest) (parsedQuery, error) {
	if _, err := uuid.Parse(projectID); err != nil {
		return parsedQuery{}, ledgererrors.ErrInvalidProjectID
	}

	q := parsedQuery{page: defaultPage, limit: defaultLimit}
	if req.Page != nil {
		q.page = *req.Page
	}
	if req.Limit != nil {
		q.limit = *req.Limit
	}
	if q.page < 1 || q.limit < 1 || q.limit > maxLimit {
		return parsedQuery{}, ledgererrors.ErrInvalidPage
	}

	if req.StartDate != "" {
		d, err := time.Parse(dateLayout, req.StartDate)
		if err != nil {
			return parsedQuery{}, ledgererrors.ErrInvalidDateRange
		}
		q.filter.From = &d
	}
	if req.EndDate != "" {
		d, err := time.Parse(dateLayout, req.EndDate)
		if err != nil {
			return parsedQuery{}, ledgererrors.ErrInvalidDateRange
		}
		q.filter.To = &d
	}
	if q.filter.From != nil && q.filter.To != nil && q.filter.From.After(*q.filter.To) {
		return parsedQuery{}, ledgererrors.ErrInvalidDateRange
	}

	switch req.Type {
	case "", EntryTypeMaterial, EntryTypeWage, EntryTypeAdjustment:
		q.filter.Type = req.Type
	default:
		return parsedQuery{}, ledgererrors.ErrInvalidEntryType
	}
	return q, nil
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mapEntryToResponse(e LedgerEntry, runningTotal *decimal.Decimal) LedgerEntryResponse {
	res := LedgerEntryResponse{
		ID:          e.ID,
		ProjectID:   e.ProjectID.String(),
		Date:        e.EntryDate.Format(dateLayout),
		Type:        e.Type,
		ReferenceID: e.ReferenceID,
		Description: e.Description,
		Amount:      e.Amount,
		Category:    e.Category,
		ApprovedBy:  e.ApprovedBy,
	}
	if runningTotal != nil {
		res.RunningTotal = *runningTotal
	}
	if e.ApprovedAt != nil {
		at := e.ApprovedAt.UTC().Format(time.RFC3339)
		res.ApprovedAt = &at
	}
	return res
}

func mapAdjustmentToResponse(a LedgerAdjustment) AdjustmentResponse {
	return AdjustmentResponse{
		ID:          a.ID.String(),
		ProjectID:   a.ProjectID.String(),
		Date:        a.AdjustmentDate.Format(dateLayout),
		Description: a.Description,
		Amount:      a.Amount,
		Category:    a.Category,
		Notes:       a.Notes,
		CreatedBy:   a.CreatedBy,
		CreatedAt:   a.CreatedAt.Format(time.RFC3339),
	}
}
