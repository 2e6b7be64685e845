package ledger

import (
	"context"
	"fmt"
	"io"

	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/shared/contextutil"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const exportSheet = "Ledger"

var exportHeaders = []string{
	"Date", "Type", "Reference", "Description", "Category",
	"Amount", "Running Total", "Approved By", "Approved At",
}

// Export writes every row matching req, ignoring its page and limit, as an
// XLSX workbook. Running totals are the same as Query reports.
func (s *service) Export(ctx context.Context, projectID string, req LedgerQueryRequest, w io.Writer) error {
	req.Page, req.Limit = nil, nil
	q, err := parseQuery(projectID, req)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return err
	}
	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(exportSheet, cell, h); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx, snapshotRead)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	repo := s.repo.WithTx(tx)

	row := 2
	for offset := 0; ; offset += maxLimit {
		rows, err := repo.FindPage(ctx, projectID, q.filter, offset, maxLimit)
		if err != nil {
			return err
		}
		entries, err := withRunningTotals(ctx, repo, projectID, rows)
		if err != nil {
			return err
		}
		for _, e := range entries {
			values := []any{
				e.Date, e.Type, e.ReferenceID, e.Description, e.Category,
				e.Amount.InexactFloat64(), e.RunningTotal.InexactFloat64(),
				deref(e.ApprovedBy), deref(e.ApprovedAt),
			}
			if err := f.SetSheetRow(exportSheet, fmt.Sprintf("A%d", row), &values); err != nil {
				return err
			}
			row++
		}
		if len(rows) < maxLimit {
			break
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	contextutil.GetLogger(ctx, s.logger).Info("ledger exported",
		zap.String("project_id", projectID),
		zap.Int("rows", row-2),
	)
	return f.Write(w)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
