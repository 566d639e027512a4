package employee

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"

	"github.com/staffdir/backend/internal/domain/directory"
	"github.com/staffdir/backend/internal/domain/shared"
	"github.com/staffdir/backend/internal/infrastructure/config"
	"github.com/staffdir/backend/internal/infrastructure/csvio"
)

// RowOutcome reports what happened to one data row
type RowOutcome string

const (
	RowCommitted RowOutcome = "committed"
	RowRejected  RowOutcome = "rejected"
)

// ImportSummary is the result of one import run. SuccessCount and ErrorCount
// always add up to TotalRows.
type ImportSummary struct {
	TotalRows    int              `json:"total_rows"`
	SuccessCount int              `json:"success_count"`
	ErrorCount   int              `json:"error_count"`
	Rejections   []csvio.RowError `json:"rejections,omitempty"`
	TotalErrors  int              `json:"total_errors"`
	IsTruncated  bool             `json:"is_truncated,omitempty"`
	Preview      []EmployeeView   `json:"preview,omitempty"`
}

// ImportService runs bulk employee CSV imports
type ImportService struct {
	employeeRepo   directory.EmployeeRepository
	departmentRepo directory.DepartmentRepository
	positionRepo   directory.PositionRepository
	areaRepo       directory.AreaRepository
	cfg            config.ImportConfig
	logger         *zap.Logger

	// Serializes employee-number generation across concurrent runs
	seqMu sync.Mutex
}

// NewImportService creates a new ImportService
func NewImportService(
	employeeRepo directory.EmployeeRepository,
	departmentRepo directory.DepartmentRepository,
	positionRepo directory.PositionRepository,
	areaRepo directory.AreaRepository,
	cfg config.ImportConfig,
	logger *zap.Logger,
) *ImportService {
	return &ImportService{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
		positionRepo:   positionRepo,
		areaRepo:       areaRepo,
		cfg:            cfg,
		logger:         logger,
	}
}

// RunImport decodes and imports an employee CSV file. File-level problems
// (encoding, quoting, missing headers, empty file) abort the whole run with
// an error; row-level problems reject only their row, and the returned
// summary accounts for every data row exactly once.
func (s *ImportService) RunImport(ctx context.Context, src io.Reader) (*ImportSummary, error) {
	reader, err := csvio.NewReader(src)
	if err != nil {
		return nil, err
	}
	if err := reader.ParseHeader(); err != nil {
		return nil, err
	}
	if err := reader.RequireHeaders(RequiredColumns()); err != nil {
		return nil, err
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, csvio.ErrEmptyFile
	}
	if len(rows) > s.cfg.MaxRows {
		return nil, shared.NewDomainError("TOO_MANY_ROWS",
			fmt.Sprintf("file has %d data rows, the limit is %d", len(rows), s.cfg.MaxRows))
	}

	index, err := LoadReferenceIndex(ctx, s.departmentRepo, s.positionRepo, s.areaRepo)
	if err != nil {
		return nil, fmt.Errorf("failed to load reference data: %w", err)
	}

	s.seqMu.Lock()
	defer s.seqMu.Unlock()

	nextSeq, err := s.employeeRepo.MaxGeneratedSeq(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to seed employee number sequence: %w", err)
	}

	summary := &ImportSummary{TotalRows: len(rows)}
	rejections := csvio.NewErrorCollection(s.cfg.MaxErrors)
	batchEmails := make(map[string]bool)
	batchNumbers := make(map[string]bool)

	storageDown := false
	for _, row := range rows {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if storageDown {
			rejections.Add(csvio.NewRowError(row.LineNumber, "", csvio.ErrCodeStorage,
				"not attempted, storage failed earlier in this run"))
			summary.ErrorCount++
			continue
		}

		outcome, err := s.importRow(ctx, row, index, &nextSeq, batchEmails, batchNumbers, rejections, summary)
		if err != nil {
			// Storage failure. Committed rows stay committed; this row and
			// every remaining row is rejected with a storage reason.
			s.logger.Error("import storage failure",
				zap.Int("row", row.LineNumber),
				zap.Error(err))
			rejections.Add(csvio.NewRowError(row.LineNumber, "", csvio.ErrCodeStorage,
				"storage unavailable, row not imported"))
			summary.ErrorCount++
			storageDown = true
			continue
		}
		if outcome == RowCommitted {
			summary.SuccessCount++
		} else {
			summary.ErrorCount++
		}
	}

	summary.Rejections = rejections.Errors()
	summary.TotalErrors = rejections.TotalCount()
	summary.IsTruncated = rejections.IsTruncated()

	s.logger.Info("import run finished",
		zap.Int("total_rows", summary.TotalRows),
		zap.Int("success", summary.SuccessCount),
		zap.Int("errors", summary.ErrorCount))

	return summary, nil
}

// importRow processes one data row. A nil error with RowRejected means the
// row failed for its own reasons and the batch continues; a non-nil error
// means storage failed and the run cannot keep persisting.
func (s *ImportService) importRow(
	ctx context.Context,
	row *csvio.Row,
	index *ReferenceIndex,
	nextSeq *int64,
	batchEmails, batchNumbers map[string]bool,
	rejections *csvio.ErrorCollection,
	summary *ImportSummary,
) (RowOutcome, error) {
	parsed, rowErr := validateRow(row, index)
	if rowErr != nil {
		rejections.Add(*rowErr)
		return RowRejected, nil
	}

	// Duplicate detection. Ordered checks, first match wins: the row gets a
	// single duplicate reason even if several values collide.
	if dup, err := s.duplicateReason(ctx, parsed, batchEmails, batchNumbers); err != nil {
		return RowRejected, err
	} else if dup != nil {
		rejections.Add(*dup)
		return RowRejected, nil
	}

	number := parsed.employeeNumber
	if number == "" {
		generated, err := s.nextEmployeeNumber(ctx, nextSeq, batchNumbers)
		if err != nil {
			return RowRejected, err
		}
		number = generated
	}

	emp, err := directory.NewEmployee(
		number,
		parsed.lastName, parsed.firstName,
		parsed.departmentID, parsed.positionID,
		parsed.employmentType,
		parsed.hireDate,
		parsed.email,
	)
	if err != nil {
		// Validation already covered the constructor's rules; anything left
		// is still a row problem, not a batch problem.
		rejections.Add(csvio.NewRowError(row.LineNumber, "", csvio.ErrCodeInvalidValue, err.Error()))
		return RowRejected, nil
	}
	emp.SetKana(parsed.lastNameKana, parsed.firstNameKana)
	emp.SetContact(parsed.phone, parsed.address)
	emp.SetBirthDate(parsed.birthDate)
	emp.SetArea(parsed.areaID)

	if err := s.employeeRepo.Create(ctx, emp); err != nil {
		return RowRejected, err
	}

	batchEmails[parsed.email] = true
	batchNumbers[number] = true

	if len(summary.Preview) < s.cfg.PreviewLimit {
		summary.Preview = append(summary.Preview, NewEmployeeView(emp, index))
	}
	return RowCommitted, nil
}

// duplicateReason returns the single rejection for a duplicate row, checking
// email before employee number and the store before the current batch
func (s *ImportService) duplicateReason(
	ctx context.Context,
	parsed *parsedRow,
	batchEmails, batchNumbers map[string]bool,
) (*csvio.RowError, error) {
	exists, err := s.employeeRepo.ExistsByEmail(ctx, parsed.email)
	if err != nil {
		return nil, err
	}
	if exists {
		e := csvio.NewDuplicateError(parsed.lineNumber, ColEmail, parsed.email, true)
		return &e, nil
	}
	if batchEmails[parsed.email] {
		e := csvio.NewDuplicateError(parsed.lineNumber, ColEmail, parsed.email, false)
		return &e, nil
	}

	if parsed.employeeNumber != "" {
		exists, err := s.employeeRepo.ExistsByEmployeeNumber(ctx, parsed.employeeNumber)
		if err != nil {
			return nil, err
		}
		if exists {
			e := csvio.NewDuplicateError(parsed.lineNumber, ColEmployeeNumber, parsed.employeeNumber, true)
			return &e, nil
		}
		if batchNumbers[parsed.employeeNumber] {
			e := csvio.NewDuplicateError(parsed.lineNumber, ColEmployeeNumber, parsed.employeeNumber, false)
			return &e, nil
		}
	}
	return nil, nil
}

// nextEmployeeNumber advances the sequence until it lands on a number unused
// in both the store and the current batch
func (s *ImportService) nextEmployeeNumber(ctx context.Context, nextSeq *int64, batchNumbers map[string]bool) (string, error) {
	for {
		*nextSeq++
		candidate := directory.FormatEmployeeNumber(*nextSeq)
		if batchNumbers[candidate] {
			continue
		}
		exists, err := s.employeeRepo.ExistsByEmployeeNumber(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
}

// IsFileError reports whether an import error describes the file itself
// rather than the system, so handlers can map it to a client error
func IsFileError(err error) bool {
	var headerErr *csvio.HeaderError
	var domainErr *shared.DomainError
	return errors.Is(err, csvio.ErrEmptyFile) ||
		errors.Is(err, csvio.ErrInvalidEncoding) ||
		errors.Is(err, csvio.ErrMissingHeader) ||
		errors.Is(err, csvio.ErrMalformedCSV) ||
		errors.As(err, &headerErr) ||
		errors.As(err, &domainErr)
}
