package employee

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/staffdir/backend/internal/domain/directory"
	"github.com/staffdir/backend/internal/infrastructure/csvio"
)

// ExportService writes employee listings as CSV files
type ExportService struct {
	employeeRepo   directory.EmployeeRepository
	departmentRepo directory.DepartmentRepository
	positionRepo   directory.PositionRepository
	areaRepo       directory.AreaRepository
	logger         *zap.Logger
}

// NewExportService creates a new ExportService
func NewExportService(
	employeeRepo directory.EmployeeRepository,
	departmentRepo directory.DepartmentRepository,
	positionRepo directory.PositionRepository,
	areaRepo directory.AreaRepository,
	logger *zap.Logger,
) *ExportService {
	return &ExportService{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
		positionRepo:   positionRepo,
		areaRepo:       areaRepo,
		logger:         logger,
	}
}

// RunExport streams all employees matching the filter to dst using the same
// column layout the import accepts. All or nothing: any lookup failure
// aborts before rows are written.
func (s *ExportService) RunExport(ctx context.Context, filter directory.EmployeeFilter, dst io.Writer) error {
	index, err := LoadReferenceIndex(ctx, s.departmentRepo, s.positionRepo, s.areaRepo)
	if err != nil {
		return fmt.Errorf("failed to load reference data: %w", err)
	}

	// Export ignores pagination, the file carries the full match set
	filter.Page = 0
	filter.PageSize = 0
	employees, total, err := s.employeeRepo.FindAll(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to load employees: %w", err)
	}

	w := csvio.NewWriter(dst)
	if err := w.WriteHeader(Columns()); err != nil {
		return err
	}
	for _, emp := range employees {
		if err := w.WriteRow(exportRow(emp, index)); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	s.logger.Info("export run finished", zap.Int64("rows", total))
	return nil
}

// exportRow renders one employee in file column order
func exportRow(e *directory.Employee, index *ReferenceIndex) []string {
	birthDate := ""
	if e.BirthDate != nil {
		birthDate = e.BirthDate.Format(DateLayout)
	}
	return []string{
		e.EmployeeNumber,
		e.LastName,
		e.FirstName,
		e.LastNameKana,
		e.FirstNameKana,
		index.DepartmentName(e.DepartmentID),
		index.PositionName(e.PositionID),
		e.EmploymentType.Label(),
		e.HireDate.Format(DateLayout),
		e.Email,
		e.Phone,
		birthDate,
		e.Address,
	}
}

// Template returns a sample import file: the canonical header row plus two
// example rows. It is produced by the same encoder and header constants the
// import validates against, so the header row always matches.
func Template() ([]byte, error) {
	return csvio.Encode(Columns(), [][]string{
		{
			"EMP0001", "山田", "太郎", "ヤマダ", "タロウ",
			"営業部", "部長", directory.EmploymentRegular.Label(),
			"2015-04-01", "yamada.taro@example.co.jp", "03-1234-5678",
			"1980-01-15", "東京都千代田区丸の内1-1-1",
		},
		{
			"", "佐藤", "花子", "サトウ", "ハナコ",
			"総務部", "一般", directory.EmploymentContract.Label(),
			"2021-10-01", "sato.hanako@example.co.jp", "",
			"", "",
		},
	})
}
