package employee

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/staffdir/backend/internal/domain/directory"
	"github.com/staffdir/backend/internal/infrastructure/config"
	"github.com/staffdir/backend/internal/infrastructure/csvio"
)

func testImportConfig() config.ImportConfig {
	return config.ImportConfig{
		MaxFileSize:  5 << 20,
		MaxRows:      1000,
		MaxErrors:    100,
		PreviewLimit: 20,
	}
}

// importFixture wires an ImportService over mock repositories preloaded with
// 営業部/総務部, 部長/一般 and the 東京 area
type importFixture struct {
	service      *ImportService
	employeeRepo *MockEmployeeRepository
	created      []*directory.Employee
}

func newImportFixture(t *testing.T, cfg config.ImportConfig) *importFixture {
	t.Helper()

	sales, err := directory.NewDepartment("営業部")
	require.NoError(t, err)
	affairs, err := directory.NewDepartment("総務部")
	require.NoError(t, err)
	manager, err := directory.NewPosition("部長", 10)
	require.NoError(t, err)
	staff, err := directory.NewPosition("一般", 1)
	require.NoError(t, err)
	tokyo, err := directory.NewArea("東京")
	require.NoError(t, err)

	deptRepo := new(MockDepartmentRepository)
	deptRepo.On("FindAll", mock.Anything).Return([]*directory.Department{sales, affairs}, nil)
	posRepo := new(MockPositionRepository)
	posRepo.On("FindAll", mock.Anything).Return([]*directory.Position{manager, staff}, nil)
	areaRepo := new(MockAreaRepository)
	areaRepo.On("FindAll", mock.Anything).Return([]*directory.Area{tokyo}, nil)

	f := &importFixture{employeeRepo: new(MockEmployeeRepository)}
	f.employeeRepo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			f.created = append(f.created, args.Get(1).(*directory.Employee))
		}).
		Return(nil).
		Maybe()

	f.service = NewImportService(f.employeeRepo, deptRepo, posRepo, areaRepo, cfg, zap.NewNop())
	return f
}

// noDuplicates stubs every existence check to false and seeds the number
// sequence at seq
func (f *importFixture) noDuplicates(seq int64) {
	f.employeeRepo.On("MaxGeneratedSeq", mock.Anything).Return(seq, nil)
	f.employeeRepo.On("ExistsByEmail", mock.Anything, mock.Anything).Return(false, nil)
	f.employeeRepo.On("ExistsByEmployeeNumber", mock.Anything, mock.Anything).Return(false, nil)
}

func importCSV(rows ...string) string {
	header := strings.Join(Columns(), ",")
	return header + "\n" + strings.Join(rows, "\n") + "\n"
}

func validRow(number, email string) string {
	return fmt.Sprintf("%s,田中,太郎,タナカ,タロウ,営業部,部長,正社員,2020-04-01,%s,03-0000-0000,1990-05-20,東京都", number, email)
}

func TestRunImport_AllRowsCommitted(t *testing.T) {
	f := newImportFixture(t, testImportConfig())
	f.noDuplicates(0)

	src := importCSV(
		validRow("E-100", "a@example.com"),
		validRow("E-101", "b@example.com"),
	)
	summary, err := f.service.RunImport(context.Background(), strings.NewReader(src))

	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalRows)
	assert.Equal(t, 2, summary.SuccessCount)
	assert.Equal(t, 0, summary.ErrorCount)
	assert.Empty(t, summary.Rejections)
	require.Len(t, f.created, 2)
	assert.Equal(t, "E-100", f.created[0].EmployeeNumber)
	assert.Equal(t, "営業部", summary.Preview[0].DepartmentName)
}

func TestRunImport_AccountingIsExact(t *testing.T) {
	f := newImportFixture(t, testImportConfig())
	f.noDuplicates(0)

	src := importCSV(
		validRow("E-1", "ok1@example.com"),
		"E-2,,,,,営業部,部長,正社員,2020-04-01,bad-row@example.com,,,",
		validRow("E-3", "ok2@example.com"),
		"E-4,佐藤,次郎,,,架空部,部長,正社員,2020-04-01,ok3@example.com,,,",
	)
	summary, err := f.service.RunImport(context.Background(), strings.NewReader(src))

	require.NoError(t, err)
	assert.Equal(t, 4, summary.TotalRows)
	assert.Equal(t, 2, summary.SuccessCount)
	assert.Equal(t, 2, summary.ErrorCount)
	assert.Equal(t, summary.TotalRows, summary.SuccessCount+summary.ErrorCount)
}

func TestRunImport_OneBadRowDoesNotAbortBatch(t *testing.T) {
	f := newImportFixture(t, testImportConfig())
	f.noDuplicates(0)

	src := importCSV(
		"E-1,田中,,,,営業部,部長,正社員,2020-04-01,x@example.com,,,",
		validRow("E-2", "y@example.com"),
	)
	summary, err := f.service.RunImport(context.Background(), strings.NewReader(src))

	require.NoError(t, err)
	assert.Equal(t, 1, summary.SuccessCount)
	require.Len(t, f.created, 1)
	assert.Equal(t, "E-2", f.created[0].EmployeeNumber)
}

func TestRunImport_OneRejectionCarriesEveryProblem(t *testing.T) {
	f := newImportFixture(t, testImportConfig())
	f.noDuplicates(0)

	// Bad department, bad employment type, bad hire date, bad email
	src := importCSV("E-1,田中,太郎,,,架空部,部長,役員,2020/04/01,not-an-email,,,")
	summary, err := f.service.RunImport(context.Background(), strings.NewReader(src))

	require.NoError(t, err)
	assert.Equal(t, 1, summary.ErrorCount)
	assert.Equal(t, 1, summary.TotalErrors)
	require.Len(t, summary.Rejections, 1, "one outcome per row, however many problems it has")

	rejection := summary.Rejections[0]
	assert.Equal(t, ColDepartment, rejection.Column, "first blocking reason is the primary one")
	assert.Equal(t, csvio.ErrCodeReferenceNotFound, rejection.Code)

	require.Len(t, rejection.Details, 3)
	details := strings.Join(rejection.Details, "\n")
	assert.Contains(t, details, ColEmploymentType)
	assert.Contains(t, details, ColHireDate)
	assert.Contains(t, details, ColEmail)
}

func TestRunImport_ReferenceMatchingIsCaseSensitive(t *testing.T) {
	f := newImportFixture(t, testImportConfig())
	f.noDuplicates(0)

	salesUpper := "SALES"
	dept, err := directory.NewDepartment(salesUpper)
	require.NoError(t, err)
	pos, err := directory.NewPosition("Manager", 5)
	require.NoError(t, err)

	deptRepo := new(MockDepartmentRepository)
	deptRepo.On("FindAll", mock.Anything).Return([]*directory.Department{dept}, nil)
	posRepo := new(MockPositionRepository)
	posRepo.On("FindAll", mock.Anything).Return([]*directory.Position{pos}, nil)
	areaRepo := new(MockAreaRepository)
	areaRepo.On("FindAll", mock.Anything).Return([]*directory.Area{}, nil)

	svc := NewImportService(f.employeeRepo, deptRepo, posRepo, areaRepo, testImportConfig(), zap.NewNop())

	src := importCSV("E-1,田中,太郎,,,sales,Manager,正社員,2020-04-01,x@example.com,,,")
	summary, err := svc.RunImport(context.Background(), strings.NewReader(src))

	require.NoError(t, err)
	assert.Equal(t, 1, summary.ErrorCount)
	require.NotEmpty(t, summary.Rejections)
	assert.Equal(t, csvio.ErrCodeReferenceNotFound, summary.Rejections[0].Code)
}

func TestRunImport_EmploymentTypeAcceptsLabelAndCode(t *testing.T) {
	f := newImportFixture(t, testImportConfig())
	f.noDuplicates(0)

	src := importCSV(
		"E-1,田中,太郎,,,営業部,部長,パートタイム,2020-04-01,a@example.com,,,",
		"E-2,田中,次郎,,,営業部,部長,contract,2020-04-01,b@example.com,,,",
		"E-3,田中,三郎,,,営業部,部長,Regular,2020-04-01,c@example.com,,,",
	)
	summary, err := f.service.RunImport(context.Background(), strings.NewReader(src))

	require.NoError(t, err)
	assert.Equal(t, 2, summary.SuccessCount)
	assert.Equal(t, 1, summary.ErrorCount, "capitalized code is not silently defaulted")
	assert.Equal(t, directory.EmploymentPartTime, f.created[0].EmploymentType)
	assert.Equal(t, directory.EmploymentContract, f.created[1].EmploymentType)
}

func TestRunImport_DuplicateDetectionOrder(t *testing.T) {
	t.Run("store email beats everything", func(t *testing.T) {
		f := newImportFixture(t, testImportConfig())
		f.employeeRepo.On("MaxGeneratedSeq", mock.Anything).Return(int64(0), nil)
		f.employeeRepo.On("ExistsByEmail", mock.Anything, "taken@example.com").Return(true, nil)
		f.employeeRepo.On("ExistsByEmployeeNumber", mock.Anything, mock.Anything).Return(true, nil)

		src := importCSV(validRow("E-1", "taken@example.com"))
		summary, err := f.service.RunImport(context.Background(), strings.NewReader(src))

		require.NoError(t, err)
		require.Len(t, summary.Rejections, 1, "first match wins, single reason")
		assert.Equal(t, csvio.ErrCodeDuplicateInDB, summary.Rejections[0].Code)
		assert.Equal(t, ColEmail, summary.Rejections[0].Column)
	})

	t.Run("batch email duplicate", func(t *testing.T) {
		f := newImportFixture(t, testImportConfig())
		f.noDuplicates(0)

		src := importCSV(
			validRow("E-1", "same@example.com"),
			validRow("E-2", "same@example.com"),
		)
		summary, err := f.service.RunImport(context.Background(), strings.NewReader(src))

		require.NoError(t, err)
		assert.Equal(t, 1, summary.SuccessCount)
		require.Len(t, summary.Rejections, 1)
		assert.Equal(t, csvio.ErrCodeDuplicateInFile, summary.Rejections[0].Code)
		assert.Equal(t, ColEmail, summary.Rejections[0].Column)
	})

	t.Run("batch employee number duplicate", func(t *testing.T) {
		f := newImportFixture(t, testImportConfig())
		f.noDuplicates(0)

		src := importCSV(
			validRow("E-1", "a@example.com"),
			validRow("E-1", "b@example.com"),
		)
		summary, err := f.service.RunImport(context.Background(), strings.NewReader(src))

		require.NoError(t, err)
		assert.Equal(t, 1, summary.SuccessCount)
		require.Len(t, summary.Rejections, 1)
		assert.Equal(t, csvio.ErrCodeDuplicateInFile, summary.Rejections[0].Code)
		assert.Equal(t, ColEmployeeNumber, summary.Rejections[0].Column)
	})
}

func TestRunImport_GeneratesSequentialNumbers(t *testing.T) {
	f := newImportFixture(t, testImportConfig())
	f.noDuplicates(41)

	src := importCSV(
		validRow("", "a@example.com"),
		validRow("", "b@example.com"),
		validRow("EMP0044", "c@example.com"),
		validRow("", "d@example.com"),
	)
	summary, err := f.service.RunImport(context.Background(), strings.NewReader(src))

	require.NoError(t, err)
	assert.Equal(t, 4, summary.SuccessCount)
	require.Len(t, f.created, 4)
	assert.Equal(t, "EMP0042", f.created[0].EmployeeNumber)
	assert.Equal(t, "EMP0043", f.created[1].EmployeeNumber)
	assert.Equal(t, "EMP0044", f.created[2].EmployeeNumber)
	assert.Equal(t, "EMP0045", f.created[3].EmployeeNumber, "skips the number taken in this batch")
}

func TestRunImport_PreviewIsBounded(t *testing.T) {
	cfg := testImportConfig()
	cfg.PreviewLimit = 2
	f := newImportFixture(t, cfg)
	f.noDuplicates(0)

	src := importCSV(
		validRow("E-1", "a@example.com"),
		validRow("E-2", "b@example.com"),
		validRow("E-3", "c@example.com"),
	)
	summary, err := f.service.RunImport(context.Background(), strings.NewReader(src))

	require.NoError(t, err)
	assert.Equal(t, 3, summary.SuccessCount)
	assert.Len(t, summary.Preview, 2)
}

func TestRunImport_FileLevelFailures(t *testing.T) {
	f := newImportFixture(t, testImportConfig())

	t.Run("empty file", func(t *testing.T) {
		_, err := f.service.RunImport(context.Background(), strings.NewReader(""))
		assert.ErrorIs(t, err, csvio.ErrEmptyFile)
		assert.True(t, IsFileError(err))
	})

	t.Run("header only", func(t *testing.T) {
		_, err := f.service.RunImport(context.Background(), strings.NewReader(strings.Join(Columns(), ",")+"\n"))
		assert.ErrorIs(t, err, csvio.ErrEmptyFile)
	})

	t.Run("missing required headers", func(t *testing.T) {
		_, err := f.service.RunImport(context.Background(), strings.NewReader("姓,名\n田中,太郎\n"))
		var headerErr *csvio.HeaderError
		require.ErrorAs(t, err, &headerErr)
		assert.Contains(t, headerErr.Missing, ColEmail)
		assert.True(t, IsFileError(err))
	})

	t.Run("unterminated quote aborts the whole file", func(t *testing.T) {
		src := importCSV(validRow("E-1", "a@example.com")) + "\"broken\n"
		_, err := f.service.RunImport(context.Background(), strings.NewReader(src))
		assert.ErrorIs(t, err, csvio.ErrMalformedCSV)
		assert.True(t, IsFileError(err))
	})

	t.Run("row limit", func(t *testing.T) {
		cfg := testImportConfig()
		cfg.MaxRows = 1
		small := newImportFixture(t, cfg)
		src := importCSV(
			validRow("E-1", "a@example.com"),
			validRow("E-2", "b@example.com"),
		)
		_, err := small.service.RunImport(context.Background(), strings.NewReader(src))
		require.Error(t, err)
		assert.True(t, IsFileError(err))
	})
}

func TestRunImport_StorageFailureMidRun(t *testing.T) {
	cfg := testImportConfig()
	sales, err := directory.NewDepartment("営業部")
	require.NoError(t, err)
	manager, err := directory.NewPosition("部長", 10)
	require.NoError(t, err)

	deptRepo := new(MockDepartmentRepository)
	deptRepo.On("FindAll", mock.Anything).Return([]*directory.Department{sales}, nil)
	posRepo := new(MockPositionRepository)
	posRepo.On("FindAll", mock.Anything).Return([]*directory.Position{manager}, nil)
	areaRepo := new(MockAreaRepository)
	areaRepo.On("FindAll", mock.Anything).Return([]*directory.Area{}, nil)

	employeeRepo := new(MockEmployeeRepository)
	employeeRepo.On("MaxGeneratedSeq", mock.Anything).Return(int64(0), nil)
	employeeRepo.On("ExistsByEmail", mock.Anything, mock.Anything).Return(false, nil)
	employeeRepo.On("ExistsByEmployeeNumber", mock.Anything, mock.Anything).Return(false, nil)
	employeeRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	employeeRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection reset")).Once()

	svc := NewImportService(employeeRepo, deptRepo, posRepo, areaRepo, cfg, zap.NewNop())

	src := importCSV(
		validRow("E-1", "a@example.com"),
		validRow("E-2", "b@example.com"),
		validRow("E-3", "c@example.com"),
	)
	summary, err := svc.RunImport(context.Background(), strings.NewReader(src))

	require.NoError(t, err, "committed rows stay committed, run still reports")
	assert.Equal(t, 3, summary.TotalRows)
	assert.Equal(t, 1, summary.SuccessCount)
	assert.Equal(t, 2, summary.ErrorCount)
	for _, r := range summary.Rejections {
		assert.Equal(t, csvio.ErrCodeStorage, r.Code)
	}
	employeeRepo.AssertNumberOfCalls(t, "Create", 2)
}

func TestRunImport_RejectionsAreBounded(t *testing.T) {
	cfg := testImportConfig()
	cfg.MaxErrors = 2
	f := newImportFixture(t, cfg)
	f.noDuplicates(0)

	src := importCSV(
		"E-1,,太郎,,,営業部,部長,正社員,2020-04-01,a@example.com,,,",
		"E-2,,太郎,,,営業部,部長,正社員,2020-04-01,b@example.com,,,",
		"E-3,,太郎,,,営業部,部長,正社員,2020-04-01,c@example.com,,,",
	)
	summary, err := f.service.RunImport(context.Background(), strings.NewReader(src))

	require.NoError(t, err)
	assert.Equal(t, 3, summary.ErrorCount)
	assert.Len(t, summary.Rejections, 2)
	assert.Equal(t, 3, summary.TotalErrors)
	assert.True(t, summary.IsTruncated)
}
