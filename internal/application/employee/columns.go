package employee

// CSV column headers shared by import, export and the template download.
// The header row is identical across all three so an exported file can be
// edited and re-imported as is.
const (
	ColEmployeeNumber = "社員ID"
	ColLastName       = "姓"
	ColFirstName      = "名"
	ColLastNameKana   = "姓（カナ）"
	ColFirstNameKana  = "名（カナ）"
	ColDepartment     = "部署"
	ColPosition       = "役職"
	ColEmploymentType = "雇用形態"
	ColHireDate       = "入社日"
	ColEmail          = "メールアドレス"
	ColPhone          = "電話番号"
	ColBirthDate      = "生年月日"
	ColAddress        = "住所"
)

// Columns returns the full column layout in file order
func Columns() []string {
	return []string{
		ColEmployeeNumber,
		ColLastName,
		ColFirstName,
		ColLastNameKana,
		ColFirstNameKana,
		ColDepartment,
		ColPosition,
		ColEmploymentType,
		ColHireDate,
		ColEmail,
		ColPhone,
		ColBirthDate,
		ColAddress,
	}
}

// RequiredColumns returns the headers that must be present in an import file.
// The employee number column may be omitted entirely; numbers are generated
// for rows without one.
func RequiredColumns() []string {
	return []string{
		ColLastName,
		ColFirstName,
		ColDepartment,
		ColPosition,
		ColEmploymentType,
		ColHireDate,
		ColEmail,
	}
}

// DateLayout is the only accepted date format in CSV files
const DateLayout = "2006-01-02"
