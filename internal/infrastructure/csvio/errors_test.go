package csvio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCollection(t *testing.T) {
	t.Run("collects up to the bound but counts everything", func(t *testing.T) {
		ec := NewErrorCollection(3)
		for i := 1; i <= 5; i++ {
			ec.Add(NewRequiredError(i, "メールアドレス"))
		}

		assert.Len(t, ec.Errors(), 3)
		assert.Equal(t, 5, ec.TotalCount())
		assert.True(t, ec.IsTruncated())
		assert.True(t, ec.HasErrors())
	})

	t.Run("empty collection has no errors", func(t *testing.T) {
		ec := NewErrorCollection(10)
		assert.False(t, ec.HasErrors())
		assert.False(t, ec.IsTruncated())
		assert.Equal(t, "no errors", ec.String())
	})

	t.Run("duplicate errors carry distinct codes for file and database", func(t *testing.T) {
		inFile := NewDuplicateError(2, "メールアドレス", "a@example.com", false)
		inDB := NewDuplicateError(3, "社員ID", "EMP0001", true)

		assert.Equal(t, ErrCodeDuplicateInFile, inFile.Code)
		assert.Equal(t, ErrCodeDuplicateInDB, inDB.Code)
	})

	t.Run("reference errors name the reference type", func(t *testing.T) {
		e := NewReferenceError(4, "部署", "架空部", "department")
		assert.Contains(t, e.Message, "department '架空部' not found")
		assert.Equal(t, ErrCodeReferenceNotFound, e.Code)
	})
}

func TestMergeRowErrors(t *testing.T) {
	t.Run("single problem stays as is", func(t *testing.T) {
		merged := MergeRowErrors([]RowError{NewRequiredError(2, "姓")})
		assert.Equal(t, ErrCodeRequiredField, merged.Code)
		assert.Equal(t, "姓", merged.Column)
		assert.Empty(t, merged.Details)
	})

	t.Run("first problem leads, the rest become details", func(t *testing.T) {
		merged := MergeRowErrors([]RowError{
			NewReferenceError(3, "部署", "架空部", "department"),
			NewFormatError(3, "入社日", "YYYY-MM-DD", "2020/04/01"),
			NewRequiredError(3, "姓"),
		})

		assert.Equal(t, 3, merged.Row)
		assert.Equal(t, "部署", merged.Column)
		assert.Equal(t, ErrCodeReferenceNotFound, merged.Code)
		assert.Equal(t, "架空部", merged.Value)
		assert.Equal(t, []string{
			"入社日: invalid format, expected YYYY-MM-DD",
			"姓: field '姓' is required",
		}, merged.Details)
	})
}

func TestRowErrorFormatting(t *testing.T) {
	withColumn := NewRowError(5, "入社日", ErrCodeInvalidFormat, "invalid format, expected YYYY-MM-DD")
	assert.Contains(t, withColumn.Error(), "row 5, column '入社日'")

	withoutColumn := RowError{Row: 7, Code: ErrCodeStorage, Message: "storage unavailable"}
	assert.Contains(t, withoutColumn.Error(), "row 7:")
}
