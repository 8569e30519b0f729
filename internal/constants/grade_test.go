package constants_test

import (
	"testing"

	"github.com/aikidobw/seminar-api/internal/constants"
	"github.com/stretchr/testify/assert"
)

func TestGrade_IsKyu(t *testing.T) {
	assert.True(t, constants.GradeSixthKyu.IsKyu())
	assert.True(t, constants.GradeFirstKyu.IsKyu())
	assert.False(t, constants.GradeFirstDan.IsKyu())
	assert.False(t, constants.GradeSeventhDan.IsKyu())
}

func TestGrade_Next(t *testing.T) {
	assert.Equal(t, constants.GradeFirstDan, constants.GradeFirstKyu.Next())
	assert.Equal(t, constants.GradeSeventhDan, constants.GradeSeventhDan.Next())
}

func TestGrade_Label(t *testing.T) {
	assert.Equal(t, "5th kyu", constants.GradeFifthKyu.Label())
	assert.Equal(t, "1st dan", constants.GradeFirstDan.Label())
	assert.Equal(t, "grade 99", constants.Grade(99).Label())
}

func TestCourseType_Parsing(t *testing.T) {
	courseType, ok := constants.ParseCourseType("sensei_emmerson")
	assert.True(t, ok)
	assert.Equal(t, constants.CourseTypeSenseiEmmerson, courseType)

	_, ok = constants.ParseCourseType("bogus")
	assert.False(t, ok)
}

func TestCourseType_PricesByDay(t *testing.T) {
	assert.True(t, constants.CourseTypeSenseiEmmerson.PricesByDay())
	assert.True(t, constants.CourseTypeHombuDojo.PricesByDay())
	assert.False(t, constants.CourseTypeExternalTeacher.PricesByDay())
	assert.False(t, constants.CourseTypeChildren.PricesByDay())
	assert.False(t, constants.CourseTypeFamilyReunion.PricesByDay())
}

func TestCourseType_AllowsDanPreparation(t *testing.T) {
	assert.True(t, constants.CourseTypeSenseiEmmerson.AllowsDanPreparation())
	assert.True(t, constants.CourseTypeDanBWTeacher.AllowsDanPreparation())
	assert.False(t, constants.CourseTypeChildren.AllowsDanPreparation())
	assert.False(t, constants.CourseTypeExternalTeacher.AllowsDanPreparation())
}

func TestFeeTypesForCategory(t *testing.T) {
	reunion := constants.FeeTypesForCategory(constants.FeeCategoryFamilyReunion)
	assert.Contains(t, reunion, constants.FeeTypeEntireCourseWithDanSeminar)
	assert.NotContains(t, reunion, constants.FeeTypeEntireCourseDanPreparation)

	regular := constants.FeeTypesForCategory(constants.FeeCategoryRegular)
	assert.Contains(t, regular, constants.FeeTypeEntireCourse)
	assert.NotContains(t, regular, constants.FeeTypeSingleDayWithDanSeminar)
}
