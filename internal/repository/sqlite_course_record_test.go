package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/pathway/internal/domain"
	"github.com/alexanderramin/pathway/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseRecordRepo_InsertAndList(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteCourseRecordRepo(database)
	ctx := context.Background()

	records := []domain.CourseRecord{
		testutil.NewTestRecord("S2", 202310, "CS110"),
		testutil.NewTestRecord("S1", 202320, "MATH201", testutil.WithGrade("A"), testutil.WithPassedCredits(6)),
		testutil.NewTestRecord("S1", 202310, "MATH101", testutil.WithLevel(domain.LevelSophomore)),
		testutil.NewTestRecord("S3", 202310, "ACC101", testutil.WithMajor("ACC"), testutil.WithCollege("CBA")),
	}
	n, err := repo.InsertBatch(ctx, records)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	all, err := repo.List(ctx, RecordFilter{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "S1", all[0].StudentID)
	assert.Equal(t, "MATH201", all[0].CourseID, "insertion order within a student")
	assert.Equal(t, "A", all[0].Grade)
	assert.Equal(t, 6.0, all[0].PassedCredits)
	assert.Equal(t, domain.LevelSophomore, all[1].StudentLevel)
	assert.Equal(t, records[1], all[0])

	acc, err := repo.List(ctx, RecordFilter{Major: "ACC"})
	require.NoError(t, err)
	require.Len(t, acc, 1)
	assert.Equal(t, "CBA", acc[0].College)

	one, err := repo.List(ctx, RecordFilter{Major: "CS", StudentID: "S2"})
	require.NoError(t, err)
	require.Len(t, one, 1)

	students, err := repo.CountStudents(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, students)
}

func TestCourseRecordRepo_MajorFilterKeepsFullHistory(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteCourseRecordRepo(database)
	ctx := context.Background()

	_, err := repo.InsertBatch(ctx, []domain.CourseRecord{
		testutil.NewTestRecord("S9", 202310, "IEM101", testutil.WithMajor("ACC")),
		testutil.NewTestRecord("S9", 202320, "IEM105", testutil.WithMajor("IEM")),
		testutil.NewTestRecord("S4", 202310, "ACC101", testutil.WithMajor("ACC")),
	})
	require.NoError(t, err)

	iem, err := repo.List(ctx, RecordFilter{Major: "IEM"})
	require.NoError(t, err)
	require.Len(t, iem, 2, "rows under the previous major are kept")
	assert.Equal(t, "IEM101", iem[0].CourseID)
	assert.Equal(t, "IEM105", iem[1].CourseID)
}

func TestCourseRecordRepo_DeleteAll(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteCourseRecordRepo(database)
	ctx := context.Background()

	_, err := repo.InsertBatch(ctx, []domain.CourseRecord{testutil.NewTestRecord("S1", 1, "A")})
	require.NoError(t, err)
	require.NoError(t, repo.DeleteAll(ctx))

	all, err := repo.List(ctx, RecordFilter{})
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCourseRecordRepo_InsertRejectsInvalidLevel(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteCourseRecordRepo(database)

	bad := testutil.NewTestRecord("S1", 1, "A", testutil.WithLevel(domain.StudentLevel(9)))
	n, err := repo.InsertBatch(context.Background(), []domain.CourseRecord{testutil.NewTestRecord("S1", 1, "B"), bad})
	require.Error(t, err)
	assert.Equal(t, 1, n)
}
