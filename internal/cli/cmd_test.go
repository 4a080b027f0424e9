package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/pathway/internal/catalog"
	"github.com/alexanderramin/pathway/internal/cli/formatter"
	"github.com/alexanderramin/pathway/internal/engine"
	"github.com/alexanderramin/pathway/internal/repository"
	"github.com/alexanderramin/pathway/internal/service"
	"github.com/alexanderramin/pathway/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	formatter.SetColor(false)
	t.Cleanup(func() { formatter.SetColor(true) })

	db := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(db)
	records := repository.NewSQLiteCourseRecordRepo(db)
	majors := catalog.NewSet(testutil.NewTestMajor(t, testutil.IEMConfig))

	return &App{
		Import: service.NewImportService(records, uow),
		Runs: service.NewRunService(records, majors, service.RunSettings{
			Options: engine.DefaultOptions(),
			Workers: 2,
		}, uow),
		Query:  service.NewQueryService(repository.NewSQLiteBatchRunRepo(db), repository.NewSQLiteBatchResultRepo(db)),
		Majors: majors,
	}
}

const recordsJSON = `[
	{"student_id": "S1", "semester": 202310, "course_id": "MATH100", "major": "IEM", "passed_credits": 6},
	{"student_id": "S1", "semester": 202310, "course_id": "ENGL101", "major": "IEM", "passed_credits": 6},
	{"student_id": "S1", "semester": 202320, "course_id": "IEM105", "major": "IEM", "passed_credits": 9},
	{"student_id": "S2", "semester": 202310, "course_id": "ACC101", "major": "ACC"},
	{"student_id": "S3", "semester": "spring", "course_id": "ACC101", "major": "ACC"}
]`

func writeRecords(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "records.json")
	require.NoError(t, os.WriteFile(path, []byte(recordsJSON), 0o644))
	return path
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestImportCmd(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "import", writeRecords(t))
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 4 of 5 records for 2 students")
	assert.Contains(t, out, "1 problems in excluded records")
	assert.Contains(t, out, "semester")
}

func TestImportCmd_MissingFile(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "import", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestRunThenQuery(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "import", writeRecords(t))
	require.NoError(t, err)

	out, err := executeCmd(t, app, "run", "--show", "requirements,progress,eligible,skips")
	require.NoError(t, err)
	assert.Contains(t, out, "1 processed, 1 skipped of 2 students")
	assert.Contains(t, out, "IEM REQUIREMENTS")
	assert.Contains(t, out, "ELIGIBLE COURSES BY AREA")
	assert.Contains(t, out, "SKIPPED STUDENTS")
	assert.Contains(t, out, "UNKNOWN_MAJOR")

	out, err = executeCmd(t, app, "eligible", "S1")
	require.NoError(t, err)
	assert.Contains(t, out, "IEM399  ◆ bundle")
	assert.NotContains(t, out, "MATH094")

	out, err = executeCmd(t, app, "recommend", "S1", "--variant", "final")
	require.NoError(t, err)
	assert.Contains(t, out, "BY FINAL SCORE")
	assert.NotContains(t, out, "BY COURSE SCORE")

	out, err = executeCmd(t, app, "runs")
	require.NoError(t, err)
	assert.Contains(t, out, "PROCESSED")
}

func TestRunCmd_UnknownSection(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "run", "--show", "everything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown section")
}

func TestRunCmd_NoRecords(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "run")
	require.ErrorIs(t, err, service.ErrNoStudents)
}

func TestEligibleCmd_RunSelection(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "eligible", "S1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no runs yet")

	_, err = executeCmd(t, app, "import", writeRecords(t))
	require.NoError(t, err)
	_, err = executeCmd(t, app, "run")
	require.NoError(t, err)

	run, err := resolveRun(t.Context(), app, "")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "eligible", "S1", "--run", run.ID[:6])
	require.NoError(t, err)
	assert.Contains(t, out, "IEM101")

	_, err = executeCmd(t, app, "eligible", "S1", "-r", "zzzz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run not found")
}

func TestRecommendCmd_BadVariant(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "recommend", "S1", "--variant", "best")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown variant")
}

func TestRunsCmd_Empty(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "runs")
	require.NoError(t, err)
	assert.Contains(t, out, "No runs found.")
}

func TestMajorsCmd(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "majors")
	require.NoError(t, err)
	assert.Contains(t, out, "IEM")
	assert.Contains(t, out, "TOP N")

	out, err = executeCmd(t, app, "majors", "show", "iem")
	require.NoError(t, err)
	assert.Contains(t, out, "IEM REQUIREMENTS")
	assert.Contains(t, out, "IEM101 + IEM102 → IEM399")

	_, err = executeCmd(t, app, "majors", "show", "XYZ")
	require.ErrorIs(t, err, catalog.ErrUnknownMajor)
}

func TestParseVariant(t *testing.T) {
	v, err := parseVariant("Course")
	require.NoError(t, err)
	assert.Equal(t, "course_score", string(v))

	v, err = parseVariant("final_score")
	require.NoError(t, err)
	assert.Equal(t, "final_score", string(v))

	v, err = parseVariant("")
	require.NoError(t, err)
	assert.Empty(t, v)
}
