package repository

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-tracker/internal/model"
	pkgerrors "task-tracker/pkg/errors"
)

// ── Fakes ──

type fakeRow struct {
	table string
	id    int64
	value string
	scope any
}

// fakeChecker answers uniqueness queries from an in-memory row set.
type fakeChecker struct {
	rows  []fakeRow
	err   error
	calls int
}

func (f *fakeChecker) Exists(_ context.Context, q UniqueQuery) (bool, error) {
	f.calls++
	if f.err != nil {
		return false, f.err
	}
	for _, r := range f.rows {
		if r.table != q.Table || strings.TrimSpace(r.value) != strings.TrimSpace(q.Value) {
			continue
		}
		if q.Scope != nil && r.scope != q.Scope.Value {
			continue
		}
		if q.ExcludeID > 0 && r.id == q.ExcludeID {
			continue
		}
		return true, nil
	}
	return false, nil
}

func fakeEmployees(existing ...int64) (employeeLookup, *[][]int64) {
	var calls [][]int64
	lookup := func(_ context.Context, ids []int64) ([]int64, error) {
		calls = append(calls, append([]int64(nil), ids...))
		var found []int64
		for _, id := range ids {
			for _, e := range existing {
				if id == e {
					found = append(found, id)
				}
			}
		}
		return found, nil
	}
	return lookup, &calls
}

func departmentPipeline(c UniquenessChecker) *writePipeline[model.Department] {
	return &writePipeline[model.Department]{kind: &departmentKind, unique: c}
}

func validProject() *model.Project {
	return &model.Project{Name: "Apollo", Description: "Moon", Status: "Active"}
}

func validTask(ids ...int64) *model.ProjectTask {
	return &model.ProjectTask{
		ProjectID:           1,
		Name:                "Design",
		Description:         "Draw it",
		Status:              "Open",
		AssignedEmployeeIDs: ids,
	}
}

// ── Normalizer ──

func TestNormalize(t *testing.T) {
	s := "  Engineering \t"
	assert.Equal(t, "Engineering", Normalize(&s))
	assert.Equal(t, "", Normalize(nil))

	blank := "   "
	assert.Equal(t, "", Normalize(&blank))
}

func TestPrepare_StoresTrimmedValues(t *testing.T) {
	p := &writePipeline[model.Project]{kind: &projectKind, unique: &fakeChecker{}}
	project := &model.Project{Name: "  Apollo ", Description: "\tMoon landing ", Status: " Active"}

	require.NoError(t, p.prepare(context.Background(), project, 0))
	assert.Equal(t, "Apollo", project.Name)
	assert.Equal(t, "Moon landing", project.Description)
	assert.Equal(t, "Active", project.Status)
}

// ── Validator ──

func TestPrepare_CollectsEveryViolation(t *testing.T) {
	checker := &fakeChecker{}
	p := &writePipeline[model.Project]{kind: &projectKind, unique: checker}
	project := &model.Project{Name: "   ", Description: strings.Repeat("d", 201), Status: ""}

	err := p.prepare(context.Background(), project, 0)

	var verr *pkgerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{
		"Project name must be between 1 and 100 characters.",
		"Project description must be between 1 and 200 characters.",
		"Project status must be between 1 and 50 characters.",
	}, verr.Messages())
	assert.Equal(t, "name", verr.Violations[0].Field)
	assert.Zero(t, checker.calls, "uniqueness must not be checked for invalid input")
}

func TestPrepare_TextLengthCountsCharacters(t *testing.T) {
	p := departmentPipeline(&fakeChecker{})

	require.NoError(t, p.prepare(context.Background(), &model.Department{Name: strings.Repeat("é", 100)}, 0))

	err := p.prepare(context.Background(), &model.Department{Name: strings.Repeat("é", 101)}, 0)
	assert.ErrorIs(t, err, pkgerrors.ErrValidation)
}

func TestPrepare_TaskMessagesUseTaskLabel(t *testing.T) {
	lookup, _ := fakeEmployees()
	p := &writePipeline[model.ProjectTask]{kind: newProjectTaskKind(lookup), unique: &fakeChecker{}}
	task := validTask()
	task.Name = ""
	task.ProjectID = 0

	err := p.prepare(context.Background(), task, 0)

	var verr *pkgerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ElementsMatch(t, []string{
		"Task name must be between 1 and 100 characters.",
		"Project ID must be greater than 0.",
	}, verr.Messages())
}

func TestPrepare_ParentIDMustBePositive(t *testing.T) {
	p := &writePipeline[model.Role]{kind: &roleKind, unique: &fakeChecker{}}

	err := p.prepare(context.Background(), &model.Role{Name: "Lead", DepartmentID: 0}, 0)

	var verr *pkgerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"Department ID must be greater than 0."}, verr.Messages())
}

func TestPrepare_SalaryBounds(t *testing.T) {
	cases := []struct {
		salary string
		ok     bool
	}{
		{"0.99", false},
		{"1", true},
		{"1.00", true},
		{"50000", true},
		{"99999999.99", true},
		{"100000000.00", false},
		{"-5", false},
	}
	p := &writePipeline[model.Employee]{kind: &employeeKind, unique: &fakeChecker{}}

	for _, tc := range cases {
		t.Run(tc.salary, func(t *testing.T) {
			emp := &model.Employee{
				Name:         "Ada",
				Salary:       decimal.RequireFromString(tc.salary),
				DepartmentID: 1,
				RoleID:       1,
			}
			err := p.prepare(context.Background(), emp, 0)
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			var verr *pkgerrors.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, []string{"Salary must be between 1 and 99999999.99."}, verr.Messages())
		})
	}
}

// ── Uniqueness ──

func TestPrepare_DepartmentNameConflictIgnoresWhitespace(t *testing.T) {
	checker := &fakeChecker{rows: []fakeRow{{table: "departments", id: 1, value: "Engineering"}}}

	err := departmentPipeline(checker).prepare(context.Background(), &model.Department{Name: " Engineering "}, 0)

	var cerr *pkgerrors.ConflictError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "Department name [Engineering] already exists.", cerr.Error())
}

func TestPrepare_NameComparisonIsCaseSensitive(t *testing.T) {
	checker := &fakeChecker{rows: []fakeRow{{table: "departments", id: 1, value: "Engineering"}}}

	err := departmentPipeline(checker).prepare(context.Background(), &model.Department{Name: "engineering"}, 0)
	assert.NoError(t, err)
}

func TestPrepare_RoleNameScopedToDepartment(t *testing.T) {
	checker := &fakeChecker{rows: []fakeRow{
		{table: "roles", id: 1, value: "Lead", scope: int64(1)},
		{table: "roles", id: 2, value: "Lead", scope: int64(2)},
	}}
	p := &writePipeline[model.Role]{kind: &roleKind, unique: checker}

	err := p.prepare(context.Background(), &model.Role{Name: "Lead", DepartmentID: 2}, 0)
	var cerr *pkgerrors.ConflictError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "Role name [Lead] already exists in this department.", cerr.Error())

	assert.NoError(t, p.prepare(context.Background(), &model.Role{Name: "Lead", DepartmentID: 3}, 0))
}

func TestPrepare_UpdateExcludesSelf(t *testing.T) {
	checker := &fakeChecker{rows: []fakeRow{
		{table: "departments", id: 1, value: "Engineering"},
		{table: "departments", id: 2, value: "Sales"},
	}}
	p := departmentPipeline(checker)

	assert.NoError(t, p.prepare(context.Background(), &model.Department{ID: 1, Name: "Engineering"}, 1))
	assert.ErrorIs(t, p.prepare(context.Background(), &model.Department{ID: 2, Name: "Engineering "}, 2), pkgerrors.ErrConflict)
}

func TestPrepare_CheckerFailureIsStoreError(t *testing.T) {
	checker := &fakeChecker{err: errors.New("connection refused")}

	err := departmentPipeline(checker).prepare(context.Background(), &model.Department{Name: "Ops"}, 0)

	assert.ErrorIs(t, err, pkgerrors.ErrStore)
	assert.NotErrorIs(t, err, pkgerrors.ErrConflict)
}

// ── Assigned employees ──

func TestPrepare_TaskRejectsUnknownEmployees(t *testing.T) {
	lookup, calls := fakeEmployees(1, 2)
	p := &writePipeline[model.ProjectTask]{kind: newProjectTaskKind(lookup), unique: &fakeChecker{}}

	err := p.prepare(context.Background(), validTask(1, 999), 0)

	var rerr *pkgerrors.InvalidReferenceError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, []int64{999}, rerr.IDs)
	assert.Equal(t, "Invalid employee IDs: 999", rerr.Error())
	assert.Len(t, *calls, 1, "existence must be checked in one lookup")
}

func TestPrepare_TaskReportsAllMissingIDsOnce(t *testing.T) {
	lookup, calls := fakeEmployees(1)
	p := &writePipeline[model.ProjectTask]{kind: newProjectTaskKind(lookup), unique: &fakeChecker{}}

	err := p.prepare(context.Background(), validTask(1000, 1, 999, 1000), 0)

	var rerr *pkgerrors.InvalidReferenceError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, []int64{1000, 999}, rerr.IDs)
	assert.Equal(t, [][]int64{{1000, 1, 999}}, *calls)
}

func TestPrepare_TaskNormalizesAssignedSet(t *testing.T) {
	lookup, _ := fakeEmployees(1, 2, 3)
	p := &writePipeline[model.ProjectTask]{kind: newProjectTaskKind(lookup), unique: &fakeChecker{}}
	task := validTask(3, 1, 3)

	require.NoError(t, p.prepare(context.Background(), task, 0))
	assert.Equal(t, model.EmployeeIDs{1, 3}, task.AssignedEmployeeIDs)
}

func TestPrepare_TaskWithoutAssigneesSkipsLookup(t *testing.T) {
	lookup, calls := fakeEmployees()
	p := &writePipeline[model.ProjectTask]{kind: newProjectTaskKind(lookup), unique: &fakeChecker{}}

	require.NoError(t, p.prepare(context.Background(), validTask(), 0))
	assert.Empty(t, *calls)
}

func TestFilterByAssignee(t *testing.T) {
	tasks := []model.ProjectTask{
		{ID: 1, Name: "Zeta", AssignedEmployeeIDs: model.EmployeeIDs{1, 2}},
		{ID: 2, Name: "Alpha", AssignedEmployeeIDs: model.EmployeeIDs{2, 3}},
		{ID: 3, Name: "Beta", AssignedEmployeeIDs: model.EmployeeIDs{4}},
		{ID: 4, Name: "Gamma"},
	}

	got := filterByAssignee(tasks, 2)

	require.Len(t, got, 2)
	assert.Equal(t, "Alpha", got[0].Name)
	assert.Equal(t, "Zeta", got[1].Name)

	assert.Empty(t, filterByAssignee(tasks, 99))
	assert.NotNil(t, filterByAssignee(nil, 1))
}

func TestFieldTitle(t *testing.T) {
	assert.Equal(t, "Department ID", fieldTitle("department_id"))
	assert.Equal(t, "Name", fieldTitle("name"))
}
