package service

import (
	"context"
	"sort"
	"strings"

	"task-tracker/internal/model"
	"task-tracker/internal/repository"
	pkgerrors "task-tracker/pkg/errors"
)

// ── Mock DepartmentRepository ──

type mockDeptRepo struct {
	depts  map[int64]*model.Department
	nextID int64
	err    error // returned by every write when set
}

func newMockDeptRepo() *mockDeptRepo {
	return &mockDeptRepo{
		depts:  map[int64]*model.Department{1: {ID: 1, Name: "Engineering"}},
		nextID: 2,
	}
}

func (m *mockDeptRepo) Create(_ context.Context, d *model.Department) error {
	if m.err != nil {
		return m.err
	}
	d.ID = m.nextID
	m.nextID++
	cp := *d
	m.depts[d.ID] = &cp
	return nil
}

func (m *mockDeptRepo) Update(_ context.Context, d *model.Department) error {
	if m.err != nil {
		return m.err
	}
	cp := *d
	m.depts[d.ID] = &cp
	return nil
}

func (m *mockDeptRepo) Delete(_ context.Context, id int64) error {
	if m.err != nil {
		return m.err
	}
	delete(m.depts, id)
	return nil
}

func (m *mockDeptRepo) GetByID(_ context.Context, id int64) (*model.Department, error) {
	if id < 1 {
		return nil, pkgerrors.NewIDRangeError("Department", id)
	}
	if d, ok := m.depts[id]; ok {
		cp := *d
		return &cp, nil
	}
	return nil, &pkgerrors.NotFoundError{Entity: "Department", ID: id}
}

func (m *mockDeptRepo) List(_ context.Context) ([]model.Department, error) {
	var result []model.Department
	for _, d := range m.depts {
		result = append(result, *d)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockDeptRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := m.depts[id]
	return ok, nil
}

func (m *mockDeptRepo) NameExists(_ context.Context, name string, excludeID int64) (bool, error) {
	for _, d := range m.depts {
		if d.ID != excludeID && strings.TrimSpace(d.Name) == strings.TrimSpace(name) {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockDeptRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.depts)), nil
}

// ── Mock RoleRepository ──

type mockRoleRepo struct {
	roles  map[int64]*model.Role
	depts  *mockDeptRepo
	nextID int64
}

func newMockRoleRepo(depts *mockDeptRepo) *mockRoleRepo {
	return &mockRoleRepo{
		roles:  map[int64]*model.Role{1: {ID: 1, Name: "Lead", DepartmentID: 1}},
		depts:  depts,
		nextID: 2,
	}
}

// withDepartment mimics the repository's eager load.
func (m *mockRoleRepo) withDepartment(r model.Role) model.Role {
	if d, ok := m.depts.depts[r.DepartmentID]; ok {
		cp := *d
		r.Department = &cp
	}
	return r
}

func (m *mockRoleRepo) Create(_ context.Context, r *model.Role) error {
	if _, ok := m.depts.depts[r.DepartmentID]; !ok {
		return &pkgerrors.InvalidReferenceError{Entity: "department", Field: "department_id", IDs: []int64{r.DepartmentID}}
	}
	r.ID = m.nextID
	m.nextID++
	cp := *r
	m.roles[r.ID] = &cp
	return nil
}

func (m *mockRoleRepo) Update(_ context.Context, r *model.Role) error {
	cp := *r
	m.roles[r.ID] = &cp
	return nil
}

func (m *mockRoleRepo) Delete(_ context.Context, id int64) error {
	delete(m.roles, id)
	return nil
}

func (m *mockRoleRepo) GetByID(_ context.Context, id int64) (*model.Role, error) {
	if id < 1 {
		return nil, pkgerrors.NewIDRangeError("Role", id)
	}
	if r, ok := m.roles[id]; ok {
		out := m.withDepartment(*r)
		return &out, nil
	}
	return nil, &pkgerrors.NotFoundError{Entity: "Role", ID: id}
}

func (m *mockRoleRepo) List(ctx context.Context) ([]model.Role, error) {
	return m.ListByDepartment(ctx, 0)
}

func (m *mockRoleRepo) ListByDepartment(_ context.Context, departmentID int64) ([]model.Role, error) {
	var result []model.Role
	for _, r := range m.roles {
		if departmentID == 0 || r.DepartmentID == departmentID {
			result = append(result, m.withDepartment(*r))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockRoleRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := m.roles[id]
	return ok, nil
}

func (m *mockRoleRepo) NameExists(ctx context.Context, name string, excludeID int64) (bool, error) {
	return m.NameExistsInDepartment(ctx, name, 0, excludeID)
}

func (m *mockRoleRepo) NameExistsInDepartment(_ context.Context, name string, departmentID, excludeID int64) (bool, error) {
	for _, r := range m.roles {
		if r.ID != excludeID && (departmentID == 0 || r.DepartmentID == departmentID) && r.Name == strings.TrimSpace(name) {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockRoleRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.roles)), nil
}

// ── Mock EmployeeRepository ──

type mockEmployeeRepo struct {
	emps   map[int64]*model.Employee
	depts  *mockDeptRepo
	roles  *mockRoleRepo
	nextID int64
}

func newMockEmployeeRepo(depts *mockDeptRepo, roles *mockRoleRepo) *mockEmployeeRepo {
	return &mockEmployeeRepo{emps: map[int64]*model.Employee{}, depts: depts, roles: roles, nextID: 1}
}

func (m *mockEmployeeRepo) load(e model.Employee) model.Employee {
	if d, ok := m.depts.depts[e.DepartmentID]; ok {
		cp := *d
		e.Department = &cp
	}
	if r, ok := m.roles.roles[e.RoleID]; ok {
		cp := *r
		e.Role = &cp
	}
	return e
}

func (m *mockEmployeeRepo) Create(_ context.Context, e *model.Employee) error {
	e.ID = m.nextID
	m.nextID++
	cp := *e
	m.emps[e.ID] = &cp
	return nil
}

func (m *mockEmployeeRepo) Update(_ context.Context, e *model.Employee) error {
	cp := *e
	m.emps[e.ID] = &cp
	return nil
}

func (m *mockEmployeeRepo) Delete(_ context.Context, id int64) error {
	delete(m.emps, id)
	return nil
}

func (m *mockEmployeeRepo) GetByID(_ context.Context, id int64) (*model.Employee, error) {
	if id < 1 {
		return nil, pkgerrors.NewIDRangeError("Employee", id)
	}
	if e, ok := m.emps[id]; ok {
		out := m.load(*e)
		return &out, nil
	}
	return nil, &pkgerrors.NotFoundError{Entity: "Employee", ID: id}
}

func (m *mockEmployeeRepo) list(keep func(*model.Employee) bool) []model.Employee {
	var result []model.Employee
	for _, e := range m.emps {
		if keep(e) {
			result = append(result, m.load(*e))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

func (m *mockEmployeeRepo) List(_ context.Context) ([]model.Employee, error) {
	return m.list(func(*model.Employee) bool { return true }), nil
}

func (m *mockEmployeeRepo) ListByDepartment(_ context.Context, departmentID int64) ([]model.Employee, error) {
	return m.list(func(e *model.Employee) bool { return e.DepartmentID == departmentID }), nil
}

func (m *mockEmployeeRepo) ListByRole(_ context.Context, roleID int64) ([]model.Employee, error) {
	return m.list(func(e *model.Employee) bool { return e.RoleID == roleID }), nil
}

func (m *mockEmployeeRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := m.emps[id]
	return ok, nil
}

func (m *mockEmployeeRepo) ExistingIDs(_ context.Context, ids []int64) ([]int64, error) {
	var found []int64
	for _, id := range ids {
		if _, ok := m.emps[id]; ok {
			found = append(found, id)
		}
	}
	return found, nil
}

func (m *mockEmployeeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.emps)), nil
}

// ── Mock ProjectRepository ──

type mockProjectRepo struct {
	projects map[int64]*model.Project
	tasks    *mockTaskRepo
	nextID   int64
}

func newMockProjectRepo() *mockProjectRepo {
	return &mockProjectRepo{projects: map[int64]*model.Project{}, nextID: 1}
}

func (m *mockProjectRepo) load(p model.Project) model.Project {
	if m.tasks != nil {
		for _, t := range m.tasks.tasks {
			if t.ProjectID == p.ID {
				p.Tasks = append(p.Tasks, *t)
			}
		}
	}
	return p
}

func (m *mockProjectRepo) Create(_ context.Context, p *model.Project) error {
	for _, existing := range m.projects {
		if existing.Name == strings.TrimSpace(p.Name) {
			return &pkgerrors.ConflictError{Entity: "Project", Message: "Project name [" + existing.Name + "] already exists."}
		}
	}
	p.ID = m.nextID
	m.nextID++
	cp := *p
	m.projects[p.ID] = &cp
	return nil
}

func (m *mockProjectRepo) Update(_ context.Context, p *model.Project) error {
	cp := *p
	m.projects[p.ID] = &cp
	return nil
}

func (m *mockProjectRepo) Delete(_ context.Context, id int64) error {
	delete(m.projects, id)
	return nil
}

func (m *mockProjectRepo) GetByID(_ context.Context, id int64) (*model.Project, error) {
	if id < 1 {
		return nil, pkgerrors.NewIDRangeError("Project", id)
	}
	if p, ok := m.projects[id]; ok {
		out := m.load(*p)
		return &out, nil
	}
	return nil, &pkgerrors.NotFoundError{Entity: "Project", ID: id}
}

func (m *mockProjectRepo) List(ctx context.Context) ([]model.Project, error) {
	return m.ListByStatus(ctx, "")
}

func (m *mockProjectRepo) ListByStatus(_ context.Context, status string) ([]model.Project, error) {
	var result []model.Project
	for _, p := range m.projects {
		if status == "" || p.Status == strings.TrimSpace(status) {
			result = append(result, m.load(*p))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockProjectRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := m.projects[id]
	return ok, nil
}

func (m *mockProjectRepo) NameExists(_ context.Context, name string, excludeID int64) (bool, error) {
	for _, p := range m.projects {
		if p.ID != excludeID && p.Name == strings.TrimSpace(name) {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockProjectRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.projects)), nil
}

// ── Mock ProjectTaskRepository ──

type mockTaskRepo struct {
	tasks     map[int64]*model.ProjectTask
	projects  *mockProjectRepo
	employees *mockEmployeeRepo
	nextID    int64
	err       error
}

func newMockTaskRepo(projects *mockProjectRepo, employees *mockEmployeeRepo) *mockTaskRepo {
	m := &mockTaskRepo{tasks: map[int64]*model.ProjectTask{}, projects: projects, employees: employees, nextID: 1}
	projects.tasks = m
	return m
}

func (m *mockTaskRepo) load(t model.ProjectTask) model.ProjectTask {
	if p, ok := m.projects.projects[t.ProjectID]; ok {
		cp := *p
		t.Project = &cp
	}
	return t
}

// write keeps the assigned-id contract of the real repository.
func (m *mockTaskRepo) write(t *model.ProjectTask) error {
	if m.err != nil {
		return m.err
	}
	var missing []int64
	for _, id := range t.AssignedEmployeeIDs.Distinct() {
		if _, ok := m.employees.emps[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return &pkgerrors.InvalidReferenceError{Entity: "employee", Field: "assigned_employee_ids", IDs: missing}
	}
	t.AssignedEmployeeIDs = t.AssignedEmployeeIDs.Normalize()
	cp := *t
	m.tasks[t.ID] = &cp
	return nil
}

func (m *mockTaskRepo) Create(_ context.Context, t *model.ProjectTask) error {
	t.ID = m.nextID
	if err := m.write(t); err != nil {
		t.ID = 0
		return err
	}
	m.nextID++
	return nil
}

func (m *mockTaskRepo) Update(_ context.Context, t *model.ProjectTask) error {
	return m.write(t)
}

func (m *mockTaskRepo) Delete(_ context.Context, id int64) error {
	delete(m.tasks, id)
	return nil
}

func (m *mockTaskRepo) GetByID(_ context.Context, id int64) (*model.ProjectTask, error) {
	if id < 1 {
		return nil, pkgerrors.NewIDRangeError("ProjectTask", id)
	}
	if t, ok := m.tasks[id]; ok {
		out := m.load(*t)
		return &out, nil
	}
	return nil, &pkgerrors.NotFoundError{Entity: "ProjectTask", ID: id}
}

func (m *mockTaskRepo) list(keep func(*model.ProjectTask) bool) []model.ProjectTask {
	var result []model.ProjectTask
	for _, t := range m.tasks {
		if keep(t) {
			result = append(result, m.load(*t))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

func (m *mockTaskRepo) List(_ context.Context) ([]model.ProjectTask, error) {
	return m.list(func(*model.ProjectTask) bool { return true }), nil
}

func (m *mockTaskRepo) ListByProject(_ context.Context, projectID int64) ([]model.ProjectTask, error) {
	return m.list(func(t *model.ProjectTask) bool { return t.ProjectID == projectID }), nil
}

func (m *mockTaskRepo) ListByStatus(_ context.Context, status string) ([]model.ProjectTask, error) {
	return m.list(func(t *model.ProjectTask) bool { return t.Status == strings.TrimSpace(status) }), nil
}

func (m *mockTaskRepo) ListByEmployee(_ context.Context, employeeID int64) ([]model.ProjectTask, error) {
	return m.list(func(t *model.ProjectTask) bool { return t.AssignedEmployeeIDs.Contains(employeeID) }), nil
}

func (m *mockTaskRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := m.tasks[id]
	return ok, nil
}

func (m *mockTaskRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.tasks)), nil
}

// ── Aggregate ──

type mockRepos struct {
	depts     *mockDeptRepo
	roles     *mockRoleRepo
	employees *mockEmployeeRepo
	projects  *mockProjectRepo
	tasks     *mockTaskRepo
	repo      *repository.Repository
}

func newMockRepos() (*repository.Repository, *mockRepos) {
	m := &mockRepos{depts: newMockDeptRepo()}
	m.roles = newMockRoleRepo(m.depts)
	m.employees = newMockEmployeeRepo(m.depts, m.roles)
	m.projects = newMockProjectRepo()
	m.tasks = newMockTaskRepo(m.projects, m.employees)
	m.repo = &repository.Repository{
		Department:  m.depts,
		Role:        m.roles,
		Employee:    m.employees,
		Project:     m.projects,
		ProjectTask: m.tasks,
	}
	return m.repo, m
}
