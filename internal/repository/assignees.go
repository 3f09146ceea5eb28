package repository

import (
	"context"
	"sort"

	"task-tracker/internal/model"
	pkgerrors "task-tracker/pkg/errors"
)

// employeeLookup resolves which of ids exist, in one round trip.
type employeeLookup func(ctx context.Context, ids []int64) ([]int64, error)

// validateExisting checks every assigned id against the employee store and
// reports all missing ids together, in the order they were given.
func validateExisting(ctx context.Context, ids model.EmployeeIDs, lookup employeeLookup) error {
	wanted := ids.Distinct()
	if len(wanted) == 0 {
		return nil
	}

	found, err := lookup(ctx, wanted)
	if err != nil {
		return pkgerrors.Store("lookup employees", err)
	}
	existing := make(map[int64]struct{}, len(found))
	for _, id := range found {
		existing[id] = struct{}{}
	}

	var missing []int64
	for _, id := range wanted {
		if _, ok := existing[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return &pkgerrors.InvalidReferenceError{
			Entity: "employee",
			Field:  "assigned_employee_ids",
			IDs:    missing,
		}
	}
	return nil
}

// filterByAssignee keeps the tasks whose assigned set contains employeeID,
// sorted by name.
func filterByAssignee(tasks []model.ProjectTask, employeeID int64) []model.ProjectTask {
	out := make([]model.ProjectTask, 0)
	for _, t := range tasks {
		if t.AssignedEmployeeIDs.Contains(employeeID) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
