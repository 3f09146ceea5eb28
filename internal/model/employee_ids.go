package model

import (
	"database/sql/driver"
	"encoding/xml"
	"slices"
	"strconv"
	"strings"
)

// ── Task ↔ Employee association blob ──

// EmployeeIDs the set of employee ids assigned to a task. It is persisted as a
// single tagged-list text value on the task row:
//
//	<Employees><Id>1</Id><Id>4</Id></Employees>
//
// An empty set is stored as NULL. Reads are lenient: NULL, blank and
// malformed blobs all decode to the empty set.
type EmployeeIDs []int64

type employeeIDList struct {
	XMLName xml.Name `xml:"Employees"`
	IDs     []string `xml:"Id"`
}

// EncodeEmployeeIDs returns the persisted form of ids, or nil for an empty set.
func EncodeEmployeeIDs(ids []int64) *string {
	set := EmployeeIDs(ids).Normalize()
	if len(set) == 0 {
		return nil
	}
	doc := employeeIDList{IDs: make([]string, len(set))}
	for i, id := range set {
		doc.IDs[i] = strconv.FormatInt(id, 10)
	}
	out, err := xml.Marshal(doc)
	if err != nil {
		// unreachable: the document only holds decimal strings
		return nil
	}
	blob := string(out)
	return &blob
}

// DecodeEmployeeIDs parses a persisted blob. It never fails; entries that are
// not integers are skipped.
func DecodeEmployeeIDs(blob *string) EmployeeIDs {
	if blob == nil || strings.TrimSpace(*blob) == "" {
		return EmployeeIDs{}
	}

	// Root element name is not enforced so any <X><Id>..</Id></X> list decodes.
	var doc struct {
		IDs []string `xml:"Id"`
	}
	if err := xml.Unmarshal([]byte(*blob), &doc); err != nil {
		return EmployeeIDs{}
	}

	ids := make(EmployeeIDs, 0, len(doc.IDs))
	for _, raw := range doc.IDs {
		id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids.Normalize()
}

// Normalize returns the distinct ids in ascending order.
func (ids EmployeeIDs) Normalize() EmployeeIDs {
	out := make(EmployeeIDs, len(ids))
	copy(out, ids)
	slices.Sort(out)
	return slices.Compact(out)
}

// Distinct returns the ids with duplicates removed, keeping first appearance order.
func (ids EmployeeIDs) Distinct() EmployeeIDs {
	seen := make(map[int64]struct{}, len(ids))
	out := make(EmployeeIDs, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// Contains reports whether id is a member of the set.
func (ids EmployeeIDs) Contains(id int64) bool {
	return slices.Contains(ids, id)
}

// Scan implements sql.Scanner. Unsupported source types decode to the empty set.
func (ids *EmployeeIDs) Scan(src interface{}) error {
	var s string
	switch v := src.(type) {
	case []byte:
		s = string(v)
	case string:
		s = v
	default:
		*ids = EmployeeIDs{}
		return nil
	}
	*ids = DecodeEmployeeIDs(&s)
	return nil
}

// Value implements driver.Valuer.
func (ids EmployeeIDs) Value() (driver.Value, error) {
	blob := EncodeEmployeeIDs(ids)
	if blob == nil {
		return nil, nil
	}
	return *blob, nil
}

// GormDataType keeps the column a plain text type.
func (EmployeeIDs) GormDataType() string { return "text" }
