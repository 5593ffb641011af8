package domain_test

import (
	"errors"
	"reflect"
	"testing"

	"uniplan/internal/modules/planner/domain"
	apperrors "uniplan/internal/platform/errors"
)

func course(id int64, code string, credits int) domain.CourseRef {
	return domain.CourseRef{ID: id, Code: code, Name: code + " name", Credits: credits}
}

func TestAddFlowPendingThenCommit(t *testing.T) {
	t.Parallel()
	var plan domain.Plan

	if err := plan.RequestAdd(course(1, "CSSE1001", 2)); err != nil {
		t.Fatalf("request add: %v", err)
	}
	pending, ok := plan.Pending()
	if !ok || pending.ID != 1 {
		t.Fatalf("expected pending course 1, got %+v ok=%t", pending, ok)
	}

	entry, err := plan.ConfirmAdd("Semester 2")
	if err != nil {
		t.Fatalf("confirm add: %v", err)
	}
	if entry.PlannedSemester != "Semester 2" {
		t.Fatalf("expected target semester label, got %q", entry.PlannedSemester)
	}
	// Pending survives confirmation until the commit, so a failed
	// synchronization can retry or cancel.
	if _, ok := plan.Pending(); !ok {
		t.Fatalf("pending must remain open before commit")
	}

	plan.CommitAdd(entry)
	if _, ok := plan.Pending(); ok {
		t.Fatalf("commit must clear the pending state")
	}
	if !plan.Contains(1) {
		t.Fatalf("committed course must be planned")
	}
}

func TestRequestAddRejectsDuplicate(t *testing.T) {
	t.Parallel()
	var plan domain.Plan
	plan.Load([]domain.PlannedCourse{{CourseRef: course(1, "CSSE1001", 2), PlannedSemester: "Semester 1"}})

	err := plan.RequestAdd(course(1, "CSSE1001", 2))
	if !errors.Is(err, apperrors.ErrDuplicateCourse) {
		t.Fatalf("expected ErrDuplicateCourse, got %v", err)
	}
	if _, ok := plan.Pending(); ok {
		t.Fatalf("rejected add must not enter pending state")
	}
}

func TestConfirmAddValidatesState(t *testing.T) {
	t.Parallel()
	var plan domain.Plan

	if _, err := plan.ConfirmAdd("Semester 1"); !errors.Is(err, apperrors.ErrNoPendingCourse) {
		t.Fatalf("expected ErrNoPendingCourse, got %v", err)
	}
	if err := plan.RequestAdd(course(1, "CSSE1001", 2)); err != nil {
		t.Fatalf("request add: %v", err)
	}
	if _, err := plan.ConfirmAdd(""); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty semester, got %v", err)
	}
}

func TestCancelAddDiscardsPendingOnly(t *testing.T) {
	t.Parallel()
	var plan domain.Plan
	plan.Load([]domain.PlannedCourse{{CourseRef: course(1, "CSSE1001", 2), PlannedSemester: "Semester 1"}})

	if err := plan.RequestAdd(course(2, "MATH1051", 2)); err != nil {
		t.Fatalf("request add: %v", err)
	}
	plan.CancelAdd()
	if _, ok := plan.Pending(); ok {
		t.Fatalf("cancel must clear the pending state")
	}
	if !plan.Contains(1) || plan.Contains(2) {
		t.Fatalf("cancel must not touch the planned set")
	}
}

func TestMoveAndRemove(t *testing.T) {
	t.Parallel()
	var plan domain.Plan
	plan.Load([]domain.PlannedCourse{
		{CourseRef: course(1, "CSSE1001", 2), PlannedSemester: "Semester 1"},
		{CourseRef: course(2, "MATH1051", 2), PlannedSemester: "Semester 1"},
	})

	if !plan.Move(2, "Semester 3") {
		t.Fatalf("move of planned course must succeed")
	}
	if plan.Move(99, "Semester 3") {
		t.Fatalf("move of unknown course must fail")
	}
	if plan.HasCourseIn("Semester 1") != true || plan.HasCourseIn("Semester 3") != true {
		t.Fatalf("unexpected semester occupancy after move")
	}

	removed, ok := plan.Remove(1)
	if !ok || removed.Code != "CSSE1001" {
		t.Fatalf("remove must return the dropped entry, got %+v ok=%t", removed, ok)
	}
	if _, ok := plan.Remove(1); ok {
		t.Fatalf("second remove of the same course must fail")
	}
}

func TestTotalCreditsIsDerived(t *testing.T) {
	t.Parallel()
	var plan domain.Plan
	plan.Load([]domain.PlannedCourse{
		{CourseRef: course(1, "A", 3), PlannedSemester: "Semester 1"},
		{CourseRef: course(2, "B", 4), PlannedSemester: "Semester 1"},
		{CourseRef: course(3, "C", 4), PlannedSemester: "Semester 2"},
	})
	if got := plan.TotalCredits(); got != 11 {
		t.Fatalf("expected 11 credits, got %d", got)
	}
	if _, ok := plan.Remove(2); !ok {
		t.Fatalf("remove: missing course")
	}
	if got := plan.TotalCredits(); got != 7 {
		t.Fatalf("expected 7 credits after removal, got %d", got)
	}
}

func TestGroupBySemesterKeepsRegistryOrderAndStrays(t *testing.T) {
	t.Parallel()
	var plan domain.Plan
	plan.Load([]domain.PlannedCourse{
		{CourseRef: course(1, "A", 2), PlannedSemester: "Semester 2"},
		{CourseRef: course(2, "B", 2), PlannedSemester: "Semester 9"},
		{CourseRef: course(3, "C", 4), PlannedSemester: "Semester 1"},
	})

	groups := plan.GroupBySemester([]string{"Semester 1", "Semester 2"})
	labels := make([]string, len(groups))
	for i, g := range groups {
		labels[i] = g.Label
	}
	want := []string{"Semester 1", "Semester 2", "Semester 9"}
	if !reflect.DeepEqual(labels, want) {
		t.Fatalf("expected group order %v, got %v", want, labels)
	}
	if groups[0].Credits != 4 || groups[1].Credits != 2 || groups[2].Credits != 2 {
		t.Fatalf("per-group credit sums wrong: %+v", groups)
	}
}

func TestRegistryAppendAndDropLast(t *testing.T) {
	t.Parallel()
	registry := domain.DefaultRegistry()
	if registry.Len() != 4 {
		t.Fatalf("default registry must have 4 semesters, got %d", registry.Len())
	}

	registry.Append(5)
	last, ok := registry.Last()
	if !ok || last != "Semester 5" {
		t.Fatalf("expected Semester 5 appended, got %q", last)
	}

	registry.DropLast()
	if registry.Contains("Semester 5") {
		t.Fatalf("dropped semester must leave the registry")
	}
	if registry.Len() != 4 {
		t.Fatalf("expected 4 semesters after drop, got %d", registry.Len())
	}
}

func TestSemesterLabelRoundTrip(t *testing.T) {
	t.Parallel()
	if got := domain.SemesterLabel(3); got != "Semester 3" {
		t.Fatalf("unexpected label %q", got)
	}
	if got := domain.SemesterNumber("Semester 3"); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
	// Lenient parse: labels without an ordinal fall back to 1.
	if got := domain.SemesterNumber("Summer Semester"); got != 1 {
		t.Fatalf("expected fallback 1, got %d", got)
	}
}
