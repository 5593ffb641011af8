package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	catalogdto "uniplan/internal/modules/catalog/dto"
	plannerout "uniplan/internal/modules/planner/port/out"
	"uniplan/internal/modules/planner/service"
	"uniplan/internal/modules/planner/usecase"
	sessiondto "uniplan/internal/modules/session/dto"
	apperrors "uniplan/internal/platform/errors"
)

type fakePlannerAPI struct {
	records     []plannerout.PlannedRecord
	listErr     error
	upsertErr   error
	updateErr   error
	deleteErr   error
	upsertCalls int
	updateCalls int
	deleteCalls int
}

func (f *fakePlannerAPI) ListPlanned(context.Context) ([]plannerout.PlannedRecord, error) {
	return f.records, f.listErr
}
func (f *fakePlannerAPI) Upsert(_ context.Context, _ plannerout.PlannedRecord) error {
	f.upsertCalls++
	return f.upsertErr
}
func (f *fakePlannerAPI) UpdateSemester(context.Context, int64, int) error {
	f.updateCalls++
	return f.updateErr
}
func (f *fakePlannerAPI) Delete(context.Context, int64) error {
	f.deleteCalls++
	return f.deleteErr
}

type fakeSemesterAPI struct {
	numbers   []int
	listErr   error
	next      int
	deleteErr error
}

func (f *fakeSemesterAPI) ListSemesters(context.Context) ([]int, error) {
	return f.numbers, f.listErr
}
func (f *fakeSemesterAPI) AddSemester(context.Context) (int, error) {
	return f.next, nil
}
func (f *fakeSemesterAPI) DeleteLastSemester(context.Context) error {
	return f.deleteErr
}

type fakeCatalog struct {
	courses []catalogdto.CourseOutput
}

func (f *fakeCatalog) ListCourses(context.Context, catalogdto.FilterInput) ([]catalogdto.CourseOutput, error) {
	return f.courses, nil
}
func (f *fakeCatalog) Refresh(context.Context) error { return nil }
func (f *fakeCatalog) GetCourse(context.Context, int64) (catalogdto.CourseDetailOutput, error) {
	return catalogdto.CourseDetailOutput{}, nil
}
func (f *fakeCatalog) AssessmentTypes(context.Context) ([]catalogdto.OptionOutput, error) {
	return nil, nil
}
func (f *fakeCatalog) StudyAreas(context.Context) ([]catalogdto.OptionOutput, error) {
	return nil, nil
}
func (f *fakeCatalog) ProgramLevels(context.Context) ([]catalogdto.OptionOutput, error) {
	return nil, nil
}

type fakeSession struct {
	authenticated bool
}

func (f *fakeSession) Login(context.Context, sessiondto.LoginInput) error         { panic("unused") }
func (f *fakeSession) Register(context.Context, sessiondto.RegisterInput) error   { panic("unused") }
func (f *fakeSession) Logout(context.Context) error                               { panic("unused") }
func (f *fakeSession) Me(context.Context) (sessiondto.ProfileOutput, error)       { panic("unused") }
func (f *fakeSession) UpdateProfile(context.Context, sessiondto.UpdateProfileInput) (sessiondto.ProfileOutput, error) {
	panic("unused")
}
func (f *fakeSession) Status(context.Context) sessiondto.StatusOutput {
	return sessiondto.StatusOutput{Authenticated: f.authenticated}
}
func (f *fakeSession) CheckRoute(context.Context, string) sessiondto.RouteCheckOutput {
	panic("unused")
}

func testCourses() []catalogdto.CourseOutput {
	return []catalogdto.CourseOutput{
		{ID: 1, Code: "CSSE1001", Name: "Intro", Credits: 3, StudyArea: "EAIT"},
		{ID: 2, Code: "MATH1051", Name: "Calculus", Credits: 4, StudyArea: "SCI"},
		{ID: 3, Code: "DECO3801", Name: "Studio", Credits: 4, StudyArea: "EAIT"},
	}
}

func TestLoadUnauthenticatedUsesDefaultRegistry(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(
		service.NewPlannerService(),
		&fakePlannerAPI{},
		&fakeSemesterAPI{},
		&fakeCatalog{courses: testCourses()},
		&fakeSession{authenticated: false},
		zerolog.Nop(),
	)

	plan, err := uc.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(plan.Semesters) != 4 || plan.Semesters[0] != "Semester 1" {
		t.Fatalf("expected cosmetic default registry, got %v", plan.Semesters)
	}
	if plan.TotalCredits != 0 {
		t.Fatalf("unauthenticated plan must be empty, got %d credits", plan.TotalCredits)
	}
}

func TestLoadJoinsRecordsAgainstCatalog(t *testing.T) {
	t.Parallel()
	api := &fakePlannerAPI{records: []plannerout.PlannedRecord{
		{CourseID: 1, Semester: 1},
		{CourseID: 99, CourseCode: "GONE1000", CourseName: "Retired Course", Semester: 2},
	}}
	uc := usecase.NewInteractor(
		service.NewPlannerService(),
		api,
		&fakeSemesterAPI{numbers: []int{1, 2, 3}},
		&fakeCatalog{courses: testCourses()},
		&fakeSession{authenticated: true},
		zerolog.Nop(),
	)

	plan, err := uc.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(plan.Semesters) != 3 {
		t.Fatalf("expected backend registry of 3 semesters, got %v", plan.Semesters)
	}
	if plan.Groups[0].Courses[0].Credits != 3 || plan.Groups[0].Courses[0].Code != "CSSE1001" {
		t.Fatalf("catalog join must enrich the record: %+v", plan.Groups[0].Courses)
	}
	// A record whose course left the catalog keeps its denormalized fields.
	stray := plan.Groups[1].Courses[0]
	if stray.Code != "GONE1000" || stray.Name != "Retired Course" || stray.Credits != 0 {
		t.Fatalf("unresolvable record must keep backend fields: %+v", stray)
	}
}

func TestLoadFallsBackWhenSemesterFetchFails(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(
		service.NewPlannerService(),
		&fakePlannerAPI{},
		&fakeSemesterAPI{listErr: errors.New("boom")},
		&fakeCatalog{courses: testCourses()},
		&fakeSession{authenticated: true},
		zerolog.Nop(),
	)

	plan, err := uc.Load(context.Background())
	if err != nil {
		t.Fatalf("load must degrade, not fail: %v", err)
	}
	if len(plan.Semesters) != 4 {
		t.Fatalf("expected default registry fallback, got %v", plan.Semesters)
	}
}

func TestDuplicateAddStopsBeforeNetwork(t *testing.T) {
	t.Parallel()
	api := &fakePlannerAPI{records: []plannerout.PlannedRecord{{CourseID: 1, Semester: 1}}}
	uc := usecase.NewInteractor(
		service.NewPlannerService(),
		api,
		&fakeSemesterAPI{numbers: []int{1, 2}},
		&fakeCatalog{courses: testCourses()},
		&fakeSession{authenticated: true},
		zerolog.Nop(),
	)
	if _, err := uc.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	_, err := uc.RequestAdd(context.Background(), 1)
	if !errors.Is(err, apperrors.ErrDuplicateCourse) {
		t.Fatalf("expected ErrDuplicateCourse, got %v", err)
	}
	if api.upsertCalls != 0 {
		t.Fatalf("duplicate add must not reach the backend, got %d upserts", api.upsertCalls)
	}
}

func TestConfirmedAddSyncsThenCommits(t *testing.T) {
	t.Parallel()
	api := &fakePlannerAPI{}
	uc := usecase.NewInteractor(
		service.NewPlannerService(),
		api,
		&fakeSemesterAPI{numbers: []int{1, 2}},
		&fakeCatalog{courses: testCourses()},
		&fakeSession{authenticated: true},
		zerolog.Nop(),
	)
	if _, err := uc.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	pending, err := uc.RequestAdd(context.Background(), 2)
	if err != nil {
		t.Fatalf("request add: %v", err)
	}
	if pending.Code != "MATH1051" {
		t.Fatalf("pending resolution wrong: %+v", pending)
	}

	plan, err := uc.ConfirmAdd(context.Background(), "Semester 2")
	if err != nil {
		t.Fatalf("confirm add: %v", err)
	}
	if api.upsertCalls != 1 {
		t.Fatalf("expected one upsert, got %d", api.upsertCalls)
	}
	if plan.TotalCredits != 4 {
		t.Fatalf("expected 4 credits after add, got %d", plan.TotalCredits)
	}
	if len(plan.Groups[1].Courses) != 1 || plan.Groups[1].Courses[0].Code != "MATH1051" {
		t.Fatalf("course must land in Semester 2: %+v", plan.Groups)
	}
}

func TestConfirmAddBackendFailureLeavesPlanUntouched(t *testing.T) {
	t.Parallel()
	api := &fakePlannerAPI{upsertErr: errors.New("503")}
	uc := usecase.NewInteractor(
		service.NewPlannerService(),
		api,
		&fakeSemesterAPI{numbers: []int{1, 2}},
		&fakeCatalog{courses: testCourses()},
		&fakeSession{authenticated: true},
		zerolog.Nop(),
	)
	if _, err := uc.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := uc.RequestAdd(context.Background(), 2); err != nil {
		t.Fatalf("request add: %v", err)
	}

	if _, err := uc.ConfirmAdd(context.Background(), "Semester 1"); err == nil {
		t.Fatalf("expected backend failure to propagate")
	}
	if plan := uc.Plan(context.Background()); plan.TotalCredits != 0 {
		t.Fatalf("failed confirmation must not mutate the plan, got %d credits", plan.TotalCredits)
	}
	// The attempt stays open for retry or cancellation.
	if _, ok := uc.Pending(context.Background()); !ok {
		t.Fatalf("pending must survive a failed confirmation")
	}
	uc.CancelAdd(context.Background())
	if _, ok := uc.Pending(context.Background()); ok {
		t.Fatalf("cancel must clear the pending attempt")
	}
}

func TestConfirmAddRejectsUnknownSemester(t *testing.T) {
	t.Parallel()
	api := &fakePlannerAPI{}
	uc := usecase.NewInteractor(
		service.NewPlannerService(),
		api,
		&fakeSemesterAPI{numbers: []int{1, 2}},
		&fakeCatalog{courses: testCourses()},
		&fakeSession{authenticated: true},
		zerolog.Nop(),
	)
	if _, err := uc.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := uc.RequestAdd(context.Background(), 1); err != nil {
		t.Fatalf("request add: %v", err)
	}

	if _, err := uc.ConfirmAdd(context.Background(), "Semester 9"); err == nil {
		t.Fatalf("expected rejection of a semester outside the registry")
	}
	if api.upsertCalls != 0 {
		t.Fatalf("invalid semester must not reach the backend")
	}
}

func TestMoveAndRemoveAreOptimistic(t *testing.T) {
	t.Parallel()
	api := &fakePlannerAPI{
		records:   []plannerout.PlannedRecord{{CourseID: 1, Semester: 1}, {CourseID: 2, Semester: 1}},
		updateErr: errors.New("network down"),
		deleteErr: errors.New("network down"),
	}
	uc := usecase.NewInteractor(
		service.NewPlannerService(),
		api,
		&fakeSemesterAPI{numbers: []int{1, 2}},
		&fakeCatalog{courses: testCourses()},
		&fakeSession{authenticated: true},
		zerolog.Nop(),
	)
	if _, err := uc.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	// Local state updates even though the backend calls fail; the failures
	// are logged, never rolled back.
	plan, err := uc.Move(context.Background(), 1, "Semester 2")
	if err != nil {
		t.Fatalf("move must not surface the backend failure: %v", err)
	}
	if len(plan.Groups[1].Courses) != 1 || plan.Groups[1].Courses[0].CourseID != 1 {
		t.Fatalf("move must apply locally: %+v", plan.Groups)
	}
	if api.updateCalls != 1 {
		t.Fatalf("expected one update attempt, got %d", api.updateCalls)
	}

	plan, err = uc.Remove(context.Background(), 2)
	if err != nil {
		t.Fatalf("remove must not surface the backend failure: %v", err)
	}
	if plan.TotalCredits != 3 {
		t.Fatalf("remove must apply locally, got %d credits", plan.TotalCredits)
	}
	if api.deleteCalls != 1 {
		t.Fatalf("expected one delete attempt, got %d", api.deleteCalls)
	}
}

func TestMoveUnknownCourseFails(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(
		service.NewPlannerService(),
		&fakePlannerAPI{},
		&fakeSemesterAPI{numbers: []int{1, 2}},
		&fakeCatalog{courses: testCourses()},
		&fakeSession{authenticated: true},
		zerolog.Nop(),
	)
	if _, err := uc.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := uc.Move(context.Background(), 42, "Semester 1"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSemesterMutationsRequireAuth(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(
		service.NewPlannerService(),
		&fakePlannerAPI{},
		&fakeSemesterAPI{next: 5},
		&fakeCatalog{courses: testCourses()},
		&fakeSession{authenticated: false},
		zerolog.Nop(),
	)

	if _, err := uc.AddSemester(context.Background()); !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for add, got %v", err)
	}
	if _, err := uc.DeleteSemester(context.Background()); !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for delete, got %v", err)
	}
}

func TestDeleteSemesterHonorsBackendGuard(t *testing.T) {
	t.Parallel()
	guard := &apperrors.ValidationError{Detail: "Cannot delete semester with courses planned in it."}
	uc := usecase.NewInteractor(
		service.NewPlannerService(),
		&fakePlannerAPI{},
		&fakeSemesterAPI{numbers: []int{1, 2}, deleteErr: guard},
		&fakeCatalog{courses: testCourses()},
		&fakeSession{authenticated: true},
		zerolog.Nop(),
	)
	if _, err := uc.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	_, err := uc.DeleteSemester(context.Background())
	ve, ok := apperrors.AsValidation(err)
	if !ok || ve.Detail != guard.Detail {
		t.Fatalf("expected the backend guard detail, got %v", err)
	}
	// The registry only shrinks after a successful delete.
	if plan := uc.Plan(context.Background()); len(plan.Semesters) != 2 {
		t.Fatalf("rejected delete must keep the registry, got %v", plan.Semesters)
	}
}

func TestAddSemesterAppendsBackendNumber(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(
		service.NewPlannerService(),
		&fakePlannerAPI{},
		&fakeSemesterAPI{numbers: []int{1, 2}, next: 3},
		&fakeCatalog{courses: testCourses()},
		&fakeSession{authenticated: true},
		zerolog.Nop(),
	)
	if _, err := uc.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	plan, err := uc.AddSemester(context.Background())
	if err != nil {
		t.Fatalf("add semester: %v", err)
	}
	if len(plan.Semesters) != 3 || plan.Semesters[2] != "Semester 3" {
		t.Fatalf("expected Semester 3 appended, got %v", plan.Semesters)
	}
}
