package usecase

import (
	"context"

	"github.com/rs/zerolog"

	catalogdto "uniplan/internal/modules/catalog/dto"
	catalogin "uniplan/internal/modules/catalog/port/in"
	"uniplan/internal/modules/planner/domain"
	plannerdto "uniplan/internal/modules/planner/dto"
	plannerin "uniplan/internal/modules/planner/port/in"
	plannerout "uniplan/internal/modules/planner/port/out"
	"uniplan/internal/modules/planner/service"
	sessionin "uniplan/internal/modules/session/port/in"
	apperrors "uniplan/internal/platform/errors"
)

// Interactor applies the planner synchronization policy: confirmed adds are
// blocked on backend acceptance, while moves and removals update local state
// first and let the backend call fail silently (logged, never rolled back).
type Interactor struct {
	svc       *service.PlannerService
	api       plannerout.PlannerAPI
	semesters plannerout.SemesterAPI
	catalog   catalogin.Usecase
	session   sessionin.Usecase
	log       zerolog.Logger
}

func NewInteractor(
	svc *service.PlannerService,
	api plannerout.PlannerAPI,
	semesters plannerout.SemesterAPI,
	catalog catalogin.Usecase,
	session sessionin.Usecase,
	log zerolog.Logger,
) plannerin.Usecase {
	return &Interactor{svc: svc, api: api, semesters: semesters, catalog: catalog, session: session, log: log}
}

func (i *Interactor) Load(ctx context.Context) (plannerdto.PlanOutput, error) {
	if !i.session.Status(ctx).Authenticated {
		i.svc.Reset(domain.DefaultRegistry(), nil)
		return i.Plan(ctx), nil
	}

	numbers, err := i.semesters.ListSemesters(ctx)
	if err != nil {
		// Fall back to the cosmetic default list; the planner stays usable
		// for browsing even when its backend state cannot be loaded.
		i.log.Warn().Err(err).Msg("semester fetch failed, using default registry")
		i.svc.Reset(domain.DefaultRegistry(), nil)
		return i.Plan(ctx), nil
	}

	records, err := i.api.ListPlanned(ctx)
	if err != nil {
		i.log.Warn().Err(err).Msg("planned course fetch failed")
		i.svc.Reset(domain.NewRegistry(numbers), nil)
		return i.Plan(ctx), nil
	}

	planned, err := i.join(ctx, records)
	if err != nil {
		return plannerdto.PlanOutput{}, err
	}
	i.svc.Reset(domain.NewRegistry(numbers), planned)
	return i.Plan(ctx), nil
}

// join resolves backend records against the catalog; unresolvable courses
// keep the denormalized code and name from the record.
func (i *Interactor) join(ctx context.Context, records []plannerout.PlannedRecord) ([]domain.PlannedCourse, error) {
	courses, err := i.catalog.ListCourses(ctx, catalogdto.FilterInput{})
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]catalogdto.CourseOutput, len(courses))
	for _, course := range courses {
		byID[course.ID] = course
	}
	planned := make([]domain.PlannedCourse, 0, len(records))
	for _, record := range records {
		ref := domain.CourseRef{ID: record.CourseID, Code: record.CourseCode, Name: record.CourseName}
		if course, ok := byID[record.CourseID]; ok {
			ref = toCourseRef(course)
		}
		planned = append(planned, domain.PlannedCourse{
			CourseRef:       ref,
			PlannedSemester: domain.SemesterLabel(record.Semester),
		})
	}
	return planned, nil
}

func (i *Interactor) Plan(context.Context) plannerdto.PlanOutput {
	labels, groups, total := i.svc.Snapshot()
	out := plannerdto.PlanOutput{Semesters: labels, TotalCredits: total}
	for _, group := range groups {
		g := plannerdto.SemesterGroupOutput{Label: group.Label, Credits: group.Credits}
		for _, entry := range group.Courses {
			g.Courses = append(g.Courses, toPlannedOutput(entry))
		}
		out.Groups = append(out.Groups, g)
	}
	return out
}

func (i *Interactor) RequestAdd(ctx context.Context, courseID int64) (plannerdto.PendingOutput, error) {
	courses, err := i.catalog.ListCourses(ctx, catalogdto.FilterInput{})
	if err != nil {
		return plannerdto.PendingOutput{}, err
	}
	for _, course := range courses {
		if course.ID == courseID {
			ref := toCourseRef(course)
			if err := i.svc.RequestAdd(ref); err != nil {
				return plannerdto.PendingOutput{}, err
			}
			return plannerdto.PendingOutput{CourseID: ref.ID, Code: ref.Code, Name: ref.Name, Credits: ref.Credits}, nil
		}
	}
	return plannerdto.PendingOutput{}, apperrors.ErrNotFound
}

func (i *Interactor) Pending(context.Context) (plannerdto.PendingOutput, bool) {
	pending, ok := i.svc.Pending()
	if !ok {
		return plannerdto.PendingOutput{}, false
	}
	return plannerdto.PendingOutput{CourseID: pending.ID, Code: pending.Code, Name: pending.Name, Credits: pending.Credits}, true
}

// ConfirmAdd issues the create-or-update and only inserts locally once the
// backend accepted it; a failed call leaves the planned set untouched.
func (i *Interactor) ConfirmAdd(ctx context.Context, semester string) (plannerdto.PlanOutput, error) {
	entry, err := i.svc.ConfirmAdd(semester)
	if err != nil {
		return plannerdto.PlanOutput{}, err
	}
	record := plannerout.PlannedRecord{
		CourseID:   entry.ID,
		CourseCode: entry.Code,
		CourseName: entry.Name,
		Semester:   domain.SemesterNumber(semester),
	}
	if err := i.api.Upsert(ctx, record); err != nil {
		return plannerdto.PlanOutput{}, err
	}
	i.svc.CommitAdd(entry)
	return i.Plan(ctx), nil
}

func (i *Interactor) CancelAdd(context.Context) {
	i.svc.CancelAdd()
}

// Move updates local state immediately; the backend update is
// fire-and-forget with the failure logged.
func (i *Interactor) Move(ctx context.Context, courseID int64, semester string) (plannerdto.PlanOutput, error) {
	if !i.svc.Move(courseID, semester) {
		return plannerdto.PlanOutput{}, apperrors.ErrNotFound
	}
	if err := i.api.UpdateSemester(ctx, courseID, domain.SemesterNumber(semester)); err != nil {
		i.log.Warn().Int64("course_id", courseID).Str("semester", semester).Err(err).Msg("semester reassignment not persisted")
	}
	return i.Plan(ctx), nil
}

// Remove drops the course locally first; a failed backend delete is
// swallowed.
func (i *Interactor) Remove(ctx context.Context, courseID int64) (plannerdto.PlanOutput, error) {
	if _, ok := i.svc.Remove(courseID); !ok {
		return plannerdto.PlanOutput{}, apperrors.ErrNotFound
	}
	if err := i.api.Delete(ctx, courseID); err != nil {
		i.log.Warn().Int64("course_id", courseID).Err(err).Msg("planned course removal not persisted")
	}
	return i.Plan(ctx), nil
}

func (i *Interactor) AddSemester(ctx context.Context) (plannerdto.PlanOutput, error) {
	if !i.session.Status(ctx).Authenticated {
		return plannerdto.PlanOutput{}, apperrors.ErrUnauthorized
	}
	number, err := i.semesters.AddSemester(ctx)
	if err != nil {
		return plannerdto.PlanOutput{}, err
	}
	i.svc.AppendSemester(number)
	return i.Plan(ctx), nil
}

// DeleteSemester relies on the backend's guard: the highest-numbered
// semester is only removed locally once the delete succeeded.
func (i *Interactor) DeleteSemester(ctx context.Context) (plannerdto.PlanOutput, error) {
	if !i.session.Status(ctx).Authenticated {
		return plannerdto.PlanOutput{}, apperrors.ErrUnauthorized
	}
	if err := i.semesters.DeleteLastSemester(ctx); err != nil {
		return plannerdto.PlanOutput{}, err
	}
	i.svc.DropLastSemester()
	return i.Plan(ctx), nil
}

func toCourseRef(course catalogdto.CourseOutput) domain.CourseRef {
	return domain.CourseRef{
		ID:        course.ID,
		Code:      course.Code,
		Name:      course.Name,
		Credits:   course.Credits,
		StudyArea: course.StudyArea,
	}
}

func toPlannedOutput(entry domain.PlannedCourse) plannerdto.PlannedCourseOutput {
	return plannerdto.PlannedCourseOutput{
		CourseID:        entry.ID,
		Code:            entry.Code,
		Name:            entry.Name,
		Credits:         entry.Credits,
		StudyArea:       entry.StudyArea,
		PlannedSemester: entry.PlannedSemester,
	}
}
