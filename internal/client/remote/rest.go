package remote

import (
	"context"
	"net/http"

	"github.com/treiher/valens-client/internal/domain"
)

// Session

func (c *Client) RequestSession(ctx context.Context, userID domain.UserID) (domain.User, error) {
	return fetch[domain.User](ctx, c, http.MethodPost, "session", map[string]any{"id": userID})
}

func (c *Client) InitializeSession(ctx context.Context) (domain.User, error) {
	return fetch[domain.User](ctx, c, http.MethodGet, "session", nil)
}

func (c *Client) DeleteSession(ctx context.Context) error {
	_, err := fetchNoContent(ctx, c, http.MethodDelete, "session", nil, struct{}{})
	return err
}

// Version

func (c *Client) ReadVersion(ctx context.Context) (string, error) {
	return fetch[string](ctx, c, http.MethodGet, "version", nil)
}

// Users

func (c *Client) ReadUsers(ctx context.Context) ([]domain.User, error) {
	return fetch[[]domain.User](ctx, c, http.MethodGet, "users", nil)
}

func (c *Client) CreateUser(ctx context.Context, name domain.Name, sex domain.Sex) (domain.User, error) {
	return fetch[domain.User](ctx, c, http.MethodPost, "users", map[string]any{
		"name": name,
		"sex":  sex,
	})
}

func (c *Client) ReplaceUser(ctx context.Context, user domain.User) (domain.User, error) {
	return fetch[domain.User](ctx, c, http.MethodPut, "users/"+user.ID.String(), map[string]any{
		"name": user.Name,
		"sex":  user.Sex,
	})
}

func (c *Client) DeleteUser(ctx context.Context, id domain.UserID) (domain.UserID, error) {
	return fetchNoContent(ctx, c, http.MethodDelete, "users/"+id.String(), nil, id)
}

// Body weight

func (c *Client) ReadBodyWeight(ctx context.Context) ([]domain.BodyWeight, error) {
	return fetch[[]domain.BodyWeight](ctx, c, http.MethodGet, "body_weight", nil)
}

func (c *Client) CreateBodyWeight(ctx context.Context, bodyWeight domain.BodyWeight) (domain.BodyWeight, error) {
	return fetch[domain.BodyWeight](ctx, c, http.MethodPost, "body_weight", bodyWeight)
}

func (c *Client) ReplaceBodyWeight(ctx context.Context, bodyWeight domain.BodyWeight) (domain.BodyWeight, error) {
	return fetch[domain.BodyWeight](ctx, c, http.MethodPut, "body_weight/"+bodyWeight.Date.String(), map[string]any{
		"weight": bodyWeight.Weight,
	})
}

func (c *Client) DeleteBodyWeight(ctx context.Context, date domain.Date) (domain.Date, error) {
	return fetchNoContent(ctx, c, http.MethodDelete, "body_weight/"+date.String(), nil, date)
}

// Body fat

func (c *Client) ReadBodyFat(ctx context.Context) ([]domain.BodyFat, error) {
	return fetch[[]domain.BodyFat](ctx, c, http.MethodGet, "body_fat", nil)
}

func (c *Client) CreateBodyFat(ctx context.Context, bodyFat domain.BodyFat) (domain.BodyFat, error) {
	return fetch[domain.BodyFat](ctx, c, http.MethodPost, "body_fat", bodyFat)
}

func (c *Client) ReplaceBodyFat(ctx context.Context, bodyFat domain.BodyFat) (domain.BodyFat, error) {
	return fetch[domain.BodyFat](ctx, c, http.MethodPut, "body_fat/"+bodyFat.Date.String(), map[string]any{
		"chest":       bodyFat.Chest,
		"abdominal":   bodyFat.Abdominal,
		"thigh":       bodyFat.Thigh,
		"tricep":      bodyFat.Tricep,
		"subscapular": bodyFat.Subscapular,
		"suprailiac":  bodyFat.Suprailiac,
		"midaxillary": bodyFat.Midaxillary,
	})
}

func (c *Client) DeleteBodyFat(ctx context.Context, date domain.Date) (domain.Date, error) {
	return fetchNoContent(ctx, c, http.MethodDelete, "body_fat/"+date.String(), nil, date)
}

// Period

func (c *Client) ReadPeriod(ctx context.Context) ([]domain.Period, error) {
	return fetch[[]domain.Period](ctx, c, http.MethodGet, "period", nil)
}

func (c *Client) CreatePeriod(ctx context.Context, period domain.Period) (domain.Period, error) {
	return fetch[domain.Period](ctx, c, http.MethodPost, "period", period)
}

func (c *Client) ReplacePeriod(ctx context.Context, period domain.Period) (domain.Period, error) {
	return fetch[domain.Period](ctx, c, http.MethodPut, "period/"+period.Date.String(), map[string]any{
		"intensity": period.Intensity,
	})
}

func (c *Client) DeletePeriod(ctx context.Context, date domain.Date) (domain.Date, error) {
	return fetchNoContent(ctx, c, http.MethodDelete, "period/"+date.String(), nil, date)
}

// Exercises

func (c *Client) ReadExercises(ctx context.Context) ([]domain.Exercise, error) {
	return fetch[[]domain.Exercise](ctx, c, http.MethodGet, "exercises", nil)
}

func (c *Client) CreateExercise(ctx context.Context, name domain.Name, muscles []domain.ExerciseMuscle) (domain.Exercise, error) {
	return fetch[domain.Exercise](ctx, c, http.MethodPost, "exercises", map[string]any{
		"name":    name,
		"muscles": muscles,
	})
}

func (c *Client) ReplaceExercise(ctx context.Context, exercise domain.Exercise) (domain.Exercise, error) {
	return fetch[domain.Exercise](ctx, c, http.MethodPut, "exercises/"+exercise.ID.String(), exercise)
}

func (c *Client) DeleteExercise(ctx context.Context, id domain.ExerciseID) (domain.ExerciseID, error) {
	return fetchNoContent(ctx, c, http.MethodDelete, "exercises/"+id.String(), nil, id)
}

// Routines

func (c *Client) ReadRoutines(ctx context.Context) ([]domain.Routine, error) {
	return fetch[[]domain.Routine](ctx, c, http.MethodGet, "routines", nil)
}

func (c *Client) CreateRoutine(ctx context.Context, name domain.Name, sections domain.RoutineParts) (domain.Routine, error) {
	return fetch[domain.Routine](ctx, c, http.MethodPost, "routines", map[string]any{
		"name":     name,
		"notes":    "",
		"archived": false,
		"sections": sections,
	})
}

// ModifyRoutine sends only the supplied fields; nil arguments are omitted
// from the request and remain untouched server-side.
func (c *Client) ModifyRoutine(ctx context.Context, id domain.RoutineID, name *domain.Name, archived *bool, sections domain.RoutineParts) (domain.Routine, error) {
	content := map[string]any{}
	if name != nil {
		content["name"] = *name
	}
	if archived != nil {
		content["archived"] = *archived
	}
	if sections != nil {
		content["sections"] = sections
	}
	return fetch[domain.Routine](ctx, c, http.MethodPatch, "routines/"+id.String(), content)
}

func (c *Client) DeleteRoutine(ctx context.Context, id domain.RoutineID) (domain.RoutineID, error) {
	return fetchNoContent(ctx, c, http.MethodDelete, "routines/"+id.String(), nil, id)
}

// Training sessions
//
// The backend exposes training sessions under the legacy "workouts" path.

func (c *Client) ReadTrainingSessions(ctx context.Context) ([]domain.TrainingSession, error) {
	return fetch[[]domain.TrainingSession](ctx, c, http.MethodGet, "workouts", nil)
}

func (c *Client) CreateTrainingSession(ctx context.Context, routine *domain.RoutineID, date domain.Date, notes string, elements domain.TrainingSessionElements) (domain.TrainingSession, error) {
	return fetch[domain.TrainingSession](ctx, c, http.MethodPost, "workouts", map[string]any{
		"routine_id": routine,
		"date":       date,
		"notes":      notes,
		"elements":   elements,
	})
}

// ModifyTrainingSession sends only the supplied fields; nil arguments are
// omitted from the request and remain untouched server-side.
func (c *Client) ModifyTrainingSession(ctx context.Context, id domain.TrainingSessionID, notes *string, elements domain.TrainingSessionElements) (domain.TrainingSession, error) {
	content := map[string]any{}
	if notes != nil {
		content["notes"] = *notes
	}
	if elements != nil {
		content["elements"] = elements
	}
	return fetch[domain.TrainingSession](ctx, c, http.MethodPatch, "workouts/"+id.String(), content)
}

func (c *Client) DeleteTrainingSession(ctx context.Context, id domain.TrainingSessionID) (domain.TrainingSessionID, error) {
	return fetchNoContent(ctx, c, http.MethodDelete, "workouts/"+id.String(), nil, id)
}
