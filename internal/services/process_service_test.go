package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"lexia/internal/models/db_models"
	"lexia/internal/models/request_models"
	"lexia/pkg/utils"
)

func newProcessServiceForTest(t *testing.T, user *db_models.User, processes ...*db_models.LegalProcess) (ProcessServiceInterface, *fakeProcessRepo) {
	t.Helper()
	processRepo := newFakeProcessRepo(processes...)
	svc := NewProcessService(
		processRepo,
		newFakeUserRepo(user),
		&fakeGenerator{legalBasis: "Fundamento legal generado"},
		&fakeConstitute{articles: []string{"Art. 1", "Art. 2", "Art. 3"}},
		zap.NewNop().Sugar(),
	)
	return svc, processRepo
}

func testUser() *db_models.User {
	return &db_models.User{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		Name:      "Maria",
		Email:     "maria@example.com",
		Country:   "EC",
		Language:  "es",
	}
}

func TestCreateProcessSeedsDefaultPlan(t *testing.T) {
	user := testUser()
	svc, _ := newProcessServiceForTest(t, user)

	process, err := svc.CreateProcess(context.Background(), user.ID.String(), request_models.CreateProcessRequest{
		Title:       "Demanda de alimentos",
		Type:        "familia",
		Description: "Pensión alimenticia para dos hijos",
	})
	require.NoError(t, err)

	steps := process.Steps.Data()
	require.Len(t, steps, 5)
	assert.Equal(t, "Análisis inicial del caso", steps[0].Title)
	for _, step := range steps {
		assert.False(t, step.Completed)
		assert.NotEmpty(t, step.ID)
	}

	assert.Equal(t, db_models.ProcessStatusPending, process.Status)
	assert.Equal(t, 0, process.Progress)
	assert.Equal(t, 0, process.CurrentStep)
	assert.Equal(t, 5, process.TotalSteps)
	assert.Equal(t, "Fundamento legal generado", process.LegalBasis)
	assert.Equal(t, []string{"Art. 1", "Art. 2", "Art. 3"}, process.ConstitutionalArticles.Data())
	assert.Equal(t, "medium", process.Metadata.Data().Priority)
}

func TestCreateProcessSurvivesGenerationFailure(t *testing.T) {
	user := testUser()
	processRepo := newFakeProcessRepo()
	svc := NewProcessService(
		processRepo,
		newFakeUserRepo(user),
		&fakeGenerator{basisErr: assert.AnError},
		&fakeConstitute{err: assert.AnError},
		zap.NewNop().Sugar(),
	)

	process, err := svc.CreateProcess(context.Background(), user.ID.String(), request_models.CreateProcessRequest{
		Title: "Reclamo laboral",
		Type:  "laboral",
	})
	require.NoError(t, err)
	assert.Equal(t, "Proceso de laboral conforme a la normativa vigente", process.LegalBasis)
	assert.Empty(t, process.ConstitutionalArticles.Data())
}

func TestProgressMatchesCompletedRatio(t *testing.T) {
	cases := []struct {
		completed, total, want int
	}{
		{0, 5, 0},
		{1, 5, 20},
		{2, 5, 40},
		{1, 3, 33},
		{2, 3, 67},
		{3, 3, 100},
		{0, 0, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, progressFor(tc.completed, tc.total), "completed=%d total=%d", tc.completed, tc.total)
	}
}

func makeProcess(user *db_models.User, steps []db_models.ProcessStep) *db_models.LegalProcess {
	process := &db_models.LegalProcess{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		UserID:    user.ID,
		Title:     "Divorcio",
		Type:      "familia",
	}
	applySteps(process, steps)
	return process
}

func TestToggleStepRecomputesProgress(t *testing.T) {
	user := testUser()
	steps := []db_models.ProcessStep{
		{ID: "step-1", Title: "Primero", Completed: true},
		{ID: "step-2", Title: "Segundo"},
		{ID: "step-3", Title: "Tercero"},
	}
	process := makeProcess(user, steps)
	svc, repo := newProcessServiceForTest(t, user, process)

	updated, err := svc.ToggleStep(context.Background(), user.ID.String(), process.ID.String(), "step-2")
	require.NoError(t, err)
	assert.Equal(t, 67, updated.Progress)
	assert.Equal(t, 2, updated.CurrentStep)
	assert.Equal(t, db_models.ProcessStatusInProgress, updated.Status)
	assert.Contains(t, repo.updatedColumns, "progress")
	assert.Contains(t, repo.updatedColumns, "status")

	// toggling back down
	updated, err = svc.ToggleStep(context.Background(), user.ID.String(), process.ID.String(), "step-2")
	require.NoError(t, err)
	assert.Equal(t, 33, updated.Progress)
}

func TestToggleLastStepCompletesProcess(t *testing.T) {
	user := testUser()
	steps := []db_models.ProcessStep{
		{ID: "step-1", Completed: true},
		{ID: "step-2", Completed: true},
		{ID: "step-3"},
	}
	process := makeProcess(user, steps)
	svc, _ := newProcessServiceForTest(t, user, process)

	updated, err := svc.ToggleStep(context.Background(), user.ID.String(), process.ID.String(), "step-3")
	require.NoError(t, err)
	assert.Equal(t, 100, updated.Progress)
	assert.Equal(t, db_models.ProcessStatusCompleted, updated.Status)
}

func TestToggleStepUnknownID(t *testing.T) {
	user := testUser()
	process := makeProcess(user, []db_models.ProcessStep{{ID: "step-1"}})
	svc, _ := newProcessServiceForTest(t, user, process)

	_, err := svc.ToggleStep(context.Background(), user.ID.String(), process.ID.String(), "missing")
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestUpdateProcessAllowListedFieldsOnly(t *testing.T) {
	user := testUser()
	process := makeProcess(user, []db_models.ProcessStep{{ID: "step-1"}})
	process.Metadata = datatypes.NewJSONType(db_models.ProcessMetadata{Priority: "medium"})
	svc, repo := newProcessServiceForTest(t, user, process)

	title := "Divorcio contencioso"
	court := "Unidad Judicial de Familia"
	updated, err := svc.UpdateProcess(context.Background(), user.ID.String(), process.ID.String(), request_models.UpdateProcessRequest{
		Title:    &title,
		Metadata: &request_models.MetadataInput{Court: &court},
	})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)
	assert.Equal(t, court, updated.Metadata.Data().Court)
	assert.Equal(t, "medium", updated.Metadata.Data().Priority)
	assert.ElementsMatch(t, []string{"title", "metadata"}, repo.updatedColumns)
}

func TestUpdateProcessReplacingStepsRecomputes(t *testing.T) {
	user := testUser()
	process := makeProcess(user, []db_models.ProcessStep{{ID: "step-1"}, {ID: "step-2"}})
	svc, _ := newProcessServiceForTest(t, user, process)

	newSteps := []request_models.StepInput{
		{ID: "a", Title: "Uno", Completed: true},
		{ID: "b", Title: "Dos", Completed: true},
		{ID: "c", Title: "Tres"},
		{ID: "d", Title: "Cuatro"},
	}
	updated, err := svc.UpdateProcess(context.Background(), user.ID.String(), process.ID.String(), request_models.UpdateProcessRequest{
		Steps: &newSteps,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.TotalSteps)
	assert.Equal(t, 50, updated.Progress)
	assert.Equal(t, db_models.ProcessStatusInProgress, updated.Status)
}

func TestProcessOwnershipEnforced(t *testing.T) {
	owner := testUser()
	stranger := testUser()
	process := makeProcess(owner, []db_models.ProcessStep{{ID: "step-1"}})
	processRepo := newFakeProcessRepo(process)
	svc := NewProcessService(
		processRepo,
		newFakeUserRepo(owner, stranger),
		&fakeGenerator{},
		&fakeConstitute{},
		zap.NewNop().Sugar(),
	)

	_, err := svc.GetProcess(context.Background(), stranger.ID.String(), process.ID.String())
	assert.ErrorIs(t, err, utils.ErrProcessNotFound)
}
