package services

import (
	"context"
	"math"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"lexia/internal/models/db_models"
	"lexia/internal/models/request_models"
	"lexia/internal/repositories"
	"lexia/pkg/utils"
)

type ProcessServiceInterface interface {
	CreateProcess(ctx context.Context, userID string, request request_models.CreateProcessRequest) (*db_models.LegalProcess, error)
	GetProcess(ctx context.Context, userID, processID string) (*db_models.LegalProcess, error)
	ListProcesses(ctx context.Context, userID string) ([]db_models.LegalProcess, error)
	UpdateProcess(ctx context.Context, userID, processID string, request request_models.UpdateProcessRequest) (*db_models.LegalProcess, error)
	ToggleStep(ctx context.Context, userID, processID, stepID string) (*db_models.LegalProcess, error)
}

type ProcessService struct {
	processRepo repositories.ProcessRepository
	userRepo    repositories.UserRepository
	generator   utils.TextGeneratorInterface
	constitute  ConstituteServiceInterface
	logger      *zap.SugaredLogger
}

func NewProcessService(
	processRepo repositories.ProcessRepository,
	userRepo repositories.UserRepository,
	generator utils.TextGeneratorInterface,
	constitute ConstituteServiceInterface,
	logger *zap.SugaredLogger,
) ProcessServiceInterface {
	return &ProcessService{
		processRepo: processRepo,
		userRepo:    userRepo,
		generator:   generator,
		constitute:  constitute,
		logger:      logger,
	}
}

// defaultProcessSteps is the fixed checklist every new process starts with.
func defaultProcessSteps() []db_models.ProcessStep {
	return []db_models.ProcessStep{
		{
			ID:           "1",
			Title:        "Análisis inicial del caso",
			Description:  "Revisar documentación y evaluar viabilidad legal",
			Documents:    []string{"Identificación", "Documentos relevantes al caso"},
			Requirements: []string{"Recopilar toda la documentación necesaria", "Analizar fundamentos legales"},
		},
		{
			ID:           "2",
			Title:        "Preparación de documentos",
			Description:  "Elaborar escritos y formularios necesarios",
			Documents:    []string{"Demanda", "Poderes", "Anexos"},
			Requirements: []string{"Redactar demanda principal", "Obtener poderes notariales"},
		},
		{
			ID:           "3",
			Title:        "Presentación formal",
			Description:  "Radicar documentos ante autoridad competente",
			Documents:    []string{"Constancia de radicación"},
			Requirements: []string{"Presentar en término legal", "Pagar tasas judiciales"},
		},
		{
			ID:           "4",
			Title:        "Seguimiento procesal",
			Description:  "Monitorear avances y cumplir términos",
			Documents:    []string{"Notificaciones", "Providencias"},
			Requirements: []string{"Revisar términos procesales", "Responder requerimientos"},
		},
		{
			ID:           "5",
			Title:        "Finalización",
			Description:  "Obtener resolución y ejecutar si es necesario",
			Documents:    []string{"Sentencia", "Liquidación"},
			Requirements: []string{"Evaluar resultado", "Ejecutar si procede"},
		},
	}
}

var defaultRequiredDocuments = []string{
	"Documento de identidad",
	"Documentos que soporten la pretensión",
	"Poderes (si aplica)",
	"Pruebas documentales",
}

const defaultTimeline = "El proceso puede tomar entre 6 meses y 2 años dependiendo de la complejidad"

func (s *ProcessService) CreateProcess(ctx context.Context, userID string, request request_models.CreateProcessRequest) (*db_models.LegalProcess, error) {
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrValidation
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	language := defaultString(user.Language, "es")
	articles, err := s.constitute.RelevantArticles(ctx, defaultString(request.Description, request.Title), defaultString(user.Country, "EC"), language, 3)
	if err != nil {
		s.logger.Warnw("constitutional article lookup failed, seeding process without excerpts", "error", err)
		articles = nil
	}

	legalBasis, err := s.generator.GenerateLegalBasis(ctx, utils.LegalBasisRequest{
		ProcessType:            request.Type,
		Title:                  request.Title,
		Description:            request.Description,
		Language:               language,
		ConstitutionalArticles: articles,
	})
	if err != nil {
		s.logger.Warnw("legal basis generation failed, using template", "error", err)
		legalBasis = utils.FallbackLegalBasis(request.Type)
	}

	steps := defaultProcessSteps()
	process := &db_models.LegalProcess{
		UserID:                 ownerID,
		Title:                  request.Title,
		Type:                   request.Type,
		Description:            request.Description,
		Status:                 db_models.ProcessStatusPending,
		Progress:               0,
		CurrentStep:            0,
		TotalSteps:             len(steps),
		Steps:                  datatypes.NewJSONType(steps),
		RequiredDocuments:      datatypes.NewJSONType(defaultRequiredDocuments),
		LegalBasis:             legalBasis,
		ConstitutionalArticles: datatypes.NewJSONType(articles),
		Timeline:               defaultTimeline,
		Metadata: datatypes.NewJSONType(db_models.ProcessMetadata{
			Priority: defaultString(request.Priority, "medium"),
			Deadline: request.Deadline,
		}),
	}

	if err := s.processRepo.Insert(ctx, process); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return process, nil
}

func (s *ProcessService) GetProcess(ctx context.Context, userID, processID string) (*db_models.LegalProcess, error) {
	return s.ownedProcess(ctx, userID, processID)
}

func (s *ProcessService) ListProcesses(ctx context.Context, userID string) ([]db_models.LegalProcess, error) {
	processes, err := s.processRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return processes, nil
}

func (s *ProcessService) UpdateProcess(ctx context.Context, userID, processID string, request request_models.UpdateProcessRequest) (*db_models.LegalProcess, error) {
	process, err := s.ownedProcess(ctx, userID, processID)
	if err != nil {
		return nil, err
	}

	var columns []string
	if request.Title != nil {
		process.Title = *request.Title
		columns = append(columns, "title")
	}
	if request.Description != nil {
		process.Description = *request.Description
		columns = append(columns, "description")
	}
	if request.Metadata != nil {
		metadata := process.Metadata.Data()
		applyMetadata(&metadata, request.Metadata)
		process.Metadata = datatypes.NewJSONType(metadata)
		columns = append(columns, "metadata")
	}
	if request.Steps != nil {
		steps := make([]db_models.ProcessStep, 0, len(*request.Steps))
		for _, in := range *request.Steps {
			steps = append(steps, db_models.ProcessStep{
				ID:           in.ID,
				Title:        in.Title,
				Description:  in.Description,
				Completed:    in.Completed,
				DueDate:      in.DueDate,
				Documents:    in.Documents,
				Requirements: in.Requirements,
			})
		}
		applySteps(process, steps)
		columns = append(columns, "steps", "total_steps", "progress", "current_step", "status")
	}
	if len(columns) == 0 {
		return process, nil
	}

	if err := s.processRepo.Update(ctx, process, columns...); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return process, nil
}

func (s *ProcessService) ToggleStep(ctx context.Context, userID, processID, stepID string) (*db_models.LegalProcess, error) {
	process, err := s.ownedProcess(ctx, userID, processID)
	if err != nil {
		return nil, err
	}

	steps := process.Steps.Data()
	found := false
	for i := range steps {
		if steps[i].ID == stepID {
			steps[i].Completed = !steps[i].Completed
			found = true
			break
		}
	}
	if !found {
		return nil, utils.ErrValidation
	}

	applySteps(process, steps)
	if err := s.processRepo.Update(ctx, process, "steps", "total_steps", "progress", "current_step", "status"); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return process, nil
}

// applySteps replaces the step list and recomputes the derived fields:
// progress == round(100 * completed / total), completed status exactly at 100.
func applySteps(process *db_models.LegalProcess, steps []db_models.ProcessStep) {
	completed := 0
	for _, step := range steps {
		if step.Completed {
			completed++
		}
	}

	process.Steps = datatypes.NewJSONType(steps)
	process.TotalSteps = len(steps)
	process.CurrentStep = completed
	process.Progress = progressFor(completed, len(steps))

	switch {
	case process.Progress == 100:
		process.Status = db_models.ProcessStatusCompleted
	case completed > 0:
		process.Status = db_models.ProcessStatusInProgress
	default:
		process.Status = db_models.ProcessStatusPending
	}
}

func progressFor(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}

func applyMetadata(metadata *db_models.ProcessMetadata, in *request_models.MetadataInput) {
	if in.CaseNumber != nil {
		metadata.CaseNumber = *in.CaseNumber
	}
	if in.Court != nil {
		metadata.Court = *in.Court
	}
	if in.Judge != nil {
		metadata.Judge = *in.Judge
	}
	if in.OpposingParty != nil {
		metadata.OpposingParty = *in.OpposingParty
	}
	if in.Amount != nil {
		metadata.Amount = *in.Amount
	}
	if in.Deadline != nil {
		metadata.Deadline = *in.Deadline
	}
	if in.Priority != nil {
		metadata.Priority = *in.Priority
	}
}

func (s *ProcessService) ownedProcess(ctx context.Context, userID, processID string) (*db_models.LegalProcess, error) {
	process, err := s.processRepo.FindByID(ctx, processID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if process == nil || process.UserID.String() != userID {
		return nil, utils.ErrProcessNotFound
	}
	return process, nil
}
