package services

import (
	"bytes"
	"context"
	"html/template"
	"regexp"
	"strconv"
	"time"

	"go.uber.org/zap"

	"lexia/internal/models/db_models"
	"lexia/internal/repositories"
	"lexia/pkg/utils"
)

type GeneratedDocument struct {
	Filename string
	PDF      []byte
}

type DocumentServiceInterface interface {
	GenerateProcessDocument(ctx context.Context, userID, processID, country string) (*GeneratedDocument, error)
}

type DocumentService struct {
	processRepo repositories.ProcessRepository
	userRepo    repositories.UserRepository
	generator   utils.TextGeneratorInterface
	constitute  ConstituteServiceInterface
	renderer    utils.PDFRendererInterface
	logger      *zap.SugaredLogger
}

func NewDocumentService(
	processRepo repositories.ProcessRepository,
	userRepo repositories.UserRepository,
	generator utils.TextGeneratorInterface,
	constitute ConstituteServiceInterface,
	renderer utils.PDFRendererInterface,
	logger *zap.SugaredLogger,
) DocumentServiceInterface {
	return &DocumentService{
		processRepo: processRepo,
		userRepo:    userRepo,
		generator:   generator,
		constitute:  constitute,
		renderer:    renderer,
		logger:      logger,
	}
}

type documentData struct {
	Title       string
	Date        string
	Type        string
	Status      string
	Progress    string
	Metadata    db_models.ProcessMetadata
	Description string
	LegalBasis  string
	Articles    []string
}

var documentTpl = template.Must(template.New("processDocument").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>{{.Title}}</title>
  <style>
    body { font-family: Arial, sans-serif; margin: 40px; line-height: 1.6; }
    .header { text-align: center; border-bottom: 2px solid #333; padding-bottom: 20px; margin-bottom: 30px; }
    .section { margin-bottom: 25px; }
    .section h2 { color: #333; border-bottom: 1px solid #ccc; padding-bottom: 5px; }
    .metadata { background-color: #f5f5f5; padding: 15px; border-radius: 5px; }
    .legal-basis { background-color: #e8f4f8; padding: 15px; border-left: 4px solid #007acc; }
    .article { margin-bottom: 15px; padding: 10px; border: 1px solid #ddd; }
    .steps { list-style-type: decimal; }
    .steps li { margin-bottom: 10px; }
  </style>
</head>
<body>
  <div class="header">
    <h1>{{.Title}}</h1>
    <p>Documento Legal Generado - {{.Date}}</p>
  </div>

  <div class="section">
    <h2>Información del Proceso</h2>
    <div class="metadata">
      <p><strong>Tipo:</strong> {{.Type}}</p>
      <p><strong>Estado:</strong> {{.Status}}</p>
      <p><strong>Progreso:</strong> {{.Progress}}</p>
      {{if .Metadata.CaseNumber}}<p><strong>Número de Caso:</strong> {{.Metadata.CaseNumber}}</p>{{end}}
      {{if .Metadata.Court}}<p><strong>Tribunal:</strong> {{.Metadata.Court}}</p>{{end}}
      {{if .Metadata.Judge}}<p><strong>Juez:</strong> {{.Metadata.Judge}}</p>{{end}}
    </div>
  </div>

  <div class="section">
    <h2>Descripción del Caso</h2>
    <p>{{if .Description}}{{.Description}}{{else}}Sin descripción disponible{{end}}</p>
  </div>

  <div class="section">
    <h2>Fundamento Legal y Constitucional</h2>
    <div class="legal-basis">{{.LegalBasis}}</div>
  </div>

  <div class="section">
    <h2>Artículos Constitucionales Relevantes</h2>
    {{range $i, $article := .Articles}}
    <div class="article">
      <h4>Artículo {{inc $i}}</h4>
      <p>{{$article}}</p>
    </div>
    {{end}}
  </div>

  <div class="section">
    <h2>Plan de Acción Recomendado</h2>
    <ol class="steps">
      <li>Recopilación de documentación necesaria</li>
      <li>Preparación de escritos legales</li>
      <li>Presentación ante autoridad competente</li>
      <li>Seguimiento del proceso</li>
      <li>Ejecución de resolución</li>
    </ol>
  </div>

  <div class="section">
    <h2>Recomendaciones</h2>
    <ul>
      <li>Mantener toda la documentación organizada</li>
      <li>Cumplir estrictamente con los plazos legales</li>
      <li>Consultar con abogado especializado si es necesario</li>
      <li>Documentar todas las comunicaciones</li>
    </ul>
  </div>
</body>
</html>`))

// GenerateProcessDocument assembles the summary HTML for a process and
// rasterizes it. Any fetch, generation or render failure surfaces as one
// generic document error; the caller never gets a partial PDF.
func (s *DocumentService) GenerateProcessDocument(ctx context.Context, userID, processID, country string) (*GeneratedDocument, error) {
	process, err := s.processRepo.FindByID(ctx, processID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if process == nil || process.UserID.String() != userID {
		return nil, utils.ErrProcessNotFound
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	language := defaultString(user.Language, "es")
	articles, err := s.constitute.RelevantArticles(ctx, defaultString(process.Description, process.Title), defaultString(country, user.Country), language, 5)
	if err != nil {
		s.logger.Warnw("constitutional article lookup failed for document", "error", err)
		articles = process.ConstitutionalArticles.Data()
	}

	legalBasis, err := s.generator.GenerateLegalBasis(ctx, utils.LegalBasisRequest{
		ProcessType:            process.Type,
		Title:                  process.Title,
		Description:            process.Description,
		Language:               language,
		ConstitutionalArticles: articles,
	})
	if err != nil {
		s.logger.Warnw("legal basis generation failed for document, using template", "error", err)
		legalBasis = utils.FallbackLegalBasis(process.Type)
	}

	html, err := renderDocumentHTML(documentData{
		Title:       process.Title,
		Date:        time.Now().Format("02/01/2006"),
		Type:        process.Type,
		Status:      process.Status,
		Progress:    progressLabel(process),
		Metadata:    process.Metadata.Data(),
		Description: process.Description,
		LegalBasis:  legalBasis,
		Articles:    articles,
	})
	if err != nil {
		s.logger.Errorw("document template render failed", "error", err)
		return nil, utils.ErrDocumentGeneration
	}

	pdf, err := s.renderer.RenderPDF(ctx, html)
	if err != nil {
		s.logger.Errorw("pdf render failed", "error", err)
		return nil, utils.ErrDocumentGeneration
	}

	return &GeneratedDocument{
		Filename: documentFilename(process.Title),
		PDF:      pdf,
	}, nil
}

func renderDocumentHTML(data documentData) (string, error) {
	var buf bytes.Buffer
	if err := documentTpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func progressLabel(process *db_models.LegalProcess) string {
	return strconv.Itoa(process.Progress) + "% (" + strconv.Itoa(process.CurrentStep) + "/" + strconv.Itoa(process.TotalSteps) + " pasos)"
}

var nonFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9]`)

func documentFilename(title string) string {
	return nonFilenameChars.ReplaceAllString(title, "_") + ".pdf"
}
