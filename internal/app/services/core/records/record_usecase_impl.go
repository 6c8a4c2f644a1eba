package records

import (
	"context"
	"embed"
	"html/template"
	"io"
	"patient-records-service/internal/app/contracts"
	"patient-records-service/internal/app/models"
	"patient-records-service/internal/pkg/constvars"
	"patient-records-service/internal/pkg/exceptions"
	"strings"
	"time"

	"go.uber.org/zap"
)

//go:embed templates/records.html
var templateFS embed.FS

var recordsTemplate = template.Must(template.New("records.html").Funcs(template.FuncMap{
	"upper": func(t models.FolderItemType) string { return strings.ToUpper(string(t)) },
	"href":  safeHref,
}).ParseFS(templateFS, "templates/records.html"))

type recordUsecase struct {
	VerificationUsecase contracts.VerificationUsecase
	PatientUsecase      contracts.PatientUsecase
	Log                 *zap.Logger

	now func() time.Time
}

func NewRecordUsecase(verificationUsecase contracts.VerificationUsecase, patientUsecase contracts.PatientUsecase, logger *zap.Logger) contracts.RecordUsecase {
	return &recordUsecase{
		VerificationUsecase: verificationUsecase,
		PatientUsecase:      patientUsecase,
		Log:                 logger,
		now:                 time.Now,
	}
}

// GetRecords holds the response until the session's reveal time so the
// verification confirmation stays visible, then re-reads the patient.
func (uc *recordUsecase) GetRecords(ctx context.Context, sessionID string) (*models.RecordView, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("recordUsecase.GetRecords called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	session, err := uc.VerificationUsecase.AuthenticatedSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.RecordsVisibleAt != nil {
		if wait := session.RecordsVisibleAt.Sub(uc.now()); wait > 0 {
			timer := time.NewTimer(wait)
			defer timer.Stop()
			select {
			case <-ctx.Done():
				return nil, exceptions.ErrServerDeadlineExceeded(ctx.Err())
			case <-timer.C:
			}
		}
	}

	patient, err := uc.PatientUsecase.Lookup(ctx, session.Candidate.IDNumber)
	if err != nil {
		return nil, err
	}

	view := Render(patient)
	uc.Log.Info("recordUsecase.GetRecords succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingItemsCountKey, len(view.Cards)),
	)
	return view, nil
}

func (uc *recordUsecase) RenderHTML(w io.Writer, view *models.RecordView) error {
	if err := recordsTemplate.Execute(w, view); err != nil {
		return exceptions.ErrRenderTemplate(err)
	}
	return nil
}

// safeHref points "blob:" references at the blob download route, which sits
// next to the records route. Other references are left to the template's
// URL filter.
func safeHref(ref string) string {
	if strings.HasPrefix(ref, constvars.BlobReferenceHead) {
		return "../blobs/" + strings.TrimPrefix(ref, constvars.BlobReferenceHead)
	}
	return ref
}
