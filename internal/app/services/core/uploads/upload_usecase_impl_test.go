package uploads

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"patient-records-service/internal/app/models"
	"patient-records-service/internal/app/services/core/patients"
	"patient-records-service/internal/app/services/core/records"
	"patient-records-service/internal/pkg/constvars"
	"patient-records-service/internal/pkg/dto/responses"
	"patient-records-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockBlobStorage struct {
	mock.Mock
}

func (m *MockBlobStorage) Put(ctx context.Context, objectKey, contentType string, content io.Reader, size int64) (string, error) {
	args := m.Called(ctx, objectKey, contentType, content, size)
	return args.String(0), args.Error(1)
}

func (m *MockBlobStorage) Driver() string {
	return constvars.BlobStorageDriverMinio
}

type stubVerification struct {
	session *models.VerificationSession
}

func (s *stubVerification) SubmitID(ctx context.Context, sessionID, rawID string) (*responses.VerificationState, error) {
	return nil, nil
}

func (s *stubVerification) Confirm(ctx context.Context, sessionID string) (*responses.VerificationState, error) {
	return nil, nil
}

func (s *stubVerification) Deny(ctx context.Context, sessionID string) (*responses.VerificationState, error) {
	return nil, nil
}

func (s *stubVerification) SubmitCode(ctx context.Context, sessionID, code string) (*responses.VerificationState, error) {
	return nil, nil
}

func (s *stubVerification) Resend(ctx context.Context, sessionID string) (*responses.VerificationState, error) {
	return nil, nil
}

func (s *stubVerification) Logout(ctx context.Context, sessionID string) error {
	return nil
}

func (s *stubVerification) Status(ctx context.Context, sessionID string) (*responses.VerificationState, error) {
	return nil, nil
}

func (s *stubVerification) AuthenticatedSession(ctx context.Context, sessionID string) (*models.VerificationSession, error) {
	if s.session == nil {
		return nil, exceptions.ErrNotAuthenticated(nil)
	}
	return s.session, nil
}

type failingAppendRepository struct {
	*patients.PatientMemoryRepository
}

func (r failingAppendRepository) AppendFolderItems(ctx context.Context, patientID string, items []models.FolderItem) error {
	return errors.New("write rejected")
}

const aliceID = "0211120351080"

func newUsecase(t *testing.T, storage *MockBlobStorage) (*uploadUsecase, *patients.PatientMemoryRepository) {
	t.Helper()
	memory := patients.NewPatientMemoryRepository(patients.SamplePatients(constvars.IdentifierSchemeNationalID))
	verification := &stubVerification{session: &models.VerificationSession{
		SessionID: "s1",
		Step:      models.StepAuthenticated,
		Candidate: &models.Patient{IDNumber: aliceID},
	}}

	usecase := NewUploadUsecase(verification, patients.NewPatientUsecase(memory, memory, zap.NewNop()), storage, zap.NewNop()).(*uploadUsecase)
	usecase.now = func() time.Time { return time.UnixMilli(1700000000000).UTC() }
	return usecase, memory
}

func pendingFile(name, contentType, body string) models.PendingFile {
	return models.PendingFile{
		FileName:    name,
		ContentType: contentType,
		Size:        int64(len(body)),
		Source:      models.UploadSourceFilePicker,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(body)), nil
		},
	}
}

func TestSubmit_SkipsFileWhoseStorageFaults(t *testing.T) {
	ctx := context.Background()
	storage := new(MockBlobStorage)
	usecase, memory := newUsecase(t, storage)

	storage.On("Put", ctx, "patient-documents/"+aliceID+"/1700000000000_one.pdf", "application/pdf", mock.Anything, int64(3)).Return("https://files/one.pdf", nil).Once()
	storage.On("Put", ctx, "patient-documents/"+aliceID+"/1700000000000_two.pdf", "application/pdf", mock.Anything, int64(3)).Return("", errors.New("bucket unavailable")).Once()
	storage.On("Put", ctx, "patient-documents/"+aliceID+"/1700000000000_three.pdf", "application/pdf", mock.Anything, int64(5)).Return("https://files/three.pdf", nil).Once()

	result, err := usecase.Submit(ctx, "s1", &models.PendingUpload{
		Files: []models.PendingFile{
			pendingFile("one.pdf", "application/pdf", "one"),
			pendingFile("two.pdf", "application/pdf", "two"),
			pendingFile("three.pdf", "application/pdf", "three"),
		},
		Title: "Referral letters",
		Type:  models.FolderItemTypeDocument,
		Notes: "from GP",
	})
	require.NoError(t, err)
	storage.AssertExpectations(t)
	assert.Equal(t, 2, result.UploadedCount)

	patient, err := memory.FindByID(ctx, aliceID)
	require.NoError(t, err)
	require.Len(t, patient.Folder, 7)

	added := patient.Folder[5:]
	assert.Equal(t, "one.pdf", added[0].FileName)
	assert.Equal(t, "https://files/one.pdf", added[0].Content)
	assert.Equal(t, "three.pdf", added[1].FileName)
	assert.Equal(t, int64(5), added[1].FileSize)
	for _, item := range added {
		assert.Equal(t, "Referral letters", item.Title)
		assert.Equal(t, "from GP", item.Notes)
		assert.Equal(t, models.FolderItemTypeDocument, item.Type)
		assert.Equal(t, "2023-11-14T22:13:20Z", item.UploadedAt)
	}

	require.Len(t, result.Records.Cards, 7)
	assert.Equal(t, models.CardKindLink, result.Records.Cards[6].Kind)
}

func TestSubmit_RejectsInvalidBatches(t *testing.T) {
	ctx := context.Background()
	storage := new(MockBlobStorage)
	usecase, _ := newUsecase(t, storage)

	_, err := usecase.Submit(ctx, "s1", &models.PendingUpload{Title: "Scan"})
	assert.True(t, exceptions.HasCode(err, exceptions.CodeUploadNoFiles))

	_, err = usecase.Submit(ctx, "s1", &models.PendingUpload{
		Files: []models.PendingFile{pendingFile("a.pdf", "application/pdf", "a")},
		Title: "   ",
	})
	assert.True(t, exceptions.HasCode(err, exceptions.CodeUploadTitleEmpty))

	camera := pendingFile("capture.jpg", "image/jpeg", "img")
	camera.Source = models.UploadSourceCamera
	_, err = usecase.Submit(ctx, "s1", &models.PendingUpload{
		Files: []models.PendingFile{pendingFile("a.pdf", "application/pdf", "a"), camera},
		Title: "Scan",
	})
	assert.True(t, exceptions.HasCode(err, exceptions.CodeUploadMixedSources))

	storage.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmit_RequiresAuthenticatedSession(t *testing.T) {
	storage := new(MockBlobStorage)
	usecase, _ := newUsecase(t, storage)
	usecase.VerificationUsecase = &stubVerification{}

	_, err := usecase.Submit(context.Background(), "s1", &models.PendingUpload{
		Files: []models.PendingFile{pendingFile("a.pdf", "application/pdf", "a")},
		Title: "Scan",
	})
	assert.True(t, exceptions.HasCode(err, exceptions.CodeNotAuthenticated))
}

func TestSubmit_AllFilesFailingAppendsNothing(t *testing.T) {
	ctx := context.Background()
	storage := new(MockBlobStorage)
	usecase, memory := newUsecase(t, storage)

	storage.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("down"))

	_, err := usecase.Submit(ctx, "s1", &models.PendingUpload{
		Files: []models.PendingFile{pendingFile("a.pdf", "application/pdf", "a")},
		Title: "Scan",
	})
	assert.True(t, exceptions.HasCode(err, exceptions.CodeUploadNothingStored))

	patient, _ := memory.FindByID(ctx, aliceID)
	assert.Len(t, patient.Folder, 5)
}

func TestSubmit_AppendFailureLeavesFolderUnchanged(t *testing.T) {
	ctx := context.Background()
	storage := new(MockBlobStorage)
	memory := patients.NewPatientMemoryRepository(patients.SamplePatients(constvars.IdentifierSchemeNationalID))
	primary := failingAppendRepository{memory}
	verification := &stubVerification{session: &models.VerificationSession{
		Step:      models.StepAuthenticated,
		Candidate: &models.Patient{IDNumber: aliceID},
	}}
	usecase := NewUploadUsecase(verification, patients.NewPatientUsecase(primary, memory, zap.NewNop()), storage, zap.NewNop())

	storage.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("https://files/a.pdf", nil)

	_, err := usecase.Submit(ctx, "s1", &models.PendingUpload{
		Files: []models.PendingFile{pendingFile("a.pdf", "application/pdf", "a")},
		Title: "Scan",
	})
	assert.True(t, exceptions.HasCode(err, exceptions.CodeAppendFolderItems))

	patient, _ := memory.FindByID(ctx, aliceID)
	assert.Len(t, patient.Folder, 5)
}

func TestSubmit_UploadedItemRendersLikeSeedItem(t *testing.T) {
	ctx := context.Background()
	storage := new(MockBlobStorage)
	usecase, _ := newUsecase(t, storage)

	seed := patients.SamplePatients(constvars.IdentifierSchemeNationalID)[0]
	seedItem := seed.Folder[2]
	require.Equal(t, models.FolderItemTypeImage, seedItem.Type)

	storage.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(seedItem.Content, nil).Once()

	result, err := usecase.Submit(ctx, "s1", &models.PendingUpload{
		Files: []models.PendingFile{pendingFile("xray.png", "image/png", "png")},
		Title: seedItem.Title,
		Type:  seedItem.Type,
	})
	require.NoError(t, err)

	uploadedCard := result.Records.Cards[len(result.Records.Cards)-1]
	uploadedCard.UploadedAt = ""
	seedCard := records.Render(&models.Patient{Folder: []models.FolderItem{seedItem}}).Cards[0]
	assert.Equal(t, seedCard, uploadedCard)
}

func TestPreviews(t *testing.T) {
	previews := Previews([]models.PendingFile{
		{FileName: "scan.jpg", ContentType: "image/jpeg", Size: 2 * 1024 * 1024},
		{FileName: "report.pdf", ContentType: "application/pdf", Size: 1536 * 1024},
	})

	require.Len(t, previews, 2)
	assert.Equal(t, models.FilePreview{FileName: "scan.jpg", SizeMB: "2.00", Kind: "image"}, previews[0])
	assert.Equal(t, models.FilePreview{FileName: "report.pdf", SizeMB: "1.50", Kind: "document"}, previews[1])
}
