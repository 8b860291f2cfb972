package services

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	appContext "github.com/alphabatem/common/context"
	"github.com/google/uuid"

	"github.com/avanee-labs/guarani_api/dto"
	"github.com/avanee-labs/guarani_api/shared"
)

// MediaService validates uploads, stores them in object storage and
// writes the resulting URL onto the owning row.
type MediaService struct {
	appContext.DefaultService
	db    *PostgresService
	minio *MinIOService
}

const MEDIA_SVC = "media_svc"

const maxUploadSize = 25 << 20 // 25 MiB

var audioExtensions = map[string]string{
	".mp3": "audio/mpeg",
	".wav": "audio/wav",
	".ogg": "audio/ogg",
	".m4a": "audio/mp4",
}

var imageExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

func (svc MediaService) Id() string {
	return MEDIA_SVC
}

func (svc *MediaService) Start() error {
	svc.db = svc.Service(POSTGRES_SVC).(*PostgresService)
	svc.minio = svc.Service(MINIO_SVC).(*MinIOService)
	return nil
}

// UploadGlossaryAudio stores a pronunciation clip and attaches its URL
// to the glossary term.
func (svc *MediaService) UploadGlossaryAudio(termID string, file *multipart.FileHeader) (*dto.MediaUploadResponse, error) {
	term, err := svc.db.GetGlossaryTerm(termID)
	if err != nil {
		return nil, err
	}

	resp, err := svc.store("glossary/audio", file, audioExtensions)
	if err != nil {
		return nil, err
	}

	term.AudioURL = resp.URL
	if err := svc.db.UpdateGlossaryTerm(term); err != nil {
		return nil, err
	}

	return resp, nil
}

// UploadLessonCover stores a cover image and attaches its URL to the
// lesson.
func (svc *MediaService) UploadLessonCover(lessonID string, file *multipart.FileHeader) (*dto.MediaUploadResponse, error) {
	lesson, err := svc.db.GetLesson(lessonID)
	if err != nil {
		return nil, err
	}

	resp, err := svc.store("lessons/covers", file, imageExtensions)
	if err != nil {
		return nil, err
	}

	lesson.CoverImageURL = resp.URL
	if err := svc.db.UpdateLesson(lesson); err != nil {
		return nil, err
	}

	return resp, nil
}

// UploadContentBlockMedia stores audio or an image for a content block
// depending on the file extension.
func (svc *MediaService) UploadContentBlockMedia(blockID string, file *multipart.FileHeader) (*dto.MediaUploadResponse, error) {
	block, err := svc.db.GetLessonContent(blockID)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if _, ok := audioExtensions[ext]; ok {
		resp, err := svc.store("lessons/audio", file, audioExtensions)
		if err != nil {
			return nil, err
		}
		block.AudioURL = resp.URL
		if err := svc.db.UpdateLessonContent(block); err != nil {
			return nil, err
		}
		return resp, nil
	}

	if _, ok := imageExtensions[ext]; ok {
		resp, err := svc.store("lessons/images", file, imageExtensions)
		if err != nil {
			return nil, err
		}
		block.ImageURL = resp.URL
		if err := svc.db.UpdateLessonContent(block); err != nil {
			return nil, err
		}
		return resp, nil
	}

	return nil, shared.NewBadRequestError(fmt.Errorf("unsupported file extension %q", ext), "Unsupported media type")
}

func (svc *MediaService) store(prefix string, file *multipart.FileHeader, allowed map[string]string) (*dto.MediaUploadResponse, error) {
	if file.Size <= 0 || file.Size > maxUploadSize {
		return nil, shared.NewBadRequestError(fmt.Errorf("file size %d out of range", file.Size), "File too large")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	contentType, ok := allowed[ext]
	if !ok {
		return nil, shared.NewBadRequestError(fmt.Errorf("unsupported file extension %q", ext), "Unsupported media type")
	}

	src, err := file.Open()
	if err != nil {
		return nil, shared.NewBadRequestError(err, "Failed to read upload")
	}
	defer src.Close()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to name upload")
	}
	objectName := fmt.Sprintf("%s/%s%s", prefix, id.String(), ext)

	if _, err := svc.minio.UploadFile(objectName, src, file.Size, contentType); err != nil {
		return nil, shared.NewInternalError(err, "Failed to store upload")
	}

	return &dto.MediaUploadResponse{
		URL:         svc.minio.PublicURL(objectName),
		ObjectName:  objectName,
		Size:        file.Size,
		ContentType: contentType,
	}, nil
}
