package attachmentshandler

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	log "github.com/sirupsen/logrus"
	attachmentstore "request-mesh/lib/attachments/store"
	requeststore "request-mesh/lib/requests/store"
	"request-mesh/models"
	requestapimodels "request-mesh/models/api/request"
	dbmodels "request-mesh/models/db"
)

type Provider interface {
	Upload(ctx context.Context, requestID, fileName, contentType string, file []byte) (id string, err error)
	List(requestID string) (list []requestapimodels.AttachmentView, err error)
	Download(ctx context.Context, attachmentID string) (rec *dbmodels.RequestAttachment, file []byte, err error)
}

var Instance Provider

func NewHandler(s3Client *minio.Client, bucketName string, store attachmentstore.Provider, reqStore requeststore.Provider) Provider {
	Instance = impl{
		s3Client:   s3Client,
		bucketName: bucketName,
		store:      store,
		reqStore:   reqStore,
	}
	return Instance
}

type impl struct {
	s3Client   *minio.Client
	bucketName string
	store      attachmentstore.Provider
	reqStore   requeststore.Provider
}

func (i impl) Upload(ctx context.Context, requestID, fileName, contentType string, file []byte) (id string, err error) {
	logger := log.
		WithField("rec_id", requestID).
		WithField("file_name", fileName)
	request, err := i.reqStore.GetByID(requestID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения заявки")
		return "", err
	}
	if request == nil {
		return "", models.ErrRequestNotFound
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	rec := dbmodels.RequestAttachment{
		RequestID:   requestID,
		FileName:    fileName,
		ContentType: contentType,
		Size:        int64(len(file)),
	}
	id, err = i.store.Save(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения метаданных файла")
		return "", err
	}
	_, err = i.s3Client.PutObject(ctx, i.bucketName, objectName(requestID, id), bytes.NewReader(file), int64(len(file)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		logger.WithError(err).Error("ошибка загрузки файла в хранилище")
		return "", err
	}
	logger.Info("файл заявки загружен")
	return id, nil
}

func (i impl) List(requestID string) (list []requestapimodels.AttachmentView, err error) {
	recList, err := i.store.ListByRequest(requestID)
	if err != nil {
		log.
			WithField("rec_id", requestID).
			WithError(err).
			Error("ошибка получения списка файлов")
		return nil, err
	}
	result := make([]requestapimodels.AttachmentView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, requestapimodels.AttachmentConvert(rec))
	}
	return result, nil
}

func (i impl) Download(ctx context.Context, attachmentID string) (rec *dbmodels.RequestAttachment, file []byte, err error) {
	rec, err = i.store.GetByID(attachmentID)
	if err != nil {
		return nil, nil, err
	}
	if rec == nil {
		return nil, nil, models.ErrRequestNotFound
	}
	obj, err := i.s3Client.GetObject(ctx, i.bucketName, objectName(rec.RequestID, rec.ID), minio.GetObjectOptions{})
	if err != nil {
		return nil, nil, err
	}
	defer obj.Close()
	file, err = io.ReadAll(obj)
	if err != nil {
		return nil, nil, err
	}
	return rec, file, nil
}

func objectName(requestID, attachmentID string) string {
	return fmt.Sprintf("%s/%s", requestID, attachmentID)
}
