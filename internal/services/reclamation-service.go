package services

import (
	"context"
	"io"

	"hospital-system/internal/dto"
	"hospital-system/internal/entities"
	"hospital-system/internal/repositories"
	"hospital-system/pkg/filestorage"
	"hospital-system/pkg/types"

	"go.uber.org/zap"
)

const (
	reclamationActionCreated       = "création"
	reclamationActionStatusChanged = "changement de statut"
)

type ReclamationService struct {
	reclamationRepository repositories.ReclamationRepositoryInterface
	fileStorage           filestorage.FileStorageInterface
	logger                *zap.Logger
}

func NewReclamationService(
	reclamationRepository repositories.ReclamationRepositoryInterface,
	fileStorage filestorage.FileStorageInterface,
	logger *zap.Logger,
) *ReclamationService {
	return &ReclamationService{
		reclamationRepository: reclamationRepository,
		fileStorage:           fileStorage,
		logger:                logger,
	}
}

func mapReclamationToDTO(reclamation *entities.Reclamation) dto.ReclamationDTO {
	result := dto.ReclamationDTO{
		ID:          reclamation.ID,
		Title:       reclamation.Title,
		Description: reclamation.Description,
		Equipment:   reclamation.Equipment,
		Type:        reclamation.Type,
		Priority:    reclamation.Priority,
		Status:      reclamation.Status,
		CreatorID:   reclamation.CreatorID,
		CreatedAt:   dto.FormatTime(reclamation.CreatedAt),
		UpdatedAt:   dto.FormatTime(reclamation.UpdatedAt),
	}
	if reclamation.Department != nil {
		result.Department = dto.ShortDepartmentDTO{ID: reclamation.Department.ID, Name: reclamation.Department.Name}
	}
	return result
}

func (s *ReclamationService) GetReclamations(ctx context.Context, filter types.Filter) ([]dto.ReclamationDTO, uint64, error) {
	reclamations, total, err := s.reclamationRepository.GetReclamations(ctx, filter)
	if err != nil {
		s.logger.Error("échec de la récupération des réclamations", zap.Error(err))
		return nil, 0, err
	}
	result := make([]dto.ReclamationDTO, 0, len(reclamations))
	for i := range reclamations {
		result = append(result, mapReclamationToDTO(&reclamations[i]))
	}
	return result, total, nil
}

// GetDepartmentReclamations épingle le filtre sur un service quel que soit
// ce que le client a mis dans la query string.
func (s *ReclamationService) GetDepartmentReclamations(ctx context.Context, departmentID uint64, filter types.Filter) ([]dto.ReclamationDTO, uint64, error) {
	if filter.Filter == nil {
		filter.Filter = map[string]interface{}{}
	}
	filter.Filter["department_id"] = departmentID
	return s.GetReclamations(ctx, filter)
}

func (s *ReclamationService) FindReclamation(ctx context.Context, id uint64) (*dto.ReclamationDTO, error) {
	reclamation, err := s.reclamationRepository.FindReclamation(ctx, id)
	if err != nil {
		return nil, err
	}
	result := mapReclamationToDTO(reclamation)
	return &result, nil
}

func (s *ReclamationService) CreateReclamation(ctx context.Context, payload dto.CreateReclamationDTO, creatorID *uint64) (*dto.ReclamationDTO, error) {
	reclamation, err := s.reclamationRepository.CreateReclamation(ctx, entities.Reclamation{
		Title:        payload.Title,
		Description:  payload.Description,
		Equipment:    payload.Equipment,
		DepartmentID: payload.DepartmentID,
		Type:         payload.Type,
		Priority:     payload.Priority,
		Status:       entities.ReclamationStatusPending,
		CreatorID:    creatorID,
	})
	if err != nil {
		s.logger.Error("échec de la création de la réclamation", zap.Error(err))
		return nil, err
	}
	status := reclamation.Status
	if err := s.reclamationRepository.CreateHistoryEntry(ctx, entities.ReclamationHistory{
		ReclamationID: reclamation.ID,
		UserID:        creatorID,
		Action:        reclamationActionCreated,
		NewStatus:     &status,
	}); err != nil {
		s.logger.Warn("échec de l'écriture de l'historique", zap.Uint64("reclamation_id", reclamation.ID), zap.Error(err))
	}
	s.logger.Info("réclamation créée", zap.Uint64("id", reclamation.ID), zap.String("title", reclamation.Title))
	result := mapReclamationToDTO(reclamation)
	return &result, nil
}

func (s *ReclamationService) UpdateReclamation(ctx context.Context, id uint64, payload dto.UpdateReclamationDTO, userID *uint64) (*dto.ReclamationDTO, error) {
	current, err := s.reclamationRepository.FindReclamation(ctx, id)
	if err != nil {
		return nil, err
	}
	statusChanged := payload.Status != nil && *payload.Status != current.Status
	if payload.Status != nil {
		if err := checkTransition(reclamationTransitions, current.Status, *payload.Status); err != nil {
			return nil, err
		}
	}
	reclamation, err := s.reclamationRepository.UpdateReclamation(ctx, id, payload)
	if err != nil {
		s.logger.Error("échec de la mise à jour de la réclamation", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	if statusChanged {
		oldStatus := current.Status
		if err := s.reclamationRepository.CreateHistoryEntry(ctx, entities.ReclamationHistory{
			ReclamationID: id,
			UserID:        userID,
			Action:        reclamationActionStatusChanged,
			OldStatus:     &oldStatus,
			NewStatus:     payload.Status,
		}); err != nil {
			s.logger.Warn("échec de l'écriture de l'historique", zap.Uint64("reclamation_id", id), zap.Error(err))
		}
	}
	result := mapReclamationToDTO(reclamation)
	return &result, nil
}

func (s *ReclamationService) DeleteReclamation(ctx context.Context, id uint64) error {
	attachments, err := s.reclamationRepository.GetAttachments(ctx, id)
	if err != nil {
		return err
	}
	if err := s.reclamationRepository.DeleteReclamation(ctx, id); err != nil {
		s.logger.Error("échec de la suppression de la réclamation", zap.Uint64("id", id), zap.Error(err))
		return err
	}
	for _, attachment := range attachments {
		if err := s.fileStorage.Delete(attachment.FilePath); err != nil {
			s.logger.Warn("pièce jointe orpheline non supprimée", zap.String("path", attachment.FilePath), zap.Error(err))
		}
	}
	return nil
}

func mapCommentToDTO(comment *entities.ReclamationComment) dto.ReclamationCommentDTO {
	result := dto.ReclamationCommentDTO{
		ID:            comment.ID,
		ReclamationID: comment.ReclamationID,
		Content:       comment.Content,
		CreatedAt:     dto.FormatTime(comment.CreatedAt),
	}
	if comment.Author != nil {
		result.Author = dto.ShortUserDTO{
			ID:        comment.Author.ID,
			FirstName: comment.Author.FirstName,
			LastName:  comment.Author.LastName,
		}
	}
	return result
}

func (s *ReclamationService) AddComment(ctx context.Context, reclamationID, authorID uint64, payload dto.CreateReclamationCommentDTO) (*dto.ReclamationCommentDTO, error) {
	if _, err := s.reclamationRepository.FindReclamation(ctx, reclamationID); err != nil {
		return nil, err
	}
	comment, err := s.reclamationRepository.CreateComment(ctx, entities.ReclamationComment{
		ReclamationID: reclamationID,
		AuthorID:      authorID,
		Content:       payload.Content,
	})
	if err != nil {
		s.logger.Error("échec de l'ajout du commentaire", zap.Uint64("reclamation_id", reclamationID), zap.Error(err))
		return nil, err
	}
	result := mapCommentToDTO(comment)
	return &result, nil
}

func (s *ReclamationService) GetComments(ctx context.Context, reclamationID uint64) ([]dto.ReclamationCommentDTO, error) {
	comments, err := s.reclamationRepository.GetComments(ctx, reclamationID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ReclamationCommentDTO, 0, len(comments))
	for i := range comments {
		result = append(result, mapCommentToDTO(&comments[i]))
	}
	return result, nil
}

func (s *ReclamationService) GetHistory(ctx context.Context, reclamationID uint64) ([]dto.ReclamationHistoryDTO, error) {
	history, err := s.reclamationRepository.GetHistory(ctx, reclamationID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ReclamationHistoryDTO, 0, len(history))
	for _, entry := range history {
		result = append(result, dto.ReclamationHistoryDTO{
			ID:            entry.ID,
			ReclamationID: entry.ReclamationID,
			UserID:        entry.UserID,
			Action:        entry.Action,
			OldStatus:     entry.OldStatus,
			NewStatus:     entry.NewStatus,
			CreatedAt:     dto.FormatTime(entry.CreatedAt),
		})
	}
	return result, nil
}

func mapAttachmentToDTO(attachment *entities.Attachment) dto.AttachmentDTO {
	return dto.AttachmentDTO{
		ID:            attachment.ID,
		ReclamationID: attachment.ReclamationID,
		UploaderID:    attachment.UploaderID,
		FileName:      attachment.FileName,
		FilePath:      attachment.FilePath,
		FileSize:      attachment.FileSize,
		CreatedAt:     dto.FormatTime(attachment.CreatedAt),
	}
}

func (s *ReclamationService) AddAttachment(ctx context.Context, reclamationID, uploaderID uint64, file io.Reader, fileName string, fileSize int64) (*dto.AttachmentDTO, error) {
	if _, err := s.reclamationRepository.FindReclamation(ctx, reclamationID); err != nil {
		return nil, err
	}
	path, err := s.fileStorage.Save(file, fileName, "reclamations")
	if err != nil {
		s.logger.Error("échec de l'enregistrement de la pièce jointe", zap.Error(err))
		return nil, err
	}
	attachment, err := s.reclamationRepository.CreateAttachment(ctx, entities.Attachment{
		ReclamationID: reclamationID,
		UploaderID:    uploaderID,
		FileName:      fileName,
		FilePath:      path,
		FileSize:      fileSize,
	})
	if err != nil {
		if deleteErr := s.fileStorage.Delete(path); deleteErr != nil {
			s.logger.Warn("fichier orphelin non supprimé", zap.String("path", path), zap.Error(deleteErr))
		}
		return nil, err
	}
	result := mapAttachmentToDTO(attachment)
	return &result, nil
}

func (s *ReclamationService) GetAttachments(ctx context.Context, reclamationID uint64) ([]dto.AttachmentDTO, error) {
	attachments, err := s.reclamationRepository.GetAttachments(ctx, reclamationID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.AttachmentDTO, 0, len(attachments))
	for i := range attachments {
		result = append(result, mapAttachmentToDTO(&attachments[i]))
	}
	return result, nil
}

func (s *ReclamationService) DeleteAttachment(ctx context.Context, id uint64) error {
	attachment, err := s.reclamationRepository.FindAttachment(ctx, id)
	if err != nil {
		return err
	}
	if err := s.reclamationRepository.DeleteAttachment(ctx, id); err != nil {
		return err
	}
	if err := s.fileStorage.Delete(attachment.FilePath); err != nil {
		s.logger.Warn("fichier non supprimé", zap.String("path", attachment.FilePath), zap.Error(err))
	}
	return nil
}
