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

type ExitFormService struct {
	exitFormRepository repositories.ExitFormRepositoryInterface
	fileStorage        filestorage.FileStorageInterface
	logger             *zap.Logger
}

func NewExitFormService(
	exitFormRepository repositories.ExitFormRepositoryInterface,
	fileStorage filestorage.FileStorageInterface,
	logger *zap.Logger,
) *ExitFormService {
	return &ExitFormService{
		exitFormRepository: exitFormRepository,
		fileStorage:        fileStorage,
		logger:             logger,
	}
}

func mapExitFormToDTO(form *entities.ExitForm) dto.ExitFormDTO {
	date := form.Date
	equipments := make([]dto.ShortEquipmentDTO, 0, len(form.Equipments))
	for _, equipment := range form.Equipments {
		equipments = append(equipments, dto.ShortEquipmentDTO{
			ID:           equipment.ID,
			Name:         equipment.Name,
			SerialNumber: equipment.SerialNumber,
		})
	}
	return dto.ExitFormDTO{
		ID:           form.ID,
		Reference:    form.Reference,
		Date:         dto.FormatDate(&date),
		Description:  form.Description,
		DocumentPath: form.DocumentPath,
		Status:       form.Status,
		Equipments:   equipments,
		CreatedAt:    dto.FormatTime(form.CreatedAt),
		UpdatedAt:    dto.FormatTime(form.UpdatedAt),
	}
}

func (s *ExitFormService) GetExitForms(ctx context.Context, filter types.Filter) ([]dto.ExitFormDTO, uint64, error) {
	forms, total, err := s.exitFormRepository.GetExitForms(ctx, filter)
	if err != nil {
		s.logger.Error("échec de la récupération des bons de sortie", zap.Error(err))
		return nil, 0, err
	}
	result := make([]dto.ExitFormDTO, 0, len(forms))
	for i := range forms {
		result = append(result, mapExitFormToDTO(&forms[i]))
	}
	return result, total, nil
}

func (s *ExitFormService) FindExitForm(ctx context.Context, id uint64) (*dto.ExitFormDTO, error) {
	form, err := s.exitFormRepository.FindExitForm(ctx, id)
	if err != nil {
		return nil, err
	}
	result := mapExitFormToDTO(form)
	return &result, nil
}

func (s *ExitFormService) CreateExitForm(ctx context.Context, payload dto.CreateExitFormDTO, document io.Reader, documentName string) (*dto.ExitFormDTO, error) {
	date, err := parseDate(payload.Date)
	if err != nil {
		return nil, err
	}
	form := entities.ExitForm{
		Reference:    payload.Reference,
		Date:         date,
		Description:  payload.Description,
		Status:       entities.ExitFormStatusPending,
		EquipmentIDs: payload.EquipmentIDs,
	}
	if document != nil {
		path, err := s.fileStorage.Save(document, documentName, "exit-forms")
		if err != nil {
			s.logger.Error("échec de l'enregistrement du document du bon de sortie", zap.Error(err))
			return nil, err
		}
		form.DocumentPath = &path
	}
	created, err := s.exitFormRepository.CreateExitForm(ctx, form)
	if err != nil {
		s.logger.Error("échec de la création du bon de sortie", zap.Error(err))
		return nil, err
	}
	s.logger.Info("bon de sortie créé", zap.Uint64("id", created.ID), zap.String("reference", created.Reference))
	result := mapExitFormToDTO(created)
	return &result, nil
}

func (s *ExitFormService) UpdateExitForm(ctx context.Context, id uint64, payload dto.UpdateExitFormDTO, document io.Reader, documentName string) (*dto.ExitFormDTO, error) {
	current, err := s.exitFormRepository.FindExitForm(ctx, id)
	if err != nil {
		return nil, err
	}
	if payload.Status != nil {
		if err := checkTransition(exitFormTransitions, current.Status, *payload.Status); err != nil {
			return nil, err
		}
	}
	date, err := parseDatePtr(payload.Date)
	if err != nil {
		return nil, err
	}
	form, err := s.exitFormRepository.UpdateExitForm(ctx, id, repositories.ExitFormUpdate{
		Reference:    payload.Reference,
		Date:         date,
		Description:  payload.Description,
		Status:       payload.Status,
		EquipmentIDs: payload.EquipmentIDs,
	})
	if err != nil {
		s.logger.Error("échec de la mise à jour du bon de sortie", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	if document != nil {
		path, err := s.fileStorage.Save(document, documentName, "exit-forms")
		if err != nil {
			return nil, err
		}
		if current.DocumentPath != nil {
			if err := s.fileStorage.Delete(*current.DocumentPath); err != nil {
				s.logger.Warn("échec de la suppression de l'ancien document", zap.Error(err))
			}
		}
		if err := s.exitFormRepository.SetDocumentPath(ctx, id, path); err != nil {
			return nil, err
		}
		form.DocumentPath = &path
	}
	result := mapExitFormToDTO(form)
	return &result, nil
}

func (s *ExitFormService) DeleteExitForm(ctx context.Context, id uint64) error {
	form, err := s.exitFormRepository.FindExitForm(ctx, id)
	if err != nil {
		return err
	}
	if err := s.exitFormRepository.DeleteExitForm(ctx, id); err != nil {
		s.logger.Error("échec de la suppression du bon de sortie", zap.Uint64("id", id), zap.Error(err))
		return err
	}
	if form.DocumentPath != nil {
		if err := s.fileStorage.Delete(*form.DocumentPath); err != nil {
			s.logger.Warn("document orphelin non supprimé", zap.String("path", *form.DocumentPath), zap.Error(err))
		}
	}
	return nil
}
