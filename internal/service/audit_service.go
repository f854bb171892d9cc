package service

import (
	"gdm-clinic/internal/domain/entity"
	"gdm-clinic/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditService records who changed what. Audit writes are best-effort and
// never fail the calling operation.
type AuditService interface {
	LogAction(db *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, details interface{})
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditService) LogAction(db *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, details interface{}) {
	metadata := entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
	}
	if details != nil {
		metadata["details"] = details
	}

	auditLog := &entity.AuditLog{
		UserID:   userID,
		Action:   action,
		Metadata: metadata,
	}

	if err := s.auditRepo.Create(db, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
	}
}
