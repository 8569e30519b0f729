package services

import (
	"github.com/aikidobw/seminar-api/internal/constants"
	"github.com/aikidobw/seminar-api/internal/logger"
	"github.com/aikidobw/seminar-api/internal/types/business"
	"go.uber.org/zap"
)

// ExamService decides whether an exam application on a registration is
// honored, and to which target grade.
type ExamService struct {
	logger *zap.Logger
}

// NewExamService creates a new exam service
func NewExamService() *ExamService {
	return &ExamService{
		logger: logger.Log,
	}
}

// ApplyExam advances the registration's exam grade from the registrant's
// current grade. Only kyu ranks are eligible; for dan ranks the exam flag
// is silently revoked rather than rejected with an error, and any existing
// exam grade is left untouched.
func (s *ExamService) ApplyExam(registration *business.Registration, currentGrade constants.Grade) {
	if !registration.Exam {
		return
	}

	if !currentGrade.IsKyu() {
		registration.Exam = false
		s.logger.Info("Revoked exam application for dan-ranked registrant",
			zap.String("registration_id", registration.ID.String()),
			zap.String("current_grade", currentGrade.Label()))
		return
	}

	target := currentGrade.Next()
	registration.ExamGrade = &target
}
