// Package verification implements the identity-verification flow.
//
// Submissions are auto-approved: the record is stamped approved on arrival
// and the current user's verified flag is forced through the session update
// path. The stored list supports the small administrative helpers the web
// client's admin pages call (lookup, status change, notes).
package verification

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/mxtm001/MXTMCRYPTOINVESTIMENTOS/internal/common"
	"github.com/mxtm001/MXTMCRYPTOINVESTIMENTOS/internal/config"
	"github.com/mxtm001/MXTMCRYPTOINVESTIMENTOS/internal/logging"
	"github.com/mxtm001/MXTMCRYPTOINVESTIMENTOS/internal/models"
	"github.com/mxtm001/MXTMCRYPTOINVESTIMENTOS/internal/session"
	"github.com/mxtm001/MXTMCRYPTOINVESTIMENTOS/internal/storage"
)

// SubmissionData carries the documents supplied by the user. Image fields
// are opaque references; the backend never decodes them.
type SubmissionData struct {
	DocumentType   string
	DocumentNumber string
	Country        string
	FrontImage     string
	BackImage      string
	SelfieImage    string
}

// SubmissionResult is the outcome of Submit.
type SubmissionResult struct {
	Success bool
	Message string
}

// Service owns the durable verification list.
type Service struct {
	mu      sync.Mutex
	session *session.Manager
	store   storage.Store
	cfg     *config.Config
	logger  logging.Logger
}

func NewService(sess *session.Manager, store storage.Store, cfg *config.Config, logger logging.Logger) *Service {
	return &Service{
		session: sess,
		store:   store,
		cfg:     cfg,
		logger:  logger.With("component", "verification"),
	}
}

// Submit records a verification for the current user and approves it on
// the spot. The current user's verified flag is forced as a side effect.
func (s *Service) Submit(ctx context.Context, userEmail, userName string, data SubmissionData) SubmissionResult {
	user := s.session.Current()
	if user == nil {
		return SubmissionResult{Success: false, Message: "User not authenticated"}
	}

	today := time.Now().Format(time.DateOnly)
	record := models.VerificationRecord{
		ID:             fmt.Sprintf("ver_%d_%s", time.Now().UnixMilli(), common.MakeIDSuffix()),
		UserID:         user.ID,
		UserEmail:      userEmail,
		UserName:       userName,
		DocumentType:   data.DocumentType,
		DocumentNumber: data.DocumentNumber,
		Country:        data.Country,
		FrontImage:     data.FrontImage,
		BackImage:      data.BackImage,
		SelfieImage:    data.SelfieImage,
		Status:         models.VerificationStatusApproved,
		SubmittedDate:  today,
		ApprovedDate:   today,
		AdminNotes:     s.cfg.AutoApproveNote,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.loadList(ctx)
	if err != nil {
		s.logger.Error(ctx, "failed to load verifications", "error", err)
		return SubmissionResult{Success: false, Message: "Failed to submit verification. Please try again."}
	}

	list = append(list, record)
	if err := s.saveList(ctx, list); err != nil {
		s.logger.Error(ctx, "failed to save verifications", "error", err)
		return SubmissionResult{Success: false, Message: "Failed to submit verification. Please try again."}
	}

	verified := true
	s.session.UpdateCurrentUser(ctx, session.UserUpdate{IsVerified: &verified})

	s.logger.Info(ctx, "verification auto-approved", "id", record.ID, "email", userEmail)
	return SubmissionResult{Success: true, Message: "Verification submitted and approved successfully!"}
}

// List returns all stored verification records. Internal failures are
// logged and reported as an empty list.
func (s *Service) List(ctx context.Context) []models.VerificationRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.loadList(ctx)
	if err != nil {
		s.logger.Warn(ctx, "failed to load verifications", "error", err)
		return nil
	}
	return list
}

// ByID returns the record with the given id, or (nil, nil) when absent.
func (s *Service) ByID(ctx context.Context, id string) (*models.VerificationRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.loadList(ctx)
	if err != nil {
		return nil, err
	}

	for i := range list {
		if list[i].ID == id {
			return &list[i], nil
		}
	}
	return nil, nil
}

// UpdateStatus sets the status of the record with the given id, stamping
// the matching adjudication date. Unknown ids yield common.ErrorNotFound.
func (s *Service) UpdateStatus(ctx context.Context, id string, status models.VerificationStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.loadList(ctx)
	if err != nil {
		return err
	}

	for i := range list {
		if list[i].ID != id {
			continue
		}
		list[i].Status = status
		today := time.Now().Format(time.DateOnly)
		switch status {
		case models.VerificationStatusApproved:
			list[i].ApprovedDate = today
		case models.VerificationStatusRejected:
			list[i].RejectedDate = today
		}
		return s.saveList(ctx, list)
	}

	return common.ErrorNotFound
}

// UpdateNotes replaces the admin notes of the record with the given id.
// Unknown ids yield common.ErrorNotFound.
func (s *Service) UpdateNotes(ctx context.Context, id, notes string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.loadList(ctx)
	if err != nil {
		return err
	}

	for i := range list {
		if list[i].ID != id {
			continue
		}
		list[i].AdminNotes = notes
		return s.saveList(ctx, list)
	}

	return common.ErrorNotFound
}

func (s *Service) loadList(ctx context.Context) ([]models.VerificationRecord, error) {
	raw, err := s.store.Get(ctx, storage.KeyUserVerifications)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var list []models.VerificationRecord
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *Service) saveList(ctx context.Context, list []models.VerificationRecord) error {
	encoded, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, storage.KeyUserVerifications, encoded)
}
