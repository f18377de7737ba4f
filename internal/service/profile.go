package service

import (
	"fmt"

	"familiaconnect/internal/domain"
	"familiaconnect/internal/repository"
)

// ProfileService serves the profile screen
type ProfileService struct {
	memberRepo    repository.MemberRepository
	emergencyRepo repository.EmergencyRepository
}

// NewProfileService creates a new profile service
func NewProfileService(memberRepo repository.MemberRepository, emergencyRepo repository.EmergencyRepository) *ProfileService {
	return &ProfileService{
		memberRepo:    memberRepo,
		emergencyRepo: emergencyRepo,
	}
}

// Profile returns the member record of a user
func (s *ProfileService) Profile(userID int64) (*domain.Member, error) {
	return s.memberRepo.GetMember(userID)
}

// ToggleSetting flips a profile setting and returns the updated member
func (s *ProfileService) ToggleSetting(userID int64, setting domain.Setting) (*domain.Member, error) {
	m, err := s.memberRepo.GetMember(userID)
	if err != nil {
		return nil, err
	}

	on, err := m.Enabled(setting)
	if err != nil {
		return nil, err
	}
	if err := s.memberRepo.SetSetting(userID, setting, !on); err != nil {
		return nil, fmt.Errorf("failed to save setting: %w", err)
	}

	return m, m.SetEnabled(setting, !on)
}

// EmergencyInfo returns the emergency contacts and medical notes
func (s *ProfileService) EmergencyInfo() (*domain.EmergencyInfo, error) {
	contacts, err := s.emergencyRepo.ListContacts()
	if err != nil {
		return nil, fmt.Errorf("failed to load emergency contacts: %w", err)
	}

	medical, err := s.emergencyRepo.ListMedicalInfo()
	if err != nil {
		return nil, fmt.Errorf("failed to load medical info: %w", err)
	}

	return &domain.EmergencyInfo{
		Contacts: contacts,
		Medical:  medical,
	}, nil
}
