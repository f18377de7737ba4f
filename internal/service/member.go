package service

import (
	"errors"
	"sort"
	"strings"

	"familiaconnect/internal/domain"
	"familiaconnect/internal/repository"
)

// MemberService handles family membership
type MemberService struct {
	memberRepo repository.MemberRepository
}

// NewMemberService creates a new member service
func NewMemberService(memberRepo repository.MemberRepository) *MemberService {
	return &MemberService{memberRepo: memberRepo}
}

// Register creates the member record on first contact
func (s *MemberService) Register(userID int64, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.ErrEmptyMemberName
	}
	return s.memberRepo.EnsureMemberExists(userID, name)
}

// DisplayName returns the name used to match tasks for a user: the family
// role when set (Dad, Mom), otherwise the registered name
func (s *MemberService) DisplayName(userID int64) (string, error) {
	m, err := s.memberRepo.GetMember(userID)
	if err != nil {
		return "", err
	}
	if m.Role != "" {
		return m.Role, nil
	}
	return m.Name, nil
}

// GetMember returns the member for a user, nil if not registered
func (s *MemberService) GetMember(userID int64) (*domain.Member, error) {
	m, err := s.memberRepo.GetMember(userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	return m, err
}

// SetRole sets the family role of a member
func (s *MemberService) SetRole(userID int64, role string) error {
	role = strings.TrimSpace(role)
	if role == "" {
		return domain.ErrEmptyMemberName
	}
	return s.memberRepo.SetRole(userID, role)
}

// ListMembers returns every registered member
func (s *MemberService) ListMembers() ([]domain.Member, error) {
	return s.memberRepo.ListMembers()
}

// FamilyNames returns the distinct display names of registered members, sorted.
// These are the choices of the calendar member filter.
func (s *MemberService) FamilyNames() ([]string, error) {
	members, err := s.memberRepo.ListMembers()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(members))
	var names []string
	for _, m := range members {
		name := m.Name
		if m.Role != "" {
			name = m.Role
		}
		if key := strings.ToLower(name); !seen[key] {
			seen[key] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}
