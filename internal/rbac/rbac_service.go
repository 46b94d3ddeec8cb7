package rbac

import (
	"sync"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	LoadSalonPolicy(salonID string) error
	Enforce(req EnforceRequest) (bool, error)
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	mu       sync.Mutex
}

func NewService(repo Repository, enforcer *casbin.Enforcer) Service {
	return &service{
		repo:     repo,
		enforcer: enforcer,
	}
}

func (s *service) LoadSalonPolicy(salonID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadSalonPolicyUnlocked(salonID)
}

func (s *service) loadSalonPolicyUnlocked(salonID string) error {
	s.enforcer.ClearPolicy()

	userRoles, err := s.repo.GetUserRoles(salonID)
	if err != nil {
		return err
	}

	for _, ur := range userRoles {
		if _, err := s.enforcer.AddGroupingPolicy(ur.UserID, ur.RoleID, salonID); err != nil {
			return err
		}
	}

	rolePerms, err := s.repo.GetRolePermissions(salonID)
	if err != nil {
		return err
	}
	zap.L().Debug("rbac policy loaded",
		zap.String("salon_id", salonID),
		zap.Int("user_roles", len(userRoles)),
		zap.Int("role_permissions", len(rolePerms)),
	)

	for _, rp := range rolePerms {
		if _, err := s.enforcer.AddPolicy(rp.RoleID, salonID, rp.Resource, rp.Action); err != nil {
			return err
		}
	}

	return nil
}

func (s *service) Enforce(req EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadSalonPolicyUnlocked(req.SalonID); err != nil {
		return false, err
	}

	return s.enforcer.Enforce(req.UserID, req.SalonID, req.Resource, req.Action)
}
