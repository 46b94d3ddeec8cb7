package infra

import (
	"fmt"
	"os"

	"github.com/casbin/casbin/v2"
)

// NewEnforcer loads the RBAC model from disk. The model file ships with the
// binary; a missing path is a deployment mistake worth a clear error.
func NewEnforcer(modelPath string) (*casbin.Enforcer, error) {
	if _, err := os.Stat(modelPath); err != nil {
		return nil, fmt.Errorf("casbin model %s: %w", modelPath, err)
	}
	return casbin.NewEnforcer(modelPath)
}
