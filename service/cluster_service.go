package service

import (
	"github.com/ludo-technologies/pscan/domain"
	"github.com/ludo-technologies/pscan/internal/engine"
)

// ClusterServiceImpl implements domain.ClusterService, the service-layer
// seam between the CLI/MCP collaborators and internal/engine. It exists
// so callers depend on an interface, not the engine package directly -
// the same wrapping the teacher's service layer does around its use-case
// packages.
type ClusterServiceImpl struct{}

// NewClusterService creates a new graph clustering service.
func NewClusterService() *ClusterServiceImpl {
	return &ClusterServiceImpl{}
}

// Cluster validates req and runs the full pSCAN pipeline.
func (s *ClusterServiceImpl) Cluster(req *domain.ClusterRequest) (*domain.ClusterResponse, error) {
	return engine.Run(req)
}
