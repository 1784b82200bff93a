package network

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/network"
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/pkg/validator"
)

type NetworkServiceImpl struct {
	network.NetworkRepository
}

func NewNetworkService(repo network.NetworkRepository) network.NetworkService {
	return &NetworkServiceImpl{NetworkRepository: repo}
}

func (s *NetworkServiceImpl) Status(ctx context.Context) (network.Status, error) {
	status, err := s.NetworkRepository.Status(ctx)
	if err != nil {
		return network.Status{}, fmt.Errorf("failed to get network status: %w", err)
	}
	return status, nil
}

func (s *NetworkServiceImpl) Logs(ctx context.Context, deviceID string) ([]network.Log, error) {
	if deviceID == "" {
		return s.NetworkRepository.Logs(ctx)
	}
	if !validator.IsValidCode(deviceID) {
		return nil, validator.ValidationErrors{{Field: "device_id", Message: "invalid device_id"}}
	}
	return s.NetworkRepository.DeviceLogs(ctx, deviceID)
}
