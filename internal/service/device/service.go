package device

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/device"
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/pkg/validator"
)

type DeviceServiceImpl struct {
	deviceRepo device.DeviceRepository
}

func NewDeviceService(deviceRepo device.DeviceRepository) device.DeviceService {
	return &DeviceServiceImpl{deviceRepo: deviceRepo}
}

func (s *DeviceServiceImpl) List(ctx context.Context) ([]device.Device, error) {
	devices, err := s.deviceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}
	return devices, nil
}

func (s *DeviceServiceImpl) Create(ctx context.Context, req device.CreateDeviceRequest) (device.Device, error) {
	if err := req.Validate(); err != nil {
		return device.Device{}, err
	}
	return s.deviceRepo.Create(ctx, req)
}

func (s *DeviceServiceImpl) Update(ctx context.Context, req device.UpdateDeviceRequest) (device.Device, error) {
	if err := req.Validate(); err != nil {
		return device.Device{}, err
	}
	return s.deviceRepo.Update(ctx, req)
}

func (s *DeviceServiceImpl) Delete(ctx context.Context, id string) error {
	if !validator.IsValidCode(id) {
		return validator.ValidationErrors{{Field: "id", Message: "invalid device id"}}
	}
	return s.deviceRepo.Delete(ctx, id)
}
