package device

import "context"

type DeviceService interface {
	List(ctx context.Context) ([]Device, error)
	Create(ctx context.Context, req CreateDeviceRequest) (Device, error)
	Update(ctx context.Context, req UpdateDeviceRequest) (Device, error)
	Delete(ctx context.Context, id string) error
}
