package restapi

import (
	"context"
	"net/http"

	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/device"
)

type deviceRepositoryImpl struct {
	client *Client
}

func NewDeviceRepository(client *Client) device.DeviceRepository {
	return &deviceRepositoryImpl{client: client}
}

func (r *deviceRepositoryImpl) List(ctx context.Context) ([]device.Device, error) {
	var devices []device.Device
	if err := r.client.getJSON(ctx, r.client.url("devices", ""), &devices); err != nil {
		return nil, err
	}
	if devices == nil {
		devices = []device.Device{}
	}
	return devices, nil
}

func (r *deviceRepositoryImpl) Create(ctx context.Context, req device.CreateDeviceRequest) (device.Device, error) {
	var created device.Device
	err := r.client.sendJSON(ctx, http.MethodPost, r.client.url("devices", ""), req, &created)
	return created, err
}

func (r *deviceRepositoryImpl) Update(ctx context.Context, req device.UpdateDeviceRequest) (device.Device, error) {
	var updated device.Device
	if err := r.client.sendJSON(ctx, http.MethodPut, r.client.url("devices", req.ID), req, &updated); err != nil {
		return device.Device{}, notFoundAs(err, device.ErrDeviceNotFound)
	}
	return updated, nil
}

func (r *deviceRepositoryImpl) Delete(ctx context.Context, id string) error {
	err := r.client.sendJSON(ctx, http.MethodDelete, r.client.url("devices", id), nil, nil)
	return notFoundAs(err, device.ErrDeviceNotFound)
}
