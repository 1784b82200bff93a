package restapi

import (
	"context"

	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/device"
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/network"
)

type networkRepositoryImpl struct {
	client *Client
}

func NewNetworkRepository(client *Client) network.NetworkRepository {
	return &networkRepositoryImpl{client: client}
}

func (r *networkRepositoryImpl) Status(ctx context.Context) (network.Status, error) {
	var status network.Status
	err := r.client.getJSON(ctx, r.client.url("network", "status"), &status)
	return status, err
}

func (r *networkRepositoryImpl) Logs(ctx context.Context) ([]network.Log, error) {
	return r.logs(ctx, r.client.url("network", ""))
}

func (r *networkRepositoryImpl) DeviceLogs(ctx context.Context, deviceID string) ([]network.Log, error) {
	logs, err := r.logs(ctx, r.client.url("network", "device", deviceID))
	if err != nil {
		return nil, notFoundAs(err, device.ErrDeviceNotFound)
	}
	return logs, nil
}

func (r *networkRepositoryImpl) logs(ctx context.Context, endpoint string) ([]network.Log, error) {
	var logs []network.Log
	if err := r.client.getJSON(ctx, endpoint, &logs); err != nil {
		return nil, err
	}
	if logs == nil {
		logs = []network.Log{}
	}
	return logs, nil
}
