package network

import "context"

type NetworkRepository interface {
	Status(ctx context.Context) (Status, error)
	Logs(ctx context.Context) ([]Log, error)
	DeviceLogs(ctx context.Context, deviceID string) ([]Log, error)
}

// NetworkService reads network activity. An empty deviceID lists every log.
type NetworkService interface {
	Status(ctx context.Context) (Status, error)
	Logs(ctx context.Context, deviceID string) ([]Log, error)
}
