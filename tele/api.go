// Package tele reports pay station transactions and errors to remote monitoring.
package tele

import (
	"context"

	"github.com/temoto/paystation/log2"
)

//go:generate protoc --go_out=paths=source_relative:./ tele.proto

type Config struct {
	Enabled           bool   `hcl:"enable"`
	LogDebug          bool   `hcl:"log_debug"`
	StationId         int    `hcl:"station_id"`
	MqttBroker        string `hcl:"mqtt_broker"`
	MqttPassword      string `hcl:"mqtt_password"`
	KeepaliveSec      int    `hcl:"keepalive_sec"`
	PingTimeoutSec    int    `hcl:"ping_timeout_sec"`
	NetworkTimeoutSec int    `hcl:"network_timeout_sec"`
	QueueSize         int    `hcl:"queue_size"`

	BuildVersion string
}

// Teler is telemetry client, pay station side.
// Contract:
// - Init fails only with invalid config, network issues ignored
// - Transaction and Error never block, messages delivered in background
// - Close blocks until queued messages are sent or dropped
type Teler interface {
	Init(context.Context, *log2.Log, Config) error
	Close()
	Error(error)
	Transaction(*Telemetry_Transaction)
}

type Noop struct{}

var _ Teler = Noop{} // compile-time interface test

func (Noop) Init(context.Context, *log2.Log, Config) error { return nil }
func (Noop) Close()                                        {}
func (Noop) Error(error)                                   {}
func (Noop) Transaction(*Telemetry_Transaction)            {}
