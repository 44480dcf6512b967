package tele

import (
	"context"
	"time"

	"github.com/golang/protobuf/proto"
	"github.com/juju/errors"
	"github.com/temoto/alive/v2"
	"github.com/temoto/paystation/log2"
)

const (
	DefaultNetworkTimeout = 30 * time.Second
	defaultQueueSize      = 64
)

type tele struct {
	config    Config
	log       *log2.Log
	transport Transporter
	alive     *alive.Alive
	q         chan []byte
	stationId int32
}

func New() Teler {
	return &tele{}
}
func NewWithTransporter(trans Transporter) Teler {
	return &tele{transport: trans}
}

// Init must receive logger without error hook to this tele, otherwise queue overflow recurses.
func (self *tele) Init(ctx context.Context, log *log2.Log, teleConfig Config) error {
	self.config = teleConfig
	self.log = log
	if self.config.LogDebug {
		self.log.SetLevel(log2.LDebug)
	}
	if !self.config.Enabled {
		return nil
	}
	if self.config.StationId < 0 {
		return errors.NotValidf("tele station_id=%d", self.config.StationId)
	}
	self.stationId = int32(self.config.StationId)

	// test code sets .transport
	if self.transport == nil { // production path
		if self.config.MqttBroker == "" {
			return errors.NotValidf("tele mqtt_broker=empty")
		}
		self.transport = &transportMqtt{}
	}
	if err := self.transport.Init(ctx, log, teleConfig); err != nil {
		return errors.Annotate(err, "tele transport")
	}

	size := self.config.QueueSize
	if size <= 0 {
		size = defaultQueueSize
	}
	self.q = make(chan []byte, size)
	self.alive = alive.NewAlive()
	self.alive.Add(1)
	go self.worker()
	return nil
}

func (self *tele) Close() {
	if self.alive == nil {
		return
	}
	self.alive.Stop()
	self.alive.Wait()
	self.transport.Close()
}

func (self *tele) Error(err error) {
	if err == nil {
		return
	}
	self.push(&Telemetry{Error: &Telemetry_Error{Message: err.Error()}})
}

func (self *tele) Transaction(tx *Telemetry_Transaction) {
	self.push(&Telemetry{Transaction: tx})
}

func (self *tele) push(tm *Telemetry) {
	if self.alive == nil || !self.alive.IsRunning() {
		return
	}
	tm.StationId = self.stationId
	tm.BuildVersion = self.config.BuildVersion
	if tm.Time == 0 {
		tm.Time = time.Now().UnixNano()
	}
	b, err := proto.Marshal(tm)
	if err != nil {
		self.log.Errorf("tele marshal tm=%s err=%v", tm.String(), err)
		return
	}
	select {
	case self.q <- b:
	default:
		self.log.Errorf("tele queue full, dropped tm=%s", tm.String())
	}
}

func (self *tele) worker() {
	defer self.alive.Done()
	stopCh := self.alive.StopChan()
	for {
		select {
		case b := <-self.q:
			self.send(b)
		case <-stopCh:
			for {
				select {
				case b := <-self.q:
					self.send(b)
				default:
					return
				}
			}
		}
	}
}

func (self *tele) send(b []byte) {
	if !self.transport.SendTelemetry(b) {
		self.log.Errorf("tele send failed, dropped payload=%x", b)
		return
	}
	self.log.Debugf("tele sent len=%d", len(b))
}
