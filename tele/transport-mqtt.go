package tele

import (
	"context"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/temoto/paystation/helpers"
	"github.com/temoto/paystation/log2"
)

type transportMqtt struct {
	log     *log2.Log
	m       mqtt.Client
	timeout time.Duration

	topicPrefix    string
	topicConnect   string
	topicTelemetry string
}

func (self *transportMqtt) Init(ctx context.Context, log *log2.Log, teleConfig Config) error {
	self.log = log
	mqtt.ERROR = log
	mqtt.CRITICAL = log
	mqtt.WARN = log

	mqttClientId := fmt.Sprintf("ps%d", teleConfig.StationId)
	self.topicPrefix = mqttClientId
	self.topicConnect = fmt.Sprintf("%s/c", self.topicPrefix)
	self.topicTelemetry = fmt.Sprintf("%s/w/1t", self.topicPrefix)
	self.timeout = helpers.IntSecondDefault(teleConfig.NetworkTimeoutSec, DefaultNetworkTimeout)
	keepAlive := helpers.IntSecondDefault(teleConfig.KeepaliveSec, 60*time.Second)
	pingTimeout := helpers.IntSecondDefault(teleConfig.PingTimeoutSec, 30*time.Second)

	mopt := mqtt.NewClientOptions().
		AddBroker(teleConfig.MqttBroker).
		SetBinaryWill(self.topicConnect, []byte{0x00}, 1, true).
		SetCleanSession(false).
		SetClientID(mqttClientId).
		SetUsername(mqttClientId).
		SetPassword(teleConfig.MqttPassword).
		SetKeepAlive(keepAlive).
		SetPingTimeout(pingTimeout).
		SetConnectTimeout(self.timeout).
		SetAutoReconnect(true).
		SetOrderMatters(false).
		SetOnConnectHandler(self.onConnectHandler).
		SetConnectionLostHandler(self.connectLostHandler)
	self.m = mqtt.NewClient(mopt)
	// network may be absent, SendTelemetry connects again
	if token := self.m.Connect(); token.Error() != nil {
		self.log.Errorf("mqtt connect err=%v", token.Error())
	}
	return nil
}

func (self *transportMqtt) SendTelemetry(payload []byte) bool {
	if !self.m.IsConnected() {
		token := self.m.Connect()
		if !token.WaitTimeout(self.timeout) || token.Error() != nil {
			self.log.Debugf("mqtt connect timeout or err=%v", token.Error())
			return false
		}
	}
	token := self.m.Publish(self.topicTelemetry, 1, false, payload)
	if !token.WaitTimeout(self.timeout) {
		return false
	}
	return token.Error() == nil
}

func (self *transportMqtt) Close() {
	if self.m.IsConnected() {
		self.m.Publish(self.topicConnect, 1, true, []byte{0x00}).WaitTimeout(self.timeout)
	}
	self.m.Disconnect(uint(self.timeout / time.Millisecond))
}

func (self *transportMqtt) connectLostHandler(c mqtt.Client, err error) {
	self.log.Infof("mqtt disconnect err=%v", err)
}

func (self *transportMqtt) onConnectHandler(c mqtt.Client) {
	self.log.Infof("mqtt connect")
	c.Publish(self.topicConnect, 1, true, []byte{0x01})
}
