package tele

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/256dpi/gomqtt/packet"
	"github.com/256dpi/gomqtt/transport"
	"github.com/golang/protobuf/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/temoto/paystation/log2"
)

// brokerStub accepts one client and acknowledges everything it publishes.
type brokerStub struct {
	t       testing.TB
	ln      net.Listener
	connect chan *packet.Connect
	publish chan *packet.Message
}

func newBrokerStub(t testing.TB) *brokerStub {
	ln, err := net.Listen("tcp", "127.0.0.1:")
	require.NoError(t, err)
	b := &brokerStub{
		t:       t,
		ln:      ln,
		connect: make(chan *packet.Connect, 1),
		publish: make(chan *packet.Message, 16),
	}
	go b.serve()
	return b
}

func (b *brokerStub) URL() string { return fmt.Sprintf("tcp://%s", b.ln.Addr().String()) }

func (b *brokerStub) serve() {
	conn, err := b.ln.Accept()
	if err != nil {
		return
	}
	defer b.ln.Close()
	_ = conn.SetDeadline(time.Now().Add(10 * time.Second))
	nc := transport.NewNetConn(conn)
	defer nc.Close()
	for {
		pkt, err := nc.Receive()
		if err != nil {
			return
		}
		var reply packet.Generic
		switch p := pkt.(type) {
		case *packet.Connect:
			b.connect <- p
			connack := packet.NewConnack()
			connack.ReturnCode = packet.ConnectionAccepted
			reply = connack
		case *packet.Publish:
			msg := p.Message
			b.publish <- &msg
			if p.Message.QOS == packet.QOSAtLeastOnce {
				puback := packet.NewPuback()
				puback.ID = p.ID
				reply = puback
			}
		case *packet.Pingreq:
			reply = packet.NewPingresp()
		case *packet.Disconnect:
			return
		}
		if reply != nil {
			if err := nc.Send(reply, false); err != nil {
				b.t.Errorf("broker send err=%v", err)
				return
			}
		}
	}
}

func (b *brokerStub) expect(t testing.TB, topic string) *packet.Message {
	timeout := time.After(5 * time.Second)
	for {
		select {
		case m := <-b.publish:
			if m.Topic == topic {
				return m
			}
			t.Logf("broker skip topic=%s payload=%x", m.Topic, m.Payload)
		case <-timeout:
			t.Fatalf("broker expect topic=%s timeout", topic)
			return nil
		}
	}
}

func TestMqttTransport(t *testing.T) {
	t.Parallel()

	broker := newBrokerStub(t)
	config := Config{
		Enabled:           true,
		StationId:         3,
		MqttBroker:        broker.URL(),
		MqttPassword:      "secret",
		NetworkTimeoutSec: 5,
	}
	tele := New()
	require.NoError(t, tele.Init(context.Background(), log2.NewStderr(log2.LDebug), config))

	select {
	case c := <-broker.connect:
		assert.Equal(t, "ps3", c.ClientID)
		assert.Equal(t, "ps3", c.Username)
		assert.Equal(t, "secret", c.Password)
		assert.False(t, c.CleanSession)
		require.NotNil(t, c.Will)
		assert.Equal(t, "ps3/c", c.Will.Topic)
		assert.Equal(t, []byte{0x00}, c.Will.Payload)
	case <-time.After(5 * time.Second):
		t.Fatal("connect timeout")
	}
	online := broker.expect(t, "ps3/c")
	assert.Equal(t, []byte{0x01}, online.Payload)

	tele.Transaction(&Telemetry_Transaction{Kind: Telemetry_Collect, Amount: 65})
	m := broker.expect(t, "ps3/w/1t")
	tm := &Telemetry{}
	require.NoError(t, proto.Unmarshal(m.Payload, tm))
	assert.Equal(t, int32(3), tm.StationId)
	assert.Equal(t, Telemetry_Collect, tm.GetTransaction().GetKind())
	assert.Equal(t, uint32(65), tm.GetTransaction().GetAmount())

	tele.Close()
	offline := broker.expect(t, "ps3/c")
	assert.Equal(t, []byte{0x00}, offline.Payload)
}
