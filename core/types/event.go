package types

import (
	"io"

	"github.com/launchlabs/launchpad/common"
	"github.com/launchlabs/launchpad/common/bin"
)

// EventType is a type of the event
type EventType uint8

// event types
const (
	EventTagCallHistory   EventType = 0x01
	EventTagTrade         EventType = 0x02
	EventTagCapViolation  EventType = 0x03
	EventTagGraduation    EventType = 0x04
	EventTagLaunchCreated EventType = 0x05
)

// Event is an execution record emitted during a call.
// The event list lives outside the snapshot stack, so a diagnostic
// event emitted right before an abort survives the state revert.
type Event struct {
	Index  uint16
	Type   EventType
	Result []byte
}

func (e *Event) Clone() *Event {
	return &Event{
		Index:  e.Index,
		Type:   e.Type,
		Result: append([]byte{}, e.Result...),
	}
}

func (e *Event) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if sum, err := sw.Uint16(w, e.Index); err != nil {
		return sum, err
	}
	if sum, err := sw.Uint8(w, uint8(e.Type)); err != nil {
		return sum, err
	}
	if sum, err := sw.Bytes(w, e.Result); err != nil {
		return sum, err
	}
	return sw.Sum(), nil
}

func (e *Event) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if sum, err := sr.Uint16(r, &e.Index); err != nil {
		return sum, err
	}
	var t uint8
	if sum, err := sr.Uint8(r, &t); err != nil {
		return sum, err
	}
	e.Type = EventType(t)
	if sum, err := sr.Bytes(r, &e.Result); err != nil {
		return sum, err
	}
	return sr.Sum(), nil
}

// MethodCallEvent is the payload of an EventTagCallHistory event
type MethodCallEvent struct {
	From   common.Address
	To     common.Address
	Method string
	Args   []interface{}
	Result []interface{}
	Error  string
}

func (s *MethodCallEvent) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if sum, err := sw.Address(w, s.From); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.To); err != nil {
		return sum, err
	}
	if sum, err := sw.String(w, s.Method); err != nil {
		return sum, err
	}
	if sum, err := sw.Bytes(w, bin.TypeWriteAll(s.Args...)); err != nil {
		return sum, err
	}
	if sum, err := sw.Bytes(w, bin.TypeWriteAll(s.Result...)); err != nil {
		return sum, err
	}
	if sum, err := sw.String(w, s.Error); err != nil {
		return sum, err
	}
	return sw.Sum(), nil
}

func (s *MethodCallEvent) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if sum, err := sr.Address(r, &s.From); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(r, &s.To); err != nil {
		return sum, err
	}
	if sum, err := sr.String(r, &s.Method); err != nil {
		return sum, err
	}
	var bs []byte
	if sum, err := sr.Bytes(r, &bs); err != nil {
		return sum, err
	} else if vs, err := bin.TypeReadAll(bs, -1); err != nil {
		return sum, err
	} else {
		s.Args = vs
	}
	if sum, err := sr.Bytes(r, &bs); err != nil {
		return sum, err
	} else if vs, err := bin.TypeReadAll(bs, -1); err != nil {
		return sum, err
	} else {
		s.Result = vs
	}
	if sum, err := sr.String(r, &s.Error); err != nil {
		return sum, err
	}
	return sr.Sum(), nil
}
