package types

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"math/big"
	"reflect"
	"strings"

	"github.com/launchlabs/launchpad/common"
	"github.com/launchlabs/launchpad/common/amount"
	"github.com/launchlabs/launchpad/common/hash"
	"github.com/pkg/errors"
)

var errType = reflect.TypeOf((*error)(nil)).Elem()

type IInteractor interface {
	Distroy()
	Exec(Cc *ContractContext, Addr common.Address, MethodName string, Args []interface{}) ([]interface{}, error)
	EventList() []*Event
}

type ExecFunc = func(Cc *ContractContext, Addr common.Address, MethodName string, Args []interface{}) ([]interface{}, error)

type interactor struct {
	ctx       *Context
	cont      Contract
	conMap    map[common.Address]Contract
	exit      bool
	index     uint16
	eventList []*Event
	saveEvent bool
}

var bigIntType = reflect.TypeOf(&big.Int{}).String()
var amountType = reflect.TypeOf(&amount.Amount{}).String()

func NewInteractor(ctx *Context, cont Contract, cc *ContractContext, index uint16, saveEvent bool) IInteractor {
	return &interactor{
		ctx:       ctx,
		cont:      cont,
		conMap:    map[common.Address]Contract{},
		index:     index,
		eventList: []*Event{},
		saveEvent: saveEvent,
	}
}

func (i *interactor) Distroy() {
	i.exit = true
}

func (i *interactor) Exec(Cc *ContractContext, ContAddr common.Address, MethodName string, Args []interface{}) (result []interface{}, err error) {
	if i.exit {
		return nil, errors.New("expired")
	}
	if MethodName == "" {
		return nil, errors.New("method not given")
	}
	cont, err := i.getContract(ContAddr)
	if err != nil {
		return nil, err
	}
	MethodName = strings.ToUpper(string(MethodName[0])) + MethodName[1:]
	ecc := i.currentContractContext(Cc, ContAddr)
	var enResult []interface{}
	if i.saveEvent {
		en := i.addCallEvent(ecc, ContAddr, MethodName, Args)
		defer func() {
			if err != nil {
				return
			}
			err = insertResultEvent(en, enResult, err)
		}()
	}
	result, enResult, err = _exec(ecc, cont, MethodName, Args)
	return
}

func _exec(ecc *ContractContext, cont Contract, MethodName string, Args []interface{}) (result []interface{}, enResult []interface{}, err error) {
	ContAddr := cont.Address()
	rMethod, _err := methodByName(cont, ContAddr, MethodName)
	if _err != nil {
		err = _err
		return
	}

	in, _err := ContractInputsConv(Args, rMethod)
	if _err != nil {
		err = _err
		return
	}
	in = append([]reflect.Value{reflect.ValueOf(ecc)}, in...)

	sn := ecc.ctx.Snapshot()

	vs, _err := func() (vs []reflect.Value, err error) {
		defer func() {
			v := recover()
			if v != nil {
				err = fmt.Errorf("occur error call method(%v) of contract(%v) message: %v", MethodName, ContAddr.String(), v)
			}
		}()
		return rMethod.Call(in), nil
	}()
	if _err != nil {
		ecc.ctx.Revert(sn)
		err = _err
		return
	}

	mtype := rMethod.Type()
	result, enResult, err = getResults(mtype, vs)
	if err != nil {
		ecc.ctx.Revert(sn)
		return
	}
	ecc.ctx.Commit(sn)
	return
}

func ContractInputsConv(Args []interface{}, rMethod reflect.Value) ([]reflect.Value, error) {
	if rMethod.Type().NumIn() != len(Args)+1 {
		return nil, errors.Errorf("invalid inputs count got %v want %v", len(Args), rMethod.Type().NumIn()-1)
	}
	if rMethod.Type().NumIn() < 1 {
		return nil, errors.New("not found")
	}
	in := make([]reflect.Value, len(Args))
	for i, v := range Args {
		param := reflect.ValueOf(v)
		mType := rMethod.Type().In(i + 1)

		if param.Type() != mType {
			switch pv := v.(type) {
			case *big.Int:
				switch mType.String() {
				case amountType:
					param = reflect.ValueOf(amount.NewAmountFromBytes(pv.Bytes()))
				case reflect.Uint8.String():
					param = reflect.ValueOf(uint8(pv.Uint64()))
				case reflect.Uint16.String():
					param = reflect.ValueOf(uint16(pv.Uint64()))
				case reflect.Uint32.String():
					param = reflect.ValueOf(uint32(pv.Uint64()))
				case reflect.Uint64.String():
					param = reflect.ValueOf(pv.Uint64())
				case "common.Address":
					param = reflect.ValueOf(common.BytesToAddress(pv.Bytes()))
				}
			case *amount.Amount:
				switch mType.String() {
				case bigIntType:
					param = reflect.ValueOf(big.NewInt(0).SetBytes(pv.Bytes()))
				case "string":
					param = reflect.ValueOf(big.NewInt(0).SetBytes(pv.Bytes()).String())
				}
			case string:
				switch mType.String() {
				case "bool":
					param = reflect.ValueOf(strings.ToLower(pv) == "true")
				case "common.Address":
					addr, err := common.ParseAddress(pv)
					if err != nil {
						return nil, err
					}
					param = reflect.ValueOf(addr)
				case amountType:
					am, err := amount.ParseAmount(pv)
					if err != nil {
						return nil, err
					}
					param = reflect.ValueOf(am)
				case bigIntType:
					bi, ok := big.NewInt(0).SetString(pv, 10)
					if !ok {
						bi, ok = big.NewInt(0).SetString(strings.Replace(pv, "0x", "", -1), 16)
					}
					if ok {
						param = reflect.ValueOf(bi)
					}
				case "[]byte", "[]uint8":
					bs, err := hex.DecodeString(strings.TrimPrefix(pv, "0x"))
					if err == nil {
						param = reflect.ValueOf(bs)
					}
				}
			case []byte:
				switch mType.String() {
				case "hash.Hash256":
					h := hash.Hash256{}
					copy(h[:], pv)
					param = reflect.ValueOf(h)
				case "common.Address":
					param = reflect.ValueOf(common.BytesToAddress(pv))
				case amountType:
					param = reflect.ValueOf(amount.NewAmountFromBytes(pv))
				case bigIntType:
					param = reflect.ValueOf(big.NewInt(0).SetBytes(pv))
				}
			case uint64:
				if mType.String() == bigIntType {
					param = reflect.ValueOf(big.NewInt(0).SetUint64(pv))
				}
			default:
			}
		}
		if param.Type() != mType {
			return nil, errors.Errorf("invalid input type(%v) get %v want %v value %v", i, param.Type(), mType, v)
		}

		in[i] = param
	}
	return in, nil
}

func (i *interactor) EventList() []*Event {
	return i.eventList
}

func getResults(mType reflect.Type, vs []reflect.Value) (params []interface{}, result []interface{}, err error) {
	params = []interface{}{}
	result = []interface{}{}
	for i, v := range vs {
		vi := v.Interface()
		params = append(params, v.Interface())
		if mType.Out(i).Kind() == reflect.Interface && mType.Out(i).Implements(errType) {
			if _err, ok := vi.(error); ok {
				err = _err
			}
			continue
		}
		result = append(result, vi)
	}
	return
}

func (i *interactor) addCallEvent(Cc *ContractContext, Addr common.Address, MethodName string, Args []interface{}) *Event {
	mc := MethodCallEvent{
		From:   Cc.From(),
		To:     Addr,
		Method: MethodName,
		Args:   Args,
	}
	bf := &bytes.Buffer{}
	_, err := mc.WriteTo(bf)
	if err != nil {
		panic(err)
	}
	rv := &Event{
		Type:   EventTagCallHistory,
		Result: bf.Bytes(),
	}
	i.eventList = append(i.eventList, rv)
	i.ctx.EmitEvent(rv)
	return rv
}

func insertResultEvent(en *Event, Results []interface{}, Err error) error {
	bf := bytes.NewBuffer(en.Result)

	mc := &MethodCallEvent{}
	_, err := mc.ReadFrom(bf)
	if err != nil {
		return err
	}

	if Err != nil {
		mc.Error = Err.Error()
	} else {
		mc.Result = Results
	}

	wbf := &bytes.Buffer{}
	_, err = mc.WriteTo(wbf)
	if err != nil {
		panic(err)
	}
	en.Result = wbf.Bytes()
	return err
}

func methodByName(cont Contract, Addr common.Address, MethodName string) (reflect.Value, error) {
	_cont := cont.Front()

	vo := reflect.ValueOf(_cont)
	if !vo.IsValid() {
		return reflect.Value{}, errors.New("wrong contract")
	}
	if vo.IsNil() {
		return reflect.Value{}, errors.New("nil contract")
	}

	method := vo.MethodByName(MethodName)
	if !method.IsValid() || method.IsNil() {
		return reflect.Value{}, errors.New("method not exist: " + MethodName + " cont " + Addr.String())
	}
	return method, nil
}

func (i *interactor) getContract(Addr common.Address) (Contract, error) {
	var cont Contract
	if _cont, ok := i.conMap[Addr]; ok {
		cont = _cont
	} else {
		_cont, err := i.ctx.Contract(Addr)
		if err != nil {
			return nil, err
		}
		i.conMap[Addr] = _cont
		cont = _cont
	}
	return cont, nil
}

func (i *interactor) currentContractContext(Cc *ContractContext, Addr common.Address) *ContractContext {
	if i.cont != nil && i.cont.Address() == Addr && Cc.cont == Addr {
		return Cc
	}
	return &ContractContext{
		cont: Addr,
		from: Cc.cont,
		ctx:  Cc.ctx,
		Exec: i.Exec,
	}
}
