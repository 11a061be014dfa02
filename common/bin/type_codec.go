package bin

import (
	"bytes"
	"io"
	"math/big"

	"github.com/launchlabs/launchpad/common"
	"github.com/launchlabs/launchpad/common/amount"
	"github.com/launchlabs/launchpad/common/hash"
	"github.com/pkg/errors"
)

// type tags of the self-describing value codec
const (
	tagUint8      = byte(0x01)
	tagUint16     = byte(0x02)
	tagUint32     = byte(0x03)
	tagUint64     = byte(0x04)
	tagString     = byte(0x05)
	tagBytes      = byte(0x06)
	tagBool       = byte(0x07)
	tagAddress    = byte(0x08)
	tagAmount     = byte(0x09)
	tagBigInt     = byte(0x0a)
	tagHash256    = byte(0x0b)
	tagAddressArr = byte(0x0c)
	tagAmountArr  = byte(0x0d)
)

// TypeWriteAll serializes the values with type tags
func TypeWriteAll(vs ...interface{}) []byte {
	var buffer bytes.Buffer
	for _, v := range vs {
		if err := writeTyped(&buffer, v); err != nil {
			panic(err)
		}
	}
	return buffer.Bytes()
}

func writeTyped(w io.Writer, v interface{}) error {
	switch tv := v.(type) {
	case uint8:
		if _, err := WriteUint8(w, tagUint8); err != nil {
			return err
		}
		_, err := WriteUint8(w, tv)
		return err
	case uint16:
		if _, err := WriteUint8(w, tagUint16); err != nil {
			return err
		}
		_, err := WriteUint16(w, tv)
		return err
	case uint32:
		if _, err := WriteUint8(w, tagUint32); err != nil {
			return err
		}
		_, err := WriteUint32(w, tv)
		return err
	case int:
		if _, err := WriteUint8(w, tagUint64); err != nil {
			return err
		}
		_, err := WriteUint64(w, uint64(tv))
		return err
	case uint64:
		if _, err := WriteUint8(w, tagUint64); err != nil {
			return err
		}
		_, err := WriteUint64(w, tv)
		return err
	case string:
		if _, err := WriteUint8(w, tagString); err != nil {
			return err
		}
		_, err := WriteString(w, tv)
		return err
	case []byte:
		if _, err := WriteUint8(w, tagBytes); err != nil {
			return err
		}
		_, err := WriteBytes(w, tv)
		return err
	case bool:
		if _, err := WriteUint8(w, tagBool); err != nil {
			return err
		}
		_, err := WriteBool(w, tv)
		return err
	case common.Address:
		if _, err := WriteUint8(w, tagAddress); err != nil {
			return err
		}
		_, err := WriteBytes(w, tv[:])
		return err
	case *amount.Amount:
		if _, err := WriteUint8(w, tagAmount); err != nil {
			return err
		}
		_, err := WriteBytes(w, tv.Bytes())
		return err
	case *big.Int:
		if _, err := WriteUint8(w, tagBigInt); err != nil {
			return err
		}
		_, err := WriteBytes(w, tv.Bytes())
		return err
	case hash.Hash256:
		if _, err := WriteUint8(w, tagHash256); err != nil {
			return err
		}
		_, err := WriteBytes(w, tv[:])
		return err
	case []common.Address:
		if _, err := WriteUint8(w, tagAddressArr); err != nil {
			return err
		}
		if _, err := WriteUint16(w, uint16(len(tv))); err != nil {
			return err
		}
		for _, addr := range tv {
			if _, err := WriteBytes(w, addr[:]); err != nil {
				return err
			}
		}
		return nil
	case []*amount.Amount:
		if _, err := WriteUint8(w, tagAmountArr); err != nil {
			return err
		}
		if _, err := WriteUint16(w, uint16(len(tv))); err != nil {
			return err
		}
		for _, am := range tv {
			if _, err := WriteBytes(w, am.Bytes()); err != nil {
				return err
			}
		}
		return nil
	default:
		return errors.WithStack(ErrInvalidTypeTag)
	}
}

// TypeReadAll deserializes count tagged values from the byte array
func TypeReadAll(bs []byte, count int) ([]interface{}, error) {
	r := bytes.NewReader(bs)
	vs := []interface{}{}
	for count < 0 || len(vs) < count {
		tag, _, err := ReadUint8(r)
		if err != nil {
			if count < 0 && errors.Cause(err) == io.EOF {
				break
			}
			return nil, err
		}
		v, err := readTyped(r, tag)
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
	if count >= 0 && len(vs) != count {
		return nil, errors.WithStack(ErrInvalidArgCount)
	}
	return vs, nil
}

func readTyped(r io.Reader, tag byte) (interface{}, error) {
	switch tag {
	case tagUint8:
		v, _, err := ReadUint8(r)
		return v, err
	case tagUint16:
		v, _, err := ReadUint16(r)
		return v, err
	case tagUint32:
		v, _, err := ReadUint32(r)
		return v, err
	case tagUint64:
		v, _, err := ReadUint64(r)
		return v, err
	case tagString:
		v, _, err := ReadString(r)
		return v, err
	case tagBytes:
		v, _, err := ReadBytes(r)
		return v, err
	case tagBool:
		v, _, err := ReadBool(r)
		return v, err
	case tagAddress:
		bs, _, err := ReadBytes(r)
		if err != nil {
			return nil, err
		}
		return common.BytesToAddress(bs), nil
	case tagAmount:
		bs, _, err := ReadBytes(r)
		if err != nil {
			return nil, err
		}
		return amount.NewAmountFromBytes(bs), nil
	case tagBigInt:
		bs, _, err := ReadBytes(r)
		if err != nil {
			return nil, err
		}
		return big.NewInt(0).SetBytes(bs), nil
	case tagHash256:
		bs, _, err := ReadBytes(r)
		if err != nil {
			return nil, err
		}
		var h hash.Hash256
		copy(h[:], bs)
		return h, nil
	case tagAddressArr:
		Len, _, err := ReadUint16(r)
		if err != nil {
			return nil, err
		}
		addrs := make([]common.Address, 0, Len)
		for i := uint16(0); i < Len; i++ {
			bs, _, err := ReadBytes(r)
			if err != nil {
				return nil, err
			}
			addrs = append(addrs, common.BytesToAddress(bs))
		}
		return addrs, nil
	case tagAmountArr:
		Len, _, err := ReadUint16(r)
		if err != nil {
			return nil, err
		}
		ams := make([]*amount.Amount, 0, Len)
		for i := uint16(0); i < Len; i++ {
			bs, _, err := ReadBytes(r)
			if err != nil {
				return nil, err
			}
			ams = append(ams, amount.NewAmountFromBytes(bs))
		}
		return ams, nil
	default:
		return nil, errors.WithStack(ErrInvalidTypeTag)
	}
}
