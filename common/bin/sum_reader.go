package bin

import (
	"io"
	"math/big"

	"github.com/launchlabs/launchpad/common"
	"github.com/launchlabs/launchpad/common/amount"
	"github.com/launchlabs/launchpad/common/hash"
)

// SumReader accumulates the read size over sequential reads
type SumReader struct {
	sum int64
}

// NewSumReader returns a SumReader
func NewSumReader() *SumReader {
	return &SumReader{
		sum: 0,
	}
}

func (sr *SumReader) Uint8(r io.Reader, p *uint8) (int64, error) {
	v, n, err := ReadUint8(r)
	if err != nil {
		return sr.sum, err
	}
	sr.sum += n
	(*p) = v
	return sr.sum, nil
}

func (sr *SumReader) Uint16(r io.Reader, p *uint16) (int64, error) {
	v, n, err := ReadUint16(r)
	if err != nil {
		return sr.sum, err
	}
	sr.sum += n
	(*p) = v
	return sr.sum, nil
}

func (sr *SumReader) Uint32(r io.Reader, p *uint32) (int64, error) {
	v, n, err := ReadUint32(r)
	if err != nil {
		return sr.sum, err
	}
	sr.sum += n
	(*p) = v
	return sr.sum, nil
}

// GetUint32 reads and returns a uint32 value
func (sr *SumReader) GetUint32(r io.Reader) (uint32, int64, error) {
	v, n, err := ReadUint32(r)
	if err != nil {
		return 0, sr.sum, err
	}
	sr.sum += n
	return v, sr.sum, nil
}

func (sr *SumReader) Uint64(r io.Reader, p *uint64) (int64, error) {
	v, n, err := ReadUint64(r)
	if err != nil {
		return sr.sum, err
	}
	sr.sum += n
	(*p) = v
	return sr.sum, nil
}

func (sr *SumReader) Bytes(r io.Reader, p *[]byte) (int64, error) {
	v, n, err := ReadBytes(r)
	if err != nil {
		return sr.sum, err
	}
	sr.sum += n
	(*p) = v
	return sr.sum, nil
}

func (sr *SumReader) String(r io.Reader, p *string) (int64, error) {
	v, n, err := ReadString(r)
	if err != nil {
		return sr.sum, err
	}
	sr.sum += n
	(*p) = v
	return sr.sum, nil
}

func (sr *SumReader) Bool(r io.Reader, p *bool) (int64, error) {
	v, n, err := ReadBool(r)
	if err != nil {
		return sr.sum, err
	}
	sr.sum += n
	(*p) = v
	return sr.sum, nil
}

func (sr *SumReader) Hash256(r io.Reader, p *hash.Hash256) (int64, error) {
	v, n, err := ReadBytes(r)
	if err != nil {
		return sr.sum, err
	}
	sr.sum += n
	copy((*p)[:], v)
	return sr.sum, nil
}

func (sr *SumReader) Address(r io.Reader, p *common.Address) (int64, error) {
	v, n, err := ReadBytes(r)
	if err != nil {
		return sr.sum, err
	}
	sr.sum += n
	copy((*p)[:], v)
	return sr.sum, nil
}

func (sr *SumReader) Amount(r io.Reader, p **amount.Amount) (int64, error) {
	v, n, err := ReadBytes(r)
	if err != nil {
		return sr.sum, err
	}
	sr.sum += n
	(*p) = amount.NewAmountFromBytes(v)
	return sr.sum, nil
}

func (sr *SumReader) BigInt(r io.Reader, p **big.Int) (int64, error) {
	v, n, err := ReadBytes(r)
	if err != nil {
		return sr.sum, err
	}
	sr.sum += n
	(*p) = big.NewInt(0).SetBytes(v)
	return sr.sum, nil
}

func (sr *SumReader) ReaderFrom(r io.Reader, p io.ReaderFrom) (int64, error) {
	n, err := p.ReadFrom(r)
	if err != nil {
		return sr.sum, err
	}
	sr.sum += n
	return sr.sum, nil
}

func (sr *SumReader) Sum() int64 {
	return sr.sum
}
