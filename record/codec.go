package record

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/libp2p/go-msgio"
	"github.com/multiformats/go-multicodec"
	"github.com/multiformats/go-varint"
)

// Codec identifies how the records in an encoded collection are serialized.
// An encoded collection starts with this code as an unsigned varint, so that
// additional record encodings can be introduced without changing the framing.
const Codec = multicodec.Json

// Collection is the ordered set of metadata records decoded from a single
// metadata resource. A well-formed resource contains exactly one record.
type Collection struct {
	Records []*PhoneMetadata
}

// reader is the interface needed to decode a collection without copying the
// stream. Readers that do not implement it are wrapped in a bufio.Reader.
type reader interface {
	io.Reader
	io.ByteReader
}

// MarshalBinary encodes the collection as the uvarint codec identifier
// followed by each record as a varint length-framed message.
func (c *Collection) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(varint.ToUvarint(uint64(Codec)))
	w := msgio.NewVarintWriter(&buf)
	for i, md := range c.Records {
		data, err := json.Marshal(md)
		if err != nil {
			return nil, fmt.Errorf("cannot encode metadata record %d: %w", i, err)
		}
		if err = w.WriteMsg(data); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes an encoded collection, replacing any records
// already present.
func (c *Collection) UnmarshalBinary(data []byte) error {
	coll, err := ReadCollection(bytes.NewReader(data))
	if err != nil {
		return err
	}
	c.Records = coll.Records
	return nil
}

// ReadCollection reads one encoded record collection from r until EOF.
func ReadCollection(r io.Reader) (*Collection, error) {
	br, ok := r.(reader)
	if !ok {
		br = bufio.NewReader(r)
	}

	code, err := varint.ReadUvarint(br)
	if err != nil {
		return nil, fmt.Errorf("cannot read record codec: %w", err)
	}
	if multicodec.Code(code) != Codec {
		return nil, fmt.Errorf("unsupported record codec 0x%x, expected %s", code, Codec)
	}

	var coll Collection
	mr := msgio.NewVarintReader(br)
	for {
		data, err := mr.ReadMsg()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return &coll, nil
			}
			return nil, fmt.Errorf("cannot read metadata record %d: %w", len(coll.Records), err)
		}
		md := new(PhoneMetadata)
		err = json.Unmarshal(data, md)
		mr.ReleaseMsg(data)
		if err != nil {
			return nil, fmt.Errorf("cannot decode metadata record %d: %w", len(coll.Records), err)
		}
		coll.Records = append(coll.Records, md)
	}
}
