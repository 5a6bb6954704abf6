package record_test

import (
	"bytes"
	"testing"

	"github.com/multiformats/go-multicodec"
	"github.com/multiformats/go-varint"
	"github.com/numplan/go-phonemeta/record"
	"github.com/stretchr/testify/require"
)

func TestReadCollection(t *testing.T) {
	coll := &record.Collection{
		Records: []*record.PhoneMetadata{
			{
				ID:                  "FR",
				CountryCode:         33,
				InternationalPrefix: "00",
				NationalPrefix:      "0",
				GeneralDesc: &record.PhoneNumberDesc{
					NationalNumberPattern: `[1-9]\d{8}`,
					PossibleLengths:       []int{9},
				},
				NumberFormats: []record.NumberFormat{
					{
						Pattern: `(\d)(\d{2})(\d{2})(\d{2})(\d{2})`,
						Format:  "$1 $2 $3 $4 $5",
					},
				},
			},
			{
				ID:          "001",
				CountryCode: 800,
			},
		},
	}

	data, err := coll.MarshalBinary()
	require.NoError(t, err)

	got, err := record.ReadCollection(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, got.Records, 2)

	// Record order is the resource order; the first record is the one the
	// cache keeps.
	require.Equal(t, coll.Records[0], got.Records[0])
	require.Equal(t, coll.Records[1], got.Records[1])
}

func TestReadCollectionEmpty(t *testing.T) {
	data, err := new(record.Collection).MarshalBinary()
	require.NoError(t, err)

	got, err := record.ReadCollection(bytes.NewReader(data))
	require.NoError(t, err)
	require.Empty(t, got.Records)
}

func TestReadCollectionWrongCodec(t *testing.T) {
	data := varint.ToUvarint(uint64(multicodec.Cbor))
	_, err := record.ReadCollection(bytes.NewReader(data))
	require.ErrorContains(t, err, "unsupported record codec")
}

func TestReadCollectionTruncated(t *testing.T) {
	coll := &record.Collection{
		Records: []*record.PhoneMetadata{{ID: "DE", CountryCode: 49}},
	}
	data, err := coll.MarshalBinary()
	require.NoError(t, err)

	_, err = record.ReadCollection(bytes.NewReader(data[:len(data)-3]))
	require.Error(t, err)

	_, err = record.ReadCollection(bytes.NewReader(nil))
	require.Error(t, err)
}

func TestUnmarshalBinaryReplacesRecords(t *testing.T) {
	coll := &record.Collection{
		Records: []*record.PhoneMetadata{{ID: "JP", CountryCode: 81}},
	}
	data, err := coll.MarshalBinary()
	require.NoError(t, err)

	subject := &record.Collection{
		Records: []*record.PhoneMetadata{{ID: "KR", CountryCode: 82}},
	}
	require.NoError(t, subject.UnmarshalBinary(data))
	require.Len(t, subject.Records, 1)
	require.Equal(t, "JP", subject.Records[0].ID)
}
