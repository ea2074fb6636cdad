package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coltok/coltok/endian"
	"github.com/coltok/coltok/errs"
	"github.com/coltok/coltok/format"
)

func TestNewSnapshotFlag_Defaults(t *testing.T) {
	flag := NewSnapshotFlag(format.TypeNumeric)

	require.True(t, flag.IsLittleEndian())
	require.False(t, flag.IsBigEndian())
	require.Equal(t, uint16(MagicSnapshotV1Opt), flag.GetMagicNumber())
	require.Equal(t, format.TypeNumeric, flag.GetTokenizerType())
	require.Equal(t, format.CompressionNone, flag.GetCompressionType())
	require.NoError(t, flag.Validate())
}

func TestSnapshotFlag_Endianness(t *testing.T) {
	flag := NewSnapshotFlag(format.TypeCategorical)

	flag.WithBigEndian()
	require.True(t, flag.IsBigEndian())
	require.Equal(t, endian.GetBigEndianEngine(), flag.GetEndianEngine())
	// Toggling endianness must not disturb the magic number.
	require.Equal(t, uint16(MagicSnapshotV1Opt), flag.GetMagicNumber())
	require.NoError(t, flag.Validate())

	flag.WithLittleEndian()
	require.True(t, flag.IsLittleEndian())
	require.Equal(t, endian.GetLittleEndianEngine(), flag.GetEndianEngine())
}

func TestSnapshotFlag_SetCompressionType(t *testing.T) {
	flag := NewSnapshotFlag(format.TypeTimestamp)

	for _, compression := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		require.NoError(t, flag.SetCompressionType(compression))
		require.Equal(t, compression, flag.GetCompressionType())
	}

	err := flag.SetCompressionType(format.CompressionType(0x99))
	require.ErrorIs(t, err, errs.ErrInvalidCompressionType)
	// A rejected value leaves the previous setting in place.
	require.Equal(t, format.CompressionLZ4, flag.GetCompressionType())
}

func TestSnapshotFlag_Validate(t *testing.T) {
	t.Run("bad magic", func(t *testing.T) {
		flag := NewSnapshotFlag(format.TypeNumeric)
		flag.Options = 0x0000 | (flag.Options & EndiannessMask)
		require.ErrorIs(t, flag.Validate(), errs.ErrInvalidMagic)
	})

	t.Run("bad tokenizer type", func(t *testing.T) {
		flag := NewSnapshotFlag(format.TypeNumeric)
		flag.TokenizerType = 0x7F
		require.ErrorIs(t, flag.Validate(), errs.ErrInvalidTokenizerType)
	})

	t.Run("bad compression type", func(t *testing.T) {
		flag := NewSnapshotFlag(format.TypeNumeric)
		flag.CompressionType = 0x7F
		require.ErrorIs(t, flag.Validate(), errs.ErrInvalidCompressionType)
	})
}

func TestSnapshotHeader_ParseBytesRoundTrip(t *testing.T) {
	header := NewSnapshotHeader(format.TypeCategorical)
	header.PayloadLength = 1234
	header.Checksum = 0xDEADBEEFCAFEF00D
	require.NoError(t, header.Flag.SetCompressionType(format.CompressionS2))

	var parsed SnapshotHeader
	require.NoError(t, parsed.Parse(header.Bytes()))
	require.Equal(t, *header, parsed)
}

func TestSnapshotHeader_ParseBigEndian(t *testing.T) {
	header := NewSnapshotHeader(format.TypeTimestamp)
	header.Flag.WithBigEndian()
	header.PayloadLength = 16
	header.Checksum = 0x0102030405060708

	var parsed SnapshotHeader
	require.NoError(t, parsed.Parse(header.Bytes()))
	require.True(t, parsed.Flag.IsBigEndian())
	require.Equal(t, uint32(16), parsed.PayloadLength)
	require.Equal(t, uint64(0x0102030405060708), parsed.Checksum)
}

func TestSnapshotHeader_ParseTooShort(t *testing.T) {
	var header SnapshotHeader
	require.ErrorIs(t, header.Parse(nil), errs.ErrInvalidHeaderSize)
	require.ErrorIs(t, header.Parse(make([]byte, HeaderSize-1)), errs.ErrInvalidHeaderSize)
}
