package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckEndianness(t *testing.T) {
	order := CheckEndianness()
	require.NotNil(t, order)

	// Exactly one of the two predicates holds, and both agree with the probe.
	require.NotEqual(t, IsNativeLittleEndian(), IsNativeBigEndian())
	if IsNativeLittleEndian() {
		require.Equal(t, binary.LittleEndian, order)
	} else {
		require.Equal(t, binary.BigEndian, order)
	}
}

func TestEngines(t *testing.T) {
	require.Equal(t, EndianEngine(binary.LittleEndian), GetLittleEndianEngine())
	require.Equal(t, EndianEngine(binary.BigEndian), GetBigEndianEngine())
}

func TestEngine_WriteReadSymmetry(t *testing.T) {
	for _, engine := range []EndianEngine{GetLittleEndianEngine(), GetBigEndianEngine()} {
		buf := make([]byte, 8)

		engine.PutUint16(buf[:2], 0xBEEF)
		require.Equal(t, uint16(0xBEEF), engine.Uint16(buf[:2]))

		engine.PutUint32(buf[:4], 0xDEADBEEF)
		require.Equal(t, uint32(0xDEADBEEF), engine.Uint32(buf[:4]))

		engine.PutUint64(buf, 0x0123456789ABCDEF)
		require.Equal(t, uint64(0x0123456789ABCDEF), engine.Uint64(buf))

		appended := engine.AppendUint32(nil, 0xCAFEF00D)
		require.Equal(t, uint32(0xCAFEF00D), engine.Uint32(appended))
	}
}

func TestEngines_DisagreeOnMultiByteValues(t *testing.T) {
	le := GetLittleEndianEngine().AppendUint32(nil, 0x01020304)
	be := GetBigEndianEngine().AppendUint32(nil, 0x01020304)

	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, le)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, be)
}
