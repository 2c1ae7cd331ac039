package audio

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeWAV_RoundTrip(t *testing.T) {
	samples := make([]float64, 2205)
	for i := range samples {
		samples[i] = 0.5 * math.Sin(2*math.Pi*440*float64(i)/22050)
	}

	data := EncodeWAV(samples, 22050)

	f, err := ParseHeader(data)
	require.NoError(t, err)
	assert.Equal(t, 1, f.Channels)
	assert.Equal(t, 22050, f.SampleRate)
	assert.Equal(t, 16, f.BitsPerSample)
	assert.Equal(t, len(samples), f.Samples)
}

func TestEncodeWAV_EmptyInput(t *testing.T) {
	data := EncodeWAV(nil, 22050)

	f, err := ParseHeader(data)
	require.NoError(t, err)
	assert.Equal(t, 0, f.Samples)
	assert.Len(t, data, 44)
}

func TestEncodeWAV_ClampsOutOfRange(t *testing.T) {
	data := EncodeWAV([]float64{2.0, -3.0}, 22050)
	require.Len(t, data, 44+4)

	first := int16(binary.LittleEndian.Uint16(data[44:46]))
	second := int16(binary.LittleEndian.Uint16(data[46:48]))
	assert.Equal(t, int16(32767), first)
	assert.Equal(t, int16(-32767), second)
}

func TestParseHeader_RejectsGarbage(t *testing.T) {
	_, err := ParseHeader([]byte("not a wav file, definitely not long enough to be"))
	assert.Error(t, err)
}

func TestParseHeader_RejectsTruncatedData(t *testing.T) {
	data := EncodeWAV(make([]float64, 100), 22050)
	_, err := ParseHeader(data[:len(data)-2])
	assert.Error(t, err)
}
