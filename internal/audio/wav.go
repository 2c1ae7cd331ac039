package audio

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

const headerSize = 44

// Format describes the PCM layout of a WAV stream.
type Format struct {
	Channels      int
	SampleRate    int
	BitsPerSample int
	Samples       int
}

// EncodeWAV converts normalized float64 samples in [-1, 1] to a mono 16-bit
// PCM RIFF/WAVE byte stream at the given sample rate. Samples outside the
// valid range are clamped before quantization.
func EncodeWAV(samples []float64, sampleRate int) []byte {
	dataSize := len(samples) * 2

	buf := bytes.NewBuffer(make([]byte, 0, headerSize+dataSize))
	writeHeader(buf, sampleRate, dataSize)

	for _, s := range samples {
		if s > 1.0 {
			s = 1.0
		} else if s < -1.0 {
			s = -1.0
		}
		binary.Write(buf, binary.LittleEndian, int16(s*32767))
	}

	return buf.Bytes()
}

// writeHeader writes the 44-byte RIFF/WAVE header for 16-bit mono PCM.
func writeHeader(buf *bytes.Buffer, sampleRate, dataSize int) {
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")

	// fmt sub-chunk
	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))                 // sub-chunk size
	binary.Write(buf, binary.LittleEndian, uint16(1))                  // PCM format
	binary.Write(buf, binary.LittleEndian, uint16(1))                  // mono
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))         // sample rate
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate*2))       // byte rate (rate * 1 ch * 2 bytes)
	binary.Write(buf, binary.LittleEndian, uint16(2))                  // block align
	binary.Write(buf, binary.LittleEndian, uint16(16))                 // bits per sample

	// data sub-chunk
	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, uint32(dataSize))
}

// ParseHeader reads the RIFF/WAVE header of a 16-bit PCM stream and returns
// its format. It validates the chunk markers and that the declared data size
// matches the bytes actually present.
func ParseHeader(data []byte) (Format, error) {
	if len(data) < headerSize {
		return Format{}, fmt.Errorf("wav: stream too short (%d bytes)", len(data))
	}
	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return Format{}, fmt.Errorf("wav: missing RIFF/WAVE markers")
	}
	if string(data[12:16]) != "fmt " || string(data[36:40]) != "data" {
		return Format{}, fmt.Errorf("wav: unexpected chunk layout")
	}

	channels := int(binary.LittleEndian.Uint16(data[22:24]))
	sampleRate := int(binary.LittleEndian.Uint32(data[24:28]))
	bits := int(binary.LittleEndian.Uint16(data[34:36]))
	dataSize := int(binary.LittleEndian.Uint32(data[40:44]))

	if bits != 16 {
		return Format{}, fmt.Errorf("wav: unsupported bit depth %d", bits)
	}
	if dataSize != len(data)-headerSize {
		return Format{}, fmt.Errorf("wav: declared data size %d, have %d bytes", dataSize, len(data)-headerSize)
	}

	return Format{
		Channels:      channels,
		SampleRate:    sampleRate,
		BitsPerSample: bits,
		Samples:       dataSize / 2 / channels,
	}, nil
}
