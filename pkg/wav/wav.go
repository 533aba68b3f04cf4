// Package wav writes 44100 Hz, 16-bit signed PCM stereo WAV files, adapted
// from a mono single-pass writer into a whole-buffer stereo writer with an
// atomic (temp file + rename) commit so a reader of the destination path
// never observes a partially written file.
package wav

import (
	"encoding/binary"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// SampleRate is the fixed output sample rate.
const SampleRate = 44100

const (
	channels      = 2
	bitsPerSample = 16
	bytesPerSamp  = bitsPerSample / 8
)

// clampTo16 converts a float sample in roughly [-1,1] to a clamped int16 PCM
// value, scaling by 32767 per the format contract.
func clampTo16(s float64) int16 {
	if s > 1.0 {
		s = 1.0
	}
	if s < -1.0 {
		s = -1.0
	}
	return int16(s * 32767)
}

func writeHeader(w io.Writer, dataSize int) error {
	if _, err := w.Write([]byte("RIFF")); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(dataSize+36)); err != nil {
		return err
	}
	if _, err := w.Write([]byte("WAVE")); err != nil {
		return err
	}

	if _, err := w.Write([]byte("fmt ")); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(16)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint16(1)); err != nil { // PCM
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint16(channels)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(SampleRate)); err != nil {
		return err
	}
	byteRate := SampleRate * channels * bytesPerSamp
	if err := binary.Write(w, binary.LittleEndian, uint32(byteRate)); err != nil {
		return err
	}
	blockAlign := channels * bytesPerSamp
	if err := binary.Write(w, binary.LittleEndian, uint16(blockAlign)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint16(bitsPerSample)); err != nil {
		return err
	}

	if _, err := w.Write([]byte("data")); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, uint32(dataSize))
}

// WriteStereo writes interleaved 16-bit PCM stereo WAV data for the given
// left/right float buffers to w. If their lengths differ, only the first
// min(len(left), len(right)) frames are written.
func WriteStereo(w io.Writer, left, right []float64) error {
	n := len(left)
	if len(right) < n {
		n = len(right)
	}
	dataSize := n * channels * bytesPerSamp
	if err := writeHeader(w, dataSize); err != nil {
		return err
	}

	buf := make([]byte, n*channels*bytesPerSamp)
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(clampTo16(left[i])))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(clampTo16(right[i])))
	}
	_, err := w.Write(buf)
	return err
}

// WriteStereoFileAtomic renders left/right to a temp file in the same
// directory as path, then renames it into place, so a concurrent reader of
// path never sees a torn write. The destination directory is created if
// absent.
func WriteStereoFileAtomic(path string, left, right []float64) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "create audio directory %s", dir)
	}

	tmp, err := os.CreateTemp(dir, ".track-*.wav.tmp")
	if err != nil {
		return errors.Wrap(err, "create temp audio file")
	}
	tmpPath := tmp.Name()

	if err := WriteStereo(tmp, left, right); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return errors.Wrap(err, "write wav data")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.Wrap(err, "close temp audio file")
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return errors.Wrapf(err, "rename temp audio file into place at %s", path)
	}
	return nil
}
