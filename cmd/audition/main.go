// Command audition is a developer convenience tool that renders (or loads)
// a track and plays it back through the system's default audio device in
// real time via oto. It sits outside the deterministic render path: the
// render itself never touches real-time audio, but this tool makes it easy
// to listen to what a request produces without opening the WAV file in a
// separate player.
package main

import (
	"context"
	"encoding/binary"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/synthline/producer-engine/pkg/config"
	"github.com/synthline/producer-engine/pkg/engine"
	"github.com/synthline/producer-engine/pkg/plan"
	"github.com/synthline/producer-engine/pkg/wav"
)

func main() {
	artists := flag.String("artists", "Depeche Mode", "comma-separated artist influences to render and audition")
	mood := flag.String("mood", "", "mood override")
	tempo := flag.Float64("tempo", 0, "tempo in bpm, 60-200")
	file := flag.String("file", "", "play an existing WAV file instead of rendering one")
	flag.Parse()

	audioPath := *file
	if audioPath == "" {
		req := plan.MusicRequest{ArtistInfluences: splitCSV(*artists), Mood: *mood, TempoBPM: *tempo}
		eng := engine.New(config.Load())
		resp, err := eng.Generate(context.Background(), req)
		if err != nil {
			fmt.Fprintf(os.Stderr, "render failed: %v\n", err)
			os.Exit(1)
		}
		audioPath = resp.AudioPath
		fmt.Printf("rendered %s (%s)\n", resp.Blueprint.Title, audioPath)
	}

	left, right, err := readStereoWAV(audioPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read wav: %v\n", err)
		os.Exit(1)
	}

	if err := play(left, right); err != nil {
		fmt.Fprintf(os.Stderr, "playback failed: %v\n", err)
		os.Exit(1)
	}
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// readStereoWAV decodes a WAV file written by pkg/wav: a 44-byte
// RIFF/fmt/data header (no extra chunks) followed by interleaved 16-bit PCM
// stereo samples.
func readStereoWAV(path string) (left, right []float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	header := make([]byte, 44)
	if _, err := f.Read(header); err != nil {
		return nil, nil, err
	}
	dataSize := binary.LittleEndian.Uint32(header[40:44])

	data := make([]byte, dataSize)
	if _, err := f.Read(data); err != nil {
		return nil, nil, err
	}

	n := len(data) / 4
	left = make([]float64, n)
	right = make([]float64, n)
	for i := 0; i < n; i++ {
		l := int16(binary.LittleEndian.Uint16(data[i*4:]))
		r := int16(binary.LittleEndian.Uint16(data[i*4+2:]))
		left[i] = float64(l) / 32767
		right[i] = float64(r) / 32767
	}
	return left, right, nil
}

// play streams left/right through the default audio device via oto and
// blocks until playback finishes.
func play(left, right []float64) error {
	op := &oto.NewContextOptions{
		SampleRate:   wav.SampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
	}
	otoCtx, ready, err := oto.NewContext(op)
	if err != nil {
		return err
	}
	<-ready

	buf := make([]byte, len(left)*4)
	for i := range left {
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(clampTo16(left[i])))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(clampTo16(right[i])))
	}

	player := otoCtx.NewPlayer(&staticStream{data: buf})
	player.Play()

	durationSeconds := float64(len(left)) / float64(wav.SampleRate)
	time.Sleep(time.Duration(durationSeconds*1000)*time.Millisecond + 200*time.Millisecond)
	return player.Close()
}

func clampTo16(s float64) int16 {
	if s > 1.0 {
		s = 1.0
	}
	if s < -1.0 {
		s = -1.0
	}
	return int16(s * 32767)
}

// staticStream implements io.Reader over an in-memory PCM buffer.
type staticStream struct {
	data []byte
	pos  int
}

func (s *staticStream) Read(buf []byte) (int, error) {
	if s.pos >= len(s.data) {
		for i := range buf {
			buf[i] = 0
		}
		return len(buf), nil
	}
	n := copy(buf, s.data[s.pos:])
	s.pos += n
	return n, nil
}
