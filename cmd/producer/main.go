// Command producer renders a backing track from the command line: it
// builds a MusicRequest from flags, runs it through the engine, and prints
// a JSON summary of the resulting song blueprint (track id, title, hook,
// tempo, mood, section count, instruments) alongside the path of the
// rendered WAV file.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/synthline/producer-engine/pkg/config"
	"github.com/synthline/producer-engine/pkg/engine"
	"github.com/synthline/producer-engine/pkg/errs"
	"github.com/synthline/producer-engine/pkg/plan"
)

func main() {
	artists := flag.String("artists", "", "comma-separated artist influences, e.g. \"Depeche Mode,Gary Numan\"")
	influenceText := flag.String("influence", "", "free-form influence text")
	usage := flag.String("usage", "", "usage context: tiktok, shorts, background, full_song, longform")
	mood := flag.String("mood", "", "mood override")
	tempo := flag.Float64("tempo", 0, "tempo in bpm, 60-200")
	sections := flag.String("sections", "", "comma-separated section names")
	reference := flag.String("reference", "", "reference text used for the title and track id")
	verbose := flag.Bool("verbose", false, "log debug detail")
	flag.Parse()

	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	req := plan.MusicRequest{
		InfluenceText: *influenceText,
		UsageContext:  *usage,
		Mood:          *mood,
		TempoBPM:      *tempo,
		ReferenceText: *reference,
	}
	if *artists != "" {
		req.ArtistInfluences = splitCSV(*artists)
	}
	if *sections != "" {
		req.Sections = splitCSV(*sections)
	}

	cfg := config.Load()
	eng := engine.New(cfg)

	resp, err := eng.Generate(context.Background(), req)
	if err != nil {
		if errs.Is(err, errs.KindValidation) {
			fmt.Fprintf(os.Stderr, "invalid request: %v\n", err)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "render failed: %v\n", err)
		os.Exit(1)
	}

	out := struct {
		TrackID    string   `json:"track_id"`
		Title      string   `json:"title"`
		Hook       string   `json:"hook"`
		TempoBPM   float64  `json:"tempo_bpm"`
		Mood       string   `json:"mood"`
		AudioPath  string   `json:"audio_path"`
		Sections   int      `json:"section_count"`
		Instrument []string `json:"instruments"`
	}{
		TrackID:    resp.Blueprint.TrackID,
		Title:      resp.Blueprint.Title,
		Hook:       resp.Blueprint.Hook,
		TempoBPM:   resp.Blueprint.TempoBPM,
		Mood:       resp.Blueprint.Mood,
		AudioPath:  resp.AudioPath,
		Sections:   len(resp.Blueprint.Sections),
		Instrument: resp.Blueprint.Instruments,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "encode output: %v\n", err)
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
