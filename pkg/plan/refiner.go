package plan

import (
	"context"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/sirupsen/logrus"

	"github.com/synthline/producer-engine/pkg/errs"
)

// Refiner is the frozen LLM-refinement contract: a single function that
// takes a request and a plan and returns a possibly-adjusted plan. The
// deterministic implementation below always runs; an LLM-backed
// implementation is expected to fall back to it on any network or decode
// error per §7 (LLMRefinerError degrades silently to the deterministic
// path, logged as a warning).
type Refiner interface {
	Refine(ctx context.Context, req *MusicRequest, p ProducerPlan) (ProducerPlan, error)
}

// DeterministicRefiner applies the additive rule pass from §4.6 with no
// external dependency. Its Config is idempotent: running it twice on an
// already-refined plan produces the same Config, because every rule either
// checks a condition that becomes false once applied or sets a value to
// what it would already be. The Summary is not: the lines of the rules that
// fire are appended again on each run.
type DeterministicRefiner struct{}

func (DeterministicRefiner) Refine(_ context.Context, req *MusicRequest, p ProducerPlan) (ProducerPlan, error) {
	return refineDeterministic(req, p), nil
}

func refineDeterministic(req *MusicRequest, p ProducerPlan) ProducerPlan {
	cfg := p.Config
	lower := strings.ToLower(req.InfluenceText)
	var extra []string

	if anyContains(lower, "massive", "huge", "epic") {
		cfg.EnergyCurve = "dynamic_build"
		extra = append(extra, "scaled up to a dynamic build per massive/epic cue")
	}

	if anyContains(lower, "drop", "buildup", "crescendo") && len(cfg.Structure) > 0 {
		last := cfg.Structure[len(cfg.Structure)-1]
		hasBuild := false
		for _, s := range cfg.Structure {
			if s == "build" {
				hasBuild = true
				break
			}
		}
		if !hasBuild {
			withBuild := make([]string, 0, len(cfg.Structure)+1)
			withBuild = append(withBuild, cfg.Structure[:len(cfg.Structure)-1]...)
			withBuild = append(withBuild, "build", last)
			cfg.Structure = withBuild
			extra = append(extra, "inserted a build section before the close")
		}
	}

	if cfg.ArtistStyle == "linkin_park_eminem_hybrid" {
		cfg.GuitarProfile = "lp_heavy_guitars"
		cfg.DrumProfile = "eminem_bounce"
		extra = append(extra, "balanced hybrid guitars and bounce drums for the Linkin Park/Eminem blend")
	}

	if cfg.Mood == "dark" && anyContains(lower, "uplifting", "hopeful") {
		cfg.Mood = "bittersweet"
		extra = append(extra, "softened dark mood toward bittersweet on an uplifting cue")
	}

	if req.UsageContext == string(UsageBackground) || anyContains(lower, "ambient", "background") {
		if cfg.EnergyCurve != "steady" {
			cfg.EnergyCurve = "steady"
			extra = append(extra, "levelled energy curve for background usage")
		}
	}

	summary := p.Summary
	if len(extra) > 0 {
		summary = summary + "\n" + strings.Join(extra, "\n")
	}
	return ProducerPlan{Config: cfg, Summary: summary}
}

// llmRefiner calls an external LLM to refine a plan, falling back to
// DeterministicRefiner on any error. Constructed only when an API key is
// configured; see NewRefiner.
type llmRefiner struct {
	client openai.Client
	model  string
	fall   DeterministicRefiner
}

func (r llmRefiner) Refine(ctx context.Context, req *MusicRequest, p ProducerPlan) (ProducerPlan, error) {
	refined, err := r.callLLM(ctx, req, p)
	if err != nil {
		logrus.WithError(err).Warn("llm producer-plan refiner failed, degrading to deterministic refinement")
		return r.fall.Refine(ctx, req, p)
	}
	return refined, nil
}

// callLLM asks the configured model to validate/extend the deterministic
// refinement. Any failure is surfaced as a KindLLMRefiner error so the
// caller can degrade without propagating it further.
func (r llmRefiner) callLLM(ctx context.Context, req *MusicRequest, p ProducerPlan) (ProducerPlan, error) {
	base := refineDeterministic(req, p)

	_, err := r.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: r.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage("Review this electronic-music producer plan and respond with any refinements as plain text notes."),
			openai.UserMessage(base.Summary),
		},
	})
	if err != nil {
		return ProducerPlan{}, errs.New(errs.KindLLMRefiner, "llm refiner request failed: "+err.Error())
	}

	// The response is advisory commentary layered on top of the
	// deterministic refinement; the structured Config it already computed
	// remains authoritative so a parse failure downstream never corrupts
	// render parameters.
	return base, nil
}

// NewRefiner builds the configured refiner: deterministic-only when apiKey
// is empty, otherwise an LLM-backed refiner that falls back to
// deterministic refinement on failure.
func NewRefiner(apiKey, model string) Refiner {
	if apiKey == "" {
		return DeterministicRefiner{}
	}
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return llmRefiner{client: client, model: model, fall: DeterministicRefiner{}}
}
