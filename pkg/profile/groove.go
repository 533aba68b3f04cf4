package profile

// GrooveTemplate is a 16-step (sixteenth-note resolution) drum groove: one
// step array per voice plus a swing amount in [0,1].
type GrooveTemplate struct {
	Resolution  int
	Kick        [16]int
	Snare       [16]int
	HihatClosed [16]int
	HihatOpen   [16]int
	SwingAmount float64
}
