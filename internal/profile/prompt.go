package profile

import (
	"bytes"
	"text/template"

	"github.com/dsengupta/mindprobe/internal/session"
)

const analysisSystemPrompt = `You are the analysis engine of MINDPROBE, a psychological profiling system. You receive the full answer transcript of a scenario-based assessment: each line shows the probed dimension, the scenario, the subject's chosen reaction, and how long the choice took in milliseconds.

Instructions:
- Derive the profile from the pattern of choices, not from any single answer.
- Treat response time as a weak signal: very fast answers suggest impulse or certainty, very slow ones deliberation or conflict.
- Keep every trait and observation to one short clause, clinical register, no hedging.
- riskIndicators is reserved for genuinely concerning patterns; leave it empty rather than padding it.
- The composite score weighs stability, consistency, and self-awareness. Confidence reflects transcript length and internal consistency.`

var transcriptTemplate = template.Must(template.New("transcript").Parse(`Subject answered {{len .Answers}} questions.

Transcript:
{{range .Answers}}[{{.Dimension}}] {{.QuestionText}} => {{.SelectedOption}} ({{.TimeTakenMs}}ms)
{{end}}
Produce the evaluation dossier.`))

// buildTranscriptMessage renders the answer transcript for the prompt.
func buildTranscriptMessage(answers []session.Answer) (string, error) {
	var buf bytes.Buffer
	err := transcriptTemplate.Execute(&buf, struct {
		Answers []session.Answer
	}{Answers: answers})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
