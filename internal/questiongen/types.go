package questiongen

// Question represents one assessment item decoded from the model response.
type Question struct {
	// ID is the question number, unique within a single batch.
	ID int

	// Text is the scenario prompt displayed to the subject.
	Text string

	// Dimension labels the personality axis this question probes
	// (e.g. "Autonomy", "Risk Tolerance"). Open vocabulary, supplied by
	// the model; never treat it as an enum.
	Dimension string

	// Options holds exactly 4 answer choices, in display order.
	// No option is correct; each maps to a different behavioral read.
	Options []string
}
