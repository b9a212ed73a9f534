package tui

// sparkRunes maps levels 0..7 to block elements.
var sparkRunes = [8]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// History keeps the most recent samples of a series in a fixed-size ring.
type History struct {
	data  []float64
	head  int
	count int
}

// NewHistory creates a history holding at most capacity samples.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = 1
	}
	return &History{data: make([]float64, capacity)}
}

// Push appends a sample, dropping the oldest one when full.
func (h *History) Push(v float64) {
	h.data[h.head] = v
	h.head = (h.head + 1) % len(h.data)
	if h.count < len(h.data) {
		h.count++
	}
}

// Len returns the number of samples held.
func (h *History) Len() int { return h.count }

// Last returns the newest sample, or 0 when empty.
func (h *History) Last() float64 {
	if h.count == 0 {
		return 0
	}
	return h.data[(h.head-1+len(h.data))%len(h.data)]
}

// Values returns the samples oldest first.
func (h *History) Values() []float64 {
	if h.count == 0 {
		return nil
	}
	out := make([]float64, h.count)
	start := (h.head - h.count + len(h.data)) % len(h.data)
	for i := range out {
		out[i] = h.data[(start+i)%len(h.data)]
	}
	return out
}

// Reset drops every sample.
func (h *History) Reset() {
	h.head, h.count = 0, 0
}

// Sparkline renders values as block characters scaled against ceiling.
// A ceiling <= 0 scales against the largest value. Only the last width
// values are drawn when width > 0.
func Sparkline(values []float64, ceiling float64, width int) string {
	if width > 0 && len(values) > width {
		values = values[len(values)-width:]
	}
	if len(values) == 0 {
		return ""
	}
	if ceiling <= 0 {
		for _, v := range values {
			ceiling = max(ceiling, v)
		}
		if ceiling <= 0 {
			ceiling = 1
		}
	}
	runes := make([]rune, len(values))
	for i, v := range values {
		level := int(min(max(v, 0), ceiling) / ceiling * 7)
		runes[i] = sparkRunes[level]
	}
	return string(runes)
}
