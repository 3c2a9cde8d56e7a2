package output

// DestinationResult is the outcome of writing one destination.
type DestinationResult struct {
	Destination string
	Path        string
	Err         error
}

// OK reports whether the destination was written.
func (r DestinationResult) OK() bool {
	return r.Err == nil
}

// Report aggregates the outcome of a WriteAll call.
type Report struct {
	Blocks   int
	Filename string
	Results  []DestinationResult
}

// Succeeded returns the destinations that were written.
func (r *Report) Succeeded() []DestinationResult {
	var out []DestinationResult
	for _, res := range r.Results {
		if res.OK() {
			out = append(out, res)
		}
	}
	return out
}

// Failed returns the destinations that could not be written.
func (r *Report) Failed() []DestinationResult {
	var out []DestinationResult
	for _, res := range r.Results {
		if !res.OK() {
			out = append(out, res)
		}
	}
	return out
}

// AllFailed is true when there was at least one destination and none of
// them were written.
func (r *Report) AllFailed() bool {
	return len(r.Results) > 0 && len(r.Succeeded()) == 0
}
