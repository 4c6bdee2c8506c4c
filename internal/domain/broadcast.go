package domain

// BroadcastReport tallies the outcome of one broadcast pass
type BroadcastReport struct {
	Sent    int
	Blocked int
	Failed  int
}
