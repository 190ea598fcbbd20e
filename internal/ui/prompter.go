package ui

// AckPrompter bridges the sequencer's synchronous acknowledgement prompts
// into the Bubble Tea event loop. The engine call runs inside a tea.Cmd
// goroutine; Acknowledge parks it until the operator presses a key and the
// console calls Release.
type AckPrompter struct {
	requests chan string
	acks     chan struct{}
}

func NewAckPrompter() *AckPrompter {
	return &AckPrompter{
		requests: make(chan string),
		acks:     make(chan struct{}),
	}
}

// Acknowledge blocks the calling engine goroutine until released.
func (p *AckPrompter) Acknowledge(message string) {
	p.requests <- message
	<-p.acks
}

// Next returns the next prompt message, blocking until the engine asks for
// one. Run from a listener command.
func (p *AckPrompter) Next() string {
	return <-p.requests
}

// Release lets the engine continue past its pending Acknowledge.
func (p *AckPrompter) Release() {
	p.acks <- struct{}{}
}
