package dynamotest

import "github.com/san-kum/gravbox/internal/dynamo"

// Input hands out one batch of events per Poll call.
type Input struct {
	Batches [][]dynamo.Event
	Polls   int
}

func NewInput(batches ...[]dynamo.Event) *Input {
	return &Input{Batches: batches}
}

func (in *Input) Push(events ...dynamo.Event) {
	in.Batches = append(in.Batches, events)
}

func (in *Input) Poll() []dynamo.Event {
	in.Polls++
	if len(in.Batches) == 0 {
		return nil
	}
	b := in.Batches[0]
	in.Batches = in.Batches[1:]
	return b
}
