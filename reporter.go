package karprabin

// Reporter observes a search. SetTotal is called once with the number of
// candidate windows, SetProgress with every visited offset and Collision
// whenever a window hashes like the pattern but differs from it.
type Reporter interface {
	SetTotal(windows int64)
	SetProgress(offset int64)
	Collision(offset int64)
}

type dummyReporter struct{}

func NewDummyReporter() Reporter {
	return &dummyReporter{}
}

func (d dummyReporter) SetTotal(windows int64) {
}

func (d dummyReporter) SetProgress(offset int64) {
}

func (d dummyReporter) Collision(offset int64) {
}
