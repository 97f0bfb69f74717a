package titleparse

// attempt is the outcome of one identification stage. The zero value means
// the stage did not match and the next stage should run.
type attempt struct {
	artist string
	track  string
	method Method
}

func (a attempt) matched() bool {
	return a.method != ""
}

// stage is one of the mutually exclusive identification heuristics.
type stage struct {
	name string
	run  func(title, channel string) attempt
}

var identificationStages = []stage{
	{name: "quoted", run: matchQuoted},
	{name: "pattern", run: matchPattern},
	{name: "channel_fallback", run: matchChannelFallback},
}
