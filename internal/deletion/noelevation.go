package deletion

// NoElevation has no stages. The plain attempt is final.
type NoElevation struct{}

func (NoElevation) Name() string    { return "none" }
func (NoElevation) Stages() []Stage { return nil }
